package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/PizzaCut/internal/model"
)

// ProjectExt is the extension of saved project files.
const ProjectExt = ".pizzacut"

// SaveProject writes a project as indented JSON, creating parent directories.
func SaveProject(path string, proj model.Project) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create project directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(proj, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write project file: %w", err)
	}
	return nil
}

// LoadProject reads a project file. A stored result must match the stored
// grid's dimensions.
func LoadProject(path string) (model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to read project file: %w", err)
	}

	var proj model.Project
	if err := json.Unmarshal(data, &proj); err != nil {
		return model.Project{}, fmt.Errorf("failed to parse project file: %w", err)
	}
	if proj.Result != nil {
		if proj.Grid == nil {
			return model.Project{}, fmt.Errorf("project %q has a result but no grid", proj.Name)
		}
		if proj.Result.GridRows != proj.Grid.Rows || proj.Result.GridCols != proj.Grid.Cols {
			return model.Project{}, fmt.Errorf("project %q result is for a %dx%d grid, not %dx%d",
				proj.Name, proj.Result.GridRows, proj.Result.GridCols, proj.Grid.Rows, proj.Grid.Cols)
		}
	}
	return proj, nil
}
