package export

import (
	"encoding/json"
	"os"

	"github.com/dashua-baba/layoutsolve/pkg/solver"
)

// ExportJSON serializes the complete solution to JSON with indentation.
func ExportJSON(solution *solver.LayoutSolution) ([]byte, error) {
	return json.MarshalIndent(solution, "", "  ")
}

// ExportJSONCompact serializes the solution to JSON without indentation,
// suitable for storage or transmission.
func ExportJSONCompact(solution *solver.LayoutSolution) ([]byte, error) {
	return json.Marshal(solution)
}

// SaveJSONToFile exports the solution to an indented JSON file, created
// with 0644 permissions.
func SaveJSONToFile(solution *solver.LayoutSolution, filepath string) error {
	data, err := ExportJSON(solution)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}

// SaveJSONCompactToFile exports the solution to a compact JSON file,
// created with 0644 permissions.
func SaveJSONCompactToFile(solution *solver.LayoutSolution, filepath string) error {
	data, err := ExportJSONCompact(solution)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}
