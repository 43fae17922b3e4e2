// Package snapshot reads and writes the JSON checkpoint files written
// between pipeline stages, so each stage can be re-run independently.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
)

// Write marshals v as indented JSON. the file is the interface between two
// pipeline stages, keep it diffable.
func Write(path string, v any) error {
	contents, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	err = os.WriteFile(path, contents, 0644)
	if err != nil {
		return fmt.Errorf("write snapshot %s: %w", path, err)
	}
	return nil
}

func Read[T any](path string) (T, error) {
	var out T
	contents, err := os.ReadFile(path)
	if err != nil {
		return out, err
	}
	err = json.Unmarshal(contents, &out)
	if err != nil {
		return out, fmt.Errorf("parse snapshot %s: %w", path, err)
	}
	return out, nil
}
