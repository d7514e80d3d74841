package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WriteJSON exports the enriched catalog as an indented JSON array.
func WriteJSON(path string, episodes []Episode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure export directory: %w", err)
	}
	data, err := json.MarshalIndent(episodes, "", "  ")
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write catalog export: %w", err)
	}
	return nil
}

// ReadJSON loads a catalog previously exported with WriteJSON.
func ReadJSON(path string) ([]Episode, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog export: %w", err)
	}
	var episodes []Episode
	if err := json.Unmarshal(data, &episodes); err != nil {
		return nil, fmt.Errorf("decode catalog export: %w", err)
	}
	return episodes, nil
}
