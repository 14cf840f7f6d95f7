package staging

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/jenniferntran/gitlet/pkg/common/fileops"
	"github.com/jenniferntran/gitlet/pkg/repository/scpath"
)

// Read loads the staging area stored at path. A missing file is an empty area.
func Read(path scpath.SourcePath) (*Area, error) {
	data, err := fileops.ReadBytes(path.ToAbsolutePath())
	if err != nil {
		return nil, fmt.Errorf("failed to read stage file: %w", err)
	}
	if data == nil {
		return NewArea(), nil
	}

	area := NewArea()
	if err := json.Unmarshal(data, area); err != nil {
		return nil, NewCorruptStageError(path, err)
	}
	if area.Add == nil {
		area.Add = make(map[string]string)
	}
	if area.Remove == nil {
		area.Remove = make(map[string]string)
	}
	return area, nil
}

// Write replaces the file at path with the area's content.
func (a *Area) Write(path scpath.SourcePath) error {
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("failed to encode stage: %w", err)
	}
	if err := fileops.AtomicWrite(path.ToAbsolutePath(), data, 0644); err != nil {
		return fmt.Errorf("failed to write stage file: %w", err)
	}
	return nil
}
