package store

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"docview/internal/model"
)

// recordMapFile is the on-disk layout of a record map. JSON files decode
// through the same path since JSON is valid YAML.
type recordMapFile struct {
	Blocks []*model.Block `yaml:"blocks"`
}

// FileSource reads a record map from a YAML or JSON file.
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Describe returns a human-readable source name.
func (f *FileSource) Describe() string {
	return "file " + f.path
}

// Load implements Source.
func (f *FileSource) Load(ctx context.Context) (*model.RecordMap, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record map: %w", err)
	}
	return DecodeRecordMap(data)
}

// DecodeRecordMap parses record map file contents.
func DecodeRecordMap(data []byte) (*model.RecordMap, error) {
	var file recordMapFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse record map: %w", err)
	}

	rm := model.NewRecordMap()
	for i, b := range file.Blocks {
		if b == nil || b.ID == "" {
			return nil, fmt.Errorf("failed to parse record map: block %d has no id", i)
		}
		if b.Type == "" {
			b.Type = model.BlockTypePage
		}
		rm.Add(b)
	}
	linkChildren(rm)
	return rm, nil
}

// EncodeRecordMap renders rm in the record map file layout.
func EncodeRecordMap(rm *model.RecordMap) ([]byte, error) {
	data, err := yaml.Marshal(recordMapFile{Blocks: rm.Blocks()})
	if err != nil {
		return nil, fmt.Errorf("failed to encode record map: %w", err)
	}
	return data, nil
}

// linkChildren fills in Content for parents that list none, from the
// children's parent_id, so files may describe the tree from either side.
func linkChildren(rm *model.RecordMap) {
	listed := make(map[string]bool)
	for _, b := range rm.Blocks() {
		if len(b.Content) > 0 {
			listed[b.ID] = true
		}
	}
	for _, b := range rm.Blocks() {
		if b.ParentID == "" || listed[b.ParentID] {
			continue
		}
		if parent := rm.Get(b.ParentID); parent != nil {
			parent.Content = append(parent.Content, b.ID)
		}
	}
}
