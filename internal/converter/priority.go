package converter

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed priority.yaml
var priorityYAML []byte

// PriorityTable maps a lowercase file extension (without leading dot) to the
// preferred converter order for that extension. Built once from the embedded
// YAML file and read-only afterwards.
type PriorityTable map[string][]string

// extensionGroup is a set of extensions sharing one preference order
// (image formats, audio formats).
type extensionGroup struct {
	Extensions []string `yaml:"extensions"`
	Order      []string `yaml:"order"`
}

// priorityFile mirrors the structure of priority.yaml.
type priorityFile struct {
	Extensions map[string][]string `yaml:"extensions"`
	Image      extensionGroup      `yaml:"image"`
	Audio      extensionGroup      `yaml:"audio"`
}

// LoadPriorityTable builds the extension priority table from the embedded
// YAML file, expanding the image and audio groups into per-extension entries.
func LoadPriorityTable() (PriorityTable, error) {
	var f priorityFile
	if err := yaml.Unmarshal(priorityYAML, &f); err != nil {
		return nil, fmt.Errorf("failed to unmarshal priority.yaml: %w", err)
	}

	table := make(PriorityTable, len(f.Extensions)+len(f.Image.Extensions)+len(f.Audio.Extensions))
	for ext, order := range f.Extensions {
		table[strings.ToLower(ext)] = order
	}
	for _, ext := range f.Image.Extensions {
		table[strings.ToLower(ext)] = f.Image.Order
	}
	for _, ext := range f.Audio.Extensions {
		table[strings.ToLower(ext)] = f.Audio.Order
	}

	return table, nil
}

// ForExtension returns the preference order for an extension.
// The second return value reports whether the extension is listed.
func (t PriorityTable) ForExtension(ext string) ([]string, bool) {
	order, ok := t[strings.ToLower(strings.TrimPrefix(ext, "."))]
	return order, ok
}
