// CLAUDE:SUMMARY Manifest YAML schema for lexicon packs: metadata, CSV layout, inline entries.
package lexicon

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest describes a lexicon pack: its source, format, and how to read it.
type Manifest struct {
	ID          string     `yaml:"id" json:"id"`
	Version     string     `yaml:"version" json:"version"`
	Language    string     `yaml:"language" json:"language"`
	Description string     `yaml:"description" json:"description,omitempty"`
	Source      string     `yaml:"source" json:"source"`
	SourceURL   string     `yaml:"source_url" json:"source_url,omitempty"`
	License     string     `yaml:"license" json:"license"`
	DataFile    string     `yaml:"data_file" json:"data_file,omitempty"`
	Format      FormatSpec `yaml:"format" json:"-"`
	Entries     []Entry    `yaml:"entries,omitempty" json:"-"`
}

// FormatSpec describes the CSV layout of a pack data file.
// DefaultClass applies to rows without a class column.
type FormatSpec struct {
	Delimiter    string `yaml:"delimiter,omitempty"`
	Encoding     string `yaml:"encoding,omitempty"`
	HasHeader    bool   `yaml:"has_header"`
	WordColumn   string `yaml:"word_column,omitempty"`
	ValueColumn  string `yaml:"value_column,omitempty"`
	ClassColumn  string `yaml:"class_column,omitempty"`
	SymbolColumn string `yaml:"symbol_column,omitempty"`
	DefaultClass string `yaml:"default_class,omitempty"`
}

// LoadManifest reads and parses a manifest.yaml file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if m.ID == "" {
		return nil, fmt.Errorf("manifest %s: missing id", path)
	}
	if m.DataFile == "" && len(m.Entries) == 0 {
		m.DataFile = "data.csv"
	}
	return &m, nil
}

// WriteManifest writes m as YAML to path.
func WriteManifest(path string, m *Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest %s: %w", path, err)
	}
	return nil
}
