// Package phrases provides the locale phrase tables used by notification
// stripping and media detection. The tables are immutable lookup maps built
// once at load time and passed explicitly to the components that need them.
package phrases

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed phrases.yaml
var defaultDoc []byte

// MediaMarkers groups the export phrases that stand in for stripped media.
type MediaMarkers struct {
	Omitted []string `yaml:"omitted" json:"omitted"`
	GIF     []string `yaml:"gif" json:"gif"`
	Audio   []string `yaml:"audio" json:"audio"`
	Sticker []string `yaml:"sticker" json:"sticker"`
}

// PhraseSet holds the phrase lists of one language.
type PhraseSet struct {
	// Alerts are system-notification phrases that never belong to a message
	// body (encryption notices, group-subject changes and the like).
	Alerts []string     `yaml:"alerts" json:"alerts"`
	Media  MediaMarkers `yaml:"media" json:"media"`
}

// Catalog maps a language tag ("en", "de", ...) to its phrase set.
type Catalog map[string]PhraseSet

// Default returns the catalog built from the embedded document. The embedded
// document is part of the build; failing to parse it is a programming error.
func Default() Catalog {
	c, err := parse(defaultDoc)
	if err != nil {
		panic(fmt.Sprintf("phrases: embedded catalog is invalid: %v", err))
	}
	return c
}

// Load reads a catalog from a YAML file, for deployments that maintain their
// own phrase lists. An empty path falls back to the embedded catalog.
func Load(path string) (Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read phrase catalog: %w", err)
	}
	c, err := parse(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse phrase catalog %s: %w", path, err)
	}
	return c, nil
}

func parse(raw []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if len(c) == 0 {
		return nil, fmt.Errorf("catalog defines no languages")
	}
	return c, nil
}

// ForLanguage returns the phrase set for a tag.
func (c Catalog) ForLanguage(tag string) (PhraseSet, error) {
	set, ok := c[tag]
	if !ok {
		return PhraseSet{}, fmt.Errorf("no phrase set for language %q", tag)
	}
	return set, nil
}
