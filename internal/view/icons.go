package view

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fallbackIcon is used for categories with no mapping.
const fallbackIcon = "📦"

// IconSet maps a category name to the emoji shown next to it.
type IconSet map[string]string

// DefaultIcons returns the built-in category icon mapping.
func DefaultIcons() IconSet {
	return IconSet{
		"Water":   "💧",
		"Food":    "🍚",
		"Medical": "💊",
		"Light":   "🔦",
		"Hygiene": "🧻",
		"Battery": "🔋",
		"Tools":   "🛠️",
		"Warmth":  "🧣",
	}
}

// LoadIcons reads a YAML file mapping category names to icons and merges it
// over the defaults, so a partial file only overrides what it names.
func LoadIcons(path string) (IconSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read icons file: %w", err)
	}
	var overrides map[string]string
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parse icons file: %w", err)
	}
	icons := DefaultIcons()
	for category, icon := range overrides {
		icons[category] = icon
	}
	return icons, nil
}

// For returns the icon for a category, falling back to a generic box for
// unrecognized names.
func (s IconSet) For(category string) string {
	if icon, ok := s[category]; ok {
		return icon
	}
	return fallbackIcon
}
