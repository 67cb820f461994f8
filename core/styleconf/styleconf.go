// Package styleconf holds the deck styling configuration and its
// validation rules. Each field is validated independently; invalid values
// fail with an error naming the field and the accepted set.
package styleconf

import (
	"fmt"
	"regexp"
	"strings"
)

// AllowedFonts is the closed set of font names accepted in a configuration.
var AllowedFonts = []string{
	"Arial",
	"Calibri",
	"Poppins",
	"Segoe UI",
	"Times New Roman",
}

// hexColorRegex accepts #RGB and #RRGGBB.
var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}){1,2}$`)

// Configuration is the styling configuration for a deck.
// ThemeID picks one of the built-in deck themes (ppt1, ppt2, ...); the
// color fields override individual theme colors when set.
type Configuration struct {
	ThemeID         string `json:"theme_id,omitempty"`
	FontName        string `json:"font_name,omitempty"`
	FontColor       string `json:"font_color,omitempty"`
	BackgroundColor string `json:"background_color,omitempty"`
	AccentColor     string `json:"accent_color,omitempty"`
}

// Validate checks every set field and returns an error for the first
// offending one. Empty fields are always valid.
func (c Configuration) Validate() error {
	if c.FontName != "" && !fontAllowed(c.FontName) {
		return fmt.Errorf("font_name %q is not supported; allowed fonts: %s",
			c.FontName, strings.Join(AllowedFonts, ", "))
	}
	colors := []struct {
		field, value string
	}{
		{"font_color", c.FontColor},
		{"background_color", c.BackgroundColor},
		{"accent_color", c.AccentColor},
	}
	for _, col := range colors {
		if col.value != "" && !hexColorRegex.MatchString(col.value) {
			return fmt.Errorf("%s %q is not a valid hex color (e.g. #RRGGBB)", col.field, col.value)
		}
	}
	return nil
}

func fontAllowed(name string) bool {
	for _, f := range AllowedFonts {
		if f == name {
			return true
		}
	}
	return false
}
