// Package validation holds value checks shared by configuration and deck loading.
package validation

import (
	"regexp"
	"sort"
	"strings"
)

var hexColorRE = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// IsHexColor reports whether value looks like #RGB or #RRGGBB.
func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}

// ValidatePaletteHex checks every named color in palette. Empty values are
// reported too. Messages are sorted by field name.
func ValidatePaletteHex(prefix string, palette map[string]string) []string {
	names := make([]string, 0, len(palette))
	for name := range palette {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs []string
	for _, name := range names {
		if !IsHexColor(palette[name]) {
			errs = append(errs, prefix+"."+name+" must be a hex color like #RRGGBB")
		}
	}
	return errs
}

// ValidateOneOf checks that value is one of allowed (case-sensitive).
func ValidateOneOf(field, value string, allowed ...string) []string {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return []string{field + " must be one of: " + strings.Join(allowed, ", ")}
}

// ValidatePositive checks that value is strictly greater than zero.
func ValidatePositive(field string, value int) []string {
	if value <= 0 {
		return []string{field + " must be positive"}
	}
	return nil
}
