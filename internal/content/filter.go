package content

import "strings"

// CountryScoped is implemented by every content type that carries an optional
// country restriction.
type CountryScoped interface {
	CountryVisibility() []string
}

// FilterByCountry returns the items visible to the given country code. An
// item with no countries list is globally visible; otherwise it is visible
// only to the listed countries. Comparison is case-insensitive on both sides
// and input order is preserved.
func FilterByCountry[T CountryScoped](items []T, code string) []T {
	code = strings.ToLower(code)
	out := make([]T, 0, len(items))
	for _, item := range items {
		if visibleTo(item.CountryVisibility(), code) {
			out = append(out, item)
		}
	}
	return out
}

func visibleTo(countries []string, code string) bool {
	if len(countries) == 0 {
		return true
	}
	for _, c := range countries {
		if strings.ToLower(c) == code {
			return true
		}
	}
	return false
}
