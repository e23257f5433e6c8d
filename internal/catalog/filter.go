package catalog

import "strings"

// PageSize is how many records one page of the browse grid holds.
const PageSize = 12

// Filter returns the records satisfying price <= ceiling and, when brand is
// non-empty, a case-insensitive name-contains match. Pure and total: an
// empty catalog or a filter matching nothing returns an empty slice, and
// input order is preserved.
func Filter(phones []Phone, ceiling int, brand string) []Phone {
	needle := strings.ToLower(strings.TrimSpace(brand))
	out := make([]Phone, 0, len(phones))
	for _, p := range phones {
		if p.Price > ceiling {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Visible returns the paginated slice of the filtered catalog: the first
// pages * PageSize filtered records. pages below 1 is treated as 1.
func Visible(phones []Phone, ceiling int, brand string, pages int) []Phone {
	if pages < 1 {
		pages = 1
	}
	filtered := Filter(phones, ceiling, brand)
	end := pages * PageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[:end]
}
