package tourney

import "strings"

// Filter selects tournaments. Zero-value fields pass every record; set
// fields must all match (logical AND). Room and format matching is
// case-insensitive, currency codes are compared upper-cased.
type Filter struct {
	Range    Range
	Room     string
	Format   string
	Currency string
}

// Match reports whether the tournament satisfies every set predicate.
func (f Filter) Match(t Tournament) bool {
	if !f.Range.Contains(t.Date) {
		return false
	}
	if f.Room != "" && !strings.EqualFold(f.Room, t.Room) {
		return false
	}
	if f.Format != "" && !strings.EqualFold(f.Format, t.Format) {
		return false
	}
	if f.Currency != "" && !strings.EqualFold(f.Currency, t.Currency) {
		return false
	}
	return true
}

// Apply returns the subset of tournaments matching the filter,
// preserving order. The result may be empty. Applying the same filter
// twice returns the same set.
func (f Filter) Apply(tournaments []Tournament) []Tournament {
	matched := make([]Tournament, 0, len(tournaments))
	for _, t := range tournaments {
		if f.Match(t) {
			matched = append(matched, t)
		}
	}
	return matched
}
