package domain

// SortMode selects the ordering of the book list.
// It is a closed set; unrecognized input is normalized to the default
// at the boundary by ParseSortMode.
type SortMode string

// Valid sort modes.
const (
	SortDateOld    SortMode = "date_old"
	SortDateNew    SortMode = "date_new"
	SortRatingHigh SortMode = "rating_high"
	SortRatingLow  SortMode = "rating_low"
)

// DefaultSort is the ordering used when no (or an unknown) sort
// keyword is supplied: most recently read first.
const DefaultSort = SortDateNew

// ParseSortMode maps a client-supplied sort keyword to a SortMode.
// Anything outside the known set becomes DefaultSort.
func ParseSortMode(s string) SortMode {
	m := SortMode(s)
	if m.Valid() {
		return m
	}
	return DefaultSort
}

// Valid reports whether m is a member of the closed sort-mode set.
func (m SortMode) Valid() bool {
	switch m {
	case SortDateOld, SortDateNew, SortRatingHigh, SortRatingLow:
		return true
	}
	return false
}

// OrderBy returns the SQL ORDER BY expression for this mode.
// The mapping is total: invalid modes order like DefaultSort.
func (m SortMode) OrderBy() string {
	switch m {
	case SortDateOld:
		return "date_read ASC"
	case SortRatingHigh:
		return "rating DESC, date_read DESC"
	case SortRatingLow:
		return "rating ASC, date_read DESC"
	default:
		return "date_read DESC"
	}
}
