package session

// DateRange restricts results to a recency window.
type DateRange string

const (
	DateRangeNone  DateRange = ""
	DateRangeDay   DateRange = "day"
	DateRangeWeek  DateRange = "week"
	DateRangeMonth DateRange = "month"
	DateRangeYear  DateRange = "year"
)

// Region restricts results to a geographic market.
type Region string

const (
	RegionNone Region = ""
	RegionFR   Region = "fr"
	RegionUS   Region = "us"
	RegionUK   Region = "uk"
)

// Language restricts results to a language.
type Language string

const (
	LanguageNone Language = ""
	LanguageFR   Language = "fr"
	LanguageEN   Language = "en"
)

// ParseDateRange maps a raw parameter value to a DateRange.
// Unknown values fall back to DateRangeNone.
func ParseDateRange(s string) DateRange {
	switch DateRange(s) {
	case DateRangeDay, DateRangeWeek, DateRangeMonth, DateRangeYear:
		return DateRange(s)
	default:
		return DateRangeNone
	}
}

// ParseRegion maps a raw parameter value to a Region.
func ParseRegion(s string) Region {
	switch Region(s) {
	case RegionFR, RegionUS, RegionUK:
		return Region(s)
	default:
		return RegionNone
	}
}

// ParseLanguage maps a raw parameter value to a Language.
func ParseLanguage(s string) Language {
	switch Language(s) {
	case LanguageFR, LanguageEN:
		return Language(s)
	default:
		return LanguageNone
	}
}

// State is the full set of user-chosen query, filter and pagination values.
// It is the single source of truth for the session; the deep link string is
// always derived from it, never the other way around (except the one decode
// at startup).
type State struct {
	Query     string
	Page      int // always >= 1
	DateRange DateRange
	Region    Region
	Language  Language
}

// NewState returns an empty session on page 1.
func NewState() State {
	return State{Page: 1}
}

// HasFilters reports whether any non-default filter is active.
func (s State) HasFilters() bool {
	return s.DateRange != DateRangeNone || s.Region != RegionNone || s.Language != LanguageNone
}
