package session

import (
	"net/url"
	"strconv"
)

// Deep link parameter names. Anything else found in an incoming link is
// dropped on the next state write.
const (
	ParamQuery     = "search"
	ParamPage      = "page"
	ParamDateRange = "date_range"
	ParamRegion    = "region"
	ParamLanguage  = "language"
)

// Field identifies one encodable session field.
type Field int

const (
	FieldQuery Field = iota
	FieldPage
	FieldDateRange
	FieldRegion
	FieldLanguage
)

var allFields = []Field{FieldQuery, FieldPage, FieldDateRange, FieldRegion, FieldLanguage}

// Decode parses a deep link query string into a State. Unknown parameters
// are ignored and malformed values fall back to their defaults; decoding
// never fails. A page below 1 or non-numeric becomes 1.
func Decode(rawQuery string) State {
	s := NewState()

	// ParseQuery returns whatever it could parse alongside the error,
	// which is exactly the recovery the deep link format wants.
	values, _ := url.ParseQuery(rawQuery)

	s.Query = values.Get(ParamQuery)
	if page, err := strconv.Atoi(values.Get(ParamPage)); err == nil && page >= 1 {
		s.Page = page
	}
	s.DateRange = ParseDateRange(values.Get(ParamDateRange))
	s.Region = ParseRegion(values.Get(ParamRegion))
	s.Language = ParseLanguage(values.Get(ParamLanguage))

	// An empty query can never sit on a later page.
	if s.Query == "" {
		s.Page = 1
	}
	return s
}

// Encode renders the state as a deep link query string. Only the given
// changed fields plus the query itself survive; every other parameter is
// stripped so filters can never leak across unrelated navigations.
// Default values (empty query, page 1, unset filters) are omitted, which
// keeps the encoding canonical.
func Encode(s State, changed ...Field) string {
	values := url.Values{}
	if s.Query != "" {
		values.Set(ParamQuery, s.Query)
	}
	for _, f := range changed {
		switch f {
		case FieldPage:
			if s.Query != "" && s.Page > 1 {
				values.Set(ParamPage, strconv.Itoa(s.Page))
			}
		case FieldDateRange:
			if s.DateRange != DateRangeNone {
				values.Set(ParamDateRange, string(s.DateRange))
			}
		case FieldRegion:
			if s.Region != RegionNone {
				values.Set(ParamRegion, string(s.Region))
			}
		case FieldLanguage:
			if s.Language != LanguageNone {
				values.Set(ParamLanguage, string(s.Language))
			}
		}
	}
	return values.Encode()
}

// EncodeAll renders the state with every field considered changed. Used at
// startup so an externally supplied link round-trips in full.
func EncodeAll(s State) string {
	return Encode(s, allFields...)
}
