package domain

import "strings"

var stateCodes = map[string]struct{}{
	"AL": {}, "AK": {}, "AZ": {}, "AR": {}, "CA": {}, "CO": {}, "CT": {}, "DE": {}, "FL": {}, "GA": {},
	"HI": {}, "ID": {}, "IL": {}, "IN": {}, "IA": {}, "KS": {}, "KY": {}, "LA": {}, "ME": {}, "MD": {},
	"MA": {}, "MI": {}, "MN": {}, "MS": {}, "MO": {}, "MT": {}, "NE": {}, "NV": {}, "NH": {}, "NJ": {},
	"NM": {}, "NY": {}, "NC": {}, "ND": {}, "OH": {}, "OK": {}, "OR": {}, "PA": {}, "RI": {}, "SC": {},
	"SD": {}, "TN": {}, "TX": {}, "UT": {}, "VT": {}, "VA": {}, "WA": {}, "WV": {}, "WI": {}, "WY": {}, "DC": {},
}

// ValidStateCode reports whether s is a two-letter US state code (or DC).
func ValidStateCode(s string) bool {
	_, ok := stateCodes[strings.ToUpper(strings.TrimSpace(s))]
	return ok
}

// NormalizeLocation validates and normalizes a free-form location string.
// Whitespace is collapsed and a trailing ", st" state code is upcased so
// equivalent inputs share one cache key.
func NormalizeLocation(location string) (string, error) {
	loc := strings.Join(strings.Fields(location), " ")

	if loc == "" {
		return "", &InvalidLocationError{Location: location, Reason: "must be non-empty"}
	}
	if len(loc) < 3 {
		return "", &InvalidLocationError{Location: location, Reason: "too short"}
	}
	if len(loc) > 255 {
		return "", &InvalidLocationError{Location: location, Reason: "too long (max 255 characters)"}
	}

	if city, state, ok := strings.Cut(loc, ","); ok {
		state = strings.ToUpper(strings.TrimSpace(state))
		if _, known := stateCodes[state]; known {
			return strings.TrimSpace(city) + ", " + state, nil
		}
	}

	return loc, nil
}
