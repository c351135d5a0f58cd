package rfc9110

import (
	"math"
	"strconv"
	"strings"
)

// §  12.4.2.  Quality Values
// §
// §     The content negotiation fields defined by this specification use a
// §     common parameter, named "q" (case-insensitive), to assign a
// §     relative "weight" to the preference for that associated kind of
// §     content.  This weight is referred to as a "quality value" (or
// §     "qvalue") because the same parameter name is often used within
// §     server configurations to assign a weight to the relative quality of
// §     the various representations that can be selected for a resource.
// §
// §     The weight is normalized to a real number in the range 0 through 1,
// §     where 0.001 is the least preferred and 1 is the most preferred; a
// §     value of 0 means "not acceptable".  If no "q" parameter is present,
// §     the default weight is 1.
// §
// §       weight = OWS ";" OWS "q=" qvalue
// §       qvalue = ( "0" [ "." 0*3DIGIT ] )
// §              / ( "1" [ "." 0*3("0") ] )

// ParseQValue parses a quality value into a float64. It reports false when
// the value is not a number. Values outside the range 0 through 1 are
// clamped rather than rejected.
//
// The qvalue grammar allows at most three fractional digits, so float64
// keeps every representable weight well below rounding significance.
func ParseQValue(s string) (float64, bool) {
	q, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(q) {
		return 0, false
	}
	if q < 0 {
		return 0, true
	}
	if q > 1 {
		return 1, true
	}
	return q, true
}

// parseMember parses one list member into its leading token and weight.
// Parameters other than "q" are ignored without dropping the member, as is
// a malformed qvalue, in which case the default weight of 1 applies. A
// later "q" parameter overrides an earlier one. A member with an empty
// token reports false.
func parseMember(member string) (token string, q float64, ok bool) {
	parts := strings.Split(member, ";")
	token = trimOWS(parts[0])
	if token == "" {
		return "", 0, false
	}
	q = 1
	for _, param := range parts[1:] {
		name, value, found := strings.Cut(param, "=")
		if !found {
			continue
		}
		if !strings.EqualFold(trimOWS(name), "q") {
			continue
		}
		if v, valid := ParseQValue(trimOWS(value)); valid {
			q = v
		}
	}
	return token, q, true
}
