package acceptmatch

import "github.com/accept-match/accept-match/rfc9110"

// EncodingMatchType classifies how a content coding matched an
// Accept-Encoding field value, from least to most specific. The integer
// values are part of the public contract and will not be renumbered.
type EncodingMatchType int

const (
	EncodingMatchNone     EncodingMatchType = 0
	EncodingMatchWildcard EncodingMatchType = 1
	EncodingMatchExact    EncodingMatchType = 2
)

func (t EncodingMatchType) String() string {
	switch t {
	case EncodingMatchWildcard:
		return "wildcard"
	case EncodingMatchExact:
		return "exact"
	}
	return "none"
}

// EncodingMatch is the outcome of matching one content coding against an
// Accept-Encoding field value. Q is the weight of the winning directive,
// or 0 when there is no match.
type EncodingMatch struct {
	Type EncodingMatchType
	Q    float64
}

// MatchEncoding reports how the given content coding matches the
// Accept-Encoding field value. All directives are considered: the best
// directive naming the coding itself decides before any "*" wildcard, and
// a coding listed with q=0 is not acceptable even when a wildcard with a
// positive weight is present.
func MatchEncoding(headerValue, coding string) EncodingMatch {
	var (
		exactSeen, wildcardSeen bool
		exactQ, wildcardQ       float64
	)
	for _, c := range rfc9110.ParseAcceptEncoding(headerValue) {
		switch {
		case rfc9110.ContentCodingEqual(c.Name, coding):
			if !exactSeen || c.Q > exactQ {
				exactQ = c.Q
			}
			exactSeen = true
		case c.Name == "*":
			if !wildcardSeen || c.Q > wildcardQ {
				wildcardQ = c.Q
			}
			wildcardSeen = true
		}
	}
	switch {
	case exactSeen && exactQ > 0:
		return EncodingMatch{Type: EncodingMatchExact, Q: exactQ}
	case exactSeen:
		// q=0 means "not acceptable"; a wildcard cannot override it
		return EncodingMatch{}
	case wildcardSeen && wildcardQ > 0:
		return EncodingMatch{Type: EncodingMatchWildcard, Q: wildcardQ}
	}
	return EncodingMatch{}
}

// Compare orders two encoding matches. A more specific match type wins;
// on a tie the higher weight wins. It returns a negative number if m
// orders worse than other, a positive number if better, and 0 if neither
// orders before the other. Two non-matches are always equal.
func (m EncodingMatch) Compare(other EncodingMatch) int {
	if m.Type != other.Type {
		if m.Type < other.Type {
			return -1
		}
		return 1
	}
	if m.Type == EncodingMatchNone {
		return 0
	}
	return compareQ(m.Q, other.Q)
}

// IsBetterThan reports whether m orders strictly better than other.
func (m EncodingMatch) IsBetterThan(other EncodingMatch) bool {
	return m.Compare(other) > 0
}
