package acceptmatch

import (
	"strings"

	"github.com/accept-match/accept-match/rfc9110"
)

// MimeTypeMatchType classifies how a media type matched an Accept field
// value, from least to most specific. The integer values are part of the
// public contract and will not be renumbered.
type MimeTypeMatchType int

const (
	MimeTypeMatchNone             MimeTypeMatchType = 0
	MimeTypeMatchMainTypeWildcard MimeTypeMatchType = 1
	MimeTypeMatchSubTypeWildcard  MimeTypeMatchType = 2
	MimeTypeMatchExact            MimeTypeMatchType = 3
)

func (t MimeTypeMatchType) String() string {
	switch t {
	case MimeTypeMatchMainTypeWildcard:
		return "main type wildcard"
	case MimeTypeMatchSubTypeWildcard:
		return "subtype wildcard"
	case MimeTypeMatchExact:
		return "exact"
	}
	return "none"
}

// MimeTypeMatch is the outcome of matching one media type against an
// Accept field value. Q is the weight of the winning directive, or 0 when
// there is no match.
type MimeTypeMatch struct {
	Type MimeTypeMatchType
	Q    float64
}

// MatchMimeType reports how the given media type matches the Accept field
// value. The media type must be fully qualified ("type/subtype"); ranges
// in the field value may be "*/*", "type/*" or "type/subtype". All ranges
// are considered: the most specific range applicable to the media type
// decides, and a q=0 at that level means the media type is not acceptable
// even when a less specific range carries a positive weight.
func MatchMimeType(headerValue, mimeType string) MimeTypeMatch {
	mainType, subType, ok := rfc9110.SplitMediaType(mimeType)
	if !ok {
		return MimeTypeMatch{}
	}
	var (
		seen [MimeTypeMatchExact + 1]bool
		best [MimeTypeMatchExact + 1]float64
	)
	for _, r := range rfc9110.ParseAccept(headerValue) {
		t := mimeTypeMatchType(r, mainType, subType)
		if t == MimeTypeMatchNone {
			continue
		}
		if !seen[t] || r.Q > best[t] {
			best[t] = r.Q
		}
		seen[t] = true
	}
	for t := MimeTypeMatchExact; t > MimeTypeMatchNone; t-- {
		if !seen[t] {
			continue
		}
		if best[t] > 0 {
			return MimeTypeMatch{Type: t, Q: best[t]}
		}
		// q=0 at the most specific applicable level means "not
		// acceptable"; less specific ranges cannot override it
		return MimeTypeMatch{}
	}
	return MimeTypeMatch{}
}

// mimeTypeMatchType classifies a single media range against the wanted
// main type and subtype. A range of the form "*/subtype" is not valid and
// never matches.
func mimeTypeMatchType(r rfc9110.MediaRange, mainType, subType string) MimeTypeMatchType {
	if r.MainType == "*" {
		if r.SubType == "*" {
			return MimeTypeMatchMainTypeWildcard
		}
		return MimeTypeMatchNone
	}
	if !strings.EqualFold(r.MainType, mainType) {
		return MimeTypeMatchNone
	}
	switch {
	case strings.EqualFold(r.SubType, subType):
		return MimeTypeMatchExact
	case r.SubType == "*":
		return MimeTypeMatchSubTypeWildcard
	}
	return MimeTypeMatchNone
}

// Compare orders two media type matches. A more specific match type wins;
// on a tie the higher weight wins. It returns a negative number if m
// orders worse than other, a positive number if better, and 0 if neither
// orders before the other. Two non-matches are always equal.
func (m MimeTypeMatch) Compare(other MimeTypeMatch) int {
	if m.Type != other.Type {
		if m.Type < other.Type {
			return -1
		}
		return 1
	}
	if m.Type == MimeTypeMatchNone {
		return 0
	}
	return compareQ(m.Q, other.Q)
}

// IsBetterThan reports whether m orders strictly better than other.
func (m MimeTypeMatch) IsBetterThan(other MimeTypeMatch) bool {
	return m.Compare(other) > 0
}
