package rfc9110

import "strings"

// §  12.5.1.  Accept
// §
// §     The "Accept" header field can be used by user agents to specify
// §     their preferences regarding response media types.  For example,
// §     Accept header fields can be used to indicate that the request is
// §     specifically limited to a small set of desired types, as in the
// §     case of a request for an in-line image.
// §
// §       Accept = #( media-range [ weight ] )
// §
// §       media-range    = ( "*/*"
// §                          / ( type "/" "*" )
// §                          / ( type "/" subtype )
// §                        ) parameters
// §
// §     The asterisk "*" character is used to group media types into ranges,
// §     with "*/*" indicating all media types and "type/*" indicating all
// §     subtypes of that type.  The media-range can include media type
// §     parameters that are applicable to that range.

// MediaRange is one parsed member of an Accept field value. The main type
// or subtype may be the "*" wildcard. The weight defaults to 1.
type MediaRange struct {
	MainType string
	SubType  string
	Q        float64
}

// ParseAccept parses an Accept field value. Members that are not a media
// range are skipped; parsing never fails.
func ParseAccept(value string) []MediaRange {
	var ranges []MediaRange
	for _, member := range SplitList(value) {
		token, q, ok := parseMember(member)
		if !ok {
			continue
		}
		mainType, subType, ok := SplitMediaType(token)
		if !ok {
			continue
		}
		ranges = append(ranges, MediaRange{MainType: mainType, SubType: subType, Q: q})
	}
	return ranges
}

// SplitMediaType splits a media type or media range into its main type and
// subtype. It reports false if either half is missing.
func SplitMediaType(s string) (mainType, subType string, ok bool) {
	mainType, subType, ok = strings.Cut(s, "/")
	mainType = trimOWS(mainType)
	subType = trimOWS(subType)
	if !ok || mainType == "" || subType == "" {
		return "", "", false
	}
	return mainType, subType, true
}
