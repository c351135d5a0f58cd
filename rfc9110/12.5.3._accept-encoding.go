package rfc9110

// §  12.5.3.  Accept-Encoding
// §
// §     The "Accept-Encoding" header field can be used to indicate
// §     preferences regarding the use of content codings (Section 8.4.1).
// §
// §       Accept-Encoding  = #( codings [ weight ] )
// §       codings          = content-coding / "identity" / "*"
// §
// §     Each codings value MAY be given an associated quality value
// §     (weight) representing the preference for that encoding, as defined
// §     in Section 12.4.2.
// §
// §     An "identity" token is used as a synonym for "no encoding" in
// §     order to communicate when no encoding is preferred.
// §
// §     The asterisk "*" symbol in an Accept-Encoding field matches any
// §     available content coding not explicitly listed in the field.

// Coding is one parsed member of an Accept-Encoding field value. The name
// may be the "*" wildcard. The weight defaults to 1.
type Coding struct {
	Name string
	Q    float64
}

// ParseAcceptEncoding parses an Accept-Encoding field value. Members with
// an empty codings token are skipped; parsing never fails.
func ParseAcceptEncoding(value string) []Coding {
	var codings []Coding
	for _, member := range SplitList(value) {
		token, q, ok := parseMember(member)
		if !ok {
			continue
		}
		codings = append(codings, Coding{Name: token, Q: q})
	}
	return codings
}
