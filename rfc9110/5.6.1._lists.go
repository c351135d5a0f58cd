package rfc9110

import "strings"

// §  5.6.1.  Lists (#rule ABNF Extension)
// §
// §     A #rule extension to the ABNF rules of [RFC5234] is used to improve
// §     readability in the definitions of some list-based header field
// §     values.
// §
// §     A construct "#" is defined, similar to "*", for defining comma-
// §     delimited lists of elements.  The full form is "<n>#<m>element"
// §     indicating at least <n> and at most <m> elements, each separated by
// §     a single comma (",") and optional whitespace (OWS, defined in
// §     Section 5.6.3).
// §
// §  5.6.1.2.  Recipient Requirements
// §
// §     Empty elements do not contribute to the count of elements present.
// §     A recipient MUST parse and ignore a reasonable number of empty list
// §     elements: enough to handle common mistakes by senders that merge
// §     values, but not so much that they could be used as a denial-of-
// §     service mechanism.

// SplitList splits a comma-separated field value into its list members.
// Whitespace around members is trimmed and empty members are ignored.
func SplitList(value string) []string {
	var members []string
	for _, member := range strings.Split(value, ",") {
		member = trimOWS(member)
		if member == "" {
			continue
		}
		members = append(members, member)
	}
	return members
}

// §  5.6.3.  Whitespace
// §
// §       OWS            = *( SP / HTAB )
// §                      ; optional whitespace
func trimOWS(s string) string {
	return strings.Trim(s, " \t")
}
