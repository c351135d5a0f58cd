package rfc9110

import (
	"reflect"
	"testing"
)

func TestParseAccept(t *testing.T) {
	got := ParseAccept("text/html, application/xhtml+xml, */*;q=0.8, text")
	want := []MediaRange{
		{"text", "html", 1},
		{"application", "xhtml+xml", 1},
		{"*", "*", 0.8},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseAcceptEmpty(t *testing.T) {
	if got := ParseAccept(""); got != nil {
		t.Fatalf("got %v", got)
	}
}

func TestSplitMediaType(t *testing.T) {
	mainType, subType, ok := SplitMediaType("image/webp")
	if !ok || mainType != "image" || subType != "webp" {
		t.Fatalf("main: %q, sub: %q, ok: %v", mainType, subType, ok)
	}
}

func TestSplitMediaTypeInvalid(t *testing.T) {
	for _, s := range []string{"image", "/webp", "image/", "/"} {
		if _, _, ok := SplitMediaType(s); ok {
			t.Fatalf("SplitMediaType(%q) reported ok", s)
		}
	}
}
