package rfc9110

import (
	"reflect"
	"testing"
)

func TestParseAcceptEncoding(t *testing.T) {
	got := ParseAcceptEncoding("gzip;q=1.0, identity; q=0.5, *;q=0")
	want := []Coding{
		{"gzip", 1},
		{"identity", 0.5},
		{"*", 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseAcceptEncodingEmpty(t *testing.T) {
	if got := ParseAcceptEncoding(""); got != nil {
		t.Fatalf("got %v", got)
	}
	if got := ParseAcceptEncoding(" , ;q=0.5"); got != nil {
		t.Fatalf("got %v", got)
	}
}
