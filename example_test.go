package acceptmatch_test

import (
	"fmt"

	acceptmatch "github.com/accept-match/accept-match"
)

func ExampleMatchEncoding() {
	header := "br;q=0.9, gzip;q=0.8, *;q=0.1"

	br := acceptmatch.MatchEncoding(header, "br")
	zstd := acceptmatch.MatchEncoding(header, "zstd")

	fmt.Printf("br: %s at q=%v\n", br.Type, br.Q)
	fmt.Printf("zstd: %s at q=%v\n", zstd.Type, zstd.Q)
	fmt.Println("serve br:", br.IsBetterThan(zstd))
	// Output:
	// br: exact at q=0.9
	// zstd: wildcard at q=0.1
	// serve br: true
}

func ExampleMatchMimeType() {
	header := "image/avif,image/webp,image/*;q=0.8,*/*;q=0.5"

	webp := acceptmatch.MatchMimeType(header, "image/webp")
	png := acceptmatch.MatchMimeType(header, "image/png")

	fmt.Printf("image/webp: %s at q=%v\n", webp.Type, webp.Q)
	fmt.Printf("image/png: %s at q=%v\n", png.Type, png.Q)
	fmt.Println("prefer webp:", webp.IsBetterThan(png))
	// Output:
	// image/webp: exact at q=1
	// image/png: subtype wildcard at q=0.8
	// prefer webp: true
}
