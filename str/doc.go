// Package str provides standalone string helpers inspired by Laravel's Str
// facade: case conversion, slugs, masking, truncation, wildcard matching and
// random generation.
//
// Every helper is rune-aware: lengths, offsets and masks count characters,
// not bytes.
//
//	str.Snake("HTTPServerError")       // → "http_server_error"
//	str.Camel("user_id")               // → "userId"
//	str.Mask("4111111111111111", 4, "*") // → "************1111"
//	str.Is("library/*", "library/arr") // → true
//
// # Slugs
//
// Slug generation is configured through an explicitly constructed [Slugger];
// there is no package-level cache to initialise:
//
//	s := str.NewSlugger(str.SlugOptions{Separator: "_"})
//	s.Slug("Crème Brûlée & Co") // → "creme_brulee_co"
//
// # Randomness
//
// [Random] and [RandomBytes] read from crypto/rand.
package str
