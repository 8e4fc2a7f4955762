package str

import "github.com/jinzhu/inflection"

// Pluralize returns the plural form of an English noun.
func Pluralize(noun string) string { return inflection.Plural(noun) }

// Singularize returns the singular form of an English noun.
func Singularize(noun string) string { return inflection.Singular(noun) }

// Pluralized returns the form of noun that agrees with count: plural when
// count is greater than one, singular otherwise.
//
//	Pluralized("post", 3) → "posts"
//	Pluralized("posts", 1) → "post"
func Pluralized(noun string, count int) string {
	if count > 1 {
		return Pluralize(noun)
	}
	return Singularize(noun)
}
