package locale_test

import (
	"fmt"

	"github.com/hasbyte1/go-stdx/locale"
)

func ExampleCountryName() {
	name, ok := locale.CountryName("de")
	fmt.Println(name, ok)
	// Output: Germany true
}

func ExampleMatch() {
	fmt.Println(locale.Match("fr-CA,fr;q=0.8,en;q=0.5", locale.DefaultLocale))
	fmt.Println(locale.Match("", locale.DefaultLocale))
	// Output:
	// fr-CA
	// en-US
}
