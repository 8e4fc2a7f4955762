// Command stdx exposes the go-stdx path accessor, string helpers and locale
// tables on the command line.
package main

import (
	"os"
	_ "time/tzdata"

	"github.com/hasbyte1/go-stdx/cmd/stdx/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
