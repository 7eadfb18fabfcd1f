package main

import (
	"os"

	"github.com/hexkit/hexkit/app"
)

// main is the single process entry point: it hands the argument vector to
// the kernel, which runs one scan-and-register pass and then serves until
// externally terminated. A wiring defect aborts startup here; the process
// never starts partially wired.
func main() {
	app.New().Run(os.Args)
}
