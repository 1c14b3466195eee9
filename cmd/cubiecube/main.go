// cubiecube - CLI for the cubie-level cube state engine.
package main

import (
	"github.com/SeamusWaldron/cubiecube/internal/cli"
)

func main() {
	cli.Execute()
}
