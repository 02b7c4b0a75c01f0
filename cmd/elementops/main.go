package main

import (
	basecmd "github.com/fabianp19/Linq/cmd"
	"github.com/fabianp19/Linq/internal/cli"
)

func main() {
	basecmd.Run(&cli.CLI{}, "elementops", "Run the element operation samples")
}
