// Command postfix translates fully parenthesized prefix expressions such as
// (+ 1 (* 2 3)) into postfix notation.
package main

import (
	"os"

	"github.com/mattn/go-isatty"
)

func main() {
	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	app := newApp(interactive)
	app.RunAndExitOnError()
}
