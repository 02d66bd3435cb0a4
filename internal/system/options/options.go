// Released under an MIT license. See LICENSE.

// Package options parses the calculator's command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

//nolint:gochecknoglobals
var (
	command     string
	interactive bool
	usage       = `rat - exact rational calculator

Usage:
  rat [-i] [-c EXPRESSION]
  rat -h
  rat -v

Options:
  -c, --command=EXPRESSION  Evaluate the expression and exit.
  -i, --interactive         Invert interactive mode.
  -h, --help                Display this help.
  -v, --version             Print rat version.

An expression is a value followed by operator/value pairs, evaluated
left to right: integers, fractions (2/3), mixed numbers (1..3/4),
decimals (exact with a repeat marker such as 0.#3, otherwise read as a
half-unit interval), continued fractions (3.~7), and interval ranges
(1.23[+-5]). Operators are + - * / ^.

If rat's stdin is a TTY and no expression was given, the prompt is
interactive with line editing and history. Otherwise expressions are
read from stdin, one per line.
`
)

func Command() string {
	return command
}

func Interactive() bool {
	return interactive
}

func Parse(version string) {
	opts, err := docopt.ParseArgs(usage, nil, version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	command, _ = opts.String("--command")

	if command == "" && isatty.IsTerminal(os.Stdin.Fd()) {
		interactive = true
	}

	invert, _ := opts.Bool("--interactive")
	interactive = interactive != invert
}
