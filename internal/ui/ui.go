// Released under an MIT license. See LICENSE.

// Package ui provides the calculator's interactive prompt.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/peterh/liner"
)

// Evaluate is called with each line of input and returns the text to
// display.
type Evaluate func(line string) (string, error)

// Run reads lines until end of input or an "exit" command, passing
// each to evaluate.
func Run(evaluate Evaluate) {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)

	for {
		line, err := cli.Prompt("> ")

		switch err {
		case nil:
		case liner.ErrPromptAborted:
			continue
		default:
			fmt.Println()

			return
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		cli.AppendHistory(line)

		if trimmed == "exit" || trimmed == "quit" {
			return
		}

		out, err := evaluate(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())

			continue
		}

		if out != "" {
			fmt.Println(out)
		}
	}
}
