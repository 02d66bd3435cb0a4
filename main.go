/*
Rat is an exact rational calculator. Every value is a ratio of
unbounded integers or a closed interval of such ratios; nothing is ever
rounded to floating point. The following expressions behave as
expected:

	1/3 + 1/7
	0.#3 * 3
	1..3/4 ^ 2
	1.23 + 0.01
	22/7 - 3.~7

For more detail, see the package documentation under pkg/.

Rat is released under an MIT-style license.
*/
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/exactrat/ratio/internal/system/options"
	"github.com/exactrat/ratio/internal/ui"
	"github.com/exactrat/ratio/pkg/num"
)

const version = "rat 0.3.0"

func main() {
	options.Parse(version)

	if command := options.Command(); command != "" {
		out, err := evaluate(command)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}

		fmt.Println(out)

		return
	}

	if options.Interactive() {
		ui.Run(evaluate)

		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		out, err := evaluate(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())

			continue
		}

		fmt.Println(out)
	}
}

// evaluate computes a whitespace-separated chain "value op value ..."
// left to right. It is deliberately not an expression language; the
// tokens are exactly the numeral grammars plus the five operators.
func evaluate(line string) (string, error) {
	tokens := strings.Fields(line)

	if len(tokens)%2 == 0 {
		return "", fmt.Errorf("expected a value followed by operator/value pairs")
	}

	acc, err := num.Parse(tokens[0])
	if err != nil {
		return "", err
	}

	for k := 1; k < len(tokens); k += 2 {
		op, text := tokens[k], tokens[k+1]

		if op == "^" {
			e, err := strconv.ParseInt(text, 10, 64)
			if err != nil {
				return "", fmt.Errorf("exponent must be an integer: %q", text)
			}

			acc, err = acc.Pow(e)
			if err != nil {
				return "", err
			}

			continue
		}

		rhs, err := num.Parse(text)
		if err != nil {
			return "", err
		}

		switch op {
		case "+":
			acc = acc.Add(rhs)
		case "-":
			acc = acc.Sub(rhs)
		case "*":
			acc = acc.Mul(rhs)
		case "/":
			acc, err = acc.Div(rhs)
			if err != nil {
				return "", err
			}
		default:
			return "", fmt.Errorf("unknown operator %q", op)
		}
	}

	return acc.String(), nil
}
