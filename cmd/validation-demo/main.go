// Command validation-demo drives the engine interactively from a terminal:
// a handful of fields with different criteria, a textual "shake" as the
// invalid-input indicator, and sanitizers that fix rejected input.
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	"github.com/zoumapps/validation/pkg/criteria"
	"github.com/zoumapps/validation/pkg/field"
	"github.com/zoumapps/validation/pkg/logger"
	"github.com/zoumapps/validation/pkg/sanitizer"
)

type demoField struct {
	name  string
	field *field.Field
}

func main() {
	log := logger.New(logger.WithLevel(slog.LevelWarn))

	shake := func() { fmt.Println("  \\(!)/ invalid input") }

	fields := []demoField{
		{"email", field.New(
			field.WithKind(criteria.Email),
			field.WithSanitizer(sanitizer.Compose(sanitizer.Trim, sanitizer.ToLower, sanitizer.NormalizeEmail)),
			field.WithIndicator(shake),
		)},
		{"homepage", field.New(
			field.WithKind(criteria.URL),
			field.WithSanitizer(sanitizer.NormalizeURL),
			field.WithIndicator(shake),
		)},
		{"favorite color", field.New(
			field.WithKind(criteria.HexColor),
			field.WithSanitizer(sanitizer.NormalizeHexColor),
			field.WithIndicator(shake),
		)},
		{"pin", field.New(
			field.WithCustomPattern(`[0-9]{4}`),
			field.WithIndicator(shake),
		)},
	}

	scanner := bufio.NewScanner(os.Stdin)
	for _, df := range fields {
		fmt.Printf("%s: ", df.name)
		for scanner.Scan() {
			text := scanner.Text()
			df.field.NotifyTextChanged()

			if df.field.ShowValidity(text) {
				fmt.Printf("  ok: %q\n", text)
				break
			}

			if fixed, rewritten := df.field.Sanitize(text); rewritten {
				df.field.NotifyTextChanged()
				if df.field.CheckValidity(fixed) {
					fmt.Printf("  fixed to %q\n", fixed)
					break
				}
				fmt.Printf("  tried %q, still invalid\n", fixed)
			}
			fmt.Printf("%s: ", df.name)
		}
	}

	if err := scanner.Err(); err != nil {
		log.Error("read input", "error", err)
		os.Exit(1)
	}
}
