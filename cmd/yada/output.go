// Shared output and argument helpers for yada CLI commands.
package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/yada/pkg/types"
)

var (
	titleColor = color.New(color.Bold, color.Underline)
	faintColor = color.New(color.Faint)
	totalColor = color.New(color.Bold)
	warnColor  = color.New(color.FgHiYellow)
	okColor    = color.New(color.FgGreen)
)

func printTitle(w io.Writer, title string) {
	_, _ = titleColor.Fprintln(w, title)
}

func printNone(w io.Writer) {
	_, _ = faintColor.Fprintln(w, " none")
}

func printOK(w io.Writer, format string, args ...any) {
	_, _ = okColor.Fprintf(w, format+"\n", args...)
}

func printWarn(w io.Writer, format string, args ...any) {
	_, _ = warnColor.Fprintf(w, format+"\n", args...)
}

// printTable writes a header and rows as aligned columns.
func printTable(w io.Writer, header []any, rows [][]any) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.AddRow(header...)
	for _, r := range rows {
		tbl.AddRow(r...)
	}
	_, _ = fmt.Fprintln(w, tbl)
}

// printFoods lists foods with their calories per serving.
func printFoods(w io.Writer, foods []*types.Food, r types.Resolver) {
	if len(foods) == 0 {
		printNone(w)
		return
	}
	rows := make([][]any, 0, len(foods))
	for _, f := range foods {
		rows = append(rows, []any{
			f.ID,
			strings.ToLower(string(f.Kind)),
			formatCalories(f.CaloriesPerServing(r)),
			strings.Join(f.Keywords, ", "),
		})
	}
	printTable(w, []any{"ID", "KIND", "CALORIES", "KEYWORDS"}, rows)
}

// formatCalories renders a calorie value, or "?" when it cannot be computed.
func formatCalories(v float64, err error) string {
	if err != nil {
		return "?"
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// parseNumber parses a non-negative decimal argument.
func parseNumber(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s %q", errInvalidNumber, name, s)
	}
	return v, nil
}

// exactArgs is cobra.ExactArgs with usage errors marked as user errors.
func exactArgs(n int) cobra.PositionalArgs {
	return wrapArgs(cobra.ExactArgs(n))
}

func wrapArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		return nil
	}
}

// dateFlag registers --date on cmd, defaulting to today.
func dateFlag(cmd *cobra.Command, date *string) {
	cmd.Flags().StringVarP(date, "date", "d", "", "date as DD-MM-YYYY (default: today)")
}

func resolveDate(date string) string {
	if date == "" {
		return types.Today()
	}
	return date
}
