// Log commands: record, remove, and review what was eaten on a date.
package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/yada/pkg/types"
)

func newLogCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Manage the daily food log",
	}
	cmd.AddCommand(
		newLogAddCmd(a),
		newLogRemoveCmd(a),
		newLogShowCmd(a),
		newLogClearCmd(a),
		newLogUndoCmd(a),
		newLogDatesCmd(a),
	)
	return cmd
}

func newLogAddCmd(a *app) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:         "add <food-id> <servings>",
		Short:       "Record servings of a food",
		Args:        exactArgs(2),
		Annotations: map[string]string{annotationMutates: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			servings, err := parseNumber("servings", args[1])
			if err != nil {
				return err
			}
			f, err := a.store.Catalog.GetByID(args[0])
			if err != nil {
				return err
			}
			d := resolveDate(date)
			l, err := a.store.Logs.Log(d)
			if err != nil {
				return err
			}
			e := l.AddEntry(f.ID, servings)
			a.store.Logs.AddUndoAction(types.AddedUndo(d, e, l.Len()-1))

			cal, err := e.TotalCalories(a.store.Catalog)
			printOK(cmd.OutOrStdout(), "Logged %s x%s on %s (%s cal)",
				f.ID, types.FormatNumber(servings), d, formatCalories(cal, err))
			return nil
		},
	}
	dateFlag(cmd, &date)
	return cmd
}

func newLogRemoveCmd(a *app) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:         "remove <entry-number>",
		Short:       "Remove an entry by its number in log show",
		Args:        exactArgs(1),
		Annotations: map[string]string{annotationMutates: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: entry number %q", errInvalidNumber, args[0])
			}
			d := resolveDate(date)
			l, err := a.store.Logs.Log(d)
			if err != nil {
				return err
			}
			e, err := l.RemoveEntry(n - 1)
			if err != nil {
				return err
			}
			a.store.Logs.AddUndoAction(types.RemovedUndo(d, e, n-1))
			printOK(cmd.OutOrStdout(), "Removed %s x%s from %s", e.FoodID, types.FormatNumber(e.Servings), d)
			return nil
		},
	}
	dateFlag(cmd, &date)
	return cmd
}

func newLogShowCmd(a *app) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the entries and total calories of a date",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := resolveDate(date)
			l, err := a.store.Logs.Log(d)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printTitle(out, "Log for "+d)

			entries := l.Entries()
			if len(entries) == 0 {
				printNone(out)
			} else {
				rows := make([][]any, 0, len(entries))
				for i, e := range entries {
					rows = append(rows, []any{
						i + 1,
						e.FoodID,
						types.FormatNumber(e.Servings),
						formatCalories(e.TotalCalories(a.store.Catalog)),
					})
				}
				printTable(out, []any{"#", "FOOD", "SERVINGS", "CALORIES"}, rows)
			}

			total, err := l.TotalCalories(a.store.Catalog)
			_, _ = totalColor.Fprintf(out, "Total: %s cal\n", formatCalories(total, err))

			target, err := a.store.TargetCalories()
			switch {
			case errors.Is(err, types.ErrProfileIncomplete):
				_, _ = faintColor.Fprintln(out, "Set a profile to see your daily target.")
			case err != nil:
				return err
			default:
				_, _ = fmt.Fprintf(out, "Target: %s cal\n", formatCalories(target, nil))
				if total > target {
					printWarn(out, "Over target by %s cal", formatCalories(total-target, nil))
				} else {
					_, _ = fmt.Fprintf(out, "Remaining: %s cal\n", formatCalories(target-total, nil))
				}
			}
			return nil
		},
	}
	dateFlag(cmd, &date)
	return cmd
}

func newLogClearCmd(a *app) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:         "clear",
		Short:       "Remove every entry of a date (cannot be undone)",
		Args:        exactArgs(0),
		Annotations: map[string]string{annotationMutates: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			d := resolveDate(date)
			l, err := a.store.Logs.Log(d)
			if err != nil {
				return err
			}
			n := l.Len()
			l.Clear()
			printOK(cmd.OutOrStdout(), "Cleared %d entries from %s", n, d)
			return nil
		},
	}
	dateFlag(cmd, &date)
	return cmd
}

func newLogUndoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:         "undo",
		Short:       "Undo the most recent add or remove of this session",
		Args:        exactArgs(0),
		Annotations: map[string]string{annotationMutates: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := a.store.Logs.Undo()
			if err != nil {
				return err
			}
			verb := "add"
			if item.Action == types.ActionRemove {
				verb = "remove"
			}
			printOK(cmd.OutOrStdout(), "Undid %s of %s x%s on %s",
				verb, item.FoodID, types.FormatNumber(item.Servings), item.Date)
			return nil
		},
	}
}

func newLogDatesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dates",
		Short: "List the dates that have a log",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			dates := a.store.Logs.Dates()
			if len(dates) == 0 {
				printNone(out)
				return nil
			}
			rows := make([][]any, 0, len(dates))
			for _, d := range dates {
				l, err := a.store.Logs.Log(d)
				if err != nil {
					return err
				}
				rows = append(rows, []any{d, l.Len(), formatCalories(l.TotalCalories(a.store.Catalog))})
			}
			printTable(out, []any{"DATE", "ENTRIES", "CALORIES"}, rows)
			return nil
		},
	}
}
