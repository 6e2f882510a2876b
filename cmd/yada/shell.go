// Shell command: an interactive session that keeps the store open so undo
// works across commands.
package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

const shellPrompt = "yada> "

const shellHelp = `Enter yada commands without the "yada" prefix, for example:
  log add apple 1
  log undo
Session commands:
  save    write the logs, the catalog and the profile
  quit    save and leave
  exit!   leave without saving the logs and the profile
`

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive session",
		Long: "Start an interactive session. The catalog and logs stay loaded between\n" +
			"commands, so log undo can reverse earlier adds and removes.\n" +
			"End of input behaves like quit.",
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.interactive {
				return fmt.Errorf("%w: already in a shell", errUsage)
			}
			a.interactive = true
			defer func() { a.interactive = false }()
			return runShell(cmd, a)
		},
	}
}

func runShell(cmd *cobra.Command, a *app) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	fmt.Fprint(out, shellHelp)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, shellPrompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}
		fields := splitFields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "exit!":
			printWarn(out, "Leaving without saving the logs")
			return nil
		case "quit", "exit":
			return a.store.Save()
		case "save":
			if err := a.store.Save(); err != nil {
				fmt.Fprintln(errOut, "Error:", err)
				continue
			}
			printOK(out, "Saved")
			continue
		case "help", "?":
			fmt.Fprint(out, shellHelp)
			if len(fields) == 1 {
				continue
			}
			fields = append(fields[1:], "--help")
		}

		sub := newRootCmd(a)
		sub.SetArgs(fields)
		sub.SetIn(cmd.InOrStdin())
		sub.SetOut(out)
		sub.SetErr(errOut)
		if err := sub.ExecuteContext(cmd.Context()); err != nil {
			fmt.Fprintln(errOut, "Error:", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return a.store.Save()
}

// splitFields splits a command line on whitespace. Double quotes group
// words so IDs with spaces can be typed.
func splitFields(line string) []string {
	var (
		fields  []string
		current strings.Builder
		quoted  bool
		started bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
			started = true
		case !quoted && (r == ' ' || r == '\t'):
			if started {
				fields = append(fields, current.String())
				current.Reset()
				started = false
			}
		default:
			current.WriteRune(r)
			started = true
		}
	}
	if started {
		fields = append(fields, current.String())
	}
	return fields
}
