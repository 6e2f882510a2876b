// Export command: SQLite snapshot of the catalog and logs.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

const defaultExportFile = "yada.db"

func newExportCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog and logs to a SQLite database",
		Long: "Write a fresh SQLite database with the tables foods, food_keywords,\n" +
			"food_components and log_entries. An existing file is replaced.",
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := out
			if path == "" {
				path = filepath.Join(a.store.Config.DataDir, defaultExportFile)
			}
			stats, err := a.store.Export(cmd.Context(), path)
			if err != nil {
				return err
			}
			printOK(cmd.OutOrStdout(), "Exported %d foods and %d entries over %d dates to %s",
				stats.Foods, stats.Entries, stats.Dates, path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", fmt.Sprintf("database file (default: <data-dir>/%s)", defaultExportFile))
	return cmd
}
