// Version command for the yada CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/yada/pkg/yada"
)

const modulePath = "github.com/mesh-intelligence/yada"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print the yada version",
		Args:        exactArgs(0),
		Annotations: map[string]string{annotationNoStore: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "yada v%s\nmodule: %s\n", yada.Version, modulePath)
			return nil
		},
	}
}
