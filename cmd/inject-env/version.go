package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	injectenv "github.com/anton-fomin/inject-env"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of inject-env",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "inject-env version %s\n", strings.TrimSpace(injectenv.Version))
		},
	}
}
