package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <script>",
		Short: "Print the flattened dependency order for a script",
		Long: `Resolve flattens the dependency graph of the given script and prints the
resulting sequence, one script per line, with every dependency strictly
before the scripts that require it. The argument is either a search-relative
name ("app" or "app.js") or an explicit "origin:path" address.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scripts, err := c.app.Resolve(cmd.Context(), configFlag(cmd), args[0])
			if err != nil {
				return err
			}

			for _, s := range scripts {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), s.Path())
			}
			return nil
		},
	}
	return cmd
}
