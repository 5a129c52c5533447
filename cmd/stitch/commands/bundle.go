package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func (c *CLI) newBundleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bundle <script>",
		Short: "Emit the concatenated bundle for a script's dependency sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := c.app.Bundle(cmd.Context(), configFlag(cmd), args[0])
			if err != nil {
				return err
			}

			output, _ := cmd.Flags().GetString("output")
			if output == "" {
				_, err = cmd.OutOrStdout().Write(b.Data)
			} else {
				err = os.WriteFile(output, b.Data, 0o644) //nolint:gosec // Bundle output is world-readable by design of web assets
			}
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "bundle %s (%d scripts, %d bytes)\n",
				b.Fingerprint, len(b.Scripts), len(b.Data))
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "", "Write the bundle to a file instead of stdout")
	return cmd
}
