package main

import (
	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-securepass/hashing"
)

func newAlgorithmsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List supported PBKDF2 variants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var out algorithmsResult
			for _, a := range hashing.SupportedAlgorithms() {
				d, _ := a.Driver()
				out.Algorithms = append(out.Algorithms, algorithmEntry{Name: string(a), Driver: string(d)})
			}
			return render(cmd.OutOrStdout(), c.settings.Output, out)
		},
	}
}
