package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JHUAPL/meta-simulator/internal/fasta"
)

// newCountCmd returns the command for counting records in FASTA files
func newCountCmd() *cobra.Command {
	countCmd := &cobra.Command{
		Use:   "count",
		Short: "Count the records in FASTA files",
		Long: `Count the records in FASTA files

Prints one line per input with the input's path and its record count, a quick
check of how many files a split will write.`,
		Args: cobra.NoArgs,
		RunE: countExec,
	}

	countCmd.Flags().StringSliceP("in", "i", nil, "input FASTA file(s), comma separated or repeated")
	countCmd.MarkFlagRequired("in")

	return countCmd
}

func countExec(cmd *cobra.Command, args []string) error {
	ins, err := cmd.Flags().GetStringSlice("in")
	if err != nil {
		return fmt.Errorf("failed to parse in flag: %w", err)
	}

	for _, in := range ins {
		n, err := fasta.Count(in)
		if err != nil {
			return fmt.Errorf("failed to count records in %s: %w", in, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", in, n)
	}

	return nil
}
