// Package cmd is for command line interactions with the seqsep application
package cmd

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/JHUAPL/meta-simulator/config"
	"github.com/JHUAPL/meta-simulator/internal/split"
)

// version can be overridden at build time with -ldflags "-X .../cmd.version=..."
var version = "0.1.0"

// NewRootCmd returns the seqsep command tree. Each tree gets its own viper
// instance so flags and settings don't leak between runs
func NewRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "seqsep",
		Short: "Split a multi-FASTA file into one FASTA file per record",
		Long: `Split a multi-FASTA file into one FASTA file per record

Each record is written to <out>/<identifier>.fasta as a header line and its
sequence on a single line. The identifier is the first word of the header.
Records whose identifier can't be used as a file name (empty, path separators,
control characters) stop the run, as do repeated identifiers and existing files
(unless --force is set).

Inputs ending in ".gz" are decompressed. Multiple inputs are split in order
into the same directory.`,
		Example: `  seqsep -i genomes.fa -o parts
  seqsep -i a.fa,b.fa.gz -o parts -n 100`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return splitExec(cmd, v)
		},
	}

	rootCmd.Flags().StringSliceP("in", "i", nil, "input FASTA file(s), comma separated or repeated")
	rootCmd.Flags().StringP("out", "o", "", "existing directory to write per-record FASTA files to")
	rootCmd.Flags().IntP("count", "n", 0, "max number of files to write across all inputs (0 writes all)")
	rootCmd.Flags().BoolP("force", "f", false, "overwrite existing files in the output directory")

	// settings is an optional settings file (YAML, JSON or TOML) with the same keys as the flags
	rootCmd.Flags().StringP("settings", "s", "", "path to a settings file")
	rootCmd.Flags().Bool("verbose", false, "log each file written")

	bindFlags(v, rootCmd.Flags())

	rootCmd.AddCommand(newCountCmd())
	rootCmd.AddCommand(newDocsCmd())

	return rootCmd
}

// Execute builds the command tree and runs it. This is called by main.main()
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		log.Fatal("seqsep failed", "err", err)
	}
}

// bindFlags binds every flag in fs to the viper key of the same name
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		v.BindPFlag(f.Name, f)
	})
}

// newLogger returns a logger writing to w. Debug logs are only
// emitted when verbose
func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		Prefix: "seqsep",
		Level:  level,
	})
}

// splitExec resolves settings from flags and the settings file and splits the inputs
func splitExec(cmd *cobra.Command, v *viper.Viper) error {
	c, err := config.New(v)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), c.Verbose)
	logger.Debug("settings", "in", c.In, "out", c.Out, "count", c.Count, "force", c.Force)

	start := time.Now()
	n, err := split.Run(c, logger)
	if err != nil {
		return err
	}

	logger.Info("split complete", "files", n, "out", c.Out, "elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}
