package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/fslat/internal/bench"
	"github.com/wesleyorama2/fslat/internal/config"
	"github.com/wesleyorama2/fslat/internal/output"
	"github.com/wesleyorama2/fslat/internal/stats"
)

var version = "0.1.0"

// Exit codes returned by Run.
const (
	ExitOK      = 0
	ExitUsage   = 1
	ExitRuntime = 2
)

// NewRootCmd builds the fslat command tree. Log output goes to stderr.
func NewRootCmd(stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "fslat",
		Short:   "Measure filesystem write latency",
		Version: version,
		Long: `fslat measures the latency of synchronous file writes. Each sample
creates a new file in a fresh working directory, writes a fixed number of
bytes to it and closes it. When all samples are taken the min, p25, p50,
p75 and max latencies are printed in microseconds.

The working directory must not exist; files are left in place after the run.

  fslat --file-size 4096 --num-samples 10000 --dir /mnt/scratch/.testing`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveOptions(cmd)
			if err != nil {
				return err
			}
			verbose, _ := cmd.Flags().GetBool("verbose")

			return runWrite(opts, output.NewLogger(stderr, opts.NoColor), verbose)
		},
	}

	rootCmd.SetErr(stderr)

	rootCmd.Flags().Int("file-size", config.DefaultFileSize, "Bytes written to each file")
	rootCmd.Flags().Int("num-samples", config.DefaultNumSamples, "Number of files to write")
	rootCmd.Flags().String("dir", bench.DefaultDir, "Working directory to create for the test files")
	rootCmd.Flags().StringP("config", "c", "", "YAML or JSON file with benchmark options")
	rootCmd.Flags().String("profile", "", "Path of the options object inside the config file (e.g. profiles.nvme)")
	rootCmd.Flags().BoolP("verbose", "v", false, "Also print mean and standard deviation")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	rootCmd.AddCommand(newReadCmd(stderr))

	return rootCmd
}

// resolveOptions merges defaults, the optional config file and explicitly set
// flags, in that order.
func resolveOptions(cmd *cobra.Command) (*config.Options, error) {
	opts := config.Defaults()

	flags := cmd.Flags()
	path, _ := flags.GetString("config")
	profile, _ := flags.GetString("profile")
	if profile != "" && path == "" {
		return nil, errors.New("--profile requires --config")
	}
	if path != "" {
		loaded, err := config.LoadFile(path, profile)
		if err != nil {
			return nil, fmt.Errorf("error loading config: %w", err)
		}
		opts = loaded
	}

	if flags.Changed("file-size") {
		opts.FileSize, _ = flags.GetInt("file-size")
	}
	if flags.Changed("num-samples") {
		opts.NumSamples, _ = flags.GetInt("num-samples")
	}
	if flags.Changed("dir") {
		opts.Dir, _ = flags.GetString("dir")
	}
	if flags.Changed("no-color") {
		opts.NoColor, _ = flags.GetBool("no-color")
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// runWrite takes the samples and prints their percentiles.
func runWrite(opts *config.Options, logger *output.Logger, verbose bool) error {
	logger.Config(opts.FileSize, opts.NumSamples)

	samples, err := bench.NewSampler(opts.Dir, opts.FileSize, opts.NumSamples).Run()
	if err != nil {
		return fmt.Errorf("benchmark failed: %w", err)
	}

	summary, err := stats.Summarize(samples)
	if err != nil {
		return err
	}

	logger.Percentiles(summary)
	if verbose {
		logger.Distribution(summary)
	}
	return nil
}

// ExitCode maps an error returned by the command tree to a process exit code.
// Filesystem failures and empty sample sets are runtime errors; everything
// else (flags, arguments, config files) is a usage error.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var ioErr *bench.IOError
	if errors.As(err, &ioErr) || errors.Is(err, stats.ErrNoSamples) {
		return ExitRuntime
	}
	return ExitUsage
}

// Run executes the command tree with args and returns the exit code.
func Run(args []string, stderr io.Writer) int {
	rootCmd := NewRootCmd(stderr)
	rootCmd.SetArgs(args)

	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return ExitOK
	}

	noColor, _ := cmd.Flags().GetBool("no-color")
	logger := output.NewLogger(stderr, noColor)
	logger.Errorf("%v", err)

	code := ExitCode(err)
	if code == ExitUsage {
		logger.Infof("Run '%s --help' for usage.", cmd.CommandPath())
	}
	return code
}

// Execute runs fslat with the process arguments.
// This is called by main.main().
func Execute() int {
	return Run(os.Args[1:], os.Stderr)
}
