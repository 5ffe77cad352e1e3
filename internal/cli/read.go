package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/fslat/internal/bench"
	"github.com/wesleyorama2/fslat/internal/output"
)

func newReadCmd(stderr io.Writer) *cobra.Command {
	readCmd := &cobra.Command{
		Use:   "read FILE",
		Short: "Read a file end to end and print its checksum",
		Long: `Read FILE sequentially in 256 KiB chunks, summing its contents as
little-endian 64-bit words so every byte is touched. With --mmap the file is
mapped into memory instead of read.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			useMmap, _ := cmd.Flags().GetBool("mmap")
			noColor, _ := cmd.Flags().GetBool("no-color")

			read := bench.ReadFile
			if useMmap {
				read = bench.MapFile
			}

			result, err := read(args[0])
			if err != nil {
				return err
			}

			output.NewLogger(stderr, noColor).ReadResult(result)
			return nil
		},
	}

	readCmd.Flags().Bool("mmap", false, "Map the file instead of reading it")

	return readCmd
}
