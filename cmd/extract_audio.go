package cmd

import (
	"fmt"
	"os"

	"github.com/NoLifeDev/NoLifeNx/nx"
	"github.com/spf13/cobra"
)

var extractAudioCmd = &cobra.Command{
	Use:   "extract-audio <archive> <path> [out.bin]",
	Short: "Dump one audio blob",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		archive, err := nx.Open(args[0])
		if err != nil {
			return err
		}
		defer archive.Close()

		node := resolvePath(archive, args[1])
		if !node.IsValid() || node.Type() != nx.TypeAudio {
			return fmt.Errorf("extract-audio: %q is not an audio node", args[1])
		}

		audio := node.GetAudio()

		explicitOut := ""
		if len(args) == 3 {
			explicitOut = args[2]
		}
		destPath := outputPath(args[1], explicitOut, ".bin")

		if verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "dumping %d bytes of audio to %s\n", audio.Length(), destPath)
		}
		return os.WriteFile(destPath, audio.Data(), 0o644)
	},
}

func init() {
	rootCmd.AddCommand(extractAudioCmd)
}
