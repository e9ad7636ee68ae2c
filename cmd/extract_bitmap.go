package cmd

import (
	"fmt"
	"os"

	"github.com/NoLifeDev/NoLifeNx/nx"
	"github.com/spf13/cobra"
)

var extractBitmapCmd = &cobra.Command{
	Use:   "extract-bitmap <archive> <path> [out.rgba]",
	Short: "Decode one bitmap to a raw RGBA file",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		archive, err := nx.Open(args[0])
		if err != nil {
			return err
		}
		defer archive.Close()

		node := resolvePath(archive, args[1])
		if !node.IsValid() || node.Type() != nx.TypeBitmap {
			return fmt.Errorf("extract-bitmap: %q is not a bitmap node", args[1])
		}

		bmp := node.GetBitmap()
		out, err := bmp.Data(bmp.NewOutputBuffer())
		if err != nil {
			return err
		}

		explicitOut := ""
		if len(args) == 3 {
			explicitOut = args[2]
		}
		destPath := outputPath(args[1], explicitOut, ".rgba")

		if verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "decoded %dx%d bitmap (%d bytes) to %s\n", bmp.Width(), bmp.Height(), len(out), destPath)
		}
		return os.WriteFile(destPath, out, 0o644)
	},
}

func init() {
	rootCmd.AddCommand(extractBitmapCmd)
}
