package cmd

import (
	"fmt"
	"strings"

	"github.com/NoLifeDev/NoLifeNx/nx"
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [archive] [path]",
	Short: "Walk and print a subtree",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		archivePath, path, err := archiveAndPath(args)
		if err != nil {
			return err
		}

		archive, err := nx.Open(archivePath)
		if err != nil {
			return err
		}
		defer archive.Close()

		root := resolvePath(archive, path)
		if !root.IsValid() {
			return fmt.Errorf("dump: no node at %q", path)
		}
		printSubtree(cmd, root, 0)
		return nil
	},
}

func printSubtree(cmd *cobra.Command, n nx.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(cmd.OutOrStdout(), "%s%s [%s]", indent, n.Name(), n.Type())
	switch n.Type() {
	case nx.TypeInt64, nx.TypeDouble, nx.TypeString:
		fmt.Fprintf(cmd.OutOrStdout(), " = %s", n.GetString())
	case nx.TypeVector:
		x, y := n.GetVector()
		fmt.Fprintf(cmd.OutOrStdout(), " = (%d, %d)", x, y)
	case nx.TypeBitmap:
		b := n.GetBitmap()
		fmt.Fprintf(cmd.OutOrStdout(), " = %dx%d bitmap", b.Width(), b.Height())
	case nx.TypeAudio:
		fmt.Fprintf(cmd.OutOrStdout(), " = %d bytes audio", n.GetAudio().Length())
	}
	fmt.Fprintln(cmd.OutOrStdout())

	for _, child := range n.Children() {
		printSubtree(cmd, child, depth+1)
	}
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
