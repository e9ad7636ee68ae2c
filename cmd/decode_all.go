package cmd

import (
	"fmt"
	"time"

	"github.com/NoLifeDev/NoLifeNx/nx"
	"github.com/spf13/cobra"
)

var decodeAllCmd = &cobra.Command{
	Use:   "decode-all [archive] [path]",
	Short: "Concurrently decode every bitmap under a subtree",
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
			return fmt.Errorf("decode-all: no node at %q", path)
		}

		bitmaps := collectBitmaps(root, nil, map[uint64]bool{})
		if len(bitmaps) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no bitmaps found")
			return nil
		}

		start := time.Now()
		decoded, err := nx.DecodeBitmaps(bitmaps, effectiveWorkers())
		elapsed := time.Since(start)

		total := 0
		for _, d := range decoded {
			total += len(d)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "decoded %d bitmaps (%d bytes) in %s using %d workers\n",
			len(bitmaps), total, elapsed, effectiveWorkers())
		return err
	},
}

// collectBitmaps walks n's subtree depth-first, appending every distinct
// bitmap blob found. A blob reached through more than one tree path is
// only queued once, keyed by Bitmap.ID, so decode-all's work and reported
// byte count reflect the archive's actual blob set rather than the
// number of tree paths leading to it.
func collectBitmaps(n nx.Node, bitmaps []nx.Bitmap, seen map[uint64]bool) []nx.Bitmap {
	if n.Type() == nx.TypeBitmap {
		b := n.GetBitmap()
		if !seen[b.ID()] {
			seen[b.ID()] = true
			bitmaps = append(bitmaps, b)
		}
	}
	for _, child := range n.Children() {
		bitmaps = collectBitmaps(child, bitmaps, seen)
	}
	return bitmaps
}

func init() {
	rootCmd.AddCommand(decodeAllCmd)
}
