package cmd

import (
	"fmt"

	"github.com/NoLifeDev/NoLifeNx/nx"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get [archive] <path>",
	Short: "Print one node's scalar value",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		archivePath := args[0]
		path := args[len(args)-1]
		if len(args) == 1 {
			def, ok := defaultArchivePath()
			if !ok {
				return fmt.Errorf("get: no archive given and no default archive configured")
			}
			archivePath = def
		}

		archive, err := nx.Open(archivePath)
		if err != nil {
			return err
		}
		defer archive.Close()

		node := resolvePath(archive, path)
		if !node.IsValid() {
			return fmt.Errorf("get: no node at %q", path)
		}
		fmt.Fprintln(cmd.OutOrStdout(), node.GetString())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
