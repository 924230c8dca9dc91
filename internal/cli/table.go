package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rubyfront/parser-go/pkg/parser"
)

var tableOut string

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Export the generated parse table as a YAML snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := parser.ProgramTable()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if tableOut != "" {
			f, err := os.Create(tableOut)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}
		if err := table.WriteSnapshot(out); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "%d states, %d productions, %d conflicts resolved\n",
			len(table.Rows), len(table.Productions), table.ResolvedConflicts)
		return nil
	},
}

func init() {
	tableCmd.Flags().StringVarP(&tableOut, "out", "o", "", "write the snapshot to a file instead of stdout")
}
