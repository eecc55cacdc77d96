package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <file> <line-nr>",
	Short: "Execute the command bound to one line of a document",
	Long: `Parses the document and spawns the command bound to the given output
line (1-based, counting the printed lines). The line's own text is passed
as the trailing argument, and the process receives LINE_VIEW_LINE_NR and
LINE_VIEW_LINE_SRC in its environment. Lines without a command are a
no-op.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings()
		if err != nil {
			return err
		}

		nr, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("line number %q is not a number", args[1])
		}

		v, err := readView(cmd, args[:1], cfg)
		if err != nil {
			return err
		}

		if nr < 1 || nr > v.Len() {
			return fmt.Errorf("line %d is out of range, document has %d lines", nr, v.Len())
		}

		line := v.At(nr - 1)
		if !line.HasCommand() {
			info("line %d has no command bound", nr)
			return nil
		}

		detail("executing line %d of %s", nr, v.Title())
		return line.Execute()
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
