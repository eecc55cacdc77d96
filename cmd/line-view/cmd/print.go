package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bianoble/line-view/internal/config"
	"github.com/bianoble/line-view/internal/view"
)

var printOutput string

// Rendering prefixes of the text output contract.
const (
	titlePrefix   = "-- "
	warningPrefix = "[warning] "
)

var printCmd = &cobra.Command{
	Use:   "print [file]",
	Short: "Parse a line-view document and print it as text",
	Long: `Parses the document (stdin when no file or '-' is given), resolving all
imports, and prints the resulting lines. Title lines are prefixed '-- ',
warning lines '[warning] '. Malformed directives and failed includes show
up as warning lines; only failure to read the root source is fatal.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings()
		if err != nil {
			return err
		}

		v, err := readView(cmd, args, cfg)
		if err != nil {
			return err
		}

		out := io.Writer(os.Stdout)
		styled := colorEnabled(cfg)
		if printOutput != "" {
			f, createErr := os.Create(printOutput)
			if createErr != nil {
				return fmt.Errorf("creating output %s: %w", printOutput, createErr)
			}
			defer f.Close()
			out = f
			styled = false
		}

		w := bufio.NewWriter(out)
		for i := range v.Lines() {
			writeLine(w, v.At(i), styled)
		}
		return w.Flush()
	},
}

// readView parses the document named by args, or stdin.
func readView(cmd *cobra.Command, args []string, cfg *config.Config) (*view.LineView, error) {
	home := resolveHome(cfg)
	provider := view.FileProvider{}

	if len(args) == 0 || args[0] == "-" {
		return view.ReadBuffer(cmd.InOrStdin(), provider, home)
	}
	return view.ReadPath(args[0], provider, home)
}

func writeLine(w *bufio.Writer, line *view.Line, styled bool) {
	switch {
	case line.IsTitle() && styled:
		w.WriteString(titleStyle.Render(titlePrefix + line.Text()))
	case line.IsTitle():
		w.WriteString(titlePrefix)
		w.WriteString(line.Text())
	case line.IsWarning() && styled:
		w.WriteString(warningStyle.Render(warningPrefix + line.Text()))
	case line.IsWarning():
		w.WriteString(warningPrefix)
		w.WriteString(line.Text())
	default:
		w.WriteString(line.Text())
	}
	w.WriteByte('\n')
}

func init() {
	printCmd.Flags().StringVarP(&printOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(printCmd)
}
