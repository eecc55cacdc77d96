package cmd

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

//go:embed assets/line-view.desktop
var desktopEntry []byte

//go:embed assets/application-x-lineview.xml
var mimeTypeXML []byte

var applicationExec string

var applicationCmd = &cobra.Command{
	Use:   "application [file]",
	Short: "Write the XDG .desktop entry",
	Long: `Writes the desktop entry for line-view documents to the given file, or
stdout when none is given. The Exec line points at the current executable
unless --exec overrides it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exe := applicationExec
		if exe == "" {
			current, err := os.Executable()
			if err != nil {
				return fmt.Errorf("determining current executable: %w", err)
			}
			exe = current
		}

		content := make([]byte, 0, len(desktopEntry)+len(exe)+32)
		content = append(content, desktopEntry...)
		content = append(content, "Exec="...)
		content = append(content, escapeExec(exe)...)
		content = append(content, " print %f\n"...)

		return writeAsset(args, content)
	},
}

var mimeTypeCmd = &cobra.Command{
	Use:   "mime-type [file]",
	Short: "Write the XDG MIME type XML",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeAsset(args, mimeTypeXML)
	},
}

// escapeExec escapes an executable path for a desktop entry Exec value.
func escapeExec(path string) []byte {
	escaped := make([]byte, 0, len(path))
	for i := 0; i < len(path); i++ {
		switch path[i] {
		case ' ':
			escaped = append(escaped, `\s`...)
		case '\t':
			escaped = append(escaped, `\t`...)
		case '\n':
			escaped = append(escaped, `\n`...)
		case '\r':
			escaped = append(escaped, `\r`...)
		case '\\':
			escaped = append(escaped, `\\`...)
		default:
			escaped = append(escaped, path[i])
		}
	}
	return escaped
}

// writeAsset writes content to the optional destination argument, stdout
// otherwise.
func writeAsset(args []string, content []byte) error {
	if len(args) == 0 || args[0] == "-" {
		_, err := os.Stdout.Write(content)
		return err
	}
	if err := os.WriteFile(args[0], content, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", args[0], err)
	}
	detail("wrote %s", args[0])
	return nil
}

func init() {
	applicationCmd.Flags().StringVarP(&applicationExec, "exec", "e", "", "executable to use for the Exec line")
	rootCmd.AddCommand(applicationCmd)
	rootCmd.AddCommand(mimeTypeCmd)
}
