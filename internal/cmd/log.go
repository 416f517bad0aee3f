package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/fatih/color"
	"github.com/harrison/sf/internal/config"
	"github.com/spf13/cobra"
)

// NewLogCommand creates the log command
func NewLogCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "log",
		Short: "Show content of the log file",
		Long: `Print the location and the content of the sf log file.

Every search appends a run header and its warnings and errors to sf.log in
the sf config directory.`,
		Args: cobra.NoArgs,
		RunE: runLog,
	}
}

func runLog(cmd *cobra.Command, args []string) error {
	logPath, err := config.LogPath()
	if err != nil {
		return fmt.Errorf("unable to find or create a config directory: %w", err)
	}

	out := cmd.OutOrStdout()
	content, err := os.ReadFile(logPath)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(out, "%s %s\n", color.New(color.FgRed, color.Bold).Sprint("No log file found:"), logPath)
		return nil
	}
	if err != nil {
		return fmt.Errorf("unable to read logs: %w", err)
	}

	fmt.Fprintln(out, color.New(color.FgYellow, color.Bold).Sprint("Available logs:"))
	fmt.Fprintf(out, "%s %s\n", color.New(color.Faint, color.Italic).Sprint("Log location:"), logPath)
	_, err = out.Write(content)
	return err
}
