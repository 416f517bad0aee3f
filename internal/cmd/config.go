package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/harrison/sf/internal/config"
	"github.com/spf13/cobra"
)

// NewConfigCommand creates the config command
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the configuration file",
		Long: `Print the effective configuration: the config file merged with
the given flags.

With --init, write the default configuration to the config file. An existing
file is kept unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: runConfig,
	}

	cmd.Flags().Bool("init", false, "Write the default configuration file")
	cmd.Flags().Bool("force", false, "Overwrite an existing configuration file with --init")

	return cmd
}

func runConfig(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		var err error
		if path, err = config.DefaultConfigPath(); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if initFlag, _ := cmd.Flags().GetBool("init"); initFlag {
		force, _ := cmd.Flags().GetBool("force")
		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
		} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to check config file: %w", err)
		}

		if err := config.DefaultConfig().Save(path); err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote default configuration to %s\n", path)
		return nil
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "# %s\n", path)
	_, err = out.Write(data)
	return err
}
