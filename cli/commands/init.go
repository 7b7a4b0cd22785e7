package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/petal-labs/easel/cli/config"
)

func (a *App) newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Long: `Write a config file with the built-in defaults.

The file goes to --config, or ~/.easel/config.yaml when unset. An existing
file is left alone unless --force is given.

Example:
  easel init
  easel init --config ./easel.yaml --force`,
		Args: cobra.NoArgs,
		RunE: a.runInit,
	}

	cmd.Flags().BoolVar(&a.initForce, "force", false, "overwrite an existing config file")
	return cmd
}

func (a *App) runInit(cmd *cobra.Command, args []string) error {
	path := a.cfgFile
	if path == "" {
		path = config.DefaultConfigPath()
	}

	if _, err := os.Stat(path); err == nil && !a.initForce {
		return exitWithCode(ExitValidation, fmt.Errorf("config %q already exists: use --force to overwrite", path))
	}

	cfg := config.New()
	if a.provider != "" {
		cfg.Provider = a.provider
	}
	if a.model != "" {
		cfg.Model = a.model
	}
	if err := cfg.Save(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Fprintf(a.stdout, "Wrote %s\n\n", path)
	fmt.Fprintln(a.stdout, "Next steps:")
	fmt.Fprintf(a.stdout, "  easel keys set %s\n", cfg.KeyName())
	fmt.Fprintln(a.stdout, `  easel generate --prompt "a cozy treehouse cafe"`)
	return nil
}
