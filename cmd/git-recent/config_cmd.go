package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/raphi011/git-recent/internal/config"
	"github.com/raphi011/git-recent/internal/log"
	"github.com/raphi011/git-recent/internal/output"
)

func newConfigCmd(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		Args:    usageArgs(cobra.NoArgs),
		Long: `Manage git-recent configuration.

Config file: ~/.config/git-recent/config.toml ($XDG_CONFIG_HOME is honored)`,
		Example: `  git-recent config init      # Create default config
  git-recent config init -s   # Print default config
  git-recent config show      # Show effective config`,
	}

	cmd.AddCommand(newConfigInitCmd(env))
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd(env *environment) *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  usageArgs(cobra.NoArgs),
		Example: `  git-recent config init      # Create config
  git-recent config init -f   # Overwrite existing config
  git-recent config init -s   # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			content := config.DefaultFileContent()

			if stdout {
				out.Print(content)
				return nil
			}

			configPath, err := env.configPath()
			if err != nil {
				return fmt.Errorf("locate config: %w", err)
			}

			if !force {
				if _, err := os.Stat(configPath); err == nil {
					if !env.interactive() {
						return fmt.Errorf("config file already exists: %s (use -f to overwrite)", configPath)
					}
					res, err := env.confirm(fmt.Sprintf("Overwrite %s?", configPath))
					if err != nil {
						return err
					}
					if !res.Confirmed {
						log.FromContext(ctx).Println("Aborted")
						return nil
					}
				} else if !errors.Is(err, os.ErrNotExist) {
					return err
				}
			}

			if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
				return err
			}
			if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
				return err
			}

			out.Printf("Created config file: %s\n", configPath)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return config.FromContext(ctx).Encode(output.FromContext(ctx).Writer())
		},
	}
}
