package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/internlog/internal/cli"
	appconfig "github.com/thenoetrevino/internlog/internal/config"
)

var errConfigExists = errors.New("config file already exists")

// ConfigCmd returns the config parent command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}

	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(InitCmd())

	return cmd
}

// ShowCmd returns the config show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long:  "Print the configuration after merging config.yaml, INTERNLOG_* variables, .env and flags. The password is never shown.",
		RunE:  runShow,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

// InitCmd returns the config init subcommand
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to config.yaml",
		Long:  "Write the effective configuration (without credentials) to the config file so it can be edited.",
		RunE:  runInit,
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing config file")
	cli.AddOutputFlags(cmd)

	return cmd
}

func redacted(cfg *appconfig.Config) appconfig.Config {
	out := *cfg
	if out.Auth.Password != "" {
		out.Auth.Password = "********"
	}
	return out
}

func runShow(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)
	cfg := redacted(cli.ConfigFromContext(cmd.Context()))

	if formatter.Quiet {
		path, err := appconfig.ConfigPath()
		if err != nil {
			return formatter.Fail(err)
		}
		_, err = fmt.Fprintln(formatter.Writer(), path)
		return err
	}
	if formatter.JSON {
		return formatter.Success(cfg)
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return formatter.Fail(fmt.Errorf("failed to encode config: %w", err))
	}
	_, err = formatter.Writer().Write(data)
	return err
}

func runInit(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)
	force, _ := cmd.Flags().GetBool("force")
	cfg := cli.ConfigFromContext(cmd.Context())

	path, err := appconfig.ConfigPath()
	if err != nil {
		return formatter.Fail(err)
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return formatter.FailWith("CONFIG_EXISTS", cli.ExitUsage,
				fmt.Errorf("%s: %w", path, errConfigExists), "Pass --force to overwrite it")
		} else if !errors.Is(err, fs.ErrNotExist) {
			return formatter.Fail(err)
		}
	}

	written, err := cfg.Save()
	if err != nil {
		return formatter.Fail(fmt.Errorf("failed to save config: %w", err))
	}

	if formatter.Quiet {
		_, err = fmt.Fprintln(formatter.Writer(), written)
		return err
	}
	if formatter.JSON {
		return formatter.Success(map[string]string{"path": written})
	}

	_, err = fmt.Fprintf(formatter.Writer(), "✓ Config written to %s\n", written)
	return err
}
