package cli

import (
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/doeshing/cfai-go/internal/app"
	"github.com/doeshing/cfai-go/internal/domain"
)

// newConfigCommand creates the config command group.
func newConfigCommand(container *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show configuration",
	}
	cmd.AddCommand(newConfigShowCommand(container))
	cmd.AddCommand(newConfigPathCommand(container))
	cmd.AddCommand(newConfigSetupCommand(container))
	return cmd
}

// newConfigSetupCommand walks through credentials and preferences
// interactively and writes them to the config file.
func newConfigSetupCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Interactively configure credentials and defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := container.Config

			questions := []*survey.Question{
				{
					Name:   "apiToken",
					Prompt: &survey.Password{Message: "Cloudflare API token (leave empty to keep current):"},
				},
				{
					Name:   "aiKey",
					Prompt: &survey.Password{Message: "AI API key (leave empty to keep current):"},
				},
				{
					Name:   "aiURL",
					Prompt: &survey.Input{Message: "AI API base URL:", Default: cfg.AIAPIURL()},
				},
				{
					Name:   "model",
					Prompt: &survey.Input{Message: "AI model:", Default: cfg.AIModel()},
				},
				{
					Name:   "zone",
					Prompt: &survey.Input{Message: "Default zone (name or ID, optional):", Default: cfg.Defaults.Zone},
				},
			}
			answers := struct {
				APIToken string `survey:"apiToken"`
				AIKey    string `survey:"aiKey"`
				AIURL    string `survey:"aiURL"`
				Model    string `survey:"model"`
				Zone     string `survey:"zone"`
			}{}
			if err := survey.Ask(questions, &answers); err != nil {
				return err
			}

			if answers.APIToken != "" {
				cfg.Cloudflare.APIToken = answers.APIToken
			}
			if answers.AIKey != "" {
				cfg.AI.APIKey = answers.AIKey
			}
			cfg.AI.APIURL = answers.AIURL
			cfg.AI.Model = answers.Model
			cfg.Defaults.Zone = answers.Zone
			if cfg.ConfigFormatVersion == "" {
				cfg.ConfigFormatVersion = "1"
			}

			if err := container.ConfigLoader.Save(cfg); err != nil {
				return err
			}
			container.Config = cfg
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration saved to %s\n", container.ConfigLoader.Path())
			return nil
		},
	}
}

func newConfigShowCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration (secrets redacted)",
		RunE: func(cmd *cobra.Command, args []string) error {
			displayConfig(cmd.OutOrStdout(), container.Config, container.ConfigLoader.Path())
			return nil
		},
	}
}

func newConfigPathCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), container.ConfigLoader.Path())
			return nil
		},
	}
}

func displayConfig(out io.Writer, cfg domain.Config, path string) {
	fmt.Fprintf(out, "Config file: %s\n\n", path)

	fmt.Fprintln(out, "Cloudflare:")
	fmt.Fprintf(out, "  api_token:  %s\n", redact(cfg.Cloudflare.APIToken))
	fmt.Fprintf(out, "  email:      %s\n", orUnset(cfg.Cloudflare.Email))
	fmt.Fprintf(out, "  api_key:    %s\n", redact(cfg.Cloudflare.APIKey))
	fmt.Fprintf(out, "  account_id: %s\n", orUnset(cfg.Cloudflare.AccountID))

	fmt.Fprintln(out, "AI:")
	fmt.Fprintf(out, "  api_url: %s\n", cfg.AIAPIURL())
	fmt.Fprintf(out, "  api_key: %s\n", redact(cfg.AI.APIKey))
	fmt.Fprintf(out, "  model:   %s\n", cfg.AIModel())

	fmt.Fprintln(out, "Defaults:")
	fmt.Fprintf(out, "  zone:         %s\n", orUnset(cfg.Defaults.Zone))
	fmt.Fprintf(out, "  auto_approve: %t\n", cfg.Defaults.AutoApprove)
}

func redact(secret string) string {
	if secret == "" {
		return "(unset)"
	}
	if len(secret) <= 8 {
		return "****"
	}
	return secret[:4] + "..." + secret[len(secret)-4:]
}

func orUnset(value string) string {
	if value == "" {
		return "(unset)"
	}
	return value
}
