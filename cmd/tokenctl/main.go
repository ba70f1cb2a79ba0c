// Command tokenctl mints identity tokens accepted by the vault service. It
// stands in for an identity provider in development and tests.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	overrides := &config.StructuredConfig{}
	var userID, username string

	cmd := &cobra.Command{
		Use:   "tokenctl",
		Short: "Mint an identity token for the vault service",
		Long: `Mint an identity token signed with the vault service token sign key.

Examples:
  # Mint a token for user-1, reading the key from APP_TOKEN_SIGN_KEY
  tokenctl --user user-1

  # Mint a one hour token for alice
  tokenctl --user user-2 --name alice --sign-key secret --duration 1h`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.GetTokenConfig(overrides)
			if err != nil {
				return err
			}

			token, err := service.NewAuthService(*cfg, logger.Nop()).CreateToken(cmd.Context(), userID, username)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token.SignedString)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&userID, "user", "u", "", "user id, the token subject")
	flags.StringVarP(&username, "name", "n", "", "user name, defaults to the user id")
	flags.StringVar(&overrides.App.TokenSignKey, "sign-key", "", "token sign key")
	flags.StringVar(&overrides.App.TokenIssuer, "issuer", "", "token issuer")
	flags.DurationVar(&overrides.App.TokenDuration, "duration", 0, "token lifetime")
	flags.StringVarP(&overrides.FilePath, "config", "c", "", "JSON or YAML config file path")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
