package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

func (a *App) vaultCommand(unlock unlockFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vault",
		Short: "Manage vaults",
	}

	var profileID string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an empty vault owned by a profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := unlock(ctx, ""); err != nil {
				return err
			}

			vault, err := a.rt.manager.CreateVault(ctx, profileID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), vault.ID)
			return nil
		},
	}
	create.Flags().StringVarP(&profileID, "profile", "p", "", "id of the profile that owns the vault")
	_ = create.MarkFlagRequired("profile")

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List vaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := unlock(ctx, ""); err != nil {
				return err
			}

			vaults, err := a.rt.manager.ListVaults(ctx)
			if err != nil {
				return err
			}
			printVaults(cmd.OutOrStdout(), vaults)
			return nil
		},
	}, create, &cobra.Command{
		Use:   "delete <vault-id>",
		Short: "Delete a vault and every item in it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.rt.manager.DeleteVault(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted.")
			return nil
		},
	})
	return cmd
}

// resolveVault returns the vault named by id, or the only vault when id is
// empty.
func (a *App) resolveVault(ctx context.Context, id string) (models.Vault, error) {
	if id != "" {
		vault, err := a.rt.manager.GetVault(ctx, id)
		if err != nil {
			return models.Vault{}, err
		}
		if vault == nil {
			return models.Vault{}, fmt.Errorf("%w: %s", ErrVaultNotFound, id)
		}
		return *vault, nil
	}

	vaults, err := a.rt.manager.ListVaults(ctx)
	if err != nil {
		return models.Vault{}, err
	}
	switch len(vaults) {
	case 0:
		return models.Vault{}, ErrNoVaults
	case 1:
		return vaults[0], nil
	default:
		return models.Vault{}, ErrVaultNotSpecified
	}
}

func (a *App) generateCommand() *cobra.Command {
	var (
		length      int
		noUppercase bool
		noLowercase bool
		noNumbers   bool
		noSymbols   bool
		copyToClip  bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random password",
		Long: `Generate a random password. Ambiguous characters such as 0, O, l and 1
are never used.

Examples:
  # Generate a 20-character password (default)
  go-pass-vault generate

  # Generate a 32-character password without symbols and copy it
  go-pass-vault generate -l 32 --no-symbols -c`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{offline: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := service.GeneratePassword(service.PasswordOptions{
				Length:    length,
				Uppercase: !noUppercase,
				Lowercase: !noLowercase,
				Numbers:   !noNumbers,
				Symbols:   !noSymbols,
			})
			if err != nil {
				return err
			}

			if copyToClip {
				return a.copySecret(cmd, password, "Password")
			}
			fmt.Fprintln(cmd.OutOrStdout(), password)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&length, "length", "l", service.DefaultPasswordLength,
		fmt.Sprintf("password length, at least %d", service.MinPasswordLength))
	flags.BoolVar(&noUppercase, "no-uppercase", false, "exclude uppercase letters")
	flags.BoolVar(&noLowercase, "no-lowercase", false, "exclude lowercase letters")
	flags.BoolVar(&noNumbers, "no-numbers", false, "exclude numbers")
	flags.BoolVar(&noSymbols, "no-symbols", false, "exclude symbols")
	flags.BoolVarP(&copyToClip, "copy", "c", false, "copy to the clipboard instead of printing")
	return cmd
}

// copySecret puts secret on the clipboard. The secret is never printed.
func (a *App) copySecret(cmd *cobra.Command, secret, what string) error {
	if err := a.clipboard.WriteAll(secret); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%s copied to clipboard.\n", what)
	return nil
}
