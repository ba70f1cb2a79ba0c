// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/models"
)

// offline marks commands that run without configuration or vault service.
const offline = "offline"

// newRootCommand builds a fresh command tree. The shell builds one per input
// line so flag values never leak from one command into the next.
func (a *App) newRootCommand() *cobra.Command {
	overrides := &config.StructuredConfig{}
	var secretCode string

	root := &cobra.Command{
		Use:           "go-pass-vault",
		Short:         "Client of the go-pass-vault password vault service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[offline] == "true" {
				return nil
			}
			return a.ensureRuntime(overrides)
		},
	}
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&overrides.FilePath, "config", "", "path to a JSON or YAML config file")
	flags.StringVar(&overrides.Adapter.HTTPAddress, "server", "", "vault service address")
	flags.DurationVar(&overrides.Adapter.RequestTimeout, "timeout", 0, "request timeout")
	flags.StringVar(&overrides.App.IdentityToken, "token", "", "identity token")
	flags.StringVar(&overrides.App.HashKey, "hash-key", "", "request integrity key")
	flags.StringVar(&overrides.KeyStore.Backend, "keystore", "", "key store backend: keyring or bolt")
	flags.StringVar(&overrides.KeyStore.Path, "keystore-path", "", "key file of the bolt backend")
	flags.DurationVar(&overrides.Workers.AutoLockAfter, "auto-lock", 0, "idle time after which the shell locks")
	flags.StringVar(&secretCode, "secret-code", "", "secret code, needed to unlock on a new device")

	unlock := func(ctx context.Context, password string) error {
		return a.unlock(ctx, secretCode, password)
	}

	root.AddCommand(
		a.versionCommand(),
		a.serverInfoCommand(),
		a.generateCommand(),
		a.statusCommand(),
		a.registerCommand(),
		a.unlockCommand(unlock),
		a.lockCommand(),
		a.secretCodeCommand(),
		a.changePasswordCommand(unlock),
		a.resetCommand(),
		a.deregisterCommand(),
		a.entitlementsCommand(),
		a.profileCommand(),
		a.vaultCommand(unlock),
		a.itemCommand(unlock),
		a.shellCommand(unlock),
	)
	return root
}

// unlockFunc unlocks the manager. An empty password is prompted for.
type unlockFunc func(ctx context.Context, password string) error

// unlock prompts for the secret code when the key deriving key is not on
// this device, and for the master password unless one is given. An unlocked
// manager is left as is.
func (a *App) unlock(ctx context.Context, secretCode, password string) error {
	manager := a.rt.manager
	if !manager.IsLocked() {
		return nil
	}

	status, err := manager.GetRegistrationStatus(ctx)
	if err != nil {
		return err
	}

	switch status {
	case models.NotRegistered:
		return ErrNotRegistered
	case models.MissingSecretCode:
		if secretCode == "" {
			if secretCode, err = a.prompter.Line("Secret code: "); err != nil {
				return err
			}
		}
	}

	if password == "" {
		if password, err = a.prompter.Password("Master password: "); err != nil {
			return err
		}
	}
	return manager.Unlock(ctx, password, secretCode)
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print build information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{offline: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), a.buildInfo.String())
		},
	}
}

func (a *App) statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the registration status of this device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := a.rt.manager.GetRegistrationStatus(cmd.Context())
			if err != nil {
				return err
			}

			lock := "locked"
			if !a.rt.manager.IsLocked() {
				lock = "unlocked"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s, %s\n", status, lock)
			return nil
		},
	}
}

func (a *App) registerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Register with the vault service and create the key deriving key",
		Long: `Register creates a key deriving key on this device and registers the
user with the vault service. Write down the secret code it prints: it is
needed to unlock the vaults on any other device.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := newPassword(a.prompter, "Master password: ")
			if err != nil {
				return err
			}

			if err = a.rt.manager.Register(cmd.Context(), password); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Registered.")
			if code, ok := a.rt.manager.GetSecretCode(); ok {
				fmt.Fprintf(out, "Secret code: %s\n", code)
			}
			return nil
		},
	}
}

func (a *App) unlockCommand(unlock unlockFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "unlock",
		Short: "Unlock the vaults with the master password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := unlock(cmd.Context(), ""); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Unlocked.")
			return nil
		},
	}
}

func (a *App) lockCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lock",
		Short: "Lock the vaults and forget the master password",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			a.rt.manager.Lock()
			fmt.Fprintln(cmd.OutOrStdout(), "Locked.")
		},
	}
}

func (a *App) secretCodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "secret-code",
		Short: "Print the secret code of this device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			code, ok := a.rt.manager.GetSecretCode()
			if !ok {
				return ErrNoSecretCode
			}
			fmt.Fprintln(cmd.OutOrStdout(), code)
			return nil
		},
	}
}

func (a *App) changePasswordCommand(unlock unlockFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "change-password",
		Short: "Change the master password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			current, err := a.prompter.Password("Current master password: ")
			if err != nil {
				return err
			}
			if err = unlock(ctx, current); err != nil {
				return err
			}

			next, err := newPassword(a.prompter, "New master password: ")
			if err != nil {
				return err
			}

			if err = a.rt.manager.ChangeMasterPassword(ctx, current, next); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Master password changed.")
			return nil
		},
	}
}

func (a *App) resetCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every vault and the keys on this device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.confirm(yes, "Delete every vault and all local keys?"); err != nil {
				return err
			}
			if err := a.rt.manager.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Reset.")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func (a *App) deregisterCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "deregister",
		Short: "Delete the account, every vault and the keys on this device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.confirm(yes, "Delete the account and every vault?"); err != nil {
				return err
			}
			userID, err := a.rt.manager.Deregister(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deregistered %s.\n", userID)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func (a *App) serverInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "server-info",
		Short: "Describe the vault service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := a.rt.server.GetServerInfo(cmd.Context())
			if err != nil {
				return err
			}
			printServerInfo(cmd.OutOrStdout(), info)
			return nil
		},
	}
}

func (a *App) entitlementsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "entitlements",
		Short: "Show the vault quota of every profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			states, err := a.rt.manager.GetEntitlementState(cmd.Context())
			if err != nil {
				return err
			}
			printEntitlements(cmd.OutOrStdout(), states)
			return nil
		},
	}
}

func (a *App) profileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the profiles vaults belong to",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := a.rt.profiles.ListProfiles(cmd.Context())
			if err != nil {
				return err
			}
			printProfiles(cmd.OutOrStdout(), profiles)
			return nil
		},
	}, &cobra.Command{
		Use:   "create",
		Short: "Create a profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := a.rt.profiles.CreateProfile(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), profile.ID)
			return nil
		},
	})
	return cmd
}

// confirm asks a yes/no question unless yes is set.
func (a *App) confirm(yes bool, question string) error {
	if yes {
		return nil
	}
	answer, err := a.prompter.Line(question + " [y/N]: ")
	if err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return nil
	default:
		return ErrAborted
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(time.DateTime)
}
