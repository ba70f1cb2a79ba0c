package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	fieldPassword     = "password"
	fieldNotes        = "notes"
	fieldNumber       = "number"
	fieldSecurityCode = "security-code"
	fieldPin          = "pin"
)

// itemCommand groups the item commands. Each resolves its vault with
// --vault, which may be omitted when the user has a single vault.
func (a *App) itemCommand(unlock unlockFunc) *cobra.Command {
	var vaultID string

	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage the items of a vault",
	}
	cmd.PersistentFlags().StringVar(&vaultID, "vault", "", "vault id, optional when only one vault exists")

	// open unlocks the manager and resolves the vault.
	open := func(ctx context.Context) (models.Vault, error) {
		if err := unlock(ctx, ""); err != nil {
			return models.Vault{}, err
		}
		return a.resolveVault(ctx, vaultID)
	}

	cmd.AddCommand(
		a.itemListCommand(open),
		a.itemShowCommand(open),
		a.itemRevealCommand(open),
		a.itemAddCommand(open),
		a.itemSetPasswordCommand(open),
		a.itemRemoveCommand(open),
	)
	return cmd
}

type openVaultFunc func(ctx context.Context) (models.Vault, error)

func (a *App) itemListCommand(open openVaultFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the items of a vault",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			vault, err := open(ctx)
			if err != nil {
				return err
			}

			items, err := a.rt.manager.ListItems(ctx, vault)
			if err != nil {
				return err
			}
			printItems(cmd.OutOrStdout(), items)
			return nil
		},
	}
}

func (a *App) itemShowCommand(open openVaultFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "show <item-id>",
		Short: "Show an item with its secure fields masked",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			vault, err := open(ctx)
			if err != nil {
				return err
			}

			item, err := a.rt.manager.GetItem(ctx, args[0], vault)
			if err != nil {
				return err
			}
			printItem(cmd.OutOrStdout(), item)
			return nil
		},
	}
}

func (a *App) itemRevealCommand(open openVaultFunc) *cobra.Command {
	var (
		field      string
		copyToClip bool
	)

	cmd := &cobra.Command{
		Use:   "reveal <item-id>",
		Short: "Print or copy a secure field of an item",
		Long: `Print or copy a secure field of an item.

Fields:
  login         password (default), notes
  credit card   number (default), security-code, notes
  bank account  number (default), pin, notes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			vault, err := open(ctx)
			if err != nil {
				return err
			}

			item, err := a.rt.manager.GetItem(ctx, args[0], vault)
			if err != nil {
				return err
			}

			plain, err := revealField(item, field)
			if err != nil {
				return err
			}

			if copyToClip {
				return a.copySecret(cmd, plain, "Value")
			}
			fmt.Fprintln(cmd.OutOrStdout(), plain)
			return nil
		},
	}
	cmd.Flags().StringVarP(&field, "field", "f", "", "secure field to reveal")
	cmd.Flags().BoolVarP(&copyToClip, "copy", "c", false, "copy to the clipboard instead of printing")
	return cmd
}

// revealer is satisfied by both secure value kinds of an item.
type revealer interface {
	Reveal() (string, error)
}

// revealField decrypts one secure field of item. An empty field selects the
// main secret of the item type.
func revealField(item models.VaultItem, field string) (string, error) {
	var fields map[string]revealer
	var main string

	switch it := item.(type) {
	case *models.VaultLogin:
		main = fieldPassword
		fields = map[string]revealer{fieldNotes: orNil(it.Notes)}
		if p := it.Password(); p != nil {
			fields[fieldPassword] = p
		}
	case *models.VaultCreditCard:
		main = fieldNumber
		fields = map[string]revealer{
			fieldNumber:       orNil(it.CardNumber),
			fieldSecurityCode: orNil(it.CardSecurityCode),
			fieldNotes:        orNil(it.Notes),
		}
	case *models.VaultBankAccount:
		main = fieldNumber
		fields = map[string]revealer{
			fieldNumber: orNil(it.AccountNumber),
			fieldPin:    orNil(it.AccountPin),
			fieldNotes:  orNil(it.Notes),
		}
	}

	if field == "" {
		field = main
	}
	value := fields[field]
	if value == nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return value.Reveal()
}

// orNil keeps a nil *VaultItemValue from becoming a non-nil interface.
func orNil(v *models.VaultItemValue) revealer {
	if v == nil {
		return nil
	}
	return v
}

func (a *App) itemAddCommand(open openVaultFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an item to a vault",
		Long: `Add an item to a vault. Secure fields are prompted for and may be left
empty.`,
	}

	var login struct {
		name, user, url string
		generate        bool
	}
	addLogin := &cobra.Command{
		Use:   "login",
		Short: "Add a website or application login",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vault, err := open(cmd.Context())
			if err != nil {
				return err
			}

			var password *models.VaultItemPassword
			if login.generate {
				plain, err := service.GeneratePassword(service.DefaultPasswordOptions())
				if err != nil {
					return err
				}
				password = models.NewVaultItemPassword(plain)
			} else {
				plain, err := a.prompter.Password("Password (empty for none): ")
				if err != nil {
					return err
				}
				if plain != "" {
					password = models.NewVaultItemPassword(plain)
				}
			}

			notes, err := a.promptValue("Notes (empty for none): ", false)
			if err != nil {
				return err
			}
			return a.addItem(cmd, vault, models.NewVaultLogin(login.name, login.user, login.url, notes, password))
		},
	}
	addLogin.Flags().StringVar(&login.name, "name", "", "item name")
	addLogin.Flags().StringVar(&login.user, "user", "", "user name")
	addLogin.Flags().StringVar(&login.url, "url", "", "website address")
	addLogin.Flags().BoolVarP(&login.generate, "generate", "g", false, "generate the password")
	_ = addLogin.MarkFlagRequired("name")

	var card struct {
		name, cardName, cardType, expires string
	}
	addCard := &cobra.Command{
		Use:   "card",
		Short: "Add a credit card",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var expiration *time.Time
			if card.expires != "" {
				t, err := time.Parse("01/2006", card.expires)
				if err != nil {
					return fmt.Errorf("invalid --expires %q, want MM/YYYY: %w", card.expires, err)
				}
				expiration = &t
			}

			vault, err := open(cmd.Context())
			if err != nil {
				return err
			}

			number, err := a.promptValue("Card number (empty for none): ", true)
			if err != nil {
				return err
			}
			code, err := a.promptValue("Security code (empty for none): ", true)
			if err != nil {
				return err
			}
			notes, err := a.promptValue("Notes (empty for none): ", false)
			if err != nil {
				return err
			}

			item := models.NewVaultCreditCard(card.name, card.cardName, card.cardType, number, code)
			item.CardExpiration = expiration
			item.Notes = notes
			return a.addItem(cmd, vault, item)
		},
	}
	addCard.Flags().StringVar(&card.name, "name", "", "item name")
	addCard.Flags().StringVar(&card.cardName, "card-name", "", "name on the card")
	addCard.Flags().StringVar(&card.cardType, "card-type", "", "card type, for example visa")
	addCard.Flags().StringVar(&card.expires, "expires", "", "expiration as MM/YYYY")
	_ = addCard.MarkFlagRequired("name")

	var bank struct {
		name, bankName, accountType, branchAddress, branchPhone, iban, routing, swift string
	}
	addBank := &cobra.Command{
		Use:   "bank",
		Short: "Add a bank account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vault, err := open(cmd.Context())
			if err != nil {
				return err
			}

			number, err := a.promptValue("Account number (empty for none): ", true)
			if err != nil {
				return err
			}
			pin, err := a.promptValue("PIN (empty for none): ", true)
			if err != nil {
				return err
			}
			notes, err := a.promptValue("Notes (empty for none): ", false)
			if err != nil {
				return err
			}

			item := models.NewVaultBankAccount(bank.name, bank.bankName, bank.accountType, number, pin)
			item.BranchAddress = bank.branchAddress
			item.BranchPhone = bank.branchPhone
			item.IBANNumber = bank.iban
			item.RoutingNumber = bank.routing
			item.SwiftCode = bank.swift
			item.Notes = notes
			return a.addItem(cmd, vault, item)
		},
	}
	flags := addBank.Flags()
	flags.StringVar(&bank.name, "name", "", "item name")
	flags.StringVar(&bank.bankName, "bank", "", "bank name")
	flags.StringVar(&bank.accountType, "account-type", "", "account type, for example checking")
	flags.StringVar(&bank.branchAddress, "branch-address", "", "branch address")
	flags.StringVar(&bank.branchPhone, "branch-phone", "", "branch phone")
	flags.StringVar(&bank.iban, "iban", "", "IBAN")
	flags.StringVar(&bank.routing, "routing", "", "routing number")
	flags.StringVar(&bank.swift, "swift", "", "SWIFT code")
	_ = addBank.MarkFlagRequired("name")

	cmd.AddCommand(addLogin, addCard, addBank)
	return cmd
}

// promptValue reads an optional secure value. Empty input yields nil.
func (a *App) promptValue(prompt string, hidden bool) (*models.VaultItemValue, error) {
	read := a.prompter.Line
	if hidden {
		read = a.prompter.Password
	}

	plain, err := read(prompt)
	if err != nil || plain == "" {
		return nil, err
	}
	return models.NewVaultItemValue(plain), nil
}

func (a *App) addItem(cmd *cobra.Command, vault models.Vault, item models.VaultItem) error {
	id, err := a.rt.manager.Add(cmd.Context(), item, vault)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), id)
	return nil
}

func (a *App) itemSetPasswordCommand(open openVaultFunc) *cobra.Command {
	var generate bool

	cmd := &cobra.Command{
		Use:   "set-password <item-id>",
		Short: "Replace the password of a login, keeping the old one in its history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			vault, err := open(ctx)
			if err != nil {
				return err
			}

			item, err := a.rt.manager.GetItem(ctx, args[0], vault)
			if err != nil {
				return err
			}
			login, ok := item.(*models.VaultLogin)
			if !ok {
				return fmt.Errorf("item %s is a %s, not a login", item.ItemID(), item.ItemType())
			}

			var plain string
			if generate {
				plain, err = service.GeneratePassword(service.DefaultPasswordOptions())
			} else {
				plain, err = newPassword(a.prompter, "New password: ")
			}
			if err != nil {
				return err
			}

			login.SetPassword(models.NewVaultItemPassword(plain))
			if err = a.rt.manager.UpdateItem(ctx, login, vault); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Password updated.")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&generate, "generate", "g", false, "generate the new password")
	return cmd
}

func (a *App) itemRemoveCommand(open openVaultFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <item-id>",
		Short: "Remove an item from a vault",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			vault, err := open(ctx)
			if err != nil {
				return err
			}

			if err = a.rt.manager.RemoveItem(ctx, args[0], vault); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Removed.")
			return nil
		},
	}
}
