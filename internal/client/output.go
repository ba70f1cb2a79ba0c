package client

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/go-pass-vault/models"
)

const masked = "********"

func newTable(w io.Writer, header ...any) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	printRow(tw, header...)
	return tw
}

func printRow(w io.Writer, cols ...any) {
	for i, col := range cols {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, col)
	}
	fmt.Fprintln(w)
}

func printVaults(w io.Writer, vaults []models.Vault) {
	tw := newTable(w, "ID", "PROFILE", "VERSION", "UPDATED")
	for _, v := range vaults {
		profile, _ := v.ProfileID()
		printRow(tw, v.ID, profile, v.Version, formatTime(v.UpdatedAt))
	}
	tw.Flush()
}

func printProfiles(w io.Writer, profiles []models.Profile) {
	tw := newTable(w, "ID", "CREATED")
	for _, p := range profiles {
		printRow(tw, p.ID, formatTime(p.CreatedAt))
	}
	tw.Flush()
}

func printServerInfo(w io.Writer, info models.ServerInfo) {
	integrity := "off"
	if info.IntegrityCheck {
		integrity = "on"
	}
	fmt.Fprintf(w, "Server version: %s\nIntegrity check: %s\nVaults per profile: %d\n",
		info.Version, integrity, info.MaxVaultsPerProfile)
}

func printEntitlements(w io.Writer, states []models.EntitlementState) {
	tw := newTable(w, "PROFILE", "ENTITLEMENT", "USED", "LIMIT")
	for _, s := range states {
		printRow(tw, s.ProfileID, s.Name, s.Value, s.Limit)
	}
	tw.Flush()
}

func printItems(w io.Writer, items []models.VaultItem) {
	tw := newTable(w, "ID", "TYPE", "NAME", "UPDATED")
	for _, item := range items {
		name, updated := itemSummary(item)
		printRow(tw, item.ItemID(), item.ItemType(), name, formatTime(updated))
	}
	tw.Flush()
}

func itemSummary(item models.VaultItem) (string, time.Time) {
	switch it := item.(type) {
	case *models.VaultLogin:
		return it.Name, it.UpdatedAt
	case *models.VaultCreditCard:
		return it.Name, it.UpdatedAt
	case *models.VaultBankAccount:
		return it.Name, it.UpdatedAt
	default:
		return "", time.Time{}
	}
}

// printItem prints every field of item. Secure fields are masked.
func printItem(w io.Writer, item models.VaultItem) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	field := func(name string, value any) { printRow(tw, name+":", value) }
	secure := func(name string, set bool) {
		if set {
			field(name, masked)
		}
	}

	field("id", item.ItemID())
	field("type", item.ItemType())

	switch it := item.(type) {
	case *models.VaultLogin:
		field("name", it.Name)
		field("user", it.User)
		field("url", it.URL)
		secure("password", it.Password() != nil)
		secure("notes", it.Notes != nil)
		field("previous passwords", len(it.PreviousPasswords()))
		if p := it.Password(); p != nil {
			field("password set", formatTime(p.Created))
		}
		field("created", formatTime(it.CreatedAt))
		field("updated", formatTime(it.UpdatedAt))
	case *models.VaultCreditCard:
		field("name", it.Name)
		field("card name", it.CardName)
		field("card type", it.CardType)
		if it.CardExpiration != nil {
			field("expires", it.CardExpiration.Format("01/2006"))
		}
		secure("number", it.CardNumber != nil)
		secure("security code", it.CardSecurityCode != nil)
		secure("notes", it.Notes != nil)
		field("created", formatTime(it.CreatedAt))
		field("updated", formatTime(it.UpdatedAt))
	case *models.VaultBankAccount:
		field("name", it.Name)
		field("bank", it.BankName)
		field("account type", it.AccountType)
		field("branch address", it.BranchAddress)
		field("branch phone", it.BranchPhone)
		field("iban", it.IBANNumber)
		field("routing number", it.RoutingNumber)
		field("swift", it.SwiftCode)
		secure("number", it.AccountNumber != nil)
		secure("pin", it.AccountPin != nil)
		secure("notes", it.Notes != nil)
		field("created", formatTime(it.CreatedAt))
		field("updated", formatTime(it.UpdatedAt))
	}
	tw.Flush()
}
