package models

import (
	"slices"
	"time"
)

// VaultItemType names the collection an item belongs to.
type VaultItemType string

const (
	ItemTypeLogin       VaultItemType = "login"
	ItemTypeCreditCard  VaultItemType = "creditCard"
	ItemTypeBankAccount VaultItemType = "bankAccount"
)

// SecureField is the stored form of a confidential value: the base64
// encoding of an encryption envelope. It is never plaintext.
type SecureField string

// VaultDocument is the decoded vault payload. Its shape does not depend on
// the schema the blob was written with.
type VaultDocument struct {
	SchemaVersion int
	Logins        []LoginProxy
	CreditCards   []CreditCardProxy
	BankAccounts  []BankAccountProxy
}

// Clone returns a copy of d whose item slices do not share backing arrays
// with d.
func (d VaultDocument) Clone() VaultDocument {
	return VaultDocument{
		SchemaVersion: d.SchemaVersion,
		Logins:        slices.Clone(d.Logins),
		CreditCards:   slices.Clone(d.CreditCards),
		BankAccounts:  slices.Clone(d.BankAccounts),
	}
}

// Len reports the number of items across all collections.
func (d VaultDocument) Len() int {
	return len(d.Logins) + len(d.CreditCards) + len(d.BankAccounts)
}

// VaultItemProxy is an item in its stored form.
type VaultItemProxy interface {
	ItemID() string
	ItemType() VaultItemType
}

// ItemProxyBase carries the fields shared by every stored item.
type ItemProxyBase struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ItemID returns the item id.
func (b ItemProxyBase) ItemID() string { return b.ID }

// PasswordProxy is the stored form of a login password.
type PasswordProxy struct {
	SecureValue SecureField
	CreatedAt   time.Time
	ReplacedAt  *time.Time
}

// LoginProxy is the stored form of a login item.
type LoginProxy struct {
	ItemProxyBase
	Name              string
	User              string
	URL               string
	Notes             *SecureField
	Password          *PasswordProxy
	PreviousPasswords []PasswordProxy
}

func (LoginProxy) ItemType() VaultItemType { return ItemTypeLogin }

// CreditCardProxy is the stored form of a credit card item.
type CreditCardProxy struct {
	ItemProxyBase
	Name             string
	Notes            *SecureField
	CardType         string
	CardName         string
	CardExpiration   *time.Time
	CardNumber       *SecureField
	CardSecurityCode *SecureField
}

func (CreditCardProxy) ItemType() VaultItemType { return ItemTypeCreditCard }

// BankAccountProxy is the stored form of a bank account item.
type BankAccountProxy struct {
	ItemProxyBase
	Name          string
	Notes         *SecureField
	AccountType   string
	BankName      string
	BranchAddress string
	BranchPhone   string
	IBANNumber    string
	RoutingNumber string
	SwiftCode     string
	AccountNumber *SecureField
	AccountPin    *SecureField
}

func (BankAccountProxy) ItemType() VaultItemType { return ItemTypeBankAccount }
