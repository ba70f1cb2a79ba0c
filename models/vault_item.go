package models

import (
	"slices"
	"time"
)

// VaultItem is a caller-facing vault item: a login, a credit card or a bank
// account.
type VaultItem interface {
	ItemID() string
	ItemType() VaultItemType
	base() *VaultItemBase
}

// VaultItemBase carries the identity and timestamps shared by all items.
// ID is assigned when the item is first added to a vault and never changes.
type VaultItemBase struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ItemID returns the item id.
func (b *VaultItemBase) ItemID() string { return b.ID }

func (b *VaultItemBase) base() *VaultItemBase { return b }

// AssignID sets the item id if it is empty and reports whether it did.
func AssignID(item VaultItem, id string) bool {
	b := item.base()
	if b.ID != "" {
		return false
	}
	b.ID = id
	return true
}

// VaultItemValue wraps a secure field value.
type VaultItemValue struct {
	value SecureFieldValue
}

// NewVaultItemValue returns a plaintext value to be encrypted on save.
func NewVaultItemValue(plain string) *VaultItemValue {
	return &VaultItemValue{value: PlainText(plain)}
}

// NewSecureVaultItemValue wraps an existing secure field value.
func NewSecureVaultItemValue(v SecureFieldValue) *VaultItemValue {
	return &VaultItemValue{value: v}
}

// Value returns the underlying secure field value.
func (v *VaultItemValue) Value() SecureFieldValue { return v.value }

// Reveal returns the plaintext of the value.
func (v *VaultItemValue) Reveal() (string, error) { return v.value.Reveal() }

// VaultItemPassword is a login password together with its lifetime.
type VaultItemPassword struct {
	value    SecureFieldValue
	Created  time.Time
	Replaced *time.Time
}

// NewVaultItemPassword returns a new plaintext password created now.
func NewVaultItemPassword(plain string) *VaultItemPassword {
	return &VaultItemPassword{value: PlainText(plain), Created: time.Now()}
}

// RestoreVaultItemPassword rebuilds a password read back from a vault.
func RestoreVaultItemPassword(v SecureFieldValue, created time.Time, replaced *time.Time) *VaultItemPassword {
	return &VaultItemPassword{value: v, Created: created, Replaced: replaced}
}

// Value returns the underlying secure field value.
func (p *VaultItemPassword) Value() SecureFieldValue { return p.value }

// Reveal returns the plaintext password.
func (p *VaultItemPassword) Reveal() (string, error) { return p.value.Reveal() }

// VaultLogin is a website or application credential.
type VaultLogin struct {
	VaultItemBase
	Name  string
	User  string
	URL   string
	Notes *VaultItemValue

	password          *VaultItemPassword
	previousPasswords []*VaultItemPassword
}

// NewVaultLogin builds a login with an optional password.
func NewVaultLogin(name, user, url string, notes *VaultItemValue, password *VaultItemPassword) *VaultLogin {
	now := time.Now()
	return &VaultLogin{
		VaultItemBase: VaultItemBase{CreatedAt: now, UpdatedAt: now},
		Name:          name,
		User:          user,
		URL:           url,
		Notes:         notes,
		password:      password,
	}
}

// RestoreVaultLogin rebuilds a login read back from a vault, history included.
func RestoreVaultLogin(base VaultItemBase, name, user, url string, notes *VaultItemValue,
	password *VaultItemPassword, history []*VaultItemPassword) *VaultLogin {
	return &VaultLogin{
		VaultItemBase:     base,
		Name:              name,
		User:              user,
		URL:               url,
		Notes:             notes,
		password:          password,
		previousPasswords: history,
	}
}

func (*VaultLogin) ItemType() VaultItemType { return ItemTypeLogin }

// Password returns the current password or nil.
func (l *VaultLogin) Password() *VaultItemPassword { return l.password }

// SetPassword replaces the current password. The previous one, if any, is
// stamped with the replacement time and appended to the history.
func (l *VaultLogin) SetPassword(p *VaultItemPassword) {
	if l.password != nil {
		now := time.Now()
		l.password.Replaced = &now
		l.previousPasswords = append(l.previousPasswords, l.password)
	}
	l.password = p
}

// PreviousPasswords returns the superseded passwords, oldest first.
func (l *VaultLogin) PreviousPasswords() []*VaultItemPassword {
	return slices.Clone(l.previousPasswords)
}

// VaultCreditCard is a payment card.
type VaultCreditCard struct {
	VaultItemBase
	Name             string
	Notes            *VaultItemValue
	CardType         string
	CardName         string
	CardExpiration   *time.Time
	CardNumber       *VaultItemValue
	CardSecurityCode *VaultItemValue
}

// NewVaultCreditCard builds a credit card item.
func NewVaultCreditCard(name, cardName, cardType string, number, securityCode *VaultItemValue) *VaultCreditCard {
	now := time.Now()
	return &VaultCreditCard{
		VaultItemBase:    VaultItemBase{CreatedAt: now, UpdatedAt: now},
		Name:             name,
		CardName:         cardName,
		CardType:         cardType,
		CardNumber:       number,
		CardSecurityCode: securityCode,
	}
}

func (*VaultCreditCard) ItemType() VaultItemType { return ItemTypeCreditCard }

// VaultBankAccount is a bank account.
type VaultBankAccount struct {
	VaultItemBase
	Name          string
	Notes         *VaultItemValue
	AccountType   string
	BankName      string
	BranchAddress string
	BranchPhone   string
	IBANNumber    string
	RoutingNumber string
	SwiftCode     string
	AccountNumber *VaultItemValue
	AccountPin    *VaultItemValue
}

// NewVaultBankAccount builds a bank account item.
func NewVaultBankAccount(name, bankName, accountType string, number, pin *VaultItemValue) *VaultBankAccount {
	now := time.Now()
	return &VaultBankAccount{
		VaultItemBase: VaultItemBase{CreatedAt: now, UpdatedAt: now},
		Name:          name,
		BankName:      bankName,
		AccountType:   accountType,
		AccountNumber: number,
		AccountPin:    pin,
	}
}

func (*VaultBankAccount) ItemType() VaultItemType { return ItemTypeBankAccount }
