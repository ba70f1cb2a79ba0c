package schema

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/models"
)

// TagV1 names the first vault schema: a JSON document with one array per
// item type.
const TagV1 = "com.gopassvault.passwordmanager.vault.v1"

const schemaVersionV1 = 1

type vaultV1 struct {
	SchemaVersion int             `json:"schemaVersion"`
	Login         []loginV1       `json:"login"`
	CreditCard    []creditCardV1  `json:"creditCard"`
	BankAccount   []bankAccountV1 `json:"bankAccount"`
}

type itemV1 struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Name      string    `json:"name"`
	Notes     *secureV1 `json:"notes,omitempty"`
}

type secureV1 struct {
	SecureValue string `json:"secureValue"`
}

type passwordV1 struct {
	SecureValue string     `json:"secureValue"`
	CreatedAt   time.Time  `json:"createdAt"`
	ReplacedAt  *time.Time `json:"replacedAt,omitempty"`
}

type loginV1 struct {
	itemV1
	User              string       `json:"user,omitempty"`
	URL               string       `json:"url,omitempty"`
	Password          *passwordV1  `json:"password,omitempty"`
	PreviousPasswords []passwordV1 `json:"previousPasswords"`
}

type creditCardV1 struct {
	itemV1
	CardType         string     `json:"cardType,omitempty"`
	CardName         string     `json:"cardName,omitempty"`
	CardExpiration   *time.Time `json:"cardExpiration,omitempty"`
	CardNumber       *secureV1  `json:"cardNumber,omitempty"`
	CardSecurityCode *secureV1  `json:"cardSecurityCode,omitempty"`
}

type bankAccountV1 struct {
	itemV1
	AccountType   string    `json:"accountType,omitempty"`
	BankName      string    `json:"bankName,omitempty"`
	BranchAddress string    `json:"branchAddress,omitempty"`
	BranchPhone   string    `json:"branchPhone,omitempty"`
	IBAN          string    `json:"ibanNumber,omitempty"`
	RoutingNumber string    `json:"routingNumber,omitempty"`
	SwiftCode     string    `json:"swiftCode,omitempty"`
	AccountNumber *secureV1 `json:"accountNumber,omitempty"`
	AccountPin    *secureV1 `json:"accountPin,omitempty"`
}

func decodeV1(blob []byte) (models.VaultDocument, error) {
	var v vaultV1
	if err := json.Unmarshal(blob, &v); err != nil {
		return models.VaultDocument{}, err
	}

	doc := models.VaultDocument{SchemaVersion: v.SchemaVersion}
	for _, l := range v.Login {
		if err := l.check(models.ItemTypeLogin); err != nil {
			return models.VaultDocument{}, err
		}
		doc.Logins = append(doc.Logins, l.proxy())
	}
	for _, c := range v.CreditCard {
		if err := c.check(models.ItemTypeCreditCard); err != nil {
			return models.VaultDocument{}, err
		}
		doc.CreditCards = append(doc.CreditCards, c.proxy())
	}
	for _, b := range v.BankAccount {
		if err := b.check(models.ItemTypeBankAccount); err != nil {
			return models.VaultDocument{}, err
		}
		doc.BankAccounts = append(doc.BankAccounts, b.proxy())
	}
	return doc, nil
}

func encodeV1(doc models.VaultDocument) ([]byte, error) {
	v := vaultV1{
		SchemaVersion: schemaVersionV1,
		Login:         make([]loginV1, 0, len(doc.Logins)),
		CreditCard:    make([]creditCardV1, 0, len(doc.CreditCards)),
		BankAccount:   make([]bankAccountV1, 0, len(doc.BankAccounts)),
	}
	for _, l := range doc.Logins {
		v.Login = append(v.Login, loginToV1(l))
	}
	for _, c := range doc.CreditCards {
		v.CreditCard = append(v.CreditCard, creditCardToV1(c))
	}
	for _, b := range doc.BankAccounts {
		v.BankAccount = append(v.BankAccount, bankAccountToV1(b))
	}
	return json.Marshal(v)
}

func (i itemV1) check(want models.VaultItemType) error {
	if i.ID == "" {
		return fmt.Errorf("%s item without id", want)
	}
	if i.Type != "" && i.Type != string(want) {
		return fmt.Errorf("item %s: type %q in %s collection", i.ID, i.Type, want)
	}
	return nil
}

func (i itemV1) base() models.ItemProxyBase {
	return models.ItemProxyBase{ID: i.ID, CreatedAt: i.CreatedAt, UpdatedAt: i.UpdatedAt}
}

func newItemV1(b models.ItemProxyBase, t models.VaultItemType, name string, notes *models.SecureField) itemV1 {
	return itemV1{
		ID:        b.ID,
		Type:      string(t),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
		Name:      name,
		Notes:     secureToV1(notes),
	}
}

func secureToV1(f *models.SecureField) *secureV1 {
	if f == nil {
		return nil
	}
	return &secureV1{SecureValue: string(*f)}
}

func (s *secureV1) field() *models.SecureField {
	if s == nil {
		return nil
	}
	f := models.SecureField(s.SecureValue)
	return &f
}

func passwordToV1(p models.PasswordProxy) passwordV1 {
	return passwordV1{SecureValue: string(p.SecureValue), CreatedAt: p.CreatedAt, ReplacedAt: p.ReplacedAt}
}

func (p passwordV1) proxy() models.PasswordProxy {
	return models.PasswordProxy{SecureValue: models.SecureField(p.SecureValue), CreatedAt: p.CreatedAt, ReplacedAt: p.ReplacedAt}
}

func loginToV1(l models.LoginProxy) loginV1 {
	v := loginV1{
		itemV1:            newItemV1(l.ItemProxyBase, models.ItemTypeLogin, l.Name, l.Notes),
		User:              l.User,
		URL:               l.URL,
		PreviousPasswords: make([]passwordV1, 0, len(l.PreviousPasswords)),
	}
	if l.Password != nil {
		p := passwordToV1(*l.Password)
		v.Password = &p
	}
	for _, p := range l.PreviousPasswords {
		v.PreviousPasswords = append(v.PreviousPasswords, passwordToV1(p))
	}
	return v
}

func (l loginV1) proxy() models.LoginProxy {
	p := models.LoginProxy{
		ItemProxyBase: l.base(),
		Name:          l.Name,
		User:          l.User,
		URL:           l.URL,
		Notes:         l.Notes.field(),
	}
	if l.Password != nil {
		pw := l.Password.proxy()
		p.Password = &pw
	}
	for _, prev := range l.PreviousPasswords {
		p.PreviousPasswords = append(p.PreviousPasswords, prev.proxy())
	}
	return p
}

func creditCardToV1(c models.CreditCardProxy) creditCardV1 {
	return creditCardV1{
		itemV1:           newItemV1(c.ItemProxyBase, models.ItemTypeCreditCard, c.Name, c.Notes),
		CardType:         c.CardType,
		CardName:         c.CardName,
		CardExpiration:   c.CardExpiration,
		CardNumber:       secureToV1(c.CardNumber),
		CardSecurityCode: secureToV1(c.CardSecurityCode),
	}
}

func (c creditCardV1) proxy() models.CreditCardProxy {
	return models.CreditCardProxy{
		ItemProxyBase:    c.base(),
		Name:             c.Name,
		Notes:            c.Notes.field(),
		CardType:         c.CardType,
		CardName:         c.CardName,
		CardExpiration:   c.CardExpiration,
		CardNumber:       c.CardNumber.field(),
		CardSecurityCode: c.CardSecurityCode.field(),
	}
}

func bankAccountToV1(b models.BankAccountProxy) bankAccountV1 {
	return bankAccountV1{
		itemV1:        newItemV1(b.ItemProxyBase, models.ItemTypeBankAccount, b.Name, b.Notes),
		AccountType:   b.AccountType,
		BankName:      b.BankName,
		BranchAddress: b.BranchAddress,
		BranchPhone:   b.BranchPhone,
		IBAN:          b.IBANNumber,
		RoutingNumber: b.RoutingNumber,
		SwiftCode:     b.SwiftCode,
		AccountNumber: secureToV1(b.AccountNumber),
		AccountPin:    secureToV1(b.AccountPin),
	}
}

func (b bankAccountV1) proxy() models.BankAccountProxy {
	return models.BankAccountProxy{
		ItemProxyBase: b.base(),
		Name:          b.Name,
		Notes:         b.Notes.field(),
		AccountType:   b.AccountType,
		BankName:      b.BankName,
		BranchAddress: b.BranchAddress,
		BranchPhone:   b.BranchPhone,
		IBANNumber:    b.IBAN,
		RoutingNumber: b.RoutingNumber,
		SwiftCode:     b.SwiftCode,
		AccountNumber: b.AccountNumber.field(),
		AccountPin:    b.AccountPin.field(),
	}
}
