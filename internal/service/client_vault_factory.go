// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/models"
)

// revealGuard reports whether the session that produced a CipherText is still
// live. A non-nil error stops the reveal.
type revealGuard func() error

// vaultItemFactory converts caller-facing items to their stored proxies and
// back. Secure fields are sealed with the key deriving key.
type vaultItemFactory struct {
	keys crypto.KeyManager
}

func newVaultItemFactory(keys crypto.KeyManager) *vaultItemFactory {
	return &vaultItemFactory{keys: keys}
}

// ToProxy encrypts every PlainText secure field of item with key. CipherText
// values are copied without re-encryption.
func (f *vaultItemFactory) ToProxy(item models.VaultItem, key []byte) (models.VaultItemProxy, error) {
	switch it := item.(type) {
	case *models.VaultLogin:
		return f.loginToProxy(it, key)
	case *models.VaultCreditCard:
		return f.creditCardToProxy(it, key)
	case *models.VaultBankAccount:
		return f.bankAccountToProxy(it, key)
	default:
		return nil, newError(InvalidFormat, fmt.Errorf("unsupported item type %T", item))
	}
}

// FromProxy rebuilds the caller-facing item. It does not decrypt anything:
// secure fields become CipherText values that check guard and decrypt with
// key each time they are revealed.
func (f *vaultItemFactory) FromProxy(proxy models.VaultItemProxy, key []byte, guard revealGuard) models.VaultItem {
	r := f.revealer(key, guard)

	switch p := proxy.(type) {
	case models.LoginProxy:
		var password *models.VaultItemPassword
		if p.Password != nil {
			password = restorePassword(*p.Password, r)
		}
		var history []*models.VaultItemPassword
		for _, prev := range p.PreviousPasswords {
			history = append(history, restorePassword(prev, r))
		}
		return models.RestoreVaultLogin(baseFromProxy(p.ItemProxyBase), p.Name, p.User, p.URL,
			openValue(p.Notes, r), password, history)

	case models.CreditCardProxy:
		return &models.VaultCreditCard{
			VaultItemBase:    baseFromProxy(p.ItemProxyBase),
			Name:             p.Name,
			Notes:            openValue(p.Notes, r),
			CardType:         p.CardType,
			CardName:         p.CardName,
			CardExpiration:   p.CardExpiration,
			CardNumber:       openValue(p.CardNumber, r),
			CardSecurityCode: openValue(p.CardSecurityCode, r),
		}

	case models.BankAccountProxy:
		return &models.VaultBankAccount{
			VaultItemBase: baseFromProxy(p.ItemProxyBase),
			Name:          p.Name,
			Notes:         openValue(p.Notes, r),
			AccountType:   p.AccountType,
			BankName:      p.BankName,
			BranchAddress: p.BranchAddress,
			BranchPhone:   p.BranchPhone,
			IBANNumber:    p.IBANNumber,
			RoutingNumber: p.RoutingNumber,
			SwiftCode:     p.SwiftCode,
			AccountNumber: openValue(p.AccountNumber, r),
			AccountPin:    openValue(p.AccountPin, r),
		}
	}
	return nil
}

func (f *vaultItemFactory) loginToProxy(l *models.VaultLogin, key []byte) (models.VaultItemProxy, error) {
	if err := checkUTF8(l.Name, l.User, l.URL); err != nil {
		return nil, err
	}

	proxy := models.LoginProxy{
		ItemProxyBase: proxyBase(l.VaultItemBase),
		Name:          l.Name,
		User:          l.User,
		URL:           l.URL,
	}

	var err error
	if proxy.Notes, err = f.sealValue(l.Notes, key); err != nil {
		return nil, err
	}
	if p := l.Password(); p != nil {
		sealed, err := f.sealPassword(p, key)
		if err != nil {
			return nil, err
		}
		proxy.Password = &sealed
	}
	for _, prev := range l.PreviousPasswords() {
		sealed, err := f.sealPassword(prev, key)
		if err != nil {
			return nil, err
		}
		proxy.PreviousPasswords = append(proxy.PreviousPasswords, sealed)
	}
	return proxy, nil
}

func (f *vaultItemFactory) creditCardToProxy(c *models.VaultCreditCard, key []byte) (models.VaultItemProxy, error) {
	if err := checkUTF8(c.Name, c.CardType, c.CardName); err != nil {
		return nil, err
	}

	proxy := models.CreditCardProxy{
		ItemProxyBase:  proxyBase(c.VaultItemBase),
		Name:           c.Name,
		CardType:       c.CardType,
		CardName:       c.CardName,
		CardExpiration: c.CardExpiration,
	}

	var err error
	if proxy.Notes, err = f.sealValue(c.Notes, key); err != nil {
		return nil, err
	}
	if proxy.CardNumber, err = f.sealValue(c.CardNumber, key); err != nil {
		return nil, err
	}
	if proxy.CardSecurityCode, err = f.sealValue(c.CardSecurityCode, key); err != nil {
		return nil, err
	}
	return proxy, nil
}

func (f *vaultItemFactory) bankAccountToProxy(b *models.VaultBankAccount, key []byte) (models.VaultItemProxy, error) {
	if err := checkUTF8(b.Name, b.AccountType, b.BankName, b.BranchAddress, b.BranchPhone,
		b.IBANNumber, b.RoutingNumber, b.SwiftCode); err != nil {
		return nil, err
	}

	proxy := models.BankAccountProxy{
		ItemProxyBase: proxyBase(b.VaultItemBase),
		Name:          b.Name,
		AccountType:   b.AccountType,
		BankName:      b.BankName,
		BranchAddress: b.BranchAddress,
		BranchPhone:   b.BranchPhone,
		IBANNumber:    b.IBANNumber,
		RoutingNumber: b.RoutingNumber,
		SwiftCode:     b.SwiftCode,
	}

	var err error
	if proxy.Notes, err = f.sealValue(b.Notes, key); err != nil {
		return nil, err
	}
	if proxy.AccountNumber, err = f.sealValue(b.AccountNumber, key); err != nil {
		return nil, err
	}
	if proxy.AccountPin, err = f.sealValue(b.AccountPin, key); err != nil {
		return nil, err
	}
	return proxy, nil
}

func (f *vaultItemFactory) sealPassword(p *models.VaultItemPassword, key []byte) (models.PasswordProxy, error) {
	sealed, err := f.seal(p.Value(), key)
	if err != nil {
		return models.PasswordProxy{}, err
	}
	return models.PasswordProxy{SecureValue: sealed, CreatedAt: p.Created, ReplacedAt: p.Replaced}, nil
}

func (f *vaultItemFactory) sealValue(v *models.VaultItemValue, key []byte) (*models.SecureField, error) {
	if v == nil || v.Value() == nil {
		return nil, nil
	}
	sealed, err := f.seal(v.Value(), key)
	if err != nil {
		return nil, err
	}
	return &sealed, nil
}

func (f *vaultItemFactory) seal(v models.SecureFieldValue, key []byte) (models.SecureField, error) {
	switch val := v.(type) {
	case models.CipherText:
		return val.Envelope, nil
	case models.PlainText:
		if !utf8.ValidString(string(val)) {
			return "", newError(InvalidFormat, fmt.Errorf("secure field is not valid UTF-8"))
		}
		envelope, err := f.keys.EncryptSecureField([]byte(val), key)
		if err != nil {
			return "", newError(Security, fmt.Errorf("encrypt secure field: %w", err))
		}
		return models.SecureField(crypto.EncodeSecureField(envelope)), nil
	default:
		return "", newError(InvalidFormat, fmt.Errorf("unsupported secure field value %T", v))
	}
}

func (f *vaultItemFactory) revealer(key []byte, guard revealGuard) models.Revealer {
	key = bytes.Clone(key)

	return models.RevealerFunc(func(field models.SecureField) (string, error) {
		if err := guard(); err != nil {
			return "", err
		}

		envelope, err := crypto.DecodeSecureField(string(field))
		if err != nil {
			return "", newError(InvalidFormat, err)
		}
		plain, err := f.keys.DecryptSecureField(envelope, key)
		if err != nil {
			return "", newError(InvalidFormat, err)
		}
		if !utf8.Valid(plain) {
			return "", newError(InvalidFormat, fmt.Errorf("revealed value is not valid UTF-8"))
		}
		return string(plain), nil
	})
}

func openValue(field *models.SecureField, r models.Revealer) *models.VaultItemValue {
	if field == nil {
		return nil
	}
	return models.NewSecureVaultItemValue(models.NewCipherText(*field, r))
}

func restorePassword(p models.PasswordProxy, r models.Revealer) *models.VaultItemPassword {
	return models.RestoreVaultItemPassword(models.NewCipherText(p.SecureValue, r), p.CreatedAt, p.ReplacedAt)
}

func proxyBase(b models.VaultItemBase) models.ItemProxyBase {
	return models.ItemProxyBase{ID: b.ID, CreatedAt: b.CreatedAt, UpdatedAt: b.UpdatedAt}
}

func baseFromProxy(b models.ItemProxyBase) models.VaultItemBase {
	return models.VaultItemBase{ID: b.ID, CreatedAt: b.CreatedAt, UpdatedAt: b.UpdatedAt}
}

func checkUTF8(values ...string) error {
	for _, v := range values {
		if !utf8.ValidString(v) {
			return newError(InvalidFormat, fmt.Errorf("item field is not valid UTF-8"))
		}
	}
	return nil
}
