// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-vault/models"
)

var testVault = models.Vault{VaultMetadata: models.VaultMetadata{ID: "vault-1", Version: 1}}

// expectSingleVault resolves the vault of an item command without --vault.
func (e *testEnv) expectSingleVault() {
	e.manager.EXPECT().ListVaults(gomock.Any()).Return([]models.Vault{testVault}, nil)
}

func testLogin() *models.VaultLogin {
	login := models.NewVaultLogin("mail", "alice", "https://mail.example.com",
		models.NewVaultItemValue("recovery codes"), models.NewVaultItemPassword("hunter2"))
	login.ID = "item-1"
	return login
}

// ---- vault resolution ----

func TestResolveVault_ByID(t *testing.T) {
	app, env := newTestApp(t, "pw")
	env.expectUnlock()
	env.manager.EXPECT().GetVault(gomock.Any(), "vault-1").Return(&testVault, nil)
	env.manager.EXPECT().ListItems(gomock.Any(), testVault).Return(nil, nil)

	require.NoError(t, app.Run([]string{"item", "list", "--vault", "vault-1"}))
}

func TestResolveVault_UnknownID(t *testing.T) {
	app, env := newTestApp(t, "pw")
	env.expectUnlock()
	env.manager.EXPECT().GetVault(gomock.Any(), "vault-x").Return(nil, nil)

	err := app.Run([]string{"item", "list", "--vault", "vault-x"})

	assert.ErrorIs(t, err, ErrVaultNotFound)
}

func TestResolveVault_SeveralVaults(t *testing.T) {
	app, env := newTestApp(t, "pw")
	env.expectUnlock()
	env.manager.EXPECT().ListVaults(gomock.Any()).Return([]models.Vault{testVault, testVault}, nil)

	assert.ErrorIs(t, app.Run([]string{"item", "list"}), ErrVaultNotSpecified)
}

func TestResolveVault_NoVaults(t *testing.T) {
	app, env := newTestApp(t, "pw")
	env.expectUnlock()
	env.manager.EXPECT().ListVaults(gomock.Any()).Return(nil, nil)

	assert.ErrorIs(t, app.Run([]string{"item", "list"}), ErrNoVaults)
}

// ---- list / show ----

func TestItemList(t *testing.T) {
	app, env := newTestApp(t, "pw")
	env.expectUnlock()
	env.expectSingleVault()
	env.manager.EXPECT().ListItems(gomock.Any(), testVault).Return([]models.VaultItem{testLogin()}, nil)

	require.NoError(t, app.Run([]string{"item", "list"}))

	lines := strings.Split(strings.TrimSpace(env.out.String()), "\n")
	require.Len(t, lines, 2)
	fields := strings.Fields(lines[1])
	assert.Equal(t, []string{"item-1", "login", "mail"}, fields[:3])
}

func TestItemShow_MasksSecureFields(t *testing.T) {
	app, env := newTestApp(t, "pw")
	env.expectUnlock()
	env.expectSingleVault()
	env.manager.EXPECT().GetItem(gomock.Any(), "item-1", testVault).Return(testLogin(), nil)

	require.NoError(t, app.Run([]string{"item", "show", "item-1"}))

	out := env.out.String()
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, masked)
	assert.NotContains(t, out, "hunter2")
	assert.NotContains(t, out, "recovery codes")
}

// ---- reveal ----

func TestItemReveal_DefaultField(t *testing.T) {
	app, env := newTestApp(t, "pw")
	env.expectUnlock()
	env.expectSingleVault()
	env.manager.EXPECT().GetItem(gomock.Any(), "item-1", testVault).Return(testLogin(), nil)

	require.NoError(t, app.Run([]string{"item", "reveal", "item-1"}))
	assert.Equal(t, "hunter2\n", env.out.String())
}

func TestItemReveal_CopyNotes(t *testing.T) {
	app, env := newTestApp(t, "pw")
	env.expectUnlock()
	env.expectSingleVault()
	env.manager.EXPECT().GetItem(gomock.Any(), "item-1", testVault).Return(testLogin(), nil)

	require.NoError(t, app.Run([]string{"item", "reveal", "item-1", "-f", "notes", "-c"}))
	assert.Empty(t, env.out.String())
	assert.Equal(t, "recovery codes", env.clipboard.text)
}

func TestRevealField(t *testing.T) {
	card := models.NewVaultCreditCard("visa", "ALICE", "visa",
		models.NewVaultItemValue("4111111111111111"), models.NewVaultItemValue("123"))
	bank := models.NewVaultBankAccount("savings", "bank", "savings",
		models.NewVaultItemValue("DE001"), nil)
	bare := models.NewVaultLogin("bare", "", "", nil, nil)

	tests := []struct {
		name    string
		item    models.VaultItem
		field   string
		want    string
		wantErr error
	}{
		{name: "card default", item: card, want: "4111111111111111"},
		{name: "card security code", item: card, field: fieldSecurityCode, want: "123"},
		{name: "card notes unset", item: card, field: fieldNotes, wantErr: ErrUnknownField},
		{name: "bank default", item: bank, want: "DE001"},
		{name: "bank pin unset", item: bank, field: fieldPin, wantErr: ErrUnknownField},
		{name: "login without password", item: bare, wantErr: ErrUnknownField},
		{name: "field of another type", item: testLogin(), field: fieldPin, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := revealField(tt.item, tt.field)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ---- add / set-password / remove ----

func TestItemAddLogin(t *testing.T) {
	app, env := newTestApp(t, "pw", "s3cret", "")
	env.expectUnlock()
	env.expectSingleVault()
	env.manager.EXPECT().Add(gomock.Any(), gomock.Any(), testVault).
		DoAndReturn(func(_ any, item models.VaultItem, _ models.Vault) (string, error) {
			login, ok := item.(*models.VaultLogin)
			require.True(t, ok)
			assert.Equal(t, "mail", login.Name)
			assert.Equal(t, "alice", login.User)
			assert.Nil(t, login.Notes)

			password, err := login.Password().Reveal()
			require.NoError(t, err)
			assert.Equal(t, "s3cret", password)
			return "item-2", nil
		})

	require.NoError(t, app.Run([]string{"item", "add", "login", "--name", "mail", "--user", "alice"}))
	assert.Equal(t, "item-2\n", env.out.String())
}

func TestItemAddCard(t *testing.T) {
	app, env := newTestApp(t, "pw", "4111", "123", "note")
	env.expectUnlock()
	env.expectSingleVault()
	env.manager.EXPECT().Add(gomock.Any(), gomock.Any(), testVault).
		DoAndReturn(func(_ any, item models.VaultItem, _ models.Vault) (string, error) {
			card, ok := item.(*models.VaultCreditCard)
			require.True(t, ok)
			require.NotNil(t, card.CardExpiration)
			assert.Equal(t, "09/2030", card.CardExpiration.Format("01/2006"))
			require.NotNil(t, card.Notes)
			return "item-3", nil
		})

	require.NoError(t, app.Run([]string{"item", "add", "card", "--name", "visa", "--expires", "09/2030"}))
}

func TestItemAddCard_BadExpiration(t *testing.T) {
	app, _ := newTestApp(t)

	err := app.Run([]string{"item", "add", "card", "--name", "visa", "--expires", "2030-09"})

	assert.ErrorContains(t, err, "MM/YYYY")
}

func TestItemSetPassword_Generate(t *testing.T) {
	app, env := newTestApp(t, "pw")
	env.expectUnlock()
	env.expectSingleVault()
	env.manager.EXPECT().GetItem(gomock.Any(), "item-1", testVault).Return(testLogin(), nil)
	env.manager.EXPECT().UpdateItem(gomock.Any(), gomock.Any(), testVault).
		DoAndReturn(func(_ any, item models.VaultItem, _ models.Vault) error {
			login := item.(*models.VaultLogin)
			require.Len(t, login.PreviousPasswords(), 1)

			password, err := login.Password().Reveal()
			require.NoError(t, err)
			assert.NotEqual(t, "hunter2", password)
			return nil
		})

	require.NoError(t, app.Run([]string{"item", "set-password", "item-1", "--generate"}))
}

func TestItemSetPassword_NotALogin(t *testing.T) {
	app, env := newTestApp(t, "pw")
	env.expectUnlock()
	env.expectSingleVault()
	card := models.NewVaultCreditCard("visa", "", "", nil, nil)
	card.ID = "item-4"
	env.manager.EXPECT().GetItem(gomock.Any(), "item-4", testVault).Return(card, nil)

	err := app.Run([]string{"item", "set-password", "item-4", "-g"})

	assert.ErrorContains(t, err, "not a login")
}

func TestItemRemove(t *testing.T) {
	app, env := newTestApp(t, "pw")
	env.expectUnlock()
	env.expectSingleVault()
	env.manager.EXPECT().RemoveItem(gomock.Any(), "item-1", testVault).Return(nil)

	require.NoError(t, app.Run([]string{"item", "remove", "item-1"}))
	assert.Equal(t, "Removed.\n", env.out.String())
}
