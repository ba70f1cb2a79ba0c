// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/models"
)

// ─────────────────────────────────────────────
// Test doubles
// ─────────────────────────────────────────────

// scriptedPrompter answers prompts from a fixed script and records them.
type scriptedPrompter struct {
	answers []string
	prompts []string
}

func (p *scriptedPrompter) next(prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	if len(p.answers) == 0 {
		return "", io.EOF
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

func (p *scriptedPrompter) Password(prompt string) (string, error) { return p.next(prompt) }

func (p *scriptedPrompter) Line(prompt string) (string, error) { return p.next(prompt) }

type memoryClipboard struct {
	text string
	err  error
}

func (c *memoryClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

type testEnv struct {
	manager   *mock.MockPasswordManager
	autoLock  *mock.MockAutoLockJob
	profiles  *mock.MockProfilesClient
	server    *mock.MockServerInfoClient
	prompter  *scriptedPrompter
	clipboard *memoryClipboard
	out       *bytes.Buffer
	errOut    *bytes.Buffer

	runtimes int
	closed   int
}

// newTestApp returns an App whose runtime is built from mocks. The manager
// is locked when the App finishes, so Lock is allowed any number of times.
func newTestApp(t *testing.T, answers ...string) (*App, *testEnv) {
	t.Helper()
	ctrl := gomock.NewController(t)

	env := &testEnv{
		manager:   mock.NewMockPasswordManager(ctrl),
		autoLock:  mock.NewMockAutoLockJob(ctrl),
		profiles:  mock.NewMockProfilesClient(ctrl),
		server:    mock.NewMockServerInfoClient(ctrl),
		prompter:  &scriptedPrompter{answers: answers},
		clipboard: &memoryClipboard{},
		out:       &bytes.Buffer{},
		errOut:    &bytes.Buffer{},
	}
	env.manager.EXPECT().Lock().AnyTimes()

	app := &App{
		buildInfo: models.NewAppBuildInfo("1.2.3", "2026-01-01", "abc123"),
		prompter:  env.prompter,
		clipboard: env.clipboard,
		in:        &bytes.Buffer{},
		out:       env.out,
		errOut:    env.errOut,
		loadConfig: func(*config.StructuredConfig) (*config.ClientConfig, error) {
			return &config.ClientConfig{}, nil
		},
		newRuntime: func(*config.ClientConfig, *logger.Logger) (*runtime, error) {
			env.runtimes++
			return &runtime{
				manager:  env.manager,
				autoLock: env.autoLock,
				profiles: env.profiles,
				server:   env.server,
				close: func() error {
					env.closed++
					return nil
				},
			}, nil
		},
		logger: logger.Nop(),
	}
	return app, env
}

// expectUnlock sets up a successful unlock of a registered device with
// master password "pw".
func (e *testEnv) expectUnlock() {
	gomock.InOrder(
		e.manager.EXPECT().IsLocked().Return(true),
		e.manager.EXPECT().GetRegistrationStatus(gomock.Any()).Return(models.Registered, nil),
		e.manager.EXPECT().Unlock(gomock.Any(), "pw", "").Return(nil),
	)
}

// ─────────────────────────────────────────────
// Runtime lifecycle
// ─────────────────────────────────────────────

func TestRun_OfflineCommandsSkipRuntime(t *testing.T) {
	app, env := newTestApp(t)

	require.NoError(t, app.Run([]string{"version"}))

	assert.Equal(t, 0, env.runtimes)
	assert.Contains(t, env.out.String(), "1.2.3")
}

func TestRun_ClosesRuntime(t *testing.T) {
	app, env := newTestApp(t)
	env.manager.EXPECT().GetRegistrationStatus(gomock.Any()).Return(models.Registered, nil)
	env.manager.EXPECT().IsLocked().Return(true)

	require.NoError(t, app.Run([]string{"status"}))

	assert.Equal(t, 1, env.runtimes)
	assert.Equal(t, 1, env.closed)
	assert.Nil(t, app.rt)
	assert.Equal(t, "registered, locked\n", env.out.String())
}

func TestRun_ConfigErrorIsReturned(t *testing.T) {
	app, env := newTestApp(t)
	wantErr := errors.New("no token")
	app.loadConfig = func(*config.StructuredConfig) (*config.ClientConfig, error) {
		return nil, wantErr
	}

	err := app.Run([]string{"status"})

	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 0, env.runtimes)
}

func TestRun_FlagsReachConfig(t *testing.T) {
	app, env := newTestApp(t)
	env.manager.EXPECT().GetRegistrationStatus(gomock.Any()).Return(models.NotRegistered, nil)
	env.manager.EXPECT().IsLocked().Return(true)

	var got config.StructuredConfig
	app.loadConfig = func(overrides *config.StructuredConfig) (*config.ClientConfig, error) {
		got = *overrides
		return &config.ClientConfig{}, nil
	}

	require.NoError(t, app.Run([]string{
		"--server", "http://vault:8080",
		"--token", "tok",
		"--keystore", "bolt",
		"--keystore-path", "/tmp/keys.db",
		"status",
	}))

	assert.Equal(t, "http://vault:8080", got.Adapter.HTTPAddress)
	assert.Equal(t, "tok", got.App.IdentityToken)
	assert.Equal(t, "bolt", got.KeyStore.Backend)
	assert.Equal(t, "/tmp/keys.db", got.KeyStore.Path)
}

func TestOpenKeyStore_UnknownBackend(t *testing.T) {
	_, _, err := openKeyStore(config.ClientKeyStore{Backend: "floppy"}, "alice")
	assert.ErrorIs(t, err, ErrUnknownKeyStore)
}

func TestOpenKeyStore_Bolt(t *testing.T) {
	store, closeStore, err := openKeyStore(config.ClientKeyStore{
		Backend: config.KeyStoreBolt,
		Path:    t.TempDir() + "/keys.db",
	}, "alice")
	require.NoError(t, err)
	assert.NotNil(t, store)
	assert.NoError(t, closeStore())
}
