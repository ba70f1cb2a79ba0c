package service

import (
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

type ClientServices struct {
	PasswordManager PasswordManager
	AutoLockJob     AutoLockJob
}

func NewClientServices(clients PasswordManagerClients, keys crypto.KeyManager, log *logger.Logger) *ClientServices {
	manager := NewPasswordManager(clients, keys, log)

	return &ClientServices{
		PasswordManager: manager,
		AutoLockJob:     NewAutoLockJob(manager, log),
	}
}
