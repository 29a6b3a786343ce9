package service

import (
	"github.com/MKhiriev/go-passkey-vault/internal/adapter"
	"github.com/MKhiriev/go-passkey-vault/internal/keycache"
	"github.com/MKhiriev/go-passkey-vault/internal/logger"
	"github.com/MKhiriev/go-passkey-vault/internal/session"
)

type ClientServices struct {
	AuthService  ClientAuthService
	VaultService ClientVaultService
	Session      *session.Controller
}

func NewClientServices(serverAdapter adapter.ServerAdapter, bridge PasskeyBridge, sessionCtrl *session.Controller, keys keycache.KeyCache, salts *keycache.SaltCache, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:  NewClientAuthService(serverAdapter, bridge, sessionCtrl, keys, salts, logger),
		VaultService: NewClientVaultService(serverAdapter, sessionCtrl, salts, logger),
		Session:      sessionCtrl,
	}
}
