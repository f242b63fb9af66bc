package bootstrap

import (
	"tourbook/internal/pkg/config"
	"tourbook/internal/pkg/vault"

	"go.uber.org/fx"
)

var VaultModule = fx.Module("vault",
	fx.Provide(
		NewVaultCipher,
	),
)

func NewVaultCipher(cfg config.Config) (*vault.Cipher, error) {
	return vault.NewCipher(cfg.Vault.MasterKey)
}
