package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/hoaboard/pkg/jwtx"
)

// InitKeys generates the in-memory Ed25519 signing keys. Keys do not survive
// a restart, so every member signs in again after a deploy.
func InitKeys(cfg Config, logger *slog.Logger) (*jwtx.KeyManager, error) {
	logger.Info("initializing ephemeral key manager", "num_keys", cfg.NumKeys)

	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{
		Issuer:  cfg.Issuer,
		NumKeys: cfg.NumKeys,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize ephemeral key manager: %w", err)
	}

	logger.Info("generated ephemeral signing keys",
		"num_keys", km.NumSigners(),
		"issuer", cfg.Issuer,
	)
	logger.Warn("all existing tokens are now invalid due to key generation on startup")

	return km, nil
}
