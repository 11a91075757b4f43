package jwtx

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/aussiebroadwan/hoaboard/pkg/cryptox"
)

const (
	defaultNumKeys = 3
	maxNumKeys     = 10
)

// KeyManager owns the signing keys for a running instance. Keys are generated
// at startup and live only in memory, so a restart signs everybody out.
type KeyManager struct {
	Verifier Verifier
	KeySet   *KeySet

	mu      sync.RWMutex
	signers []Signer
}

type KeyManagerOptions struct {
	// Issuer is set on every token and checked on verification.
	Issuer string

	// NumKeys defaults to 3 and is capped at 10.
	NumKeys int
}

// NewEphemeralKeyManager generates NumKeys Ed25519 signers with random key
// IDs and wires them into a KeySet and verifier.
func NewEphemeralKeyManager(opts KeyManagerOptions) (*KeyManager, error) {
	if opts.Issuer == "" {
		return nil, fmt.Errorf("jwtx: Issuer is required")
	}

	n := opts.NumKeys
	if n <= 0 {
		n = defaultNumKeys
	}
	n = min(n, maxNumKeys)

	keyset := NewKeySet()
	signers := make([]Signer, 0, n)
	for i := range n {
		kid, err := cryptox.GenerateToken(cryptox.TokenSize128)
		if err != nil {
			return nil, fmt.Errorf("jwtx: failed to generate key ID: %w", err)
		}

		pemKey, err := cryptox.GenerateEd25519Key()
		if err != nil {
			return nil, err
		}
		signer, err := NewSignerEdDSA("hoaboard-"+kid, pemKey)
		if err != nil {
			return nil, fmt.Errorf("jwtx: failed to build signer %d: %w", i+1, err)
		}
		if err := keyset.AddSigner(signer); err != nil {
			return nil, fmt.Errorf("jwtx: failed to add signer %d to keyset: %w", i+1, err)
		}
		signers = append(signers, signer)
	}

	return &KeyManager{
		Verifier: NewVerifierEdDSA(keyset, opts.Issuer),
		KeySet:   keyset,
		signers:  signers,
	}, nil
}

func (km *KeyManager) IsReady() bool { return km.KeySet.IsReady() }

// GetSigner picks one of the active signers at random.
func (km *KeyManager) GetSigner() Signer {
	km.mu.RLock()
	defer km.mu.RUnlock()

	switch len(km.signers) {
	case 0:
		return nil
	case 1:
		return km.signers[0]
	}
	return km.signers[rand.IntN(len(km.signers))]
}

func (km *KeyManager) NumSigners() int {
	km.mu.RLock()
	defer km.mu.RUnlock()
	return len(km.signers)
}
