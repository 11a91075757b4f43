package cryptox_test

import (
	"crypto/ed25519"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"testing"

	"github.com/aussiebroadwan/hoaboard/pkg/cryptox"
	"github.com/aussiebroadwan/hoaboard/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestGenerateEd25519Key(t *testing.T) {
	pemBytes, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)

	block, _ := pem.Decode(pemBytes)
	require.NotNil(t, block)
	require.Equal(t, "PRIVATE KEY", block.Type)

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	require.NoError(t, err)
	key, ok := parsed.(ed25519.PrivateKey)
	require.True(t, ok)
	require.Len(t, key, ed25519.PrivateKeySize)

	again, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	require.NotEqual(t, pemBytes, again, "every startup key is fresh")
}

// Session tokens are signed with keys from GenerateEd25519Key, so the PEM has
// to load as a signer whose published JWK matches the private key.
func TestEd25519KeyLoadsAsTokenSigner(t *testing.T) {
	pemBytes, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)

	signer, err := jwtx.NewSignerEdDSA("hoaboard-test", pemBytes)
	require.NoError(t, err)
	require.Equal(t, "EdDSA", signer.Alg())

	jwk := signer.PublicJWK()
	require.Equal(t, "OKP", jwk.Kty)
	require.Equal(t, "Ed25519", jwk.Crv)

	block, _ := pem.Decode(pemBytes)
	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	require.NoError(t, err)
	pub := parsed.(ed25519.PrivateKey).Public().(ed25519.PublicKey)
	require.Equal(t, base64.RawURLEncoding.EncodeToString(pub), jwk.X)
}
