package cryptox

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	for _, size := range []int{TokenSize128, TokenSize256, 24} {
		a, err := GenerateToken(size)
		require.NoError(t, err)
		b, err := GenerateToken(size)
		require.NoError(t, err)
		require.NotEqual(t, a, b)
	}

	tok, err := GenerateToken(TokenSize256)
	require.NoError(t, err)
	require.Len(t, tok, 43)
}

func TestGenerateToken_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		tok, err := GenerateToken(size)
		require.Error(t, err)
		require.Empty(t, tok)
	}
}

func TestFingerprintToken(t *testing.T) {
	require.Equal(t, FingerprintToken("abc"), FingerprintToken("abc"))
	require.NotEqual(t, FingerprintToken("abc"), FingerprintToken("abd"))
	require.Len(t, FingerprintToken("abc"), 43)
}

func TestGenerateInviteCode(t *testing.T) {
	re := regexp.MustCompile(`^[0-9A-F]{10}$`)

	seen := make(map[string]struct{})
	for range 50 {
		code, err := GenerateInviteCode()
		require.NoError(t, err)
		require.Regexp(t, re, code)
		seen[code] = struct{}{}
	}
	require.Len(t, seen, 50)
}

func TestNormalizeInviteCode(t *testing.T) {
	require.Equal(t, "X7F2A9", NormalizeInviteCode(" x7f2a9 "))
	require.Equal(t, "ABC", NormalizeInviteCode("ABC"))
}
