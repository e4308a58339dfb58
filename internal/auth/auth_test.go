package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/nacl/sign"
)

func newWallet(t *testing.T) (string, *[64]byte) {
	t.Helper()
	pub, priv, err := sign.GenerateKey(rand.Reader)
	require.NoError(t, err)
	return base58.Encode(pub[:]), priv
}

func detached(priv *[64]byte, message string) []byte {
	return sign.Sign(nil, []byte(message), priv)[:sign.Overhead]
}

func TestVerifySignatureBase64(t *testing.T) {
	wallet, priv := newWallet(t)
	msg := LoginMessage(wallet, time.Now())
	sig := base64.StdEncoding.EncodeToString(detached(priv, msg))

	assert.NoError(t, VerifySignature(wallet, msg, sig))
}

func TestVerifySignatureBase58(t *testing.T) {
	wallet, priv := newWallet(t)
	msg := LoginMessage(wallet, time.Now())

	assert.NoError(t, VerifySignature(wallet, msg, base58.Encode(detached(priv, msg))))
}

func TestVerifySignatureRejectsTampering(t *testing.T) {
	wallet, priv := newWallet(t)
	other, _ := newWallet(t)
	msg := LoginMessage(wallet, time.Now())
	sig := base64.StdEncoding.EncodeToString(detached(priv, msg))

	assert.ErrorIs(t, VerifySignature(wallet, msg+"x", sig), ErrInvalidSignature)
	assert.ErrorIs(t, VerifySignature(other, msg, sig), ErrInvalidSignature)
	assert.ErrorIs(t, VerifySignature(wallet, msg, "not-a-signature"), ErrInvalidSignature)
	assert.ErrorIs(t, VerifySignature("0OIl", msg, sig), ErrInvalidWallet)
}

func TestCheckMessage(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	msg := LoginMessage("wallet1", now.Add(-time.Minute))

	assert.NoError(t, CheckMessage(msg, "wallet1", now, 5*time.Minute))
	assert.ErrorIs(t, CheckMessage(msg, "wallet1", now.Add(time.Hour), 5*time.Minute), ErrStaleMessage)
	assert.ErrorIs(t, CheckMessage(msg, "wallet2", now, 5*time.Minute), ErrInvalidSignature)
	assert.ErrorIs(t, CheckMessage("hello", "wallet1", now, 5*time.Minute), ErrInvalidSignature)
}

func TestTokenRoundTrip(t *testing.T) {
	now := time.Now()
	token, exp, err := IssueToken("secret", "wallet1", now, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, now.Add(24*time.Hour).Unix(), exp.Unix())

	wallet, err := ParseToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "wallet1", wallet)

	_, err = ParseToken("other", token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestExpiredToken(t *testing.T) {
	token, _, err := IssueToken("secret", "wallet1", time.Now().Add(-2*time.Hour), time.Hour)
	require.NoError(t, err)

	_, err = ParseToken("secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
