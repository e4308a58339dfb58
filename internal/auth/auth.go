// Package auth verifies wallet signatures and issues session tokens.
package auth

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/nacl/sign"
)

const (
	messagePrefix = "Authenticate with Gorbagana Plinko"
	walletClaim   = "wallet_address"
)

var (
	ErrInvalidWallet    = errors.New("invalid wallet address")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrStaleMessage     = errors.New("login message expired")
	ErrInvalidToken     = errors.New("invalid token")
)

// LoginMessage is the text a wallet signs to log in.
func LoginMessage(wallet string, ts time.Time) string {
	return fmt.Sprintf("%s\nWallet: %s\nTimestamp: %d", messagePrefix, wallet, ts.UnixMilli())
}

// CheckMessage parses a signed login message and makes sure it names wallet
// and was produced within maxAge of now.
func CheckMessage(message, wallet string, now time.Time, maxAge time.Duration) error {
	lines := strings.Split(message, "\n")
	if len(lines) != 3 || lines[0] != messagePrefix {
		return fmt.Errorf("%w: malformed message", ErrInvalidSignature)
	}
	if strings.TrimPrefix(lines[1], "Wallet: ") != wallet {
		return fmt.Errorf("%w: wallet mismatch", ErrInvalidSignature)
	}
	ms, err := strconv.ParseInt(strings.TrimPrefix(lines[2], "Timestamp: "), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: bad timestamp", ErrInvalidSignature)
	}
	age := now.Sub(time.UnixMilli(ms))
	if age < -time.Minute || (maxAge > 0 && age > maxAge) {
		return ErrStaleMessage
	}
	return nil
}

// PublicKey decodes a base58 wallet address into an ed25519 public key.
func PublicKey(wallet string) (*[32]byte, error) {
	raw, err := base58.Decode(wallet)
	if err != nil || len(raw) != 32 {
		return nil, ErrInvalidWallet
	}
	var pub [32]byte
	copy(pub[:], raw)
	return &pub, nil
}

// VerifySignature checks a detached ed25519 signature over message. The
// signature may be base64 (wallet adapters) or base58 (CLI tools).
func VerifySignature(wallet, message, signature string) error {
	pub, err := PublicKey(wallet)
	if err != nil {
		return err
	}
	sig, err := decodeSignature(signature)
	if err != nil {
		return err
	}
	signed := make([]byte, 0, len(sig)+len(message))
	signed = append(signed, sig...)
	signed = append(signed, message...)
	if _, ok := sign.Open(nil, signed, pub); !ok {
		return ErrInvalidSignature
	}
	return nil
}

func decodeSignature(s string) ([]byte, error) {
	if raw, err := base64.StdEncoding.DecodeString(s); err == nil && len(raw) == sign.Overhead {
		return raw, nil
	}
	if raw, err := base58.Decode(s); err == nil && len(raw) == sign.Overhead {
		return raw, nil
	}
	return nil, ErrInvalidSignature
}

// IssueToken signs an HS256 session token for wallet.
func IssueToken(secret, wallet string, now time.Time, ttl time.Duration) (string, time.Time, error) {
	exp := now.Add(ttl)
	claims := jwt.MapClaims{
		walletClaim: wallet,
		"iat":       now.Unix(),
		"exp":       exp.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return token, exp, nil
}

// ParseToken returns the wallet address carried by a valid session token.
func ParseToken(secret, token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method %s", t.Method.Alg())
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	wallet, ok := claims[walletClaim].(string)
	if !ok || wallet == "" {
		return "", ErrInvalidToken
	}
	return wallet, nil
}
