package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"hash"
)

// Const declarations for supported HMAC hash types
const (
	HashSHA256 = iota
	HashSHA512
	HashSHA512_384
)

var (
	errUnsupportedHashType = errors.New("unsupported hash type")
	errEmptyKey            = errors.New("hmac key is empty")
)

// HexEncodeToString takes in a hexadecimal byte array and returns a lowercase
// hex string
func HexEncodeToString(input []byte) string {
	return hex.EncodeToString(input)
}

// GetHMAC returns a keyed-hash message authentication code using the desired
// hashtype
func GetHMAC(hashType int, input, key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, errEmptyKey
	}

	var hasher func() hash.Hash
	switch hashType {
	case HashSHA256:
		hasher = sha256.New
	case HashSHA512:
		hasher = sha512.New
	case HashSHA512_384:
		hasher = sha512.New384
	default:
		return nil, errUnsupportedHashType
	}

	h := hmac.New(hasher, key)
	h.Write(input)
	return h.Sum(nil), nil
}

// HexHMACSHA256 returns the lowercase hex HMAC-SHA256 of input keyed by key
func HexHMACSHA256(input, key []byte) (string, error) {
	sum, err := GetHMAC(HashSHA256, input, key)
	if err != nil {
		return "", err
	}
	return HexEncodeToString(sum), nil
}
