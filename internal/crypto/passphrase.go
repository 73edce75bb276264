// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirco Cloud

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// encPrefix tags an encrypted opaque value. Values without the tag are plain
// text and pass through decryption untouched, so encrypted and plain fields
// coexist in one record.
const encPrefix = "enc:"

// ErrWrongPassphrase is returned when an encrypted value fails GCM
// authentication, which in practice means the passphrase is wrong.
var ErrWrongPassphrase = errors.New("wrong passphrase")

// ErrMalformedValue is returned when a tagged value does not follow the
// salt.iv.ciphertext layout.
var ErrMalformedValue = errors.New("malformed encrypted value")

// PassphraseCipher encrypts and decrypts individual field values with a key
// derived from a user passphrase. The sync core never calls it: encrypted
// values travel through store, merge and remote push as opaque strings.
type PassphraseCipher interface {
	// Encrypt seals a plain value into the tagged portable format
	// enc:<salt>.<iv>.<ciphertext> (all segments base64).
	Encrypt(plain, passphrase string) (string, error)

	// Decrypt opens a tagged value. Untagged values are returned as-is.
	Decrypt(value, passphrase string) (string, error)

	// IsEncrypted reports whether value carries the encryption tag.
	IsEncrypted(value string) bool
}

type passphraseCipher struct {
	// PBKDF2-SHA256 iteration count. Matches the derivation parameters of
	// every replica; changing it breaks decryption of existing values.
	iterations int
}

// NewPassphraseCipher constructs a PassphraseCipher using PBKDF2-SHA256 with
// 100000 iterations and AES-256-GCM.
func NewPassphraseCipher() PassphraseCipher {
	return &passphraseCipher{iterations: 100_000}
}

func (c *passphraseCipher) Encrypt(plain, passphrase string) (string, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := c.newGCM(passphrase, salt)
	if err != nil {
		return "", err
	}

	iv := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, iv); err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}

	ciphertext := gcm.Seal(nil, iv, []byte(plain), nil)

	return encPrefix + strings.Join([]string{
		base64.StdEncoding.EncodeToString(salt),
		base64.StdEncoding.EncodeToString(iv),
		base64.StdEncoding.EncodeToString(ciphertext),
	}, "."), nil
}

func (c *passphraseCipher) Decrypt(value, passphrase string) (string, error) {
	if !c.IsEncrypted(value) {
		return value, nil
	}

	segments := strings.Split(strings.TrimPrefix(value, encPrefix), ".")
	if len(segments) != 3 {
		return "", ErrMalformedValue
	}

	salt, err := base64.StdEncoding.DecodeString(segments[0])
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedValue, err)
	}
	iv, err := base64.StdEncoding.DecodeString(segments[1])
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedValue, err)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(segments[2])
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedValue, err)
	}

	gcm, err := c.newGCM(passphrase, salt)
	if err != nil {
		return "", err
	}
	if len(iv) != gcm.NonceSize() {
		return "", ErrMalformedValue
	}

	plain, err := gcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return "", ErrWrongPassphrase
	}

	return string(plain), nil
}

func (c *passphraseCipher) IsEncrypted(value string) bool {
	return strings.HasPrefix(value, encPrefix)
}

func (c *passphraseCipher) newGCM(passphrase string, salt []byte) (cipher.AEAD, error) {
	key := pbkdf2.Key([]byte(passphrase), salt, c.iterations, 32, sha256.New)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("init gcm: %w", err)
	}

	return gcm, nil
}
