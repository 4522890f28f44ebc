// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package consensus holds the consensus secret bundle of a node: the
// validator's BLS12-381 signing key and the node's ED25519 network key.
//
// Keys travel as tagged text ("validator:secret:bls12_381:<hex>",
// "node:secret:ed25519:<hex seed>") so that a key pasted into the wrong
// field is rejected instead of silently used.
package consensus

import (
	"crypto/ed25519"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

const (
	validatorSecretPrefix = "validator:secret:bls12_381:"
	nodeSecretPrefix      = "node:secret:ed25519:"
	nodePublicPrefix      = "node:public:ed25519:"

	// ValidatorSecretKeyLength is the size of a BLS12-381 secret scalar.
	ValidatorSecretKeyLength = 32
)

// ErrInvalidKeyEncoding is returned when a text-encoded key has the wrong
// tag, is not hex, has the wrong length or is not a valid scalar.
var ErrInvalidKeyEncoding = errors.New("invalid key encoding")

// blsOrder is the order r of the BLS12-381 scalar field.
var blsOrder, _ = new(big.Int).SetString("73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001", 16)

// ValidatorSecretKey is a BLS12-381 secret scalar, big-endian.
type ValidatorSecretKey struct {
	b [ValidatorSecretKeyLength]byte
}

// ParseValidatorSecretKey decodes "validator:secret:bls12_381:<hex>". The
// scalar must be non-zero and below the group order.
func ParseValidatorSecretKey(text string) (*ValidatorSecretKey, error) {
	raw, err := decodeTagged(text, validatorSecretPrefix, ValidatorSecretKeyLength)
	if err != nil {
		return nil, err
	}

	scalar := new(big.Int).SetBytes(raw)
	if scalar.Sign() == 0 || scalar.Cmp(blsOrder) >= 0 {
		clear(raw)
		return nil, fmt.Errorf("%w: scalar out of range", ErrInvalidKeyEncoding)
	}

	k := new(ValidatorSecretKey)
	copy(k.b[:], raw)
	clear(raw)
	return k, nil
}

// Encode returns the tagged text form with lowercase hex.
func (k *ValidatorSecretKey) Encode() string {
	return validatorSecretPrefix + hex.EncodeToString(k.b[:])
}

// Equal compares two keys in constant time.
func (k *ValidatorSecretKey) Equal(other *ValidatorSecretKey) bool {
	if k == nil || other == nil {
		return k == other
	}
	return subtle.ConstantTimeCompare(k.b[:], other.b[:]) == 1
}

// Zero wipes the key.
func (k *ValidatorSecretKey) Zero() {
	if k != nil {
		clear(k.b[:])
	}
}

func (k *ValidatorSecretKey) String() string { return "ValidatorSecretKey(<redacted>)" }

// ParseNodeSecretKey decodes "node:secret:ed25519:<hex seed>" into a full
// ED25519 private key.
func ParseNodeSecretKey(text string) (ed25519.PrivateKey, error) {
	seed, err := decodeTagged(text, nodeSecretPrefix, ed25519.SeedSize)
	if err != nil {
		return nil, err
	}
	defer clear(seed)
	return ed25519.NewKeyFromSeed(seed), nil
}

// EncodeNodeSecretKey returns the tagged text form of key's seed.
func EncodeNodeSecretKey(key ed25519.PrivateKey) string {
	return nodeSecretPrefix + hex.EncodeToString(key.Seed())
}

// EncodeNodePublicKey returns the tagged text form of key's public half,
// which is safe to log.
func EncodeNodePublicKey(key ed25519.PrivateKey) string {
	return nodePublicPrefix + hex.EncodeToString(key.Public().(ed25519.PublicKey))
}

// decodeTagged strips tag from text and hex-decodes exactly size bytes.
// Errors never include the key text.
func decodeTagged(text, tag string, size int) ([]byte, error) {
	payload, ok := strings.CutPrefix(strings.TrimSpace(text), tag)
	if !ok {
		return nil, fmt.Errorf("%w: expected %q prefix", ErrInvalidKeyEncoding, tag)
	}

	raw, err := hex.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed hex", ErrInvalidKeyEncoding)
	}
	if len(raw) != size {
		clear(raw)
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeyEncoding, len(raw), size)
	}
	return raw, nil
}
