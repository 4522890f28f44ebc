// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// PrivateKeyLength is the size of a secp256k1 secret scalar in bytes.
const PrivateKeyLength = 32

// ErrInvalidPrivateKey is returned when key material cannot be used as a
// secp256k1 private key: wrong length, malformed hex, or a scalar outside
// the curve's valid range.
var ErrInvalidPrivateKey = errors.New("invalid private key")

// noCopy may be embedded into structs which must not be copied after first
// use. go vet's copylocks check reports copies of such values.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// PrivateKey holds 32 bytes of secret key material.
//
// A PrivateKey is always handled through a pointer and has a single owner.
// The bytes live in a separate allocation that is cleared by [PrivateKey.Zero]
// or, as a fallback, when the key becomes unreachable.
type PrivateKey struct {
	_ noCopy

	b *[PrivateKeyLength]byte
}

// NewPrivateKey copies raw into a new PrivateKey. The caller keeps ownership
// of raw and should clear it when it is no longer needed.
func NewPrivateKey(raw []byte) (*PrivateKey, error) {
	if len(raw) != PrivateKeyLength {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidPrivateKey, len(raw), PrivateKeyLength)
	}

	k := &PrivateKey{b: new([PrivateKeyLength]byte)}
	copy(k.b[:], raw)
	runtime.AddCleanup(k, func(b *[PrivateKeyLength]byte) {
		clear(b[:])
	}, k.b)

	return k, nil
}

// PrivateKeyFromHex parses a hex encoded key with or without the 0x prefix.
// The error never contains the input.
func PrivateKeyFromHex(s string) (*PrivateKey, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")

	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed hex", ErrInvalidPrivateKey)
	}
	defer clear(raw)

	return NewPrivateKey(raw)
}

// Bytes returns a copy of the key material. The caller owns the copy and
// should clear it after use.
func (k *PrivateKey) Bytes() []byte {
	out := make([]byte, PrivateKeyLength)
	copy(out, k.b[:])
	return out
}

// Equal reports whether k and other hold the same key material. The
// comparison runs in constant time.
func (k *PrivateKey) Equal(other *PrivateKey) bool {
	if k == nil || other == nil {
		return k == other
	}
	return subtle.ConstantTimeCompare(k.b[:], other.b[:]) == 1
}

// Zero overwrites the key material. A zeroed key is not a valid scalar, so
// any later derivation from it fails.
func (k *PrivateKey) Zero() {
	if k == nil || k.b == nil {
		return
	}
	clear(k.b[:])
}

// String implements fmt.Stringer without exposing the key.
func (k *PrivateKey) String() string {
	return "PrivateKey(<redacted>)"
}

// GoString keeps %#v from printing the key bytes.
func (k *PrivateKey) GoString() string {
	return k.String()
}
