// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package wallets defines the signing credentials consumed by node
// components.
//
// A [Wallet] pairs an account address with an optional private key. Wallets
// are only created through [FromAddress] (watch-only) or [FromPrivateKey]
// (signing-capable). In the latter case the address is always derived from
// the key; a caller-supplied address is used only as an integrity check, so
// a key and address that drifted apart in configuration are caught at load
// time rather than at the first transaction.
package wallets

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/node-config/internal/crypto"
	"github.com/ethereum/go-ethereum/common"
)

// ErrAddressMismatch is returned by [FromPrivateKey] when the expected address
// differs from the one derived from the private key.
var ErrAddressMismatch = errors.New("malformed wallet: address does not correspond to private key")

// Wallet is an immutable credential. The zero value is not usable; build
// wallets with [FromAddress] or [FromPrivateKey].
type Wallet struct {
	address    common.Address
	privateKey *crypto.PrivateKey
}

// FromAddress returns a watch-only wallet for address. No derivation is
// performed.
func FromAddress(address common.Address) *Wallet {
	return &Wallet{address: address}
}

// Factory builds signing-capable wallets using a specific address deriver.
type Factory struct {
	deriver crypto.AddressDeriver
}

// NewFactory returns a Factory that derives addresses with deriver.
func NewFactory(deriver crypto.AddressDeriver) *Factory {
	return &Factory{deriver: deriver}
}

var defaultFactory = NewFactory(crypto.NewSecp256k1Deriver())

// DefaultFactory returns the Factory backed by the secp256k1 deriver.
func DefaultFactory() *Factory {
	return defaultFactory
}

// FromPrivateKey builds a signing-capable wallet with the default secp256k1
// deriver. See [Factory.FromPrivateKey].
func FromPrivateKey(privateKey *crypto.PrivateKey, expected *common.Address) (*Wallet, error) {
	return defaultFactory.FromPrivateKey(privateKey, expected)
}

// FromPrivateKey derives the address of privateKey and, when expected is
// non-nil, checks that both agree.
//
// On success the wallet takes ownership of privateKey and its address is the
// derived one. Errors wrap [crypto.ErrInvalidPrivateKey] for unusable key
// material or [ErrAddressMismatch] for a failed integrity check; in both
// cases the caller keeps ownership of privateKey.
func (f *Factory) FromPrivateKey(privateKey *crypto.PrivateKey, expected *common.Address) (*Wallet, error) {
	derived, err := f.deriver.AddressFromPrivateKey(privateKey)
	if err != nil {
		return nil, fmt.Errorf("error deriving wallet address: %w", err)
	}

	if expected != nil && *expected != derived {
		return nil, fmt.Errorf("%w: expected %s, derived %s", ErrAddressMismatch, expected.Hex(), derived.Hex())
	}

	return &Wallet{
		address:    derived,
		privateKey: privateKey,
	}, nil
}

// Address returns the wallet's account address.
func (w *Wallet) Address() common.Address {
	return w.address
}

// PrivateKey returns the signing key, or nil for a watch-only wallet.
func (w *Wallet) PrivateKey() *crypto.PrivateKey {
	return w.privateKey
}

// CanSign reports whether the wallet holds a private key.
func (w *Wallet) CanSign() bool {
	return w.privateKey != nil
}

// Zero wipes the wallet's private key, if any. The wallet must not be used
// for signing afterwards.
func (w *Wallet) Zero() {
	if w == nil {
		return
	}
	w.privateKey.Zero()
}

// String prints the address and whether a key is held, never the key.
func (w *Wallet) String() string {
	if w.CanSign() {
		return "Wallet(" + w.address.Hex() + ", signer)"
	}
	return "Wallet(" + w.address.Hex() + ", watch-only)"
}
