// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// secp256k1Deriver is the private implementation of [AddressDeriver] used by
// Ethereum-compatible chains.
type secp256k1Deriver struct{}

// NewSecp256k1Deriver constructs an [AddressDeriver] that recovers the
// uncompressed secp256k1 public key and hashes it with legacy Keccak-256.
func NewSecp256k1Deriver() AddressDeriver {
	return secp256k1Deriver{}
}

// AddressFromPrivateKey implements [AddressDeriver]. Range checks on the
// scalar are delegated to go-ethereum's ToECDSA, whose error is wrapped with
// [ErrInvalidPrivateKey].
func (secp256k1Deriver) AddressFromPrivateKey(key *PrivateKey) (common.Address, error) {
	if key == nil {
		return common.Address{}, fmt.Errorf("%w: no key provided", ErrInvalidPrivateKey)
	}

	raw := key.Bytes()
	defer clear(raw)

	ecdsaKey, err := ethcrypto.ToECDSA(raw)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
	}
	// The scalar has been copied into a big.Int; wipe it once the public
	// key is known.
	defer ecdsaKey.D.SetInt64(0)

	return ethcrypto.PubkeyToAddress(ecdsaKey.PublicKey), nil
}
