package crypto

import "github.com/ethereum/go-ethereum/common"

//go:generate mockgen -source=interfaces.go -destination=../mock/address_deriver_mock.go -package=mock

// AddressDeriver computes the account address implied by a private key.
//
// It is the only cryptographic primitive the wallet layer depends on:
//
//	Address = Keccak256(PublicKey(k))[12:]
//
// Implementations must fail with an error wrapping [ErrInvalidPrivateKey]
// when k is not a valid scalar for the curve (zero, or not below the group
// order). They must not retain k after returning.
type AddressDeriver interface {
	// AddressFromPrivateKey returns the 20-byte address controlled by key.
	AddressFromPrivateKey(key *PrivateKey) (common.Address, error)
}
