package protoconfig

import (
	"fmt"
	"slices"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

func parseH256(b hexutil.Bytes) (common.Hash, error) {
	if len(b) != common.HashLength {
		return common.Hash{}, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidLength, len(b), common.HashLength)
	}
	return common.BytesToHash(b), nil
}

func parseH160(b hexutil.Bytes) (common.Address, error) {
	if len(b) != common.AddressLength {
		return common.Address{}, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidLength, len(b), common.AddressLength)
	}
	return common.BytesToAddress(b), nil
}

// requiredH256 reads a required 32-byte field, labelling errors with name.
func requiredH256(name string, b *hexutil.Bytes) (common.Hash, error) {
	v, err := Required(b)
	if err != nil {
		return common.Hash{}, WithContext(name, err)
	}
	h, err := parseH256(v)
	return h, WithContext(name, err)
}

// requiredH160 reads a required 20-byte field, labelling errors with name.
func requiredH160(name string, b *hexutil.Bytes) (common.Address, error) {
	v, err := Required(b)
	if err != nil {
		return common.Address{}, WithContext(name, err)
	}
	a, err := parseH160(v)
	return a, WithContext(name, err)
}

func hexBytes(b []byte) *hexutil.Bytes {
	v := hexutil.Bytes(slices.Clone(b))
	return &v
}

func ptr[T any](v T) *T {
	return &v
}
