package config

import (
	"errors"

	"github.com/MKhiriev/node-config/internal/config/configs"
	"github.com/MKhiriev/node-config/internal/crypto"
	"github.com/MKhiriev/node-config/internal/logger"
	"github.com/MKhiriev/node-config/internal/protoconfig"
	"github.com/MKhiriev/node-config/internal/wallets"
)

// walletField identifies a configuration value wallets are built from.
type walletField int

const (
	fieldOperator walletField = iota
	fieldBlobOperator
	fieldFeeAccount
)

func (f walletField) String() string {
	switch f {
	case fieldOperator:
		return "eth_sender.sender.operator_private_key"
	case fieldBlobOperator:
		return "eth_sender.sender.operator_blobs_private_key"
	case fieldFeeAccount:
		return "state_keeper.fee_account_addr"
	default:
		return "unknown"
	}
}

// resolutionPolicy decides what an unusable wallet field does to the
// aggregation as a whole.
type resolutionPolicy int

const (
	// failAggregation returns the error to the caller. It is the zero value,
	// so a field missing from walletPolicies fails loudly.
	failAggregation resolutionPolicy = iota
	// degradeToAbsent logs the problem and leaves the wallet out.
	degradeToAbsent
)

var walletPolicies = map[walletField]resolutionPolicy{
	fieldOperator:     degradeToAbsent,
	fieldBlobOperator: degradeToAbsent,
	fieldFeeAccount:   failAggregation,
}

func policyFor(f walletField) resolutionPolicy {
	return walletPolicies[f]
}

// Wallets resolves the credential bundle of the store with the secp256k1
// deriver. Degraded credentials are dropped silently; use [ResolveWallets] to
// have them logged.
func (s *TempConfigStore) Wallets() (*wallets.Wallets, error) {
	return ResolveWallets(s, logger.Nop())
}

// ResolveWallets builds the credential bundle from src.
//
// The eth sender group is present only when its operator key is usable; an
// unusable blob operator key only drops the blob operator. The state keeper
// group is present whenever its section is, and then requires the fee
// account address.
func ResolveWallets(src WalletSources, log *logger.Logger) (*wallets.Wallets, error) {
	return resolveWallets(src, wallets.DefaultFactory(), log)
}

func resolveWallets(src WalletSources, factory *wallets.Factory, log *logger.Logger) (*wallets.Wallets, error) {
	out := new(wallets.Wallets)

	if eth := src.ETHSender(); eth != nil {
		sender, err := resolveEthSender(&eth.Sender, factory, log)
		if err != nil {
			return nil, err
		}
		out.EthSender = sender
	}

	if sk := src.StateKeeper(); sk != nil {
		keeper, err := resolveStateKeeper(sk, log)
		if err != nil {
			out.Zero()
			return nil, err
		}
		out.StateKeeper = keeper
	}

	return out, nil
}

func resolveEthSender(sender *configs.SenderConfig, factory *wallets.Factory, log *logger.Logger) (*wallets.EthSender, error) {
	operator, err := resolveSigner(fieldOperator, sender.PrivateKey, factory, log)
	if err != nil || operator == nil {
		return nil, err
	}

	blob, err := resolveSigner(fieldBlobOperator, sender.PrivateKeyBlobs, factory, log)
	if err != nil {
		operator.Zero()
		return nil, err
	}

	return &wallets.EthSender{Operator: operator, BlobOperator: blob}, nil
}

// resolveSigner loads a private key and builds a signing wallet from it. A
// nil wallet with a nil error means the field degraded to absent.
func resolveSigner(
	field walletField,
	load func() (*crypto.PrivateKey, error),
	factory *wallets.Factory,
	log *logger.Logger,
) (*wallets.Wallet, error) {
	key, err := load()
	if err == nil && key == nil {
		err = protoconfig.ErrMissingRequiredField
	}
	if err != nil {
		return nil, applyPolicy(field, err, log)
	}

	w, err := factory.FromPrivateKey(key, nil)
	if err != nil {
		key.Zero()
		return nil, applyPolicy(field, err, log)
	}

	return w, nil
}

func resolveStateKeeper(sk *configs.StateKeeperConfig, log *logger.Logger) (*wallets.StateKeeper, error) {
	addr, err := protoconfig.Required(sk.FeeAccountAddr)
	if err != nil {
		return nil, applyPolicy(fieldFeeAccount, err, log)
	}

	return &wallets.StateKeeper{FeeAccount: wallets.FromAddress(addr)}, nil
}

// applyPolicy labels err with field and either returns it or, for fields
// that degrade, logs it and returns nil. Errors from key parsing never carry
// key material, so they are safe to log.
func applyPolicy(field walletField, err error, log *logger.Logger) error {
	err = protoconfig.WithContext(field.String(), err)
	if policyFor(field) == failAggregation {
		return err
	}

	if errors.Is(err, protoconfig.ErrMissingRequiredField) {
		log.Debug().Str("field", field.String()).Msg("wallet not configured")
		return nil
	}

	log.Warn().Err(err).Str("field", field.String()).Msg("ignoring unusable wallet credential")
	return nil
}
