// Package config aggregates the node's configuration sections and signing
// credentials into the views node components consume.
//
// [TempConfigStore] holds every optional section as loaded. From it:
//   - [TempConfigStore.General] yields the component-facing
//     [configs.GeneralConfig], a deep copy in which absent sections stay
//     absent;
//   - [TempConfigStore.Wallets] and [ResolveWallets] build the credential
//     bundle, applying a per-field policy to unusable credentials (drop the
//     optional signer, or fail on a missing fee account);
//   - [Lookup] hands a single section to the component that owns it.
//
// [GetNodeConfig] loads the store from a general YAML file and environment
// variables (environment wins), plus the optional secrets and genesis files.
// File paths come from GENERAL_CONFIG_PATH, SECRETS_PATH and GENESIS_PATH or
// the -config, -secrets and -genesis flags.
package config
