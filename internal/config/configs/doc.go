// Package configs holds the decoded sub-configuration sections of a node
// (database, API, mempool, L1 sender, prover, ...) and the aggregates built
// from them: [GeneralConfig] and [GenesisConfig].
//
// Every section carries yaml tags for file decoding and env tags that are
// resolved relative to the section's prefix by the config loader. Sections
// do not validate each other.
package configs
