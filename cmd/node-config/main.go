package main

import (
	"fmt"

	"github.com/MKhiriev/node-config/internal/config"
	"github.com/MKhiriev/node-config/internal/consensus"
	"github.com/MKhiriev/node-config/internal/logger"
	"github.com/MKhiriev/node-config/internal/wallets"
	"github.com/rs/zerolog"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("node-config")
	cfg, err := config.GetNodeConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	defer cfg.Secrets.Zero()

	ws, err := config.ResolveWallets(cfg.Store, log.Component("wallets"))
	if err != nil {
		log.Fatal().Err(err).Msg("error resolving wallets")
	}
	defer ws.Zero()

	general := cfg.Store.General()

	event := log.Info().
		Strs("sections", general.PresentSections()).
		Dict("wallets", walletsDict(ws))
	if general.PostgresConfig != nil {
		event = event.Str("postgres", general.PostgresConfig.SafeMasterURL())
	}
	if g := cfg.Genesis; g != nil {
		event = event.Dict("genesis", zerolog.Dict().
			Uint16("protocol_version", g.ProtocolVersion).
			Uint64("l1_chain_id", g.L1ChainID).
			Uint64("l2_chain_id", g.L2ChainID).
			Str("fee_account", g.FeeAccount.Hex()))
	}
	if s := cfg.Secrets; s != nil && s.Consensus != nil {
		event = event.Bool("validator_key", s.Consensus.ValidatorKey != nil)
		if s.Consensus.NodeKey != nil {
			event = event.Str("node_key", consensus.EncodeNodePublicKey(s.Consensus.NodeKey))
		}
	}
	event.Msg("node configuration loaded")
}

// walletsDict lists the configured wallet addresses. Keys are never logged.
func walletsDict(ws *wallets.Wallets) *zerolog.Event {
	d := zerolog.Dict()
	if ws.EthSender != nil {
		d = d.Str("operator", ws.EthSender.Operator.Address().Hex())
		if ws.EthSender.BlobOperator != nil {
			d = d.Str("blob_operator", ws.EthSender.BlobOperator.Address().Hex())
		}
	}
	if ws.StateKeeper != nil {
		d = d.Str("fee_account", ws.StateKeeper.FeeAccount.Address().Hex())
	}
	return d
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
