package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/viacoin/viautil/chaincfg"
	"github.com/viacoin/viautil/wire"
)

// NetworkFlags holds the network configuration, that is which network is selected.
type NetworkFlags struct {
	TestNet            bool   `long:"testnet" description:"Use the test network"`
	RegressionTest     bool   `long:"regtest" description:"Use the regression test network"`
	OverrideLimitsFile string `long:"override-limits-file" description:"JSON file overriding the decoding limits"`

	ActiveNetParams *chaincfg.Params `no-flag:"true"`
	Limits          wire.Limits      `no-flag:"true"`
}

type overrideLimitsConfig struct {
	MaxScriptSize           *uint32 `json:"maxScriptSize"`
	MaxWitnessItemSize      *uint32 `json:"maxWitnessItemSize"`
	MaxWitnessItemsPerInput *uint64 `json:"maxWitnessItemsPerInput"`
	MaxTxInPerTx            *uint64 `json:"maxTxInPerTx"`
	MaxTxOutPerTx           *uint64 `json:"maxTxOutPerTx"`
	MaxTxPerBlock           *uint64 `json:"maxTxPerBlock"`
}

// ResolveNetwork parses the network command line argument and sets ActiveNetParams accordingly.
// It returns error if more than one network was selected, nil otherwise.
func (networkFlags *NetworkFlags) ResolveNetwork(parser *flags.Parser) error {
	// Default net is main net.
	networkFlags.ActiveNetParams = &chaincfg.MainNetParams
	numNets := 0
	if networkFlags.TestNet {
		numNets++
		networkFlags.ActiveNetParams = &chaincfg.TestNetParams
	}
	if networkFlags.RegressionTest {
		numNets++
		networkFlags.ActiveNetParams = &chaincfg.RegressionNetParams
	}
	if numNets > 1 {
		message := "Multiple networks parameters (testnet, regtest) cannot be used " +
			"together. Please choose only one network"
		err := errors.Errorf(message)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return err
	}

	return networkFlags.overrideLimits()
}

// NetParams returns the ActiveNetParams
func (networkFlags *NetworkFlags) NetParams() *chaincfg.Params {
	return networkFlags.ActiveNetParams
}

func (networkFlags *NetworkFlags) overrideLimits() error {
	networkFlags.Limits = wire.DefaultLimits

	if networkFlags.OverrideLimitsFile == "" {
		return nil
	}

	overrideLimitsFile, err := os.Open(networkFlags.OverrideLimitsFile)
	if err != nil {
		return err
	}
	defer overrideLimitsFile.Close()

	decoder := json.NewDecoder(overrideLimitsFile)
	decoder.DisallowUnknownFields()
	config := &overrideLimitsConfig{}
	err = decoder.Decode(config)
	if err != nil {
		return errors.Wrapf(err, "error decoding %s", networkFlags.OverrideLimitsFile)
	}

	if config.MaxScriptSize != nil {
		networkFlags.Limits.MaxScriptSize = *config.MaxScriptSize
	}

	if config.MaxWitnessItemSize != nil {
		networkFlags.Limits.MaxWitnessItemSize = *config.MaxWitnessItemSize
	}

	if config.MaxWitnessItemsPerInput != nil {
		networkFlags.Limits.MaxWitnessItemsPerInput = *config.MaxWitnessItemsPerInput
	}

	if config.MaxTxInPerTx != nil {
		networkFlags.Limits.MaxTxInPerTx = *config.MaxTxInPerTx
	}

	if config.MaxTxOutPerTx != nil {
		networkFlags.Limits.MaxTxOutPerTx = *config.MaxTxOutPerTx
	}

	if config.MaxTxPerBlock != nil {
		networkFlags.Limits.MaxTxPerBlock = *config.MaxTxPerBlock
	}

	return nil
}
