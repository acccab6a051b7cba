package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"gopkg.in/yaml.v3"
)

// cliConfig is the subset of the standard Solana CLI config file this tool
// reads (~/.config/solana/cli/config.yml).
type cliConfig struct {
	JSONRPCURL  string `yaml:"json_rpc_url"`
	KeypairPath string `yaml:"keypair_path"`
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "solana", "cli", "config.yml")
}

// loadCLIConfig reads the Solana CLI config file. A missing file is not an
// error; flags and built-in defaults cover everything it would supply.
func loadCLIConfig(path string) (cliConfig, error) {
	var cfg cliConfig
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// normalizeToURL resolves a cluster moniker (or its first letter) to an RPC
// endpoint; anything else is passed through as a URL.
func normalizeToURL(urlOrMoniker string) string {
	switch strings.ToLower(strings.TrimSpace(urlOrMoniker)) {
	case "m", "mainnet-beta", "mainnet":
		return rpc.MainNetBeta_RPC
	case "t", "testnet":
		return rpc.TestNet_RPC
	case "d", "devnet":
		return rpc.DevNet_RPC
	case "l", "localhost", "localnet":
		return rpc.LocalNet_RPC
	case "":
		return rpc.DevNet_RPC
	default:
		return urlOrMoniker
	}
}

// resolveRPCURL prefers the -url flag, then the config file, then devnet
// (the original client's default cluster).
func resolveRPCURL(flagURL string, cfg cliConfig) string {
	if flagURL != "" {
		return normalizeToURL(flagURL)
	}
	if cfg.JSONRPCURL != "" {
		return normalizeToURL(cfg.JSONRPCURL)
	}
	return rpc.DevNet_RPC
}

// resolveKeypair loads the signing keypair from the -keypair flag or the
// config file's keypair_path.
func resolveKeypair(flagPath string, cfg cliConfig) (solana.PrivateKey, error) {
	path := flagPath
	if path == "" {
		path = cfg.KeypairPath
	}
	if path == "" {
		return nil, fmt.Errorf("no keypair: pass -keypair or set keypair_path in the Solana CLI config")
	}
	key, err := solana.PrivateKeyFromSolanaKeygenFile(path)
	if err != nil {
		return nil, fmt.Errorf("load keypair %s: %w", path, err)
	}
	return key, nil
}
