package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/stretchr/testify/require"
)

func TestLoadCLIConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(
		"json_rpc_url: https://api.testnet.solana.com\n"+
			"websocket_url: ''\n"+
			"keypair_path: /home/user/.config/solana/id.json\n"), 0o600))

	cfg, err := loadCLIConfig(path)
	require.NoError(t, err)
	require.Equal(t, "https://api.testnet.solana.com", cfg.JSONRPCURL)
	require.Equal(t, "/home/user/.config/solana/id.json", cfg.KeypairPath)
}

func TestLoadCLIConfigMissingFileIsEmpty(t *testing.T) {
	cfg, err := loadCLIConfig(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	require.Empty(t, cfg.JSONRPCURL)
}

func TestLoadCLIConfigRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml: ["), 0o600))
	_, err := loadCLIConfig(path)
	require.Error(t, err)
}

func TestNormalizeToURL(t *testing.T) {
	cases := map[string]string{
		"mainnet-beta":      rpc.MainNetBeta_RPC,
		"m":                 rpc.MainNetBeta_RPC,
		"testnet":           rpc.TestNet_RPC,
		"t":                 rpc.TestNet_RPC,
		"devnet":            rpc.DevNet_RPC,
		"d":                 rpc.DevNet_RPC,
		"localhost":         rpc.LocalNet_RPC,
		"l":                 rpc.LocalNet_RPC,
		"":                  rpc.DevNet_RPC,
		"http://my-node:89": "http://my-node:89",
	}
	for in, want := range cases {
		require.Equal(t, want, normalizeToURL(in), "input %q", in)
	}
}

func TestResolveRPCURLPrecedence(t *testing.T) {
	cfg := cliConfig{JSONRPCURL: "testnet"}
	require.Equal(t, rpc.MainNetBeta_RPC, resolveRPCURL("mainnet-beta", cfg))
	require.Equal(t, rpc.TestNet_RPC, resolveRPCURL("", cfg))
	require.Equal(t, rpc.DevNet_RPC, resolveRPCURL("", cliConfig{}))
}

func TestResolveKeypairRequiresAPath(t *testing.T) {
	_, err := resolveKeypair("", cliConfig{})
	require.Error(t, err)
}
