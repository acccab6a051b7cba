package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gagliardetto/solana-go"
)

// runKeygenCmd implements `insurectl keygen`: writes a new keypair in the
// Solana JSON-array format readable by every solana tool (and by -keypair).
func runKeygenCmd(args []string, stdout, stderr io.Writer) int {
	cmd := flag.NewFlagSet("keygen", flag.ContinueOnError)
	cmd.SetOutput(stderr)

	var outfile string
	cmd.StringVar(&outfile, "o", "", "Output keypair file (REQUIRED)")

	if err := cmd.Parse(args); err != nil {
		return 2
	}
	if outfile == "" {
		_, _ = fmt.Fprintln(stderr, "Error: -o is required")
		return 2
	}
	if _, err := os.Stat(outfile); err == nil {
		_, _ = fmt.Fprintf(stderr, "Error: %s already exists, refusing to overwrite\n", outfile)
		return 2
	}

	wallet := solana.NewWallet()
	raw := make([]int, len(wallet.PrivateKey))
	for i, b := range wallet.PrivateKey {
		raw[i] = int(b)
	}
	data, err := json.Marshal(raw)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: encode keypair: %v\n", err)
		return 2
	}
	if err := os.WriteFile(outfile, data, 0o600); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: write %s: %v\n", outfile, err)
		return 2
	}

	_, _ = fmt.Fprintf(stdout, "Wrote keypair to %s\n", outfile)
	_, _ = fmt.Fprintf(stdout, "Public key: %s\n", wallet.PublicKey())
	return 0
}
