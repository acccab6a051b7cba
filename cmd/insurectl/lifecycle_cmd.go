package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/gagliardetto/solana-go"

	"github.com/Veris-Labs/underwrite/pkg/contract"
)

// runExpireCmd implements `insurectl expire`. Expiry is permissionless: any
// fee payer may crank it once ledger time reaches effective_until.
func runExpireCmd(args []string, stdout, stderr io.Writer) int {
	cmd := flag.NewFlagSet("expire", flag.ContinueOnError)
	cmd.SetOutput(stderr)

	common := addCommonFlags(cmd)
	var address string
	cmd.StringVar(&address, "contract", "", "Contract account pubkey (REQUIRED)")

	if err := cmd.Parse(args); err != nil {
		return 2
	}
	contractKey, ok := requireContractKey(address, stderr)
	if !ok {
		return 2
	}

	client, payer, err := common.connect()
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	inst, err := contract.NewExpireInstruction(contractKey)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: build expire: %v\n", err)
		return 2
	}

	ctx, cancel := withTimeout()
	defer cancel()
	if err := sendInstructions(ctx, client, []solana.Instruction{inst}, payer, nil, stdout); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintf(stdout, "Contract %s expired\n", contractKey)
	return 0
}

// runCancelCmd implements `insurectl cancel`. The signing keypair must be
// the contract's owner authority.
func runCancelCmd(args []string, stdout, stderr io.Writer) int {
	cmd := flag.NewFlagSet("cancel", flag.ContinueOnError)
	cmd.SetOutput(stderr)

	common := addCommonFlags(cmd)
	var address string
	cmd.StringVar(&address, "contract", "", "Contract account pubkey (REQUIRED)")

	if err := cmd.Parse(args); err != nil {
		return 2
	}
	contractKey, ok := requireContractKey(address, stderr)
	if !ok {
		return 2
	}

	client, payer, err := common.connect()
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	inst, err := contract.NewCancelInstruction(contractKey, payer.PublicKey())
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: build cancel: %v\n", err)
		return 2
	}

	ctx, cancel := withTimeout()
	defer cancel()
	if err := sendInstructions(ctx, client, []solana.Instruction{inst}, payer, nil, stdout); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintf(stdout, "Contract %s cancelled\n", contractKey)
	return 0
}
