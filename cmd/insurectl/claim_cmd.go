package main

import (
	"crypto/sha256"
	"flag"
	"fmt"
	"io"

	"github.com/gagliardetto/solana-go"
	"github.com/google/uuid"

	"github.com/Veris-Labs/underwrite/pkg/contract"
)

// runFileClaimCmd implements `insurectl file-claim`. The signing keypair
// must be the contract's beneficiary authority. The claim reference is the
// sha-256 of -ref, or of a generated UUID when -ref is omitted.
func runFileClaimCmd(args []string, stdout, stderr io.Writer) int {
	cmd := flag.NewFlagSet("file-claim", flag.ContinueOnError)
	cmd.SetOutput(stderr)

	common := addCommonFlags(cmd)
	var (
		address string
		ref     string
	)
	cmd.StringVar(&address, "contract", "", "Contract account pubkey (REQUIRED)")
	cmd.StringVar(&ref, "ref", "", "Claim reference text; hashed to the on-chain reference")

	if err := cmd.Parse(args); err != nil {
		return 2
	}
	contractKey, ok := requireContractKey(address, stderr)
	if !ok {
		return 2
	}

	if ref == "" {
		ref = uuid.NewString()
		_, _ = fmt.Fprintf(stdout, "Generated claim reference: %s\n", ref)
	}
	reference := contract.ClaimReference(sha256.Sum256([]byte(ref)))

	client, payer, err := common.connect()
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	inst, err := contract.NewFileClaimInstruction(contractKey, payer.PublicKey(), reference)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: build file-claim: %v\n", err)
		return 2
	}

	ctx, cancel := withTimeout()
	defer cancel()
	if err := sendInstructions(ctx, client, []solana.Instruction{inst}, payer, nil, stdout); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintf(stdout, "Claim filed on %s (reference sha256 %x)\n", contractKey, reference[:8])
	return 0
}

// runApproveCmd implements `insurectl approve`. The signing keypair must be
// the adjudicator authority. Partial amounts are allowed; the contract
// becomes terminal when the coverage limit is fully paid out.
func runApproveCmd(args []string, stdout, stderr io.Writer) int {
	cmd := flag.NewFlagSet("approve", flag.ContinueOnError)
	cmd.SetOutput(stderr)

	common := addCommonFlags(cmd)
	var (
		address string
		amount  uint64
	)
	cmd.StringVar(&address, "contract", "", "Contract account pubkey (REQUIRED)")
	cmd.Uint64Var(&amount, "amount", 0, "Payout amount in lamports (REQUIRED)")

	if err := cmd.Parse(args); err != nil {
		return 2
	}
	contractKey, ok := requireContractKey(address, stderr)
	if !ok {
		return 2
	}
	if amount == 0 {
		_, _ = fmt.Fprintln(stderr, "Error: -amount must be positive")
		return 2
	}

	client, payer, err := common.connect()
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	inst, err := contract.NewApproveClaimInstruction(contractKey, payer.PublicKey(), amount)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: build approve: %v\n", err)
		return 2
	}

	ctx, cancel := withTimeout()
	defer cancel()
	if err := sendInstructions(ctx, client, []solana.Instruction{inst}, payer, nil, stdout); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintf(stdout, "Approved payout of %d on %s\n", amount, contractKey)
	return 0
}

// runRejectCmd implements `insurectl reject`. The signing keypair must be
// the adjudicator authority.
func runRejectCmd(args []string, stdout, stderr io.Writer) int {
	cmd := flag.NewFlagSet("reject", flag.ContinueOnError)
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
	inst, err := contract.NewRejectClaimInstruction(contractKey, payer.PublicKey())
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: build reject: %v\n", err)
		return 2
	}

	ctx, cancel := withTimeout()
	defer cancel()
	if err := sendInstructions(ctx, client, []solana.Instruction{inst}, payer, nil, stdout); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintf(stdout, "Claim rejected on %s\n", contractKey)
	return 0
}

func requireContractKey(address string, stderr io.Writer) (solana.PublicKey, bool) {
	if address == "" {
		_, _ = fmt.Fprintln(stderr, "Error: -contract is required")
		return solana.PublicKey{}, false
	}
	key, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: invalid -contract: %v\n", err)
		return solana.PublicKey{}, false
	}
	return key, true
}
