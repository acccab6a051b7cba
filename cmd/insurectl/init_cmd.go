package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/Veris-Labs/underwrite/pkg/contract"
)

// runInitCmd implements `insurectl init`: allocates a fresh contract account
// via the system program and initializes it, in one transaction. The caller
// becomes the owner authority; a throwaway keypair names the new account.
func runInitCmd(args []string, stdout, stderr io.Writer) int {
	cmd := flag.NewFlagSet("init", flag.ContinueOnError)
	cmd.SetOutput(stderr)

	common := addCommonFlags(cmd)
	var (
		premium     uint64
		coverage    uint64
		fromArg     string
		untilArg    string
		beneficiary string
		adjudicator string
	)
	cmd.Uint64Var(&premium, "premium", 0, "Premium amount in lamports")
	cmd.Uint64Var(&coverage, "coverage", 0, "Coverage limit in lamports (REQUIRED)")
	cmd.StringVar(&fromArg, "from", "", "Effective start, RFC3339 or unix seconds (default now)")
	cmd.StringVar(&untilArg, "until", "", "Effective end, RFC3339 or unix seconds (REQUIRED)")
	cmd.StringVar(&beneficiary, "beneficiary", "", "Beneficiary authority pubkey (REQUIRED)")
	cmd.StringVar(&adjudicator, "adjudicator", "", "Adjudicator authority pubkey (REQUIRED)")

	if err := cmd.Parse(args); err != nil {
		return 2
	}
	if coverage == 0 || untilArg == "" || beneficiary == "" || adjudicator == "" {
		_, _ = fmt.Fprintln(stderr, "Error: -coverage, -until, -beneficiary and -adjudicator are required")
		return 2
	}

	beneficiaryKey, err := solana.PublicKeyFromBase58(beneficiary)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: invalid -beneficiary: %v\n", err)
		return 2
	}
	adjudicatorKey, err := solana.PublicKeyFromBase58(adjudicator)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: invalid -adjudicator: %v\n", err)
		return 2
	}
	from := time.Now().Unix()
	if fromArg != "" {
		if from, err = parseLedgerTime(fromArg); err != nil {
			_, _ = fmt.Fprintf(stderr, "Error: invalid -from: %v\n", err)
			return 2
		}
	}
	until, err := parseLedgerTime(untilArg)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: invalid -until: %v\n", err)
		return 2
	}

	client, payer, err := common.connect()
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	ctx, cancel := withTimeout()
	defer cancel()

	lamports, err := client.GetMinimumBalanceForRentExemption(ctx, contract.ContractDataLen, rpc.CommitmentFinalized)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: rent exemption query: %v\n", err)
		return 1
	}

	account := solana.NewWallet()
	createInst, err := system.NewCreateAccountInstruction(
		lamports,
		contract.ContractDataLen,
		contract.ProgramID,
		payer.PublicKey(),
		account.PublicKey(),
	).ValidateAndBuild()
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: build create-account: %v\n", err)
		return 2
	}
	initInst, err := contract.NewInitializeInstruction(account.PublicKey(), payer.PublicKey(), contract.InitializeArgs{
		PremiumAmount:  premium,
		CoverageLimit:  coverage,
		EffectiveFrom:  from,
		EffectiveUntil: until,
		Beneficiary:    beneficiaryKey,
		Adjudicator:    adjudicatorKey,
	})
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: build initialize: %v\n", err)
		return 2
	}

	_, _ = fmt.Fprintf(stdout, "Contract account: %s\n", account.PublicKey())
	if err := sendInstructions(ctx, client, []solana.Instruction{createInst, initInst}, payer,
		[]solana.PrivateKey{account.PrivateKey}, stdout); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintf(stdout, "Initialized: coverage %d, effective %d..%d\n", coverage, from, until)
	return 0
}

// parseLedgerTime accepts RFC3339 or raw unix seconds.
func parseLedgerTime(s string) (int64, error) {
	if ts, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ts, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return 0, fmt.Errorf("want RFC3339 or unix seconds: %w", err)
	}
	return t.Unix(), nil
}
