package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/gagliardetto/solana-go/rpc"

	"github.com/Veris-Labs/underwrite/pkg/contract"
)

// runShowCmd implements `insurectl show`: fetches the account, decodes it
// through the record codec, and prints every field. A record that fails to
// decode is reported as an error, never printed partially.
func runShowCmd(args []string, stdout, stderr io.Writer) int {
	cmd := flag.NewFlagSet("show", flag.ContinueOnError)
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

	client, err := common.connectReadOnly()
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	ctx, cancel := withTimeout()
	defer cancel()
	info, err := client.GetAccountInfo(ctx, contractKey)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			_, _ = fmt.Fprintf(stderr, "Error: account %s does not exist\n", contractKey)
			return 1
		}
		_, _ = fmt.Fprintf(stderr, "Error: fetch account: %v\n", err)
		return 1
	}

	if !info.Value.Owner.Equals(contract.ProgramID) {
		_, _ = fmt.Fprintf(stderr, "Error: %s: %v\n", contractKey, contract.ErrInvalidOwner)
		return 1
	}
	record, err := contract.UnpackContract(info.Value.Data.GetBinary())
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %s: %v\n", contractKey, err)
		return 1
	}

	printContract(stdout, record)
	return 0
}

func printContract(w io.Writer, d *contract.InsuranceContractData) {
	_, _ = fmt.Fprintf(w, "Status:          %s\n", d.Status)
	_, _ = fmt.Fprintf(w, "Owner:           %s\n", d.OwnerAuthority)
	_, _ = fmt.Fprintf(w, "Beneficiary:     %s\n", d.BeneficiaryAuthority)
	_, _ = fmt.Fprintf(w, "Adjudicator:     %s\n", d.AdjudicatorAuthority)
	_, _ = fmt.Fprintf(w, "Premium:         %d\n", d.PremiumAmount)
	_, _ = fmt.Fprintf(w, "Coverage limit:  %d\n", d.CoverageLimit)
	_, _ = fmt.Fprintf(w, "Paid out:        %d\n", d.PaidOutAmount)
	_, _ = fmt.Fprintf(w, "Effective from:  %s\n", formatLedgerTime(d.EffectiveFrom))
	_, _ = fmt.Fprintf(w, "Effective until: %s\n", formatLedgerTime(d.EffectiveUntil))
	if d.ClaimReferenceSet {
		_, _ = fmt.Fprintf(w, "Claim reference: %x\n", d.ClaimReference)
	} else {
		_, _ = fmt.Fprintf(w, "Claim reference: (none)\n")
	}
	if d.Terminal() {
		_, _ = fmt.Fprintf(w, "Terminal:        yes\n")
	}
}

func formatLedgerTime(ts int64) string {
	if ts == 0 {
		return "0"
	}
	return fmt.Sprintf("%d (%s)", ts, time.Unix(ts, 0).UTC().Format(time.RFC3339))
}
