// insurectl is the thin command-line client for the insurance-contract
// program: it turns subcommands into signed transactions and pretty-prints
// returned account data. All contract semantics live in pkg/contract; this
// binary is I/O and formatting only.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(Run(os.Args, os.Stdout, os.Stderr))
}

// Run is the entrypoint for testing.
//
// Exit codes:
//
//	0 = success
//	1 = the program or the RPC node rejected the request
//	2 = usage or local runtime error
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 2 {
		printUsage(stderr)
		return 2
	}

	switch args[1] {
	case "init":
		return runInitCmd(args[2:], stdout, stderr)
	case "file-claim":
		return runFileClaimCmd(args[2:], stdout, stderr)
	case "approve":
		return runApproveCmd(args[2:], stdout, stderr)
	case "reject":
		return runRejectCmd(args[2:], stdout, stderr)
	case "expire":
		return runExpireCmd(args[2:], stdout, stderr)
	case "cancel":
		return runCancelCmd(args[2:], stdout, stderr)
	case "show":
		return runShowCmd(args[2:], stdout, stderr)
	case "keygen":
		return runKeygenCmd(args[2:], stdout, stderr)
	case "help", "--help", "-h":
		printUsage(stdout)
		return 0
	default:
		_, _ = fmt.Fprintf(stderr, "Unknown command: %s\n", args[1])
		printUsage(stderr)
		return 2
	}
}

func printUsage(w io.Writer) {
	_, _ = fmt.Fprint(w, `insurectl - insurance-contract program client

Usage: insurectl <command> [flags]

Commands:
  init        Create and initialize a contract account
  file-claim  File a claim as the beneficiary
  approve     Approve a payout as the adjudicator
  reject      Reject a filed claim as the adjudicator
  expire      Expire a contract past its effective window (no signer)
  cancel      Cancel an active contract as the owner
  show        Decode and print a contract account
  keygen      Generate a keypair file

Common flags:
  -url      RPC URL or moniker (mainnet-beta, testnet, devnet, localhost)
  -keypair  Path to the fee-payer/authority keypair file

Defaults come from the Solana CLI config (~/.config/solana/cli/config.yml).
`)
}
