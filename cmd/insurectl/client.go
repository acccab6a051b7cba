package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/Veris-Labs/underwrite/pkg/contract"
)

// commonFlags are shared by every subcommand that talks to a node.
type commonFlags struct {
	url        string
	keypair    string
	configPath string
}

func addCommonFlags(fs *flag.FlagSet) *commonFlags {
	c := &commonFlags{}
	fs.StringVar(&c.url, "url", "", "RPC URL or moniker (mainnet-beta, testnet, devnet, localhost)")
	fs.StringVar(&c.keypair, "keypair", "", "Path to fee-payer/authority keypair file")
	fs.StringVar(&c.configPath, "config", defaultConfigPath(), "Path to Solana CLI config file")
	return c
}

// connect resolves config + flags into an RPC client and signing keypair.
func (c *commonFlags) connect() (*rpc.Client, solana.PrivateKey, error) {
	cfg, err := loadCLIConfig(c.configPath)
	if err != nil {
		return nil, nil, err
	}
	payer, err := resolveKeypair(c.keypair, cfg)
	if err != nil {
		return nil, nil, err
	}
	return rpc.New(resolveRPCURL(c.url, cfg)), payer, nil
}

// connectReadOnly is for subcommands that never sign (show).
func (c *commonFlags) connectReadOnly() (*rpc.Client, error) {
	cfg, err := loadCLIConfig(c.configPath)
	if err != nil {
		return nil, err
	}
	return rpc.New(resolveRPCURL(c.url, cfg)), nil
}

const (
	confirmAttempts = 30
	confirmInterval = time.Second
)

// sendInstructions builds, signs, sends, and waits for confirmation of one
// transaction containing the given instructions.
func sendInstructions(
	ctx context.Context,
	client *rpc.Client,
	instructions []solana.Instruction,
	payer solana.PrivateKey,
	extraSigners []solana.PrivateKey,
	stdout io.Writer,
) error {
	recent, err := client.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return fmt.Errorf("fetch blockhash: %w", err)
	}

	tx, err := solana.NewTransaction(
		instructions,
		recent.Value.Blockhash,
		solana.TransactionPayer(payer.PublicKey()),
	)
	if err != nil {
		return fmt.Errorf("build transaction: %w", err)
	}

	signers := map[solana.PublicKey]solana.PrivateKey{payer.PublicKey(): payer}
	for _, s := range extraSigners {
		signers[s.PublicKey()] = s
	}
	if _, err := tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if k, ok := signers[key]; ok {
			return &k
		}
		return nil
	}); err != nil {
		return fmt.Errorf("sign transaction: %w", err)
	}

	sig, err := client.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		PreflightCommitment: rpc.CommitmentFinalized,
	})
	if err != nil {
		return fmt.Errorf("send transaction: %s", describeRPCError(err))
	}
	_, _ = fmt.Fprintf(stdout, "Transaction: %s\n", sig)

	for i := 0; i < confirmAttempts; i++ {
		statuses, err := client.GetSignatureStatuses(ctx, true, sig)
		if err == nil && len(statuses.Value) > 0 && statuses.Value[0] != nil {
			st := statuses.Value[0]
			if st.Err != nil {
				return fmt.Errorf("transaction failed: %s", describeRPCError(fmt.Errorf("%v", st.Err)))
			}
			if st.ConfirmationStatus == rpc.ConfirmationStatusConfirmed ||
				st.ConfirmationStatus == rpc.ConfirmationStatusFinalized {
				return nil
			}
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(confirmInterval):
		}
	}
	return fmt.Errorf("transaction %s not confirmed after %d attempts", sig, confirmAttempts)
}

// describeRPCError maps the node's "custom program error: 0xNN" form back to
// the program's distinct human-readable message; anything else passes
// through.
func describeRPCError(err error) string {
	msg := err.Error()
	const marker = "custom program error: "
	idx := strings.Index(msg, marker)
	if idx < 0 {
		return msg
	}
	codeStr := msg[idx+len(marker):]
	if end := strings.IndexAny(codeStr, " ,}]\"\n"); end >= 0 {
		codeStr = codeStr[:end]
	}
	code, perr := strconv.ParseUint(strings.TrimPrefix(codeStr, "0x"), 16, 32)
	if perr != nil {
		return msg
	}
	return contract.ContractError(code).Error()
}

func withTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 90*time.Second)
}
