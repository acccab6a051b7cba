// Package runtime models the host-facing side of the program: the account
// handles, ledger clock, and rent math the consensus runtime supplies at
// instruction dispatch, plus an in-memory Bank that stands in for the
// validator in tests.
//
// Nothing in this package knows what the account bytes mean. Interpretation
// belongs to pkg/contract; this package only moves buffers and flags.
package runtime

import (
	"github.com/gagliardetto/solana-go"
)

// Account is one runtime-managed storage slot as presented to an
// instruction: address, owning program, balance, raw data, and the
// per-transaction signer/writable flags.
type Account struct {
	Key        solana.PublicKey
	Owner      solana.PublicKey
	Lamports   uint64
	Data       []byte
	IsSigner   bool
	IsWritable bool
}

// SignerSet is the set of identities that actually co-signed the enclosing
// transaction. Authority checks test membership here, never a claimed
// identity on its own.
type SignerSet map[solana.PublicKey]struct{}

// Has reports whether key signed the transaction.
func (s SignerSet) Has(key solana.PublicKey) bool {
	_, ok := s[key]
	return ok
}

// CollectSigners gathers the signer identities from an instruction's
// account list.
func CollectSigners(accounts []*Account) SignerSet {
	set := make(SignerSet, len(accounts))
	for _, acc := range accounts {
		if acc != nil && acc.IsSigner {
			set[acc.Key] = struct{}{}
		}
	}
	return set
}
