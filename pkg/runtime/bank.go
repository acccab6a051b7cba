package runtime

import (
	"fmt"
	"sync"

	"github.com/gagliardetto/solana-go"
)

// ProcessFunc is the program entrypoint the Bank drives: a pure function of
// (program id, account list, instruction bytes, ledger clock).
type ProcessFunc func(programID solana.PublicKey, accounts []*Account, data []byte, clock Clock) error

// Bank is an in-memory stand-in for the validator's account store. It
// resolves an instruction's account metas against stored accounts, invokes
// the program, and keeps the host's atomic-commit promise: on failure every
// touched account is restored byte-for-byte.
//
// The clock is injected so tests are deterministic.
type Bank struct {
	mu       sync.Mutex
	accounts map[solana.PublicKey]*Account
	clock    Clock
}

// NewBank creates an empty bank at slot 0, timestamp 0.
func NewBank() *Bank {
	return &Bank{
		accounts: make(map[solana.PublicKey]*Account),
	}
}

// WithClock sets the ledger clock and returns the bank.
func (b *Bank) WithClock(clock Clock) *Bank {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clock = clock
	return b
}

// AdvanceTime moves the ledger clock forward by the given seconds and one
// slot.
func (b *Bank) AdvanceTime(seconds int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clock.Slot++
	b.clock.UnixTimestamp += seconds
}

// Clock returns the current ledger clock.
func (b *Bank) Clock() Clock {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.clock
}

// CreateAccount allocates a zero-initialized account of the given size,
// owned by owner. Mirrors the system program's create-account step that
// precedes Initialize.
func (b *Bank) CreateAccount(key, owner solana.PublicKey, lamports uint64, space int) *Account {
	b.mu.Lock()
	defer b.mu.Unlock()
	acc := &Account{
		Key:      key,
		Owner:    owner,
		Lamports: lamports,
		Data:     make([]byte, space),
	}
	b.accounts[key] = acc
	return acc
}

// Account returns the stored account for key, if any.
func (b *Bank) Account(key solana.PublicKey) (*Account, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	acc, ok := b.accounts[key]
	return acc, ok
}

// ExecuteInstruction resolves the instruction's account metas, runs the
// program, and rolls back all account data on failure.
func (b *Bank) ExecuteInstruction(inst solana.Instruction, process ProcessFunc) error {
	data, err := inst.Data()
	if err != nil {
		return fmt.Errorf("instruction data: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	metas := inst.Accounts()
	accounts := make([]*Account, len(metas))
	saved := make([][]byte, len(metas))
	for i, meta := range metas {
		acc := b.resolveLocked(meta.PublicKey)
		acc.IsSigner = meta.IsSigner
		acc.IsWritable = meta.IsWritable
		accounts[i] = acc
		saved[i] = append([]byte(nil), acc.Data...)
	}

	if err := process(inst.ProgramID(), accounts, data, b.clock); err != nil {
		for i, acc := range accounts {
			copy(acc.Data, saved[i])
		}
		return err
	}
	return nil
}

// resolveLocked returns the stored account for key, synthesizing sysvar and
// fee-payer style accounts the way the validator materializes them.
func (b *Bank) resolveLocked(key solana.PublicKey) *Account {
	if acc, ok := b.accounts[key]; ok {
		return acc
	}
	acc := &Account{Key: key, Owner: solana.SystemProgramID}
	if key.Equals(solana.SysVarRentPubkey) {
		acc.Owner = sysvarOwner
	}
	b.accounts[key] = acc
	return acc
}

var sysvarOwner = solana.MustPublicKeyFromBase58("Sysvar1111111111111111111111111111111111111")
