package runtime

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gagliardetto/solana-go"
)

func TestCollectSigners(t *testing.T) {
	a := solana.NewWallet().PublicKey()
	b := solana.NewWallet().PublicKey()

	signers := CollectSigners([]*Account{
		{Key: a, IsSigner: true},
		{Key: b, IsSigner: false},
		nil,
	})
	if !signers.Has(a) {
		t.Fatal("a signed")
	}
	if signers.Has(b) {
		t.Fatal("b did not sign")
	}
}

func TestBankCreateAndGet(t *testing.T) {
	bank := NewBank()
	key := solana.NewWallet().PublicKey()
	owner := solana.NewWallet().PublicKey()

	created := bank.CreateAccount(key, owner, 500, 16)
	if len(created.Data) != 16 || created.Lamports != 500 {
		t.Fatalf("created %+v", created)
	}

	got, ok := bank.Account(key)
	if !ok || got != created {
		t.Fatal("stored account should be returned")
	}
}

func TestBankClock(t *testing.T) {
	bank := NewBank().WithClock(Clock{Slot: 10, UnixTimestamp: 100})
	bank.AdvanceTime(50)
	clock := bank.Clock()
	if clock.Slot != 11 || clock.UnixTimestamp != 150 {
		t.Fatalf("clock %+v", clock)
	}
}

func TestBankPassesMetaFlags(t *testing.T) {
	bank := NewBank()
	key := solana.NewWallet().PublicKey()
	owner := solana.NewWallet().PublicKey()
	bank.CreateAccount(key, owner, 1, 4)

	inst := solana.NewInstruction(owner, solana.AccountMetaSlice{
		solana.NewAccountMeta(key, true, true),
	}, []byte{1})

	var seen *Account
	err := bank.ExecuteInstruction(inst, func(programID solana.PublicKey, accounts []*Account, data []byte, clock Clock) error {
		if !programID.Equals(owner) {
			t.Fatalf("program id %s", programID)
		}
		if !bytes.Equal(data, []byte{1}) {
			t.Fatalf("data %v", data)
		}
		seen = accounts[0]
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if !seen.IsSigner || !seen.IsWritable {
		t.Fatalf("meta flags not applied: %+v", seen)
	}
}

func TestBankRollsBackOnFailure(t *testing.T) {
	bank := NewBank()
	key := solana.NewWallet().PublicKey()
	owner := solana.NewWallet().PublicKey()
	acc := bank.CreateAccount(key, owner, 1, 4)
	copy(acc.Data, []byte{1, 2, 3, 4})

	inst := solana.NewInstruction(owner, solana.AccountMetaSlice{
		solana.NewAccountMeta(key, true, false),
	}, nil)

	boom := errors.New("boom")
	err := bank.ExecuteInstruction(inst, func(_ solana.PublicKey, accounts []*Account, _ []byte, _ Clock) error {
		copy(accounts[0].Data, []byte{9, 9, 9, 9})
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
	if !bytes.Equal(acc.Data, []byte{1, 2, 3, 4}) {
		t.Fatalf("data not rolled back: %v", acc.Data)
	}
}

func TestBankSynthesizesSysvars(t *testing.T) {
	bank := NewBank()
	programID := solana.NewWallet().PublicKey()

	inst := solana.NewInstruction(programID, solana.AccountMetaSlice{
		solana.NewAccountMeta(solana.SysVarRentPubkey, false, false),
	}, nil)

	err := bank.ExecuteInstruction(inst, func(_ solana.PublicKey, accounts []*Account, _ []byte, _ Clock) error {
		rent, err := RentFromAccount(accounts[0])
		if err != nil {
			return err
		}
		if rent != DefaultRent() {
			t.Fatalf("rent %+v", rent)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}
