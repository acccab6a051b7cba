// Package contract implements the insurance-contract program core: the
// persisted record codec, the instruction wire format, the invariant checks,
// and the state-machine processor. Everything here is a deterministic
// function of (account bytes, instruction bytes, signer set, ledger clock);
// there is no I/O, no logging, and no ambient state.
package contract

import (
	"bytes"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// Status is the contract's lifecycle state. The discriminant is persisted as
// the first byte of the record, so values are ABI.
type Status uint8

const (
	StatusUninitialized Status = iota
	StatusActive
	StatusClaimFiled
	StatusClaimApproved
	StatusClaimRejected
	StatusExpired
	StatusCancelled

	statusLimit // all valid discriminants are below this
)

// Valid reports whether the discriminant is in range.
func (s Status) Valid() bool { return s < statusLimit }

func (s Status) String() string {
	switch s {
	case StatusUninitialized:
		return "Uninitialized"
	case StatusActive:
		return "Active"
	case StatusClaimFiled:
		return "ClaimFiled"
	case StatusClaimApproved:
		return "ClaimApproved"
	case StatusClaimRejected:
		return "ClaimRejected"
	case StatusExpired:
		return "Expired"
	case StatusCancelled:
		return "Cancelled"
	default:
		return "Invalid"
	}
}

// ContractDataLen is the exact serialized size of InsuranceContractData.
// The account is allocated at this size once and never resized.
const ContractDataLen = 1 + 32 + 32 + 32 + 8 + 8 + 8 + 8 + 8 + 1 + 32

// ClaimReference is the fixed-width opaque identifier attached when a claim
// is filed (typically a sha-256 of off-chain claim material).
type ClaimReference [32]byte

// InsuranceContractData is the persisted record, one per contract account.
// Field order is the on-chain layout; all integers are little-endian. The
// optional claim reference is a presence flag plus a fixed-width slot so the
// serialized size never varies.
type InsuranceContractData struct {
	Status               Status
	OwnerAuthority       solana.PublicKey
	BeneficiaryAuthority solana.PublicKey
	AdjudicatorAuthority solana.PublicKey
	PremiumAmount        uint64
	CoverageLimit        uint64
	PaidOutAmount        uint64
	EffectiveFrom        int64
	EffectiveUntil       int64
	ClaimReferenceSet    bool
	ClaimReference       ClaimReference
}

// Terminal reports whether the record is in a logical end-state from which
// no instruction is permitted. ClaimApproved is terminal only once the
// coverage limit is fully paid out (partial payouts keep it open).
func (d *InsuranceContractData) Terminal() bool {
	switch d.Status {
	case StatusCancelled, StatusExpired, StatusClaimRejected:
		return true
	case StatusClaimApproved:
		return d.PaidOutAmount == d.CoverageLimit
	default:
		return false
	}
}

// Pack serializes the record to its fixed on-chain layout.
func (d *InsuranceContractData) Pack() ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.Grow(ContractDataLen)
	if err := bin.NewBorshEncoder(buf).Encode(d); err != nil {
		return nil, err
	}
	out := buf.Bytes()
	if len(out) != ContractDataLen {
		return nil, ErrMalformed
	}
	return out, nil
}

// UnpackContract deserializes an account buffer. The buffer must be exactly
// ContractDataLen and carry an in-range status discriminant; anything else
// is ErrMalformed and no partial record is ever returned. An all-zero
// buffer decodes to a valid Uninitialized record.
func UnpackContract(data []byte) (*InsuranceContractData, error) {
	if len(data) != ContractDataLen {
		return nil, ErrMalformed
	}
	var d InsuranceContractData
	if err := bin.NewBorshDecoder(data).Decode(&d); err != nil {
		return nil, ErrMalformed
	}
	if !d.Status.Valid() {
		return nil, ErrMalformed
	}
	return &d, nil
}
