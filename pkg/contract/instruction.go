package contract

import (
	"bytes"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// InstructionTag selects the requested operation. The tag byte is ABI.
type InstructionTag uint8

const (
	TagInitialize InstructionTag = iota
	TagFileClaim
	TagApproveClaim
	TagRejectClaim
	TagExpire
	TagCancel
)

func (t InstructionTag) String() string {
	switch t {
	case TagInitialize:
		return "Initialize"
	case TagFileClaim:
		return "FileClaim"
	case TagApproveClaim:
		return "ApproveClaim"
	case TagRejectClaim:
		return "RejectClaim"
	case TagExpire:
		return "Expire"
	case TagCancel:
		return "Cancel"
	default:
		return "Unknown"
	}
}

// InitializeArgs populates a freshly allocated contract account.
type InitializeArgs struct {
	PremiumAmount  uint64
	CoverageLimit  uint64
	EffectiveFrom  int64
	EffectiveUntil int64
	Beneficiary    solana.PublicKey
	Adjudicator    solana.PublicKey
}

// FileClaimArgs attaches the opaque claim reference.
type FileClaimArgs struct {
	ClaimReference ClaimReference
}

// ApproveClaimArgs carries the payout amount for one approval.
type ApproveClaimArgs struct {
	Amount uint64
}

// Instruction is one decoded operation. Exactly the argument struct matching
// Tag is non-nil.
type Instruction struct {
	Tag          InstructionTag
	Initialize   *InitializeArgs
	FileClaim    *FileClaimArgs
	ApproveClaim *ApproveClaimArgs
}

// UnpackInstruction decodes an instruction payload. Unknown tags and
// truncated argument blocks fail with ErrInvalidInstruction; trailing bytes
// after a complete argument block are ignored, matching the wire contract.
func UnpackInstruction(input []byte) (*Instruction, error) {
	if len(input) == 0 {
		return nil, ErrInvalidInstruction
	}
	tag, rest := InstructionTag(input[0]), input[1:]

	inst := &Instruction{Tag: tag}
	switch tag {
	case TagInitialize:
		var args InitializeArgs
		if err := bin.NewBorshDecoder(rest).Decode(&args); err != nil {
			return nil, ErrInvalidInstruction
		}
		inst.Initialize = &args
	case TagFileClaim:
		var args FileClaimArgs
		if err := bin.NewBorshDecoder(rest).Decode(&args); err != nil {
			return nil, ErrInvalidInstruction
		}
		inst.FileClaim = &args
	case TagApproveClaim:
		var args ApproveClaimArgs
		if err := bin.NewBorshDecoder(rest).Decode(&args); err != nil {
			return nil, ErrInvalidInstruction
		}
		inst.ApproveClaim = &args
	case TagRejectClaim, TagExpire, TagCancel:
		// No arguments.
	default:
		return nil, ErrInvalidInstruction
	}
	return inst, nil
}

// Pack serializes the instruction payload: tag byte followed by the
// borsh-encoded arguments.
func (i *Instruction) Pack() ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.WriteByte(byte(i.Tag))

	var args any
	switch i.Tag {
	case TagInitialize:
		args = i.Initialize
	case TagFileClaim:
		args = i.FileClaim
	case TagApproveClaim:
		args = i.ApproveClaim
	case TagRejectClaim, TagExpire, TagCancel:
		return buf.Bytes(), nil
	default:
		return nil, ErrInvalidInstruction
	}
	if args == nil {
		return nil, ErrInvalidInstruction
	}
	if err := bin.NewBorshEncoder(buf).Encode(args); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Client-side builders. Each returns an instruction with the exact account
// order the processor expects; positions are the wire contract.

// NewInitializeInstruction builds Initialize:
// [contract (writable), owner (signer), rent sysvar].
func NewInitializeInstruction(contractAccount, owner solana.PublicKey, args InitializeArgs) (*solana.GenericInstruction, error) {
	data, err := (&Instruction{Tag: TagInitialize, Initialize: &args}).Pack()
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(ProgramID, solana.AccountMetaSlice{
		solana.NewAccountMeta(contractAccount, true, false),
		solana.NewAccountMeta(owner, false, true),
		solana.NewAccountMeta(solana.SysVarRentPubkey, false, false),
	}, data), nil
}

// NewFileClaimInstruction builds FileClaim:
// [contract (writable), beneficiary (signer)].
func NewFileClaimInstruction(contractAccount, beneficiary solana.PublicKey, ref ClaimReference) (*solana.GenericInstruction, error) {
	data, err := (&Instruction{Tag: TagFileClaim, FileClaim: &FileClaimArgs{ClaimReference: ref}}).Pack()
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(ProgramID, solana.AccountMetaSlice{
		solana.NewAccountMeta(contractAccount, true, false),
		solana.NewAccountMeta(beneficiary, false, true),
	}, data), nil
}

// NewApproveClaimInstruction builds ApproveClaim:
// [contract (writable), adjudicator (signer)].
func NewApproveClaimInstruction(contractAccount, adjudicator solana.PublicKey, amount uint64) (*solana.GenericInstruction, error) {
	data, err := (&Instruction{Tag: TagApproveClaim, ApproveClaim: &ApproveClaimArgs{Amount: amount}}).Pack()
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(ProgramID, solana.AccountMetaSlice{
		solana.NewAccountMeta(contractAccount, true, false),
		solana.NewAccountMeta(adjudicator, false, true),
	}, data), nil
}

// NewRejectClaimInstruction builds RejectClaim:
// [contract (writable), adjudicator (signer)].
func NewRejectClaimInstruction(contractAccount, adjudicator solana.PublicKey) (*solana.GenericInstruction, error) {
	data, err := (&Instruction{Tag: TagRejectClaim}).Pack()
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(ProgramID, solana.AccountMetaSlice{
		solana.NewAccountMeta(contractAccount, true, false),
		solana.NewAccountMeta(adjudicator, false, true),
	}, data), nil
}

// NewExpireInstruction builds Expire: [contract (writable)]. No signer;
// expiry is gated purely by ledger time.
func NewExpireInstruction(contractAccount solana.PublicKey) (*solana.GenericInstruction, error) {
	data, err := (&Instruction{Tag: TagExpire}).Pack()
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(ProgramID, solana.AccountMetaSlice{
		solana.NewAccountMeta(contractAccount, true, false),
	}, data), nil
}

// NewCancelInstruction builds Cancel:
// [contract (writable), owner (signer)].
func NewCancelInstruction(contractAccount, owner solana.PublicKey) (*solana.GenericInstruction, error) {
	data, err := (&Instruction{Tag: TagCancel}).Pack()
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(ProgramID, solana.AccountMetaSlice{
		solana.NewAccountMeta(contractAccount, true, false),
		solana.NewAccountMeta(owner, false, true),
	}, data), nil
}
