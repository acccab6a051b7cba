package contract

// ContractError is the closed set of failures the program can report. The
// numeric value is the on-wire custom error code the host surfaces to
// clients, so the ordering here is ABI: append, never reorder.
type ContractError uint32

const (
	// ErrMalformed: account buffer length or status discriminant mismatch.
	ErrMalformed ContractError = iota
	// ErrInvalidInstruction: unknown tag or truncated argument block.
	ErrInvalidInstruction
	// ErrInvalidOwner: target account is not owned by this program.
	ErrInvalidOwner
	// ErrMissingSignature: the required authority did not co-sign.
	ErrMissingSignature
	// ErrIllegalTransition: operation not valid from the current status.
	ErrIllegalTransition
	// ErrAmountOverflow: payout outside coverage bounds or u64 overflow.
	ErrAmountOverflow
	// ErrNotYetEffective: ledger time is before the relevant bound.
	ErrNotYetEffective
	// ErrAlreadyExpired: ledger time is past effective_until.
	ErrAlreadyExpired
	// ErrNotRentExempt: contract account balance does not cover rent
	// exemption for its allocated size.
	ErrNotRentExempt
	// ErrInvalidProgramID: instruction dispatched to the wrong program id.
	ErrInvalidProgramID
	// ErrAccountNotWritable: contract account meta lacks the writable flag.
	ErrAccountNotWritable
	// ErrNotEnoughAccounts: instruction supplied fewer accounts than its
	// wire contract requires.
	ErrNotEnoughAccounts
	// ErrInvalidTimeWindow: effective_from is not strictly before
	// effective_until.
	ErrInvalidTimeWindow
	// ErrAuthorityConflict: adjudicator equals owner or beneficiary.
	ErrAuthorityConflict
)

// Code returns the stable u32 error code reported to the host.
func (e ContractError) Code() uint32 { return uint32(e) }

func (e ContractError) Error() string {
	switch e {
	case ErrMalformed:
		return "malformed contract record"
	case ErrInvalidInstruction:
		return "invalid instruction"
	case ErrInvalidOwner:
		return "contract account not owned by this program"
	case ErrMissingSignature:
		return "missing required authority signature"
	case ErrIllegalTransition:
		return "operation not permitted from current contract status"
	case ErrAmountOverflow:
		return "payout amount outside coverage bounds"
	case ErrNotYetEffective:
		return "contract not yet effective at current ledger time"
	case ErrAlreadyExpired:
		return "contract already past its effective window"
	case ErrNotRentExempt:
		return "contract account is not rent exempt"
	case ErrInvalidProgramID:
		return "incorrect program id"
	case ErrAccountNotWritable:
		return "contract account is not writable"
	case ErrNotEnoughAccounts:
		return "not enough accounts supplied"
	case ErrInvalidTimeWindow:
		return "effective_from must precede effective_until"
	case ErrAuthorityConflict:
		return "adjudicator must be distinct from owner and beneficiary"
	default:
		return "unknown contract error"
	}
}
