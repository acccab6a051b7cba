package contract

import (
	"github.com/gagliardetto/solana-go"

	"github.com/Veris-Labs/underwrite/pkg/runtime"
)

// Invariant checks: one pure predicate per instruction kind. Each takes the
// current decoded record, the instruction's typed arguments, the signer set
// actually present on the transaction, and (where relevant) the ledger
// clock, and returns nil or the specific ContractError. Handlers call these
// even though the dispatcher already routed correctly.

// CheckInitialize validates populating a freshly allocated record. The
// proposed owner is the identity at the owner-authority account position;
// it must have signed. Re-initializing an already-populated record always
// fails so stored authorities can never be hijacked.
func CheckInitialize(current *InsuranceContractData, args *InitializeArgs, owner solana.PublicKey, signers runtime.SignerSet) error {
	if current.Status != StatusUninitialized {
		return ErrIllegalTransition
	}
	if !signers.Has(owner) {
		return ErrMissingSignature
	}
	if args.EffectiveFrom >= args.EffectiveUntil {
		return ErrInvalidTimeWindow
	}
	if args.Adjudicator.Equals(owner) || args.Adjudicator.Equals(args.Beneficiary) {
		return ErrAuthorityConflict
	}
	return nil
}

// CheckFileClaim validates filing a claim: only the stored beneficiary, only
// from Active, and only while the ledger clock is inside the effective
// window.
func CheckFileClaim(current *InsuranceContractData, signers runtime.SignerSet, clock runtime.Clock) error {
	if current.Status != StatusActive {
		return ErrIllegalTransition
	}
	if !signers.Has(current.BeneficiaryAuthority) {
		return ErrMissingSignature
	}
	if clock.UnixTimestamp < current.EffectiveFrom {
		return ErrNotYetEffective
	}
	if clock.UnixTimestamp >= current.EffectiveUntil {
		return ErrAlreadyExpired
	}
	return nil
}

// CheckApproveClaim validates one payout approval by the stored
// adjudicator. Partial payouts are allowed: approval is legal from
// ClaimFiled, and again from ClaimApproved while the coverage limit is not
// exhausted. The amount must be positive and must not push paid_out_amount
// past coverage_limit.
func CheckApproveClaim(current *InsuranceContractData, args *ApproveClaimArgs, signers runtime.SignerSet) error {
	switch current.Status {
	case StatusClaimFiled:
	case StatusClaimApproved:
		if current.PaidOutAmount >= current.CoverageLimit {
			return ErrIllegalTransition
		}
	default:
		return ErrIllegalTransition
	}
	if !signers.Has(current.AdjudicatorAuthority) {
		return ErrMissingSignature
	}
	if args.Amount == 0 {
		return ErrAmountOverflow
	}
	// paid_out <= coverage holds on entry, so the subtraction cannot wrap.
	if args.Amount > current.CoverageLimit-current.PaidOutAmount {
		return ErrAmountOverflow
	}
	return nil
}

// CheckRejectClaim validates rejecting a filed claim. A partially paid
// claim (ClaimApproved) cannot be retro-rejected.
func CheckRejectClaim(current *InsuranceContractData, signers runtime.SignerSet) error {
	if current.Status != StatusClaimFiled {
		return ErrIllegalTransition
	}
	if !signers.Has(current.AdjudicatorAuthority) {
		return ErrMissingSignature
	}
	return nil
}

// CheckExpire validates expiry: permissionless, Active only, and gated
// purely on the ledger clock reaching effective_until.
func CheckExpire(current *InsuranceContractData, clock runtime.Clock) error {
	if current.Status != StatusActive {
		return ErrIllegalTransition
	}
	if clock.UnixTimestamp < current.EffectiveUntil {
		return ErrNotYetEffective
	}
	return nil
}

// CheckCancel validates cancellation by the stored owner, Active only.
func CheckCancel(current *InsuranceContractData, signers runtime.SignerSet) error {
	if current.Status != StatusActive {
		return ErrIllegalTransition
	}
	if !signers.Has(current.OwnerAuthority) {
		return ErrMissingSignature
	}
	return nil
}
