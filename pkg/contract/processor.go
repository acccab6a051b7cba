package contract

import (
	"github.com/gagliardetto/solana-go"

	"github.com/Veris-Labs/underwrite/pkg/runtime"
)

// Account positions per instruction (wire contract, checked exactly).
const (
	posContract  = 0
	posAuthority = 1
	posRent      = 2
)

// Processor dispatches decoded instructions to the state-machine handlers.
// It is stateless; every invocation is a pure function of its inputs.
type Processor struct{}

// Process is the program entrypoint the host calls with the raw instruction
// payload and the ordered account list. On any failure nothing is written:
// handlers re-encode into the account buffer only after every check passes.
func (Processor) Process(programID solana.PublicKey, accounts []*runtime.Account, data []byte, clock runtime.Clock) error {
	if err := CheckProgramAccount(programID); err != nil {
		return err
	}
	inst, err := UnpackInstruction(data)
	if err != nil {
		return err
	}

	switch inst.Tag {
	case TagInitialize:
		return processInitialize(accounts, inst.Initialize, clock)
	case TagFileClaim:
		return processFileClaim(accounts, inst.FileClaim, clock)
	case TagApproveClaim:
		return processApproveClaim(accounts, inst.ApproveClaim)
	case TagRejectClaim:
		return processRejectClaim(accounts)
	case TagExpire:
		return processExpire(accounts, clock)
	case TagCancel:
		return processCancel(accounts)
	default:
		return ErrInvalidInstruction
	}
}

// loadContract validates the contract account at position 0 (program
// ownership, writability) and decodes its current record. Zeroed bytes
// decode to Uninitialized.
func loadContract(accounts []*runtime.Account, want int) (*runtime.Account, *InsuranceContractData, error) {
	if len(accounts) < want {
		return nil, nil, ErrNotEnoughAccounts
	}
	acc := accounts[posContract]
	if !acc.Owner.Equals(ProgramID) {
		return nil, nil, ErrInvalidOwner
	}
	if !acc.IsWritable {
		return nil, nil, ErrAccountNotWritable
	}
	record, err := UnpackContract(acc.Data)
	if err != nil {
		return nil, nil, err
	}
	return acc, record, nil
}

// commit re-encodes the full record into the account buffer. The buffer
// size was fixed at allocation and never changes; a size mismatch means the
// account was not allocated for this program's record.
func commit(acc *runtime.Account, record *InsuranceContractData) error {
	raw, err := record.Pack()
	if err != nil {
		return err
	}
	if len(raw) != len(acc.Data) {
		return ErrMalformed
	}
	copy(acc.Data, raw)
	return nil
}

func processInitialize(accounts []*runtime.Account, args *InitializeArgs, clock runtime.Clock) error {
	_ = clock
	acc, record, err := loadContract(accounts, 3)
	if err != nil {
		return err
	}
	ownerAcc := accounts[posAuthority]

	if err := CheckInitialize(record, args, ownerAcc.Key, runtime.CollectSigners(accounts)); err != nil {
		return err
	}

	rent, err := runtime.RentFromAccount(accounts[posRent])
	if err != nil {
		return ErrNotRentExempt
	}
	if !rent.IsExempt(acc.Lamports, ContractDataLen) {
		return ErrNotRentExempt
	}

	record.Status = StatusActive
	record.OwnerAuthority = ownerAcc.Key
	record.BeneficiaryAuthority = args.Beneficiary
	record.AdjudicatorAuthority = args.Adjudicator
	record.PremiumAmount = args.PremiumAmount
	record.CoverageLimit = args.CoverageLimit
	record.PaidOutAmount = 0
	record.EffectiveFrom = args.EffectiveFrom
	record.EffectiveUntil = args.EffectiveUntil
	record.ClaimReferenceSet = false
	record.ClaimReference = ClaimReference{}
	return commit(acc, record)
}

func processFileClaim(accounts []*runtime.Account, args *FileClaimArgs, clock runtime.Clock) error {
	acc, record, err := loadContract(accounts, 2)
	if err != nil {
		return err
	}
	if err := CheckFileClaim(record, runtime.CollectSigners(accounts), clock); err != nil {
		return err
	}

	record.Status = StatusClaimFiled
	record.ClaimReferenceSet = true
	record.ClaimReference = args.ClaimReference
	return commit(acc, record)
}

// processApproveClaim applies one payout approval. Payout policy: partial
// approvals accumulate; the record turns terminal the moment paid_out_amount
// reaches coverage_limit.
func processApproveClaim(accounts []*runtime.Account, args *ApproveClaimArgs) error {
	acc, record, err := loadContract(accounts, 2)
	if err != nil {
		return err
	}
	if err := CheckApproveClaim(record, args, runtime.CollectSigners(accounts)); err != nil {
		return err
	}

	record.Status = StatusClaimApproved
	record.PaidOutAmount += args.Amount
	return commit(acc, record)
}

func processRejectClaim(accounts []*runtime.Account) error {
	acc, record, err := loadContract(accounts, 2)
	if err != nil {
		return err
	}
	if err := CheckRejectClaim(record, runtime.CollectSigners(accounts)); err != nil {
		return err
	}

	record.Status = StatusClaimRejected
	return commit(acc, record)
}

func processExpire(accounts []*runtime.Account, clock runtime.Clock) error {
	acc, record, err := loadContract(accounts, 1)
	if err != nil {
		return err
	}
	if err := CheckExpire(record, clock); err != nil {
		return err
	}

	record.Status = StatusExpired
	return commit(acc, record)
}

func processCancel(accounts []*runtime.Account) error {
	acc, record, err := loadContract(accounts, 2)
	if err != nil {
		return err
	}
	if err := CheckCancel(record, runtime.CollectSigners(accounts)); err != nil {
		return err
	}

	record.Status = StatusCancelled
	return commit(acc, record)
}
