package contract

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
)

func TestInstructionPackUnpack(t *testing.T) {
	beneficiary := solana.NewWallet().PublicKey()
	adjudicator := solana.NewWallet().PublicKey()

	cases := []*Instruction{
		{Tag: TagInitialize, Initialize: &InitializeArgs{
			PremiumAmount:  100,
			CoverageLimit:  1000,
			EffectiveFrom:  10,
			EffectiveUntil: 1010,
			Beneficiary:    beneficiary,
			Adjudicator:    adjudicator,
		}},
		{Tag: TagFileClaim, FileClaim: &FileClaimArgs{ClaimReference: ClaimReference{1, 2, 3}}},
		{Tag: TagApproveClaim, ApproveClaim: &ApproveClaimArgs{Amount: 750}},
		{Tag: TagRejectClaim},
		{Tag: TagExpire},
		{Tag: TagCancel},
	}
	for _, inst := range cases {
		t.Run(inst.Tag.String(), func(t *testing.T) {
			raw, err := inst.Pack()
			require.NoError(t, err)
			require.Equal(t, byte(inst.Tag), raw[0])

			decoded, err := UnpackInstruction(raw)
			require.NoError(t, err)
			require.Equal(t, inst, decoded)
		})
	}
}

func TestUnpackInstructionRejectsUnknownTag(t *testing.T) {
	for _, tag := range []byte{6, 7, 255} {
		_, err := UnpackInstruction([]byte{tag})
		require.ErrorIs(t, err, ErrInvalidInstruction, "tag %d", tag)
	}
}

func TestUnpackInstructionRejectsEmpty(t *testing.T) {
	_, err := UnpackInstruction(nil)
	require.ErrorIs(t, err, ErrInvalidInstruction)
}

func TestUnpackInstructionRejectsTruncatedArgs(t *testing.T) {
	full, err := (&Instruction{Tag: TagApproveClaim, ApproveClaim: &ApproveClaimArgs{Amount: 1}}).Pack()
	require.NoError(t, err)

	for cut := 1; cut < len(full); cut++ {
		_, err := UnpackInstruction(full[:cut])
		require.ErrorIs(t, err, ErrInvalidInstruction, "cut at %d", cut)
	}
}

// No-arg instructions tolerate trailing bytes; the processor only reads the
// tag.
func TestUnpackInstructionIgnoresTrailingBytes(t *testing.T) {
	decoded, err := UnpackInstruction([]byte{byte(TagExpire), 0xDE, 0xAD})
	require.NoError(t, err)
	require.Equal(t, TagExpire, decoded.Tag)
}

func TestBuilderAccountOrder(t *testing.T) {
	contractKey := solana.NewWallet().PublicKey()
	authority := solana.NewWallet().PublicKey()

	t.Run("Initialize", func(t *testing.T) {
		inst, err := NewInitializeInstruction(contractKey, authority, InitializeArgs{
			CoverageLimit:  1,
			EffectiveFrom:  0,
			EffectiveUntil: 1,
		})
		require.NoError(t, err)
		require.True(t, inst.ProgramID().Equals(ProgramID))

		metas := inst.Accounts()
		require.Len(t, metas, 3)
		require.Equal(t, contractKey, metas[0].PublicKey)
		require.True(t, metas[0].IsWritable)
		require.False(t, metas[0].IsSigner)
		require.Equal(t, authority, metas[1].PublicKey)
		require.True(t, metas[1].IsSigner)
		require.Equal(t, solana.SysVarRentPubkey, metas[2].PublicKey)
	})

	t.Run("FileClaim", func(t *testing.T) {
		inst, err := NewFileClaimInstruction(contractKey, authority, ClaimReference{9})
		require.NoError(t, err)
		metas := inst.Accounts()
		require.Len(t, metas, 2)
		require.Equal(t, contractKey, metas[0].PublicKey)
		require.True(t, metas[0].IsWritable)
		require.Equal(t, authority, metas[1].PublicKey)
		require.True(t, metas[1].IsSigner)
	})

	t.Run("Expire has no signer", func(t *testing.T) {
		inst, err := NewExpireInstruction(contractKey)
		require.NoError(t, err)
		metas := inst.Accounts()
		require.Len(t, metas, 1)
		require.Equal(t, contractKey, metas[0].PublicKey)
		require.True(t, metas[0].IsWritable)
		require.False(t, metas[0].IsSigner)
	})
}

func TestPackRejectsMissingArgs(t *testing.T) {
	_, err := (&Instruction{Tag: TagInitialize}).Pack()
	require.ErrorIs(t, err, ErrInvalidInstruction)
}
