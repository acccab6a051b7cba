package contract

import "github.com/gagliardetto/solana-go"

// ProgramID is the deployed program's address. Records are only ever read
// from accounts owned by this id.
var ProgramID = solana.MustPublicKeyFromBase58("6CfPB1z6BiJ4JU3scFRRuuYxwW1GQWps1UWdYUHSaGYx")

// ID returns the program id.
func ID() solana.PublicKey { return ProgramID }

// CheckProgramAccount rejects dispatch under any other program id.
func CheckProgramAccount(programID solana.PublicKey) error {
	if !programID.Equals(ProgramID) {
		return ErrInvalidProgramID
	}
	return nil
}
