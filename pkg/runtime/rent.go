package runtime

import (
	"encoding/binary"
	"errors"
	"math"

	"github.com/gagliardetto/solana-go"
)

// Rent models the host's storage-pricing sysvar. An account is exempt from
// rent collection when its balance covers ExemptionThreshold years of rent
// for its allocated size; the program requires exemption at creation so the
// record can never be reaped out from under the contract.
type Rent struct {
	LamportsPerByteYear uint64
	ExemptionThreshold  float64
}

// Mainnet rent parameters.
const (
	defaultLamportsPerByteYear = 3480
	defaultExemptionThreshold  = 2.0

	// Per-account metadata overhead charged in addition to the data bytes.
	accountStorageOverhead = 128

	// Serialized sysvar layout: u64 lamports_per_byte_year,
	// f64 exemption_threshold, u8 burn_percent.
	rentSysvarLen = 17
)

// ErrNotRentSysvar is returned when the account at the rent sysvar position
// is not the rent sysvar.
var ErrNotRentSysvar = errors.New("runtime: account is not the rent sysvar")

// DefaultRent returns the mainnet rent parameters.
func DefaultRent() Rent {
	return Rent{
		LamportsPerByteYear: defaultLamportsPerByteYear,
		ExemptionThreshold:  defaultExemptionThreshold,
	}
}

// RentFromAccount reads the rent sysvar from its account. An empty data
// buffer (the Bank's synthetic sysvars) yields the default parameters;
// anything else must be the full serialized sysvar.
func RentFromAccount(acc *Account) (Rent, error) {
	if acc == nil || !acc.Key.Equals(solana.SysVarRentPubkey) {
		return Rent{}, ErrNotRentSysvar
	}
	if len(acc.Data) == 0 {
		return DefaultRent(), nil
	}
	if len(acc.Data) < rentSysvarLen {
		return Rent{}, ErrNotRentSysvar
	}
	return Rent{
		LamportsPerByteYear: binary.LittleEndian.Uint64(acc.Data[0:8]),
		ExemptionThreshold:  math.Float64frombits(binary.LittleEndian.Uint64(acc.Data[8:16])),
	}, nil
}

// MinimumBalance returns the smallest balance that makes an account of the
// given data size rent-exempt.
func (r Rent) MinimumBalance(dataLen int) uint64 {
	bytes := uint64(dataLen) + accountStorageOverhead
	return uint64(float64(bytes*r.LamportsPerByteYear) * r.ExemptionThreshold)
}

// IsExempt reports whether the balance covers rent exemption for dataLen
// bytes.
func (r Rent) IsExempt(lamports uint64, dataLen int) bool {
	return lamports >= r.MinimumBalance(dataLen)
}
