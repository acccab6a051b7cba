//go:build property
// +build property

// Property-based tests for the record codec and the transition graph.
package contract

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func genRecord() gopter.Gen {
	return gopter.CombineGens(
		gen.UInt8Range(0, uint8(statusLimit)-1),
		gen.SliceOfN(32, gen.UInt8()),
		gen.SliceOfN(32, gen.UInt8()),
		gen.SliceOfN(32, gen.UInt8()),
		gen.UInt64(),
		gen.UInt64(),
		gen.Int64(),
		gen.Int64(),
		gen.Bool(),
		gen.SliceOfN(32, gen.UInt8()),
	).Map(func(vals []interface{}) *InsuranceContractData {
		d := &InsuranceContractData{
			Status:            Status(vals[0].(uint8)),
			PremiumAmount:     vals[4].(uint64),
			CoverageLimit:     vals[5].(uint64),
			EffectiveFrom:     vals[6].(int64),
			EffectiveUntil:    vals[7].(int64),
			ClaimReferenceSet: vals[8].(bool),
		}
		copy(d.OwnerAuthority[:], vals[1].([]uint8))
		copy(d.BeneficiaryAuthority[:], vals[2].([]uint8))
		copy(d.AdjudicatorAuthority[:], vals[3].([]uint8))
		copy(d.ClaimReference[:], vals[9].([]uint8))
		if d.CoverageLimit > 0 {
			d.PaidOutAmount = d.PremiumAmount % d.CoverageLimit
		}
		return d
	})
}

// Property: Unpack(Pack(r)) == r for every valid record.
func TestCodecRoundTripProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("codec round-trips every valid record", prop.ForAll(
		func(d *InsuranceContractData) bool {
			raw, err := d.Pack()
			if err != nil || len(raw) != ContractDataLen {
				return false
			}
			decoded, err := UnpackContract(raw)
			if err != nil {
				return false
			}
			return *decoded == *d
		},
		genRecord(),
	))

	properties.TestingRun(t)
}

// Property: buffers of any length other than ContractDataLen never decode.
func TestCodecWrongLengthProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("wrong-length buffers are malformed", prop.ForAll(
		func(raw []byte) bool {
			if len(raw) == ContractDataLen {
				return true
			}
			_, err := UnpackContract(raw)
			return err == ErrMalformed
		},
		gen.SliceOf(gen.UInt8()),
	))

	properties.TestingRun(t)
}

// Property: packing is deterministic — identical records, identical bytes.
func TestCodecDeterminismProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("pack is deterministic", prop.ForAll(
		func(d *InsuranceContractData) bool {
			a, err1 := d.Pack()
			b, err2 := d.Pack()
			if err1 != nil || err2 != nil {
				return false
			}
			return string(a) == string(b)
		},
		genRecord(),
	))

	properties.TestingRun(t)
}
