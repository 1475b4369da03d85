package stats

import (
	"encoding/json"

	"github.com/avendel/pokerledger/internal/model"
)

// ChipValue is the fixed conversion rate: one unit of currency per chip
const ChipValue = 1.0

// ChipAmountState tags the outcome of parsing a loosely-typed numeric field
type ChipAmountState int

const (
	// ChipAmountAbsent means the field was missing or null
	ChipAmountAbsent ChipAmountState = iota
	// ChipAmountInvalid means the field was present but not numeric
	ChipAmountInvalid
	// ChipAmountValue means the field held a usable number
	ChipAmountValue
)

// ChipAmount is the parsed form of an optional numeric snapshot field.
// Historical documents were written without a schema, so every numeric
// field goes through ParseChipAmount before use.
type ChipAmount struct {
	State ChipAmountState
	Value float64
}

// OrZero returns the parsed value, defaulting absent/invalid fields to 0
func (a ChipAmount) OrZero() float64 {
	if a.State == ChipAmountValue {
		return a.Value
	}
	return 0
}

// ParseChipAmount classifies a raw snapshot field as absent, invalid, or a
// numeric value. JSON decoding yields float64 for numbers; the integer cases
// cover documents constructed in-process.
func ParseChipAmount(v any) ChipAmount {
	switch n := v.(type) {
	case nil:
		return ChipAmount{State: ChipAmountAbsent}
	case float64:
		return ChipAmount{State: ChipAmountValue, Value: n}
	case float32:
		return ChipAmount{State: ChipAmountValue, Value: float64(n)}
	case int:
		return ChipAmount{State: ChipAmountValue, Value: float64(n)}
	case int64:
		return ChipAmount{State: ChipAmountValue, Value: float64(n)}
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return ChipAmount{State: ChipAmountInvalid}
		}
		return ChipAmount{State: ChipAmountValue, Value: f}
	default:
		return ChipAmount{State: ChipAmountInvalid}
	}
}

// ResolveNetValue computes a player's net result for one snapshot. First
// applicable rule wins:
//  1. an explicit precomputed net-from-final-chips field,
//  2. final chips times chip value minus total invested,
//  3. live chips times chip value minus total invested.
func ResolveNetValue(p model.SnapshotPlayer) float64 {
	if net := ParseChipAmount(p.NetValueFromFinalChips); net.State == ChipAmountValue {
		return net.Value
	}

	invested := ParseChipAmount(p.TotalInvested).OrZero()

	if final := ParseChipAmount(p.FinalChips); final.State == ChipAmountValue {
		return final.Value*ChipValue - invested
	}

	return ParseChipAmount(p.Chips).OrZero()*ChipValue - invested
}
