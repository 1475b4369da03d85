package stats

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avendel/pokerledger/internal/model"
)

func TestParseChipAmount(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want ChipAmount
	}{
		{"nil is absent", nil, ChipAmount{State: ChipAmountAbsent}},
		{"float64", 12.5, ChipAmount{State: ChipAmountValue, Value: 12.5}},
		{"int", 500, ChipAmount{State: ChipAmountValue, Value: 500}},
		{"int64", int64(42), ChipAmount{State: ChipAmountValue, Value: 42}},
		{"json number", json.Number("7"), ChipAmount{State: ChipAmountValue, Value: 7}},
		{"string is invalid", "500", ChipAmount{State: ChipAmountInvalid}},
		{"bool is invalid", true, ChipAmount{State: ChipAmountInvalid}},
		{"map is invalid", map[string]any{}, ChipAmount{State: ChipAmountInvalid}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseChipAmount(tt.in))
		})
	}
}

func TestChipAmountOrZero(t *testing.T) {
	assert.Equal(t, 5.0, ChipAmount{State: ChipAmountValue, Value: 5}.OrZero())
	assert.Zero(t, ChipAmount{State: ChipAmountAbsent}.OrZero())
	assert.Zero(t, ChipAmount{State: ChipAmountInvalid, Value: 9}.OrZero())
}

func TestResolveNetValue(t *testing.T) {
	tests := []struct {
		name   string
		player model.SnapshotPlayer
		want   float64
	}{
		{
			name: "explicit net value wins over everything",
			player: model.SnapshotPlayer{
				NetValueFromFinalChips: 75.0,
				FinalChips:             120.0,
				Chips:                  9999.0,
				TotalInvested:          100.0,
			},
			want: 75,
		},
		{
			name: "final chips minus invested",
			player: model.SnapshotPlayer{
				FinalChips:    120.0,
				Chips:         9999.0,
				TotalInvested: 100.0,
			},
			want: 20,
		},
		{
			name: "live chips minus invested as last resort",
			player: model.SnapshotPlayer{
				Chips:         450.0,
				TotalInvested: 500.0,
			},
			want: -50,
		},
		{
			name: "invalid final chips falls through to live chips",
			player: model.SnapshotPlayer{
				FinalChips:    "not a number",
				Chips:         600.0,
				TotalInvested: 500.0,
			},
			want: 100,
		},
		{
			name: "missing invested treated as zero",
			player: model.SnapshotPlayer{
				FinalChips: 300.0,
			},
			want: 300,
		},
		{
			name:   "everything missing yields zero",
			player: model.SnapshotPlayer{},
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveNetValue(tt.player))
		})
	}
}
