package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDateRange(t *testing.T) {
	tests := []struct {
		input   string
		want    DateRange
		wantErr bool
	}{
		{input: "", want: DateRangeLast7Days},
		{input: "today", want: DateRangeToday},
		{input: " Yesterday ", want: DateRangeYesterday},
		{input: "last_7d", want: DateRangeLast7Days},
		{input: "last_7_days", want: DateRangeLast7Days},
		{input: "LAST_30D", want: DateRangeLast30Days},
		{input: "last_30_days", want: DateRangeLast30Days},
		{input: "last_90d", wantErr: true},
		{input: "2026-01-01", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDateRange(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDateRange)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
