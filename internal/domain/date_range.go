package domain

import (
	"errors"
	"strings"
)

var ErrInvalidDateRange = errors.New("invalid date range")

// DateRange é o conjunto fechado de janelas aceitas na análise
type DateRange string

const (
	DateRangeToday      DateRange = "today"
	DateRangeYesterday  DateRange = "yesterday"
	DateRangeLast7Days  DateRange = "last_7d"
	DateRangeLast30Days DateRange = "last_30d"
)

var dateRangeAliases = map[string]DateRange{
	"today":        DateRangeToday,
	"yesterday":    DateRangeYesterday,
	"last_7d":      DateRangeLast7Days,
	"last_7_days":  DateRangeLast7Days,
	"last_30d":     DateRangeLast30Days,
	"last_30_days": DateRangeLast30Days,
}

// ParseDateRange aceita os nomes canônicos e os aliases usados pelo dashboard.
// String vazia resulta em last_7d.
func ParseDateRange(value string) (DateRange, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return DateRangeLast7Days, nil
	}

	dr, ok := dateRangeAliases[value]
	if !ok {
		return "", ErrInvalidDateRange
	}

	return dr, nil
}
