package csvsource

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/c9s/seriesta/pkg/datatype/floats"
)

// DefaultDateColumn is the date column of Yahoo Finance history downloads.
const DefaultDateColumn = "Date"

var (
	// ErrMissingDateColumn is returned when the header has no date column.
	ErrMissingDateColumn = errors.New("missing date column")

	// ErrInvalidTimeFormat is returned when a date cell matches none of the supported layouts.
	ErrInvalidTimeFormat = errors.New("cannot parse time string")

	// ErrInvalidPriceFormat is returned when a value cell is not a decimal number.
	ErrInvalidPriceFormat = errors.New("values must be in valid decimal format")

	// ErrNotEnoughColumns is returned when a record is shorter than the header.
	ErrNotEnoughColumns = errors.New("not enough columns")
)

var timeLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.RFC3339,
	"01/02/2006",
}

// ParseTime accepts the date layouts of common price downloads as well as unix
// timestamps in seconds or milliseconds.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		// 10^11 seconds is in the year 5138, so larger values are milliseconds
		if n > 1e11 {
			return time.UnixMilli(n).UTC(), nil
		}
		return time.Unix(n, 0).UTC(), nil
	}

	return time.Time{}, errors.Wrapf(ErrInvalidTimeFormat, "%q", s)
}

// ParseValue parses a numeric cell. Empty cells and the "null" / "NaN"
// placeholders are undefined.
func ParseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "null", "nan", "-":
		return floats.Undefined, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) {
		return floats.Undefined, errors.Wrapf(ErrInvalidPriceFormat, "%q", s)
	}
	return v, nil
}

// FormatValue is the inverse of ParseValue; undefined values are written as
// empty cells.
func FormatValue(v float64) string {
	if floats.IsUndefined(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
