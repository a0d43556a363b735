// Package input turns raw console lines into menu choices and temperature
// readings. Every function consumes exactly one line and never panics; failures
// are reported as values so the caller can re-prompt.
package input

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"tempmanager/internal/modules/temperature/types"
)

var (
	ErrInvalidMenuChoice     = errors.New("invalid menu choice")
	ErrInvalidTemperature    = errors.New("invalid temperature")
	ErrTemperatureOutOfRange = errors.New("temperature out of range")
)

// SentinelKeyword is shown to the user as the way to stop data entry.
// Matching is case-insensitive and also accepts the short form "q".
const SentinelKeyword = "QUIT"

// ParseMenuChoice parses raw as a base-10 integer in [lo, hi]. The whole line
// must be the number: surrounding spaces or trailing characters are rejected.
func ParseMenuChoice(raw string, lo, hi int) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrInvalidMenuChoice
	}
	if n < lo || n > hi {
		return 0, ErrInvalidMenuChoice
	}
	return n, nil
}

type Kind int

const (
	KindValue Kind = iota
	KindSentinel
	KindInvalid
	KindOutOfRange
)

func (k Kind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindSentinel:
		return "sentinel"
	case KindInvalid:
		return "invalid"
	case KindOutOfRange:
		return "out_of_range"
	default:
		return "unknown"
	}
}

// Token is the result of parsing one line of data entry. Value is only
// meaningful when Kind is KindValue.
type Token struct {
	Kind  Kind
	Value types.Reading
}

// Err maps the failure kinds to their sentinel errors; it is nil for values
// and for the stop keyword.
func (t Token) Err() error {
	switch t.Kind {
	case KindInvalid:
		return ErrInvalidTemperature
	case KindOutOfRange:
		return ErrTemperatureOutOfRange
	default:
		return nil
	}
}

// IsSentinel reports whether raw is the stop keyword ("q" or "quit", any case).
func IsSentinel(raw string) bool {
	return strings.EqualFold(raw, "q") || strings.EqualFold(raw, "quit")
}

// ParseTemperature classifies one line of data entry.
//
// NaN and infinities are rejected even though strconv accepts their spelled-out
// forms, so only finite numbers can reach the store.
func ParseTemperature(raw string) Token {
	if IsSentinel(raw) {
		return Token{Kind: KindSentinel}
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Token{Kind: KindOutOfRange}
		}
		return Token{Kind: KindInvalid}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Token{Kind: KindInvalid}
	}
	return Token{Kind: KindValue, Value: types.Reading(v)}
}
