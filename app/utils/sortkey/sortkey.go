// Package sortkey normalizes raw attribute strings into comparable keys.
// Attribute values arrive untyped ("1,500", "120/240", "50-60", "Diesel");
// Parse classifies them and Compare defines one total order across all of
// them so mixed columns still sort sensibly.
package sortkey

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Key is a closed sum: Empty, Num, Pair, Range or Str. Nothing outside
// this package can add a variant, so Compare can match exhaustively.
type Key interface {
	isKey()
}

// Empty is a missing or whitespace-only value. It sorts after everything.
type Empty struct{}

// Num is a single loose number ("1500", "-3.5", "1,000").
type Num struct {
	Value decimal.Decimal
}

// Pair is two numbers joined by a slash, e.g. a "120/240" voltage rating.
// Component order is preserved.
type Pair struct {
	First  decimal.Decimal
	Second decimal.Decimal
}

// Range is two numbers joined by a hyphen, normalized so Min <= Max
// ("50-30" becomes 30..50).
type Range struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// Str is the fallback for anything non-numeric, held lower-cased.
type Str struct {
	Value string
}

func (Empty) isKey() {}
func (Num) isKey()   {}
func (Pair) isKey()  {}
func (Range) isKey() {}
func (Str) isKey()   {}

// Kind tags persisted alongside each stored value so queries never have to
// re-parse strings.
const (
	KindEmpty = "empty"
	KindNum   = "num"
	KindPair  = "pair"
	KindRange = "range"
	KindText  = "text"
)

// KindOf returns the persistent tag for k.
func KindOf(k Key) string {
	switch k.(type) {
	case Empty:
		return KindEmpty
	case Num:
		return KindNum
	case Pair:
		return KindPair
	case Range:
		return KindRange
	case Str:
		return KindText
	}
	return KindText
}

var looseNumberRe = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)

// ParseNumber parses s as one loose number: optional leading minus, digits,
// at most one decimal point, thousand-separator commas stripped. No pair or
// range fallback. This is also the facet aggregator's strict numeric parse.
func ParseNumber(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if !looseNumberRe.MatchString(s) {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// Parse classifies raw into exactly one Key variant. Classification is
// attempted in order: Empty, Pair, Range, Num, Str.
func Parse(raw string) Key {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Empty{}
	}

	if parts := strings.Split(s, "/"); len(parts) == 2 {
		if a, ok := ParseNumber(parts[0]); ok {
			if b, ok := ParseNumber(parts[1]); ok {
				return Pair{First: a, Second: b}
			}
		}
	}

	if parts := strings.Split(s, "-"); len(parts) == 2 {
		if x, ok := ParseNumber(parts[0]); ok {
			if y, ok := ParseNumber(parts[1]); ok {
				if x.GreaterThan(y) {
					x, y = y, x
				}
				return Range{Min: x, Max: y}
			}
		}
	}

	if n, ok := ParseNumber(s); ok {
		return Num{Value: n}
	}

	return Str{Value: strings.ToLower(s)}
}

// Compare is a strict total order over Keys: Empty sorts last, otherwise
// Num < Pair < Range < Str across kinds, and within a kind by value.
// Ties (result 0) are expected to be broken by the caller with a stable
// secondary key such as the product id.
func Compare(a, b Key) int {
	if _, ok := a.(Empty); ok {
		if _, ok := b.(Empty); ok {
			return 0
		}
		return 1
	}
	if _, ok := b.(Empty); ok {
		return -1
	}

	switch av := a.(type) {
	case Num:
		switch bv := b.(type) {
		case Num:
			return av.Value.Cmp(bv.Value)
		case Pair, Range, Str:
			return -1
		}
	case Pair:
		switch bv := b.(type) {
		case Num:
			return 1
		case Pair:
			if c := av.First.Cmp(bv.First); c != 0 {
				return c
			}
			return av.Second.Cmp(bv.Second)
		case Range, Str:
			return -1
		}
	case Range:
		switch bv := b.(type) {
		case Num, Pair:
			return 1
		case Range:
			if c := av.Min.Cmp(bv.Min); c != 0 {
				return c
			}
			return av.Max.Cmp(bv.Max)
		case Str:
			return -1
		}
	case Str:
		switch bv := b.(type) {
		case Num, Pair, Range:
			return 1
		case Str:
			return strings.Compare(av.Value, bv.Value)
		}
	}
	return 0
}
