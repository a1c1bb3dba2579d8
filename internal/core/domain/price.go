package domain

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/govalues/decimal"
)

type PriceKind int

const (
	PriceAbsent PriceKind = iota
	PriceNumber
	PriceText
	PriceUnsupported
)

// Price is the foodPrice field of a catalog entry in the form it was stored:
// a number, a numeric string, or anything else. The raw form survives a
// round trip through MarshalJSON.
type Price struct {
	kind PriceKind
	num  decimal.Decimal
	raw  string

	// set for a JSON number outside decimal range (more than 19 digits)
	malformed bool
}

func NumberPrice(d decimal.Decimal) Price {
	return Price{kind: PriceNumber, num: d, raw: d.String()}
}

func TextPrice(s string) Price {
	return Price{kind: PriceText, raw: s}
}

// ParsePrice classifies a raw JSON value. Numbers are converted to decimals
// here; strings are kept as text until Unit is asked for.
func ParsePrice(raw []byte) Price {
	v := bytes.TrimSpace(raw)
	if len(v) == 0 || bytes.Equal(v, []byte("null")) {
		return Price{kind: PriceAbsent}
	}
	if !json.Valid(v) {
		return Price{kind: PriceUnsupported, raw: string(v)}
	}

	switch c := v[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return Price{kind: PriceUnsupported, raw: string(v)}
		}
		return TextPrice(s)
	case c == '-' || (c >= '0' && c <= '9'):
		d, err := decimal.Parse(string(v))
		if err != nil {
			return Price{kind: PriceNumber, raw: string(v), malformed: true}
		}
		return Price{kind: PriceNumber, num: d, raw: string(v)}
	default:
		return Price{kind: PriceUnsupported, raw: string(v)}
	}
}

func (p Price) Kind() PriceKind {
	return p.kind
}

// Unit returns the unit price. ErrPriceMalformed is returned for a string that
// is not a decimal number or for a number too large for a decimal,
// ErrPriceMissing for an absent or non-numeric field.
func (p Price) Unit() (decimal.Decimal, error) {
	switch p.kind {
	case PriceNumber:
		if p.malformed {
			return decimal.Zero, ErrPriceMalformed
		}
		return p.num, nil
	case PriceText:
		d, err := decimal.Parse(strings.TrimSpace(p.raw))
		if err != nil {
			return decimal.Zero, ErrPriceMalformed
		}
		return d, nil
	default:
		return decimal.Zero, ErrPriceMissing
	}
}

func (p Price) MarshalJSON() ([]byte, error) {
	switch p.kind {
	case PriceAbsent:
		return []byte("null"), nil
	case PriceText:
		return json.Marshal(p.raw)
	default:
		return []byte(p.raw), nil
	}
}

func (p *Price) UnmarshalJSON(data []byte) error {
	*p = ParsePrice(data)
	return nil
}
