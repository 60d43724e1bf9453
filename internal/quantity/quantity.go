// Package quantity parses textual recipe quantities into numeric amounts.
//
// The catalog feed states quantities as plain decimals ("3", "0.5"), as
// single vulgar-fraction glyphs ("½"), or as mixed numbers combining both
// ("1 ½"). Anything outside those three shapes means the feed is malformed.
package quantity

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// fractionValues maps every vulgar-fraction glyph the feed may emit to its
// exact rational value. The table is fixed; entries are never added at runtime.
var fractionValues = map[rune]float64{
	'¼': 0.25,
	'½': 0.5,
	'¾': 0.75,
	'⅐': 1.0 / 7.0,
	'⅑': 1.0 / 9.0,
	'⅒': 0.1,
	'⅓': 1.0 / 3.0,
	'⅔': 2.0 / 3.0,
	'⅕': 0.2,
	'⅖': 0.4,
	'⅗': 0.6,
	'⅘': 0.8,
	'⅙': 1.0 / 6.0,
	'⅚': 5.0 / 6.0,
	'⅛': 0.125,
	'⅜': 0.375,
	'⅝': 0.625,
	'⅞': 0.875,
	'⅟': 1.0,
	'↉': 0.0,
}

// ParseError reports a quantity token that does not match any supported shape.
// Token carries the offending text verbatim so the malformed feed entry can be
// located.
type ParseError struct {
	Token string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unparseable quantity %q", e.Token)
}

// Parse converts a textual quantity into its numeric amount.
//
// A token that parses as an ordinary decimal is returned as-is. A single
// fraction glyph maps through the fixed table. A token of exactly two
// whitespace-separated fields is treated as a mixed number: decimal whole part
// plus a fraction glyph. Every other shape fails with a *ParseError.
func Parse(text string) (float64, error) {
	if isASCII(text) {
		if value, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err == nil {
			return value, nil
		}
	}

	fields := strings.Fields(text)
	switch len(fields) {
	case 1:
		value, ok := fractionValue(fields[0])
		if !ok {
			return 0, &ParseError{Token: text}
		}
		return value, nil
	case 2:
		whole, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return 0, &ParseError{Token: text}
		}
		fraction, ok := fractionValue(fields[1])
		if !ok {
			return 0, &ParseError{Token: text}
		}
		return whole + fraction, nil
	default:
		return 0, &ParseError{Token: text}
	}
}

// fractionValue resolves a token that must be exactly one glyph from the table.
func fractionValue(token string) (float64, bool) {
	r, size := utf8.DecodeRuneInString(token)
	if size != len(token) {
		return 0, false
	}
	value, ok := fractionValues[r]
	return value, ok
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
