// © 2026 Condio Labs
//
// SPDX-License-Identifier: Apache-2.0

package linefield

import (
	"strconv"

	"github.com/condio/datline/internal/exc"
)

// Numeric conversion follows prefix semantics: the longest leading substring
// of the token that forms a valid number is converted, and any leftover
// characters are a hard error reported with the leftover text. A field that
// is optional and reads an empty token must not call these at all.

func parseIntToken(token string, field string, section string, arity int) (int, error) {
	loc := exc.Location{Section: section, Field: field, Token: token}
	if token == "" {
		return 0, exc.Newf(loc, exc.CodeMissingValue,
			"no value of variable %q in %q specified; the variable expects %d input value(s)",
			field, section, arity)
	}
	n := intPrefixLen(token)
	if n == 0 {
		return 0, exc.Newf(loc, exc.CodeInvalidNumericLiteral,
			"failed to read the value %q of variable %q in %q", token, field, section)
	}
	value, err := strconv.Atoi(token[:n])
	if err != nil {
		return 0, exc.Wrap(loc, exc.CodeInvalidNumericLiteral, err)
	}
	if n != len(token) {
		return 0, exc.Newf(loc, exc.CodeTrailingGarbage,
			"failed to read value %q while reading variable %q in %q; could only read '%d', "+
				"the variable has to be an integer", token[n:], field, section, value)
	}
	return value, nil
}

func parseRealToken(token string, field string, section string, arity int) (float64, error) {
	loc := exc.Location{Section: section, Field: field, Token: token}
	if token == "" {
		return 0, exc.Newf(loc, exc.CodeMissingValue,
			"no value of variable %q in %q specified; the variable expects %d input value(s)",
			field, section, arity)
	}
	n := realPrefixLen(token)
	if n == 0 {
		return 0, exc.Newf(loc, exc.CodeInvalidNumericLiteral,
			"failed to read the value %q of variable %q in %q", token, field, section)
	}
	value, err := strconv.ParseFloat(token[:n], 64)
	if err != nil {
		return 0, exc.Wrap(loc, exc.CodeInvalidNumericLiteral, err)
	}
	if n != len(token) {
		return 0, exc.Newf(loc, exc.CodeTrailingGarbage,
			"failed to read value %q while reading variable %q in %q; could only read '%g', "+
				"the variable has to be a floating point", token[n:], field, section, value)
	}
	return value, nil
}

// intPrefixLen returns the length of the longest prefix of s that is a valid
// decimal integer literal, or 0 when there is none.
func intPrefixLen(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == start {
		return 0
	}
	return i
}

// realPrefixLen returns the length of the longest prefix of s that is a valid
// floating point literal (sign, mantissa, optional fraction and exponent), or
// 0 when there is none.
func realPrefixLen(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expDigits := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			expDigits++
		}
		// A bare "e" or "e-" is leftover text, not part of the number.
		if expDigits > 0 {
			i = j
		}
	}
	return i
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
