// © 2026 Condio Labs
//
// SPDX-License-Identifier: Apache-2.0

package exc

const (
	CodeUnknownFatal             = "D0000"
	CodeRequiredParameterMissing = "D0001"
	CodeMissingValue             = "D0002"
	CodeEmptyValue               = "D0003"
	CodeInvalidNumericLiteral    = "D0004"
	CodeTrailingGarbage          = "D0005"
	CodeInvalidBooleanLiteral    = "D0006"
	CodeInvalidConfiguration     = "D0007"
	CodeInternal                 = "D0008"
	CodeUnknownKeyword           = "D0009"
)

// UserInputCodes are the codes raised by malformed input lines, as opposed to
// grammar-authoring bugs. A reporter built over this set keeps validating the
// remaining records of a file after one record fails.
var UserInputCodes = []string{
	CodeRequiredParameterMissing,
	CodeMissingValue,
	CodeEmptyValue,
	CodeInvalidNumericLiteral,
	CodeTrailingGarbage,
	CodeInvalidBooleanLiteral,
	CodeUnknownKeyword,
}

var defaultNonFatal = map[string]bool{}
