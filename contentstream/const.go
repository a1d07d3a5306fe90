/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package contentstream

import "errors"

var (
	// ErrInvalidOperand specifies that invalid operands have been encountered
	// while parsing the content stream.
	ErrInvalidOperand = errors.New("invalid operand")

	// ErrInvalidStructure means a well-formed parse produced a structurally
	// wrong value: wrong type, wrong arity, bad range. Fatal to the page.
	ErrInvalidStructure = errors.New("invalid structure")

	// ErrMissingField means a required dictionary key was absent. Fatal to
	// the page.
	ErrMissingField = errors.New("missing field")

	// ErrFontError wraps a font construction failure surfaced while
	// resolving a Tf operand.
	ErrFontError = errors.New("font error")
)
