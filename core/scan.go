/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package core

import (
	"bufio"
	"bytes"
	"io"
	"strconv"

	"github.com/vellumpdf/pdftext/common"
)

// IsWhiteSpace checks if byte represents a white space character.
func IsWhiteSpace(ch byte) bool {
	// Table 1 white-space characters (7.2.2 Character Set)
	return ch == 0x00 || ch == 0x09 || ch == 0x0A || ch == 0x0C || ch == 0x0D || ch == 0x20
}

// IsFloatDigit checks if a character can be part of a float number string.
func IsFloatDigit(c byte) bool {
	return ('0' <= c && c <= '9') || c == '.' || c == '-' || c == '+'
}

// IsDecimalDigit checks if the character is part of a decimal number string.
func IsDecimalDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// IsOctalDigit checks if a character can be part of an octal digit string.
func IsOctalDigit(c byte) bool {
	return '0' <= c && c <= '7'
}

// IsPrintable checks if a character is printable.
// Regular characters that are outside the range EXCLAMATION MARK(21h)
// (!) to TILDE (7Eh) (~) should be written using hexadecimal notation.
func IsPrintable(c byte) bool {
	return 0x21 <= c && c <= 0x7E
}

// IsDelimiter checks if a character represents a delimiter.
func IsDelimiter(c byte) bool {
	return c == '(' || c == ')' ||
		c == '<' || c == '>' ||
		c == '[' || c == ']' ||
		c == '{' || c == '}' ||
		c == '/' || c == '%'
}

// ParseNumber reads a numeric token (integer or real, per 7.3.3 Numeric
// Objects) from buf and returns a PdfObjectInteger or PdfObjectFloat.
// Malformed numbers are logged and parsed as 0 rather than failing the
// whole content stream, since a single bad operand should not abort
// extraction of the rest of the page.
func ParseNumber(buf *bufio.Reader) (PdfObject, error) {
	isFloat := false
	allowSigns := true
	var r bytes.Buffer
loop:
	for {
		bb, err := buf.Peek(1)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch {
		case allowSigns && (bb[0] == '-' || bb[0] == '+'):
			b, _ := buf.ReadByte()
			r.WriteByte(b)
			allowSigns = false
		case IsDecimalDigit(bb[0]):
			b, _ := buf.ReadByte()
			r.WriteByte(b)
		case bb[0] == '.':
			b, _ := buf.ReadByte()
			r.WriteByte(b)
			isFloat = true
		case bb[0] == 'e' || bb[0] == 'E':
			b, _ := buf.ReadByte()
			r.WriteByte(b)
			isFloat = true
			allowSigns = true
		default:
			break loop
		}
	}
	if isFloat {
		fVal, err := strconv.ParseFloat(r.String(), 64)
		if err != nil {
			common.Log.Debug("Error parsing number %q: %v. Using 0.0", r.String(), err)
			fVal = 0
		}
		return MakeFloat(fVal), nil
	}
	intVal, err := strconv.ParseInt(r.String(), 10, 64)
	if err != nil {
		common.Log.Debug("Error parsing number %q: %v. Using 0", r.String(), err)
		intVal = 0
	}
	return MakeInteger(intVal), nil
}
