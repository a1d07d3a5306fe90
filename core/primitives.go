/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package core

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vellumpdf/pdftext/common"
)

// ErrTypeError is returned when a PdfObject does not have the concrete type
// a caller required.
var ErrTypeError = errors.New("type check error")

// ErrNotANumber is returned by the numeric accessors when the object is
// neither a PdfObjectInteger nor a PdfObjectFloat.
var ErrNotANumber = errors.New("not a number")

// ErrRangeError is returned when a PdfObject has the right type but an
// out-of-range value (e.g. an array of the wrong length).
var ErrRangeError = errors.New("range check error")

// ErrNotSupported is returned when a feature is recognized but deliberately
// not implemented (e.g. a predefined CMap name with no bundled table).
var ErrNotSupported = errors.New("feature not supported")

// PdfObject is an interface which all primitive PDF objects satisfy. Parsing
// a PDF file's bytes into a graph of these objects - cross-reference
// resolution, stream decompression, decryption - is an external
// collaborator's job; this package only defines their shapes.
type PdfObject interface {
	// String outputs a string representation of the primitive (for debugging).
	String() string
}

// PdfObjectBool represents the primitive PDF boolean object.
type PdfObjectBool bool

// PdfObjectInteger represents the primitive PDF integer numerical object.
type PdfObjectInteger int64

// PdfObjectFloat represents the primitive PDF floating point numerical object.
type PdfObjectFloat float64

// PdfObjectString represents the primitive PDF string object. PDF strings are
// arbitrary byte sequences whose interpretation as text depends on the
// font/encoding of the context they appear in; `val` is not required to be
// valid UTF-8.
type PdfObjectString struct {
	val   string
	isHex bool
}

// PdfObjectName represents the primitive PDF name object (without the
// leading '/').
type PdfObjectName string

// PdfObjectArray represents the primitive PDF array object.
type PdfObjectArray struct {
	vec []PdfObject
}

// PdfObjectDictionary represents the primitive PDF dictionary object. Key
// order is preserved for deterministic iteration, since some dictionary
// processing (Differences arrays sit alongside font dictionaries) depends on
// the file's written order rather than any canonical order.
type PdfObjectDictionary struct {
	dict map[PdfObjectName]PdfObject
	keys []PdfObjectName
}

// PdfObjectNull represents the primitive PDF null object.
type PdfObjectNull struct{}

// PdfObjectReference represents the primitive PDF indirect reference object
// ("12 0 R"). Resolving a reference to the object it points at is an
// external parser's job; this package only carries the object/generation
// numbers.
type PdfObjectReference struct {
	ObjectNumber     int64
	GenerationNumber int64
}

// PdfObjectStream represents the primitive PDF stream object: a dictionary
// plus byte content. By the time a Stream reaches this package, Stream holds
// the already-decoded payload - filter decompression is external.
type PdfObjectStream struct {
	ObjectNumber int64
	*PdfObjectDictionary
	Stream []byte
}

// MakeDict creates and returns an empty PdfObjectDictionary.
func MakeDict() *PdfObjectDictionary {
	d := &PdfObjectDictionary{}
	d.dict = map[PdfObjectName]PdfObject{}
	d.keys = []PdfObjectName{}
	return d
}

// MakeName creates a PdfObjectName from a string.
func MakeName(s string) *PdfObjectName {
	name := PdfObjectName(s)
	return &name
}

// MakeInteger creates a PdfObjectInteger from an int64.
func MakeInteger(val int64) *PdfObjectInteger {
	num := PdfObjectInteger(val)
	return &num
}

// MakeBool creates a PdfObjectBool from a bool value.
func MakeBool(val bool) *PdfObjectBool {
	bval := PdfObjectBool(val)
	return &bval
}

// MakeArray creates an PdfObjectArray from a list of PdfObjects.
func MakeArray(objects ...PdfObject) *PdfObjectArray {
	array := &PdfObjectArray{}
	array.vec = append([]PdfObject{}, objects...)
	return array
}

// MakeArrayFromFloats creates an PdfObjectArray from a slice of float64s,
// where each array element is a PdfObjectFloat.
func MakeArrayFromFloats(vals []float64) *PdfObjectArray {
	array := MakeArray()
	for _, val := range vals {
		array.Append(MakeFloat(val))
	}
	return array
}

// MakeFloat creates an PdfObjectFloat from a float64.
func MakeFloat(val float64) *PdfObjectFloat {
	num := PdfObjectFloat(val)
	return &num
}

// MakeString creates an PdfObjectString from a string.
// NOTE: PDF does not use UTF-8 string encoding like Go so `s` will often not
// be a valid UTF-8 string.
func MakeString(s string) *PdfObjectString {
	return &PdfObjectString{val: s}
}

// MakeStringFromBytes creates an PdfObjectString from a byte array.
func MakeStringFromBytes(data []byte) *PdfObjectString {
	return MakeString(string(data))
}

// MakeHexString creates an PdfObjectString from a string intended for output
// as a hexadecimal string.
func MakeHexString(s string) *PdfObjectString {
	return &PdfObjectString{val: s, isHex: true}
}

// MakeNull creates an PdfObjectNull.
func MakeNull() *PdfObjectNull {
	return &PdfObjectNull{}
}

// MakeStream creates a PdfObjectStream with already-decoded contents.
func MakeStream(contents []byte, dict *PdfObjectDictionary) *PdfObjectStream {
	if dict == nil {
		dict = MakeDict()
	}
	return &PdfObjectStream{PdfObjectDictionary: dict, Stream: contents}
}

// String returns the state of the bool as "true" or "false".
func (b *PdfObjectBool) String() string {
	if *b {
		return "true"
	}
	return "false"
}

func (i *PdfObjectInteger) String() string {
	return fmt.Sprintf("%d", *i)
}

func (f *PdfObjectFloat) String() string {
	return strconv.FormatFloat(float64(*f), 'f', -1, 64)
}

// String returns a string representation of the *PdfObjectString.
func (str *PdfObjectString) String() string {
	return str.val
}

// Str returns the string value of the PdfObjectString. Defined in addition
// to String() to clarify that this returns the underlying string directly,
// whereas String() technically could include debug info.
func (str *PdfObjectString) Str() string {
	return str.val
}

// Bytes returns the PdfObjectString content as a []byte.
func (str *PdfObjectString) Bytes() []byte {
	return []byte(str.val)
}

// IsHex reports whether the string was written in hexadecimal syntax.
func (str *PdfObjectString) IsHex() bool {
	return str.isHex
}

// WriteString renders the string the way it would be written to a content
// stream; kept for round-tripping operator parameters, not file generation.
func (str *PdfObjectString) WriteString() string {
	var output bytes.Buffer
	if str.isHex {
		output.WriteString("<")
		output.WriteString(hex.EncodeToString(str.Bytes()))
		output.WriteString(">")
		return output.String()
	}
	escapeSequences := map[byte]string{
		'\n': "\\n", '\r': "\\r", '\t': "\\t", '\b': "\\b", '\f': "\\f",
		'(': "\\(", ')': "\\)", '\\': "\\\\",
	}
	output.WriteString("(")
	for i := 0; i < len(str.val); i++ {
		char := str.val[i]
		if esc, ok := escapeSequences[char]; ok {
			output.WriteString(esc)
		} else {
			output.WriteByte(char)
		}
	}
	output.WriteString(")")
	return output.String()
}

// String returns a string representation of `name`.
func (name *PdfObjectName) String() string {
	return string(*name)
}

// Elements returns a slice of the PdfObject elements in the array.
func (array *PdfObjectArray) Elements() []PdfObject {
	if array == nil {
		return nil
	}
	return array.vec
}

// Len returns the number of elements in the array.
func (array *PdfObjectArray) Len() int {
	if array == nil {
		return 0
	}
	return len(array.vec)
}

// Get returns the i-th element of the array or nil if out of bounds.
func (array *PdfObjectArray) Get(i int) PdfObject {
	if array == nil || i >= len(array.vec) || i < 0 {
		return nil
	}
	return array.vec[i]
}

// Append appends PdfObject(s) to the array.
func (array *PdfObjectArray) Append(objects ...PdfObject) {
	if array == nil {
		common.Log.Debug("Warn - attempt to append to a nil array")
		return
	}
	array.vec = append(array.vec, objects...)
}

// ToFloat64Array returns all elements of the array as a float64 slice. An
// error is returned if the array contains a non-numeric element.
func (array *PdfObjectArray) ToFloat64Array() ([]float64, error) {
	var vals []float64
	for _, obj := range array.Elements() {
		switch t := obj.(type) {
		case *PdfObjectInteger:
			vals = append(vals, float64(*t))
		case *PdfObjectFloat:
			vals = append(vals, float64(*t))
		default:
			return nil, ErrTypeError
		}
	}
	return vals, nil
}

// String returns a string describing `array`.
func (array *PdfObjectArray) String() string {
	var b strings.Builder
	b.WriteString("[")
	for ind, o := range array.Elements() {
		b.WriteString(o.String())
		if ind < array.Len()-1 {
			b.WriteString(", ")
		}
	}
	b.WriteString("]")
	return b.String()
}

// GetNumberAsFloat returns the contents of `obj` as a float64 if it is an
// integer or float, or an error if it isn't.
func GetNumberAsFloat(obj PdfObject) (float64, error) {
	switch t := obj.(type) {
	case *PdfObjectFloat:
		return float64(*t), nil
	case *PdfObjectInteger:
		return float64(*t), nil
	}
	return 0, ErrNotANumber
}

// GetNumbersAsFloat converts a slice of numeric PdfObjects to a float64
// slice, failing on the first non-numeric element.
func GetNumbersAsFloat(objects []PdfObject) ([]float64, error) {
	floats := make([]float64, 0, len(objects))
	for _, obj := range objects {
		val, err := GetNumberAsFloat(obj)
		if err != nil {
			return nil, err
		}
		floats = append(floats, val)
	}
	return floats, nil
}

// Merge merges in key/values from another dictionary, overwriting keys that
// already exist. Returns d to allow method chaining.
func (d *PdfObjectDictionary) Merge(another *PdfObjectDictionary) *PdfObjectDictionary {
	if another != nil {
		for _, key := range another.Keys() {
			d.Set(key, another.Get(key))
		}
	}
	return d
}

// String returns a string describing `d`.
func (d *PdfObjectDictionary) String() string {
	var b strings.Builder
	b.WriteString("Dict(")
	for _, k := range d.keys {
		b.WriteString(`"` + k.String() + `": `)
		b.WriteString(d.dict[k].String())
		b.WriteString(`, `)
	}
	b.WriteString(")")
	return b.String()
}

// Set sets the dictionary's key -> val mapping entry. Overwrites if the key
// already exists, preserving its original position.
func (d *PdfObjectDictionary) Set(key PdfObjectName, val PdfObject) {
	if _, found := d.dict[key]; !found {
		d.keys = append(d.keys, key)
	}
	d.dict[key] = val
}

// Get returns the PdfObject corresponding to key, or nil if not set.
func (d *PdfObjectDictionary) Get(key PdfObjectName) PdfObject {
	if d == nil {
		return nil
	}
	return d.dict[key]
}

// Keys returns the dictionary's keys in insertion order. Returns nil for a
// nil dictionary.
func (d *PdfObjectDictionary) Keys() []PdfObjectName {
	if d == nil {
		return nil
	}
	return d.keys
}

// String returns a string describing `ref`.
func (ref *PdfObjectReference) String() string {
	return fmt.Sprintf("Ref(%d %d)", ref.ObjectNumber, ref.GenerationNumber)
}

// String returns a string describing `stream`.
func (stream *PdfObjectStream) String() string {
	return fmt.Sprintf("Stream %d: %s", stream.ObjectNumber, stream.PdfObjectDictionary)
}

// String returns a string describing `null`.
func (null *PdfObjectNull) String() string {
	return "null"
}

// IsNullObject returns true if `obj` is a PdfObjectNull.
func IsNullObject(obj PdfObject) bool {
	_, isNull := obj.(*PdfObjectNull)
	return isNull
}

// Convenience accessors. These never chase a PdfObjectReference - reference
// resolution is an external Document's job (see model.Document), so these
// only type-assert the direct object handed to them.

// GetIntVal returns the int value represented by obj. On type mismatch found
// is false.
func GetIntVal(obj PdfObject) (val int, found bool) {
	into, found := obj.(*PdfObjectInteger)
	if found {
		return int(*into), true
	}
	return 0, false
}

// GetFloatVal returns the float64 value represented by obj. On type
// mismatch found is false.
func GetFloatVal(obj PdfObject) (val float64, found bool) {
	fo, found := obj.(*PdfObjectFloat)
	if found {
		return float64(*fo), true
	}
	return 0, false
}

// GetStringVal returns the raw bytes of obj interpreted as a Go string. On
// type mismatch found is false.
func GetStringVal(obj PdfObject) (val string, found bool) {
	so, found := obj.(*PdfObjectString)
	if found {
		return so.Str(), true
	}
	return "", false
}

// GetStringBytes is like GetStringVal but returns a []byte.
func GetStringBytes(obj PdfObject) (val []byte, found bool) {
	so, found := obj.(*PdfObjectString)
	if found {
		return so.Bytes(), true
	}
	return nil, false
}

// GetNameVal returns the string value represented by obj. On type mismatch
// found is false.
func GetNameVal(obj PdfObject) (val string, found bool) {
	name, found := obj.(*PdfObjectName)
	if found {
		return string(*name), true
	}
	return "", false
}

// GetArray returns obj as a *PdfObjectArray. On type mismatch found is false.
func GetArray(obj PdfObject) (arr *PdfObjectArray, found bool) {
	arr, found = obj.(*PdfObjectArray)
	return arr, found
}

// GetDict returns obj as a *PdfObjectDictionary. On type mismatch found is
// false.
func GetDict(obj PdfObject) (dict *PdfObjectDictionary, found bool) {
	dict, found = obj.(*PdfObjectDictionary)
	return dict, found
}

// GetStream returns obj as a *PdfObjectStream. On type mismatch found is
// false.
func GetStream(obj PdfObject) (stream *PdfObjectStream, found bool) {
	stream, found = obj.(*PdfObjectStream)
	return stream, found
}

// GetBoolVal returns the bool value represented by obj. On type mismatch
// found is false.
func GetBoolVal(obj PdfObject) (b bool, found bool) {
	bo, found := obj.(*PdfObjectBool)
	if found {
		return bool(*bo), true
	}
	return false, false
}
