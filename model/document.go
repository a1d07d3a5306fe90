/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"github.com/vellumpdf/pdftext/core"
)

// ObjectID identifies an indirect object within a Document.
type ObjectID int64

// Document is the parser-layer collaborator this package consumes. A real
// implementation owns object-graph parsing, stream filters, and
// decryption; none of that lives here.
type Document interface {
	Version() string
	Trailer() *core.PdfObjectDictionary
	GetObject(id ObjectID) (core.PdfObject, error)

	// GetPages returns page object ids in document order, keyed by 1-based
	// page number.
	GetPages() (map[int]ObjectID, error)

	// GetPageContent returns the decoded (filter-stripped) content-stream
	// bytes for the page at `id`, with multiple content streams already
	// concatenated in array order and separated by whitespace.
	GetPageContent(id ObjectID) ([]byte, error)

	IsEncrypted() bool
	Decrypt(password string) error
}

// memDocument is a minimal in-memory Document used by tests: it holds a
// pre-built object table rather than parsing PDF bytes.
type memDocument struct {
	version  string
	trailer  *core.PdfObjectDictionary
	objects  map[ObjectID]core.PdfObject
	pages    map[int]ObjectID
	contents map[ObjectID][]byte
}

// NewMemDocument builds a Document backed by an in-memory object table, for
// use by tests that want to exercise the page driver and interpreter without
// a real parser.
func NewMemDocument(version string, objects map[ObjectID]core.PdfObject, pages map[int]ObjectID, contents map[ObjectID][]byte) Document {
	return &memDocument{
		version:  version,
		trailer:  core.MakeDict(),
		objects:  objects,
		pages:    pages,
		contents: contents,
	}
}

func (d *memDocument) Version() string {
	return d.version
}

func (d *memDocument) Trailer() *core.PdfObjectDictionary {
	return d.trailer
}

func (d *memDocument) GetObject(id ObjectID) (core.PdfObject, error) {
	obj, ok := d.objects[id]
	if !ok {
		return nil, core.ErrNotSupported
	}
	return obj, nil
}

func (d *memDocument) GetPages() (map[int]ObjectID, error) {
	return d.pages, nil
}

func (d *memDocument) GetPageContent(id ObjectID) ([]byte, error) {
	content, ok := d.contents[id]
	if !ok {
		return nil, core.ErrNotSupported
	}
	return content, nil
}

func (d *memDocument) IsEncrypted() bool {
	return false
}

func (d *memDocument) Decrypt(password string) error {
	return nil
}

// Resolve dereferences `obj` through `doc` if it is a PdfObjectReference,
// returning it unchanged otherwise. The core's own accessors
// (core.GetDict, core.GetArray, ...) never do this implicitly; callers that
// hold a Document do it explicitly at the point they need a dereferenced
// value.
func Resolve(doc Document, obj core.PdfObject) core.PdfObject {
	ref, ok := obj.(*core.PdfObjectReference)
	if !ok {
		return obj
	}
	resolved, err := doc.GetObject(ObjectID(ref.ObjectNumber))
	if err != nil {
		return obj
	}
	return resolved
}
