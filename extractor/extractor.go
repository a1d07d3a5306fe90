/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package extractor drives contentstream.ProcessPage with a concrete
// OutputDev, offering three reference output devices: plain text,
// positioned HTML, and SVG.
package extractor

import (
	"strings"

	"github.com/vellumpdf/pdftext/contentstream"
	"github.com/vellumpdf/pdftext/model"
)

// Extractor ties one page to the devices this package offers. It holds no
// font cache of its own: that cache is internal to contentstream.Processor
// and scoped per ProcessPage call.
type Extractor struct {
	page *model.Page
}

// New returns an Extractor for page.
func New(page *model.Page) *Extractor {
	return &Extractor{page: page}
}

// ExtractText renders the page's text with TextDevice and returns it.
func (e *Extractor) ExtractText() (string, error) {
	var sb strings.Builder
	device := NewTextDevice(&sb)
	if err := contentstream.ProcessPage(e.page.Document(), device, e.page); err != nil {
		return "", err
	}
	if err := device.Err(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// ExtractHTML renders the page's text with HTMLDevice and returns the
// fragment (a <div id='page...'> block, not a full document).
func (e *Extractor) ExtractHTML() (string, error) {
	var sb strings.Builder
	device := NewHTMLDevice(&sb)
	if err := contentstream.ProcessPage(e.page.Document(), device, e.page); err != nil {
		return "", err
	}
	if err := device.Err(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// ExtractSVG renders the page's paths with SVGDevice and returns the SVG
// document.
func (e *Extractor) ExtractSVG() (string, error) {
	var sb strings.Builder
	device := NewSVGDevice(&sb)
	if err := contentstream.ProcessPage(e.page.Document(), device, e.page); err != nil {
		return "", err
	}
	if err := device.Err(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// ExtractText concatenates the plain text of every page of doc, in page
// order, separated by form feeds.
func ExtractText(doc model.Document) (string, error) {
	if doc.IsEncrypted() {
		return "", ErrEncrypted
	}
	pages, err := model.Pages(doc)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for i, page := range pages {
		if i > 0 {
			sb.WriteString("\f")
		}
		text, err := New(page).ExtractText()
		if err != nil {
			return "", err
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

// ExtractTextByPage returns the plain text of every page of doc, in page
// order, one string per page.
func ExtractTextByPage(doc model.Document) ([]string, error) {
	if doc.IsEncrypted() {
		return nil, ErrEncrypted
	}
	pages, err := model.Pages(doc)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(pages))
	for _, page := range pages {
		text, err := New(page).ExtractText()
		if err != nil {
			return nil, err
		}
		out = append(out, text)
	}
	return out, nil
}
