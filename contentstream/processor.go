/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package contentstream

import (
	"fmt"

	"golang.org/x/xerrors"

	"github.com/vellumpdf/pdftext/common"
	"github.com/vellumpdf/pdftext/core"
	"github.com/vellumpdf/pdftext/internal/transform"
	"github.com/vellumpdf/pdftext/model"
)

// maxFormXObjectDepth bounds Do's recursion into form XObjects, guarding
// against a form that (directly or indirectly) draws itself.
const maxFormXObjectDepth = 64

// Processor interprets one content stream's operations against a device.
// It is single-use in the sense that its font cache and recursion depth
// counter belong to one top-level page (or standalone content stream);
// build a new Processor per page.
type Processor struct {
	doc    model.Document
	device OutputDev

	gs    GraphicsState
	stack GraphicsStateStack
	tlm   transform.Matrix
	path  Path

	markedContentDepth int
	xobjectDepth       int

	// fontCache maps a font dictionary's identity to its built Font, local
	// to this interpreter invocation and shared across any Do recursion
	// into form XObjects.
	fontCache map[*core.PdfObjectDictionary]model.Font
}

// NewProcessor returns a Processor that drives device as it interprets
// content streams against doc.
func NewProcessor(doc model.Document, device OutputDev) *Processor {
	return &Processor{
		doc:       doc,
		device:    device,
		gs:        newGraphicsState(),
		tlm:       transform.IdentityMatrix(),
		fontCache: map[*core.PdfObjectDictionary]model.Font{},
	}
}

// ProcessPage implements the page driver: begin_page, interpretation of
// the page's concatenated content stream, end_page.
func ProcessPage(doc model.Document, device OutputDev, page *model.Page) error {
	if err := device.BeginPage(page.Number, page.MediaBox, page.ArtBox); err != nil {
		return err
	}

	content, err := page.Content()
	if err != nil {
		return err
	}
	ops, err := decodeStreamOperations(content)
	if err != nil {
		return fmt.Errorf("%w: page content: %v", ErrInvalidStructure, err)
	}

	proc := NewProcessor(doc, device)
	if err := proc.Process(page.Resources, ops); err != nil {
		return err
	}
	return device.EndPage()
}

// decodeStreamOperations parses already-decompressed content-stream bytes
// into operations. Decompression itself is the parser layer's
// responsibility; Document.GetPageContent and the /XObject stream bytes
// consumed here are assumed already decoded.
func decodeStreamOperations(data []byte) (ContentStreamOperations, error) {
	parser := NewContentStreamParser(string(data))
	ops, err := parser.Parse()
	if err != nil {
		return nil, err
	}
	return *ops, nil
}

// Process interprets ops against resources, updating the processor's
// graphics state and invoking the device.
func (p *Processor) Process(resources *model.Resources, ops ContentStreamOperations) error {
	for _, op := range ops {
		if err := p.dispatch(op, resources); err != nil {
			return fmt.Errorf("operator %q: %w", op.Operand, err)
		}
	}
	return nil
}

func (p *Processor) dispatch(op *ContentStreamOperation, resources *model.Resources) error {
	switch op.Operand {
	case "q":
		p.stack.Push(p.gs)
		return nil
	case "Q":
		gs, ok := p.stack.Pop()
		if !ok {
			common.Log.Debug("WARN: `Q` with empty graphics state stack, skipping")
			return nil
		}
		p.gs = gs
		return nil
	case "cm":
		return p.opCm(op)
	case "BT", "ET":
		p.gs.Ts.Tm = transform.IdentityMatrix()
		p.tlm = transform.IdentityMatrix()
		return nil
	case "Tf":
		return p.opTf(op, resources)
	case "Tc":
		return p.opSetScalar(op, &p.gs.Ts.CharSpacing)
	case "Tw":
		return p.opSetScalar(op, &p.gs.Ts.WordSpacing)
	case "Tz":
		return p.opTz(op)
	case "TL":
		return p.opSetScalar(op, &p.gs.Ts.Leading)
	case "Ts":
		return p.opSetScalar(op, &p.gs.Ts.Rise)
	case "w":
		return p.opSetScalar(op, &p.gs.LineWidth)
	case "Tm":
		return p.opTm(op)
	case "Td":
		return p.opTd(op, false)
	case "TD":
		return p.opTd(op, true)
	case "T*":
		return p.opTStar()
	case "Tj":
		return p.opTj(op)
	case "TJ":
		return p.opTJ(op)
	case "gs":
		return p.opGs(op, resources)
	case "m":
		return p.opM(op)
	case "l":
		return p.opL(op)
	case "c":
		return p.opC(op)
	case "v":
		return p.opV(op)
	case "y":
		return p.opY(op)
	case "h":
		p.path.Close()
		return nil
	case "re":
		return p.opRe(op)
	case "S":
		return p.paint(true, false)
	case "f", "F":
		return p.paint(false, true)
	case "n":
		p.path.Clear()
		return nil
	case "s", "B", "B*", "b", "f*":
		common.Log.Debug("operator %q logged and ignored", op.Operand)
		return nil
	case "CS":
		return p.opCS(op, resources, true)
	case "cs":
		return p.opCS(op, resources, false)
	case "SC", "SCN":
		return p.opSetColor(op, true)
	case "sc", "scn":
		return p.opSetColor(op, false)
	case "G", "g", "RG", "rg", "K", "k", "W", "W*", "i", "J", "j", "M", "d", "ri":
		common.Log.Debug("operator %q logged and ignored", op.Operand)
		return nil
	case "BMC", "BDC":
		p.markedContentDepth++
		return nil
	case "EMC":
		if p.markedContentDepth > 0 {
			p.markedContentDepth--
		}
		return nil
	case "Do":
		return p.opDo(op, resources)
	default:
		common.Log.Debug("unrecognized operator %q, ignoring", op.Operand)
		return nil
	}
}

func floatParamsExact(op *ContentStreamOperation, n int) ([]float64, error) {
	if len(op.Params) != n {
		return nil, fmt.Errorf("%w: %s expects %d operands, got %d", ErrInvalidStructure, op.Operand, n, len(op.Params))
	}
	f, err := core.GetNumbersAsFloat(op.Params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStructure, err)
	}
	return f, nil
}

// cm a b c d e f: gs.ctm <- gs.ctm . M(a,b,c,d,e,f).
func (p *Processor) opCm(op *ContentStreamOperation) error {
	f, err := floatParamsExact(op, 6)
	if err != nil {
		return err
	}
	p.gs.CTM.Concat(transform.NewMatrix(f[0], f[1], f[2], f[3], f[4], f[5]))
	return nil
}

func (p *Processor) opSetScalar(op *ContentStreamOperation, dst *float64) error {
	f, err := floatParamsExact(op, 1)
	if err != nil {
		return err
	}
	*dst = f[0]
	return nil
}

// Tz horizontal_scaling: the operand is a percentage, stored divided by 100.
// A non-positive scale is unusual but not invalid PDF; it is kept exactly
// rather than clamped, with a debug log for anyone tracing garbled output.
func (p *Processor) opTz(op *ContentStreamOperation) error {
	f, err := floatParamsExact(op, 1)
	if err != nil {
		return err
	}
	p.gs.Ts.HorizScale = f[0] / 100
	if p.gs.Ts.HorizScale <= 0 {
		common.Log.Debug("Tz: non-positive horizontal scale %v", p.gs.Ts.HorizScale)
	}
	return nil
}

// Tf font_name size: resolve /Font/<name> through the interpreter's font
// cache.
func (p *Processor) opTf(op *ContentStreamOperation, resources *model.Resources) error {
	if len(op.Params) != 2 {
		return fmt.Errorf("%w: Tf expects 2 operands, got %d", ErrInvalidStructure, len(op.Params))
	}
	name, ok := core.GetNameVal(op.Params[0])
	if !ok {
		return fmt.Errorf("%w: Tf font operand not a name", ErrInvalidStructure)
	}
	size, err := core.GetNumberAsFloat(op.Params[1])
	if err != nil {
		return fmt.Errorf("%w: Tf size operand: %v", ErrInvalidStructure, err)
	}
	font, err := p.resolveFont(resources, core.PdfObjectName(name))
	p.gs.Ts.InvalidFont = xerrors.Is(err, core.ErrNotSupported)
	if err != nil && !p.gs.Ts.InvalidFont {
		return err
	}
	if p.gs.Ts.InvalidFont {
		common.Log.Debug("WARN: font %q uses an unsupported font type, not processing: %v", name, err)
		font = nil
	}
	p.gs.Ts.Font = font
	p.gs.Ts.FontSize = size
	return nil
}

func (p *Processor) resolveFont(resources *model.Resources, name core.PdfObjectName) (model.Font, error) {
	dict, ok := resources.GetFontDict(name)
	if !ok {
		return nil, fmt.Errorf("%w: font %q not found in resources", ErrMissingField, name)
	}
	if font, ok := p.fontCache[dict]; ok {
		return font, nil
	}
	font, err := model.BuildFont(p.doc, dict)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFontError, err)
	}
	p.fontCache[dict] = font
	return font, nil
}

// Tm a b c d e f: tlm <- M(...), gs.ts.tm <- tlm, emit end_line.
func (p *Processor) opTm(op *ContentStreamOperation) error {
	f, err := floatParamsExact(op, 6)
	if err != nil {
		return err
	}
	m := transform.NewMatrix(f[0], f[1], f[2], f[3], f[4], f[5])
	p.tlm = m
	p.gs.Ts.Tm = m
	return p.device.EndLine()
}

// Td tx ty: tlm <- tlm . T(tx,ty); mirror into gs.ts.tm; emit end_line. TD
// additionally sets leading <- -ty before behaving as Td.
func (p *Processor) opTd(op *ContentStreamOperation, isTD bool) error {
	f, err := floatParamsExact(op, 2)
	if err != nil {
		return err
	}
	tx, ty := f[0], f[1]
	if isTD {
		p.gs.Ts.Leading = -ty
	}
	p.tlm.Concat(transform.TranslationMatrix(tx, ty))
	p.gs.Ts.Tm = p.tlm
	return p.device.EndLine()
}

// T*: Td(0, -leading).
func (p *Processor) opTStar() error {
	p.tlm.Concat(transform.TranslationMatrix(0, -p.gs.Ts.Leading))
	p.gs.Ts.Tm = p.tlm
	return p.device.EndLine()
}

func (p *Processor) opTj(op *ContentStreamOperation) error {
	if len(op.Params) != 1 {
		return fmt.Errorf("%w: Tj expects 1 operand, got %d", ErrInvalidStructure, len(op.Params))
	}
	data, ok := core.GetStringBytes(op.Params[0])
	if !ok {
		return fmt.Errorf("%w: Tj operand not a string", ErrInvalidStructure)
	}
	return p.showText(data)
}

// TJ array: each string element shows text; each number element advances
// the text matrix by horizontal_scaling . (-n/1000) . font_size.
func (p *Processor) opTJ(op *ContentStreamOperation) error {
	if len(op.Params) != 1 {
		return fmt.Errorf("%w: TJ expects 1 operand, got %d", ErrInvalidStructure, len(op.Params))
	}
	arr, ok := core.GetArray(op.Params[0])
	if !ok {
		return fmt.Errorf("%w: TJ operand not an array", ErrInvalidStructure)
	}
	for _, elt := range arr.Elements() {
		if data, ok := core.GetStringBytes(elt); ok {
			if err := p.showText(data); err != nil {
				return err
			}
			continue
		}
		n, err := core.GetNumberAsFloat(elt)
		if err != nil {
			common.Log.Debug("WARN: TJ array element neither string nor number, skipping")
			continue
		}
		tx := p.gs.Ts.HorizScale * (-n / 1000) * p.gs.Ts.FontSize
		p.gs.Ts.Tm.Concat(transform.TranslationMatrix(tx, 0))
	}
	return nil
}

// showText is the show_text hot loop. Word spacing applies only when the
// consumed CharCode is a single byte equal to 0x20; a multi-byte CID 0x20
// never triggers it.
func (p *Processor) showText(data []byte) error {
	if p.gs.Ts.InvalidFont {
		common.Log.Debug("showText: invalid font, not processing")
		return nil
	}
	if p.gs.Ts.Font == nil {
		return fmt.Errorf("%w: text operator with no font selected", ErrInvalidStructure)
	}
	font := p.gs.Ts.Font

	if err := p.device.BeginWord(); err != nil {
		return err
	}

	cursor := data
	for len(cursor) > 0 {
		code, n, ok := font.NextChar(cursor)
		if !ok {
			break
		}
		cursor = cursor[n:]

		tsm := transform.NewMatrix(p.gs.Ts.HorizScale, 0, 0, 1, 0, p.gs.Ts.Rise)
		trm := p.gs.CTM.Mult(p.gs.Ts.Tm).Mult(tsm)

		w0 := font.Width(code) / 1000
		spacing := p.gs.Ts.CharSpacing
		if code == 0x20 && n == 1 {
			spacing += p.gs.Ts.WordSpacing
		}

		if err := p.device.OutputCharacter(trm, w0, spacing, p.gs.Ts.FontSize, font.Decode(code)); err != nil {
			return err
		}

		tx := p.gs.Ts.HorizScale * (w0*p.gs.Ts.FontSize + spacing)
		p.gs.Ts.Tm.Concat(transform.TranslationMatrix(tx, 0))
	}

	return p.device.EndWord()
}

// gs /name: apply recognized ExtGState keys. /SMask Name `None` clears the
// soft mask, a Dictionary stores it, anything else is InvalidStructure.
// /Type must be /ExtGState if present. Other keys are logged and ignored.
func (p *Processor) opGs(op *ContentStreamOperation, resources *model.Resources) error {
	if len(op.Params) != 1 {
		return fmt.Errorf("%w: gs expects 1 operand, got %d", ErrInvalidStructure, len(op.Params))
	}
	name, ok := core.GetNameVal(op.Params[0])
	if !ok {
		return fmt.Errorf("%w: gs operand not a name", ErrInvalidStructure)
	}
	dict, ok := resources.GetExtGState(core.PdfObjectName(name))
	if !ok {
		common.Log.Debug("WARN: ExtGState %q not found in resources, skipping", name)
		return nil
	}
	if t, ok := core.GetNameVal(dict.Get("Type")); ok && t != "ExtGState" {
		return fmt.Errorf("%w: ExtGState %q has /Type %q, not /ExtGState", ErrInvalidStructure, name, t)
	}

	if smObj := model.Resolve(p.doc, dict.Get("SMask")); smObj != nil {
		switch v := smObj.(type) {
		case *core.PdfObjectName:
			if string(*v) != "None" {
				return fmt.Errorf("%w: ExtGState %q /SMask name %q, want /None", ErrInvalidStructure, name, string(*v))
			}
			p.gs.SMask = nil
		default:
			smDict, ok := core.GetDict(smObj)
			if !ok {
				return fmt.Errorf("%w: ExtGState %q /SMask neither Name nor Dictionary", ErrInvalidStructure, name)
			}
			p.gs.SMask = smDict
		}
	}

	for _, key := range dict.Keys() {
		switch key {
		case "Type", "SMask":
		default:
			common.Log.Debug("ExtGState key %q logged and ignored", key)
		}
	}
	return nil
}

func (p *Processor) opM(op *ContentStreamOperation) error {
	f, err := floatParamsExact(op, 2)
	if err != nil {
		return err
	}
	p.path.MoveTo(f[0], f[1])
	return nil
}

func (p *Processor) opL(op *ContentStreamOperation) error {
	f, err := floatParamsExact(op, 2)
	if err != nil {
		return err
	}
	p.path.LineTo(f[0], f[1])
	return nil
}

func (p *Processor) opC(op *ContentStreamOperation) error {
	f, err := floatParamsExact(op, 6)
	if err != nil {
		return err
	}
	p.path.CurveTo(f[0], f[1], f[2], f[3], f[4], f[5])
	return nil
}

// v: the first control point equals the current point. An empty-path `v`
// is InvalidStructure rather than reading an undefined current point.
func (p *Processor) opV(op *ContentStreamOperation) error {
	f, err := floatParamsExact(op, 4)
	if err != nil {
		return err
	}
	if p.path.Empty() {
		return fmt.Errorf("%w: `v` on an empty path", ErrInvalidStructure)
	}
	p.path.CurveToV(f[0], f[1], f[2], f[3])
	return nil
}

// y: the last control point equals the endpoint.
func (p *Processor) opY(op *ContentStreamOperation) error {
	f, err := floatParamsExact(op, 4)
	if err != nil {
		return err
	}
	p.path.CurveToY(f[0], f[1], f[2], f[3])
	return nil
}

func (p *Processor) opRe(op *ContentStreamOperation) error {
	f, err := floatParamsExact(op, 4)
	if err != nil {
		return err
	}
	p.path.Rectangle(f[0], f[1], f[2], f[3])
	return nil
}

// paint dispatches S/f/F/n: stroke and/or fill against the current path,
// then clear it regardless of outcome.
func (p *Processor) paint(stroke, fill bool) error {
	defer p.path.Clear()

	if stroke {
		if err := p.device.Stroke(p.gs.CTM, p.gs.ColorspaceStroking, p.gs.ColorStroking, &p.path); err != nil {
			return err
		}
	}
	if fill {
		if err := p.device.Fill(p.gs.CTM, p.gs.ColorspaceNonStroking, p.gs.ColorNonStroking, &p.path); err != nil {
			return err
		}
	}
	return nil
}

// CS/cs name: resolve the colorspace via resources and reset the
// corresponding color to empty.
func (p *Processor) opCS(op *ContentStreamOperation, resources *model.Resources, stroking bool) error {
	if len(op.Params) != 1 {
		return fmt.Errorf("%w: %s expects 1 operand, got %d", ErrInvalidStructure, op.Operand, len(op.Params))
	}
	name, ok := core.GetNameVal(op.Params[0])
	if !ok {
		return fmt.Errorf("%w: %s operand not a name", ErrInvalidStructure, op.Operand)
	}
	cs := p.resolveColorspace(name, resources)
	if stroking {
		p.gs.ColorspaceStroking = cs
		p.gs.ColorStroking = nil
	} else {
		p.gs.ColorspaceNonStroking = cs
		p.gs.ColorNonStroking = nil
	}
	return nil
}

func (p *Processor) resolveColorspace(name string, resources *model.Resources) model.Colorspace {
	switch name {
	case "DeviceGray":
		return model.DeviceGrayColorspace{}
	case "DeviceRGB":
		return model.DeviceRGBColorspace{}
	case "DeviceCMYK":
		return model.DeviceCMYKColorspace{}
	case "Pattern":
		return model.PatternColorspace{}
	}
	if cs, ok := resources.GetColorspaceByName(core.PdfObjectName(name)); ok {
		return cs
	}
	common.Log.Debug("WARN: unknown colorspace %q, falling back to DeviceGray", name)
	return model.DeviceGrayColorspace{}
}

// SC/SCN/sc/scn: stored verbatim as a numeric tuple unless the active
// colorspace is Pattern, in which case the color is empty.
func (p *Processor) opSetColor(op *ContentStreamOperation, stroking bool) error {
	cs := p.gs.ColorspaceNonStroking
	if stroking {
		cs = p.gs.ColorspaceStroking
	}
	if _, isPattern := cs.(model.PatternColorspace); isPattern {
		if stroking {
			p.gs.ColorStroking = nil
		} else {
			p.gs.ColorNonStroking = nil
		}
		return nil
	}

	color, err := core.GetNumbersAsFloat(op.Params)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidStructure, op.Operand, err)
	}
	if stroking {
		p.gs.ColorStroking = color
	} else {
		p.gs.ColorNonStroking = color
	}
	return nil
}

// Do name: look up /XObject/<name>. Only form XObjects recurse; images are
// out of scope and undefined XObjects are skipped.
func (p *Processor) opDo(op *ContentStreamOperation, resources *model.Resources) error {
	if len(op.Params) != 1 {
		return fmt.Errorf("%w: Do expects 1 operand, got %d", ErrInvalidStructure, len(op.Params))
	}
	name, ok := core.GetNameVal(op.Params[0])
	if !ok {
		return fmt.Errorf("%w: Do operand not a name", ErrInvalidStructure)
	}

	stream, kind := resources.GetXObject(core.PdfObjectName(name))
	if stream == nil || kind != model.XObjectTypeForm {
		return nil
	}
	if p.xobjectDepth >= maxFormXObjectDepth {
		return fmt.Errorf("%w: form XObject %q recursion exceeds depth %d", ErrInvalidStructure, name, maxFormXObjectDepth)
	}

	formResources := resources
	if resDict, ok := core.GetDict(model.Resolve(p.doc, stream.Get("Resources"))); ok {
		formResources = model.NewResourcesFromDict(p.doc, resDict)
	}

	ops, err := decodeStreamOperations(stream.Stream)
	if err != nil {
		return fmt.Errorf("%w: form XObject %q content: %v", ErrInvalidStructure, name, err)
	}

	savedCTM := p.gs.CTM
	if m, ok := formMatrix(stream); ok {
		p.gs.CTM.Concat(m)
	}

	p.xobjectDepth++
	err = p.Process(formResources, ops)
	p.xobjectDepth--
	p.gs.CTM = savedCTM

	return err
}

func formMatrix(stream *core.PdfObjectStream) (transform.Matrix, bool) {
	arr, ok := core.GetArray(stream.Get("Matrix"))
	if !ok {
		return transform.Matrix{}, false
	}
	f, err := core.GetNumbersAsFloat(arr.Elements())
	if err != nil || len(f) != 6 {
		return transform.Matrix{}, false
	}
	return transform.NewMatrix(f[0], f[1], f[2], f[3], f[4], f[5]), true
}
