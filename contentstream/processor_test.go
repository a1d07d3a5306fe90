/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package contentstream

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vellumpdf/pdftext/core"
	"github.com/vellumpdf/pdftext/internal/transform"
	"github.com/vellumpdf/pdftext/model"
)

type charEvent struct {
	trm      transform.Matrix
	width    float64
	spacing  float64
	fontSize float64
	text     string
}

// recordingDevice is an OutputDev that records every call it receives, so
// interpreter behavior can be asserted without a real rendering backend.
type recordingDevice struct {
	NopDevice

	chars                         []charEvent
	beginWords, endWords, endLines int
}

func (d *recordingDevice) OutputCharacter(trm transform.Matrix, width, spacing, fontSize float64, text string) error {
	d.chars = append(d.chars, charEvent{trm, width, spacing, fontSize, text})
	return nil
}

func (d *recordingDevice) BeginWord() error { d.beginWords++; return nil }
func (d *recordingDevice) EndWord() error   { d.endWords++; return nil }
func (d *recordingDevice) EndLine() error   { d.endLines++; return nil }

// helveticaResources builds a Resources with a single standard-14 font
// named F1, backed by a fresh in-memory Document.
func helveticaResources(t *testing.T) (model.Document, *model.Resources) {
	t.Helper()
	fontDict := core.MakeDict()
	fontDict.Set("Type", core.MakeName("Font"))
	fontDict.Set("Subtype", core.MakeName("Type1"))
	fontDict.Set("BaseFont", core.MakeName("Helvetica"))

	fonts := core.MakeDict()
	fonts.Set("F1", fontDict)

	resDict := core.MakeDict()
	resDict.Set("Font", fonts)

	doc := model.NewMemDocument("1.7", nil, nil, nil)
	return doc, model.NewResourcesFromDict(doc, resDict)
}

func parseOps(t *testing.T, content string) ContentStreamOperations {
	t.Helper()
	ops, err := NewContentStreamParser(content).Parse()
	require.NoError(t, err)
	return *ops
}

func TestShowTextEmitsOneCharacterPerGlyph(t *testing.T) {
	doc, resources := helveticaResources(t)
	device := &recordingDevice{}
	proc := NewProcessor(doc, device)

	ops := parseOps(t, `BT /F1 12 Tf (AB) Tj ET`)
	require.NoError(t, proc.Process(resources, ops))

	require.Equal(t, 1, device.beginWords)
	require.Equal(t, 1, device.endWords)
	require.Len(t, device.chars, 2)
	require.Equal(t, "A", device.chars[0].text)
	require.Equal(t, "B", device.chars[1].text)
	require.Equal(t, float64(12), device.chars[0].fontSize)
}

// Word spacing applies only to a single-byte 0x20, and character spacing
// always applies.
func TestShowTextSpacingRule(t *testing.T) {
	doc, resources := helveticaResources(t)
	device := &recordingDevice{}
	proc := NewProcessor(doc, device)

	ops := parseOps(t, `BT /F1 12 Tf 1 Tc 2 Tw (A B) Tj ET`)
	require.NoError(t, proc.Process(resources, ops))

	require.Len(t, device.chars, 3)
	require.Equal(t, "A", device.chars[0].text)
	require.Equal(t, float64(1), device.chars[0].spacing) // char spacing only
	require.Equal(t, " ", device.chars[1].text)
	require.Equal(t, float64(3), device.chars[1].spacing) // char + word spacing
	require.Equal(t, "B", device.chars[2].text)
	require.Equal(t, float64(1), device.chars[2].spacing)
}

// After Tm, the text and text-line matrices equal the supplied operands.
func TestTmSetsTextMatrixDirectly(t *testing.T) {
	doc, resources := helveticaResources(t)
	device := &recordingDevice{}
	proc := NewProcessor(doc, device)

	ops := parseOps(t, `BT 2 0 0 2 10 20 Tm`)
	require.NoError(t, proc.Process(resources, ops))

	want := transform.NewMatrix(2, 0, 0, 2, 10, 20)
	require.Equal(t, want, proc.gs.Ts.Tm)
	require.Equal(t, want, proc.tlm)
	require.Equal(t, 1, device.endLines)
}

// cm composes onto an identity CTM, so a fresh cm's result equals the
// supplied matrix directly.
func TestCmComposesOntoIdentity(t *testing.T) {
	doc, resources := helveticaResources(t)
	device := &recordingDevice{}
	proc := NewProcessor(doc, device)

	ops := parseOps(t, `1 0 0 1 5 7 cm`)
	require.NoError(t, proc.Process(resources, ops))

	require.Equal(t, transform.NewMatrix(1, 0, 0, 1, 5, 7), proc.gs.CTM)
}

// q/Q round trip: state mutated inside q...Q is discarded on Q.
func TestQQRoundTrip(t *testing.T) {
	doc, resources := helveticaResources(t)
	device := &recordingDevice{}
	proc := NewProcessor(doc, device)

	ops := parseOps(t, `2 0 0 2 0 0 cm q 1 0 0 1 100 100 cm Q`)
	require.NoError(t, proc.Process(resources, ops))

	require.Equal(t, transform.NewMatrix(2, 0, 0, 2, 0, 0), proc.gs.CTM)
}

// Q on an empty stack is a logged warning, not fatal.
func TestQOnEmptyStackIsNotFatal(t *testing.T) {
	doc, resources := helveticaResources(t)
	device := &recordingDevice{}
	proc := NewProcessor(doc, device)

	ops := parseOps(t, `Q`)
	require.NoError(t, proc.Process(resources, ops))
}

// TJ kerning: a negative number widens the advance; a positive number
// narrows it, scaled by horizontal_scaling * (-n/1000) * font_size.
func TestTJKerningAdvance(t *testing.T) {
	doc, resources := helveticaResources(t)
	device := &recordingDevice{}
	proc := NewProcessor(doc, device)

	ops := parseOps(t, `BT /F1 10 Tf [(A) -250 (B)] TJ ET`)
	require.NoError(t, proc.Process(resources, ops))

	require.Len(t, device.chars, 2)
	// tx after 'A' = width*fontSize, plus kerning tx = 1*(250/1000)*10 = 2.5.
	aWidth := device.chars[0].width
	wantX := aWidth*10 + 2.5
	gotX, _ := device.chars[1].trm.Translation()
	require.InDelta(t, wantX, gotX, 1e-9)
}

// Path construction and painting: S/f/F/n all clear the path afterward.
func TestPaintingClearsPath(t *testing.T) {
	doc, resources := helveticaResources(t)
	device := &recordingDevice{}
	proc := NewProcessor(doc, device)

	ops := parseOps(t, `10 10 m 20 20 l 30 10 l h f`)
	require.NoError(t, proc.Process(resources, ops))
	require.Empty(t, proc.path.Segments)
	require.True(t, proc.path.Empty())
}

// `v` on an empty path is InvalidStructure, not a panic.
func TestVOnEmptyPathIsInvalidStructure(t *testing.T) {
	doc, resources := helveticaResources(t)
	device := &recordingDevice{}
	proc := NewProcessor(doc, device)

	ops := parseOps(t, `10 20 30 40 v`)
	err := proc.Process(resources, ops)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidStructure)
}

// Wrong operand count on cm/Tm/Td/TD fails with InvalidStructure.
func TestWrongOperandCountIsInvalidStructure(t *testing.T) {
	doc, resources := helveticaResources(t)
	device := &recordingDevice{}
	proc := NewProcessor(doc, device)

	ops := parseOps(t, `1 0 0 1 5 cm`)
	err := proc.Process(resources, ops)
	require.ErrorIs(t, err, ErrInvalidStructure)
}

// G/g/RG/rg/K/k are logged and ignored: they leave the graphics state's
// colorspace/color fields untouched.
func TestDeviceColorOperatorsAreIgnored(t *testing.T) {
	doc, resources := helveticaResources(t)
	device := &recordingDevice{}
	proc := NewProcessor(doc, device)

	ops := parseOps(t, `0.5 g 1 0 0 RG 0 0 0 1 k`)
	require.NoError(t, proc.Process(resources, ops))

	require.Equal(t, model.DeviceGrayColorspace{}, proc.gs.ColorspaceNonStroking)
	require.Nil(t, proc.gs.ColorNonStroking)
	require.Equal(t, model.DeviceGrayColorspace{}, proc.gs.ColorspaceStroking)
	require.Nil(t, proc.gs.ColorStroking)
}

// A selected-but-unsupported font (Ts.InvalidFont, set by Tf when
// resolveFont fails with core.ErrNotSupported per model.BuildFont's
// dispatch) makes subsequent text operators silent no-ops instead of
// failing the page.
func TestShowTextSkipsWhenFontInvalid(t *testing.T) {
	doc, resources := helveticaResources(t)
	device := &recordingDevice{}
	proc := NewProcessor(doc, device)

	proc.gs.Ts.InvalidFont = true
	ops := parseOps(t, `BT (A) Tj ET`)
	require.NoError(t, proc.Process(resources, ops))
	require.Empty(t, device.chars)
	require.Zero(t, device.beginWords)
}

// scn under a Pattern colorspace stores an empty color.
func TestPatternColorspaceStoresEmptyColor(t *testing.T) {
	doc, resources := helveticaResources(t)
	device := &recordingDevice{}
	proc := NewProcessor(doc, device)

	ops := parseOps(t, `/Pattern cs /P1 scn`)
	require.NoError(t, proc.Process(resources, ops))

	require.Equal(t, model.PatternColorspace{}, proc.gs.ColorspaceNonStroking)
	require.Nil(t, proc.gs.ColorNonStroking)
}

// BMC/BDC/EMC adjust the marked-content depth counter but never fail.
func TestMarkedContentDepthTracksNesting(t *testing.T) {
	doc, resources := helveticaResources(t)
	device := &recordingDevice{}
	proc := NewProcessor(doc, device)

	ops := parseOps(t, `/Span BMC /Span BDC EMC EMC EMC`)
	require.NoError(t, proc.Process(resources, ops))
	require.Equal(t, 0, proc.markedContentDepth)
}

// ExtGState /SMask: Name None clears, a dictionary stores, anything else is
// InvalidStructure.
func TestExtGStateSMaskHandling(t *testing.T) {
	doc := model.NewMemDocument("1.7", nil, nil, nil)

	smaskDict := core.MakeDict()
	gsNone := core.MakeDict()
	gsNone.Set("SMask", core.MakeName("None"))
	gsDict := core.MakeDict()
	gsDict.Set("SMask", smaskDict)
	gsBad := core.MakeDict()
	gsBad.Set("SMask", core.MakeInteger(1))

	extgstate := core.MakeDict()
	extgstate.Set("GS1", gsDict)
	extgstate.Set("GS2", gsNone)
	extgstate.Set("GS3", gsBad)

	resDict := core.MakeDict()
	resDict.Set("ExtGState", extgstate)
	resources := model.NewResourcesFromDict(doc, resDict)

	device := &recordingDevice{}
	proc := NewProcessor(doc, device)

	require.NoError(t, proc.Process(resources, parseOps(t, `/GS1 gs`)))
	require.Same(t, smaskDict, proc.gs.SMask)

	require.NoError(t, proc.Process(resources, parseOps(t, `/GS2 gs`)))
	require.Nil(t, proc.gs.SMask)

	err := proc.Process(resources, parseOps(t, `/GS3 gs`))
	require.ErrorIs(t, err, ErrInvalidStructure)
}

// Do recursion into a form XObject interprets its content against the
// outer graphics state, restoring the CTM afterward.
func TestDoFormXObjectRecursion(t *testing.T) {
	formDict := core.MakeDict()
	formDict.Set("Type", core.MakeName("XObject"))
	formDict.Set("Subtype", core.MakeName("Form"))
	formStream := core.MakeStream([]byte(`10 0 0 10 0 0 cm`), formDict)

	xobjects := core.MakeDict()
	xobjects.Set("Fm1", formStream)

	resDict := core.MakeDict()
	resDict.Set("XObject", xobjects)

	doc := model.NewMemDocument("1.7", nil, nil, nil)
	resources := model.NewResourcesFromDict(doc, resDict)

	device := &recordingDevice{}
	proc := NewProcessor(doc, device)

	ops := parseOps(t, `q /Fm1 Do Q`)
	require.NoError(t, proc.Process(resources, ops))
	require.Equal(t, transform.IdentityMatrix(), proc.gs.CTM)
}
