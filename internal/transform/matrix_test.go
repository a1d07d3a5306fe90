/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package transform

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vellumpdf/pdftext/common"
)

func init() {
	common.SetLogger(common.NewConsoleLogger(common.LogLevelDebug))
}

func TestIdentityMatrixTransformIsNoOp(t *testing.T) {
	x, y := IdentityMatrix().Transform(3, 4)
	require.Equal(t, 3.0, x)
	require.Equal(t, 4.0, y)
}

func TestTranslationMatrixTransform(t *testing.T) {
	m := TranslationMatrix(10, 20)
	x, y := m.Transform(1, 1)
	require.Equal(t, 11.0, x)
	require.Equal(t, 21.0, y)

	tx, ty := m.Translation()
	require.Equal(t, 10.0, tx)
	require.Equal(t, 20.0, ty)
}

// Concat composes b onto the front of m: the order a cm operator uses to
// push a new matrix in front of the current CTM.
func TestConcatComposesInCTMOrder(t *testing.T) {
	m := NewMatrix(2, 0, 0, 2, 0, 0)
	m.Concat(TranslationMatrix(5, 7))

	x, y := m.Transform(0, 0)
	require.Equal(t, 10.0, x)
	require.Equal(t, 14.0, y)
}

func TestClampRangeBoundsCorruptOperands(t *testing.T) {
	m := NewMatrix(1e20, 0, 0, 1, -1e20, 0)
	require.Equal(t, maxAbsNumber, m[0])
	require.Equal(t, -maxAbsNumber, m[6])
}
