package link_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lc2k/internal/asm"
	"lc2k/internal/link"
	"lc2k/internal/objfile"
)

func mustAssemble(t *testing.T, src string) *objfile.Record {
	t.Helper()
	rec, err := asm.AssembleReader(strings.NewReader(src))
	require.NoError(t, err)
	return rec
}

func TestScenario4_TwoObjectLinkGlobalReference(t *testing.T) {
	// Object A: a global label Foo on its text line at offset 3.
	a := mustAssemble(t, " noop\n noop\n noop\nFoo noop\n")
	// Object B: references Foo via .fill.
	b := mustAssemble(t, "k .fill Foo\n")

	image, err := link.Link([]*objfile.Record{a, b}, nil)
	require.NoError(t, err)

	// A has 4 text words, no data; B has 0 text, 1 data word.
	require.Len(t, image, 5)
	assert.EqualValues(t, 3, image[4])
}

func TestScenario5_StackResolution(t *testing.T) {
	a := mustAssemble(t, " noop\nk .fill Stack\n")

	image, err := link.Link([]*objfile.Record{a}, nil)
	require.NoError(t, err)
	// textSize=1, dataSize=1 -> Stack resolves to 1+1=2.
	require.Len(t, image, 2)
	assert.EqualValues(t, 2, image[1])
}

func TestDuplicateGlobalDefinitionFails(t *testing.T) {
	a := mustAssemble(t, "Foo noop\n")
	b := mustAssemble(t, "Foo noop\n")

	_, err := link.Link([]*objfile.Record{a, b}, nil)
	assert.ErrorIs(t, err, link.ErrDuplicateGlobal)
}

func TestReservedStackDefinitionFails(t *testing.T) {
	a := mustAssemble(t, "Stack noop\n")

	_, err := link.Link([]*objfile.Record{a}, nil)
	assert.ErrorIs(t, err, link.ErrReservedStack)
}

func TestUnresolvedGlobalReferenceFails(t *testing.T) {
	a := mustAssemble(t, " lw 0 1 Foo\n halt\n")

	_, err := link.Link([]*objfile.Record{a}, nil)
	assert.ErrorIs(t, err, link.ErrUnresolvedGlobal)
}

func TestRoundTripSingleObjectNumericOnly(t *testing.T) {
	a := mustAssemble(t, " add 1 2 3\n .fill 42\n")

	image, err := link.Link([]*objfile.Record{a}, nil)
	require.NoError(t, err)

	want := append(append([]int32{}, a.Text...), a.Data...)
	assert.Equal(t, want, image)
}
