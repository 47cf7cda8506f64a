package objfile_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"lc2k/internal/objfile"
)

func TestWriteReadRecordRoundTrip(t *testing.T) {
	rec := &objfile.Record{
		Text: []int32{622595, 0},
		Data: []int32{42},
		Symbols: []objfile.Symbol{
			{Name: "Foo", Type: objfile.SymText, Offset: 0},
		},
		Relocs: []objfile.Reloc{
			{Offset: 0, Opcode: "lw", Label: "X"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, objfile.WriteRecord(&buf, rec))

	got, err := objfile.ReadRecord(&buf)
	require.NoError(t, err)
	require.Equal(t, rec.Text, got.Text)
	require.Equal(t, rec.Data, got.Data)
	require.Equal(t, rec.Symbols, got.Symbols)
	require.Equal(t, rec.Relocs, got.Relocs)
}

func TestWriteReadImageRoundTrip(t *testing.T) {
	words := []int32{622595, 0, 42}

	var buf bytes.Buffer
	require.NoError(t, objfile.WriteImage(&buf, words))

	got, err := objfile.ReadImage(&buf)
	require.NoError(t, err)
	require.Equal(t, words, got)
}
