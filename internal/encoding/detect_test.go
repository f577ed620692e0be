package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirbeaver/property-management/internal/encoding"
)

func decode(t *testing.T, input []byte) string {
	t.Helper()

	r, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(got)
}

func TestNewUTF8ReaderPassthrough(t *testing.T) {
	input := "Date,Category,Amount\n2024-01-15,Séance,120.00\n"
	assert.Equal(t, input, decode(t, []byte(input)))
}

func TestNewUTF8ReaderStripsBOM(t *testing.T) {
	content := "Date,Category,Amount\n"
	input := append([]byte{0xEF, 0xBB, 0xBF}, content...)
	assert.Equal(t, content, decode(t, input))
}

func TestNewUTF8ReaderWindows1252(t *testing.T) {
	// "Café" with 0xE9 for é, as Windows spreadsheet exports produce.
	input := []byte{'C', 'a', 'f', 0xE9, ',', '5', '.', '0', '0', '\n'}
	assert.Equal(t, "Café,5.00\n", decode(t, input))
}

func TestNewUTF8ReaderUTF16LE(t *testing.T) {
	content := "Date\n"

	input := []byte{0xFF, 0xFE}
	for _, r := range content {
		input = append(input, byte(r), 0x00)
	}

	assert.Equal(t, content, decode(t, input))
}

func TestNewUTF8ReaderEmpty(t *testing.T) {
	assert.Equal(t, "", decode(t, nil))
}
