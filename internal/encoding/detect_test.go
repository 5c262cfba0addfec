package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sungheeyun-bit/tracker/internal/encoding"
)

func TestNewUTF8Reader(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{
			name: "PlainUTF8PassedThrough",
			in:   []byte("date,type,category\n"),
			want: "date,type,category\n",
		},
		{
			name: "UTF8BOMStripped",
			in:   append([]byte{0xEF, 0xBB, 0xBF}, []byte("café")...),
			want: "café",
		},
		{
			name: "UTF16LEDecoded",
			in:   []byte{0xFF, 0xFE, 'a', 0x00, 'b', 0x00},
			want: "ab",
		},
		{
			name: "UTF16BEDecoded",
			in:   []byte{0xFE, 0xFF, 0x00, 'a', 0x00, 'b'},
			want: "ab",
		},
		{
			name: "Windows1252Fallback",
			in:   []byte{'c', 'a', 'f', 0xE9}, // "café" in Windows-1252
			want: "café",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := encoding.NewUTF8Reader(bytes.NewReader(tt.in))
			require.NoError(t, err)

			got, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}
