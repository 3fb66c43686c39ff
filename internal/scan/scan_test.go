package scan

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codekeeper/internal/domain/barcode"
)

func TestFixed(t *testing.T) {
	s := NewFixed("012345678905", barcode.EAN13)

	c, err := s.Scan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, barcode.Capture{Payload: "012345678905", SymbologyID: "org.gs1.EAN-13"}, c)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Scan(ctx)
	assert.ErrorIs(t, err, barcode.ErrScanCancelled)
}

func TestPrompt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    barcode.Capture
		wantErr error
	}{
		{
			name:  "default symbology",
			input: "A100\n\n",
			want:  barcode.Capture{Payload: "A100", SymbologyID: "org.iso.Code128"},
		},
		{
			name:  "alias",
			input: "hello\nqr\n",
			want:  barcode.Capture{Payload: "hello", SymbologyID: "org.iso.QRCode"},
		},
		{
			name:  "retry after unknown type",
			input: "12345670\ndatamatrix\nean8\n",
			want:  barcode.Capture{Payload: "12345670", SymbologyID: "org.iso.EAN8"},
		},
		{
			name:  "no trailing newline",
			input: "X9\norg.iso.Aztec",
			want:  barcode.Capture{Payload: "X9", SymbologyID: "org.iso.Aztec"},
		},
		{
			name:    "empty payload cancels",
			input:   "\n",
			wantErr: barcode.ErrScanCancelled,
		},
		{
			name:    "eof cancels",
			input:   "",
			wantErr: barcode.ErrScanCancelled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompt(bufio.NewReader(strings.NewReader(tt.input)), &out, barcode.Code128)

			got, err := p.Scan(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrompt_UsesSharedReader(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("A1\n\nnext line\n"))
	p := NewPrompt(in, &bytes.Buffer{}, barcode.QRCode)

	_, err := p.Scan(context.Background())
	require.NoError(t, err)

	rest, err := in.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "next line\n", rest)
}
