package barcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbology_RoundTrip(t *testing.T) {
	all := Symbologies()
	require.Len(t, all, 6)

	for _, s := range all {
		t.Run(s.String(), func(t *testing.T) {
			got, ok := SymbologyFor(IdentifierFor(s))
			assert.True(t, ok)
			assert.Equal(t, s, got)
			assert.NotEmpty(t, s.Backend())
		})
	}
}

func TestSymbology_Identifiers(t *testing.T) {
	tests := []struct {
		symbology  Symbology
		identifier string
	}{
		{Code128, "org.iso.Code128"},
		{QRCode, "org.iso.QRCode"},
		{PDF417, "org.iso.PDF417"},
		{Aztec, "org.iso.Aztec"},
		{EAN13, "org.gs1.EAN-13"},
		{EAN8, "org.iso.EAN8"},
	}

	for _, tt := range tests {
		t.Run(tt.identifier, func(t *testing.T) {
			assert.Equal(t, tt.identifier, IdentifierFor(tt.symbology))
		})
	}
}

func TestSymbologyFor_Unknown(t *testing.T) {
	inputs := []string{"", "org.iso.qrcode", "ORG.ISO.QRCODE", "org.gs1.EAN13", " org.iso.Aztec", "qr", "💥"}

	for _, in := range inputs {
		got, ok := SymbologyFor(in)
		assert.False(t, ok, in)
		assert.Equal(t, Unknown, got, in)
	}
}

func TestParseSymbology(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Symbology
		wantErr bool
	}{
		{name: "identifier", input: "org.gs1.EAN-13", want: EAN13},
		{name: "alias", input: "qr", want: QRCode},
		{name: "alias mixed case", input: " Code128 ", want: Code128},
		{name: "unknown", input: "datamatrix", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSymbology(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownSymbology)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnknownSymbology(t *testing.T) {
	assert.False(t, Unknown.Valid())
	assert.Empty(t, Unknown.Identifier())
	assert.Empty(t, string(Unknown.Backend()))
	assert.Equal(t, "Unknown", Unknown.String())
}
