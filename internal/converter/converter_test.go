package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlegalaid/bulkclaim/internal/claims"
	"github.com/openlegalaid/bulkclaim/internal/csvparser"
	"github.com/openlegalaid/bulkclaim/internal/xmlparser"
)

func TestInferExtension(t *testing.T) {
	tests := []struct {
		filename string
		want     claims.FileExtension
		wantErr  bool
	}{
		{filename: "upload.txt", want: claims.ExtensionTXT},
		{filename: "upload.CSV", want: claims.ExtensionCSV},
		{filename: "office.legal.xml", want: claims.ExtensionXML},
		{filename: "upload.pdf", wantErr: true},
		{filename: "no-extension", wantErr: true},
		{filename: "trailing-dot.", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got, err := InferExtension(tt.filename)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.filename)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegistry_ConverterFor(t *testing.T) {
	csvConv := csvparser.New(nil)
	xmlConv := xmlparser.New(nil)
	registry := NewRegistry(csvConv, xmlConv)

	got, err := registry.ConverterFor(claims.ExtensionTXT)
	require.NoError(t, err)
	assert.Same(t, FileConverter(csvConv), got)

	got, err = registry.ConverterFor(claims.ExtensionXML)
	require.NoError(t, err)
	assert.Same(t, FileConverter(xmlConv), got)
}

func TestRegistry_NoConverterFound(t *testing.T) {
	registry := NewRegistry(xmlparser.New(nil))

	_, err := registry.ConverterFor(claims.ExtensionTXT)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TXT")
}
