package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "https://spinrate.example.com"

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(testBaseURL, tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateAlbumQR(t *testing.T) {
	service := NewQRCodeService(testBaseURL, 256, "M")

	qrBytes, err := service.GenerateAlbumQR(42)
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])

	_, err = service.GenerateAlbumQR(0)
	assert.Error(t, err)
}

func TestQRCodeService_ParseAlbumQR(t *testing.T) {
	service := NewQRCodeService(testBaseURL+"/", 256, "M")

	tests := []struct {
		name    string
		qrData  string
		want    int64
		wantErr bool
	}{
		{"album link", testBaseURL + "/albums/42", 42, false},
		{"foreign host", "https://evil.example.com/albums/42", 0, true},
		{"non-numeric id", testBaseURL + "/albums/abc", 0, true},
		{"zero id", testBaseURL + "/albums/0", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.ParseAlbumQR(tt.qrData)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
