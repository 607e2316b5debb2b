package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService("http://shop.test", tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateProductQR(t *testing.T) {
	service := NewQRCodeService("http://shop.test", 256, "M")

	qrBytes, err := service.GenerateProductQR("3")
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateProductQR_EmptyID(t *testing.T) {
	_, err := NewQRCodeService("http://shop.test", 256, "M").GenerateProductQR("")

	assert.Error(t, err)
}

func TestQRCodeService_ProductLink(t *testing.T) {
	service := NewQRCodeService("http://shop.test/", 256, "M").(*qrcodeService)

	assert.Equal(t, "http://shop.test/shop?product=3", service.ProductLink("3"))
	assert.Equal(t, "http://shop.test/shop?product=a+b%26c", service.ProductLink("a b&c"))
}

func TestQRCodeService_ParseProductQR(t *testing.T) {
	service := NewQRCodeService("http://shop.test", 256, "M")

	tests := []struct {
		name    string
		data    string
		want    string
		wantErr string
	}{
		{name: "valid", data: "http://shop.test/shop?product=3", want: "3"},
		{name: "escaped id", data: "http://shop.test/shop?product=a+b%26c", want: "a b&c"},
		{name: "wrong path", data: "http://shop.test/blog?product=3", wantErr: "invalid QR code path"},
		{name: "missing id", data: "http://shop.test/shop", wantErr: "no product id"},
		{name: "garbage", data: "http://[::1", wantErr: "failed to parse QR code data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.ParseProductQR(tt.data)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQRCodeService_RoundTrip(t *testing.T) {
	service := NewQRCodeService("http://shop.test", 256, "M").(*qrcodeService)

	parsed, err := service.ParseProductQR(service.ProductLink("10"))
	require.NoError(t, err)
	assert.Equal(t, "10", parsed)
}
