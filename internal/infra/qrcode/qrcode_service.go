// Package qrcode renders product share links as PNG QR codes.
package qrcode

import (
	"net/url"
	"strings"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	shopPath     = "/shop"
	productParam = "product"
	defaultSize  = 256
)

type qrcodeService struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance.
// Unknown error correction levels fall back to Medium.
func NewQRCodeService(baseURL string, size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		baseURL:              strings.TrimRight(baseURL, "/"),
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// ProductLink is the storefront URL a product QR code encodes.
func (s *qrcodeService) ProductLink(productID string) string {
	return s.baseURL + shopPath + "?" + url.Values{productParam: {productID}}.Encode()
}

// GenerateProductQR renders the product link as a PNG
func (s *qrcodeService) GenerateProductQR(productID string) ([]byte, error) {
	if productID == "" {
		return nil, errors.New("product id is required")
	}

	png, err := qrcode.Encode(s.ProductLink(productID), s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return png, nil
}

// ParseProductQR returns the product id from a scanned product link
func (s *qrcodeService) ParseProductQR(qrData string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(qrData))
	if err != nil {
		return "", errors.Wrap(err, "failed to parse QR code data")
	}

	if u.Path != shopPath {
		return "", errors.Errorf("invalid QR code path: %s", u.Path)
	}

	productID := u.Query().Get(productParam)
	if productID == "" {
		return "", errors.New("QR code carries no product id")
	}

	return productID, nil
}
