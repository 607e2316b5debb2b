package service

// QRCodeService generates and reads product share codes.
type QRCodeService interface {
	// GenerateProductQR renders a PNG QR code linking to the product page
	GenerateProductQR(productID string) ([]byte, error)

	// ParseProductQR extracts the product id from the encoded link
	ParseProductQR(qrData string) (string, error)
}
