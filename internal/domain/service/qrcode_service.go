package service

// QRCodeService defines the interface for album share QR code generation and parsing
type QRCodeService interface {
	// GenerateAlbumQR renders a PNG QR code pointing at the album's public page
	GenerateAlbumQR(albumID int64) ([]byte, error)

	// ParseAlbumQR extracts the album ID from QR code content
	ParseAlbumQR(qrData string) (int64, error)
}
