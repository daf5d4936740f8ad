package qrcode

import (
	"fmt"
	"strconv"
	"strings"

	"spinrate/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const albumPathSegment = "/albums/"

type qrcodeService struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance.
// Generated codes encode "<baseURL>/albums/<id>".
func NewQRCodeService(baseURL string, size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		baseURL:              strings.TrimRight(baseURL, "/"),
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateAlbumQR generates a PNG QR code linking to the album page
func (s *qrcodeService) GenerateAlbumQR(albumID int64) ([]byte, error) {
	if albumID <= 0 {
		return nil, fmt.Errorf("invalid album ID: %d", albumID)
	}

	content := s.baseURL + albumPathSegment + strconv.FormatInt(albumID, 10)

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseAlbumQR parses QR code content and returns the album ID
func (s *qrcodeService) ParseAlbumQR(qrData string) (int64, error) {
	prefix := s.baseURL + albumPathSegment
	if !strings.HasPrefix(qrData, prefix) {
		return 0, fmt.Errorf("QR code does not point to an album: %s", qrData)
	}

	albumID, err := strconv.ParseInt(strings.TrimPrefix(qrData, prefix), 10, 64)
	if err != nil || albumID <= 0 {
		return 0, fmt.Errorf("failed to parse album ID from %q", qrData)
	}

	return albumID, nil
}
