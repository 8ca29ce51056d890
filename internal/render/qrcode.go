package render

import (
	"github.com/skip2/go-qrcode"

	"github.com/rook-computer/kexpboard/internal/assets"
)

// GenerateQRBitmap returns the QR modules for payload at one pixel per
// module, without the quiet-zone border. If payload is empty, it returns
// (nil, nil).
func GenerateQRBitmap(payload string) (assets.Bitmap, error) {
	if payload == "" {
		return nil, nil
	}

	qrCode, err := qrcode.New(payload, qrcode.Low)
	if err != nil {
		return nil, err
	}
	qrCode.DisableBorder = true

	return assets.Bitmap(qrCode.Bitmap()), nil
}
