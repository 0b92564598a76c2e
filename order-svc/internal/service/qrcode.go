package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// TrackingQRGenerator encodes a link to the live order tracker. The code is
// printed on the receipt so the customer can follow the order without
// logging in again.
type TrackingQRGenerator struct {
	BaseURL string
}

func NewTrackingQRGenerator(baseURL string) TrackingQRGenerator {
	return TrackingQRGenerator{BaseURL: baseURL}
}

func (g TrackingQRGenerator) Generate(orderID int) ([]byte, error) {
	trackURL := fmt.Sprintf("%s/track.html?order_id=%d", g.BaseURL, orderID)
	return qrcode.Encode(trackURL, qrcode.Medium, 256)
}

var _ QRGenerator = TrackingQRGenerator{}
