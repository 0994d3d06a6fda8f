package gateway

import (
	"fmt"
	"net/url"
)

// QRGenerator turns a booking share token into a scannable image URL.
// Treated as an external collaborator: callers store the returned URL
// and never block a transaction on it.
type QRGenerator interface {
	BookingQRURL(shareToken string) string
}

type qrGenerator struct {
	baseURL string
}

// NewQRGenerator renders QR codes through a public chart endpoint. The
// encoded payload is only the share token, which is meaningless without
// access to the API.
func NewQRGenerator() QRGenerator {
	return &qrGenerator{baseURL: "https://api.qrserver.com/v1/create-qr-code/"}
}

func (g *qrGenerator) BookingQRURL(shareToken string) string {
	if shareToken == "" {
		return ""
	}
	return fmt.Sprintf("%s?size=300x300&data=%s", g.baseURL, url.QueryEscape(shareToken))
}
