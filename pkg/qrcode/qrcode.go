// Package qrcode renders payment URIs as QR code images. The QR only encodes
// the URI; no settlement or verification happens here.
package qrcode

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

const DefaultSize = 256

type Service struct {
	baseURL string
}

func NewService(baseURL string) *Service {
	return &Service{
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// PaymentURI builds the payment link for an event.
func (s *Service) PaymentURI(eventID string, amount float64) string {
	return fmt.Sprintf("%s/pay/%s?amount=%.2f", s.baseURL, eventID, amount)
}

// PaymentQR renders the payment URI as a PNG byte slice.
func (s *Service) PaymentQR(eventID string, amount float64, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultSize
	}

	png, err := qrcode.Encode(s.PaymentURI(eventID, amount), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code PNG: %w", err)
	}

	return png, nil
}
