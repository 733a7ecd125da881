package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentURI(t *testing.T) {
	s := NewService("https://pay.example.com/")

	uri := s.PaymentURI("evt-1", 10)
	assert.Equal(t, "https://pay.example.com/pay/evt-1?amount=10.00", uri)
}

func TestPaymentQRIsPNG(t *testing.T) {
	s := NewService("https://pay.example.com")

	png, err := s.PaymentQR("evt-1", 25.5, 0)
	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
