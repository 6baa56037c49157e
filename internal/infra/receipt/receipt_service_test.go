package receipt

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReceiptService_GeneratePaymentQR(t *testing.T) {
	svc := NewReceiptService(256, "M")

	png, err := svc.GeneratePaymentQR(uuid.New(), uuid.New(), "230")
	require.NoError(t, err)
	require.NotEmpty(t, png)

	// PNG magic bytes.
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestReceiptService_ParsePaymentQR_RoundTrip(t *testing.T) {
	svc := NewReceiptService(256, "M")
	paymentID := uuid.New()

	payload, err := json.Marshal(PaymentQRData{
		PaymentID: paymentID.String(),
		OrderID:   uuid.New().String(),
		Amount:    "120",
		Type:      "payment_receipt",
	})
	require.NoError(t, err)

	parsed, err := svc.ParsePaymentQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, paymentID, parsed)
}

func TestReceiptService_ParsePaymentQR_RejectsWrongType(t *testing.T) {
	svc := NewReceiptService(256, "M")

	payload, err := json.Marshal(PaymentQRData{
		PaymentID: uuid.New().String(),
		Type:      "subscription",
	})
	require.NoError(t, err)

	_, err = svc.ParsePaymentQR(string(payload))
	assert.Error(t, err)
}

func TestReceiptService_ParsePaymentQR_RejectsGarbage(t *testing.T) {
	svc := NewReceiptService(256, "M")

	_, err := svc.ParsePaymentQR("not json")
	assert.Error(t, err)
}
