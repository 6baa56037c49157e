package service

import (
	"github.com/google/uuid"
)

// ReceiptService generates scannable receipts for payments. A receipt is a QR
// code encoding the payment reference, rendered as a PNG so a supplier can
// verify a settlement at a stall without typing identifiers.
type ReceiptService interface {
	// GeneratePaymentQR renders a QR code PNG referencing the payment.
	GeneratePaymentQR(paymentID uuid.UUID, orderID uuid.UUID, amount string) ([]byte, error)

	// ParsePaymentQR parses QR payload data and returns the payment ID.
	ParsePaymentQR(qrData string) (uuid.UUID, error)
}
