// Package receipt renders scannable payment receipts as QR code PNGs.
package receipt

import (
	"encoding/json"
	"fmt"

	"bazaar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type receiptService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// PaymentQRData is the payload encoded into a payment receipt QR code.
type PaymentQRData struct {
	PaymentID string `json:"payment_id"`
	OrderID   string `json:"order_id"`
	Amount    string `json:"amount"`
	Type      string `json:"type"`
}

// NewReceiptService creates a new receipt service instance.
func NewReceiptService(size int, errorCorrectionLevel string) service.ReceiptService {
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

	return &receiptService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePaymentQR renders a QR code PNG referencing the payment.
func (s *receiptService) GeneratePaymentQR(paymentID uuid.UUID, orderID uuid.UUID, amount string) ([]byte, error) {
	data := PaymentQRData{
		PaymentID: paymentID.String(),
		OrderID:   orderID.String(),
		Amount:    amount,
		Type:      "payment_receipt",
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal receipt data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParsePaymentQR parses QR payload data and returns the payment ID.
func (s *receiptService) ParsePaymentQR(qrData string) (uuid.UUID, error) {
	var data PaymentQRData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal receipt data: %w", err)
	}

	if data.Type != "payment_receipt" {
		return uuid.Nil, fmt.Errorf("invalid receipt type: %s", data.Type)
	}

	paymentID, err := uuid.Parse(data.PaymentID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse payment ID: %w", err)
	}

	return paymentID, nil
}
