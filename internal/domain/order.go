package domain

import (
	"encoding/json"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusFailed    OrderStatus = "FAILED"
)

// Order is a renter's batch of quotes submitted for atomic confirmation.
// The row doubles as the work-queue record for the confirmation worker:
// status tracks the batch state machine (PENDING -> CONFIRMED | FAILED)
// and Attempts counts worker deliveries.
type Order struct {
	ID          string      `json:"id"`
	RenterName  string      `json:"renter_name"`
	RenterEmail string      `json:"renter_email,omitempty"`
	Quotes      []Quote     `json:"quotes"`
	Payload     []byte      `json:"-"` // serialized quote list as stored
	Status      OrderStatus `json:"status"`
	Attempts    int32       `json:"attempts"`
	LastError   string      `json:"last_error,omitempty"`
	CreatedOn   time.Time   `json:"created_on"`
	UpdatedOn   time.Time   `json:"updated_on"`
}

// DecodeQuotes deserializes the stored payload. A payload that no longer
// decodes is terminal: redelivery cannot fix it, so the worker fails the
// order instead of retrying.
func (o *Order) DecodeQuotes() ([]Quote, error) {
	var quotes []Quote
	if err := json.Unmarshal(o.Payload, &quotes); err != nil {
		return nil, ErrMalformedOrder
	}
	if len(quotes) == 0 {
		return nil, ErrMalformedOrder
	}
	return quotes, nil
}
