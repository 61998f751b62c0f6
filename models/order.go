package models

import "time"

// Order is the persisted record produced at checkout.
type Order struct {
	OrderID    string            `bson:"orderId" json:"orderId"`
	SessionID  string            `bson:"sessionId" json:"sessionId"`
	Items      []CartItem        `bson:"items" json:"items"`
	Delivery   DeliverySelection `bson:"delivery" json:"delivery"`
	Totals     CartTotals        `bson:"totals" json:"totals"`
	Promotions PromotionResult   `bson:"promotions" json:"promotions"`

	CustomerName  string `bson:"customerName" json:"customerName"`
	CustomerPhone string `bson:"customerPhone" json:"customerPhone"`
	Address       string `bson:"address,omitempty" json:"address,omitempty"`
	Notes         string `bson:"notes,omitempty" json:"notes,omitempty"`

	Status    string    `bson:"status" json:"status"`
	PaymentID string    `bson:"paymentId,omitempty" json:"paymentId,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// PaymentRequest describes how the customer wants to pay at checkout.
type PaymentRequest struct {
	Method   string  `json:"method"` // "card" or "cash"
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Invoice records the outcome of a payment attempt.
type Invoice struct {
	InvoiceID string    `json:"invoiceId"`
	OrderID   string    `json:"orderId"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Method    string    `json:"method"`
	PaymentID string    `json:"paymentId,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
