package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	OrderPending   = "pending"
	OrderPreparing = "preparing"
	OrderReady     = "ready"
	OrderCompleted = "completed"
	OrderCancelled = "cancelled"
)

const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

const (
	PaymentMethodOnline = "online"
	PaymentMethodCash   = "cash"
)

type OrderItem struct {
	MenuItem primitive.ObjectID `bson:"menuItem" json:"menuItem"`
	Name     string             `bson:"name" json:"name"`
	Price    float64            `bson:"price" json:"price"`
	Quantity int                `bson:"quantity" json:"quantity"`
	Subtotal float64            `bson:"subtotal" json:"subtotal"`
}

type StatusEntry struct {
	Status    string    `bson:"status" json:"status"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

type Order struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User                primitive.ObjectID `bson:"user" json:"user"`
	Vendor              primitive.ObjectID `bson:"vendor" json:"vendor"`
	Items               []OrderItem        `bson:"items" json:"items"`
	TotalAmount         float64            `bson:"totalAmount" json:"totalAmount"`
	Status              string             `bson:"status" json:"status"`
	PaymentStatus       string             `bson:"paymentStatus" json:"paymentStatus"`
	PaymentMethod       string             `bson:"paymentMethod" json:"paymentMethod"`
	PaymentID           string             `bson:"paymentId,omitempty" json:"paymentId,omitempty"`
	PickupTime          *time.Time         `bson:"pickupTime,omitempty" json:"pickupTime,omitempty"`
	SpecialInstructions string             `bson:"specialInstructions,omitempty" json:"specialInstructions,omitempty"`
	StatusHistory       []StatusEntry      `bson:"statusHistory" json:"statusHistory"`
	CreatedAt           time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// AppendStatus sets the order status and records the transition in the
// history log. Exactly one entry is appended per call.
func (o *Order) AppendStatus(status string) {
	o.Status = status
	o.StatusHistory = append(o.StatusHistory, StatusEntry{
		Status:    status,
		Timestamp: time.Now(),
	})
}

func ValidOrderStatus(status string) bool {
	switch status {
	case OrderPending, OrderPreparing, OrderReady, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// statusFlow is the allowed transition table. Completed and cancelled
// orders are terminal.
var statusFlow = map[string][]string{
	OrderPending:   {OrderPreparing, OrderCancelled},
	OrderPreparing: {OrderReady},
	OrderReady:     {OrderCompleted},
}

func CanTransition(from, to string) bool {
	for _, next := range statusFlow[from] {
		if next == to {
			return true
		}
	}
	return false
}
