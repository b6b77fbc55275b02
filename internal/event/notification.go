package event

import "time"

// Notification event kinds published to the notifications topic.
const (
	TypeOrderPlaced    = "order.placed"
	TypeOrderConfirmed = "order.confirmed"
	TypeOrderCancelled = "order.cancelled"
	TypeOTP            = "auth.otp"
)

// Notification is the wire format shared by the Kafka producers, the
// notification worker and the WebSocket push hub.
type Notification struct {
	Type      string    `json:"type"`
	Recipient string    `json:"recipient"`
	OrderID   string    `json:"orderId,omitempty"`
	Status    string    `json:"status,omitempty"`
	Message   string    `json:"message"`
	SentAt    time.Time `json:"sentAt"`
}
