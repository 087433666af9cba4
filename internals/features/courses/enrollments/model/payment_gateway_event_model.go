package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PaymentGatewayEventModel keeps every raw notification the gateway
// ever sent us, for audit and webhook replays.
type PaymentGatewayEventModel struct {
	PaymentGatewayEventID uuid.UUID `gorm:"column:payment_gateway_event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_gateway_event_id"`

	PaymentGatewayEventOrderID string `gorm:"column:payment_gateway_event_order_id;type:varchar(64);not null;index" json:"payment_gateway_event_order_id"`
	PaymentGatewayEventStatus  string `gorm:"column:payment_gateway_event_status;type:varchar(32);not null" json:"payment_gateway_event_status"`

	PaymentGatewayEventPayload datatypes.JSON `gorm:"column:payment_gateway_event_payload;type:jsonb" json:"payment_gateway_event_payload"`

	PaymentGatewayEventReceivedAt time.Time `gorm:"column:payment_gateway_event_received_at;autoCreateTime" json:"payment_gateway_event_received_at"`
}

func (PaymentGatewayEventModel) TableName() string {
	return "payment_gateway_events"
}
