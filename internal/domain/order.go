package domain

import "time"

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderInExecute OrderStatus = "in_execute"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// Order is the aggregate root binding a user, a set of details and a
// denormalized total. TotalPrice is recomputed from the details on every
// mutation that touches them.
type Order struct {
	ID         int64       `json:"id" gorm:"column:id;primaryKey"`
	UserID     int64       `json:"user_id" gorm:"column:user_id;index"`
	Details    []Detail    `json:"details" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	TotalPrice float64     `json:"total_price" gorm:"column:total_price"`
	Status     OrderStatus `json:"status" gorm:"column:status"`
	CreatedAt  time.Time   `json:"created_at" gorm:"column:created_at"`
}

func (Order) TableName() string { return "orders" }

// Detail is one order line: a service at a quantity (hours for rentals).
type Detail struct {
	ID        int64    `json:"id" gorm:"column:id;primaryKey"`
	OrderID   int64    `json:"order_id" gorm:"column:order_id;index"`
	ServiceID int64    `json:"service_id" gorm:"column:service_id;index"`
	Service   *Service `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	Quantity  int      `json:"quantity" gorm:"column:quantity"`
}

func (Detail) TableName() string { return "details" }
