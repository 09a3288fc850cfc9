package kafka

import "time"

// StockMovementEvent records one applied ledger delta.
type StockMovementEvent struct {
	EventID         string    `json:"event_id"`
	EventType       string    `json:"event_type"`
	ItemID          uint      `json:"item_id"`
	QuantityChange  int       `json:"quantity_change"`
	NewQuantity     int       `json:"new_quantity"`
	TransactionID   uint      `json:"transaction_id"`
	TransactionType string    `json:"transaction_type"`
	ActorID         uint      `json:"actor_id"`
	Timestamp       time.Time `json:"timestamp"`
}

// RequestProcessedEvent records a stock request reaching a terminal state.
type RequestProcessedEvent struct {
	EventID     string    `json:"event_id"`
	EventType   string    `json:"event_type"`
	RequestID   uint      `json:"request_id"`
	RequestCode string    `json:"request_code"`
	ItemID      uint      `json:"item_id"`
	Quantity    int       `json:"quantity"`
	Decision    string    `json:"decision"`
	ProcessedBy uint      `json:"processed_by"`
	Timestamp   time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeStockMovement    = "stock.movement"
	EventTypeRequestProcessed = "stock_request.processed"
)

// Kafka topics
const (
	TopicStockMovement    = "stock-movement"
	TopicRequestProcessed = "stock-request-processed"
)
