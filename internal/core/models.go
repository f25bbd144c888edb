package core

import "time"

const (
	StatusSuccess = "success"
	StatusPending = "pending"
	StatusFailed  = "failed"

	// DefaultOperationLabel classifies records reported without a label.
	DefaultOperationLabel = "contract interaction"

	// Marketplace operation labels used by the synthetic data generator.
	OpCreateResource   = "create educational resource NFT"
	OpPurchaseResource = "purchase educational resource"

	DefaultListLimit = 100
	MaxListLimit     = 1000
	ExportLimit      = 1000
)

// TransactionRecord is the wire shape of one mirrored transaction. Field names
// follow the dashboard's data contract.
type TransactionRecord struct {
	ID                   uint      `json:"id"`
	BlockNumber          uint64    `json:"block_number"`
	BlockTimestamp       int64     `json:"block_timestamp"`
	TransactionHash      string    `json:"transaction_hash"`
	FromAddress          string    `json:"from_address"`
	ToAddress            string    `json:"to_address"`
	Gas                  string    `json:"gas"`
	Status               string    `json:"status"`
	OperationDescription string    `json:"operation_description"`
	CreatedAt            time.Time `json:"created_at"`
}

// IngestMessage is a client-reported transaction record. The three identity
// fields (block number, block timestamp, hash) are validated upstream; the
// rest default server-side.
type IngestMessage struct {
	BlockNumber          uint64
	BlockTimestamp       int64
	TransactionHash      string
	FromAddress          string
	ToAddress            string
	Gas                  string
	OperationDescription string
}

type AnalyticsQuery struct {
	StartDate string
	EndDate   string
	Operation string
}

type ActivityPoint struct {
	Date      string `json:"date"`
	Operation string `json:"operation"`
	Count     int64  `json:"count"`
}

type GasPoint struct {
	Date      string  `json:"date"`
	Operation string  `json:"operation"`
	AvgGas    float64 `json:"avgGas"`
}

type UserActivityPoint struct {
	Date            string `json:"date"`
	ActiveSenders   int64  `json:"activeSenders"`
	ActiveReceivers int64  `json:"activeReceivers"`
}

type AnalyticsReport struct {
	ActivityData     []ActivityPoint     `json:"activityData"`
	GasData          []GasPoint          `json:"gasData"`
	UserActivityData []UserActivityPoint `json:"userActivityData"`
}

type StatsSummary struct {
	TotalTransactions int64   `json:"totalTransactions"`
	ActiveAddresses   int64   `json:"activeAddresses"`
	AvgGasUsed        string  `json:"avgGasUsed"`
	SuccessRate       float64 `json:"successRate"`
}

type AuthMessage struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}
