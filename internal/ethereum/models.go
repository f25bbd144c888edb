package ethereum

// Confirmation carries the receipt-derived fields needed to mirror one mined
// transaction.
type Confirmation struct {
	BlockNumber     uint64
	BlockTimestamp  int64
	TransactionHash string
	FromAddress     string
	ToAddress       string
	GasUsed         uint64
	Status          string
}

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)
