package payload

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"

	"eduledger/internal/core"

	"github.com/jellydator/validation"
)

var txHashRegex = regexp.MustCompile(`^0x[a-fA-F0-9]{64}$`)
var digitsRegex = regexp.MustCompile(`^[0-9]+$`)

// Numeric accepts either a JSON number or a numeric string; wallet clients
// serialize big integers both ways.
type Numeric string

func (n *Numeric) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))
	if s == "null" {
		s = ""
	}
	*n = Numeric(s)
	return nil
}

type SaveTransactionRequest struct {
	BlockNumber          Numeric `json:"blockNumber"`
	BlockTimestamp       Numeric `json:"blockTimestamp"`
	TransactionHash      string  `json:"transactionHash"`
	FromAddress          string  `json:"fromAddress"`
	ToAddress            string  `json:"toAddress"`
	Gas                  Numeric `json:"gas"`
	OperationDescription string  `json:"operationDescription"`
}

func (r SaveTransactionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BlockNumber, validation.Required, validation.Match(digitsRegex)),
		validation.Field(&r.BlockTimestamp, validation.Required, validation.Match(digitsRegex)),
		validation.Field(&r.TransactionHash, validation.Required, validation.Match(txHashRegex)),
		validation.Field(&r.Gas, validation.Match(digitsRegex)),
	)
}

func (r SaveTransactionRequest) ToMessage() (core.IngestMessage, error) {
	blockNumber, err := strconv.ParseUint(string(r.BlockNumber), 10, 64)
	if err != nil {
		return core.IngestMessage{}, fmt.Errorf("parse block number: %w", err)
	}

	blockTimestamp, err := strconv.ParseInt(string(r.BlockTimestamp), 10, 64)
	if err != nil {
		return core.IngestMessage{}, fmt.Errorf("parse block timestamp: %w", err)
	}

	return core.IngestMessage{
		BlockNumber:          blockNumber,
		BlockTimestamp:       blockTimestamp,
		TransactionHash:      r.TransactionHash,
		FromAddress:          r.FromAddress,
		ToAddress:            r.ToAddress,
		Gas:                  string(r.Gas),
		OperationDescription: r.OperationDescription,
	}, nil
}

type ObserveRequest struct {
	TransactionHash      string `json:"transactionHash"`
	OperationDescription string `json:"operationDescription"`
}

func (r ObserveRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.TransactionHash, validation.Required, validation.Match(txHashRegex)),
	)
}

type GenerateTestDataRequest struct {
	Count int `json:"count"`
}

func (r GenerateTestDataRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Count, validation.Required, validation.Min(1), validation.Max(10000)),
	)
}
