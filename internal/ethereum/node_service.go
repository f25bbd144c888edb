package ethereum

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var ErrTransactionPending error = errors.New("transaction is not mined yet")

type EthService struct {
	client EthClient
}

func NewEthService(ethClient EthClient) *EthService {
	return &EthService{
		client: ethClient,
	}
}

// FetchConfirmation retrieves the receipt and block header for a mined
// transaction. RPC errors are returned as-is; retrying is the caller's choice.
func (s *EthService) FetchConfirmation(ctx context.Context, hashStr string) (Confirmation, error) {
	hash := common.HexToHash(hashStr)

	tx, pending, err := s.client.TransactionByHash(ctx, hash)
	if err != nil {
		return Confirmation{}, fmt.Errorf("transaction by hash %q: %w", hashStr, err)
	}
	if pending {
		return Confirmation{}, fmt.Errorf("transaction %q: %w", hashStr, ErrTransactionPending)
	}

	receipt, err := s.client.TransactionReceipt(ctx, hash)
	if err != nil {
		return Confirmation{}, fmt.Errorf("transaction receipt %q: %w", hashStr, err)
	}

	header, err := s.client.HeaderByNumber(ctx, receipt.BlockNumber)
	if err != nil {
		return Confirmation{}, fmt.Errorf("block header %s: %w", receipt.BlockNumber, err)
	}

	chainID, err := s.client.NetworkID(ctx)
	if err != nil {
		return Confirmation{}, fmt.Errorf("network id: %w", err)
	}

	signer := types.LatestSignerForChainID(chainID)
	from, err := types.Sender(signer, tx)
	if err != nil {
		return Confirmation{}, fmt.Errorf("recover sender: %w", err)
	}

	var to string
	if tx.To() != nil {
		to = tx.To().Hex()
	} else if receipt.ContractAddress != (common.Address{}) {
		to = receipt.ContractAddress.Hex()
	}

	status := StatusSuccess
	if receipt.Status != types.ReceiptStatusSuccessful {
		status = StatusFailed
	}

	return Confirmation{
		BlockNumber:     receipt.BlockNumber.Uint64(),
		BlockTimestamp:  int64(header.Time),
		TransactionHash: tx.Hash().Hex(),
		FromAddress:     from.Hex(),
		ToAddress:       to,
		GasUsed:         receipt.GasUsed,
		Status:          status,
	}, nil
}
