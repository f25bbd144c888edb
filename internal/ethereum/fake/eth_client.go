package fake

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// EthClient is a hand-rolled test double for ethereum.EthClient.
type EthClient struct {
	mu sync.Mutex

	TransactionByHashStub    func(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error)
	transactionByHashArgs    []common.Hash
	transactionByHashReturns struct {
		tx      *types.Transaction
		pending bool
		err     error
	}

	TransactionReceiptStub    func(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	transactionReceiptArgs    []common.Hash
	transactionReceiptReturns struct {
		receipt *types.Receipt
		err     error
	}

	HeaderByNumberStub    func(ctx context.Context, number *big.Int) (*types.Header, error)
	headerByNumberArgs    []*big.Int
	headerByNumberReturns struct {
		header *types.Header
		err    error
	}

	NetworkIDStub    func(ctx context.Context) (*big.Int, error)
	networkIDCalls   int
	networkIDReturns struct {
		id  *big.Int
		err error
	}
}

func (f *EthClient) TransactionByHash(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error) {
	f.mu.Lock()
	f.transactionByHashArgs = append(f.transactionByHashArgs, hash)
	stub := f.TransactionByHashStub
	ret := f.transactionByHashReturns
	f.mu.Unlock()
	if stub != nil {
		return stub(ctx, hash)
	}
	return ret.tx, ret.pending, ret.err
}

func (f *EthClient) TransactionByHashReturns(tx *types.Transaction, pending bool, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transactionByHashReturns = struct {
		tx      *types.Transaction
		pending bool
		err     error
	}{tx, pending, err}
}

func (f *EthClient) TransactionByHashCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.transactionByHashArgs)
}

func (f *EthClient) TransactionByHashArgsForCall(i int) common.Hash {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.transactionByHashArgs[i]
}

func (f *EthClient) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	f.mu.Lock()
	f.transactionReceiptArgs = append(f.transactionReceiptArgs, txHash)
	stub := f.TransactionReceiptStub
	ret := f.transactionReceiptReturns
	f.mu.Unlock()
	if stub != nil {
		return stub(ctx, txHash)
	}
	return ret.receipt, ret.err
}

func (f *EthClient) TransactionReceiptReturns(receipt *types.Receipt, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transactionReceiptReturns = struct {
		receipt *types.Receipt
		err     error
	}{receipt, err}
}

func (f *EthClient) TransactionReceiptCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.transactionReceiptArgs)
}

func (f *EthClient) TransactionReceiptArgsForCall(i int) common.Hash {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.transactionReceiptArgs[i]
}

func (f *EthClient) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	f.mu.Lock()
	f.headerByNumberArgs = append(f.headerByNumberArgs, number)
	stub := f.HeaderByNumberStub
	ret := f.headerByNumberReturns
	f.mu.Unlock()
	if stub != nil {
		return stub(ctx, number)
	}
	return ret.header, ret.err
}

func (f *EthClient) HeaderByNumberReturns(header *types.Header, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.headerByNumberReturns = struct {
		header *types.Header
		err    error
	}{header, err}
}

func (f *EthClient) HeaderByNumberCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.headerByNumberArgs)
}

func (f *EthClient) HeaderByNumberArgsForCall(i int) *big.Int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.headerByNumberArgs[i]
}

func (f *EthClient) NetworkID(ctx context.Context) (*big.Int, error) {
	f.mu.Lock()
	f.networkIDCalls++
	stub := f.NetworkIDStub
	ret := f.networkIDReturns
	f.mu.Unlock()
	if stub != nil {
		return stub(ctx)
	}
	return ret.id, ret.err
}

func (f *EthClient) NetworkIDReturns(id *big.Int, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.networkIDReturns = struct {
		id  *big.Int
		err error
	}{id, err}
}

func (f *EthClient) NetworkIDCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.networkIDCalls
}
