package fake

import (
	"context"
	"sync"
	"time"

	"eduledger/internal/repository"
)

// LedgerRepository is a hand-rolled test double for core.LedgerRepository.
type LedgerRepository struct {
	mu sync.Mutex

	SaveTransactionStub     func(ctx context.Context, tx repository.Transaction) (uint, error)
	saveTransactionArgs     []saveTransactionArgs
	saveTransactionReturns  saveTransactionReturns

	TransactionsStub    func(ctx context.Context, limit int) ([]repository.Transaction, error)
	transactionsArgs    []transactionsArgs
	transactionsReturns transactionListReturns

	TransactionsByAddressStub    func(ctx context.Context, address string) ([]repository.Transaction, error)
	transactionsByAddressArgs    []transactionsByAddressArgs
	transactionsByAddressReturns transactionListReturns

	RecentTransactionsStub    func(ctx context.Context, since time.Time) ([]repository.Transaction, error)
	recentTransactionsArgs    []recentTransactionsArgs
	recentTransactionsReturns transactionListReturns

	ActivitySeriesStub    func(ctx context.Context, q repository.RangeQuery) ([]repository.ActivityRow, error)
	activitySeriesArgs    []rangeQueryArgs
	activitySeriesReturns struct {
		rows []repository.ActivityRow
		err  error
	}

	GasSeriesStub    func(ctx context.Context, q repository.RangeQuery) ([]repository.GasRow, error)
	gasSeriesArgs    []rangeQueryArgs
	gasSeriesReturns struct {
		rows []repository.GasRow
		err  error
	}

	UserActivitySeriesStub    func(ctx context.Context, q repository.RangeQuery) ([]repository.UserActivityRow, error)
	userActivitySeriesArgs    []rangeQueryArgs
	userActivitySeriesReturns struct {
		rows []repository.UserActivityRow
		err  error
	}

	ExportRowsStub    func(ctx context.Context, q repository.RangeQuery, limit int) ([]repository.Transaction, error)
	exportRowsArgs    []exportRowsArgs
	exportRowsReturns transactionListReturns

	StatsStub    func(ctx context.Context) (repository.StatsRow, error)
	statsCalls   int
	statsReturns struct {
		row repository.StatsRow
		err error
	}

	DistinctAddressCountStub    func(ctx context.Context) (int64, error)
	distinctAddressCountCalls   int
	distinctAddressCountReturns struct {
		count int64
		err   error
	}
}

type saveTransactionArgs struct {
	ctx context.Context
	tx  repository.Transaction
}

type saveTransactionReturns struct {
	id  uint
	err error
}

type transactionsArgs struct {
	ctx   context.Context
	limit int
}

type transactionsByAddressArgs struct {
	ctx     context.Context
	address string
}

type recentTransactionsArgs struct {
	ctx   context.Context
	since time.Time
}

type rangeQueryArgs struct {
	ctx context.Context
	q   repository.RangeQuery
}

type exportRowsArgs struct {
	ctx   context.Context
	q     repository.RangeQuery
	limit int
}

type transactionListReturns struct {
	transactions []repository.Transaction
	err          error
}

func (f *LedgerRepository) SaveTransaction(ctx context.Context, tx repository.Transaction) (uint, error) {
	f.mu.Lock()
	f.saveTransactionArgs = append(f.saveTransactionArgs, saveTransactionArgs{ctx, tx})
	stub := f.SaveTransactionStub
	ret := f.saveTransactionReturns
	f.mu.Unlock()
	if stub != nil {
		return stub(ctx, tx)
	}
	return ret.id, ret.err
}

func (f *LedgerRepository) SaveTransactionReturns(id uint, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saveTransactionReturns = saveTransactionReturns{id, err}
}

func (f *LedgerRepository) SaveTransactionCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.saveTransactionArgs)
}

func (f *LedgerRepository) SaveTransactionArgsForCall(i int) (context.Context, repository.Transaction) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saveTransactionArgs[i].ctx, f.saveTransactionArgs[i].tx
}

func (f *LedgerRepository) Transactions(ctx context.Context, limit int) ([]repository.Transaction, error) {
	f.mu.Lock()
	f.transactionsArgs = append(f.transactionsArgs, transactionsArgs{ctx, limit})
	stub := f.TransactionsStub
	ret := f.transactionsReturns
	f.mu.Unlock()
	if stub != nil {
		return stub(ctx, limit)
	}
	return ret.transactions, ret.err
}

func (f *LedgerRepository) TransactionsReturns(transactions []repository.Transaction, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transactionsReturns = transactionListReturns{transactions, err}
}

func (f *LedgerRepository) TransactionsCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.transactionsArgs)
}

func (f *LedgerRepository) TransactionsArgsForCall(i int) (context.Context, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.transactionsArgs[i].ctx, f.transactionsArgs[i].limit
}

func (f *LedgerRepository) TransactionsByAddress(ctx context.Context, address string) ([]repository.Transaction, error) {
	f.mu.Lock()
	f.transactionsByAddressArgs = append(f.transactionsByAddressArgs, transactionsByAddressArgs{ctx, address})
	stub := f.TransactionsByAddressStub
	ret := f.transactionsByAddressReturns
	f.mu.Unlock()
	if stub != nil {
		return stub(ctx, address)
	}
	return ret.transactions, ret.err
}

func (f *LedgerRepository) TransactionsByAddressReturns(transactions []repository.Transaction, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transactionsByAddressReturns = transactionListReturns{transactions, err}
}

func (f *LedgerRepository) TransactionsByAddressCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.transactionsByAddressArgs)
}

func (f *LedgerRepository) TransactionsByAddressArgsForCall(i int) (context.Context, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.transactionsByAddressArgs[i].ctx, f.transactionsByAddressArgs[i].address
}

func (f *LedgerRepository) RecentTransactions(ctx context.Context, since time.Time) ([]repository.Transaction, error) {
	f.mu.Lock()
	f.recentTransactionsArgs = append(f.recentTransactionsArgs, recentTransactionsArgs{ctx, since})
	stub := f.RecentTransactionsStub
	ret := f.recentTransactionsReturns
	f.mu.Unlock()
	if stub != nil {
		return stub(ctx, since)
	}
	return ret.transactions, ret.err
}

func (f *LedgerRepository) RecentTransactionsReturns(transactions []repository.Transaction, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recentTransactionsReturns = transactionListReturns{transactions, err}
}

func (f *LedgerRepository) RecentTransactionsCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.recentTransactionsArgs)
}

func (f *LedgerRepository) RecentTransactionsArgsForCall(i int) (context.Context, time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.recentTransactionsArgs[i].ctx, f.recentTransactionsArgs[i].since
}

func (f *LedgerRepository) ActivitySeries(ctx context.Context, q repository.RangeQuery) ([]repository.ActivityRow, error) {
	f.mu.Lock()
	f.activitySeriesArgs = append(f.activitySeriesArgs, rangeQueryArgs{ctx, q})
	stub := f.ActivitySeriesStub
	ret := f.activitySeriesReturns
	f.mu.Unlock()
	if stub != nil {
		return stub(ctx, q)
	}
	return ret.rows, ret.err
}

func (f *LedgerRepository) ActivitySeriesReturns(rows []repository.ActivityRow, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.activitySeriesReturns = struct {
		rows []repository.ActivityRow
		err  error
	}{rows, err}
}

func (f *LedgerRepository) ActivitySeriesCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.activitySeriesArgs)
}

func (f *LedgerRepository) ActivitySeriesArgsForCall(i int) (context.Context, repository.RangeQuery) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.activitySeriesArgs[i].ctx, f.activitySeriesArgs[i].q
}

func (f *LedgerRepository) GasSeries(ctx context.Context, q repository.RangeQuery) ([]repository.GasRow, error) {
	f.mu.Lock()
	f.gasSeriesArgs = append(f.gasSeriesArgs, rangeQueryArgs{ctx, q})
	stub := f.GasSeriesStub
	ret := f.gasSeriesReturns
	f.mu.Unlock()
	if stub != nil {
		return stub(ctx, q)
	}
	return ret.rows, ret.err
}

func (f *LedgerRepository) GasSeriesReturns(rows []repository.GasRow, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gasSeriesReturns = struct {
		rows []repository.GasRow
		err  error
	}{rows, err}
}

func (f *LedgerRepository) GasSeriesCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.gasSeriesArgs)
}

func (f *LedgerRepository) UserActivitySeries(ctx context.Context, q repository.RangeQuery) ([]repository.UserActivityRow, error) {
	f.mu.Lock()
	f.userActivitySeriesArgs = append(f.userActivitySeriesArgs, rangeQueryArgs{ctx, q})
	stub := f.UserActivitySeriesStub
	ret := f.userActivitySeriesReturns
	f.mu.Unlock()
	if stub != nil {
		return stub(ctx, q)
	}
	return ret.rows, ret.err
}

func (f *LedgerRepository) UserActivitySeriesReturns(rows []repository.UserActivityRow, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.userActivitySeriesReturns = struct {
		rows []repository.UserActivityRow
		err  error
	}{rows, err}
}

func (f *LedgerRepository) UserActivitySeriesCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.userActivitySeriesArgs)
}

func (f *LedgerRepository) ExportRows(ctx context.Context, q repository.RangeQuery, limit int) ([]repository.Transaction, error) {
	f.mu.Lock()
	f.exportRowsArgs = append(f.exportRowsArgs, exportRowsArgs{ctx, q, limit})
	stub := f.ExportRowsStub
	ret := f.exportRowsReturns
	f.mu.Unlock()
	if stub != nil {
		return stub(ctx, q, limit)
	}
	return ret.transactions, ret.err
}

func (f *LedgerRepository) ExportRowsReturns(transactions []repository.Transaction, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.exportRowsReturns = transactionListReturns{transactions, err}
}

func (f *LedgerRepository) ExportRowsCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.exportRowsArgs)
}

func (f *LedgerRepository) ExportRowsArgsForCall(i int) (context.Context, repository.RangeQuery, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.exportRowsArgs[i].ctx, f.exportRowsArgs[i].q, f.exportRowsArgs[i].limit
}

func (f *LedgerRepository) Stats(ctx context.Context) (repository.StatsRow, error) {
	f.mu.Lock()
	f.statsCalls++
	stub := f.StatsStub
	ret := f.statsReturns
	f.mu.Unlock()
	if stub != nil {
		return stub(ctx)
	}
	return ret.row, ret.err
}

func (f *LedgerRepository) StatsReturns(row repository.StatsRow, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statsReturns = struct {
		row repository.StatsRow
		err error
	}{row, err}
}

func (f *LedgerRepository) StatsCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.statsCalls
}

func (f *LedgerRepository) DistinctAddressCount(ctx context.Context) (int64, error) {
	f.mu.Lock()
	f.distinctAddressCountCalls++
	stub := f.DistinctAddressCountStub
	ret := f.distinctAddressCountReturns
	f.mu.Unlock()
	if stub != nil {
		return stub(ctx)
	}
	return ret.count, ret.err
}

func (f *LedgerRepository) DistinctAddressCountReturns(count int64, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.distinctAddressCountReturns = struct {
		count int64
		err   error
	}{count, err}
}

func (f *LedgerRepository) DistinctAddressCountCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.distinctAddressCountCalls
}
