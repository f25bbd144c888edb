package fake

import (
	"context"
	"sync"

	"eduledger/internal/core"
)

// MirrorService is a hand-rolled test double for handler.MirrorService.
type MirrorService struct {
	mu sync.Mutex

	IngestStub    func(ctx context.Context, msg core.IngestMessage) (uint, error)
	ingestArgs    []core.IngestMessage
	ingestReturns struct {
		id  uint
		err error
	}

	ObserveStub    func(ctx context.Context, hash string, operation string) (core.TransactionRecord, error)
	observeArgs    []observeArgs
	observeReturns struct {
		record core.TransactionRecord
		err    error
	}

	TransactionsStub    func(ctx context.Context, limit int) ([]core.TransactionRecord, error)
	transactionsArgs    []int
	transactionsReturns recordListReturns

	TransactionsByAddressStub    func(ctx context.Context, address string) ([]core.TransactionRecord, error)
	transactionsByAddressArgs    []string
	transactionsByAddressReturns recordListReturns

	AnalyticsStub    func(ctx context.Context, q core.AnalyticsQuery) (core.AnalyticsReport, error)
	analyticsArgs    []core.AnalyticsQuery
	analyticsReturns struct {
		report core.AnalyticsReport
		err    error
	}

	ExportStub    func(ctx context.Context, q core.AnalyticsQuery) ([]core.TransactionRecord, error)
	exportArgs    []core.AnalyticsQuery
	exportReturns recordListReturns

	StatsStub    func(ctx context.Context) (core.StatsSummary, error)
	statsCalls   int
	statsReturns struct {
		summary core.StatsSummary
		err     error
	}

	GenerateTestDataStub    func(ctx context.Context, count int) (int, error)
	generateTestDataArgs    []int
	generateTestDataReturns struct {
		inserted int
		err      error
	}
}

type observeArgs struct {
	hash      string
	operation string
}

type recordListReturns struct {
	records []core.TransactionRecord
	err     error
}

func (f *MirrorService) Ingest(ctx context.Context, msg core.IngestMessage) (uint, error) {
	f.mu.Lock()
	f.ingestArgs = append(f.ingestArgs, msg)
	stub := f.IngestStub
	ret := f.ingestReturns
	f.mu.Unlock()
	if stub != nil {
		return stub(ctx, msg)
	}
	return ret.id, ret.err
}

func (f *MirrorService) IngestReturns(id uint, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ingestReturns = struct {
		id  uint
		err error
	}{id, err}
}

func (f *MirrorService) IngestCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.ingestArgs)
}

func (f *MirrorService) IngestArgsForCall(i int) core.IngestMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ingestArgs[i]
}

func (f *MirrorService) Observe(ctx context.Context, hash string, operation string) (core.TransactionRecord, error) {
	f.mu.Lock()
	f.observeArgs = append(f.observeArgs, observeArgs{hash, operation})
	stub := f.ObserveStub
	ret := f.observeReturns
	f.mu.Unlock()
	if stub != nil {
		return stub(ctx, hash, operation)
	}
	return ret.record, ret.err
}

func (f *MirrorService) ObserveReturns(record core.TransactionRecord, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.observeReturns = struct {
		record core.TransactionRecord
		err    error
	}{record, err}
}

func (f *MirrorService) ObserveCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.observeArgs)
}

func (f *MirrorService) ObserveArgsForCall(i int) (string, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.observeArgs[i].hash, f.observeArgs[i].operation
}

func (f *MirrorService) Transactions(ctx context.Context, limit int) ([]core.TransactionRecord, error) {
	f.mu.Lock()
	f.transactionsArgs = append(f.transactionsArgs, limit)
	stub := f.TransactionsStub
	ret := f.transactionsReturns
	f.mu.Unlock()
	if stub != nil {
		return stub(ctx, limit)
	}
	return ret.records, ret.err
}

func (f *MirrorService) TransactionsReturns(records []core.TransactionRecord, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transactionsReturns = recordListReturns{records, err}
}

func (f *MirrorService) TransactionsCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.transactionsArgs)
}

func (f *MirrorService) TransactionsArgsForCall(i int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.transactionsArgs[i]
}

func (f *MirrorService) TransactionsByAddress(ctx context.Context, address string) ([]core.TransactionRecord, error) {
	f.mu.Lock()
	f.transactionsByAddressArgs = append(f.transactionsByAddressArgs, address)
	stub := f.TransactionsByAddressStub
	ret := f.transactionsByAddressReturns
	f.mu.Unlock()
	if stub != nil {
		return stub(ctx, address)
	}
	return ret.records, ret.err
}

func (f *MirrorService) TransactionsByAddressReturns(records []core.TransactionRecord, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transactionsByAddressReturns = recordListReturns{records, err}
}

func (f *MirrorService) TransactionsByAddressCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.transactionsByAddressArgs)
}

func (f *MirrorService) TransactionsByAddressArgsForCall(i int) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.transactionsByAddressArgs[i]
}

func (f *MirrorService) Analytics(ctx context.Context, q core.AnalyticsQuery) (core.AnalyticsReport, error) {
	f.mu.Lock()
	f.analyticsArgs = append(f.analyticsArgs, q)
	stub := f.AnalyticsStub
	ret := f.analyticsReturns
	f.mu.Unlock()
	if stub != nil {
		return stub(ctx, q)
	}
	return ret.report, ret.err
}

func (f *MirrorService) AnalyticsReturns(report core.AnalyticsReport, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.analyticsReturns = struct {
		report core.AnalyticsReport
		err    error
	}{report, err}
}

func (f *MirrorService) AnalyticsCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.analyticsArgs)
}

func (f *MirrorService) AnalyticsArgsForCall(i int) core.AnalyticsQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.analyticsArgs[i]
}

func (f *MirrorService) Export(ctx context.Context, q core.AnalyticsQuery) ([]core.TransactionRecord, error) {
	f.mu.Lock()
	f.exportArgs = append(f.exportArgs, q)
	stub := f.ExportStub
	ret := f.exportReturns
	f.mu.Unlock()
	if stub != nil {
		return stub(ctx, q)
	}
	return ret.records, ret.err
}

func (f *MirrorService) ExportReturns(records []core.TransactionRecord, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.exportReturns = recordListReturns{records, err}
}

func (f *MirrorService) ExportCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.exportArgs)
}

func (f *MirrorService) ExportArgsForCall(i int) core.AnalyticsQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.exportArgs[i]
}

func (f *MirrorService) Stats(ctx context.Context) (core.StatsSummary, error) {
	f.mu.Lock()
	f.statsCalls++
	stub := f.StatsStub
	ret := f.statsReturns
	f.mu.Unlock()
	if stub != nil {
		return stub(ctx)
	}
	return ret.summary, ret.err
}

func (f *MirrorService) StatsReturns(summary core.StatsSummary, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statsReturns = struct {
		summary core.StatsSummary
		err     error
	}{summary, err}
}

func (f *MirrorService) StatsCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.statsCalls
}

func (f *MirrorService) GenerateTestData(ctx context.Context, count int) (int, error) {
	f.mu.Lock()
	f.generateTestDataArgs = append(f.generateTestDataArgs, count)
	stub := f.GenerateTestDataStub
	ret := f.generateTestDataReturns
	f.mu.Unlock()
	if stub != nil {
		return stub(ctx, count)
	}
	return ret.inserted, ret.err
}

func (f *MirrorService) GenerateTestDataReturns(inserted int, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.generateTestDataReturns = struct {
		inserted int
		err      error
	}{inserted, err}
}

func (f *MirrorService) GenerateTestDataCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.generateTestDataArgs)
}

func (f *MirrorService) GenerateTestDataArgsForCall(i int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.generateTestDataArgs[i]
}
