package core

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"eduledger/internal/cache"
	"eduledger/internal/repository"

	"github.com/panjf2000/ants/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	nodeCallTimeout    = 15 * time.Second
	refreshWorkerCount = 8
)

// ErrNodeUnavailable marks failures talking to the Ethereum node, as opposed
// to failures persisting what the node returned.
var ErrNodeUnavailable error = errors.New("ethereum node unavailable")

// Mirror persists on-chain transaction observations and serves the aggregates
// derived from them.
type Mirror struct {
	logs       *zap.SugaredLogger
	repo       LedgerRepository
	ethService EthereumService
	cache      Cache
}

func NewMirror(logger *zap.SugaredLogger, repo LedgerRepository, ethereumService EthereumService, cache Cache) *Mirror {
	return &Mirror{
		logs:       logger,
		repo:       repo,
		ethService: ethereumService,
		cache:      cache,
	}
}

// Ingest upserts one client-reported record. Reporting happens after the
// client holds a receipt, so status is always recorded as success here; the
// refresh sweep corrects it later if the chain disagrees.
func (m *Mirror) Ingest(ctx context.Context, msg IngestMessage) (uint, error) {
	gas := msg.Gas
	if gas == "" {
		gas = "0"
	}
	operation := msg.OperationDescription
	if operation == "" {
		operation = DefaultOperationLabel
	}

	id, err := m.repo.SaveTransaction(ctx, repository.Transaction{
		BlockNumber:          msg.BlockNumber,
		BlockTimestamp:       msg.BlockTimestamp,
		TransactionHash:      msg.TransactionHash,
		FromAddress:          msg.FromAddress,
		ToAddress:            msg.ToAddress,
		Gas:                  gas,
		Status:               StatusSuccess,
		OperationDescription: operation,
	})
	if err != nil {
		return 0, fmt.Errorf("save transaction: %w", err)
	}

	m.logs.Infow("transaction ingested", "hash", msg.TransactionHash, "id", id, "operation", operation)
	return id, nil
}

// Observe fetches the receipt and block for a submitted hash from the node
// and ingests the derived record through the same upsert path.
func (m *Mirror) Observe(ctx context.Context, hash string, operation string) (TransactionRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, nodeCallTimeout)
	defer cancel()

	conf, err := m.ethService.FetchConfirmation(ctx, hash)
	if err != nil {
		return TransactionRecord{}, fmt.Errorf("fetch confirmation: %w: %w", err, ErrNodeUnavailable)
	}

	if operation == "" {
		operation = DefaultOperationLabel
	}

	record := repository.Transaction{
		BlockNumber:          conf.BlockNumber,
		BlockTimestamp:       conf.BlockTimestamp,
		TransactionHash:      conf.TransactionHash,
		FromAddress:          conf.FromAddress,
		ToAddress:            conf.ToAddress,
		Gas:                  strconv.FormatUint(conf.GasUsed, 10),
		Status:               conf.Status,
		OperationDescription: operation,
	}

	id, err := m.repo.SaveTransaction(ctx, record)
	if err != nil {
		return TransactionRecord{}, fmt.Errorf("save transaction: %w", err)
	}

	record.ID = id
	m.logs.Infow("transaction observed", "hash", hash, "block", conf.BlockNumber, "status", conf.Status)
	return recordFromRepo(record), nil
}

func (m *Mirror) Transactions(ctx context.Context, limit int) ([]TransactionRecord, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	transactions, err := m.repo.Transactions(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	return recordsFromRepo(transactions), nil
}

func (m *Mirror) TransactionsByAddress(ctx context.Context, address string) ([]TransactionRecord, error) {
	transactions, err := m.repo.TransactionsByAddress(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("list transactions by address: %w", err)
	}

	return recordsFromRepo(transactions), nil
}

// Analytics produces the per-day series for the dashboard. Reports are cached
// briefly since the dashboard polls the same window repeatedly.
func (m *Mirror) Analytics(ctx context.Context, q AnalyticsQuery) (AnalyticsReport, error) {
	cacheKey := fmt.Sprintf("analytics:%s:%s:%s", q.StartDate, q.EndDate, q.Operation)

	var report AnalyticsReport
	if m.cache.Get(ctx, cacheKey, &report) {
		return report, nil
	}

	rq := repository.RangeQuery{
		StartDate: q.StartDate,
		EndDate:   q.EndDate,
		Operation: q.Operation,
	}

	activity, err := m.repo.ActivitySeries(ctx, rq)
	if err != nil {
		return AnalyticsReport{}, fmt.Errorf("activity series: %w", err)
	}

	gas, err := m.repo.GasSeries(ctx, rq)
	if err != nil {
		return AnalyticsReport{}, fmt.Errorf("gas series: %w", err)
	}

	userActivity, err := m.repo.UserActivitySeries(ctx, rq)
	if err != nil {
		return AnalyticsReport{}, fmt.Errorf("user activity series: %w", err)
	}

	report = AnalyticsReport{
		ActivityData:     make([]ActivityPoint, len(activity)),
		GasData:          make([]GasPoint, len(gas)),
		UserActivityData: make([]UserActivityPoint, len(userActivity)),
	}
	for i, row := range activity {
		report.ActivityData[i] = ActivityPoint{Date: row.Day, Operation: row.Operation, Count: row.TxCount}
	}
	for i, row := range gas {
		report.GasData[i] = GasPoint{Date: row.Day, Operation: row.Operation, AvgGas: row.AvgGas}
	}
	for i, row := range userActivity {
		report.UserActivityData[i] = UserActivityPoint{
			Date:            row.Day,
			ActiveSenders:   row.ActiveSenders,
			ActiveReceivers: row.ActiveReceivers,
		}
	}

	m.cache.Set(ctx, cacheKey, report, cache.TTLAnalytics)
	return report, nil
}

// Export returns the raw rows for a range, hard-capped at ExportLimit.
func (m *Mirror) Export(ctx context.Context, q AnalyticsQuery) ([]TransactionRecord, error) {
	rows, err := m.repo.ExportRows(ctx, repository.RangeQuery{
		StartDate: q.StartDate,
		EndDate:   q.EndDate,
		Operation: q.Operation,
	}, ExportLimit)
	if err != nil {
		return nil, fmt.Errorf("export rows: %w", err)
	}

	return recordsFromRepo(rows), nil
}

// Stats summarizes the whole table for the dashboard's statistic cards. Gas
// values are decimal strings, so the average is computed with arbitrary
// precision rather than floats.
func (m *Mirror) Stats(ctx context.Context) (StatsSummary, error) {
	row, err := m.repo.Stats(ctx)
	if err != nil {
		return StatsSummary{}, fmt.Errorf("stats: %w", err)
	}

	addresses, err := m.repo.DistinctAddressCount(ctx)
	if err != nil {
		return StatsSummary{}, fmt.Errorf("distinct addresses: %w", err)
	}

	summary := StatsSummary{
		TotalTransactions: row.TotalTransactions,
		ActiveAddresses:   addresses,
		AvgGasUsed:        "0",
	}
	if row.TotalTransactions > 0 {
		totalGas, err := decimal.NewFromString(row.TotalGas)
		if err != nil {
			return StatsSummary{}, fmt.Errorf("parse total gas %q: %w", row.TotalGas, err)
		}
		summary.AvgGasUsed = totalGas.
			Div(decimal.NewFromInt(row.TotalTransactions)).
			Round(0).
			String()
		summary.SuccessRate = float64(row.SuccessfulCount) / float64(row.TotalTransactions) * 100
	}

	return summary, nil
}

// GenerateTestData ingests count synthetic records through the regular upsert
// path, alternating between the two marketplace labels.
func (m *Mirror) GenerateTestData(ctx context.Context, count int) (int, error) {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().Unix()
	baseBlock := uint64(rnd.Int63n(1_000_000)) + 1_000_000

	inserted := 0
	for i := 0; i < count; i++ {
		operation := OpCreateResource
		if i%2 == 1 {
			operation = OpPurchaseResource
		}

		msg := IngestMessage{
			BlockNumber:          baseBlock + uint64(i),
			BlockTimestamp:       now - rnd.Int63n(30*24*3600),
			TransactionHash:      randomHex(rnd, 32),
			FromAddress:          randomHex(rnd, 20),
			ToAddress:            randomHex(rnd, 20),
			Gas:                  strconv.FormatInt(21_000+rnd.Int63n(480_000), 10),
			OperationDescription: operation,
		}

		if _, err := m.Ingest(ctx, msg); err != nil {
			return inserted, fmt.Errorf("ingest synthetic record %d: %w", i, err)
		}
		inserted++
	}

	return inserted, nil
}

// RefreshRecent re-fetches confirmations for records ingested inside the
// window and upserts the refreshed values, keeping each record's operation
// label. Individual failures are logged and skipped.
func (m *Mirror) RefreshRecent(ctx context.Context, window time.Duration) (int, error) {
	recent, err := m.repo.RecentTransactions(ctx, time.Now().Add(-window))
	if err != nil {
		return 0, fmt.Errorf("recent transactions: %w", err)
	}
	if len(recent) == 0 {
		return 0, nil
	}

	pool, err := ants.NewPool(refreshWorkerCount)
	if err != nil {
		return 0, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		refreshed int
	)

	for _, tx := range recent {
		tx := tx
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()

			callCtx, cancel := context.WithTimeout(ctx, nodeCallTimeout)
			defer cancel()

			conf, err := m.ethService.FetchConfirmation(callCtx, tx.TransactionHash)
			if err != nil {
				m.logs.Errorw("confirmation refresh failed", "hash", tx.TransactionHash, "error", err)
				return
			}

			_, err = m.repo.SaveTransaction(ctx, repository.Transaction{
				BlockNumber:          conf.BlockNumber,
				BlockTimestamp:       conf.BlockTimestamp,
				TransactionHash:      tx.TransactionHash,
				FromAddress:          conf.FromAddress,
				ToAddress:            conf.ToAddress,
				Gas:                  strconv.FormatUint(conf.GasUsed, 10),
				Status:               conf.Status,
				OperationDescription: tx.OperationDescription,
			})
			if err != nil {
				m.logs.Errorw("confirmation refresh save failed", "hash", tx.TransactionHash, "error", err)
				return
			}

			mu.Lock()
			refreshed++
			mu.Unlock()
		})
		if err != nil {
			wg.Done()
			m.logs.Errorw("submit refresh task failed", "hash", tx.TransactionHash, "error", err)
		}
	}

	wg.Wait()
	return refreshed, nil
}

func recordFromRepo(tx repository.Transaction) TransactionRecord {
	return TransactionRecord{
		ID:                   tx.ID,
		BlockNumber:          tx.BlockNumber,
		BlockTimestamp:       tx.BlockTimestamp,
		TransactionHash:      tx.TransactionHash,
		FromAddress:          tx.FromAddress,
		ToAddress:            tx.ToAddress,
		Gas:                  tx.Gas,
		Status:               tx.Status,
		OperationDescription: tx.OperationDescription,
		CreatedAt:            tx.CreatedAt,
	}
}

func recordsFromRepo(transactions []repository.Transaction) []TransactionRecord {
	records := make([]TransactionRecord, len(transactions))
	for i, tx := range transactions {
		records[i] = recordFromRepo(tx)
	}
	return records
}

func randomHex(rnd *rand.Rand, size int) string {
	const digits = "0123456789abcdef"
	buf := make([]byte, 2+size*2)
	buf[0], buf[1] = '0', 'x'
	for i := 2; i < len(buf); i++ {
		buf[i] = digits[rnd.Intn(len(digits))]
	}
	return string(buf)
}
