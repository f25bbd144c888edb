package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrTransactionNotFound error = errors.New("transaction not found")

// mutable columns refreshed when a known transaction hash is re-ingested
var upsertColumns = []string{
	"block_number",
	"block_timestamp",
	"from_address",
	"to_address",
	"gas",
	"status",
	"operation_description",
}

type LedgerRepo struct {
	db *gorm.DB
}

func NewLedgerRepo(db *gorm.DB) *LedgerRepo {
	return &LedgerRepo{
		db: db,
	}
}

// SaveTransaction upserts one record keyed by transaction_hash and returns the
// stored row's id. Concurrent ingestion of the same hash is serialized by the
// database's unique-key handling, not by application locking.
func (r *LedgerRepo) SaveTransaction(ctx context.Context, tx Transaction) (uint, error) {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "transaction_hash"}},
			DoUpdates: clause.AssignmentColumns(upsertColumns),
		}).
		Create(&tx).Error
	if err != nil {
		return 0, fmt.Errorf("upsert transaction: %w", err)
	}

	// The insert id is not reliable on the conflict-update path, so read the
	// surviving row's id back by hash.
	var stored Transaction
	err = r.db.WithContext(ctx).
		Select("id").
		Where("transaction_hash = ?", tx.TransactionHash).
		Take(&stored).Error
	if err != nil {
		return 0, fmt.Errorf("read back transaction id: %w", err)
	}

	return stored.ID, nil
}

func (r *LedgerRepo) Transactions(ctx context.Context, limit int) ([]Transaction, error) {
	var transactions []Transaction
	err := r.db.WithContext(ctx).
		Order("block_timestamp DESC").
		Limit(limit).
		Find(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	return transactions, nil
}

func (r *LedgerRepo) TransactionsByAddress(ctx context.Context, address string) ([]Transaction, error) {
	var transactions []Transaction
	err := r.db.WithContext(ctx).
		Where("from_address = ? OR to_address = ?", address, address).
		Order("block_timestamp DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("list transactions by address: %w", err)
	}

	return transactions, nil
}

// RecentTransactions returns records ingested since the given time, used by
// the confirmation refresh sweep.
func (r *LedgerRepo) RecentTransactions(ctx context.Context, since time.Time) ([]Transaction, error) {
	var transactions []Transaction
	err := r.db.WithContext(ctx).
		Where("created_at >= ?", since).
		Order("block_timestamp DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("list recent transactions: %w", err)
	}

	return transactions, nil
}

const activitySeriesQuery = `
SELECT DATE_FORMAT(FROM_UNIXTIME(block_timestamp), '%Y-%m-%d') AS day,
       operation_description AS operation,
       COUNT(*) AS tx_count
FROM transaction_records
WHERE block_timestamp >= UNIX_TIMESTAMP(?) AND block_timestamp < UNIX_TIMESTAMP(?) + 86400`

const activitySeriesSuffix = `
GROUP BY day, operation
ORDER BY day ASC`

// ActivitySeries counts transactions per calendar day and operation label.
// The day boundary is derived from block_timestamp, not from created_at.
func (r *LedgerRepo) ActivitySeries(ctx context.Context, q RangeQuery) ([]ActivityRow, error) {
	var rows []ActivityRow
	query, args := rangeFiltered(activitySeriesQuery, activitySeriesSuffix, q)
	err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("activity series: %w", err)
	}

	return rows, nil
}

const gasSeriesQuery = `
SELECT DATE_FORMAT(FROM_UNIXTIME(block_timestamp), '%Y-%m-%d') AS day,
       operation_description AS operation,
       AVG(CAST(gas AS DECIMAL(65,0))) AS avg_gas
FROM transaction_records
WHERE block_timestamp >= UNIX_TIMESTAMP(?) AND block_timestamp < UNIX_TIMESTAMP(?) + 86400`

// GasSeries averages gas per calendar day and operation label.
func (r *LedgerRepo) GasSeries(ctx context.Context, q RangeQuery) ([]GasRow, error) {
	var rows []GasRow
	query, args := rangeFiltered(gasSeriesQuery, activitySeriesSuffix, q)
	err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("gas series: %w", err)
	}

	return rows, nil
}

const userActivityQuery = `
SELECT DATE_FORMAT(FROM_UNIXTIME(block_timestamp), '%Y-%m-%d') AS day,
       COUNT(DISTINCT from_address) AS active_senders,
       COUNT(DISTINCT to_address) AS active_receivers
FROM transaction_records
WHERE block_timestamp >= UNIX_TIMESTAMP(?) AND block_timestamp < UNIX_TIMESTAMP(?) + 86400`

const userActivitySuffix = `
GROUP BY day
ORDER BY day ASC`

// UserActivitySeries counts distinct sender and receiver addresses per day.
func (r *LedgerRepo) UserActivitySeries(ctx context.Context, q RangeQuery) ([]UserActivityRow, error) {
	var rows []UserActivityRow
	query, args := rangeFiltered(userActivityQuery, userActivitySuffix, q)
	err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("user activity series: %w", err)
	}

	return rows, nil
}

// ExportRows returns the raw records for a range, newest first, bounded by a
// query-level limit.
func (r *LedgerRepo) ExportRows(ctx context.Context, q RangeQuery, limit int) ([]Transaction, error) {
	var transactions []Transaction
	tx := r.db.WithContext(ctx).
		Where("block_timestamp >= UNIX_TIMESTAMP(?) AND block_timestamp < UNIX_TIMESTAMP(?) + 86400", q.StartDate, q.EndDate)
	if q.Operation != "" && q.Operation != "all" {
		tx = tx.Where("operation_description = ?", q.Operation)
	}

	err := tx.Order("block_timestamp DESC").
		Limit(limit).
		Find(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("export rows: %w", err)
	}

	return transactions, nil
}

const statsQuery = `
SELECT COUNT(*) AS total_transactions,
       COALESCE(SUM(status = 'success'), 0) AS successful_count,
       COALESCE(SUM(CAST(gas AS DECIMAL(65,0))), 0) AS total_gas
FROM transaction_records`

const distinctAddressQuery = `
SELECT COUNT(*) AS address_count FROM (
    SELECT from_address AS address FROM transaction_records WHERE from_address <> ''
    UNION
    SELECT to_address FROM transaction_records WHERE to_address <> ''
) AS addresses`

func (r *LedgerRepo) Stats(ctx context.Context) (StatsRow, error) {
	var row StatsRow
	err := r.db.WithContext(ctx).Raw(statsQuery).Scan(&row).Error
	if err != nil {
		return StatsRow{}, fmt.Errorf("stats summary: %w", err)
	}

	return row, nil
}

func (r *LedgerRepo) DistinctAddressCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(distinctAddressQuery).Scan(&count).Error
	if err != nil {
		return 0, fmt.Errorf("distinct address count: %w", err)
	}

	return count, nil
}

func rangeFiltered(query, suffix string, q RangeQuery) (string, []any) {
	args := []any{q.StartDate, q.EndDate}
	if q.Operation != "" && q.Operation != "all" {
		query += "\nAND operation_description = ?"
		args = append(args, q.Operation)
	}
	return query + suffix, args
}
