package core_test

import (
	"context"
	"errors"
	"strings"
	"time"

	"eduledger/internal/core"
	"eduledger/internal/core/fake"
	"eduledger/internal/ethereum"
	"eduledger/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Mirror", func() {
	var (
		fakeRepo   *fake.LedgerRepository
		fakeEth    *fake.EthereumService
		fakeCache  *fake.Cache
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		mirror *core.Mirror

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.LedgerRepository)
		fakeEth = new(fake.EthereumService)
		fakeCache = new(fake.Cache)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		mirror = core.NewMirror(fakeLogger, fakeRepo, fakeEth, fakeCache)

		fakeErr = errors.New("fake error")
	})

	Describe("Ingest", func() {
		var (
			msg core.IngestMessage
			id  uint
			err error
		)

		BeforeEach(func() {
			msg = core.IngestMessage{
				BlockNumber:          123456,
				BlockTimestamp:       1700000000,
				TransactionHash:      "0x" + strings.Repeat("ab", 32),
				FromAddress:          "0x1111111111111111111111111111111111111111",
				ToAddress:            "0x2222222222222222222222222222222222222222",
				Gas:                  "21000",
				OperationDescription: "purchase educational resource",
			}
		})

		JustBeforeEach(func() {
			id, err = mirror.Ingest(ctx, msg)
		})

		When("the record is complete", func() {
			BeforeEach(func() {
				fakeRepo.SaveTransactionReturns(7, nil)
			})

			It("should upsert the record with success status", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(id).To(Equal(uint(7)))

				Expect(fakeRepo.SaveTransactionCallCount()).To(Equal(1))
				_, tx := fakeRepo.SaveTransactionArgsForCall(0)
				Expect(tx.TransactionHash).To(Equal(msg.TransactionHash))
				Expect(tx.Status).To(Equal(core.StatusSuccess))
				Expect(tx.Gas).To(Equal("21000"))
				Expect(tx.OperationDescription).To(Equal(msg.OperationDescription))
			})
		})

		When("gas and operation are missing", func() {
			BeforeEach(func() {
				msg.Gas = ""
				msg.OperationDescription = ""
				fakeRepo.SaveTransactionReturns(8, nil)
			})

			It("should apply the server-side defaults", func() {
				Expect(err).NotTo(HaveOccurred())

				_, tx := fakeRepo.SaveTransactionArgsForCall(0)
				Expect(tx.Gas).To(Equal("0"))
				Expect(tx.OperationDescription).To(Equal(core.DefaultOperationLabel))
			})
		})

		When("the upsert fails", func() {
			BeforeEach(func() {
				fakeRepo.SaveTransactionReturns(0, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(id).To(BeZero())
			})
		})
	})

	Describe("Observe", func() {
		var (
			hash      string
			operation string
			record    core.TransactionRecord
			err       error
			conf      ethereum.Confirmation
		)

		BeforeEach(func() {
			hash = "0x" + strings.Repeat("cd", 32)
			operation = "create educational resource NFT"
			conf = ethereum.Confirmation{
				BlockNumber:     99,
				BlockTimestamp:  1700000100,
				TransactionHash: hash,
				FromAddress:     "0x1111111111111111111111111111111111111111",
				ToAddress:       "0x2222222222222222222222222222222222222222",
				GasUsed:         53000,
				Status:          ethereum.StatusFailed,
			}
		})

		JustBeforeEach(func() {
			record, err = mirror.Observe(ctx, hash, operation)
		})

		When("the node confirms the transaction", func() {
			BeforeEach(func() {
				fakeEth.FetchConfirmationReturns(conf, nil)
				fakeRepo.SaveTransactionReturns(5, nil)
			})

			It("should persist and return the confirmed record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ID).To(Equal(uint(5)))
				Expect(record.BlockNumber).To(Equal(uint64(99)))
				Expect(record.Gas).To(Equal("53000"))
				Expect(record.Status).To(Equal(ethereum.StatusFailed))
				Expect(record.OperationDescription).To(Equal(operation))

				Expect(fakeEth.FetchConfirmationCallCount()).To(Equal(1))
				Expect(fakeEth.FetchConfirmationArgsForCall(0)).To(Equal(hash))
			})
		})

		When("no operation label is given", func() {
			BeforeEach(func() {
				operation = ""
				fakeEth.FetchConfirmationReturns(conf, nil)
				fakeRepo.SaveTransactionReturns(5, nil)
			})

			It("should use the default label", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.OperationDescription).To(Equal(core.DefaultOperationLabel))
			})
		})

		When("the node call fails", func() {
			BeforeEach(func() {
				fakeEth.FetchConfirmationReturns(ethereum.Confirmation{}, fakeErr)
			})

			It("should return a node unavailable error without saving", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err).To(MatchError(core.ErrNodeUnavailable))
				Expect(fakeRepo.SaveTransactionCallCount()).To(Equal(0))
			})
		})

		When("the save fails after confirmation", func() {
			BeforeEach(func() {
				fakeEth.FetchConfirmationReturns(conf, nil)
				fakeRepo.SaveTransactionReturns(0, fakeErr)
			})

			It("should return an error not marked as node unavailable", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(errors.Is(err, core.ErrNodeUnavailable)).To(BeFalse())
			})
		})
	})

	Describe("Transactions", func() {
		var (
			limit   int
			records []core.TransactionRecord
			err     error
		)

		BeforeEach(func() {
			limit = 0
			fakeRepo.TransactionsReturns([]repository.Transaction{
				{ID: 1, TransactionHash: "0x1"},
				{ID: 2, TransactionHash: "0x2"},
			}, nil)
		})

		JustBeforeEach(func() {
			records, err = mirror.Transactions(ctx, limit)
		})

		When("no limit is given", func() {
			It("should apply the default limit", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(2))

				_, argLimit := fakeRepo.TransactionsArgsForCall(0)
				Expect(argLimit).To(Equal(core.DefaultListLimit))
			})
		})

		When("the limit exceeds the maximum", func() {
			BeforeEach(func() {
				limit = 50000
			})

			It("should clamp the limit", func() {
				Expect(err).NotTo(HaveOccurred())

				_, argLimit := fakeRepo.TransactionsArgsForCall(0)
				Expect(argLimit).To(Equal(core.MaxListLimit))
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				fakeRepo.TransactionsReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("TransactionsByAddress", func() {
		var (
			address string
			records []core.TransactionRecord
			err     error
		)

		BeforeEach(func() {
			address = "0x1111111111111111111111111111111111111111"
		})

		JustBeforeEach(func() {
			records, err = mirror.TransactionsByAddress(ctx, address)
		})

		When("the address has activity", func() {
			BeforeEach(func() {
				fakeRepo.TransactionsByAddressReturns([]repository.Transaction{
					{ID: 1, FromAddress: address},
				}, nil)
			})

			It("should return the records", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(1))

				_, argAddress := fakeRepo.TransactionsByAddressArgsForCall(0)
				Expect(argAddress).To(Equal(address))
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				fakeRepo.TransactionsByAddressReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Analytics", func() {
		var (
			query  core.AnalyticsQuery
			report core.AnalyticsReport
			err    error
		)

		BeforeEach(func() {
			query = core.AnalyticsQuery{
				StartDate: "2026-08-01",
				EndDate:   "2026-08-31",
				Operation: "all",
			}

			fakeRepo.ActivitySeriesReturns([]repository.ActivityRow{
				{Day: "2026-08-01", Operation: "purchase educational resource", TxCount: 4},
			}, nil)
			fakeRepo.GasSeriesReturns([]repository.GasRow{
				{Day: "2026-08-01", Operation: "purchase educational resource", AvgGas: 42000},
			}, nil)
			fakeRepo.UserActivitySeriesReturns([]repository.UserActivityRow{
				{Day: "2026-08-01", ActiveSenders: 3, ActiveReceivers: 2},
			}, nil)
		})

		JustBeforeEach(func() {
			report, err = mirror.Analytics(ctx, query)
		})

		When("the cache misses", func() {
			It("should build the report from the three series", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(report.ActivityData).To(HaveLen(1))
				Expect(report.ActivityData[0].Count).To(Equal(int64(4)))
				Expect(report.GasData[0].AvgGas).To(Equal(42000.0))
				Expect(report.UserActivityData[0].ActiveSenders).To(Equal(int64(3)))

				Expect(fakeRepo.ActivitySeriesCallCount()).To(Equal(1))
				_, rq := fakeRepo.ActivitySeriesArgsForCall(0)
				Expect(rq.StartDate).To(Equal(query.StartDate))
				Expect(rq.Operation).To(Equal("all"))
			})

			It("should cache the report under the range key", func() {
				Expect(fakeCache.SetCallCount()).To(Equal(1))
				key, _, _ := fakeCache.SetArgsForCall(0)
				Expect(key).To(Equal("analytics:2026-08-01:2026-08-31:all"))
			})
		})

		When("the cache hits", func() {
			BeforeEach(func() {
				fakeCache.GetStub = func(ctx context.Context, key string, dest any) bool {
					*dest.(*core.AnalyticsReport) = core.AnalyticsReport{
						ActivityData: []core.ActivityPoint{{Date: "2026-08-02", Count: 9}},
					}
					return true
				}
			})

			It("should return the cached report without querying", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(report.ActivityData[0].Count).To(Equal(int64(9)))
				Expect(fakeRepo.ActivitySeriesCallCount()).To(Equal(0))
			})
		})

		When("a series query fails", func() {
			BeforeEach(func() {
				fakeRepo.GasSeriesReturns(nil, fakeErr)
			})

			It("should return the error and cache nothing", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeCache.SetCallCount()).To(Equal(0))
			})
		})
	})

	Describe("Export", func() {
		var (
			query   core.AnalyticsQuery
			records []core.TransactionRecord
			err     error
		)

		BeforeEach(func() {
			query = core.AnalyticsQuery{StartDate: "2026-08-01", EndDate: "2026-08-31"}
			fakeRepo.ExportRowsReturns([]repository.Transaction{
				{ID: 1, TransactionHash: "0x1"},
			}, nil)
		})

		JustBeforeEach(func() {
			records, err = mirror.Export(ctx, query)
		})

		When("rows exist in the range", func() {
			It("should pass the hard export cap to the query", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(1))

				Expect(fakeRepo.ExportRowsCallCount()).To(Equal(1))
				_, rq, limit := fakeRepo.ExportRowsArgsForCall(0)
				Expect(rq.StartDate).To(Equal(query.StartDate))
				Expect(limit).To(Equal(core.ExportLimit))
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				fakeRepo.ExportRowsReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Stats", func() {
		var (
			summary core.StatsSummary
			err     error
		)

		JustBeforeEach(func() {
			summary, err = mirror.Stats(ctx)
		})

		When("records exist", func() {
			BeforeEach(func() {
				fakeRepo.StatsReturns(repository.StatsRow{
					TotalTransactions: 4,
					SuccessfulCount:   3,
					TotalGas:          "100000",
				}, nil)
				fakeRepo.DistinctAddressCountReturns(6, nil)
			})

			It("should compute the averages", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(summary.TotalTransactions).To(Equal(int64(4)))
				Expect(summary.ActiveAddresses).To(Equal(int64(6)))
				Expect(summary.AvgGasUsed).To(Equal("25000"))
				Expect(summary.SuccessRate).To(Equal(75.0))
			})
		})

		When("the table is empty", func() {
			BeforeEach(func() {
				fakeRepo.StatsReturns(repository.StatsRow{TotalGas: "0"}, nil)
				fakeRepo.DistinctAddressCountReturns(0, nil)
			})

			It("should return zero values without dividing", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(summary.TotalTransactions).To(BeZero())
				Expect(summary.AvgGasUsed).To(Equal("0"))
				Expect(summary.SuccessRate).To(BeZero())
			})
		})

		When("the gas total exceeds the float range", func() {
			BeforeEach(func() {
				fakeRepo.StatsReturns(repository.StatsRow{
					TotalTransactions: 2,
					SuccessfulCount:   2,
					TotalGas:          "36893488147419103232", // 2^65
				}, nil)
				fakeRepo.DistinctAddressCountReturns(2, nil)
			})

			It("should average without losing precision", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(summary.AvgGasUsed).To(Equal("18446744073709551616"))
			})
		})

		When("the stats query fails", func() {
			BeforeEach(func() {
				fakeRepo.StatsReturns(repository.StatsRow{}, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GenerateTestData", func() {
		var (
			count    int
			inserted int
			err      error
		)

		BeforeEach(func() {
			count = 6
			fakeRepo.SaveTransactionReturns(1, nil)
		})

		JustBeforeEach(func() {
			inserted, err = mirror.GenerateTestData(ctx, count)
		})

		When("all records insert", func() {
			It("should ingest count records alternating the marketplace labels", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(inserted).To(Equal(count))
				Expect(fakeRepo.SaveTransactionCallCount()).To(Equal(count))

				for i := 0; i < count; i++ {
					_, tx := fakeRepo.SaveTransactionArgsForCall(i)
					Expect(tx.TransactionHash).To(HavePrefix("0x"))
					Expect(tx.TransactionHash).To(HaveLen(66))
					Expect(tx.Status).To(Equal(core.StatusSuccess))
					if i%2 == 0 {
						Expect(tx.OperationDescription).To(Equal(core.OpCreateResource))
					} else {
						Expect(tx.OperationDescription).To(Equal(core.OpPurchaseResource))
					}
				}
			})
		})

		When("an insert fails midway", func() {
			BeforeEach(func() {
				calls := 0
				fakeRepo.SaveTransactionStub = func(ctx context.Context, tx repository.Transaction) (uint, error) {
					calls++
					if calls > 2 {
						return 0, fakeErr
					}
					return uint(calls), nil
				}
			})

			It("should report how many made it in", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(inserted).To(Equal(2))
			})
		})
	})

	Describe("RefreshRecent", func() {
		var (
			window    time.Duration
			refreshed int
			err       error
		)

		BeforeEach(func() {
			window = 24 * time.Hour
		})

		JustBeforeEach(func() {
			refreshed, err = mirror.RefreshRecent(ctx, window)
		})

		When("recent records confirm", func() {
			BeforeEach(func() {
				fakeRepo.RecentTransactionsReturns([]repository.Transaction{
					{TransactionHash: "0x1", OperationDescription: "purchase educational resource"},
					{TransactionHash: "0x2", OperationDescription: "contract interaction"},
				}, nil)
				fakeEth.FetchConfirmationStub = func(ctx context.Context, hash string) (ethereum.Confirmation, error) {
					return ethereum.Confirmation{
						TransactionHash: hash,
						BlockNumber:     10,
						GasUsed:         30000,
						Status:          ethereum.StatusSuccess,
					}, nil
				}
				fakeRepo.SaveTransactionReturns(1, nil)
			})

			It("should refresh every record keeping its operation label", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(refreshed).To(Equal(2))
				Expect(fakeEth.FetchConfirmationCallCount()).To(Equal(2))
				Expect(fakeRepo.SaveTransactionCallCount()).To(Equal(2))

				labels := map[string]string{}
				for i := 0; i < 2; i++ {
					_, tx := fakeRepo.SaveTransactionArgsForCall(i)
					labels[tx.TransactionHash] = tx.OperationDescription
					Expect(tx.Gas).To(Equal("30000"))
				}
				Expect(labels["0x1"]).To(Equal("purchase educational resource"))
				Expect(labels["0x2"]).To(Equal("contract interaction"))
			})
		})

		When("one confirmation fails", func() {
			BeforeEach(func() {
				fakeRepo.RecentTransactionsReturns([]repository.Transaction{
					{TransactionHash: "0x1"},
					{TransactionHash: "0x2"},
				}, nil)
				fakeEth.FetchConfirmationStub = func(ctx context.Context, hash string) (ethereum.Confirmation, error) {
					if hash == "0x1" {
						return ethereum.Confirmation{}, fakeErr
					}
					return ethereum.Confirmation{TransactionHash: hash}, nil
				}
				fakeRepo.SaveTransactionReturns(1, nil)
			})

			It("should skip the failure and refresh the rest", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(refreshed).To(Equal(1))
				Expect(fakeRepo.SaveTransactionCallCount()).To(Equal(1))
			})
		})

		When("nothing was ingested recently", func() {
			BeforeEach(func() {
				fakeRepo.RecentTransactionsReturns(nil, nil)
			})

			It("should do nothing", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(refreshed).To(BeZero())
				Expect(fakeEth.FetchConfirmationCallCount()).To(Equal(0))
			})
		})

		When("listing recent records fails", func() {
			BeforeEach(func() {
				fakeRepo.RecentTransactionsReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
