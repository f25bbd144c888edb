package handler

import (
	"context"
	"net/http"

	"eduledger/internal/core"
	"eduledger/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name MirrorService . MirrorService
type MirrorService interface {
	Ingest(ctx context.Context, msg core.IngestMessage) (uint, error)
	Observe(ctx context.Context, hash string, operation string) (core.TransactionRecord, error)
	Transactions(ctx context.Context, limit int) ([]core.TransactionRecord, error)
	TransactionsByAddress(ctx context.Context, address string) ([]core.TransactionRecord, error)
	Analytics(ctx context.Context, q core.AnalyticsQuery) (core.AnalyticsReport, error)
	Export(ctx context.Context, q core.AnalyticsQuery) ([]core.TransactionRecord, error)
	Stats(ctx context.Context) (core.StatsSummary, error)
	GenerateTestData(ctx context.Context, count int) (int, error)
}

//counterfeiter:generate -o fake -fake-name MarketService . MarketService
type MarketService interface {
	RegisterUser(ctx context.Context, user repository.User, password string) (string, error)
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	SaveNFT(ctx context.Context, nft repository.NFT) (uint, error)
	NFTsByOwner(ctx context.Context, owner string) ([]repository.NFT, error)
	AddAuction(ctx context.Context, auction repository.Auction) (uint, error)
	Auctions(ctx context.Context) ([]repository.Auction, error)
	AddBid(ctx context.Context, bid repository.Bid) (uint, error)
	BidsByAuction(ctx context.Context, auctionID uint) ([]repository.Bid, error)
	UserByWallet(ctx context.Context, wallet string) (repository.User, error)
	AddAccreditation(ctx context.Context, accreditation repository.Accreditation) (uint, error)
	Accreditations(ctx context.Context) ([]repository.Accreditation, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
