package core

import (
	"context"
	"time"

	"eduledger/internal/ethereum"
	"eduledger/internal/repository"
	tokenIssuer "eduledger/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name LedgerRepository . LedgerRepository
type LedgerRepository interface {
	SaveTransaction(ctx context.Context, tx repository.Transaction) (uint, error)
	Transactions(ctx context.Context, limit int) ([]repository.Transaction, error)
	TransactionsByAddress(ctx context.Context, address string) ([]repository.Transaction, error)
	RecentTransactions(ctx context.Context, since time.Time) ([]repository.Transaction, error)
	ActivitySeries(ctx context.Context, q repository.RangeQuery) ([]repository.ActivityRow, error)
	GasSeries(ctx context.Context, q repository.RangeQuery) ([]repository.GasRow, error)
	UserActivitySeries(ctx context.Context, q repository.RangeQuery) ([]repository.UserActivityRow, error)
	ExportRows(ctx context.Context, q repository.RangeQuery, limit int) ([]repository.Transaction, error)
	Stats(ctx context.Context) (repository.StatsRow, error)
	DistinctAddressCount(ctx context.Context) (int64, error)
}

//counterfeiter:generate -o fake -fake-name MarketRepository . MarketRepository
type MarketRepository interface {
	CreateNFT(ctx context.Context, nft repository.NFT) (uint, error)
	NFTsByOwner(ctx context.Context, owner string) ([]repository.NFT, error)
	CreateAuction(ctx context.Context, auction repository.Auction) (uint, error)
	Auctions(ctx context.Context) ([]repository.Auction, error)
	CreateBid(ctx context.Context, bid repository.Bid) (uint, error)
	BidsByAuction(ctx context.Context, auctionID uint) ([]repository.Bid, error)
	CreateUser(ctx context.Context, user repository.User) (string, error)
	UserByName(ctx context.Context, name string) (repository.User, error)
	UserByWallet(ctx context.Context, wallet string) (repository.User, error)
	CreateAccreditation(ctx context.Context, accreditation repository.Accreditation) (uint, error)
	Accreditations(ctx context.Context) ([]repository.Accreditation, error)
}

//counterfeiter:generate -o fake -fake-name EthereumService . EthereumService
type EthereumService interface {
	FetchConfirmation(ctx context.Context, hash string) (ethereum.Confirmation, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}

//counterfeiter:generate -o fake -fake-name Cache . Cache
type Cache interface {
	Get(ctx context.Context, key string, dest any) bool
	Set(ctx context.Context, key string, value any, ttl time.Duration)
}
