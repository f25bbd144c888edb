package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eduledger/internal/repository"
	tokenIssuer "eduledger/pkg/jwt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrUserNotFound error = errors.New("user not found")

// Market handles the marketplace's relational records: NFTs, auctions, bids,
// users and accreditations. All cross-row consistency lives in the smart
// contract; these rows only mirror it.
type Market struct {
	logs      *zap.SugaredLogger
	repo      MarketRepository
	jwtIssuer JWTIssuer
}

func NewMarket(logger *zap.SugaredLogger, repo MarketRepository, jwt JWTIssuer) *Market {
	return &Market{
		logs:      logger,
		repo:      repo,
		jwtIssuer: jwt,
	}
}

// RegisterUser stores a new marketplace user with a bcrypt password hash.
func (m *Market) RegisterUser(ctx context.Context, user repository.User, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user.ID = uuid.NewString()
	user.PasswordHash = string(hash)

	id, err := m.repo.CreateUser(ctx, user)
	if err != nil {
		return "", fmt.Errorf("create user: %w", err)
	}

	m.logs.Infow("user registered", "userId", id, "name", user.Name)
	return id, nil
}

// Authenticate checks the credentials against the stored hash and issues a
// signed JWT on success.
func (m *Market) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	user, err := m.repo.UserByName(ctx, msg.Name)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   user.Name,
		Subject:    user.ID,
		Expiration: 24,
	}
	token := m.jwtIssuer.Generate(tokenInfo)
	signed, err := m.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

func (m *Market) SaveNFT(ctx context.Context, nft repository.NFT) (uint, error) {
	id, err := m.repo.CreateNFT(ctx, nft)
	if err != nil {
		return 0, fmt.Errorf("save nft: %w", err)
	}

	m.logs.Infow("nft saved", "nftId", id, "tokenId", nft.TokenID, "owner", nft.Owner)
	return id, nil
}

func (m *Market) NFTsByOwner(ctx context.Context, owner string) ([]repository.NFT, error) {
	nfts, err := m.repo.NFTsByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("nfts by owner: %w", err)
	}
	return nfts, nil
}

func (m *Market) AddAuction(ctx context.Context, auction repository.Auction) (uint, error) {
	id, err := m.repo.CreateAuction(ctx, auction)
	if err != nil {
		return 0, fmt.Errorf("add auction: %w", err)
	}

	m.logs.Infow("auction added", "auctionId", id, "tokenId", auction.TokenID)
	return id, nil
}

func (m *Market) Auctions(ctx context.Context) ([]repository.Auction, error) {
	auctions, err := m.repo.Auctions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list auctions: %w", err)
	}
	return auctions, nil
}

// AddBid stores a bid, stamping it with the server clock. Clients never send
// bid_time; listings order on it.
func (m *Market) AddBid(ctx context.Context, bid repository.Bid) (uint, error) {
	if bid.BidTime.IsZero() {
		bid.BidTime = time.Now()
	}

	id, err := m.repo.CreateBid(ctx, bid)
	if err != nil {
		return 0, fmt.Errorf("add bid: %w", err)
	}

	m.logs.Infow("bid added", "bidId", id, "auctionId", bid.AuctionID, "bidder", bid.Bidder)
	return id, nil
}

func (m *Market) BidsByAuction(ctx context.Context, auctionID uint) ([]repository.Bid, error) {
	bids, err := m.repo.BidsByAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("bids by auction: %w", err)
	}
	return bids, nil
}

func (m *Market) UserByWallet(ctx context.Context, wallet string) (repository.User, error) {
	user, err := m.repo.UserByWallet(ctx, wallet)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return repository.User{}, ErrUserNotFound
		}
		return repository.User{}, fmt.Errorf("user by wallet: %w", err)
	}
	return user, nil
}

func (m *Market) AddAccreditation(ctx context.Context, accreditation repository.Accreditation) (uint, error) {
	id, err := m.repo.CreateAccreditation(ctx, accreditation)
	if err != nil {
		return 0, fmt.Errorf("add accreditation: %w", err)
	}

	m.logs.Infow("accreditation added", "accreditationId", id, "tokenId", accreditation.TokenID)
	return id, nil
}

func (m *Market) Accreditations(ctx context.Context) ([]repository.Accreditation, error) {
	accreditations, err := m.repo.Accreditations(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accreditations: %w", err)
	}
	return accreditations, nil
}
