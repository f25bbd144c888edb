package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var ErrUserNotFound error = errors.New("user not found")

type MarketRepo struct {
	db *gorm.DB
}

func NewMarketRepo(db *gorm.DB) *MarketRepo {
	return &MarketRepo{
		db: db,
	}
}

func (r *MarketRepo) CreateNFT(ctx context.Context, nft NFT) (uint, error) {
	if err := r.db.WithContext(ctx).Create(&nft).Error; err != nil {
		return 0, fmt.Errorf("create nft: %w", err)
	}
	return nft.ID, nil
}

func (r *MarketRepo) NFTsByOwner(ctx context.Context, owner string) ([]NFT, error) {
	var nfts []NFT
	err := r.db.WithContext(ctx).Where("owner = ?", owner).Find(&nfts).Error
	if err != nil {
		return nil, fmt.Errorf("list nfts by owner: %w", err)
	}
	return nfts, nil
}

func (r *MarketRepo) CreateAuction(ctx context.Context, auction Auction) (uint, error) {
	if err := r.db.WithContext(ctx).Create(&auction).Error; err != nil {
		return 0, fmt.Errorf("create auction: %w", err)
	}
	return auction.ID, nil
}

func (r *MarketRepo) Auctions(ctx context.Context) ([]Auction, error) {
	var auctions []Auction
	if err := r.db.WithContext(ctx).Find(&auctions).Error; err != nil {
		return nil, fmt.Errorf("list auctions: %w", err)
	}
	return auctions, nil
}

func (r *MarketRepo) CreateBid(ctx context.Context, bid Bid) (uint, error) {
	if err := r.db.WithContext(ctx).Create(&bid).Error; err != nil {
		return 0, fmt.Errorf("create bid: %w", err)
	}
	return bid.ID, nil
}

func (r *MarketRepo) BidsByAuction(ctx context.Context, auctionID uint) ([]Bid, error) {
	var bids []Bid
	err := r.db.WithContext(ctx).
		Where("auction_id = ?", auctionID).
		Order("bid_time DESC").
		Find(&bids).Error
	if err != nil {
		return nil, fmt.Errorf("list bids by auction: %w", err)
	}
	return bids, nil
}

func (r *MarketRepo) CreateUser(ctx context.Context, user User) (string, error) {
	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		return "", fmt.Errorf("create user: %w", err)
	}
	return user.ID, nil
}

func (r *MarketRepo) UserByName(ctx context.Context, name string) (User, error) {
	var user User
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by name: %w", err)
	}
	return user, nil
}

func (r *MarketRepo) UserByWallet(ctx context.Context, wallet string) (User, error) {
	var user User
	err := r.db.WithContext(ctx).Where("wallet = ?", wallet).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by wallet: %w", err)
	}
	return user, nil
}

func (r *MarketRepo) CreateAccreditation(ctx context.Context, accreditation Accreditation) (uint, error) {
	if err := r.db.WithContext(ctx).Create(&accreditation).Error; err != nil {
		return 0, fmt.Errorf("create accreditation: %w", err)
	}
	return accreditation.ID, nil
}

func (r *MarketRepo) Accreditations(ctx context.Context) ([]Accreditation, error) {
	var accreditations []Accreditation
	if err := r.db.WithContext(ctx).Find(&accreditations).Error; err != nil {
		return nil, fmt.Errorf("list accreditations: %w", err)
	}
	return accreditations, nil
}
