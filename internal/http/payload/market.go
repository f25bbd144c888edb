package payload

import (
	"eduledger/internal/core"
	"eduledger/internal/repository"

	"github.com/jellydator/validation"
)

type NFTRequest struct {
	TokenID  int64  `json:"tokenId"`
	Category string `json:"category"`
	Owner    string `json:"owner"`
	Creater  string `json:"creater"`
	Royalty  int64  `json:"royalty"`
	CID      string `json:"cid"`
	Status   string `json:"status"`
	Lease    string `json:"lease"`
	Price    string `json:"price"`
}

func (r NFTRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.TokenID, validation.Min(0)),
		validation.Field(&r.Owner, validation.Required),
	)
}

func (r NFTRequest) ToModel() repository.NFT {
	return repository.NFT{
		TokenID: r.TokenID,
		Kind:    r.Category,
		Owner:   r.Owner,
		Creater: r.Creater,
		Img:     r.CID,
		Royalty: r.Royalty,
		Status:  r.Status,
		Lease:   r.Lease,
		Price:   r.Price,
	}
}

type OwnerRequest struct {
	Owner string `json:"owner"`
}

func (r OwnerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Owner, validation.Required),
	)
}

type AuctionRequest struct {
	TokenID       int64  `json:"tokenId"`
	URI           string `json:"uri"`
	Seller        string `json:"seller"`
	StartPrice    string `json:"startPrice"`
	HighestBid    string `json:"highestBid"`
	HighestBidder string `json:"highestBidder"`
	EndTime       int64  `json:"endTime"`
	IsActive      bool   `json:"isActive"`
	IsRoyalty     bool   `json:"isRoyalty"`
	Num           int64  `json:"num"`
	BidCount      int64  `json:"bidCount"`
}

func (r AuctionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.TokenID, validation.Min(0)),
		validation.Field(&r.Seller, validation.Required),
	)
}

func (r AuctionRequest) ToModel() repository.Auction {
	return repository.Auction{
		TokenID:       r.TokenID,
		URI:           r.URI,
		Seller:        r.Seller,
		StartPrice:    r.StartPrice,
		HighestBid:    r.HighestBid,
		HighestBidder: r.HighestBidder,
		EndTime:       r.EndTime,
		IsActive:      r.IsActive,
		IsRoyalty:     r.IsRoyalty,
		Num:           r.Num,
		BidCount:      r.BidCount,
	}
}

type BidRequest struct {
	AuctionID uint   `json:"auctionId"`
	Bidder    string `json:"bidder"`
	BidAmount string `json:"bidAmount"`
}

func (r BidRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AuctionID, validation.Required),
		validation.Field(&r.Bidder, validation.Required),
	)
}

func (r BidRequest) ToModel() repository.Bid {
	return repository.Bid{
		AuctionID: r.AuctionID,
		Bidder:    r.Bidder,
		BidAmount: r.BidAmount,
	}
}

type UserRequest struct {
	Name          string `json:"name"`
	Password      string `json:"password"`
	Wallet        string `json:"wallet"`
	Bio           string `json:"bio"`
	IsAccrediting bool   `json:"isAccrediting"`
	Integral      int64  `json:"integral"`
	AssessURI     string `json:"assessUri"`
}

func (r UserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 72)),
	)
}

func (r UserRequest) ToModel() repository.User {
	return repository.User{
		Name:          r.Name,
		Wallet:        r.Wallet,
		Bio:           r.Bio,
		IsAccrediting: r.IsAccrediting,
		Integral:      r.Integral,
		AssessURI:     r.AssessURI,
	}
}

type AuthRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (r AuthRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

func (r AuthRequest) ToMessage() core.AuthMessage {
	return core.AuthMessage{
		Name:     r.Name,
		Password: r.Password,
	}
}

type AccreditationRequest struct {
	Name       string `json:"name"`
	TokenID    int64  `json:"tokenId"`
	Messages   string `json:"messages"`
	Owner      string `json:"owner"`
	IsApproved bool   `json:"isApproved"`
}

func (r AccreditationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.TokenID, validation.Min(0)),
		validation.Field(&r.Owner, validation.Required),
	)
}

func (r AccreditationRequest) ToModel() repository.Accreditation {
	return repository.Accreditation{
		Name:       r.Name,
		TokenID:    r.TokenID,
		Messages:   r.Messages,
		Owner:      r.Owner,
		IsApproved: r.IsApproved,
	}
}
