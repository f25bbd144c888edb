package fake

import (
	"context"
	"net/http"
	"sync"

	"eduledger/internal/core"
	"eduledger/internal/repository"
)

// MarketService is a hand-rolled test double for handler.MarketService.
type MarketService struct {
	mu sync.Mutex

	RegisterUserStub    func(ctx context.Context, user repository.User, password string) (string, error)
	registerUserArgs    []registerUserArgs
	registerUserReturns stringIDReturns

	AuthenticateStub    func(ctx context.Context, msg core.AuthMessage) (string, error)
	authenticateArgs    []core.AuthMessage
	authenticateReturns stringIDReturns

	SaveNFTStub    func(ctx context.Context, nft repository.NFT) (uint, error)
	saveNFTArgs    []repository.NFT
	saveNFTReturns uintIDReturns

	NFTsByOwnerStub    func(ctx context.Context, owner string) ([]repository.NFT, error)
	nftsByOwnerArgs    []string
	nftsByOwnerReturns struct {
		nfts []repository.NFT
		err  error
	}

	AddAuctionStub    func(ctx context.Context, auction repository.Auction) (uint, error)
	addAuctionArgs    []repository.Auction
	addAuctionReturns uintIDReturns

	AuctionsStub    func(ctx context.Context) ([]repository.Auction, error)
	auctionsCalls   int
	auctionsReturns struct {
		auctions []repository.Auction
		err      error
	}

	AddBidStub    func(ctx context.Context, bid repository.Bid) (uint, error)
	addBidArgs    []repository.Bid
	addBidReturns uintIDReturns

	BidsByAuctionStub    func(ctx context.Context, auctionID uint) ([]repository.Bid, error)
	bidsByAuctionArgs    []uint
	bidsByAuctionReturns struct {
		bids []repository.Bid
		err  error
	}

	UserByWalletStub    func(ctx context.Context, wallet string) (repository.User, error)
	userByWalletArgs    []string
	userByWalletReturns struct {
		user repository.User
		err  error
	}

	AddAccreditationStub    func(ctx context.Context, accreditation repository.Accreditation) (uint, error)
	addAccreditationArgs    []repository.Accreditation
	addAccreditationReturns uintIDReturns

	AccreditationsStub    func(ctx context.Context) ([]repository.Accreditation, error)
	accreditationsCalls   int
	accreditationsReturns struct {
		accreditations []repository.Accreditation
		err            error
	}
}

type registerUserArgs struct {
	user     repository.User
	password string
}

type stringIDReturns struct {
	value string
	err   error
}

type uintIDReturns struct {
	id  uint
	err error
}

func (f *MarketService) RegisterUser(ctx context.Context, user repository.User, password string) (string, error) {
	f.mu.Lock()
	f.registerUserArgs = append(f.registerUserArgs, registerUserArgs{user, password})
	stub := f.RegisterUserStub
	ret := f.registerUserReturns
	f.mu.Unlock()
	if stub != nil {
		return stub(ctx, user, password)
	}
	return ret.value, ret.err
}

func (f *MarketService) RegisterUserReturns(id string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registerUserReturns = stringIDReturns{id, err}
}

func (f *MarketService) RegisterUserCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.registerUserArgs)
}

func (f *MarketService) RegisterUserArgsForCall(i int) (repository.User, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.registerUserArgs[i].user, f.registerUserArgs[i].password
}

func (f *MarketService) Authenticate(ctx context.Context, msg core.AuthMessage) (string, error) {
	f.mu.Lock()
	f.authenticateArgs = append(f.authenticateArgs, msg)
	stub := f.AuthenticateStub
	ret := f.authenticateReturns
	f.mu.Unlock()
	if stub != nil {
		return stub(ctx, msg)
	}
	return ret.value, ret.err
}

func (f *MarketService) AuthenticateReturns(token string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.authenticateReturns = stringIDReturns{token, err}
}

func (f *MarketService) AuthenticateCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.authenticateArgs)
}

func (f *MarketService) AuthenticateArgsForCall(i int) core.AuthMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.authenticateArgs[i]
}

func (f *MarketService) SaveNFT(ctx context.Context, nft repository.NFT) (uint, error) {
	f.mu.Lock()
	f.saveNFTArgs = append(f.saveNFTArgs, nft)
	stub := f.SaveNFTStub
	ret := f.saveNFTReturns
	f.mu.Unlock()
	if stub != nil {
		return stub(ctx, nft)
	}
	return ret.id, ret.err
}

func (f *MarketService) SaveNFTReturns(id uint, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saveNFTReturns = uintIDReturns{id, err}
}

func (f *MarketService) SaveNFTCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.saveNFTArgs)
}

func (f *MarketService) SaveNFTArgsForCall(i int) repository.NFT {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saveNFTArgs[i]
}

func (f *MarketService) NFTsByOwner(ctx context.Context, owner string) ([]repository.NFT, error) {
	f.mu.Lock()
	f.nftsByOwnerArgs = append(f.nftsByOwnerArgs, owner)
	stub := f.NFTsByOwnerStub
	ret := f.nftsByOwnerReturns
	f.mu.Unlock()
	if stub != nil {
		return stub(ctx, owner)
	}
	return ret.nfts, ret.err
}

func (f *MarketService) NFTsByOwnerReturns(nfts []repository.NFT, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nftsByOwnerReturns = struct {
		nfts []repository.NFT
		err  error
	}{nfts, err}
}

func (f *MarketService) NFTsByOwnerCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.nftsByOwnerArgs)
}

func (f *MarketService) NFTsByOwnerArgsForCall(i int) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.nftsByOwnerArgs[i]
}

func (f *MarketService) AddAuction(ctx context.Context, auction repository.Auction) (uint, error) {
	f.mu.Lock()
	f.addAuctionArgs = append(f.addAuctionArgs, auction)
	stub := f.AddAuctionStub
	ret := f.addAuctionReturns
	f.mu.Unlock()
	if stub != nil {
		return stub(ctx, auction)
	}
	return ret.id, ret.err
}

func (f *MarketService) AddAuctionReturns(id uint, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.addAuctionReturns = uintIDReturns{id, err}
}

func (f *MarketService) AddAuctionCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.addAuctionArgs)
}

func (f *MarketService) AddAuctionArgsForCall(i int) repository.Auction {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.addAuctionArgs[i]
}

func (f *MarketService) Auctions(ctx context.Context) ([]repository.Auction, error) {
	f.mu.Lock()
	f.auctionsCalls++
	stub := f.AuctionsStub
	ret := f.auctionsReturns
	f.mu.Unlock()
	if stub != nil {
		return stub(ctx)
	}
	return ret.auctions, ret.err
}

func (f *MarketService) AuctionsReturns(auctions []repository.Auction, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.auctionsReturns = struct {
		auctions []repository.Auction
		err      error
	}{auctions, err}
}

func (f *MarketService) AuctionsCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.auctionsCalls
}

func (f *MarketService) AddBid(ctx context.Context, bid repository.Bid) (uint, error) {
	f.mu.Lock()
	f.addBidArgs = append(f.addBidArgs, bid)
	stub := f.AddBidStub
	ret := f.addBidReturns
	f.mu.Unlock()
	if stub != nil {
		return stub(ctx, bid)
	}
	return ret.id, ret.err
}

func (f *MarketService) AddBidReturns(id uint, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.addBidReturns = uintIDReturns{id, err}
}

func (f *MarketService) AddBidCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.addBidArgs)
}

func (f *MarketService) AddBidArgsForCall(i int) repository.Bid {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.addBidArgs[i]
}

func (f *MarketService) BidsByAuction(ctx context.Context, auctionID uint) ([]repository.Bid, error) {
	f.mu.Lock()
	f.bidsByAuctionArgs = append(f.bidsByAuctionArgs, auctionID)
	stub := f.BidsByAuctionStub
	ret := f.bidsByAuctionReturns
	f.mu.Unlock()
	if stub != nil {
		return stub(ctx, auctionID)
	}
	return ret.bids, ret.err
}

func (f *MarketService) BidsByAuctionReturns(bids []repository.Bid, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bidsByAuctionReturns = struct {
		bids []repository.Bid
		err  error
	}{bids, err}
}

func (f *MarketService) BidsByAuctionCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.bidsByAuctionArgs)
}

func (f *MarketService) BidsByAuctionArgsForCall(i int) uint {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bidsByAuctionArgs[i]
}

func (f *MarketService) UserByWallet(ctx context.Context, wallet string) (repository.User, error) {
	f.mu.Lock()
	f.userByWalletArgs = append(f.userByWalletArgs, wallet)
	stub := f.UserByWalletStub
	ret := f.userByWalletReturns
	f.mu.Unlock()
	if stub != nil {
		return stub(ctx, wallet)
	}
	return ret.user, ret.err
}

func (f *MarketService) UserByWalletReturns(user repository.User, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.userByWalletReturns = struct {
		user repository.User
		err  error
	}{user, err}
}

func (f *MarketService) UserByWalletCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.userByWalletArgs)
}

func (f *MarketService) UserByWalletArgsForCall(i int) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.userByWalletArgs[i]
}

func (f *MarketService) AddAccreditation(ctx context.Context, accreditation repository.Accreditation) (uint, error) {
	f.mu.Lock()
	f.addAccreditationArgs = append(f.addAccreditationArgs, accreditation)
	stub := f.AddAccreditationStub
	ret := f.addAccreditationReturns
	f.mu.Unlock()
	if stub != nil {
		return stub(ctx, accreditation)
	}
	return ret.id, ret.err
}

func (f *MarketService) AddAccreditationReturns(id uint, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.addAccreditationReturns = uintIDReturns{id, err}
}

func (f *MarketService) AddAccreditationCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.addAccreditationArgs)
}

func (f *MarketService) AddAccreditationArgsForCall(i int) repository.Accreditation {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.addAccreditationArgs[i]
}

func (f *MarketService) Accreditations(ctx context.Context) ([]repository.Accreditation, error) {
	f.mu.Lock()
	f.accreditationsCalls++
	stub := f.AccreditationsStub
	ret := f.accreditationsReturns
	f.mu.Unlock()
	if stub != nil {
		return stub(ctx)
	}
	return ret.accreditations, ret.err
}

func (f *MarketService) AccreditationsReturns(accreditations []repository.Accreditation, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accreditationsReturns = struct {
		accreditations []repository.Accreditation
		err            error
	}{accreditations, err}
}

func (f *MarketService) AccreditationsCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.accreditationsCalls
}

// RequestValidator is a hand-rolled test double for handler.RequestValidator.
type RequestValidator struct {
	mu sync.Mutex

	DecodeJSONPayloadStub    func(r *http.Request, object any) error
	decodeJSONPayloadArgs    []decodeArgs
	decodeJSONPayloadReturns error
}

type decodeArgs struct {
	r      *http.Request
	object any
}

func (f *RequestValidator) DecodeJSONPayload(r *http.Request, object any) error {
	f.mu.Lock()
	f.decodeJSONPayloadArgs = append(f.decodeJSONPayloadArgs, decodeArgs{r, object})
	stub := f.DecodeJSONPayloadStub
	ret := f.decodeJSONPayloadReturns
	f.mu.Unlock()
	if stub != nil {
		return stub(r, object)
	}
	return ret
}

func (f *RequestValidator) DecodeJSONPayloadReturns(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.decodeJSONPayloadReturns = err
}

func (f *RequestValidator) DecodeJSONPayloadCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.decodeJSONPayloadArgs)
}

func (f *RequestValidator) DecodeJSONPayloadArgsForCall(i int) (*http.Request, any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.decodeJSONPayloadArgs[i].r, f.decodeJSONPayloadArgs[i].object
}
