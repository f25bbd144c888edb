package fake

import (
	"context"
	"sync"

	"eduledger/internal/repository"
)

// MarketRepository is a hand-rolled test double for core.MarketRepository.
type MarketRepository struct {
	mu sync.Mutex

	CreateNFTStub    func(ctx context.Context, nft repository.NFT) (uint, error)
	createNFTArgs    []repository.NFT
	createNFTReturns idReturns

	NFTsByOwnerStub    func(ctx context.Context, owner string) ([]repository.NFT, error)
	nftsByOwnerArgs    []string
	nftsByOwnerReturns struct {
		nfts []repository.NFT
		err  error
	}

	CreateAuctionStub    func(ctx context.Context, auction repository.Auction) (uint, error)
	createAuctionArgs    []repository.Auction
	createAuctionReturns idReturns

	AuctionsStub    func(ctx context.Context) ([]repository.Auction, error)
	auctionsCalls   int
	auctionsReturns struct {
		auctions []repository.Auction
		err      error
	}

	CreateBidStub    func(ctx context.Context, bid repository.Bid) (uint, error)
	createBidArgs    []repository.Bid
	createBidReturns idReturns

	BidsByAuctionStub    func(ctx context.Context, auctionID uint) ([]repository.Bid, error)
	bidsByAuctionArgs    []uint
	bidsByAuctionReturns struct {
		bids []repository.Bid
		err  error
	}

	CreateUserStub    func(ctx context.Context, user repository.User) (string, error)
	createUserArgs    []repository.User
	createUserReturns struct {
		id  string
		err error
	}

	UserByNameStub    func(ctx context.Context, name string) (repository.User, error)
	userByNameArgs    []string
	userByNameReturns userReturns

	UserByWalletStub    func(ctx context.Context, wallet string) (repository.User, error)
	userByWalletArgs    []string
	userByWalletReturns userReturns

	CreateAccreditationStub    func(ctx context.Context, accreditation repository.Accreditation) (uint, error)
	createAccreditationArgs    []repository.Accreditation
	createAccreditationReturns idReturns

	AccreditationsStub    func(ctx context.Context) ([]repository.Accreditation, error)
	accreditationsCalls   int
	accreditationsReturns struct {
		accreditations []repository.Accreditation
		err            error
	}
}

type idReturns struct {
	id  uint
	err error
}

type userReturns struct {
	user repository.User
	err  error
}

func (f *MarketRepository) CreateNFT(ctx context.Context, nft repository.NFT) (uint, error) {
	f.mu.Lock()
	f.createNFTArgs = append(f.createNFTArgs, nft)
	stub := f.CreateNFTStub
	ret := f.createNFTReturns
	f.mu.Unlock()
	if stub != nil {
		return stub(ctx, nft)
	}
	return ret.id, ret.err
}

func (f *MarketRepository) CreateNFTReturns(id uint, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createNFTReturns = idReturns{id, err}
}

func (f *MarketRepository) CreateNFTCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.createNFTArgs)
}

func (f *MarketRepository) CreateNFTArgsForCall(i int) repository.NFT {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.createNFTArgs[i]
}

func (f *MarketRepository) NFTsByOwner(ctx context.Context, owner string) ([]repository.NFT, error) {
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

func (f *MarketRepository) NFTsByOwnerReturns(nfts []repository.NFT, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nftsByOwnerReturns = struct {
		nfts []repository.NFT
		err  error
	}{nfts, err}
}

func (f *MarketRepository) NFTsByOwnerCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.nftsByOwnerArgs)
}

func (f *MarketRepository) NFTsByOwnerArgsForCall(i int) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.nftsByOwnerArgs[i]
}

func (f *MarketRepository) CreateAuction(ctx context.Context, auction repository.Auction) (uint, error) {
	f.mu.Lock()
	f.createAuctionArgs = append(f.createAuctionArgs, auction)
	stub := f.CreateAuctionStub
	ret := f.createAuctionReturns
	f.mu.Unlock()
	if stub != nil {
		return stub(ctx, auction)
	}
	return ret.id, ret.err
}

func (f *MarketRepository) CreateAuctionReturns(id uint, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createAuctionReturns = idReturns{id, err}
}

func (f *MarketRepository) CreateAuctionCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.createAuctionArgs)
}

func (f *MarketRepository) CreateAuctionArgsForCall(i int) repository.Auction {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.createAuctionArgs[i]
}

func (f *MarketRepository) Auctions(ctx context.Context) ([]repository.Auction, error) {
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

func (f *MarketRepository) AuctionsReturns(auctions []repository.Auction, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.auctionsReturns = struct {
		auctions []repository.Auction
		err      error
	}{auctions, err}
}

func (f *MarketRepository) AuctionsCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.auctionsCalls
}

func (f *MarketRepository) CreateBid(ctx context.Context, bid repository.Bid) (uint, error) {
	f.mu.Lock()
	f.createBidArgs = append(f.createBidArgs, bid)
	stub := f.CreateBidStub
	ret := f.createBidReturns
	f.mu.Unlock()
	if stub != nil {
		return stub(ctx, bid)
	}
	return ret.id, ret.err
}

func (f *MarketRepository) CreateBidReturns(id uint, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createBidReturns = idReturns{id, err}
}

func (f *MarketRepository) CreateBidCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.createBidArgs)
}

func (f *MarketRepository) CreateBidArgsForCall(i int) repository.Bid {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.createBidArgs[i]
}

func (f *MarketRepository) BidsByAuction(ctx context.Context, auctionID uint) ([]repository.Bid, error) {
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

func (f *MarketRepository) BidsByAuctionReturns(bids []repository.Bid, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bidsByAuctionReturns = struct {
		bids []repository.Bid
		err  error
	}{bids, err}
}

func (f *MarketRepository) BidsByAuctionCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.bidsByAuctionArgs)
}

func (f *MarketRepository) BidsByAuctionArgsForCall(i int) uint {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bidsByAuctionArgs[i]
}

func (f *MarketRepository) CreateUser(ctx context.Context, user repository.User) (string, error) {
	f.mu.Lock()
	f.createUserArgs = append(f.createUserArgs, user)
	stub := f.CreateUserStub
	ret := f.createUserReturns
	f.mu.Unlock()
	if stub != nil {
		return stub(ctx, user)
	}
	return ret.id, ret.err
}

func (f *MarketRepository) CreateUserReturns(id string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createUserReturns = struct {
		id  string
		err error
	}{id, err}
}

func (f *MarketRepository) CreateUserCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.createUserArgs)
}

func (f *MarketRepository) CreateUserArgsForCall(i int) repository.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.createUserArgs[i]
}

func (f *MarketRepository) UserByName(ctx context.Context, name string) (repository.User, error) {
	f.mu.Lock()
	f.userByNameArgs = append(f.userByNameArgs, name)
	stub := f.UserByNameStub
	ret := f.userByNameReturns
	f.mu.Unlock()
	if stub != nil {
		return stub(ctx, name)
	}
	return ret.user, ret.err
}

func (f *MarketRepository) UserByNameReturns(user repository.User, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.userByNameReturns = userReturns{user, err}
}

func (f *MarketRepository) UserByNameCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.userByNameArgs)
}

func (f *MarketRepository) UserByNameArgsForCall(i int) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.userByNameArgs[i]
}

func (f *MarketRepository) UserByWallet(ctx context.Context, wallet string) (repository.User, error) {
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

func (f *MarketRepository) UserByWalletReturns(user repository.User, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.userByWalletReturns = userReturns{user, err}
}

func (f *MarketRepository) UserByWalletCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.userByWalletArgs)
}

func (f *MarketRepository) UserByWalletArgsForCall(i int) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.userByWalletArgs[i]
}

func (f *MarketRepository) CreateAccreditation(ctx context.Context, accreditation repository.Accreditation) (uint, error) {
	f.mu.Lock()
	f.createAccreditationArgs = append(f.createAccreditationArgs, accreditation)
	stub := f.CreateAccreditationStub
	ret := f.createAccreditationReturns
	f.mu.Unlock()
	if stub != nil {
		return stub(ctx, accreditation)
	}
	return ret.id, ret.err
}

func (f *MarketRepository) CreateAccreditationReturns(id uint, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createAccreditationReturns = idReturns{id, err}
}

func (f *MarketRepository) CreateAccreditationCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.createAccreditationArgs)
}

func (f *MarketRepository) CreateAccreditationArgsForCall(i int) repository.Accreditation {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.createAccreditationArgs[i]
}

func (f *MarketRepository) Accreditations(ctx context.Context) ([]repository.Accreditation, error) {
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

func (f *MarketRepository) AccreditationsReturns(accreditations []repository.Accreditation, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accreditationsReturns = struct {
		accreditations []repository.Accreditation
		err            error
	}{accreditations, err}
}

func (f *MarketRepository) AccreditationsCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.accreditationsCalls
}
