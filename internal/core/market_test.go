package core_test

import (
	"context"
	"errors"
	"time"

	"eduledger/internal/core"
	"eduledger/internal/core/fake"
	"eduledger/internal/repository"
	tokenIssuer "eduledger/pkg/jwt"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("Market", func() {
	var (
		fakeRepo   *fake.MarketRepository
		fakeJWT    *fake.JWTIssuer
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		market *core.Market

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.MarketRepository)
		fakeJWT = new(fake.JWTIssuer)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		market = core.NewMarket(fakeLogger, fakeRepo, fakeJWT)

		fakeErr = errors.New("fake error")
	})

	Describe("RegisterUser", func() {
		var (
			user     repository.User
			password string
			id       string
			err      error
		)

		BeforeEach(func() {
			user = repository.User{
				Name:   "alice",
				Wallet: "0x1111111111111111111111111111111111111111",
			}
			password = "testpass"
		})

		JustBeforeEach(func() {
			id, err = market.RegisterUser(ctx, user, password)
		})

		When("creation succeeds", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserStub = func(ctx context.Context, u repository.User) (string, error) {
					return u.ID, nil
				}
			})

			It("should store a bcrypt hash and a generated id", func() {
				Expect(err).NotTo(HaveOccurred())
				_, parseErr := uuid.Parse(id)
				Expect(parseErr).NotTo(HaveOccurred())

				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))
				stored := fakeRepo.CreateUserArgsForCall(0)
				Expect(stored.Name).To(Equal("alice"))
				Expect(stored.PasswordHash).NotTo(Equal(password))
				Expect(bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(password))).To(Succeed())
			})
		})

		When("creation fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns("", fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Authenticate", func() {
		var (
			authMsg        core.AuthMessage
			token          string
			err            error
			userId         string
			hashedPassword string
			genToken       *jwt.Token
		)

		BeforeEach(func() {
			userId = uuid.NewString()
			hashedPassword = "$2a$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky" // bcrypt hash of "testpass"
			genToken = jwt.New(jwt.SigningMethodHS512)

			authMsg = core.AuthMessage{
				Name:     "alice",
				Password: "testpass",
			}
		})

		JustBeforeEach(func() {
			token, err = market.Authenticate(ctx, authMsg)
		})

		When("user exists and password matches", func() {
			BeforeEach(func() {
				fakeRepo.UserByNameReturns(repository.User{
					ID:           userId,
					Name:         authMsg.Name,
					PasswordHash: hashedPassword,
				}, nil)

				fakeJWT.GenerateReturns(genToken)
				fakeJWT.SignReturns("signed.token", nil)
			})

			It("should return a signed token", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed.token"))

				Expect(fakeRepo.UserByNameCallCount()).To(Equal(1))
				Expect(fakeRepo.UserByNameArgsForCall(0)).To(Equal(authMsg.Name))

				Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
				Expect(fakeJWT.GenerateArgsForCall(0)).To(Equal(tokenIssuer.TokenInfo{
					UserName:   authMsg.Name,
					Subject:    userId,
					Expiration: 24,
				}))

				Expect(fakeJWT.SignCallCount()).To(Equal(1))
				Expect(fakeJWT.SignArgsForCall(0)).To(Equal(genToken))
			})
		})

		When("user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.UserByNameReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})

		When("password does not match", func() {
			BeforeEach(func() {
				fakeRepo.UserByNameReturns(repository.User{
					Name:         authMsg.Name,
					PasswordHash: hashedPassword,
				}, nil)
				authMsg.Password = "wrongpass"
			})

			It("should return incorrect password error", func() {
				Expect(err).To(MatchError(core.ErrIncorrectPassword))
			})
		})

		When("token signing fails", func() {
			BeforeEach(func() {
				fakeRepo.UserByNameReturns(repository.User{
					ID:           userId,
					Name:         authMsg.Name,
					PasswordHash: hashedPassword,
				}, nil)
				fakeJWT.SignReturns("", fakeErr)
			})

			It("should return signing error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("UserByWallet", func() {
		var (
			wallet string
			user   repository.User
			err    error
		)

		BeforeEach(func() {
			wallet = "0x1111111111111111111111111111111111111111"
		})

		JustBeforeEach(func() {
			user, err = market.UserByWallet(ctx, wallet)
		})

		When("the wallet is known", func() {
			BeforeEach(func() {
				fakeRepo.UserByWalletReturns(repository.User{Name: "alice", Wallet: wallet}, nil)
			})

			It("should return the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.Name).To(Equal("alice"))
				Expect(fakeRepo.UserByWalletArgsForCall(0)).To(Equal(wallet))
			})
		})

		When("the wallet is unknown", func() {
			BeforeEach(func() {
				fakeRepo.UserByWalletReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})
	})

	Describe("SaveNFT", func() {
		var (
			nft repository.NFT
			id  uint
			err error
		)

		BeforeEach(func() {
			nft = repository.NFT{TokenID: 42, Owner: "0x1111111111111111111111111111111111111111"}
		})

		JustBeforeEach(func() {
			id, err = market.SaveNFT(ctx, nft)
		})

		When("saving succeeds", func() {
			BeforeEach(func() {
				fakeRepo.CreateNFTReturns(3, nil)
			})

			It("should return the new id", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(id).To(Equal(uint(3)))
				Expect(fakeRepo.CreateNFTArgsForCall(0).TokenID).To(Equal(int64(42)))
			})
		})

		When("saving fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateNFTReturns(0, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("AddBid", func() {
		var (
			bid repository.Bid
			id  uint
			err error
		)

		BeforeEach(func() {
			bid = repository.Bid{
				AuctionID: 9,
				Bidder:    "0x1111111111111111111111111111111111111111",
				BidAmount: "1000",
			}
		})

		JustBeforeEach(func() {
			id, err = market.AddBid(ctx, bid)
		})

		When("the bid carries no timestamp", func() {
			BeforeEach(func() {
				fakeRepo.CreateBidReturns(4, nil)
			})

			It("should stamp it with the server clock before storing", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(id).To(Equal(uint(4)))

				stored := fakeRepo.CreateBidArgsForCall(0)
				Expect(stored.BidTime.IsZero()).To(BeFalse())
				Expect(stored.BidTime).To(BeTemporally("~", time.Now(), time.Minute))
			})
		})

		When("the bid already carries a timestamp", func() {
			var bidTime time.Time

			BeforeEach(func() {
				bidTime = time.Now().Add(-time.Hour)
				bid.BidTime = bidTime
				fakeRepo.CreateBidReturns(5, nil)
			})

			It("should keep it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.CreateBidArgsForCall(0).BidTime).To(Equal(bidTime))
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateBidReturns(0, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("BidsByAuction", func() {
		var (
			bids []repository.Bid
			err  error
		)

		JustBeforeEach(func() {
			bids, err = market.BidsByAuction(ctx, 9)
		})

		When("bids exist", func() {
			BeforeEach(func() {
				fakeRepo.BidsByAuctionReturns([]repository.Bid{
					{AuctionID: 9, Bidder: "0x1"},
					{AuctionID: 9, Bidder: "0x2"},
				}, nil)
			})

			It("should return them", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(bids).To(HaveLen(2))
				Expect(fakeRepo.BidsByAuctionArgsForCall(0)).To(Equal(uint(9)))
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				fakeRepo.BidsByAuctionReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
