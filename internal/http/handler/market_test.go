package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"eduledger/internal/core"
	"eduledger/internal/http/handler"
	"eduledger/internal/http/handler/fake"
	"eduledger/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("MarketHandler", func() {
	var (
		mh            *handler.MarketHandler
		fakeService   *fake.MarketService
		fakeValidator *fake.RequestValidator
		fakeLogger    *zap.SugaredLogger
		w             *httptest.ResponseRecorder
		req           *http.Request
		fakeErr       error
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeLogger = zap.NewNop().Sugar()
		fakeService = new(fake.MarketService)
		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
			return json.NewDecoder(rec.Body).Decode(jsonPayload)
		}

		w = httptest.NewRecorder()
		mh = handler.NewMarketHandler(fakeLogger, fakeValidator, fakeService, false)
	})

	Describe("HandleSaveNFT", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{
				"tokenId": 42,
				"category": "course",
				"owner": "0x1111111111111111111111111111111111111111",
				"creater": "0x1111111111111111111111111111111111111111",
				"cid": "QmYwAPJzv5CZsnAzt8auVZRn",
				"royalty": 5,
				"price": "1000000000000000000"
			}`)
			req = httptest.NewRequest("POST", "/saveNft", body)
			req.Header.Set("Content-Type", "application/json")
		})

		When("saving succeeds", func() {
			BeforeEach(func() {
				fakeService.SaveNFTReturns(3, nil)
			})

			It("should return the new id in the envelope", func() {
				mh.HandleSaveNFT(w, req)

				Expect(w.Code).To(Equal(http.StatusOK))
				var response handler.Response
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response.Success).To(BeTrue())
				Expect(response.Data).To(HaveKeyWithValue("nftId", float64(3)))

				Expect(fakeService.SaveNFTCallCount()).To(Equal(1))
				nft := fakeService.SaveNFTArgsForCall(0)
				Expect(nft.TokenID).To(Equal(int64(42)))
				Expect(nft.Kind).To(Equal("course"))
				Expect(nft.Img).To(Equal("QmYwAPJzv5CZsnAzt8auVZRn"))
			})
		})

		When("the payload is invalid", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadStub = nil
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return status 400", func() {
				mh.HandleSaveNFT(w, req)

				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.SaveNFTCallCount()).To(Equal(0))
			})
		})

		When("saving fails", func() {
			BeforeEach(func() {
				fakeService.SaveNFTReturns(0, fakeErr)
			})

			It("should return status 500", func() {
				mh.HandleSaveNFT(w, req)

				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleNFTsByOwner", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"owner":"0x1111111111111111111111111111111111111111"}`)
			req = httptest.NewRequest("POST", "/getNFTbyAddress", body)
			req.Header.Set("Content-Type", "application/json")
			fakeService.NFTsByOwnerReturns([]repository.NFT{{TokenID: 42}}, nil)
		})

		It("should return the owner's NFTs", func() {
			mh.HandleNFTsByOwner(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var nfts []repository.NFT
			Expect(json.NewDecoder(w.Body).Decode(&nfts)).To(Succeed())
			Expect(nfts).To(HaveLen(1))

			Expect(fakeService.NFTsByOwnerArgsForCall(0)).To(Equal("0x1111111111111111111111111111111111111111"))
		})
	})

	Describe("HandleAddAuction", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{
				"tokenId": 42,
				"seller": "0x1111111111111111111111111111111111111111",
				"startPrice": "1000",
				"endTime": 1700000000,
				"isActive": true
			}`)
			req = httptest.NewRequest("POST", "/addAuction", body)
			req.Header.Set("Content-Type", "application/json")
			fakeService.AddAuctionReturns(9, nil)
		})

		It("should add the auction", func() {
			mh.HandleAddAuction(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var response handler.Response
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
			Expect(response.Data).To(HaveKeyWithValue("auctionId", float64(9)))

			auction := fakeService.AddAuctionArgsForCall(0)
			Expect(auction.TokenID).To(Equal(int64(42)))
			Expect(auction.IsActive).To(BeTrue())
		})
	})

	Describe("HandleGetBids", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/getBids/9", nil)
			req.SetPathValue("auctionId", "9")
			fakeService.BidsByAuctionReturns([]repository.Bid{{AuctionID: 9}}, nil)
		})

		It("should return the auction's bids", func() {
			mh.HandleGetBids(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(fakeService.BidsByAuctionArgsForCall(0)).To(Equal(uint(9)))
		})

		When("the auction id is not numeric", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/getBids/abc", nil)
				req.SetPathValue("auctionId", "abc")
			})

			It("should return status 400", func() {
				mh.HandleGetBids(w, req)

				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.BidsByAuctionCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleAddUser", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{
				"name": "alice",
				"password": "testpass",
				"wallet": "0x1111111111111111111111111111111111111111"
			}`)
			req = httptest.NewRequest("POST", "/addUser", body)
			req.Header.Set("Content-Type", "application/json")
			fakeService.RegisterUserReturns("user-id-1", nil)
		})

		It("should register the user without echoing the password", func() {
			mh.HandleAddUser(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var response handler.Response
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
			Expect(response.Data).To(HaveKeyWithValue("userId", "user-id-1"))

			user, password := fakeService.RegisterUserArgsForCall(0)
			Expect(user.Name).To(Equal("alice"))
			Expect(password).To(Equal("testpass"))
		})
	})

	Describe("HandleGetUser", func() {
		var wallet string

		BeforeEach(func() {
			wallet = "0x1111111111111111111111111111111111111111"
			req = httptest.NewRequest("GET", "/getUser/"+wallet, nil)
			req.SetPathValue("wallet", wallet)
		})

		When("the wallet is known", func() {
			BeforeEach(func() {
				fakeService.UserByWalletReturns(repository.User{Name: "alice", Wallet: wallet}, nil)
			})

			It("should return the profile", func() {
				mh.HandleGetUser(w, req)

				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("alice"))
				Expect(w.Body.String()).NotTo(ContainSubstring("PasswordHash"))
			})
		})

		When("the wallet is unknown", func() {
			BeforeEach(func() {
				fakeService.UserByWalletReturns(repository.User{}, core.ErrUserNotFound)
			})

			It("should return null with status 200", func() {
				mh.HandleGetUser(w, req)

				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(strings.TrimSpace(w.Body.String())).To(Equal("null"))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeService.UserByWalletReturns(repository.User{}, fakeErr)
			})

			It("should return status 500", func() {
				mh.HandleGetUser(w, req)

				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleAuthenticate", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"name":"alice","password":"testpass"}`)
			req = httptest.NewRequest("POST", "/authenticate", body)
			req.Header.Set("Content-Type", "application/json")
		})

		When("authentication succeeds", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("signed.token", nil)
			})

			It("should return the token", func() {
				mh.HandleAuthenticate(w, req)

				Expect(w.Code).To(Equal(http.StatusOK))
				var response map[string]string
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["token"]).To(Equal("signed.token"))

				msg := fakeService.AuthenticateArgsForCall(0)
				Expect(msg.Name).To(Equal("alice"))
			})
		})

		When("credentials are wrong", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", core.ErrIncorrectPassword)
			})

			It("should return status 401", func() {
				mh.HandleAuthenticate(w, req)

				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		When("the user is unknown", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", core.ErrUserNotFound)
			})

			It("should return status 401", func() {
				mh.HandleAuthenticate(w, req)

				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", fakeErr)
			})

			It("should return status 500", func() {
				mh.HandleAuthenticate(w, req)

				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleAddAccrediting", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{
				"name": "Intro to Distributed Systems",
				"tokenId": 42,
				"owner": "0x1111111111111111111111111111111111111111"
			}`)
			req = httptest.NewRequest("POST", "/addAccrediting", body)
			req.Header.Set("Content-Type", "application/json")
			fakeService.AddAccreditationReturns(4, nil)
		})

		It("should add the accreditation", func() {
			mh.HandleAddAccrediting(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var response handler.Response
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
			Expect(response.Data).To(HaveKeyWithValue("accreditingId", float64(4)))
		})
	})

	Describe("HandleGetAccreditings", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/getAccreditings", nil)
			fakeService.AccreditationsReturns([]repository.Accreditation{{TokenID: 42}}, nil)
		})

		It("should return the accreditations", func() {
			mh.HandleGetAccreditings(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var accreditations []repository.Accreditation
			Expect(json.NewDecoder(w.Body).Decode(&accreditations)).To(Succeed())
			Expect(accreditations).To(HaveLen(1))
		})
	})
})
