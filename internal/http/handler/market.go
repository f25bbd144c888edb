package handler

import (
	"errors"
	"net/http"
	"strconv"

	"eduledger/internal/core"
	"eduledger/internal/http/payload"

	"go.uber.org/zap"
)

var (
	SaveNFT          = "POST /saveNft"
	NFTsByOwner      = "POST /getNFTbyAddress"
	AddAuction       = "POST /addAuction"
	GetAuctions      = "GET /getAuctions"
	AddBid           = "POST /addBid"
	GetBids          = "GET /getBids/{auctionId}"
	AddUser          = "POST /addUser"
	GetUser          = "GET /getUser/{wallet}"
	AuthenticateUser = "POST /authenticate"
	AddAccrediting   = "POST /addAccrediting"
	GetAccreditings  = "GET /getAccreditings"
)

type MarketHandler struct {
	responder
	requestValidator RequestValidator
	market           MarketService
}

func NewMarketHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, marketService MarketService, production bool) *MarketHandler {
	return &MarketHandler{
		responder:        responder{logs: logger, production: production},
		requestValidator: requestValidator,
		market:           marketService,
	}
}

func (h *MarketHandler) HandleSaveNFT(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.NFTRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respondError(w, "Invalid NFT payload", err, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err, "handler", SaveNFT, "request_id", requestId)
		return
	}

	id, err := h.market.SaveNFT(r.Context(), req.ToModel())
	if err != nil {
		h.respondError(w, "Failed to save NFT", err, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to save nft", "error", err, "handler", SaveNFT, "request_id", requestId)
		return
	}

	h.respond(w, Response{
		Success: true,
		Message: "NFT saved successfully",
		Data:    map[string]uint{"nftId": id},
	}, http.StatusOK, requestId)
}

func (h *MarketHandler) HandleNFTsByOwner(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.OwnerRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respondError(w, "Owner address is required", err, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err, "handler", NFTsByOwner, "request_id", requestId)
		return
	}

	nfts, err := h.market.NFTsByOwner(r.Context(), req.Owner)
	if err != nil {
		h.respondError(w, "Failed to get NFT list", err, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to list nfts", "error", err, "handler", NFTsByOwner, "request_id", requestId)
		return
	}

	h.respond(w, nfts, http.StatusOK, requestId)
}

func (h *MarketHandler) HandleAddAuction(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.AuctionRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respondError(w, "Invalid auction payload", err, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err, "handler", AddAuction, "request_id", requestId)
		return
	}

	id, err := h.market.AddAuction(r.Context(), req.ToModel())
	if err != nil {
		h.respondError(w, "Failed to add auction", err, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to add auction", "error", err, "handler", AddAuction, "request_id", requestId)
		return
	}

	h.respond(w, Response{
		Success: true,
		Message: "Auction added successfully",
		Data:    map[string]uint{"auctionId": id},
	}, http.StatusOK, requestId)
}

func (h *MarketHandler) HandleGetAuctions(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	auctions, err := h.market.Auctions(r.Context())
	if err != nil {
		h.respondError(w, "Failed to get auctions", err, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to list auctions", "error", err, "handler", GetAuctions, "request_id", requestId)
		return
	}

	h.respond(w, auctions, http.StatusOK, requestId)
}

func (h *MarketHandler) HandleAddBid(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.BidRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respondError(w, "Invalid bid payload", err, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err, "handler", AddBid, "request_id", requestId)
		return
	}

	id, err := h.market.AddBid(r.Context(), req.ToModel())
	if err != nil {
		h.respondError(w, "Failed to add bid", err, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to add bid", "error", err, "handler", AddBid, "request_id", requestId)
		return
	}

	h.respond(w, Response{
		Success: true,
		Message: "Bid added successfully",
		Data:    map[string]uint{"bidId": id},
	}, http.StatusOK, requestId)
}

func (h *MarketHandler) HandleGetBids(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	auctionId, err := strconv.ParseUint(r.PathValue("auctionId"), 10, 32)
	if err != nil {
		h.respondError(w, "Invalid auction id", err, http.StatusBadRequest, requestId)
		return
	}

	bids, err := h.market.BidsByAuction(r.Context(), uint(auctionId))
	if err != nil {
		h.respondError(w, "Failed to get bids", err, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to list bids", "error", err, "handler", GetBids, "request_id", requestId)
		return
	}

	h.respond(w, bids, http.StatusOK, requestId)
}

func (h *MarketHandler) HandleAddUser(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.UserRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respondError(w, "Invalid user payload", err, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err, "handler", AddUser, "request_id", requestId)
		return
	}

	id, err := h.market.RegisterUser(r.Context(), req.ToModel(), req.Password)
	if err != nil {
		h.respondError(w, "Failed to add user", err, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to register user", "error", err, "handler", AddUser, "request_id", requestId)
		return
	}

	h.respond(w, Response{
		Success: true,
		Message: "User added successfully",
		Data:    map[string]string{"userId": id},
	}, http.StatusOK, requestId)
}

func (h *MarketHandler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	wallet := r.PathValue("wallet")
	user, err := h.market.UserByWallet(r.Context(), wallet)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			// unknown wallet is not an error for the profile page
			h.respond(w, nil, http.StatusOK, requestId)
			return
		}
		h.respondError(w, "Failed to get user", err, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to get user", "error", err, "handler", GetUser, "request_id", requestId)
		return
	}

	h.respond(w, user, http.StatusOK, requestId)
}

func (h *MarketHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.AuthRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respondError(w, "Could not authenticate", err, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err, "handler", AuthenticateUser, "request_id", requestId)
		return
	}

	token, err := h.market.Authenticate(r.Context(), req.ToMessage())
	if err != nil {
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			httpCode = http.StatusUnauthorized
		}
		h.respondError(w, "Login failed", err, httpCode, requestId)
		h.logs.Errorw("authentication failed", "error", err, "handler", AuthenticateUser, "request_id", requestId)
		return
	}

	h.respond(w, map[string]string{"token": token}, http.StatusOK, requestId)
}

func (h *MarketHandler) HandleAddAccrediting(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.AccreditationRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respondError(w, "Invalid accreditation payload", err, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err, "handler", AddAccrediting, "request_id", requestId)
		return
	}

	id, err := h.market.AddAccreditation(r.Context(), req.ToModel())
	if err != nil {
		h.respondError(w, "Failed to add accreditation", err, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to add accreditation", "error", err, "handler", AddAccrediting, "request_id", requestId)
		return
	}

	h.respond(w, Response{
		Success: true,
		Message: "Accreditation added successfully",
		Data:    map[string]uint{"accreditingId": id},
	}, http.StatusOK, requestId)
}

func (h *MarketHandler) HandleGetAccreditings(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	accreditations, err := h.market.Accreditations(r.Context())
	if err != nil {
		h.respondError(w, "Failed to get accreditations", err, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to list accreditations", "error", err, "handler", GetAccreditings, "request_id", requestId)
		return
	}

	h.respond(w, accreditations, http.StatusOK, requestId)
}
