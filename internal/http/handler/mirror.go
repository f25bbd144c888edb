package handler

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"eduledger/internal/core"
	"eduledger/internal/http/payload"

	"go.uber.org/zap"
)

var (
	SaveTransaction       = "POST /saveTransactionFromClient"
	ListTransactions      = "GET /getBlockchainTransactions"
	ListTransactionsAlias = "GET /api/blockchain/transactions"
	TransactionsByAddress = "GET /getTransactionsByAddress/{address}"
	Analytics             = "GET /api/blockchain/analytics"
	Export                = "GET /api/blockchain/export"
	Stats                 = "GET /api/blockchain/stats"
	Observe               = "POST /api/blockchain/observe"
	GenerateTestData      = "POST /api/blockchain/generateTestData"
	Health                = "GET /health"
)

var csvHeader = []string{
	"ID", "Block Number", "Block Timestamp", "Transaction Hash",
	"From Address", "To Address", "Gas", "Status", "Operation", "Created At",
}

type MirrorHandler struct {
	responder
	requestValidator RequestValidator
	mirror           MirrorService
}

func NewMirrorHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, mirrorService MirrorService, production bool) *MirrorHandler {
	return &MirrorHandler{
		responder:        responder{logs: logger, production: production},
		requestValidator: requestValidator,
		mirror:           mirrorService,
	}
}

func (h *MirrorHandler) HandleSaveTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.SaveTransactionRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respondError(w, "Missing or invalid transaction fields", err, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", SaveTransaction,
			"request_id", requestId)
		return
	}

	msg, err := req.ToMessage()
	if err != nil {
		h.respondError(w, "Missing or invalid transaction fields", err, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to convert request payload",
			"error", err,
			"handler", SaveTransaction,
			"request_id", requestId)
		return
	}

	id, err := h.mirror.Ingest(r.Context(), msg)
	if err != nil {
		h.respondError(w, "Could not save transaction", err, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to ingest transaction",
			"error", err,
			"handler", SaveTransaction,
			"request_id", requestId)
		return
	}

	h.respond(w, SaveTransactionResponse{Success: true, ID: id}, http.StatusOK, requestId)
}

func (h *MirrorHandler) HandleListTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	transactions, err := h.mirror.Transactions(r.Context(), limit)
	if err != nil {
		h.respondError(w, "Could not retrieve transactions", err, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to list transactions",
			"error", err,
			"handler", ListTransactions,
			"request_id", requestId)
		return
	}

	h.respond(w, transactions, http.StatusOK, requestId)
}

func (h *MirrorHandler) HandleTransactionsByAddress(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	address := r.PathValue("address")
	if address == "" {
		h.respondError(w, "Address parameter is required", nil, http.StatusBadRequest, requestId)
		return
	}

	transactions, err := h.mirror.TransactionsByAddress(r.Context(), address)
	if err != nil {
		h.respondError(w, "Could not retrieve transactions", err, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to list transactions by address",
			"error", err,
			"address", address,
			"handler", TransactionsByAddress,
			"request_id", requestId)
		return
	}

	h.respond(w, transactions, http.StatusOK, requestId)
}

func (h *MirrorHandler) HandleAnalytics(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	params := payload.AnalyticsParamsFromQuery(r.URL.Query())
	if err := params.Validate(); err != nil {
		h.respondError(w, fmt.Sprintf("Invalid date range: %s", err), err, http.StatusBadRequest, requestId)
		h.logs.Errorw("invalid analytics parameters",
			"error", err,
			"handler", Analytics,
			"request_id", requestId)
		return
	}

	report, err := h.mirror.Analytics(r.Context(), params.ToQuery())
	if err != nil {
		h.respondError(w, "Could not compute analytics", err, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to compute analytics",
			"error", err,
			"handler", Analytics,
			"request_id", requestId)
		return
	}

	h.respond(w, report, http.StatusOK, requestId)
}

func (h *MirrorHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	params := payload.AnalyticsParamsFromQuery(r.URL.Query())
	if err := params.Validate(); err != nil {
		h.respondError(w, fmt.Sprintf("Invalid date range: %s", err), err, http.StatusBadRequest, requestId)
		h.logs.Errorw("invalid export parameters",
			"error", err,
			"handler", Export,
			"request_id", requestId)
		return
	}

	format := r.URL.Query().Get("format")
	if format != "" && format != "csv" && format != "json" {
		h.respondError(w, fmt.Sprintf("Unsupported export format %q", format), nil, http.StatusBadRequest, requestId)
		h.logs.Errorw("invalid export format",
			"format", format,
			"handler", Export,
			"request_id", requestId)
		return
	}

	records, err := h.mirror.Export(r.Context(), params.ToQuery())
	if err != nil {
		h.respondError(w, "Could not export transactions", err, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to export transactions",
			"error", err,
			"handler", Export,
			"request_id", requestId)
		return
	}

	if format == "json" {
		h.respond(w, records, http.StatusOK, requestId)
		return
	}

	h.writeCSV(w, records, params, requestId)
}

func (h *MirrorHandler) writeCSV(w http.ResponseWriter, records []core.TransactionRecord, params payload.AnalyticsParams, requestId string) {
	filename := fmt.Sprintf("transactions_%s_%s.csv", params.StartDate, params.EndDate)
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		h.logs.Errorw("failed to write csv header", "error", err, "request_id", requestId)
		return
	}

	for _, rec := range records {
		row := []string{
			strconv.FormatUint(uint64(rec.ID), 10),
			strconv.FormatUint(rec.BlockNumber, 10),
			strconv.FormatInt(rec.BlockTimestamp, 10),
			rec.TransactionHash,
			rec.FromAddress,
			rec.ToAddress,
			rec.Gas,
			rec.Status,
			rec.OperationDescription,
			rec.CreatedAt.Format(time.RFC3339),
		}
		if err := writer.Write(row); err != nil {
			h.logs.Errorw("failed to write csv row", "error", err, "request_id", requestId)
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		h.logs.Errorw("failed to flush csv output", "error", err, "request_id", requestId)
	}
}

func (h *MirrorHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	summary, err := h.mirror.Stats(r.Context())
	if err != nil {
		h.respondError(w, "Could not compute statistics", err, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to compute statistics",
			"error", err,
			"handler", Stats,
			"request_id", requestId)
		return
	}

	h.respond(w, summary, http.StatusOK, requestId)
}

func (h *MirrorHandler) HandleObserve(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.ObserveRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respondError(w, "Missing or invalid transaction hash", err, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Observe,
			"request_id", requestId)
		return
	}

	record, err := h.mirror.Observe(r.Context(), req.TransactionHash, req.OperationDescription)
	if err != nil {
		status := http.StatusInternalServerError
		message := "Could not save observed transaction"
		if errors.Is(err, core.ErrNodeUnavailable) {
			status = http.StatusBadGateway
			message = "Could not observe transaction"
		}
		h.respondError(w, message, err, status, requestId)
		h.logs.Errorw("failed to observe transaction",
			"error", err,
			"hash", req.TransactionHash,
			"handler", Observe,
			"request_id", requestId)
		return
	}

	h.respond(w, record, http.StatusOK, requestId)
}

func (h *MirrorHandler) HandleGenerateTestData(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if h.production {
		h.respondError(w, "Test data generation is disabled in production", nil, http.StatusForbidden, requestId)
		return
	}

	var req payload.GenerateTestDataRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respondError(w, "Invalid count", err, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", GenerateTestData,
			"request_id", requestId)
		return
	}

	inserted, err := h.mirror.GenerateTestData(r.Context(), req.Count)
	if err != nil {
		h.respondError(w, "Could not generate test data", err, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to generate test data",
			"error", err,
			"handler", GenerateTestData,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{
		Success: true,
		Message: "Test data generated",
		Data:    map[string]int{"inserted": inserted},
	}, http.StatusOK, requestId)
}

func (h *MirrorHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.respond(w, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK, requestID(r))
}
