package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"eduledger/internal/cache"
	"eduledger/internal/config"
	"eduledger/internal/core"
	"eduledger/internal/db"
	"eduledger/internal/ethereum"
	"eduledger/internal/http/handler"
	"eduledger/internal/http/handler/middleware"
	"eduledger/internal/http/payload"
	"eduledger/internal/http/server"
	"eduledger/internal/repository"
	"eduledger/internal/scheduler"
	"eduledger/pkg/jwt"
	"eduledger/pkg/log"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/go-chi/cors"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	cfg, err := config.NewApp()
	if err != nil {
		fmt.Printf("failed to create config: %s\n", err)
		return err
	}

	logger := log.NewZapLogger("eduledger", zapcore.InfoLevel, cfg.LogFile)
	defer logger.Sync() //nolint:errcheck

	dbConn, err := db.NewMySQLDB(cfg.DBConnectionString())
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	err = dbConn.MigrateModels(
		&repository.Transaction{},
		&repository.NFT{},
		&repository.Auction{},
		&repository.Bid{},
		&repository.User{},
		&repository.Accreditation{})
	if err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	client, err := ethclient.Dial(cfg.NodeURL)
	if err != nil {
		logger.Errorw("ethereum node connection failed", "error", err)
		return err
	}

	ethService := ethereum.NewEthService(client)

	redisCache := cache.NewRedisCache(logger, cfg.RedisAddr)
	defer redisCache.Close() //nolint:errcheck

	jwtService := jwt.NewJWTService([]byte(cfg.JWTSecret))

	ledgerRepo := repository.NewLedgerRepo(dbConn.DB)
	marketRepo := repository.NewMarketRepo(dbConn.DB)

	mirror := core.NewMirror(logger, ledgerRepo, ethService, redisCache)
	market := core.NewMarket(logger, marketRepo, jwtService)

	mirrorHlr := handler.NewMirrorHandler(logger, payload.Decoder{}, mirror, cfg.IsProduction())
	marketHlr := handler.NewMarketHandler(logger, payload.Decoder{}, market, cfg.IsProduction())

	mux := http.NewServeMux()

	mux.HandleFunc(handler.SaveTransaction, mirrorHlr.HandleSaveTransaction)
	mux.HandleFunc(handler.ListTransactions, mirrorHlr.HandleListTransactions)
	mux.HandleFunc(handler.ListTransactionsAlias, mirrorHlr.HandleListTransactions)
	mux.HandleFunc(handler.TransactionsByAddress, mirrorHlr.HandleTransactionsByAddress)
	mux.HandleFunc(handler.Analytics, mirrorHlr.HandleAnalytics)
	mux.HandleFunc(handler.Export, mirrorHlr.HandleExport)
	mux.HandleFunc(handler.Stats, mirrorHlr.HandleStats)
	mux.HandleFunc(handler.Observe, mirrorHlr.HandleObserve)
	mux.HandleFunc(handler.GenerateTestData, mirrorHlr.HandleGenerateTestData)
	mux.HandleFunc(handler.Health, mirrorHlr.HandleHealth)

	mux.HandleFunc(handler.SaveNFT, marketHlr.HandleSaveNFT)
	mux.HandleFunc(handler.NFTsByOwner, marketHlr.HandleNFTsByOwner)
	mux.HandleFunc(handler.AddAuction, marketHlr.HandleAddAuction)
	mux.HandleFunc(handler.GetAuctions, marketHlr.HandleGetAuctions)
	mux.HandleFunc(handler.AddBid, marketHlr.HandleAddBid)
	mux.HandleFunc(handler.GetBids, marketHlr.HandleGetBids)
	mux.HandleFunc(handler.AddUser, marketHlr.HandleAddUser)
	mux.HandleFunc(handler.GetUser, marketHlr.HandleGetUser)
	mux.HandleFunc(handler.AuthenticateUser, marketHlr.HandleAuthenticate)
	mux.HandleFunc(handler.AddAccrediting, marketHlr.HandleAddAccrediting)
	mux.HandleFunc(handler.GetAccreditings, marketHlr.HandleGetAccreditings)

	corsLayer := cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.CORSOrigin},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	})

	var hdlr http.Handler = mux
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)
	hdlr = corsLayer(hdlr)

	jobs, err := scheduler.NewManager(logger, mirror)
	if err != nil {
		logger.Errorw("failed to create scheduler", "error", err)
		return err
	}
	if err := jobs.Start(); err != nil {
		logger.Errorw("failed to start scheduler", "error", err)
		return err
	}
	defer jobs.Stop()

	srv := server.NewHTTP(logger, hdlr, cfg.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
