package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/campus-vote/cliparse"
	"github.com/danielhkuo/campus-vote/metrics"
	"github.com/danielhkuo/campus-vote/middleware"
	"github.com/danielhkuo/campus-vote/router"
	"github.com/danielhkuo/campus-vote/store"
	"github.com/danielhkuo/campus-vote/store/dynamo"
	"github.com/danielhkuo/campus-vote/store/sqlstore"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open the document store
	var st store.Store
	switch cfg.StoreBackend {
	case cliparse.BackendDynamo:
		st, err = dynamo.Open(context.Background(), cfg.AWSRegion, cfg.DynamoEndpoint, map[string]string{
			cfg.CandidatesTable: "id",
			cfg.VotesTable:      "userId",
		})
	default:
		st, err = sqlstore.Open(cfg.StoreBackend, cfg.DatabaseURL)
	}
	if err != nil {
		slog.Error("store connection failed", "backend", cfg.StoreBackend, "error", err)
		os.Exit(1)
	}
	defer st.Close()
	slog.Info("Store ready", "backend", cfg.StoreBackend)

	// Create router
	ms := metrics.NewMetricService()
	mux := router.NewRouter(st, cfg, ms)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
