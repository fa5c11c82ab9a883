package main

import (
	"context"
	"os"

	"github.com/la-castro-web/solanapix/internal/activity"
	"github.com/la-castro-web/solanapix/internal/assetbook"
	"github.com/la-castro-web/solanapix/internal/config"
	"github.com/la-castro-web/solanapix/internal/handlers/cli"
	"github.com/la-castro-web/solanapix/internal/holdings"
	"github.com/la-castro-web/solanapix/internal/infra/blockchain/solana"
	"github.com/la-castro-web/solanapix/internal/infra/priceoracle/coingecko"
	"github.com/la-castro-web/solanapix/internal/infra/storage/redis"
	"github.com/la-castro-web/solanapix/internal/pkg/logger"
	"github.com/la-castro-web/solanapix/internal/pkg/resilience/retry"
	"github.com/la-castro-web/solanapix/internal/pkg/telemetry"
	transporthttp "github.com/la-castro-web/solanapix/internal/pkg/transport/http"
	"github.com/la-castro-web/solanapix/internal/pkg/transport/jsonrpc"
	"github.com/la-castro-web/solanapix/internal/txhistory"
	"github.com/la-castro-web/solanapix/internal/txstats"
)

const serviceName = "solanapix"

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		if logErr := logger.Init(); logErr == nil {
			logger.Fatal(ctx, "error loading configuration", "error", err)
		}
		os.Exit(1)
	}

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, serviceName)
		if err != nil {
			if logErr := logger.Init(logger.WithLevel(cfg.LogLevel)); logErr == nil {
				logger.Fatal(ctx, "error initializing telemetry", "error", err)
			}
			os.Exit(1)
		}
		defer shutdown(ctx)
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel)); err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	httpClient := transporthttp.NewClient(transporthttp.WithTimeout(cfg.RequestTimeout))
	rpcConn := jsonrpc.NewClient(httpClient.StandardClient(), cfg.RPCEndpoint)

	chain := solana.NewClient(rpcConn)
	book := assetbook.New()
	classifier := activity.NewClassifier(book)

	oracleHTTPClient := transporthttp.NewClient(transporthttp.WithTimeout(cfg.RequestTimeout))
	var rates txstats.RateSource = coingecko.NewClient(oracleHTTPClient, coingecko.WithBaseURL(cfg.CoinGeckoBaseURL))

	listingRetry := retry.New()

	historyOpts := []txhistory.Option{
		txhistory.WithWindow(cfg.HistoryWindow),
		txhistory.WithConcurrency(cfg.FetchConcurrency),
		txhistory.WithRetry(listingRetry),
	}

	if cfg.Redis.Addr != "" {
		cache, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Fatal(ctx, "error connecting to redis", "error", err)
		}
		defer cache.Close()

		historyOpts = append(historyOpts, txhistory.WithRecordCache(cache.RecordCache(cfg.Redis.RecordTTL)))
		rates = cache.RateCache(rates, cfg.Redis.RateTTL)
	}

	history := txhistory.New(chain, classifier, historyOpts...)
	stats := txstats.New(chain, rates, classifier,
		txstats.WithWindow(cfg.StatsWindow),
		txstats.WithConcurrency(cfg.FetchConcurrency),
		txstats.WithCurrency(cfg.ReportingCurrency),
		txstats.WithRetry(listingRetry),
	)
	portfolio := holdings.New(chain, rates, book,
		holdings.WithCurrency(cfg.ReportingCurrency),
		holdings.WithConcurrency(cfg.FetchConcurrency),
	)

	if err := cli.Run(ctx, history, stats, portfolio); err != nil {
		logger.Fatal(ctx, "command failed", "error", err)
	}
}
