package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	cartv1 "github.com/dwikikusuma/storefront-cart/api/cart/v1"
	"github.com/dwikikusuma/storefront-cart/internal/cart/app"
	cartgrpc "github.com/dwikikusuma/storefront-cart/internal/cart/grpc"
	"github.com/dwikikusuma/storefront-cart/internal/cart/infra/storefront"
	"github.com/dwikikusuma/storefront-cart/pkg/config"
	"github.com/dwikikusuma/storefront-cart/pkg/graphql"
	"github.com/dwikikusuma/storefront-cart/pkg/logger"
	"github.com/dwikikusuma/storefront-cart/pkg/shutdown"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Service:   "cartd",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: true,
	})

	if cfg.StorefrontURL == "" {
		log.Error("STOREFRONT_URL is required")
		os.Exit(1)
	}

	root := context.Background()
	ctx, cancel := shutdown.WithSignals(root)
	defer cancel()

	gql := graphql.NewClient(cfg.StorefrontURL,
		graphql.WithHTTPClient(&http.Client{Timeout: cfg.StorefrontTimeout}),
		graphql.WithHeader("X-Shopify-Storefront-Access-Token", cfg.StorefrontToken),
		graphql.WithLogger(log),
	)
	carts := storefront.NewCartResource(gql,
		storefront.WithPageSize(cfg.LinesPageSize),
		storefront.WithLogger(log),
	)
	cartSvc := app.NewService(carts, log)

	grpcAddr := fmt.Sprintf(":%d", cfg.GRPCPort)
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		log.Error("listen failed", slog.Any("err", err), slog.String("addr", grpcAddr))
		os.Exit(1)
	}

	grpcServer := grpc.NewServer()
	cartv1.RegisterCartServiceServer(grpcServer, cartgrpc.NewServer(cartSvc))

	healthAddr := fmt.Sprintf(":%d", cfg.HealthPort)
	health := &http.Server{
		Addr:              healthAddr,
		Handler:           healthRouter(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("grpc starting", slog.String("addr", grpcAddr))
		if err := grpcServer.Serve(lis); err != nil {
			return fmt.Errorf("grpc serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		log.Info("health server starting", slog.String("addr", healthAddr))
		if err := health.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("health serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown requested")

		stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer stopCancel()
		if err := health.Shutdown(stopCtx); err != nil {
			log.Error("health shutdown error", slog.Any("err", err))
		}

		if !shutdown.Graceful(10*time.Second, grpcServer.GracefulStop, grpcServer.Stop) {
			log.Warn("graceful stop timeout, forcing stop")
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("cartd stopped with error", slog.Any("err", err))
		os.Exit(1)
	}
	log.Info("bye")
}

func healthRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	return r
}
