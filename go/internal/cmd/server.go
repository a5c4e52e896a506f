package main

import (
	"fmt"
	"net/http"
	"time"

	"connectrpc.com/grpcreflect"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mcdev12/contest-timer/go/internal/genproto/timer/v1/timerv1connect"
	"github.com/mcdev12/contest-timer/go/internal/web"
)

func setupServer(cfg *Config, services *Services) *http.Server {
	mux := http.NewServeMux()

	c := cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
		},
		AllowedOrigins: []string{"*"},
		AllowedHeaders: []string{"*"},
	})

	registerServices(mux, cfg, services)
	setupReflection(mux)
	setupHealthCheck(mux, services)

	handler := c.Handler(mux)

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

func registerServices(mux *http.ServeMux, cfg *Config, services *Services) {
	// JSON API consumed by the browser client
	services.Timer.RegisterRoutes(mux)

	// Connect RPC mirror of the same operations
	timerServicePath, timerServiceHandler := timerv1connect.NewTimerServiceHandler(services.RPC)
	mux.Handle(timerServicePath, timerServiceHandler)

	// WebSocket push channel
	services.Gateway.RegisterRoutes(mux)

	// Everything else is the single-page client
	mux.Handle("/", web.Handler(cfg.StaticDir))
}

func setupReflection(mux *http.ServeMux) {
	reflector := grpcreflect.NewStaticReflector(
		timerv1connect.TimerServiceName,
	)
	mux.Handle(grpcreflect.NewHandlerV1(reflector))
	mux.Handle(grpcreflect.NewHandlerV1Alpha(reflector))
}

func setupHealthCheck(mux *http.ServeMux, services *Services) {
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Error().Err(err).Msg("failed to write health check response")
		}
	})
	mux.Handle("/healthz/ready", services.Health)
}
