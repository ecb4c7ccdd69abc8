package main

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"espaygw/docs" //this is required to generate swagger docs
	"espaygw/internal/auth"
	"espaygw/internal/payments"
	"espaygw/internal/ratelimiter"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config        config
	logger        *zap.SugaredLogger
	espay         *payments.Client
	authenticator auth.Authenticator
	rateLimiter   ratelimiter.Limiter
	resolver      *net.Resolver
	egressClient  *http.Client
}

type config struct {
	addr        string
	env         string
	apiURL      string
	auth        authConfig
	rateLimiter ratelimiter.Config
	espay       payments.Config
	egressURL   string
}

type authConfig struct {
	basic basicConfig
	token tokenConfig
}
type tokenConfig struct {
	secret string
	exp    time.Duration
	iss    string
}
type basicConfig struct {
	user     string
	passHash string // bcrypt
}

// requestTimeout leaves room for the partner call to finish or fail on its
// own deadline before the handler context is cancelled.
func (c config) requestTimeout() time.Duration {
	t := c.espay.Timeouts.Request
	if t <= 0 {
		t = payments.DefaultTimeouts().Request
	}
	return t + 5*time.Second
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(app.MetricsMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Use(middleware.Timeout(app.config.requestTimeout()))

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)
		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))

		r.Get("/bank-codes", app.bankCodesHandler)

		r.Group(func(r chi.Router) {
			r.Use(app.AuthTokenMiddleware)
			r.Use(app.RateLimiterMiddleware)

			r.Post("/qris/generate", app.generateQRISHandler)
			r.Post("/pushtopay/qr", app.pushToPayHandler)
			r.Post("/va", app.createVAHandler)
			r.Post("/payment-host-to-host", app.hostToHostHandler)
			r.Post("/simple-payment", app.simplePaymentHandler)
		})

		r.Route("/debug", func(r chi.Router) {
			r.Use(app.BasicAuthMiddleware())
			r.Get("/vars", expvar.Handler().ServeHTTP)
			r.Get("/config", app.debugConfigHandler)
			r.Get("/dns", app.debugDNSHandler)
			r.Get("/egress-ip", app.debugEgressIPHandler)
			r.Post("/signature", app.debugSignatureHandler)
		})
	})
	return r
}

func (app *application) run(mux http.Handler) error {
	// Docs
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/v1"

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: app.config.requestTimeout() + 5*time.Second,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	// Implementing graceful shutdown
	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env, "espay", app.config.espay.Base())

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
