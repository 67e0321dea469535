// Package server initializes and runs the main application server. It wires
// the user store, the in-memory OTP and session registries, the expiry
// reaper, the optional mail gateway, and the gRPC endpoint, and handles
// graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/ndmitriev/gatekeeper/internal/logging"
	"github.com/ndmitriev/gatekeeper/internal/server/auth"
	"github.com/ndmitriev/gatekeeper/internal/server/config"
	"github.com/ndmitriev/gatekeeper/internal/server/db"
	"github.com/ndmitriev/gatekeeper/internal/server/mailer"
	"github.com/ndmitriev/gatekeeper/internal/server/otp"
	"github.com/ndmitriev/gatekeeper/internal/server/reaper"
	"github.com/ndmitriev/gatekeeper/internal/server/sessions"

	gs "github.com/ndmitriev/gatekeeper/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	repos       db.RepositoryManager
	authService *auth.Service
	reaper      *reaper.Reaper
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	repos, err := db.NewPostgresRepositoryManager(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	otps := otp.NewRegistry(c.OtpTTL)
	sess := sessions.NewRegistry(c.SessionTTL)

	// an empty sender means no gateway: sendResetCode degrades to the
	// disclosed mock channel
	var gateway mailer.Mailer
	if c.EmailSender != "" {
		m, err := mailer.NewSESMailer(ctx, c.EmailSender, c.EmailRegion, c.EmailAccessKey, c.EmailSecretKey)
		if err != nil {
			return nil, fmt.Errorf("mailer init error: %w", err)
		}
		gateway = m
	} else {
		logger.Warn(ctx, "No mail sender configured, reset codes will use the mock channel")
	}

	as := auth.NewService(repos.Users(), otps, sess, gateway, logger)
	rp := reaper.New(c.SweepInterval, logger, otps, sess)

	return &App{
		config:      c,
		logger:      logger,
		repos:       repos,
		authService: as,
		reaper:      rp,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.authService)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.reaper.Run(ctx)
	}()

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "error closing db", "error", err.Error())
	}
}
