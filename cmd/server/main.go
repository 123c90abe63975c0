package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/atelierdoces/backoffice/internal/config"
	"github.com/atelierdoces/backoffice/internal/domain/activity"
	"github.com/atelierdoces/backoffice/internal/domain/auth"
	"github.com/atelierdoces/backoffice/internal/domain/cake"
	"github.com/atelierdoces/backoffice/internal/domain/customer"
	"github.com/atelierdoces/backoffice/internal/domain/payment"
	"github.com/atelierdoces/backoffice/internal/domain/project"
	"github.com/atelierdoces/backoffice/internal/mcp"
	"github.com/atelierdoces/backoffice/internal/repository"
	"github.com/atelierdoces/backoffice/internal/sqlite"
	"github.com/atelierdoces/backoffice/internal/transport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logWriter := io.Writer(os.Stdout)
	if logPath := os.Getenv("ATELIER_LOG_PATH"); logPath != "" {
		fileWriter, file, err := newLogFileWriter(logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file error: %v\n", err)
		} else {
			defer file.Close()
			logWriter = fileWriter
		}
	}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		logger.Error("failed to prepare database path", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	customerRepo := sqlite.NewCustomerRepository(db)
	projectRepo := sqlite.NewProjectRepository(db)
	cakeRepo := sqlite.NewCakeRepository(db)
	paymentRepo := sqlite.NewPaymentRepository(db)
	userRepo := sqlite.NewUserRepository(db)
	authSessionRepo := sqlite.NewAuthSessionRepository(db)
	activityRepo := sqlite.NewActivityRepository(db)

	customerSvc := customer.NewService(customerRepo, logger)
	projectSvc := project.NewService(projectRepo, customerRepo, logger)
	cakeSvc := cake.NewService(cakeRepo, projectRepo, logger)
	paymentSvc := payment.NewService(paymentRepo, projectRepo, logger)
	authSvc := auth.NewService(userRepo, authSessionRepo, auth.TTLConfig{
		Access:  cfg.Auth.AccessTTL,
		Refresh: cfg.Auth.RefreshTTL,
	}, logger)
	activitySvc := activity.NewService(activityRepo, logger)

	// First-run bootstrap: provision an admin account from the
	// environment so the instance is reachable before any user exists.
	if email := os.Getenv("ATELIER_ADMIN_EMAIL"); email != "" {
		_, err := authSvc.Register(context.Background(), auth.RegisterRequest{
			Email:    email,
			Name:     "Administrator",
			Password: os.Getenv("ATELIER_ADMIN_PASSWORD"),
			Role:     auth.RoleAdmin,
		})
		if err != nil && !errors.Is(err, repository.ErrDuplicate) {
			logger.Warn("bootstrap admin not created", "error", err)
		}
	}

	router := transport.NewServer(transport.Services{
		Customers: customerSvc,
		Projects:  projectSvc,
		Cakes:     cakeSvc,
		Payments:  paymentSvc,
		Auth:      authSvc,
		Activity:  activitySvc,
	}, logger, cfg.Server.SecureCookies)

	mcpServer := mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Projects:  projectSvc,
			Customers: customerSvc,
		},
		Resolver: authSvc,
		Logger:   logger,
	})
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(
		func(r *http.Request) *sdkmcp.Server { return mcpServer },
		&sdkmcp.StreamableHTTPOptions{
			SessionTimeout: 30 * time.Minute,
		},
	)
	router.Handle("/mcp", mcpHandler)
	router.Handle("/mcp/*", mcpHandler)

	// Periodically drop sessions whose refresh window lapsed.
	purgeCtx, stopPurge := context.WithCancel(context.Background())
	defer stopPurge()
	go purgeExpiredSessions(purgeCtx, authSvc, logger)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
}

func purgeExpiredSessions(ctx context.Context, authSvc *auth.Service, logger *slog.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := authSvc.PurgeExpired(ctx); err != nil {
				logger.Warn("purging expired sessions", "error", err)
			}
		}
	}
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

const (
	maxLogSizeBytes  = 6 * 1024 * 1024
	keepLogSizeBytes = 5 * 1024 * 1024
)

// logFileWriter appends to a single log file and trims it back to
// keepLogSizeBytes once it crosses maxLogSizeBytes.
type logFileWriter struct {
	path string
	file *os.File
	mu   sync.Mutex
}

func newLogFileWriter(path string) (*logFileWriter, *os.File, error) {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	writer := &logFileWriter{path: path, file: file}
	if err := writer.truncateIfNeeded(); err != nil {
		return nil, nil, err
	}
	return writer, file, nil
}

func (w *logFileWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	n, err := w.file.Write(p)
	if err != nil {
		return n, err
	}
	if err := w.truncateIfNeeded(); err != nil {
		return n, err
	}
	return n, nil
}

func (w *logFileWriter) truncateIfNeeded() error {
	info, err := w.file.Stat()
	if err != nil {
		return err
	}
	size := info.Size()
	if size <= maxLogSizeBytes {
		return nil
	}

	buf := make([]byte, keepLogSizeBytes)
	if _, err := w.file.Seek(size-keepLogSizeBytes, io.SeekStart); err != nil {
		return err
	}
	n, err := w.file.Read(buf)
	if err != nil && err != io.EOF {
		return err
	}
	buf = buf[:n]

	if err := w.file.Truncate(0); err != nil {
		return err
	}
	if _, err := w.file.Seek(0, io.SeekStart); err != nil {
		return err
	}
	if _, err := w.file.Write(buf); err != nil {
		return err
	}
	_, err = w.file.Seek(0, io.SeekEnd)
	return err
}
