package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	_ "github.com/johnquangdev/client-meetings/docs"
	"github.com/johnquangdev/client-meetings/internal/adapter/handler"
	"github.com/johnquangdev/client-meetings/internal/domain/repositories"
	"github.com/johnquangdev/client-meetings/internal/infrastructure/cache"
	"github.com/johnquangdev/client-meetings/internal/infrastructure/metrics"
	"github.com/johnquangdev/client-meetings/internal/infrastructure/storage"
	"github.com/johnquangdev/client-meetings/internal/infrastructure/transcript"
	"github.com/johnquangdev/client-meetings/internal/usecase/actions"
	"github.com/johnquangdev/client-meetings/internal/usecase/email"
	"github.com/johnquangdev/client-meetings/internal/usecase/meeting"
	"github.com/johnquangdev/client-meetings/internal/usecase/notes"
	"github.com/johnquangdev/client-meetings/internal/usecase/report"
	"github.com/johnquangdev/client-meetings/internal/usecase/summary"
	pkgai "github.com/johnquangdev/client-meetings/pkg/ai"
	"github.com/johnquangdev/client-meetings/pkg/config"
	"github.com/johnquangdev/client-meetings/pkg/mailer"
	pkgvalidator "github.com/johnquangdev/client-meetings/pkg/validator"
)

// @title           Client Meetings API
// @version         1.0
// @description     Meeting summaries, discovery reports and client emails for the adviser dashboard.

// @contact.name   API Support

// @host      localhost:3001
// @BasePath  /

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg.Server.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("server exited with error", zap.Error(err))
	}
}

func newLogger(environment string) (*zap.Logger, error) {
	if environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	logger.Info("initializing dependencies",
		zap.String("environment", cfg.Server.Environment),
		zap.String("ai_provider", cfg.AI.Provider),
		zap.String("note_store", cfg.NoteStore.Backend),
	)

	completer, err := newCompleter(ctx, cfg)
	if err != nil {
		return err
	}

	folders, err := config.LoadClientFolders(cfg.Data.ClientFoldersFile)
	if err != nil {
		return err
	}
	logger.Info("client folders loaded", zap.String("path", cfg.Data.ClientFoldersFile), zap.Int("count", len(folders)))

	noteRepo, closeNotes, err := newNoteRepository(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeNotes()

	fileStore, err := newFileStore(ctx, cfg, logger)
	if err != nil {
		return err
	}

	var sender email.Sender
	if cfg.Email.APIKey != "" {
		sender = mailer.NewResendSender(cfg.Email.APIKey)
	} else {
		logger.Warn("RESEND_API_KEY not set, email sending is disabled")
	}

	var transcriber meeting.Transcriber
	if asm := pkgai.NewAssemblyAIClient(&cfg.Assembly); asm != nil {
		transcriber = asm
	}

	m := metrics.New()
	svc := meeting.NewService(meeting.Deps{
		Summarizer:  summary.NewService(completer, summary.NewFilePromptLoader(cfg.AI.SummaryPromptPath), cfg.AI.MaxTokens, logger),
		Reports:     report.NewGenerator(completer, cfg.AI.ReportMaxTokens, logger),
		Files:       actions.NewWriter(fileStore, folders, logger),
		Notes:       notes.NewService(noteRepo, logger),
		Transcripts: transcript.NewFileSource(cfg.Data.MockTranscriptPath),
		Transcriber: transcriber,
		Mailer:      email.NewDispatcher(cfg.Email, sender, logger),
		EmailConfig: cfg.Email,
		Metrics:     m,
		Logger:      logger,
	})

	e := newEcho(cfg, logger, m)
	handler.NewRouter(cfg, handler.NewMeetingHandler(svc, logger), m).Setup(e)

	errCh := make(chan error, 1)
	go func() {
		addr := cfg.GetServerAddr()
		logger.Info("starting server", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("server stopped gracefully")
	return nil
}

func newCompleter(ctx context.Context, cfg *config.Config) (pkgai.Completer, error) {
	switch cfg.AI.Provider {
	case config.ProviderAnthropic:
		return pkgai.NewAnthropicClient(&cfg.Anthropic), nil
	default:
		return pkgai.NewGeminiClient(ctx, &cfg.Gemini)
	}
}

func newNoteRepository(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repositories.NoteRepository, func(), error) {
	if cfg.NoteStore.Backend != config.NoteStoreRedis {
		return cache.NewMemoryNoteStore(), func() {}, nil
	}

	client, err := cache.NewRedisClient(ctx, &cfg.Redis, logger)
	if err != nil {
		return nil, nil, err
	}
	return cache.NewRedisNoteStore(client), func() { _ = client.Close() }, nil
}

func newFileStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (storage.JSONStore, error) {
	local := storage.NewLocalStore(cfg.Data.Folder)
	logger.Info("meeting files stored locally", zap.String("data_folder", local.Root()))
	if !cfg.Storage.Mirror {
		return local, nil
	}

	mirror, err := storage.NewMinIOClient(ctx, &cfg.Storage)
	if err != nil {
		return nil, err
	}
	logger.Info("mirroring data folder to object storage",
		zap.String("endpoint", cfg.Storage.Endpoint),
		zap.String("bucket", cfg.Storage.BucketName),
	)
	return storage.NewMirroredStore(local, mirror, logger), nil
}

func newEcho(cfg *config.Config, logger *zap.Logger, m *metrics.Metrics) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = pkgvalidator.New()
	e.HTTPErrorHandler = handler.ErrorHandler(logger)

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("request_id", v.RequestID),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			logger.Info("request", fields...)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.Server.CORSOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))
	e.Use(m.Middleware())
	return e
}
