package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"designermonk"
	"designermonk/config"
	"designermonk/internal/application/compressor"
	"designermonk/internal/application/ingress"
	"designermonk/internal/application/usecase"
	brokerRepository "designermonk/internal/domain/repository/broker"
	"designermonk/internal/infrastructure/broker"
	"designermonk/internal/infrastructure/database"
	"designermonk/internal/infrastructure/eventsink"
	"designermonk/internal/infrastructure/metrics"
	"designermonk/internal/presentation"
	"designermonk/internal/presentation/handler"
	"designermonk/internal/presentation/middleware"
	"designermonk/pkg/logger"
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running designermonk", "version", designermonk.StringVersion())

	sinks := []brokerRepository.Publisher{eventsink.NewLogSink(), metrics.NewSink()}
	if cfg.BrokerConfig.URI != "" {
		brokerClient, err := broker.NewClient(cfg.BrokerConfig)
		if err != nil {
			ExitOnError(err)
		}
		defer brokerClient.Close()

		sinks = append(sinks, broker.NewPublisher(brokerClient, cfg.PublisherConfig))
	} else {
		logger.Warn("BROKER_URI is not set, pipeline events are logged only")
	}
	publisher := eventsink.NewFanout(sinks...)

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}
	defer func() {
		if err := db.Stop(); err != nil {
			logger.Error("can't disconnect from database", "err", err)
		}
	}()

	dbWriter := database.NewProjectWriter(db)
	dbLister := database.NewProjectLister(db)
	dbRetriever := database.NewProjectRetriever(db)
	dbUpdater := database.NewProjectUpdater(db)
	dbRemover := database.NewProjectRemover(db)

	imageUploader, imageRemover, err := newImageStore(context.Background(), cfg)
	if err != nil {
		ExitOnError(err)
	}

	pipeline := usecase.NewImagePipeline(compressor.New(cfg.Compressor), imageUploader, publisher,
		cfg.ImageStore.Folder)

	render := presentation.NewRenderer(cfg.HTTP.EnvelopeResponses)
	handlers := handler.Handlers{
		Create: handler.NewCreateHandler(usecase.NewCreator(pipeline, dbWriter, imageRemover), render),
		Update: handler.NewUpdateHandler(usecase.NewUpdater(pipeline, dbRetriever, dbUpdater, imageRemover), render),
		List:   handler.NewListHandler(usecase.NewLister(dbLister), render),
		Get:    handler.NewGetHandler(usecase.NewGetter(dbRetriever), render),
		Delete: handler.NewDeleteHandler(usecase.NewDeleter(dbRemover, imageRemover), render),
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = render.HTTPErrorHandler

	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: cfg.HTTP.AllowOrigins,
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost,
			http.MethodDelete, http.MethodOptions},
		MaxAge: 86400,
	}))
	e.Use(echoMiddleware.RequestID())
	e.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(_ echo.Context, v echoMiddleware.RequestLoggerValues) error {
			logger.Info("request", "method", v.Method, "uri", v.URI, "status", v.Status,
				"latency", v.Latency.String(), "request_id", v.RequestID)

			return nil
		},
	}))
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(metrics.Middleware())
	if cfg.HTTP.BodyLimit != "" {
		e.Use(echoMiddleware.BodyLimit(cfg.HTTP.BodyLimit))
	}
	if cfg.HTTP.RateLimit > 0 {
		e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(rate.Limit(cfg.HTTP.RateLimit))))
	}

	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	handler.Register(e, handlers, middleware.Ingress(ingress.NewFilter(cfg.Ingress), publisher, render))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.HTTP.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(fmt.Errorf("shutting down server: %w", err))
		}
	}()

	<-ctx.Done()

	timeout := time.Duration(cfg.HTTP.ShutdownTimeout) * time.Millisecond
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("can't shut down server gracefully", "err", err)
	}
}
