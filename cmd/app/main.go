package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salesdelivery/api"
	"salesdelivery/cmd"
	httpin "salesdelivery/internal/adapters/in/http"
	"salesdelivery/internal/adapters/out/postgres/carrierrepo"
	"salesdelivery/internal/adapters/out/postgres/orderrepo"
	"salesdelivery/internal/adapters/out/postgres/outboxrepo"
	"salesdelivery/internal/adapters/out/rabbitmq"
	"salesdelivery/internal/pkg/logger"

	"github.com/getkin/kin-openapi/openapi3"
	gommonlog "github.com/labstack/gommon/log"
	"github.com/lib/pq"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(configs.LogLevel)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync() //nolint:errcheck

	gormDB, err := openDB(configs.DSN())
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	zapLogger.Info("database connected")

	if err = migrate(gormDB); err != nil {
		zapLogger.Fatal("migrating schema", zap.Error(err))
	}

	doc, err := api.Load()
	if err != nil {
		zapLogger.Fatal("loading openapi document", zap.Error(err))
	}
	if err = api.RegisterSwagger(doc); err != nil {
		zapLogger.Fatal("registering swagger document", zap.Error(err))
	}

	channels, err := rabbitmq.NewChannelPool(configs.RabbitMQURL, configs.RabbitMQQueue, configs.RabbitMQChannels, zapLogger)
	if err != nil {
		zapLogger.Fatal("connecting to rabbitmq", zap.Error(err))
	}
	defer channels.Close()
	publisher := rabbitmq.NewEventPublisher(channels, configs.RabbitMQQueue, zapLogger)

	app := cmd.NewCompositionRoot(configs, gormDB, publisher, zapLogger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		zapLogger.Fatal("starting jobs", zap.Error(err))
	}
	defer jobManager.StopAll()

	startWebServer(app, doc, configs.HTTPPort, zapLogger)
}

func startWebServer(app cmd.CompositionRoot, doc *openapi3.T, port string, zapLogger *zap.Logger) {
	server := httpin.NewServer(app.CreateHTTPHandlers(), doc, zapLogger)
	e := httpin.NewRouter(server, zapLogger)
	e.Logger.SetLevel(gommonlog.INFO)

	go func() {
		zapLogger.Info("http server started", zap.String("port", port))
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Error("http server shutdown failed", zap.Error(err))
	}
}

func openDB(dsn string) (*gorm.DB, error) {
	connector, err := pq.NewConnector(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	sqlDB := sql.OpenDB(connector)
	if err = sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError: true,
	})
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&carrierrepo.CarrierDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&outboxrepo.OutboxMessageDTO{},
	)
}
