package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/promoforge/adgen-backend/internal/analysis"
	"github.com/promoforge/adgen-backend/internal/config"
	"github.com/promoforge/adgen-backend/internal/render"
	"github.com/promoforge/adgen-backend/internal/storage"
	jobRepository "github.com/promoforge/adgen-backend/internal/videojobs/repository"
	"github.com/promoforge/adgen-backend/internal/worker"
	"github.com/promoforge/adgen-backend/pkg/db/aws"
	"github.com/promoforge/adgen-backend/pkg/db/postgres"
	clientRedis "github.com/promoforge/adgen-backend/pkg/db/redis"
	"github.com/promoforge/adgen-backend/pkg/logger"
)

func main() {
	configFile := "config.yml"
	cfgFile, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("loadConfig: %v", err)
	}
	cfg, err := config.ParseConfig(cfgFile)
	if err != nil {
		log.Fatalf("parseConfig: %v", err)
	}

	appLogger := logger.NewApiLogger(cfg)
	appLogger.InitLogger()
	appLogger.Infof("AppVersion: %s, LogLevel: %s, Mode: %s", cfg.Server.AppVersion, cfg.Logger.Level, cfg.Server.Mode)

	psqlDB, err := postgres.NewPsqlDB(cfg)
	if err != nil {
		appLogger.Fatalf("could not connect to db: %s", err)
	}
	appLogger.Infof("db connected, status: %#v", psqlDB.Stats())
	defer psqlDB.Close()

	redisClient, err := clientRedis.NewRedisClient(cfg)
	if err != nil {
		appLogger.Fatalf("could not connect to redis: %s", err)
	}
	appLogger.Infof("redis connected")
	defer redisClient.Close()

	awsClient, err := aws.NewAWSClient(cfg.S3.Endpoint, cfg.S3.Region, cfg.S3.AccessKey, cfg.S3.SecretKey)
	if err != nil {
		appLogger.Fatalf("could not connect to s3: %s", err)
	}

	jobRepo := jobRepository.NewJobRepo(psqlDB)
	queueRepo := jobRepository.NewJobQueueRepo(redisClient)
	store := storage.NewAwsRepository(awsClient, cfg)
	analyzer := analysis.NewHTTPClient(cfg)
	renderer := render.NewHTTPClient(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		appLogger.Infof("Shutting down worker")
		cancel()
	}()

	w := worker.NewWorker(cfg, appLogger, jobRepo, queueRepo, store, analyzer, renderer)
	w.Start(ctx)
	w.Wait()
}
