package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/infra/db"
	infraRepo "storefront/internal/infra/repository"
	"storefront/internal/infra/storage"
	"storefront/internal/infra/token"
	"storefront/internal/logger"
	"storefront/internal/middleware"
	"storefront/internal/server"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	//.envはなくてもいい（本番は環境変数）
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		l := logger.New("info", false)
		l.Fatal().Err(err).Msg("load config")
	}

	log := logger.New(cfg.LogLevel, cfg.IsDev())
	if envErr != nil {
		log.Debug().Err(envErr).Msg(".env not loaded")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//DB接続
	gormDB, err := db.Connect(cfg.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("connect db")
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal().Err(err).Msg("migrate")
	}

	//S3
	store, err := storage.NewS3Storage(ctx, storage.S3Options{
		Bucket:          cfg.BucketName,
		Region:          cfg.BucketRegion,
		AccessKey:       cfg.AccessKey,
		SecretAccessKey: cfg.SecretAccessKey,
		Endpoint:        cfg.S3Endpoint,
		PublicDomain:    cfg.CDNDomain,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("init object storage")
	}

	//Repository（GORM実装）生成
	shopRepo := infraRepo.NewShopGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	txm := infraRepo.NewTxManagerGorm(gormDB)

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}
	jwtm := token.NewJWTManager(cfg.JWTSecret)

	//Usecase生成
	authUC := usecase.NewAuthUsecase(shopRepo, jwtm, idGen, clock, log)
	shopUC := usecase.NewShopUsecase(shopRepo, store, idGen, log)
	productUC := usecase.NewProductUsecase(shopRepo, productRepo, store, idGen, log)
	storefrontUC := usecase.NewStorefrontUsecase(shopRepo, productRepo, txm, idGen, log)
	orderUC := usecase.NewOrderUsecase(orderRepo)

	//Handler生成
	reg := prometheus.NewRegistry()
	e := server.New(cfg, log, reg, server.Handlers{
		Auth:       handler.NewAuthHandler(authUC),
		Shop:       handler.NewShopHandler(shopUC, productUC, orderUC),
		Storefront: handler.NewStorefrontHandler(storefrontUC),
		AuthJWT:    middleware.AuthJWT(jwtm),
		Gatherer:   reg,
	})

	//Server起動
	if err := server.Start(ctx, e, cfg.Addr(), log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
