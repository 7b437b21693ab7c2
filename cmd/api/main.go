package main

import (
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/kakigather/gather-backend/internal/config"
	"github.com/kakigather/gather-backend/internal/handler"
	"github.com/kakigather/gather-backend/internal/middleware"
	"github.com/kakigather/gather-backend/internal/repository"
	"github.com/kakigather/gather-backend/internal/routes"
	"github.com/kakigather/gather-backend/internal/service"
	pkglogger "github.com/kakigather/gather-backend/pkg/logger"
)

// The listen port is fixed; only DATABASE_URL is configurable.
const listenAddr = ":3000"

func main() {
	dotenvFiles := config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pkglogger.Init(cfg.Env)
	pkglogger.GetLogger().Info().
		Str("env", cfg.Env).
		Strs("env_files", dotenvFiles).
		Msg("starting")

	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Startup self-check: one round trip, logged. Not a health endpoint.
	var version string
	if err := db.Raw("SELECT version()").Scan(&version).Error; err != nil {
		pkglogger.GetLogger().Error().Err(err).Msg("startup version check failed")
	} else {
		pkglogger.GetLogger().Info().Str("version", version).Msg("connected to Postgres")
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	likeRepo := repository.NewLikeRepository(db)

	// Services
	postSvc := service.NewPostService(postRepo, userRepo)
	bookingSvc := service.NewBookingService(bookingRepo)
	likeSvc := service.NewLikeService(likeRepo)

	// Handlers
	rootHandler := handler.NewRootHandler()
	postHandler := handler.NewPostHandler(postSvc)
	bookingHandler := handler.NewBookingHandler(bookingSvc)
	likeHandler := handler.NewLikeHandler(likeSvc)

	if cfg.Env != "local" && cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics())

	// The legacy service ran with cors() defaults: every origin allowed.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	router.Use(cors.New(corsConfig))

	routes.Setup(router, rootHandler, postHandler, bookingHandler, likeHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	pkglogger.GetLogger().Info().Str("addr", listenAddr).Msg("listening")
	if err := router.Run(listenAddr); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initDB opens the Postgres connection and tunes the pool.
func initDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(requireTLS(cfg.DatabaseURL)), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	return db, nil
}

// requireTLS forces sslmode=require unless the URL already picked a mode.
// The database is only reachable over an encrypted transport.
func requireTLS(dsn string) string {
	if strings.Contains(dsn, "sslmode=") {
		return dsn
	}
	u, err := url.Parse(dsn)
	if err != nil {
		return dsn
	}
	q := u.Query()
	q.Set("sslmode", "require")
	u.RawQuery = q.Encode()
	return u.String()
}
