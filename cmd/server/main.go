package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hymuslim/hymuslim-server/internal/cache"
	"github.com/hymuslim/hymuslim-server/internal/client"
	"github.com/hymuslim/hymuslim-server/internal/config"
	"github.com/hymuslim/hymuslim-server/internal/db"
	"github.com/hymuslim/hymuslim-server/internal/http/api"
	authendpoints "github.com/hymuslim/hymuslim-server/internal/http/api/account/auth/endpoints"
	accountendpoints "github.com/hymuslim/hymuslim-server/internal/http/api/account/endpoints"
	publicendpoints "github.com/hymuslim/hymuslim-server/internal/http/api/public/endpoints"
	"github.com/hymuslim/hymuslim-server/internal/notify"
	"github.com/hymuslim/hymuslim-server/internal/prayer"
	"github.com/hymuslim/hymuslim-server/internal/quran"
	"github.com/hymuslim/hymuslim-server/internal/scheduler"
)

// shellManifest lists the app shell entries precached at startup. Bumping
// CACHE_GENERATION forces a full re-cache and purges the prior generation.
var shellManifest = []string{
	"/",
	"/index.html",
	"/manifest.json",
	"/assets/index.js",
	"/assets/index.css",
}

const shellRoot = "/index.html"

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	if err := db.Init(cfg.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init failed")
	}
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate failed")
	}
	store := db.NewStore()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Username: cfg.RedisUsername,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	layer := cache.New(
		cache.NewRedisBackend(rdb),
		cache.NewHTTPOrigin(cfg.ShellOriginURL),
		cfg.CacheGeneration,
		shellManifest,
		shellRoot,
	)
	// Shell precache failure is not fatal: the layer still answers
	// read-through fetches, it just cannot serve the shell offline yet.
	if err := layer.Install(ctx); err != nil {
		log.Warn().Err(err).Msg("shell precache failed, continuing without offline shell")
	} else if err := layer.Activate(ctx); err != nil {
		log.Warn().Err(err).Msg("cache activation failed")
	}

	myquranClient := client.NewMyQuran()
	myquranClient.BaseURL = cfg.MyQuranBaseURL
	alquranClient := client.NewAlQuran()
	alquranClient.BaseURL = cfg.AlQuranBaseURL
	quranComClient := client.NewQuranCom()
	quranComClient.BaseURL = cfg.QuranComBaseURL

	prayerService := prayer.NewService(myquranClient, layer)
	quranService := quran.NewService(alquranClient, quranComClient, layer)

	notifier, err := notify.NewMQTTNotifier(cfg.MQTTBrokerURL, "hymuslim-server")
	if err != nil {
		log.Fatal().Err(err).Msg("MQTT init failed")
	}
	defer notifier.Close()

	alerts := scheduler.New(store, notifier, prayerService)
	go alerts.Run(ctx)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api.MountGroup(router, api.GroupConfig{Prefix: "/api"},
		api.ModuleFunc(func(c *api.Controller) {
			publicendpoints.RegisterPrayerRoutes(c.Group, prayerService)
			publicendpoints.RegisterQuranRoutes(c.Group, quranService)
			publicendpoints.RegisterShellRoutes(c.Group, layer)
		}),
	)

	account := router.Group("/api/account")
	authendpoints.RegisterAuthRoutes(account, store, cfg.JWTSecret)

	api.MountGroup(account, api.GroupConfig{Auth: true, SecretKey: cfg.JWTSecret, Store: store},
		api.ModuleFunc(func(c *api.Controller) {
			authendpoints.RegisterProfileRoutes(c.Group)
			accountendpoints.RegisterPreferenceRoutes(c.Group, store, alerts)
			accountendpoints.RegisterBookmarkRoutes(c.Group, store)
			accountendpoints.RegisterAlertRoutes(c.Group, alerts, notifier)
		}),
	)

	server := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: router,
	}

	go func() {
		log.Info().Str("address", cfg.ServerAddress).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
