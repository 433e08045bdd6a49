// Copyright 2024-2025 NetCracker Technology Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/euscan/euscanwww/cache"
	"github.com/euscan/euscanwww/config"
	"github.com/euscan/euscanwww/controller"
	"github.com/euscan/euscanwww/db"
	"github.com/euscan/euscanwww/metrics"
	"github.com/euscan/euscanwww/repository"
	"github.com/euscan/euscanwww/router"
	"github.com/euscan/euscanwww/security"
	"github.com/euscan/euscanwww/service"
	"github.com/euscan/euscanwww/templates"
	"github.com/euscan/euscanwww/utils"
	"github.com/euscan/euscanwww/view"
	"github.com/gorilla/handlers"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"gopkg.in/natefinch/lumberjack.v2"
)

func init() {
	log.SetFormatter(&prefixed.TextFormatter{
		DisableColors:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
		ForceFormatting: true,
	})
	log.SetOutput(os.Stderr)
}

func setupLogging(cfg config.LoggingConfig) {
	logLevel, err := log.ParseLevel(cfg.Level)
	if err != nil {
		logLevel = log.InfoLevel
	}
	log.SetLevel(logLevel)
	if cfg.File == "" {
		return
	}
	log.SetOutput(io.MultiWriter(os.Stderr, &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMb, // megabytes
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	}))
}

func main() {
	cfg, err := config.LoadConfig(".", "/etc/euscanwww")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	setupLogging(cfg.Logging)
	utils.PrintConfig(cfg)

	readyChan := make(chan bool)

	cp := db.NewConnectionProvider(cfg.Database)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	err = db.CreateSchema(ctx, cp)
	cancel()
	if err != nil {
		log.Fatalf("Failed to create database schema: %v", err)
	}

	olricProvider, err := cache.NewOlricProvider(cfg.Olric)
	if err != nil {
		log.Fatalf("Failed to start olric: %v", err)
	}

	packageRepository := repository.NewPackageRepositoryPG(cp)
	herdRepository := repository.NewHerdRepositoryPG(cp)
	maintainerRepository := repository.NewMaintainerRepositoryPG(cp)
	versionLogRepository := repository.NewVersionLogRepositoryPG(cp)
	favoritesRepository := repository.NewFavoritesRepositoryPG(cp)
	userRepository := repository.NewUserRepositoryPG(cp)
	refreshQueryRepository := repository.NewRefreshQueryRepositoryPG(cp)
	statsRepository := repository.NewStatsRepositoryPG(cp)

	businessParameters := cfg.BusinessParameters
	packageService := service.NewPackageService(packageRepository, versionLogRepository, favoritesRepository, refreshQueryRepository, businessParameters.PackageLogLimit)
	sectionService := service.NewSectionService(packageRepository, herdRepository, maintainerRepository, favoritesRepository)
	favoritesService := service.NewFavoritesService(favoritesRepository, packageRepository, herdRepository, maintainerRepository, versionLogRepository, packageService, sectionService)
	feedService := service.NewFeedService(versionLogRepository, businessParameters.FeedItemsLimit)
	worldScanService := service.NewWorldScanService(packageRepository, businessParameters.WorldScanMaxEntries)
	worldScanExportService := service.NewWorldScanExportService()
	userService := service.NewUserService(userRepository)
	tokenRevocationService := service.NewTokenRevocationService(olricProvider, cfg.Security.TokenRevocationCacheSec)
	statsService := service.NewStatsService(statsRepository, packageRepository, herdRepository, maintainerRepository, olricProvider, businessParameters.IndexStatsCacheTTLSec)
	var worldFileRepository repository.WorldFileRepository
	if cfg.S3Storage.Enabled {
		worldFileRepository, err = repository.NewWorldFileRepositoryMinio(view.MinioStorageCreds{
			BucketName:      cfg.S3Storage.BucketName,
			IsActive:        cfg.S3Storage.Enabled,
			Endpoint:        cfg.S3Storage.Url,
			Crt:             cfg.S3Storage.Crt,
			AccessKeyId:     cfg.S3Storage.Username,
			SecretAccessKey: cfg.S3Storage.Password,
		})
		if err != nil {
			log.Fatalf("Failed to create object storage client: %v", err)
		}
	}
	worldArchiveService := service.NewWorldArchiveService(worldFileRepository)

	statsJobService := service.NewStatsJobService(statsService)
	if cfg.Jobs.CountersSchedule != "" {
		if err := statsJobService.CreateJob(cfg.Jobs.CountersSchedule); err != nil {
			log.Fatalf("Failed to schedule counters job: %v", err)
		}
	}

	if err := security.SetupGoGuardian(cfg.Security.JwtSecret,
		time.Duration(cfg.Security.AccessTokenDurationSec)*time.Second,
		cfg.Security.ProductionMode,
		tokenRevocationService); err != nil {
		log.Fatalf("Failed to setup authentication: %v", err)
	}

	r := router.New()
	urls := router.Reverse(r)
	renderer, err := templates.NewRenderer(urls)
	if err != nil {
		log.Fatalf("Failed to parse templates: %v", err)
	}

	controllers := router.Controllers{
		Pages:     controller.NewPageController(statsService, feedService, renderer, urls, businessParameters.RecentVersionsOnIndex),
		Sections:  controller.NewSectionController(sectionService, renderer, urls),
		Packages:  controller.NewPackageController(packageService, renderer, urls),
		Favorites: controller.NewFavoriteController(favoritesService, renderer, urls),
		Feeds:     controller.NewFeedController(feedService, packageService, sectionService, favoritesService, renderer, urls, cfg.TechnicalParameters.ExternalUrl),
		Accounts:  controller.NewAccountController(userService, favoritesService, tokenRevocationService, renderer, urls, cfg.Security.AllowRegistration),
		WorldScan: controller.NewWorldScanController(worldScanService, worldScanExportService, worldArchiveService, renderer, businessParameters.WorldFileSizeLimitKb*1024),
		Api:       controller.NewApiController(statsService, sectionService, packageService),
		Health:    controller.NewHealthController(readyChan),
	}
	if cfg.Monitoring.Enabled {
		metrics.RegisterAllPrometheusApplicationMetrics()
		controllers.Metrics = promhttp.Handler()
	}
	router.Register(r, controllers)
	// the login path is only known once the routes are registered
	security.LoginPath = urls("accounts_login")

	srv := &http.Server{
		Handler:      handlers.ProxyHeaders(handlers.CompressHandler(r)),
		Addr:         cfg.TechnicalParameters.ListenAddress,
		WriteTimeout: 300 * time.Second,
		ReadTimeout:  60 * time.Second,
	}

	utils.SafeAsync(func() {
		readyChan <- true
	})

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	utils.SafeAsync(func() {
		<-stop
		log.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Errorf("Failed to shutdown http server: %v", err)
		}
	})

	log.Infof("Listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("%v", err)
	}
	statsJobService.Stop()
	if err := olricProvider.Shutdown(); err != nil {
		log.Errorf("Failed to shutdown olric: %v", err)
	}
	if err := cp.Close(); err != nil {
		log.Errorf("Failed to close database connection: %v", err)
	}
}
