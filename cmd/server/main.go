package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/adityav25/tunestream/internal/gateway"
	"github.com/adityav25/tunestream/internal/gateway/middleware"
	"github.com/adityav25/tunestream/internal/modules/admin"
	"github.com/adityav25/tunestream/internal/modules/artist"
	"github.com/adityav25/tunestream/internal/modules/auth"
	"github.com/adityav25/tunestream/internal/modules/catalog"
	"github.com/adityav25/tunestream/internal/modules/discovery"
	"github.com/adityav25/tunestream/internal/modules/export"
	"github.com/adityav25/tunestream/internal/modules/filestorage"
	"github.com/adityav25/tunestream/internal/modules/listening"
	"github.com/adityav25/tunestream/internal/modules/notification"
	"github.com/adityav25/tunestream/internal/modules/playlist"
	"github.com/adityav25/tunestream/internal/modules/social"
	"github.com/adityav25/tunestream/internal/modules/user"
	"github.com/adityav25/tunestream/internal/shared/infrastructure/config"
	"github.com/adityav25/tunestream/internal/shared/infrastructure/database"
	"github.com/adityav25/tunestream/pkg/migration"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	cfg := config.Load()

	if err := migration.AutoMigrate(cfg.Database.URL(), cfg.Server.MigrationsPath, logger); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer db.Close()
	logger.Info("database connected", "host", cfg.Database.Host)

	// Redis is optional: without it the discovery endpoints serve uncached.
	redisClient, err := database.NewRedis(cfg.Redis)
	if err != nil {
		logger.Warn("redis unavailable, caching disabled", "error", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	ctx := context.Background()

	storageModule, err := filestorage.NewModule(ctx, cfg.FileStorage)
	if err != nil {
		log.Fatalf("Failed to initialize file storage: %v", err)
	}

	// Notifications come first so the catalog can fan out new-release events.
	notificationModule := notification.NewModule(db)
	defer notificationModule.Hub().Stop()

	authModule := auth.NewModule(db, cfg.JWT.Secret, cfg.JWT.Expiry)
	userModule := user.NewModule(authModule.UserRepository())
	catalogModule := catalog.NewModule(db, notificationModule.Service())
	playlistModule := playlist.NewModule(db)
	socialModule := social.NewModule(db)
	listeningModule := listening.NewModule(db)
	discoveryModule := discovery.NewModule(db, redisClient)
	exportModule := export.NewModule(db)
	artistModule := artist.NewModule(db)
	adminModule := admin.NewModule(db)

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	mux := gateway.SetupRoutes(gateway.RouterConfig{
		AuthMiddleware:      authMiddleware,
		AuthHandler:         authModule.HTTPHandler(),
		UserHandler:         userModule.HTTPHandler(),
		SongHandler:         catalogModule.SongHandler(),
		AlbumHandler:        catalogModule.AlbumHandler(),
		PlaylistHandler:     playlistModule.HTTPHandler(),
		SocialHandler:       socialModule.HTTPHandler(),
		ListeningHandler:    listeningModule.HTTPHandler(),
		DiscoveryHandler:    discoveryModule.HTTPHandler(),
		ExportHandler:       exportModule.HTTPHandler(),
		UploadHandler:       storageModule.HTTPHandler(),
		ArtistHandler:       artistModule.HTTPHandler(),
		NotificationHandler: notificationModule.HTTPHandler(),
		AdminHandler:        adminModule.HTTPHandler(),
	})

	if !cfg.FileStorage.UseS3 {
		mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.FileStorage.LocalPath))))
	}

	var handler http.Handler = mux
	handler = middleware.PrometheusMiddleware(handler)
	handler = middleware.CORSMiddleware(handler, cfg.Server.AllowedOrigins)

	server := gateway.NewServer(cfg.Server.Port, handler)
	if err := server.Start(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
