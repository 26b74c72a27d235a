package gateway

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/adityav25/tunestream/internal/gateway/middleware"
	admin_http "github.com/adityav25/tunestream/internal/modules/admin/interfaces/http"
	artist_http "github.com/adityav25/tunestream/internal/modules/artist/interfaces/http"
	auth_http "github.com/adityav25/tunestream/internal/modules/auth/interfaces/http"
	catalog_http "github.com/adityav25/tunestream/internal/modules/catalog/interfaces/http"
	discovery_http "github.com/adityav25/tunestream/internal/modules/discovery/interfaces/http"
	export_http "github.com/adityav25/tunestream/internal/modules/export/interfaces/http"
	storage_http "github.com/adityav25/tunestream/internal/modules/filestorage/interfaces/http"
	listening_http "github.com/adityav25/tunestream/internal/modules/listening/interfaces/http"
	notification_http "github.com/adityav25/tunestream/internal/modules/notification/interfaces/http"
	playlist_http "github.com/adityav25/tunestream/internal/modules/playlist/interfaces/http"
	social_http "github.com/adityav25/tunestream/internal/modules/social/interfaces/http"
	user_http "github.com/adityav25/tunestream/internal/modules/user/interfaces/http"
)

// RouterConfig holds all the handlers and middleware needed for routing
type RouterConfig struct {
	AuthMiddleware      *middleware.AuthMiddleware
	AuthHandler         *auth_http.AuthHandler
	UserHandler         *user_http.UserHandler
	SongHandler         *catalog_http.SongHandler
	AlbumHandler        *catalog_http.AlbumHandler
	PlaylistHandler     *playlist_http.PlaylistHandler
	SocialHandler       *social_http.SocialHandler
	ListeningHandler    *listening_http.ListeningHandler
	DiscoveryHandler    *discovery_http.DiscoveryHandler
	ExportHandler       *export_http.ExportHandler
	UploadHandler       *storage_http.UploadHandler
	ArtistHandler       *artist_http.ArtistHandler
	NotificationHandler *notification_http.NotificationHandler
	AdminHandler        *admin_http.AdminHandler
}

// SetupRoutes creates and configures all application routes
func SetupRoutes(config RouterConfig) *http.ServeMux {
	mux := http.NewServeMux()
	auth := config.AuthMiddleware

	requireAuth := func(h http.HandlerFunc) http.Handler {
		return auth.RequireAuth(h)
	}
	requireRole := func(h http.HandlerFunc, roles ...string) http.Handler {
		return auth.RequireRole(h, roles...)
	}
	flexibleAuth := func(h http.HandlerFunc) http.Handler {
		return auth.FlexibleAuth(h)
	}

	// Health Check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus Metrics Endpoint
	mux.Handle("/metrics", promhttp.Handler())

	// Auth Routes
	mux.HandleFunc("POST /auth/register", config.AuthHandler.Register)
	mux.HandleFunc("POST /auth/login", config.AuthHandler.Login)

	// User Routes
	mux.Handle("GET /users/me", requireAuth(config.UserHandler.GetMe))
	mux.Handle("PUT /users/me", requireAuth(config.UserHandler.UpdateMe))
	mux.Handle("PUT /users/me/password", requireAuth(config.UserHandler.ChangePassword))
	mux.Handle("DELETE /users/me", requireAuth(config.UserHandler.DeleteMe))

	// Song Routes
	mux.Handle("GET /songs", flexibleAuth(config.SongHandler.List))
	mux.Handle("GET /songs/{id}", flexibleAuth(config.SongHandler.Get))
	mux.Handle("POST /songs", requireRole(config.SongHandler.Create, "artist", "admin"))
	mux.Handle("PUT /songs/{id}", requireAuth(config.SongHandler.Update))
	mux.Handle("DELETE /songs/{id}", requireAuth(config.SongHandler.Delete))
	mux.HandleFunc("POST /songs/{id}/play", config.SongHandler.Play)

	// Album Routes
	mux.HandleFunc("GET /albums", config.AlbumHandler.List)
	mux.HandleFunc("GET /albums/{id}", config.AlbumHandler.Get)
	mux.Handle("POST /albums", requireRole(config.AlbumHandler.Create, "artist"))
	mux.Handle("PUT /albums/{id}", requireRole(config.AlbumHandler.Update, "artist"))
	mux.Handle("DELETE /albums/{id}", requireRole(config.AlbumHandler.Delete, "artist"))

	// Playlist Routes
	mux.Handle("GET /playlists", requireAuth(config.PlaylistHandler.List))
	mux.Handle("POST /playlists", requireAuth(config.PlaylistHandler.Create))
	mux.Handle("GET /playlists/{id}/songs", flexibleAuth(config.PlaylistHandler.GetSongs))
	mux.Handle("POST /playlists/{id}/songs", requireAuth(config.PlaylistHandler.AddSong))
	mux.Handle("DELETE /playlists/{playlistId}/songs/{songId}", requireAuth(config.PlaylistHandler.RemoveSong))
	mux.Handle("DELETE /playlists/{id}", requireAuth(config.PlaylistHandler.Delete))

	// Like Routes
	mux.Handle("GET /likes", requireAuth(config.SocialHandler.ListLikes))
	mux.Handle("POST /likes/{songId}", requireAuth(config.SocialHandler.Like))
	mux.Handle("DELETE /likes/{songId}", requireAuth(config.SocialHandler.Unlike))

	// Follow Routes
	mux.Handle("POST /artists/{artistId}/follow", requireAuth(config.SocialHandler.Follow))
	mux.Handle("DELETE /artists/{artistId}/follow", requireAuth(config.SocialHandler.Unfollow))
	mux.Handle("GET /artists/{artistId}/following", requireAuth(config.SocialHandler.CheckFollowing))
	mux.Handle("GET /following", requireAuth(config.SocialHandler.ListFollowing))

	// Listening-History Routes
	mux.Handle("POST /history/{songId}", requireAuth(config.ListeningHandler.TrackPlay))
	mux.Handle("GET /history", requireAuth(config.ListeningHandler.History))
	mux.Handle("GET /history/recent", requireAuth(config.ListeningHandler.Recent))
	mux.Handle("GET /history/top-songs", requireAuth(config.ListeningHandler.TopSongs))
	mux.Handle("GET /history/top-artists", requireAuth(config.ListeningHandler.TopArtists))
	mux.Handle("GET /history/stats", requireAuth(config.ListeningHandler.Stats))

	// Discovery Routes
	mux.Handle("GET /recommendations", requireAuth(config.DiscoveryHandler.Recommendations))
	mux.Handle("GET /recommendations/trending", flexibleAuth(config.DiscoveryHandler.Trending))
	mux.Handle("GET /recommendations/similar/{songId}", flexibleAuth(config.DiscoveryHandler.Similar))
	mux.Handle("GET /recommendations/new-releases", flexibleAuth(config.DiscoveryHandler.NewReleases))

	// Export Routes
	mux.Handle("GET /export/user-data", requireAuth(config.ExportHandler.UserData))
	mux.Handle("GET /export/artist-data", requireRole(config.ExportHandler.ArtistData, "artist"))
	mux.Handle("GET /export/playlist/{id}/m3u", requireAuth(config.ExportHandler.PlaylistM3U))
	mux.Handle("GET /export/stats-csv", requireAuth(config.ExportHandler.StatsCSV))

	// Upload Routes
	mux.Handle("POST /upload/audio", requireRole(config.UploadHandler.Audio, "artist", "admin"))
	mux.Handle("POST /upload/image", requireAuth(config.UploadHandler.Image))
	mux.Handle("DELETE /upload", requireAuth(config.UploadHandler.Delete))

	// Artist Self-Service Routes
	mux.Handle("GET /artist/profile", requireRole(config.ArtistHandler.Profile, "artist"))
	mux.Handle("PUT /artist/profile", requireRole(config.ArtistHandler.UpdateProfile, "artist"))
	mux.Handle("GET /artist/songs", requireRole(config.ArtistHandler.Songs, "artist"))
	mux.Handle("GET /artist/albums", requireRole(config.ArtistHandler.Albums, "artist"))
	mux.Handle("GET /artist/analytics", requireRole(config.ArtistHandler.Analytics, "artist"))
	mux.Handle("GET /artist/followers", requireRole(config.ArtistHandler.Followers, "artist"))

	// Notification Routes
	mux.Handle("GET /notifications", requireAuth(config.NotificationHandler.List))
	mux.Handle("PATCH /notifications/{id}/read", requireAuth(config.NotificationHandler.MarkRead))
	mux.Handle("PATCH /notifications/read-all", requireAuth(config.NotificationHandler.MarkAllRead))
	mux.Handle("GET /ws", requireAuth(config.NotificationHandler.ServeWs))

	// Admin Routes
	mux.Handle("GET /admin/users", requireRole(config.AdminHandler.ListUsers, "admin"))
	mux.Handle("DELETE /admin/users/{id}", requireRole(config.AdminHandler.DeleteUser, "admin"))
	mux.Handle("GET /admin/artists", requireRole(config.AdminHandler.ListArtists, "admin"))
	mux.Handle("PUT /admin/artists/{id}/verify", requireRole(config.AdminHandler.VerifyArtist, "admin"))
	mux.Handle("GET /admin/stats", requireRole(config.AdminHandler.Stats, "admin"))

	return mux
}
