package catalog

import (
	"github.com/jmoiron/sqlx"

	"github.com/adityav25/tunestream/internal/modules/catalog/application"
	"github.com/adityav25/tunestream/internal/modules/catalog/domain"
	persistence "github.com/adityav25/tunestream/internal/modules/catalog/infrastructure/persistence/postgres"
	catalogHttp "github.com/adityav25/tunestream/internal/modules/catalog/interfaces/http"
)

// Module represents the Catalog module
type Module struct {
	songRepo     *persistence.PgSongRepository
	albumRepo    *persistence.PgAlbumRepository
	songService  *application.SongService
	albumService *application.AlbumService
	songHandler  *catalogHttp.SongHandler
	albumHandler *catalogHttp.AlbumHandler
}

// NewModule creates and initializes the Catalog module
func NewModule(db *sqlx.DB, notifier application.Notifier) *Module {
	songRepo := persistence.NewSongRepository(db)
	albumRepo := persistence.NewAlbumRepository(db)

	songService := application.NewSongService(songRepo, notifier)
	albumService := application.NewAlbumService(albumRepo, songRepo)

	return &Module{
		songRepo:     songRepo,
		albumRepo:    albumRepo,
		songService:  songService,
		albumService: albumService,
		songHandler:  catalogHttp.NewSongHandler(songService),
		albumHandler: catalogHttp.NewAlbumHandler(albumService),
	}
}

// SongRepository returns the song repository for use by other modules.
func (m *Module) SongRepository() domain.SongRepository {
	return m.songRepo
}

// SongService returns the song service
func (m *Module) SongService() *application.SongService {
	return m.songService
}

// SongHandler returns the song HTTP handler
func (m *Module) SongHandler() *catalogHttp.SongHandler {
	return m.songHandler
}

// AlbumHandler returns the album HTTP handler
func (m *Module) AlbumHandler() *catalogHttp.AlbumHandler {
	return m.albumHandler
}
