package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/adityav25/tunestream/internal/modules/export/domain"
)

// ExportService produces user-facing data exports in JSON, M3U and CSV.
type ExportService struct {
	repo domain.ExportRepository
}

func NewExportService(repo domain.ExportRepository) *ExportService {
	return &ExportService{repo: repo}
}

func (s *ExportService) UserData(ctx context.Context, userID uuid.UUID) (*domain.UserExport, error) {
	return s.repo.UserExport(ctx, userID)
}

func (s *ExportService) ArtistData(ctx context.Context, userID uuid.UUID) (*domain.ArtistExport, error) {
	return s.repo.ArtistExport(ctx, userID)
}

// PlaylistM3U renders the playlist as an extended M3U document. Only the
// playlist owner may export it.
func (s *ExportService) PlaylistM3U(ctx context.Context, userID, playlistID uuid.UUID) (string, string, error) {
	playlist, err := s.repo.PlaylistForM3U(ctx, playlistID)
	if err != nil {
		return "", "", err
	}
	if playlist.OwnerID != userID {
		return "", "", domain.ErrNotOwner
	}

	var b strings.Builder
	b.WriteString("#EXTM3U\n")
	fmt.Fprintf(&b, "#PLAYLIST:%s\n\n", playlist.Name)
	for _, song := range playlist.Songs {
		fmt.Fprintf(&b, "#EXTINF:%d,%s - %s\n", song.Duration, song.ArtistName, song.Title)
		b.WriteString(song.FileUrl)
		b.WriteString("\n")
	}
	return b.String(), playlist.Name, nil
}

// StatsCSV returns per-song listening stats as CSV records, header first.
func (s *ExportService) StatsCSV(ctx context.Context, userID uuid.UUID) ([][]string, error) {
	stats, err := s.repo.SongStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	records := make([][]string, 0, len(stats)+1)
	records = append(records, []string{"Title", "Artist", "Genre", "Play Count", "Total Minutes"})
	for _, stat := range stats {
		genre := ""
		if stat.Genre != nil {
			genre = *stat.Genre
		}
		records = append(records, []string{
			stat.Title,
			stat.ArtistName,
			genre,
			fmt.Sprintf("%d", stat.PlayCount),
			fmt.Sprintf("%.2f", stat.TotalMinutes),
		})
	}
	return records, nil
}
