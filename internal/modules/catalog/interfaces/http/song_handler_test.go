package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/adityav25/tunestream/internal/gateway/middleware"
	"github.com/adityav25/tunestream/internal/modules/catalog/application"
	"github.com/adityav25/tunestream/internal/modules/catalog/domain"
	catalog_http "github.com/adityav25/tunestream/internal/modules/catalog/interfaces/http"
)

func newSongHandler(repo *mockSongRepository) *catalog_http.SongHandler {
	return catalog_http.NewSongHandler(application.NewSongService(repo, nil))
}

func authed(r *http.Request, userID uuid.UUID, role string) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.ContextKeyUserId, userID)
	ctx = context.WithValue(ctx, middleware.ContextKeyRole, role)
	return r.WithContext(ctx)
}

func TestSongHandler_List(t *testing.T) {
	repo := new(mockSongRepository)
	h := newSongHandler(repo)

	songs := []domain.Song{{ID: uuid.New(), Title: "One"}}
	repo.On("List", mock.Anything, mock.MatchedBy(func(f domain.SongFilter) bool {
		return f.Limit == 50 && f.Offset == 0
	})).Return(songs, 1, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/songs", nil)
	w := httptest.NewRecorder()
	h.List(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Songs      []domain.Song `json:"songs"`
		Pagination struct {
			Page       int `json:"page"`
			Limit      int `json:"limit"`
			Total      int `json:"total"`
			TotalPages int `json:"totalPages"`
		} `json:"pagination"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Len(t, resp.Songs, 1)
	assert.Equal(t, 1, resp.Pagination.Total)
	assert.Equal(t, 1, resp.Pagination.Page)
}

func TestSongHandler_List_BadSort(t *testing.T) {
	h := newSongHandler(new(mockSongRepository))

	req := httptest.NewRequest(http.MethodGet, "/songs?sort=sneaky", nil)
	w := httptest.NewRecorder()
	h.List(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSongHandler_Get(t *testing.T) {
	repo := new(mockSongRepository)
	h := newSongHandler(repo)
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		repo.On("GetByID", mock.Anything, id).Return(&domain.Song{ID: id, Title: "Track"}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/songs/"+id.String(), nil)
		req.SetPathValue("id", id.String())
		w := httptest.NewRecorder()
		h.Get(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing", func(t *testing.T) {
		repo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrSongNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/songs/"+id.String(), nil)
		req.SetPathValue("id", id.String())
		w := httptest.NewRecorder()
		h.Get(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/songs/nope", nil)
		req.SetPathValue("id", "nope")
		w := httptest.NewRecorder()
		h.Get(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSongHandler_Create(t *testing.T) {
	userID := uuid.New()
	artistID := uuid.New()

	t.Run("created", func(t *testing.T) {
		repo := new(mockSongRepository)
		h := newSongHandler(repo)
		repo.On("ArtistIDForUser", mock.Anything, userID).Return(artistID, nil).Once()
		repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

		body, _ := json.Marshal(map[string]any{"title": "Track", "duration": 180, "file_url": "https://cdn/x.mp3"})
		req := authed(httptest.NewRequest(http.MethodPost, "/songs", bytes.NewBuffer(body)), userID, "artist")
		w := httptest.NewRecorder()
		h.Create(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("no artist profile", func(t *testing.T) {
		repo := new(mockSongRepository)
		h := newSongHandler(repo)
		repo.On("ArtistIDForUser", mock.Anything, userID).Return(uuid.Nil, domain.ErrNotAnArtist).Once()

		body, _ := json.Marshal(map[string]any{"title": "Track", "duration": 180, "file_url": "https://cdn/x.mp3"})
		req := authed(httptest.NewRequest(http.MethodPost, "/songs", bytes.NewBuffer(body)), userID, "user")
		w := httptest.NewRecorder()
		h.Create(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("validation error", func(t *testing.T) {
		repo := new(mockSongRepository)
		h := newSongHandler(repo)

		body, _ := json.Marshal(map[string]any{"duration": 180, "file_url": "https://cdn/x.mp3"})
		req := authed(httptest.NewRequest(http.MethodPost, "/songs", bytes.NewBuffer(body)), userID, "artist")
		w := httptest.NewRecorder()
		h.Create(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("no auth context", func(t *testing.T) {
		h := newSongHandler(new(mockSongRepository))

		req := httptest.NewRequest(http.MethodPost, "/songs", bytes.NewBufferString("{}"))
		w := httptest.NewRecorder()
		h.Create(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestSongHandler_Delete_Forbidden(t *testing.T) {
	repo := new(mockSongRepository)
	h := newSongHandler(repo)
	owner := uuid.New()
	stranger := uuid.New()
	id := uuid.New()

	repo.On("OwnerUserID", mock.Anything, id).Return(owner, nil).Once()

	req := authed(httptest.NewRequest(http.MethodDelete, "/songs/"+id.String(), nil), stranger, "artist")
	req.SetPathValue("id", id.String())
	w := httptest.NewRecorder()
	h.Delete(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSongHandler_Play(t *testing.T) {
	repo := new(mockSongRepository)
	h := newSongHandler(repo)
	id := uuid.New()

	t.Run("recorded", func(t *testing.T) {
		repo.On("IncrementPlays", mock.Anything, id).Return(nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/songs/"+id.String()+"/play", nil)
		req.SetPathValue("id", id.String())
		w := httptest.NewRecorder()
		h.Play(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing song", func(t *testing.T) {
		repo.On("IncrementPlays", mock.Anything, id).Return(domain.ErrSongNotFound).Once()

		req := httptest.NewRequest(http.MethodPost, "/songs/"+id.String()+"/play", nil)
		req.SetPathValue("id", id.String())
		w := httptest.NewRecorder()
		h.Play(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
