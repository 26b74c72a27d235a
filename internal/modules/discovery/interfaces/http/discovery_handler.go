package http

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/adityav25/tunestream/internal/gateway/middleware"
	"github.com/adityav25/tunestream/internal/modules/discovery/application"
	"github.com/adityav25/tunestream/internal/modules/discovery/domain"
	"github.com/adityav25/tunestream/internal/shared/utils"
)

const cacheTTL = 10 * time.Minute

type DiscoveryHandler struct {
	service     *application.DiscoveryService
	redisClient *redis.Client
}

func NewDiscoveryHandler(service *application.DiscoveryService, redisClient *redis.Client) *DiscoveryHandler {
	return &DiscoveryHandler{service: service, redisClient: redisClient}
}

func queryLimit(r *http.Request) int {
	v, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	return v
}

func (h *DiscoveryHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	songs, err := h.service.Recommendations(r.Context(), userID, queryLimit(r))
	if err != nil {
		log.Printf("[DiscoveryHandler.Recommendations] %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to compute recommendations")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"songs": songs})
}

// Trending is cached in Redis; the chart only shifts as analytics roll
// over, so a short TTL is plenty.
func (h *DiscoveryHandler) Trending(w http.ResponseWriter, r *http.Request) {
	h.cached(w, r, "discovery:trending", func(ctx context.Context) (interface{}, error) {
		songs, err := h.service.Trending(ctx, queryLimit(r))
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"songs": songs}, nil
	})
}

func (h *DiscoveryHandler) Similar(w http.ResponseWriter, r *http.Request) {
	songID, err := uuid.Parse(r.PathValue("songId"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid song id")
		return
	}

	songs, err := h.service.Similar(r.Context(), songID, queryLimit(r))
	if err != nil {
		if errors.Is(err, domain.ErrSongNotFound) {
			utils.RespondError(w, http.StatusNotFound, "song not found")
			return
		}
		log.Printf("[DiscoveryHandler.Similar] %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to find similar songs")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"songs": songs})
}

func (h *DiscoveryHandler) NewReleases(w http.ResponseWriter, r *http.Request) {
	h.cached(w, r, "discovery:new-releases", func(ctx context.Context) (interface{}, error) {
		songs, err := h.service.NewReleases(ctx, queryLimit(r))
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"songs": songs}, nil
	})
}

// cached serves the response from Redis when possible and repopulates the
// key asynchronously on a miss. Custom limits bypass the cache so the
// shared key always holds the default chart.
func (h *DiscoveryHandler) cached(w http.ResponseWriter, r *http.Request, cacheKey string, load func(context.Context) (interface{}, error)) {
	useCache := h.redisClient != nil && r.URL.Query().Get("limit") == ""

	if useCache {
		if val, err := h.redisClient.Get(r.Context(), cacheKey).Result(); err == nil {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Cache", "HIT")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(val))
			return
		}
	}

	payload, err := load(r.Context())
	if err != nil {
		log.Printf("[DiscoveryHandler] %s: %v", cacheKey, err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to load chart")
		return
	}

	jsonBytes, err := json.Marshal(payload)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to encode response")
		return
	}

	if useCache {
		go func() {
			h.redisClient.Set(context.Background(), cacheKey, jsonBytes, cacheTTL)
		}()
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Cache", "MISS")
	w.WriteHeader(http.StatusOK)
	w.Write(jsonBytes)
}
