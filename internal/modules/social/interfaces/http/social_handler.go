package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/adityav25/tunestream/internal/gateway/middleware"
	"github.com/adityav25/tunestream/internal/modules/social/application"
	"github.com/adityav25/tunestream/internal/modules/social/domain"
	"github.com/adityav25/tunestream/internal/shared/utils"
)

type SocialHandler struct {
	service *application.SocialService
}

func NewSocialHandler(service *application.SocialService) *SocialHandler {
	return &SocialHandler{service: service}
}

func callerID(r *http.Request) (uuid.UUID, bool) {
	id, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	return id, ok
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(r.PathValue(name))
}

func (h *SocialHandler) ListLikes(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	songs, err := h.service.LikedSongs(r.Context(), userID)
	if err != nil {
		log.Printf("[SocialHandler.ListLikes] %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to list liked songs")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"songs": songs})
}

func (h *SocialHandler) Like(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	songID, err := pathUUID(r, "songId")
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid song id")
		return
	}

	if err := h.service.LikeSong(r.Context(), userID, songID); err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyLiked):
			utils.RespondError(w, http.StatusConflict, "song already liked")
		case errors.Is(err, domain.ErrSongNotFound):
			utils.RespondError(w, http.StatusNotFound, "song not found")
		default:
			log.Printf("[SocialHandler.Like] %v", err)
			utils.RespondError(w, http.StatusInternalServerError, "failed to like song")
		}
		return
	}
	utils.RespondJSON(w, http.StatusCreated, map[string]string{"message": "song liked"})
}

func (h *SocialHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	songID, err := pathUUID(r, "songId")
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid song id")
		return
	}

	if err := h.service.UnlikeSong(r.Context(), userID, songID); err != nil {
		if errors.Is(err, domain.ErrLikeNotFound) {
			utils.RespondError(w, http.StatusNotFound, "like not found")
			return
		}
		log.Printf("[SocialHandler.Unlike] %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to unlike song")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "song unliked"})
}

func (h *SocialHandler) Follow(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	artistID, err := pathUUID(r, "artistId")
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid artist id")
		return
	}

	if err := h.service.FollowArtist(r.Context(), userID, artistID); err != nil {
		if errors.Is(err, domain.ErrArtistNotFound) {
			utils.RespondError(w, http.StatusNotFound, "artist not found")
			return
		}
		log.Printf("[SocialHandler.Follow] %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to follow artist")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "following artist"})
}

func (h *SocialHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	artistID, err := pathUUID(r, "artistId")
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid artist id")
		return
	}

	if err := h.service.UnfollowArtist(r.Context(), userID, artistID); err != nil {
		log.Printf("[SocialHandler.Unfollow] %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to unfollow artist")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "unfollowed artist"})
}

func (h *SocialHandler) CheckFollowing(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	artistID, err := pathUUID(r, "artistId")
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid artist id")
		return
	}

	following, err := h.service.IsFollowing(r.Context(), userID, artistID)
	if err != nil {
		log.Printf("[SocialHandler.CheckFollowing] %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to check follow status")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]bool{"following": following})
}

func (h *SocialHandler) ListFollowing(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	artists, err := h.service.FollowedArtists(r.Context(), userID)
	if err != nil {
		log.Printf("[SocialHandler.ListFollowing] %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to list followed artists")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"artists": artists})
}
