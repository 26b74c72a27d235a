package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/adityav25/tunestream/internal/gateway/middleware"
	"github.com/adityav25/tunestream/internal/modules/notification/application"
	"github.com/adityav25/tunestream/internal/modules/notification/domain"
	"github.com/adityav25/tunestream/internal/modules/notification/infrastructure/websocket"
	"github.com/adityav25/tunestream/internal/shared/utils"
)

type NotificationHandler struct {
	service *application.NotificationService
	hub     *websocket.Hub
}

func NewNotificationHandler(service *application.NotificationService, hub *websocket.Hub) *NotificationHandler {
	return &NotificationHandler{service: service, hub: hub}
}

func callerID(r *http.Request) (uuid.UUID, bool) {
	id, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	return id, ok
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit := 50
	offset := 0
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v > 0 {
		offset = v
	}

	notifications, err := h.service.GetUserNotifications(r.Context(), userID, limit, offset)
	if err != nil {
		log.Printf("[NotificationHandler.List] %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to list notifications")
		return
	}

	unread, err := h.service.UnreadCount(r.Context(), userID)
	if err != nil {
		log.Printf("[NotificationHandler.List] unread count: %v", err)
		unread = 0
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"notifications": notifications,
		"unread_count":  unread,
	})
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	notificationID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid notification id")
		return
	}

	if err := h.service.MarkAsRead(r.Context(), notificationID, userID); err != nil {
		if errors.Is(err, domain.ErrNotificationNotFound) {
			utils.RespondError(w, http.StatusNotFound, "notification not found")
			return
		}
		log.Printf("[NotificationHandler.MarkRead] %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to mark notification read")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "notification marked read"})
}

func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.service.MarkAllAsRead(r.Context(), userID); err != nil {
		log.Printf("[NotificationHandler.MarkAllRead] %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to mark notifications read")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "all notifications marked read"})
}

// ServeWs upgrades the request to a websocket subscribed to the caller's
// notifications.
func (h *NotificationHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	websocket.ServeWs(h.hub, w, r, userID)
}
