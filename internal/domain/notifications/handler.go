package notifications

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"star-dog-walker/internal/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/notifications", func(nr chi.Router) {
		nr.Get("/", listNotificationsHandler(svc))
		nr.Post("/", createNotificationHandler(svc))
		nr.Delete("/", clearNotificationsHandler(svc))

		nr.Patch("/{notificationID}/read", markReadHandler(svc))
	})
}

type createNotificationRequest struct {
	UserID  string `json:"userId"`
	Type    string `json:"type" enums:"success,error,info,warning"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type notificationResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}

// listNotificationsHandler godoc
// @Summary Inbox propio
// @Tags notifications
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} notificationResponse
// @Router /notifications [get]
func listNotificationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middleware.RequireIdentity(w, r)
		if !ok {
			return
		}

		items, err := svc.ListForUser(r.Context(), identity.ID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]notificationResponse, 0, len(items))
		for _, n := range items {
			out = append(out, toNotificationResponse(n))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// createNotificationHandler godoc
// @Summary Crear notificación
// @Description La creación no está restringida por ownership: cualquier acción del sistema puede informar a un usuario.
// @Tags notifications
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param payload body createNotificationRequest true "Notificación (todos los campos requeridos)"
// @Success 201 {object} notificationResponse
// @Failure 400 {string} string "missing required fields"
// @Router /notifications [post]
func createNotificationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.RequireIdentity(w, r); !ok {
			return
		}

		var req createNotificationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		n, err := svc.Create(r.Context(), CreateInput{
			UserID:  req.UserID,
			Type:    Type(req.Type),
			Title:   req.Title,
			Message: req.Message,
		})
		if err != nil {
			http.Error(w, "missing required fields", http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toNotificationResponse(n))
	}
}

// markReadHandler godoc
// @Summary Marcar notificación como leída
// @Description Idempotente; 404 si el id no existe o pertenece a otro usuario.
// @Tags notifications
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param notificationID path string true "ID de la notificación"
// @Success 200 {object} notificationResponse
// @Failure 404 {string} string "notification not found"
// @Router /notifications/{notificationID}/read [patch]
func markReadHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middleware.RequireIdentity(w, r)
		if !ok {
			return
		}

		n, err := svc.MarkRead(r.Context(), chi.URLParam(r, "notificationID"), identity.ID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "notification not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toNotificationResponse(n))
	}
}

// clearNotificationsHandler godoc
// @Summary Vaciar inbox propio
// @Tags notifications
// @Param Authorization header string true "Bearer token"
// @Success 204 {string} string "sin contenido"
// @Router /notifications [delete]
func clearNotificationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middleware.RequireIdentity(w, r)
		if !ok {
			return
		}

		if err := svc.ClearAll(r.Context(), identity.ID); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func toNotificationResponse(n Notification) notificationResponse {
	return notificationResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Timestamp: n.Timestamp,
		Read:      n.Read,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
