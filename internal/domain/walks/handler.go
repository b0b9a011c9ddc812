package walks

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"star-dog-walker/internal/domain/access"
	"star-dog-walker/internal/domain/dogs"
	"star-dog-walker/internal/domain/notifications"
	"star-dog-walker/internal/middleware"
	weatherport "star-dog-walker/internal/ports/weather"
)

// Options son las dependencias de plataforma del módulo walks.
// Weather puede ser nil: el clima queda en manos del walker.
type Options struct {
	DefaultWalkerID string
	Weather         weatherport.Reporter
}

func RegisterRoutes(r chi.Router, svc *Service, dogsSvc *dogs.Service, notifSvc *notifications.Service, opts Options) {
	r.Route("/walks", func(wr chi.Router) {
		wr.Get("/", listWalksHandler(svc, dogsSvc))
		wr.Post("/", createWalkHandler(svc, dogsSvc, notifSvc, opts))

		// Vista pública compartible, sin auth. Va antes de /{walkID}
		// solo por claridad: chi ya prioriza el literal.
		wr.Get("/public/{walkID}", publicWalkHandler(svc, dogsSvc))

		wr.Get("/{walkID}", getWalkHandler(svc, dogsSvc))
		wr.Put("/{walkID}", updateWalkHandler(svc, dogsSvc))
		wr.Patch("/{walkID}/status", setWalkStatusHandler(svc, dogsSvc, notifSvc, opts))
		wr.Delete("/{walkID}", deleteWalkHandler(svc))
	})
}

type createWalkRequest struct {
	DogID     string `json:"dogId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Duration  int    `json:"duration"`

	PickupAddress string `json:"pickupAddress"`
	SpecialNotes  string `json:"specialNotes"`
}

type updateWalkRequest struct {
	// Merge parcial con punteros. id/dogId/ownerId/createdAt/status
	// no existen acá: aunque vengan en el body se descartan.
	WalkerID  *string `json:"walkerId"`
	Date      *string `json:"date"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
	Duration  *int    `json:"duration"`

	Route         *string   `json:"route"`
	Weather       *string   `json:"weather"`
	Notes         *string   `json:"notes"`
	BehaviorNotes *string   `json:"behaviorNotes"`
	Photos        *[]string `json:"photos"`

	PickupAddress *string `json:"pickupAddress"`
	SpecialNotes  *string `json:"specialNotes"`
}

type setStatusRequest struct {
	Status string `json:"status"`
}

type walkResponse struct {
	ID       string `json:"id"`
	DogID    string `json:"dogId"`
	WalkerID string `json:"walkerId"`
	OwnerID  string `json:"ownerId"`

	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Duration  int    `json:"duration"`

	Status Status `json:"status"`

	Route         string   `json:"route"`
	Weather       string   `json:"weather"`
	Notes         string   `json:"notes"`
	BehaviorNotes string   `json:"behaviorNotes"`
	Photos        []string `json:"photos"`

	PickupAddress string `json:"pickupAddress"`
	SpecialNotes  string `json:"specialNotes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Proyección del perro embebida; null si el perro fue borrado.
	Dog *dogs.Summary `json:"dog,omitempty"`
}

// listWalksHandler godoc
// @Summary Listar walks visibles
// @Description Walkers ven todos los walks; owners solo los propios. Incluye la proyección del perro.
// @Tags walks
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} walkResponse
// @Router /walks [get]
func listWalksHandler(svc *Service, dogsSvc *dogs.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middleware.RequireIdentity(w, r)
		if !ok {
			return
		}

		items, err := svc.ListVisible(r.Context(), identity.ID, identity.IsWalker())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]walkResponse, 0, len(items))
		for _, wk := range items {
			out = append(out, toWalkResponse(r, dogsSvc, wk))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getWalkHandler godoc
// @Summary Detalle de un walk
// @Tags walks
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param walkID path string true "ID del walk"
// @Success 200 {object} walkResponse
// @Failure 403 {string} string "access denied"
// @Failure 404 {string} string "walk not found"
// @Router /walks/{walkID} [get]
func getWalkHandler(svc *Service, dogsSvc *dogs.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middleware.RequireIdentity(w, r)
		if !ok {
			return
		}

		wk, err := svc.GetByID(r.Context(), chi.URLParam(r, "walkID"))
		if err != nil {
			http.Error(w, "walk not found", http.StatusNotFound)
			return
		}

		if !access.CanReadWalk(identity, wk.OwnerID) {
			http.Error(w, "access denied", http.StatusForbidden)
			return
		}

		writeJSON(w, http.StatusOK, toWalkResponse(r, dogsSvc, wk))
	}
}

// publicWalkHandler godoc
// @Summary Vista pública de un walk completado
// @Description Sin autenticación. Solo walks completados; cualquier otro caso es 404.
// @Tags walks
// @Produce json
// @Param walkID path string true "ID del walk"
// @Success 200 {object} walkResponse
// @Failure 404 {string} string "walk not found"
// @Router /walks/public/{walkID} [get]
func publicWalkHandler(svc *Service, dogsSvc *dogs.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wk, err := svc.GetPublic(r.Context(), chi.URLParam(r, "walkID"))
		if err != nil {
			http.Error(w, "walk not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toWalkResponse(r, dogsSvc, wk))
	}
}

// createWalkHandler godoc
// @Summary Reservar un walk
// @Description Un owner reserva para un perro propio (queda pending, asignado al walker default); un walker reserva para cualquier perro (queda confirmed, asignado a sí mismo).
// @Tags walks
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param payload body createWalkRequest true "Reserva (dogId, date, startTime y duration requeridos)"
// @Success 201 {object} walkResponse
// @Failure 400 {string} string "missing required fields"
// @Failure 403 {string} string "access denied"
// @Failure 404 {string} string "dog not found"
// @Router /walks [post]
func createWalkHandler(svc *Service, dogsSvc *dogs.Service, notifSvc *notifications.Service, opts Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middleware.RequireIdentity(w, r)
		if !ok {
			return
		}

		var req createWalkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if req.DogID == "" || req.Date == "" || req.StartTime == "" || req.Duration <= 0 {
			http.Error(w, "missing required fields", http.StatusBadRequest)
			return
		}

		dog, err := dogsSvc.GetByID(r.Context(), req.DogID)
		if err != nil {
			http.Error(w, "dog not found", http.StatusNotFound)
			return
		}

		if !access.CanBookWalkFor(identity, dog.OwnerID) {
			http.Error(w, "access denied", http.StatusForbidden)
			return
		}

		wk, err := svc.Create(r.Context(), identity, dog.OwnerID, opts.DefaultWalkerID, CreateInput{
			DogID:         req.DogID,
			Date:          req.Date,
			StartTime:     req.StartTime,
			EndTime:       req.EndTime,
			Duration:      req.Duration,
			PickupAddress: req.PickupAddress,
			SpecialNotes:  req.SpecialNotes,
		})
		if err != nil {
			http.Error(w, "missing required fields", http.StatusBadRequest)
			return
		}

		// Fan-out best-effort: si el owner reservó, el walker asignado
		// se entera; la reserva no falla porque falle la notificación.
		if identity.IsOwner() && wk.WalkerID != "" {
			_ = notifSvc.Notify(r.Context(), wk.WalkerID, notifications.TypeInfo,
				"New Walk Request",
				fmt.Sprintf("%s requested a walk for %s on %s at %s", identity.Name, dog.Name, wk.Date, wk.StartTime))
		}

		writeJSON(w, http.StatusCreated, toWalkResponse(r, dogsSvc, wk))
	}
}

// updateWalkHandler godoc
// @Summary Actualizar un walk (journal incluido)
// @Description Walkers editan cualquier walk; owners solo los propios. status no cambia por esta ruta.
// @Tags walks
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param walkID path string true "ID del walk"
// @Param payload body updateWalkRequest true "Campos a actualizar"
// @Success 200 {object} walkResponse
// @Failure 403 {string} string "access denied"
// @Failure 404 {string} string "walk not found"
// @Router /walks/{walkID} [put]
func updateWalkHandler(svc *Service, dogsSvc *dogs.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middleware.RequireIdentity(w, r)
		if !ok {
			return
		}

		current, err := svc.GetByID(r.Context(), chi.URLParam(r, "walkID"))
		if err != nil {
			http.Error(w, "walk not found", http.StatusNotFound)
			return
		}

		if !access.CanWriteWalk(identity, current.OwnerID) {
			http.Error(w, "access denied", http.StatusForbidden)
			return
		}

		var req updateWalkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		updated, err := svc.Update(r.Context(), current.ID, UpdateInput{
			WalkerID:      req.WalkerID,
			Date:          req.Date,
			StartTime:     req.StartTime,
			EndTime:       req.EndTime,
			Duration:      req.Duration,
			Route:         req.Route,
			Weather:       req.Weather,
			Notes:         req.Notes,
			BehaviorNotes: req.BehaviorNotes,
			Photos:        req.Photos,
			PickupAddress: req.PickupAddress,
			SpecialNotes:  req.SpecialNotes,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "walk not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toWalkResponse(r, dogsSvc, updated))
	}
}

// setWalkStatusHandler godoc
// @Summary Transicionar el status de un walk
// @Description Solo walkers. Al completar, si el journal no trae clima y hay proveedor configurado, se completa automáticamente. La respuesta no incluye la proyección del perro.
// @Tags walks
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param walkID path string true "ID del walk"
// @Param payload body setStatusRequest true "Nuevo status (pending|confirmed|completed)"
// @Success 200 {object} walkResponse
// @Failure 400 {string} string "invalid status"
// @Failure 403 {string} string "only walkers can update walk status"
// @Failure 404 {string} string "walk not found"
// @Router /walks/{walkID}/status [patch]
func setWalkStatusHandler(svc *Service, dogsSvc *dogs.Service, notifSvc *notifications.Service, opts Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middleware.RequireIdentity(w, r)
		if !ok {
			return
		}

		current, err := svc.GetByID(r.Context(), chi.URLParam(r, "walkID"))
		if err != nil {
			http.Error(w, "walk not found", http.StatusNotFound)
			return
		}

		if !access.CanSetWalkStatus(identity) {
			http.Error(w, "only walkers can update walk status", http.StatusForbidden)
			return
		}

		var req setStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		updated, err := svc.SetStatus(r.Context(), current.ID, Status(req.Status))
		if err != nil {
			switch {
			case errors.Is(err, ErrBadState):
				http.Error(w, "invalid status", http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "walk not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		if updated.Status == StatusCompleted && updated.Weather == "" && opts.Weather != nil {
			if conditions, werr := opts.Weather.Current(r.Context(), updated.PickupAddress); werr == nil && conditions != "" {
				patched, perr := svc.Update(r.Context(), updated.ID, UpdateInput{Weather: &conditions})
				if perr == nil {
					updated = patched
				}
			}
		}

		if updated.Status != current.Status {
			notifyOwnerStatusChange(r, notifSvc, dogsSvc, updated)
		}

		// Sin proyección del perro: el cliente del walker ya tiene el
		// walk cargado y solo refresca status/updatedAt.
		resp := toWalkResponse(r, dogsSvc, updated)
		resp.Dog = nil
		writeJSON(w, http.StatusOK, resp)
	}
}

// deleteWalkHandler godoc
// @Summary Cancelar un walk
// @Tags walks
// @Param Authorization header string true "Bearer token"
// @Param walkID path string true "ID del walk"
// @Success 204 {string} string "sin contenido"
// @Failure 403 {string} string "access denied"
// @Failure 404 {string} string "walk not found"
// @Router /walks/{walkID} [delete]
func deleteWalkHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middleware.RequireIdentity(w, r)
		if !ok {
			return
		}

		wk, err := svc.GetByID(r.Context(), chi.URLParam(r, "walkID"))
		if err != nil {
			http.Error(w, "walk not found", http.StatusNotFound)
			return
		}

		if !access.CanDeleteWalk(identity, wk.OwnerID) {
			http.Error(w, "access denied", http.StatusForbidden)
			return
		}

		if err := svc.Delete(r.Context(), wk.ID); err != nil {
			http.Error(w, "walk not found", http.StatusNotFound)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func notifyOwnerStatusChange(r *http.Request, notifSvc *notifications.Service, dogsSvc *dogs.Service, wk Walk) {
	dogName := "your dog"
	if d, err := dogsSvc.GetByID(r.Context(), wk.DogID); err == nil {
		dogName = d.Name
	}

	var typ notifications.Type
	var title, message string
	switch wk.Status {
	case StatusConfirmed:
		typ = notifications.TypeSuccess
		title = "Walk Confirmed"
		message = fmt.Sprintf("Your walk for %s on %s has been confirmed", dogName, wk.Date)
	case StatusCompleted:
		typ = notifications.TypeSuccess
		title = "Walk Completed"
		message = fmt.Sprintf("%s's walk is complete! Check the journal for photos and notes", dogName)
	default:
		typ = notifications.TypeInfo
		title = "Walk Updated"
		message = fmt.Sprintf("The walk for %s on %s is now %s", dogName, wk.Date, wk.Status)
	}

	_ = notifSvc.Notify(r.Context(), wk.OwnerID, typ, title, message)
}

func toWalkResponse(r *http.Request, dogsSvc *dogs.Service, wk Walk) walkResponse {
	resp := walkResponse{
		ID:            wk.ID,
		DogID:         wk.DogID,
		WalkerID:      wk.WalkerID,
		OwnerID:       wk.OwnerID,
		Date:          wk.Date,
		StartTime:     wk.StartTime,
		EndTime:       wk.EndTime,
		Duration:      wk.Duration,
		Status:        wk.Status,
		Route:         wk.Route,
		Weather:       wk.Weather,
		Notes:         wk.Notes,
		BehaviorNotes: wk.BehaviorNotes,
		Photos:        wk.Photos,
		PickupAddress: wk.PickupAddress,
		SpecialNotes:  wk.SpecialNotes,
		CreatedAt:     wk.CreatedAt,
		UpdatedAt:     wk.UpdatedAt,
	}
	if resp.Photos == nil {
		resp.Photos = []string{}
	}

	// Join tolerante: si el perro ya no existe, dog queda null.
	if d, err := dogsSvc.GetByID(r.Context(), wk.DogID); err == nil {
		summary := d.Summary()
		resp.Dog = &summary
	}

	return resp
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
