package dogs

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"star-dog-walker/internal/domain/access"
	"star-dog-walker/internal/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/dogs", func(dr chi.Router) {
		dr.Get("/", listDogsHandler(svc))
		dr.Post("/", createDogHandler(svc))

		dr.Get("/{dogID}", getDogHandler(svc))
		dr.Put("/{dogID}", updateDogHandler(svc))
		dr.Delete("/{dogID}", deleteDogHandler(svc))
	})
}

type createDogRequest struct {
	Name  string `json:"name"`
	Breed string `json:"breed"`

	Age    *int     `json:"age"`
	Weight *float64 `json:"weight"`
	Color  string   `json:"color"`

	MicrochipNumber string `json:"microchipNumber"`
	VetName         string `json:"vetName"`
	VetPhone        string `json:"vetPhone"`
	Medications     string `json:"medications"`
	Allergies       string `json:"allergies"`
	BehaviorNotes   string `json:"behaviorNotes"`

	EmergencyContact    string `json:"emergencyContact"`
	FeedingInstructions string `json:"feedingInstructions"`

	Photo string `json:"photo"`
}

type updateDogRequest struct {
	// Punteros para merge parcial: nil = no tocar.
	// ownerId/id/createdAt no existen acá: aunque vengan en el body
	// se ignoran y el server conserva los valores previos.
	Name  *string `json:"name"`
	Breed *string `json:"breed"`

	Age    *int     `json:"age"`
	Weight *float64 `json:"weight"`
	Color  *string  `json:"color"`

	MicrochipNumber *string `json:"microchipNumber"`
	VetName         *string `json:"vetName"`
	VetPhone        *string `json:"vetPhone"`
	Medications     *string `json:"medications"`
	Allergies       *string `json:"allergies"`
	BehaviorNotes   *string `json:"behaviorNotes"`

	EmergencyContact    *string `json:"emergencyContact"`
	FeedingInstructions *string `json:"feedingInstructions"`

	Photo *string `json:"photo"`
}

type dogResponse struct {
	ID      string `json:"id"`
	OwnerID string `json:"ownerId"`

	Name  string `json:"name"`
	Breed string `json:"breed"`

	Age    *int     `json:"age"`
	Weight *float64 `json:"weight"`
	Color  string   `json:"color"`

	MicrochipNumber string `json:"microchipNumber"`
	VetName         string `json:"vetName"`
	VetPhone        string `json:"vetPhone"`
	Medications     string `json:"medications"`
	Allergies       string `json:"allergies"`
	BehaviorNotes   string `json:"behaviorNotes"`

	EmergencyContact    string `json:"emergencyContact"`
	FeedingInstructions string `json:"feedingInstructions"`

	Photo string `json:"photo"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// listDogsHandler godoc
// @Summary Listar perros visibles
// @Description Walkers ven todos los perros; owners solo los propios.
// @Tags dogs
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} dogResponse
// @Router /dogs [get]
func listDogsHandler(svc *Service) http.HandlerFunc {
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

		out := make([]dogResponse, 0, len(items))
		for _, d := range items {
			out = append(out, toDogResponse(d))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getDogHandler godoc
// @Summary Perfil de un perro
// @Tags dogs
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param dogID path string true "ID del perro"
// @Success 200 {object} dogResponse
// @Failure 403 {string} string "access denied"
// @Failure 404 {string} string "dog not found"
// @Router /dogs/{dogID} [get]
func getDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middleware.RequireIdentity(w, r)
		if !ok {
			return
		}

		d, err := svc.GetByID(r.Context(), chi.URLParam(r, "dogID"))
		if err != nil {
			http.Error(w, "dog not found", http.StatusNotFound)
			return
		}

		if !access.CanReadDog(identity, d.OwnerID) {
			http.Error(w, "access denied", http.StatusForbidden)
			return
		}

		writeJSON(w, http.StatusOK, toDogResponse(d))
	}
}

// createDogHandler godoc
// @Summary Registrar perro
// @Description Solo owners; el perro queda asociado al owner autenticado.
// @Tags dogs
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param payload body createDogRequest true "Datos del perro (name y breed requeridos)"
// @Success 201 {object} dogResponse
// @Failure 400 {string} string "name and breed are required"
// @Failure 403 {string} string "only owners can create dog profiles"
// @Router /dogs [post]
func createDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middleware.RequireIdentity(w, r)
		if !ok {
			return
		}

		if !access.CanCreateDog(identity) {
			http.Error(w, "only owners can create dog profiles", http.StatusForbidden)
			return
		}

		var req createDogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d, err := svc.Create(r.Context(), identity.ID, CreateInput{
			Name:                req.Name,
			Breed:               req.Breed,
			Age:                 req.Age,
			Weight:              req.Weight,
			Color:               req.Color,
			MicrochipNumber:     req.MicrochipNumber,
			VetName:             req.VetName,
			VetPhone:            req.VetPhone,
			Medications:         req.Medications,
			Allergies:           req.Allergies,
			BehaviorNotes:       req.BehaviorNotes,
			EmergencyContact:    req.EmergencyContact,
			FeedingInstructions: req.FeedingInstructions,
			Photo:               req.Photo,
		})
		if err != nil {
			http.Error(w, "name and breed are required", http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toDogResponse(d))
	}
}

// updateDogHandler godoc
// @Summary Actualizar perro
// @Description Solo el owner del perro. id/ownerId/createdAt se preservan siempre.
// @Tags dogs
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param dogID path string true "ID del perro"
// @Param payload body updateDogRequest true "Campos a actualizar"
// @Success 200 {object} dogResponse
// @Failure 403 {string} string "access denied"
// @Failure 404 {string} string "dog not found"
// @Router /dogs/{dogID} [put]
func updateDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middleware.RequireIdentity(w, r)
		if !ok {
			return
		}

		// Existencia primero (404), permisos después (403).
		current, err := svc.GetByID(r.Context(), chi.URLParam(r, "dogID"))
		if err != nil {
			http.Error(w, "dog not found", http.StatusNotFound)
			return
		}

		if !access.CanWriteDog(identity, current.OwnerID) {
			http.Error(w, "access denied", http.StatusForbidden)
			return
		}

		var req updateDogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		updated, err := svc.Update(r.Context(), current.ID, UpdateInput{
			Name:                req.Name,
			Breed:               req.Breed,
			Age:                 req.Age,
			Weight:              req.Weight,
			Color:               req.Color,
			MicrochipNumber:     req.MicrochipNumber,
			VetName:             req.VetName,
			VetPhone:            req.VetPhone,
			Medications:         req.Medications,
			Allergies:           req.Allergies,
			BehaviorNotes:       req.BehaviorNotes,
			EmergencyContact:    req.EmergencyContact,
			FeedingInstructions: req.FeedingInstructions,
			Photo:               req.Photo,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "dog not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toDogResponse(updated))
	}
}

// deleteDogHandler godoc
// @Summary Borrar perro
// @Tags dogs
// @Param Authorization header string true "Bearer token"
// @Param dogID path string true "ID del perro"
// @Success 204 {string} string "sin contenido"
// @Failure 403 {string} string "access denied"
// @Failure 404 {string} string "dog not found"
// @Router /dogs/{dogID} [delete]
func deleteDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middleware.RequireIdentity(w, r)
		if !ok {
			return
		}

		d, err := svc.GetByID(r.Context(), chi.URLParam(r, "dogID"))
		if err != nil {
			http.Error(w, "dog not found", http.StatusNotFound)
			return
		}

		if !access.CanDeleteDog(identity, d.OwnerID) {
			http.Error(w, "access denied", http.StatusForbidden)
			return
		}

		if err := svc.Delete(r.Context(), d.ID); err != nil {
			http.Error(w, "dog not found", http.StatusNotFound)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func toDogResponse(d Dog) dogResponse {
	return dogResponse{
		ID:                  d.ID,
		OwnerID:             d.OwnerID,
		Name:                d.Name,
		Breed:               d.Breed,
		Age:                 d.Age,
		Weight:              d.Weight,
		Color:               d.Color,
		MicrochipNumber:     d.MicrochipNumber,
		VetName:             d.VetName,
		VetPhone:            d.VetPhone,
		Medications:         d.Medications,
		Allergies:           d.Allergies,
		BehaviorNotes:       d.BehaviorNotes,
		EmergencyContact:    d.EmergencyContact,
		FeedingInstructions: d.FeedingInstructions,
		Photo:               d.Photo,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
