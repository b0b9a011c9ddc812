package users

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"star-dog-walker/internal/middleware"
	"star-dog-walker/internal/ports/auth"
)

func RegisterRoutes(r chi.Router, svc *Service, issuer auth.TokenIssuer) {
	// Endpoints públicos de autenticación
	r.Route("/auth", func(ar chi.Router) {
		ar.Post("/register", registerHandler(svc, issuer))
		ar.Post("/login", loginHandler(svc, issuer))
		ar.Get("/verify", verifyHandler())
	})

	// Perfil del usuario autenticado
	r.Route("/users", func(ur chi.Router) {
		ur.Get("/profile", getProfileHandler(svc))
		ur.Put("/profile", updateProfileHandler(svc))
	})
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role" enums:"owner,walker"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userResponse nunca incluye el password hash.
type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type updateProfileRequest struct {
	// Punteros para merge parcial: nil = no tocar.
	// email/password/role/id/createdAt no existen acá a propósito:
	// aunque vengan en el body, se descartan silenciosamente.
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// registerHandler godoc
// @Summary Registrar usuario
// @Description Crea una cuenta owner o walker y devuelve token + perfil.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body registerRequest true "Datos de registro"
// @Success 201 {object} authResponse
// @Failure 400 {string} string "invalid json / campos requeridos / email tomado"
// @Router /auth/register [post]
func registerHandler(svc *Service, issuer auth.TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		u, err := svc.Register(r.Context(), RegisterInput{
			Email:    req.Email,
			Password: req.Password,
			Name:     req.Name,
			Role:     Role(req.Role),
			Phone:    req.Phone,
			Address:  req.Address,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrEmailTaken):
				http.Error(w, "email already registered", http.StatusBadRequest)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, "email, password, name and role are required", http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		token, err := issuer.Issue(r.Context(), u.ID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, authResponse{Token: token, User: toUserResponse(u)})
	}
}

// loginHandler godoc
// @Summary Login
// @Description Valida credenciales y devuelve token + perfil.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Credenciales"
// @Success 200 {object} authResponse
// @Failure 401 {string} string "invalid email or password"
// @Router /auth/login [post]
func loginHandler(svc *Service, issuer auth.TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		u, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			// No distinguimos "email inexistente" de "password incorrecto".
			http.Error(w, "invalid email or password", http.StatusUnauthorized)
			return
		}

		token, err := issuer.Issue(r.Context(), u.ID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, authResponse{Token: token, User: toUserResponse(u)})
	}
}

// verifyHandler godoc
// @Summary Verificar token
// @Description Devuelve el usuario del token vigente (la identidad ya viene resuelta por el middleware).
// @Tags auth
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} map[string]userResponse
// @Failure 401 {string} string "access token required"
// @Failure 403 {string} string "invalid or expired token"
// @Router /auth/verify [get]
func verifyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middleware.RequireIdentity(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"user": identityResponse(identity)})
	}
}

// getProfileHandler godoc
// @Summary Perfil propio
// @Tags users
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} userResponse
// @Failure 404 {string} string "user not found"
// @Router /users/profile [get]
func getProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middleware.RequireIdentity(w, r)
		if !ok {
			return
		}

		u, err := svc.GetByID(r.Context(), identity.ID)
		if err != nil {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toUserResponse(u))
	}
}

// updateProfileHandler godoc
// @Summary Actualizar perfil propio
// @Description Solo name/phone/address son editables; email, password, role, id y createdAt se descartan del body.
// @Tags users
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param payload body updateProfileRequest true "Campos a actualizar"
// @Success 200 {object} userResponse
// @Failure 400 {string} string "invalid json"
// @Router /users/profile [put]
func updateProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middleware.RequireIdentity(w, r)
		if !ok {
			return
		}

		var req updateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		u, err := svc.UpdateProfile(r.Context(), identity.ID, UpdateProfileInput{
			Name:    req.Name,
			Phone:   req.Phone,
			Address: req.Address,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "user not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toUserResponse(u))
	}
}

func toUserResponse(u User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		Phone:     u.Phone,
		Address:   u.Address,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// identityResponse arma la vista pública desde la identidad ya resuelta
// (GET /auth/verify no vuelve a golpear el store).
func identityResponse(i auth.Identity) map[string]any {
	return map[string]any{
		"id":      i.ID,
		"email":   i.Email,
		"name":    i.Name,
		"role":    i.Role,
		"phone":   i.Phone,
		"address": i.Address,
	}
}

// writeJSON está duplicado a propósito en los handlers de cada módulo
// (ver nota en dogs/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
