package breeds

import (
	"encoding/json"
	"net/http"
	"strings"

	"pet-api/internal/middleware"
	"pet-api/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, signer auth.CredentialsVerifier) {
	r.Route("/v1/dog/breeds", func(br chi.Router) {
		br.Get("/", listBreedsHandler(svc))

		// Acepta cualquier método para responder el mismo 400 que el endpoint histórico.
		br.HandleFunc("/update-database", updateDatabaseHandler(svc, signer))
	})
}

type updateDatabaseRequest struct {
	Auth *auth.Credentials `json:"auth"`
}

type errorResponse struct {
	Error  string      `json:"error"`
	Result *SyncResult `json:"result,omitempty"`
}

// listBreedsHandler godoc
// @Summary Listar razas
// @Description Devuelve el catálogo de razas de perro persistido.
// @Tags breeds
// @Produce json
// @Success 200 {array} Breed
// @Failure 500 {object} errorResponse
// @Router /v1/dog/breeds [get]
func listBreedsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// updateDatabaseHandler godoc
// @Summary Sincronizar catálogo de razas
// @Description Cosecha la página de razas de Wikipedia y reconcilia contra el catálogo. Autenticación: `Authorization: Bearer <token>`, credenciales en el body (`auth.email`/`auth.password`) o `X-Debug-User-ID` (dev).
// @Tags breeds
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param X-Debug-User-ID header string false "Solo en modo dev"
// @Param payload body updateDatabaseRequest false "Credenciales"
// @Success 200 {object} SyncResult
// @Success 201 {object} SyncResult
// @Failure 400 {object} errorResponse "método inválido / faltan credenciales"
// @Failure 401 {object} errorResponse
// @Failure 500 {object} errorResponse "fallo de persistencia"
// @Failure 502 {object} errorResponse "fuente inaccesible"
// @Router /v1/dog/breeds/update-database [post]
func updateDatabaseHandler(svc *Service, signer auth.CredentialsVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid method, use POST instead!"})
			return
		}

		if _, ok := authenticated(r); !ok {
			var req updateDatabaseRequest
			_ = json.NewDecoder(r.Body).Decode(&req)

			if req.Auth == nil || strings.TrimSpace(req.Auth.Email) == "" || req.Auth.Password == "" {
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid body! Lacking auth credentials!"})
				return
			}
			if signer == nil {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
				return
			}
			claims, err := signer.SignIn(r.Context(), *req.Auth)
			if err != nil || strings.TrimSpace(claims.UserID) == "" {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
				return
			}
		}

		res, err := svc.Sync(r.Context())
		if err != nil {
			switch {
			case IsFetchError(err):
				writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
			case res.Planned > 0:
				// Algunas operaciones fallaron: devolvemos el detalle.
				writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error(), Result: &res})
			default:
				writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			}
			return
		}

		status := http.StatusOK
		if res.Summary.Inserted > 0 {
			status = http.StatusCreated
		}
		writeJSON(w, status, res)
	}
}

func authenticated(r *http.Request) (auth.Claims, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		return auth.Claims{}, false
	}
	return claims, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
