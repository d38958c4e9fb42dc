package auth

import (
	"encoding/json"
	"net/http"

	"github.com/frahmantamala/teampulse/internal/transport"
	"github.com/frahmantamala/teampulse/internal/user"
	"github.com/frahmantamala/teampulse/pkg/logger"
)

type ServiceAPI interface {
	Authenticate(dto LoginDTO) (string, *user.User, error)
	Register(dto RegisterDTO) (*user.User, error)
	ChangePassword(userID int64, dto ChangePasswordDTO) error
	ValidateAccessToken(tokenString string) (*Claims, error)
	ResolveUser(claims *Claims) (*user.User, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.L()),
		Service:     svc,
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, u, err := h.Service.Authenticate(dto)
	if err != nil {
		h.Logger.Warn("authentication failed", "email", dto.Email, "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("login successful", "user_id", u.ID)
	h.WriteJSON(w, http.StatusOK, LoginResponse{
		Message:     "Login successful",
		AccessToken: token,
		User:        u,
	})
}

// Register creates a new user, admin only (enforced by the route guard).
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var dto RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.Service.Register(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "User registered successfully",
		"user":    u,
	})
}

// Me returns the acting user resolved by the auth middleware.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	current, ok := user.FromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"user": current})
}

func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	current, ok := user.FromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto ChangePasswordDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.ChangePassword(current.ID, dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "Password changed successfully"})
}

// AuthMiddleware resolves the Bearer token into a user and stores it in the
// request context. Requests without a valid token never reach the handler.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractTokenFromHeader(r)
		if token == "" {
			h.WriteError(w, http.StatusUnauthorized, "missing authorization token")
			return
		}

		claims, err := h.Service.ValidateAccessToken(token)
		if err != nil {
			h.Logger.Warn("token validation failed", "error", err)
			h.WriteError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		current, err := h.Service.ResolveUser(claims)
		if err != nil {
			h.Logger.Warn("failed to resolve token user", "user_id", claims.UserID, "error", err)
			h.WriteError(w, http.StatusUnauthorized, "user not found")
			return
		}

		ctx := user.ContextWithUser(r.Context(), current)
		ctx = logger.With(ctx, "user_id", current.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin gates a route on the admin role.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		current, ok := user.FromContext(r.Context())
		if !ok {
			writeGuardError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		if !current.IsAdmin() {
			writeGuardError(w, http.StatusForbidden, "Admin access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireActiveUser gates a route on an active account of either role.
func RequireActiveUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		current, ok := user.FromContext(r.Context())
		if !ok {
			writeGuardError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		if !current.IsActiveUser() {
			writeGuardError(w, http.StatusForbidden, "Valid user access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeGuardError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"code":    status,
		"message": message,
	})
}
