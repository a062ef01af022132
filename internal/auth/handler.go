package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/rayan25nov/Blog-task-backend/internal/httpx"
	"github.com/rayan25nov/Blog-task-backend/internal/models"
)

// Handler holds user-related HTTP handlers.
type Handler struct {
	svc          *Service
	log          *zap.Logger
	secureCookie bool
}

func NewHandler(svc *Service, log *zap.Logger, secureCookie bool) *Handler {
	return &Handler{svc: svc, log: log, secureCookie: secureCookie}
}

// Routes mounts the user endpoints. rateLimit guards the credential
// routes; requireAuth guards the profile.
func (h *Handler) Routes(requireAuth, rateLimit func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(rateLimit)
		r.Post("/signup", h.Signup)
		r.Post("/signin", h.Signin)
	})
	r.Post("/logout", h.Logout)
	r.With(requireAuth).Get("/profile", h.GetProfile)
	r.With(requireAuth).Put("/profile", h.UpdateProfile)
	return r
}

// Signup creates a new user.
//
//	@Summary	Register a new user
//	@Tags		Users
//	@Accept		json
//	@Produce	json
//	@Param		body	body		models.SignupRequest	true	"Signup payload"
//	@Success	201		{object}	httpx.Payload			"User created successfully"
//	@Failure	400		{object}	httpx.Payload			"Invalid email, short password or duplicate user"
//	@Router		/users/signup [post]
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if _, err := h.svc.Signup(r.Context(), req); err != nil {
		switch {
		case errors.Is(err, ErrInvalidEmail):
			httpx.Fail(w, http.StatusBadRequest, "Invalid Email", nil)
		case errors.Is(err, ErrNameRequired):
			httpx.Fail(w, http.StatusBadRequest, "Please enter a name", nil)
		case errors.Is(err, ErrUserExists):
			httpx.Fail(w, http.StatusBadRequest, "User already exists", nil)
		case errors.Is(err, ErrPasswordTooShort):
			httpx.Fail(w, http.StatusBadRequest, "Minimum password length is 6 characters", nil)
		default:
			h.log.Error("signup failed", zap.Error(err))
			httpx.Fail(w, http.StatusInternalServerError, "Internal server error", err)
		}
		return
	}

	httpx.OK(w, http.StatusCreated, "User created successfully", nil)
}

// Signin authenticates a user and sets the token cookie.
//
//	@Summary	Sign in
//	@Tags		Users
//	@Accept		json
//	@Produce	json
//	@Param		body	body		models.SigninRequest	true	"Credentials"
//	@Success	200		{object}	httpx.Payload			"User signed in successfully"
//	@Failure	401		{object}	httpx.Payload			"Invalid credentials"
//	@Router		/users/signin [post]
func (h *Handler) Signin(w http.ResponseWriter, r *http.Request) {
	var req models.SigninRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	token, err := h.svc.Signin(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			httpx.Fail(w, http.StatusUnauthorized, "Invalid credentials", nil)
			return
		}
		h.log.Error("signin failed", zap.Error(err))
		httpx.Fail(w, http.StatusInternalServerError, "Internal server error", err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.svc.tokens.TTL() / time.Second),
	})

	httpx.OK(w, http.StatusOK, "User signed in successfully", httpx.Payload{"token": token})
}

// Logout clears the token cookie. Tokens already handed out stay valid
// until they expire.
//
//	@Summary	Log out
//	@Tags		Users
//	@Produce	json
//	@Success	200	{object}	httpx.Payload	"Logged out successfully"
//	@Router		/users/logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookie,
		MaxAge:   -1,
	})

	httpx.OK(w, http.StatusOK, "Logged out successfully", nil)
}

// GetProfile returns the caller with their blogs expanded.
//
//	@Summary	Get own profile
//	@Tags		Users
//	@Produce	json
//	@Success	200	{object}	httpx.Payload	"User found"
//	@Failure	401	{object}	httpx.Payload	"Missing or invalid token"
//	@Failure	404	{object}	httpx.Payload	"User not found"
//	@Security	BearerAuth
//	@Router		/users/profile [get]
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFrom(r.Context())
	if !ok {
		httpx.Fail(w, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	profile, err := h.svc.GetProfile(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			httpx.Fail(w, http.StatusNotFound, "User not found", nil)
			return
		}
		h.log.Error("get profile failed", zap.String("user_id", claims.UserID), zap.Error(err))
		httpx.Fail(w, http.StatusInternalServerError, "Error retrieving profile", err)
		return
	}

	httpx.OK(w, http.StatusOK, "User found", httpx.Payload{"user": profile})
}

// UpdateProfile changes name, email and/or password of the caller.
//
//	@Summary	Update own profile
//	@Tags		Users
//	@Accept		json
//	@Produce	json
//	@Param		body	body		models.UpdateProfileRequest	true	"Fields to change"
//	@Success	200		{object}	httpx.Payload				"Profile updated"
//	@Failure	401		{object}	httpx.Payload				"Missing or invalid token"
//	@Failure	404		{object}	httpx.Payload				"User not found"
//	@Security	BearerAuth
//	@Router		/users/profile [put]
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFrom(r.Context())
	if !ok {
		httpx.Fail(w, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	var req models.UpdateProfileRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	user, err := h.svc.UpdateProfile(r.Context(), claims.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			httpx.Fail(w, http.StatusNotFound, "User not found", nil)
		case errors.Is(err, ErrUserExists):
			httpx.Fail(w, http.StatusBadRequest, "User already exists", nil)
		default:
			h.log.Error("update profile failed", zap.String("user_id", claims.UserID), zap.Error(err))
			httpx.Fail(w, http.StatusInternalServerError, "Error updating profile", err)
		}
		return
	}

	httpx.OK(w, http.StatusOK, "Profile updated", httpx.Payload{"user": user})
}
