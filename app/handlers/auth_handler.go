package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/nehalv/ecom-admin/app/helpers"
	"github.com/nehalv/ecom-admin/app/repositories"
	"github.com/nehalv/ecom-admin/app/utils/sessions"
	"github.com/unrolled/render"
)

type AuthHandler struct {
	render       *render.Render
	validate     *validator.Validate
	userRepo     repositories.UserRepositoryImpl
	sessionStore sessions.SessionStore
}

func NewAuthHandler(renderer *render.Render, validate *validator.Validate, userRepo repositories.UserRepositoryImpl, sessionStore sessions.SessionStore) *AuthHandler {
	return &AuthHandler{
		render:       renderer,
		validate:     validate,
		userRepo:     userRepo,
		sessionStore: sessionStore,
	}
}

type LoginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var form LoginForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{
			"status":  "error",
			"message": "Invalid request body.",
		})
		return
	}

	if err := h.validate.Struct(&form); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			h.render.JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
				"status": "error",
				"errors": helpers.FormatValidationErrors(validationErrors),
			})
			return
		}
		h.render.JSON(w, http.StatusBadRequest, map[string]string{
			"status":  "error",
			"message": "Invalid request.",
		})
		return
	}

	user, err := h.userRepo.FindByEmail(r.Context(), form.Email)
	if err != nil {
		log.Printf("Login: error fetching user by email: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{
			"status":  "error",
			"message": "Login failed.",
		})
		return
	}
	if user == nil || !helpers.PasswordCompare(user.Password, []byte(form.Password)) {
		h.render.JSON(w, http.StatusUnauthorized, map[string]string{
			"status":  "error",
			"message": "Invalid email or password.",
		})
		return
	}

	if err := h.sessionStore.SetUserID(w, r, user.ID); err != nil {
		log.Printf("Login: failed to persist session for user %d: %v", user.ID, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{
			"status":  "error",
			"message": "Login failed.",
		})
		return
	}

	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Logged in successfully.",
		"user":    user,
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionStore.ClearSession(w, r); err != nil {
		log.Printf("Logout: failed to clear session: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{
			"status":  "error",
			"message": "Logout failed.",
		})
		return
	}

	h.render.JSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Logged out successfully.",
	})
}
