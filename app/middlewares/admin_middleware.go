package middlewares

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/nehalv/ecom-admin/app/helpers"
	"github.com/nehalv/ecom-admin/app/models"
	"github.com/nehalv/ecom-admin/app/repositories"
	"github.com/nehalv/ecom-admin/app/utils/sessions"
)

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "error",
		"message": message,
	})
}

// AdminAuthMiddleware resolves the session user, requires the admin role
// and puts the user on the request context for audit stamping.
func AdminAuthMiddleware(sessionStore sessions.SessionStore, userRepo repositories.UserRepositoryImpl) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := sessionStore.GetUserID(r)
			if userID == 0 {
				writeJSONError(w, http.StatusUnauthorized, "Authentication required.")
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil || user == nil {
				log.Printf("AdminAuthMiddleware: error finding user %d: %v", userID, err)
				writeJSONError(w, http.StatusUnauthorized, "Invalid session.")
				return
			}

			if !user.HasRole(models.RoleAdmin) {
				log.Printf("AdminAuthMiddleware: user %d (%s) attempted to access admin panel without admin role.", user.ID, user.Email)
				writeJSONError(w, http.StatusForbidden, "You do not have permission to access this resource.")
				return
			}

			ctx := context.WithValue(r.Context(), helpers.ContextKeyUserID, user.ID)
			ctx = context.WithValue(ctx, helpers.ContextKeyUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionUser returns the authenticated user placed on the context by
// AdminAuthMiddleware, or nil outside it.
func SessionUser(r *http.Request) *models.User {
	user, ok := r.Context().Value(helpers.ContextKeyUser).(*models.User)
	if !ok {
		return nil
	}
	return user
}
