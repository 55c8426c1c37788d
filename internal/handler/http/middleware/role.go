package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/mediserve-hris/attendance-backend-go/internal/domain/user"
	"github.com/mediserve-hris/attendance-backend-go/internal/handler/http/response"
)

// RoleFromRequest extracts the acting role from the verified token claims.
func RoleFromRequest(r *http.Request) (user.Role, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", user.ErrAuthRequired
	}

	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return "", user.ErrUnknownRole
	}

	return user.Role(role), nil
}

// UserIDFromRequest extracts the acting user's id from the verified token
// claims.
func UserIDFromRequest(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", user.ErrAuthRequired
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", user.ErrAuthRequired
	}

	return userID, nil
}

// ManagerOnly gates the manual-entry write surface. Directors and HR keep
// their read access but never reach the write handlers.
func ManagerOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, err := RoleFromRequest(r)
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if !user.CanEditAttendance(role) {
			response.HandleError(w, user.ErrManagerAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
