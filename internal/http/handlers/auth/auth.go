// Package auth contains the HTTP handlers of the login screen.
//
// Login runs the login form rules first (400 with a field map when they
// fail) and only then asks the session store to log in (401 on
// InvalidCredentials).
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/employee-dashboard/internal/session"
	"github.com/aanand-mishra/employee-dashboard/internal/types"
	"github.com/aanand-mishra/employee-dashboard/internal/utils/response"
	"github.com/aanand-mishra/employee-dashboard/internal/validation"
)

// DemoHint is shown under the login form.
const DemoHint = "Demo Credentials: admin@bookxpert.com / admin@123"

// Session is the part of session.Store the handlers use.
type Session interface {
	Login(ctx context.Context, creds types.Credentials) error
	Logout(ctx context.Context) error
	Token() string
}

// Hint handles GET /api/login.
func Hint() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.WriteJSON(w, http.StatusOK, map[string]string{"hint": DemoHint})
	}
}

// Login handles POST /api/login
//
// Request body (JSON):
//
//	{ "email": "admin@bookxpert.com", "password": "admin@123" }
//
// Success response (200 OK):
//
//	{ "status": "ok", "token": "mock-jwt-token-123456" }
func Login(sess Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds types.Credentials

		err := json.NewDecoder(r.Body).Decode(&creds)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("request body is empty")))
			return
		}
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		if errs := validation.ValidateLogin(creds); len(errs) > 0 {
			response.WriteJSON(w, http.StatusBadRequest, response.ValidationError(errs))
			return
		}

		if err := sess.Login(r.Context(), creds); err != nil {
			if errors.Is(err, session.ErrInvalidCredentials) {
				response.WriteJSON(w, http.StatusUnauthorized,
					response.GeneralError(errors.New("Invalid credentials")))
				return
			}
			slog.Error("login failed", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, map[string]string{
			"status": response.StatusOK,
			"token":  sess.Token(),
		})
	}
}

// Logout handles POST /api/logout. It succeeds whether or not a session
// exists.
func Logout(sess Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := sess.Logout(r.Context()); err != nil {
			slog.Error("logout failed", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}
		response.WriteJSON(w, http.StatusOK, response.OK())
	}
}
