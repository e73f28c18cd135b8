// Package employee contains all HTTP handlers related to the Employee resource.
//
// HANDLER PATTERN USED HERE — THE CLOSURE / FACTORY PATTERN:
// ────────────────────────────────────────────────────────────
// Each exported function receives its dependencies once, at route
// registration, and returns the http.HandlerFunc that runs on every
// request:
//
//	router.HandleFunc("POST /api/employees", employee.New(store))
package employee

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	empstore "github.com/aanand-mishra/employee-dashboard/internal/employee"
	"github.com/aanand-mishra/employee-dashboard/internal/report"
	"github.com/aanand-mishra/employee-dashboard/internal/types"
	"github.com/aanand-mishra/employee-dashboard/internal/utils/response"
	"github.com/aanand-mishra/employee-dashboard/internal/validation"
)

// maxBodyBytes bounds JSON bodies. A 2MB photo grows by a third when
// base64-encoded into a data URI; the rest is headroom for the other fields.
const maxBodyBytes = 4 << 20

// Store is the part of the employee store the handlers use.
type Store interface {
	List() []types.Employee
	Get(id string) (types.Employee, error)
	Create(ctx context.Context, fields types.EmployeeFields) (types.Employee, error)
	Update(ctx context.Context, id string, fields types.EmployeeFields) (types.Employee, error)
	ToggleStatus(ctx context.Context, id string) (types.Employee, error)
	Delete(ctx context.Context, id string) error
}

// formDefaults mirrors the blank employee form: gender preselected,
// status on.
func formDefaults() types.EmployeeFields {
	return types.EmployeeFields{Gender: types.GenderMale, Active: true}
}

// ─────────────────────────────────────────────────────────────────────────────
// New handles POST /api/employees
//
// Request body (JSON):
//
//	{ "fullName": "Harmanpreet Kaur", "dob": "1989-03-08", "state": "Delhi" }
//
// Success response (201 Created): the stored employee, with its new id.
//
// Error responses:
//
//	400 Bad Request  — empty body, malformed JSON, or failed validation
//	500 Internal     — storage error
//
// ─────────────────────────────────────────────────────────────────────────────
func New(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating an employee")

		fields := formDefaults()
		if !decodeFields(w, r, &fields) {
			return
		}

		if errs := validation.ValidateEmployee(fields); len(errs) > 0 {
			response.WriteJSON(w, http.StatusBadRequest, response.ValidationError(errs))
			return
		}

		created, err := store.Create(r.Context(), fields)
		if err != nil {
			slog.Error("error creating employee", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusCreated, created)
	}
}

// GetList handles GET /api/employees?search=&gender=&status=
// Returns the filtered roster as a JSON array ([] when nothing matches).
func GetList(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		criteria := criteriaFrom(r)
		slog.Debug("listing employees",
			slog.String("search", criteria.Search),
			slog.String("gender", criteria.Gender),
			slog.String("status", criteria.Status))

		response.WriteJSON(w, http.StatusOK, empstore.Filter(store.List(), criteria))
	}
}

// Print handles GET /api/employees/print?search=&gender=&status=
// It renders the same filtered list as GetList as a plain-text table
// without the ID column, ready to print.
func Print(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list := empstore.Filter(store.List(), criteriaFrom(r))

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if err := report.WriteTable(w, list, report.Options{Print: true}); err != nil {
			slog.Error("error writing print view", slog.String("error", err.Error()))
		}
	}
}

// GetByID handles GET /api/employees/{id}
// This is the lookup the edit form pre-fills from; 404 tells the client
// to go back to the list.
func GetByID(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		e, err := store.Get(id)
		if err != nil {
			writeStoreError(w, id, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, e)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Update handles PUT /api/employees/{id}
//
// The body is merged over the stored record: keys missing from the body
// keep their current value. The merged result must pass the same rules
// as creation.
//
// Error responses:
//
//	400 Bad Request  — empty body, malformed JSON, or failed validation
//	404 Not Found    — no employee with this id
//	500 Internal     — storage error
//
// ─────────────────────────────────────────────────────────────────────────────
func Update(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("updating an employee", slog.String("id", id))

		current, err := store.Get(id)
		if err != nil {
			writeStoreError(w, id, err)
			return
		}

		fields := current.Fields()
		if !decodeFields(w, r, &fields) {
			return
		}

		if errs := validation.ValidateEmployee(fields); len(errs) > 0 {
			response.WriteJSON(w, http.StatusBadRequest, response.ValidationError(errs))
			return
		}

		updated, err := store.Update(r.Context(), id, fields)
		if err != nil {
			writeStoreError(w, id, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, updated)
	}
}

// ToggleStatus handles PATCH /api/employees/{id}/status
// It flips the employee's active flag, like clicking the status cell.
func ToggleStatus(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("toggling employee status", slog.String("id", id))

		updated, err := store.ToggleStatus(r.Context(), id)
		if err != nil {
			writeStoreError(w, id, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, updated)
	}
}

// Delete handles DELETE /api/employees/{id}
// Deleting an id that does not exist still answers 200.
func Delete(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("deleting an employee", slog.String("id", id))

		if err := store.Delete(r.Context(), id); err != nil {
			writeStoreError(w, id, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}

func criteriaFrom(r *http.Request) empstore.Criteria {
	q := r.URL.Query()
	return empstore.Criteria{
		Search: q.Get("search"),
		Gender: q.Get("gender"),
		Status: q.Get("status"),
	}
}

// decodeFields decodes the request body over fields. It writes the error
// response itself and reports whether the handler may continue.
func decodeFields(w http.ResponseWriter, r *http.Request, fields *types.EmployeeFields) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	err := json.NewDecoder(r.Body).Decode(fields)
	if errors.Is(err, io.EOF) {
		response.WriteJSON(w, http.StatusBadRequest,
			response.GeneralError(errors.New("request body is empty")))
		return false
	}
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			response.WriteJSON(w, http.StatusRequestEntityTooLarge, response.GeneralError(err))
			return false
		}
		response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
		return false
	}
	return true
}

func writeStoreError(w http.ResponseWriter, id string, err error) {
	if errors.Is(err, empstore.ErrNotFound) {
		response.WriteJSON(w, http.StatusNotFound, response.GeneralError(err))
		return
	}

	slog.Error("employee store error",
		slog.String("id", id),
		slog.String("error", err.Error()))
	response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
}
