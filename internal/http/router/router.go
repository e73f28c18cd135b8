// Package router wires every HTTP route to its handler.
//
// Route table:
//
//	GET    /api/login                   → demo credential hint
//	POST   /api/login                   → log in
//	POST   /api/logout                  → log out
//
//	(everything below requires a session)
//	GET    /api/dashboard               → total / active / inactive counts
//	GET    /api/employees               → filtered list (?search=&gender=&status=)
//	GET    /api/employees/print         → print layout of the filtered list
//	POST   /api/employees               → create
//	GET    /api/employees/{id}          → one employee
//	PUT    /api/employees/{id}          → update
//	PATCH  /api/employees/{id}/status   → toggle active
//	DELETE /api/employees/{id}          → delete
//	POST   /api/images                  → encode an uploaded photo
package router

import (
	"net/http"

	"github.com/aanand-mishra/employee-dashboard/internal/employee"
	"github.com/aanand-mishra/employee-dashboard/internal/http/handlers/auth"
	"github.com/aanand-mishra/employee-dashboard/internal/http/handlers/dashboard"
	emphandler "github.com/aanand-mishra/employee-dashboard/internal/http/handlers/employee"
	"github.com/aanand-mishra/employee-dashboard/internal/http/middleware"
	"github.com/aanand-mishra/employee-dashboard/internal/session"
)

func New(sess *session.Store, store *employee.Store) http.Handler {
	public := http.NewServeMux()
	public.HandleFunc("GET /api/login", auth.Hint())
	public.HandleFunc("POST /api/login", auth.Login(sess))
	public.HandleFunc("POST /api/logout", auth.Logout(sess))

	protected := http.NewServeMux()
	protected.HandleFunc("GET /api/dashboard", dashboard.Stats(store))
	protected.HandleFunc("GET /api/employees", emphandler.GetList(store))
	protected.HandleFunc("GET /api/employees/print", emphandler.Print(store))
	protected.HandleFunc("POST /api/employees", emphandler.New(store))
	protected.HandleFunc("GET /api/employees/{id}", emphandler.GetByID(store))
	protected.HandleFunc("PUT /api/employees/{id}", emphandler.Update(store))
	protected.HandleFunc("PATCH /api/employees/{id}/status", emphandler.ToggleStatus(store))
	protected.HandleFunc("DELETE /api/employees/{id}", emphandler.Delete(store))
	protected.HandleFunc("POST /api/images", emphandler.UploadImage())

	public.Handle("/", middleware.RequireSession(sess, protected))

	return public
}
