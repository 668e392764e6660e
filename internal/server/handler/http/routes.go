// Package http provides HTTP routing and middleware configuration
// for the NextbiTe service.
package http

import (
	"fmt"
	"net/http"

	"github.com/nextbite/nextbite/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs and returns an HTTP handler that serves the
// NextbiTe API. It applies CORS, JSON content-type enforcement, and
// request logging, and mounts the endpoints under /api.
//
// Parameters:
//
//	authHandler    - handler for signup, login, and password reset
//	orderHandler   - handler for order placement and history
//	catalogHandler - handler for catalog reads
//	tokens         - verifier backing the bearer-auth middleware
//	frontendURL    - origin allowed by CORS ("" means any)
//	logger         - structured logger for request logging middleware
//
// Routes:
//
//	GET  /api/health          → liveness probe
//	POST /api/createUser      → authHandler.CreateUser
//	POST /api/loginUser       → authHandler.LoginUser
//	POST /api/forgotPassword  → authHandler.ForgotPassword
//	POST /api/resetPassword   → authHandler.ResetPassword
//	GET|POST /api/foodData    → catalogHandler.FoodData
//	GET|POST /api/foodCategory → catalogHandler.FoodCategory
//	POST /api/orderData       → orderHandler.OrderData   (bearer auth)
//	GET|POST /api/myOrderData → orderHandler.MyOrderData (bearer auth)
//
// OPTIONS on any route is answered by the CORS middleware with an empty
// 200. Disallowed methods get a 405 with an Allow header.
func NewRouter(
	authHandler *AuthHandler,
	orderHandler *OrderHandler,
	catalogHandler *CatalogHandler,
	tokens middleware.TokenParser,
	frontendURL string,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Answer preflights and tag every response with the CORS headers
	r.Use(middleware.CORS(frontendURL))

	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	r.MethodNotAllowed(methodNotAllowed)

	// Mount API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", health)

		// Public endpoints
		r.Post("/createUser", authHandler.CreateUser)
		r.Post("/loginUser", authHandler.LoginUser)
		r.Post("/forgotPassword", authHandler.ForgotPassword)
		r.Post("/resetPassword", authHandler.ResetPassword)

		r.Get("/foodData", catalogHandler.FoodData)
		r.Post("/foodData", catalogHandler.FoodData)
		r.Get("/foodCategory", catalogHandler.FoodCategory)
		r.Post("/foodCategory", catalogHandler.FoodCategory)

		// Protected group: requires a valid session token
		r.Group(func(r chi.Router) {
			r.Use(middleware.BearerAuth(tokens))
			r.Post("/orderData", orderHandler.OrderData)
			r.Get("/myOrderData", orderHandler.MyOrderData)
			r.Post("/myOrderData", orderHandler.MyOrderData)
		})
	})

	return r
}

// health reports service liveness.
func health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "status": "ok"})
}

// methodNotAllowed rejects disallowed methods with the JSON error shape
// and the set of methods the API serves.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", "GET, POST, OPTIONS")
	writeMessage(w, http.StatusMethodNotAllowed, false, fmt.Sprintf("Method %s Not Allowed", r.Method))
}
