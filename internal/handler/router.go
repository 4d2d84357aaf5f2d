package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(
	extractionHandler *ExtractionHandler,
	requestMiddleware *RequestMiddleware,
	allowedOrigins []string,
) http.Handler {
	router := mux.NewRouter()
	router.Use(requestMiddleware.RequestID, requestMiddleware.AccessLog, requestMiddleware.Recover)

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "pdf-extract-service"})
	}).Methods(http.MethodGet)

	router.HandleFunc("/extract", extractionHandler.Extract).Methods(http.MethodPost)

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			RequestIDHeader,
		},
		ExposedHeaders: []string{
			RequestIDHeader,
		},
		MaxAge: 300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
