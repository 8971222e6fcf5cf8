package handler

import (
	"net/http"

	"syllabus-analyzer/internal/config"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(container *config.Container) http.Handler {
	router := mux.NewRouter()

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"syllabus-analyzer"}`))
	}).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(RequestLogger(container.Logger))

	courseHandler := NewCourseHandler(
		container.CourseService,
		container.Logger,
		container.Config.GetMaxFileSize(),
	)

	api.HandleFunc("/courses", courseHandler.ListCourses).Methods("GET")
	api.HandleFunc("/courses", courseHandler.AddCourse).Methods("POST")
	api.HandleFunc("/courses/{id}", courseHandler.GetCourse).Methods("GET")
	api.HandleFunc("/courses/{id}", courseHandler.RemoveCourse).Methods("DELETE")
	api.HandleFunc("/courses/{id}/syllabus", courseHandler.UploadSyllabus).Methods("POST")
	api.HandleFunc("/courses/{id}/replace", courseHandler.ReplaceCourse).Methods("POST")

	// Configure CORS for the local frontend dev servers
	c := cors.New(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:5173",
			"http://localhost:4173",
			"http://localhost:3000",
		},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
		},
		MaxAge: 300,
	})

	return c.Handler(router)
}
