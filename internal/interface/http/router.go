package http

import (
	"net/http"

	"flightcal-service/pkg/logger"

	"github.com/gorilla/mux"
)

// HealthResponse is returned by /health
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// NewRouter wires the flight API, health and metrics endpoints
func NewRouter(flights *FlightHandler, metricsHandler http.Handler, version string, log logger.Logger) *mux.Router {
	router := mux.NewRouter()

	router.Use(Recovery(log))
	router.Use(AccessLog(log))

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok", Version: version})
	}).Methods("GET")
	if metricsHandler != nil {
		router.Handle("/metrics", metricsHandler).Methods("GET")
	}

	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/flights/parse", flights.ParseFlight).Methods("POST")
	api.HandleFunc("/flights/demo", flights.RunDemo).Methods("POST")
	api.HandleFunc("/flights", flights.ListFlights).Methods("GET")
	api.HandleFunc("/flights", flights.ClearFlights).Methods("DELETE")
	api.HandleFunc("/flights/{id}/calendar.ics", flights.DownloadCalendar).Methods("GET")
	api.HandleFunc("/flights/{id}/calendar", flights.GetCalendar).Methods("GET")
	api.HandleFunc("/flights/{id}", flights.GetFlight).Methods("GET")

	api.HandleFunc("/calendar", flights.BuildCalendar).Methods("POST")
	api.HandleFunc("/samples/random", flights.RandomSample).Methods("GET")

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusNotFound, "route not found")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return router
}
