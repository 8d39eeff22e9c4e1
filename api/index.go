package handler

import (
	"hostel/config"
	"hostel/di"
	"hostel/shared/logger"
	"net/http"
	"sync"
)

var (
	server     http.Handler
	serverOnce sync.Once
)

// Handler is the serverless entrypoint. Background jobs do not run here.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	serverOnce.Do(func() {
		logger.InitLogger()
		logger.Configure(config.Get())

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
