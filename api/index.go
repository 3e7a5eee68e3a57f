package handler

import (
	"net/http"
	"sync"

	"venuebook/config"
	"venuebook/di"
	"venuebook/shared/logger"

	vbHTTP "venuebook/transport/http"
)

var (
	server *vbHTTP.HTTP
	once   sync.Once
)

// Handler is the serverless entrypoint. The dependency graph is built once per instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
