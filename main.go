package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"

	"comp-engine/internal/handler"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Infof("Compensation engine starting on port %s", port)
	if err := fasthttp.ListenAndServe(":"+port, handler.Route); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
