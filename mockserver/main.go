package main

import (
	"log"
	"net/http"

	"github.com/rs/cors"

	"tableside/config"
	"tableside/internal/mockbackend"
)

func main() {
	cfg := config.Load()
	logger := config.MustInitLogger()
	defer logger.Sync()

	server := mockbackend.New(mockbackend.Options{
		LatencyMin: cfg.MockLatencyMin,
		LatencyMax: cfg.MockLatencyMax,
	})

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	handler := c.Handler(server.Handler())

	log.Println("Mock backend starting on", cfg.MockListenAddr)
	log.Fatal(http.ListenAndServe(cfg.MockListenAddr, handler))
}
