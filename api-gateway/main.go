package main

import (
	"log"
	"net/http"

	"feastly/api-gateway/internal/gateway"
	"feastly/config"

	"github.com/rs/cors"
)

func main() {
	cfg := gateway.Config{
		OrderSvcURL: config.Getenv("ORDER_SVC_URL", "http://localhost:8081"),
		TrackSvcURL: config.Getenv("TRACK_SVC_URL", "http://localhost:8082"),
	}

	gw := gateway.NewGateway(cfg, &http.Client{})

	r := gw.SetupRoutes()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8080", "http://127.0.0.1:8080", "*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	handler := c.Handler(r)

	addr := ":" + config.Getenv("PORT", "8080")
	log.Printf("API Gateway starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
