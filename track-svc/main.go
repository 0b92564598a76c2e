package main

import (
	"context"

	"feastly/config"
	httpapi "feastly/track-svc/internal/api/http"
	"feastly/track-svc/internal/service"
	"feastly/track-svc/internal/storage"
)

func main() {
	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader("order-events", "track-svc")
	defer reader.Close()

	store := storage.NewStore(rdb)
	consumer := service.NewConsumer(reader, store)
	go consumer.Start(context.Background())

	handler := httpapi.NewHandler(store)
	addr := ":" + config.Getenv("PORT", "8082")
	httpapi.StartServer(addr, httpapi.NewRouter(handler))
}
