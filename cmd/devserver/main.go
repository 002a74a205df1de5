package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/pulsefeed/pulsefeed/internal/logging"
	"github.com/pulsefeed/pulsefeed/internal/server"
)

func main() {
	addr := flag.String("addr", ":3000", "listen address")
	seed := flag.Int("seed", 25, "number of demo posts to seed")
	flag.Parse()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	store := server.NewStore()
	server.SeedDemoFeed(store, *seed)

	router := server.NewRouter(store, logger)

	logger.Info(context.Background(), "devserver listening", "addr", *addr, "posts", *seed)
	if err := http.ListenAndServe(*addr, router); err != nil {
		log.Fatalf("%v", err)
	}
}
