package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lixenwraith/stellar-assault/leaderboard"
)

func main() {
	addr := flag.String("addr", ":8765", "Listen address")
	dbPath := flag.String("db", "data/leaderboard.msgpack", "Score database file (empty = memory only)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *addr, *dbPath); err != nil {
		log.Fatalf("leaderboard-server: %v", err)
	}
}

func run(ctx context.Context, addr, dbPath string) error {
	var store *leaderboard.FileStore
	if dbPath != "" {
		store = leaderboard.NewFileStore(dbPath)
	}
	srv, err := leaderboard.NewServer(leaderboard.ServerConfig{Store: store})
	if err != nil {
		return err
	}
	defer srv.Close()

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           newMux(srv),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("leaderboard-server: listening on %s", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// newMux routes the websocket endpoint plus plain HTTP health and list views
func newMux(srv *leaderboard.Server) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/scores", srv.Handle)

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("ok"))
	})

	mux.HandleFunc("/entries", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		payload := struct {
			Clients int                 `json:"clients"`
			Entries []leaderboard.Entry `json:"entries"`
		}{
			Clients: srv.Clients(),
			Entries: srv.Entries(),
		}
		data, err := json.Marshal(payload)
		if err != nil {
			http.Error(w, "failed to encode", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	})

	return mux
}
