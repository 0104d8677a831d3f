package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/cybertube/BM11Model/internal/auth"
	"github.com/cybertube/BM11Model/internal/calc/bm11"
	"github.com/cybertube/BM11Model/internal/calc/premium/batch"
	"github.com/cybertube/BM11Model/internal/calc/premium/importer"
	"github.com/cybertube/BM11Model/internal/calc/report"
	"github.com/cybertube/BM11Model/internal/config"
	"github.com/cybertube/BM11Model/internal/history"
	"github.com/cybertube/BM11Model/internal/repo"
	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, store repo.Repository, cfg config.Config) {
	authEnv := &auth.Authenv{JWTkey: []byte(cfg.TokenKey), Repo: store}
	limiter := auth.NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	bm11H := &bm11.Handler{History: store}
	reportH := &report.Handler{}
	batchH := &batch.Handler{}
	importH := &importer.Handler{}
	historyH := &history.HistoryHandler{Repo: store}

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")
	api.HandleFunc("/bm11/defaults", bm11H.Defaults).Methods("GET")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	secureApi.HandleFunc("/tools/bm11/calc", bm11H.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/bm11/wind", bm11H.Wind).Methods("POST")
	secureApi.HandleFunc("/tools/bm11/report/pdf", reportH.Generate).Methods("POST")
	secureApi.HandleFunc("/tools/bm11/report/text", reportH.Text).Methods("POST")

	secureApi.HandleFunc("/tools-premium/bm11/batch", batchH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools-premium/bm11/sweep", batchH.Sweep).Methods("POST")
	secureApi.HandleFunc("/tools-premium/bm11/import", importH.Import).Methods("POST")

	secureApi.HandleFunc("/history", historyH.List).Methods("GET")
	secureApi.HandleFunc("/history/{id}", historyH.Get).Methods("GET")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Ошибка конфигурации: ", err)
	}

	store, err := repo.Open(ctx, cfg.DBDriver, cfg.DBURL)
	if err != nil {
		log.Fatal("База не отвечает: ", err)
	}
	defer store.Close()

	mux := mux.NewRouter()
	HandleList(mux, store, cfg)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           CORS(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		var err error
		if cfg.TLS() {
			log.Printf("Starting server on %s (TLS)", cfg.Addr)
			err = server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			log.Printf("Starting server on %s", cfg.Addr)
			err = server.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
			cancel()
		}
	}()

	<-ctx.Done()
	fmt.Println("Shutdown signal received!")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Ошибка при остановке сервера: %v", err)
	}
	log.Println("Сервер успешно остановлен")

	wg.Wait()
}
