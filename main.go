package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	auth "Timberline/internal/auth"
	beam "Timberline/internal/calc/beam"
	column "Timberline/internal/calc/column"
	deflection "Timberline/internal/calc/deflection"
	geometry "Timberline/internal/calc/geometry"
	joist "Timberline/internal/calc/joist"
	autodesign "Timberline/internal/calc/premium/autodesign"
	batch "Timberline/internal/calc/premium/batch"
	importer "Timberline/internal/calc/premium/importer"
	report "Timberline/internal/calc/report"
	sizing "Timberline/internal/calc/sizing"
	validate "Timberline/internal/calc/validate"
	config "Timberline/internal/config"
	repo "Timberline/internal/repo"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, cfg config.Config, engine *sizing.Store, runs repo.Repository) {
	authEnv := &auth.Authenv{
		JWTkey:     []byte(cfg.TokenKey),
		AdminLogin: cfg.AdminLogin,
		AdminHash:  []byte(cfg.AdminPasswordHash),
	}
	if cfg.AdminPasswordHash == "" {
		log.Println("ADMIN_PASSWORD_HASH is not set, login is disabled")
	}

	limiter := auth.NewIPRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	joistH := &joist.Handler{Engine: engine}
	beamH := &beam.Handler{Engine: engine}
	columnH := &column.Handler{Engine: engine}
	geometryH := &geometry.Handler{}
	deflectionH := &deflection.Handler{}
	validateH := &validate.Handler{}
	designH := &autodesign.Handler{Engine: engine, Runs: runs}
	batchH := &batch.Handler{Engine: engine, Runs: runs}
	importH := &importer.Handler{Engine: engine}
	reportH := &report.Handler{}
	catalogH := &sizing.CatalogHandler{Store: engine}

	secureApi.HandleFunc("/tools/joist/size", joistH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/beam/size", beamH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/column/size", columnH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/geometry/resolve", geometryH.Resolve).Methods("POST")
	secureApi.HandleFunc("/tools/deflection/check", deflectionH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/validate", validateH.Check).Methods("POST")
	secureApi.HandleFunc("/tools/design", designH.Structure).Methods("POST")
	secureApi.HandleFunc("/tools/batch/joist", batchH.Joist).Methods("POST")
	secureApi.HandleFunc("/tools/batch/beam", batchH.Beam).Methods("POST")
	secureApi.HandleFunc("/tools/import/joist", importH.Joist).Methods("POST")
	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")

	secureApi.HandleFunc("/catalog", catalogH.Get).Methods("GET")
	secureApi.HandleFunc("/catalog", catalogH.Put).Methods("PUT")

	if runs != nil {
		runsH := &repo.RunsHandler{Repo: runs}
		secureApi.HandleFunc("/runs", runsH.List).Methods("GET")
	}
}

func openRuns(ctx context.Context, url string) (repo.Repository, *sql.DB, error) {
	if url == "" {
		return nil, nil, nil
	}
	db, err := repo.Open(url)
	if err != nil {
		return nil, nil, err
	}
	runs := repo.NewPostgresRunDB(db)
	if err := runs.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}
	return runs, db, nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	engineCtx, warnings, err := sizing.FromFiles(cfg.CatalogPath, cfg.MaterialsPath)
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}
	for _, w := range warnings {
		log.Println("catalog:", w)
	}
	engine := sizing.NewStore(engineCtx)
	log.Printf("Catalog loaded: %d sections, %d grades", engineCtx.Catalog().Len(), len(engineCtx.Materials().Grades()))

	runs, db, err := openRuns(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if db != nil {
		defer db.Close()
	} else {
		log.Println("DATABASE_URL is not set, run history is disabled")
	}

	mux := mux.NewRouter()
	HandleList(mux, cfg, engine, runs)
	handler := CORS(mux)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("Starting server on %s", cfg.Addr)
	wg.Add(1)
	go func() {
		defer wg.Done()
		var err error
		if cfg.TLS() {
			err = server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
			cancel()
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received, closing active connections")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
