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

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"steelcheck/internal/auth"
	"steelcheck/internal/calc/axial"
	"steelcheck/internal/calc/classify"
	"steelcheck/internal/calc/curves"
	"steelcheck/internal/calc/flexure"
	"steelcheck/internal/calc/importer"
	"steelcheck/internal/calc/interaction"
	"steelcheck/internal/calc/recommend"
	"steelcheck/internal/calc/report"
	"steelcheck/internal/calc/serviceability"
	"steelcheck/internal/catalog"
	"steelcheck/internal/profile"
	"steelcheck/internal/repo"
	"steelcheck/internal/section"
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

func HandleList(router *mux.Router, sections section.Repository, userDB *sql.DB) {
	limiter := auth.NewIPRateLimiter(1, 3)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	classifyH := classify.NewHandler(sections)
	axialH := axial.NewHandler(sections)
	flexureH := flexure.NewHandler(sections)
	interactionH := interaction.NewHandler()
	serviceH := serviceability.NewHandler(sections)
	curvesH := curves.NewHandler(sections)
	importerH := importer.NewHandler(sections)
	recommendH := recommend.NewHandler(sections)
	reportH := report.NewHandler()

	api.HandleFunc("/tools/classify/calc", classifyH.Calc).Methods("POST")
	api.HandleFunc("/tools/axial/calc", axialH.Calc).Methods("POST")
	api.HandleFunc("/tools/flexure/calc", flexureH.Calc).Methods("POST")
	api.HandleFunc("/tools/interaction/calc", interactionH.Calc).Methods("POST")
	api.HandleFunc("/tools/serviceability/calc", serviceH.Calc).Methods("POST")
	api.HandleFunc("/tools/curves/axial", curvesH.Axial).Methods("POST")
	api.HandleFunc("/tools/curves/flexural", curvesH.Flexural).Methods("POST")
	api.HandleFunc("/tools/import/axial", importerH.Axial).Methods("POST")
	api.HandleFunc("/tools/recommend/section", recommendH.Section).Methods("POST")
	api.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")

	// User accounts need both the Postgres store and a signing key; without
	// them the calculation surface still works.
	if userDB == nil {
		log.Println("no database: account endpoints disabled")
		return
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Println("TOKEN_KEY not set: account endpoints disabled")
		return
	}

	userRepo := repo.NewPostgresUserDB(userDB)
	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: userRepo}
	profileH := &profile.ProfileHandler{Repo: userRepo}

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureAPI := api.PathPrefix("/user").Subrouter()
	secureAPI.Use(authEnv.AuthMiddleware)
	secureAPI.HandleFunc("/profile", profileH.GetProfile).Methods("GET")
	secureAPI.HandleFunc("/profile", profileH.UpdateProfile).Methods("PATCH", "PUT")
	secureAPI.HandleFunc("/runs", profileH.SaveRun).Methods("POST")
	secureAPI.HandleFunc("/runs", profileH.ListRuns).Methods("GET")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, relying on the environment")
	}

	// One pool serves both the section catalog and the user store. With no
	// database the service runs on the built-in catalog, accounts disabled.
	var sections section.Repository
	db, err := auth.InitDB()
	if err != nil {
		log.Printf("database unavailable (%v): using built-in catalog", err)
		sections = catalog.Seed()
	} else {
		defer db.Close()
		source := os.Getenv("CATALOG_SOURCE")
		if source == "" {
			source = "AISC"
		}
		sections = catalog.NewPostgres(db, source)
	}

	router := mux.NewRouter()
	HandleList(router, sections, db)
	handler := CORS(router)

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	log.Printf("starting server on %s (catalog: %s)", addr, sections.Source())

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutdown signal received, closing active connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server shutdown error: %v", err)
	}
	log.Println("server stopped")

	wg.Wait()
}
