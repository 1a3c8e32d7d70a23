package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"getitdone/handlers"
	"getitdone/sessions"
	"getitdone/store"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, continuing..")
		}
	}
	log.Println("environment: ", os.Getenv("APP_ENV"))

	// Persistence store: Postgres in normal operation, in-memory when no
	// DATABASE_URL is configured (everything is lost on restart).
	var db store.Store
	if pgDSN := os.Getenv("DATABASE_URL"); pgDSN != "" {
		pg, err := store.OpenPostgres(pgDSN)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer pg.Close()
		db = pg
	} else {
		log.Println("DATABASE_URL not set, using in-memory store")
		db = store.NewMemory()
	}

	// Session manager: Redis-backed, with the same in-memory fallback.
	var sm sessions.Manager
	if redisDSN := os.Getenv("REDIS_URL"); redisDSN != "" {
		client := sessions.OpenRedis(redisDSN)
		defer client.Close()
		sm = sessions.NewRedis(client)
	} else {
		log.Println("REDIS_URL not set, using in-memory sessions")
		sm = sessions.NewMemory()
	}

	// Set up the HTTP server and handlers
	mux := http.NewServeMux()

	// File server for static files
	fileServer := http.FileServer(http.Dir("./ui/static/"))
	mux.Handle("/static/", http.StripPrefix("/static", fileServer))

	// HTTP handlers
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		handlers.Index(w, r, db, sm)
	})
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			handlers.LoginPage(w, r, sm)
		} else {
			handlers.Login(w, r, db, sm)
		}
	})
	mux.HandleFunc("/register", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			handlers.RegisterPage(w, r, sm)
		} else {
			handlers.Register(w, r, db, sm)
		}
	})
	mux.HandleFunc("/logout", func(w http.ResponseWriter, r *http.Request) {
		handlers.Logout(w, r, sm)
	})
	mux.HandleFunc("/delete-task", func(w http.ResponseWriter, r *http.Request) {
		handlers.DeleteTask(w, r, db)
	})

	// Every request passes the login gate first
	handler := handlers.RequireLogin(mux, sm)

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}

	// Start the server
	fmt.Println("Starting server on " + addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
