package main

import (
	"fmt"
	"log"
	"net/http"

	"aigallery/cmd/app"
	"aigallery/internal/config"
	handlers "aigallery/internal/handler"
	"aigallery/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	// секрет подписи обязан приходить извне, резервного значения нет
	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, services, minioClient := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, minioClient, db, cfg)

	mux := http.NewServeMux()

	// setting up routes
	mux.HandleFunc("/", handler.Home)
	mux.HandleFunc("/health", handler.Health)

	mux.HandleFunc("/auth/signup", handler.Signup)
	mux.HandleFunc("/auth/login", handler.Login)
	mux.HandleFunc("/auth/me", handler.Me)
	mux.HandleFunc("/auth/logout", handler.Logout)

	mux.HandleFunc("/items", handler.Items)
	mux.HandleFunc("/items/", handler.ItemByID)

	mux.HandleFunc("/uploads/thumbnail", handler.UploadThumbnail)

	handlerChain := middleware.Chain(
		mux,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Сервер запущен на %s", addr)
	log.Printf("База данных: %s", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
