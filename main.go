package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"Carrytome/internal/api"
	"Carrytome/internal/config"
	"Carrytome/internal/db"
	"Carrytome/internal/session"
	"Carrytome/internal/telegram_api"
	"Carrytome/internal/views"
)

func main() {
	// --- Блок инициализации ---
	err := godotenv.Load()
	if err != nil {
		log.Println("Предупреждение: не удалось загрузить файл .env. Переменные окружения должны быть установлены иным способом.")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Критическая ошибка: не удалось загрузить конфигурацию: %v", err)
	}

	if err := db.InitStorage(cfg.DataDir); err != nil {
		log.Fatalf("Критическая ошибка: не удалось инициализировать хранилище: %v", err)
	}
	defer db.CloseStorage()

	// Релей загрузок опционален: без токена магазин работает, загрузки - нет.
	if cfg.TelegramToken != "" {
		if err := telegram_api.InitBot(cfg.TelegramToken, cfg.AppEnv == "dev"); err != nil {
			log.Fatalf("Критическая ошибка: не удалось инициализировать Telegram бота: %v", err)
		}
	}

	sessionManager := session.NewManager()

	// Представления монтируются один раз и живут до остановки процесса.
	myOrdersView := views.NewMyOrdersView(sessionManager)
	flightsView := views.NewRegisteredFlightsView(sessionManager)
	cargoView := views.NewRegisteredCargoView(sessionManager)
	myOrdersView.Mount()
	flightsView.Mount()
	cargoView.Mount()

	// --- Настройка роутера и Middleware ---
	apiRouter := chi.NewRouter()

	// ГЛОБАЛЬНЫЕ MIDDLEWARES ДОЛЖНЫ ИДТИ ПЕРЕД api.SetupRoutes
	apiRouter.Use(middleware.Logger)
	apiRouter.Use(middleware.Recoverer)
	apiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Telegram-Auth"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	apiDeps := api.ApiDependencies{
		Config:    cfg,
		SecretKey: cfg.TelegramToken,
		MyOrders:  myOrdersView,
		Flights:   flightsView,
		Cargo:     cargoView,
	}
	api.SetupRoutes(apiRouter, apiDeps)

	apiRouter.Get("/", http.RedirectHandler("/webapp/", http.StatusMovedPermanently).ServeHTTP)

	// Обработка запроса иконки, чтобы избежать ошибки 404 в логах
	apiRouter.Get("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	// Настройка файлового сервера для WebApp
	workDir, _ := os.Getwd()
	filesDir := http.Dir(filepath.Join(workDir, cfg.WebAppDir))
	FileServer(apiRouter, "/webapp", filesDir)

	log.Printf("Запуск HTTP-сервера для WebApp API на порту %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, apiRouter); err != nil {
		log.Fatalf("КРИТИЧЕСКАЯ ОШИБКА: не удалось запустить HTTP-сервер: %v", err)
	}
}

// FileServer для обслуживания статичных файлов
func FileServer(r chi.Router, path string, root http.FileSystem) {
	if strings.ContainsAny(path, "{}*") {
		panic("FileServer не поддерживает шаблоны URL")
	}

	if path != "/" && path[len(path)-1] != '/' {
		r.Get(path, http.RedirectHandler(path+"/", http.StatusMovedPermanently).ServeHTTP)
		path += "/"
	}
	path += "*"

	r.Get(path, func(w http.ResponseWriter, r *http.Request) {
		rctx := chi.RouteContext(r.Context())
		pathPrefix := strings.TrimSuffix(rctx.RoutePattern(), "/*")
		fs := http.StripPrefix(pathPrefix, http.FileServer(root))
		fs.ServeHTTP(w, r)
	})
}
