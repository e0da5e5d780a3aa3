package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/yourusername/ferreteria-chat-bot/config"
	"github.com/yourusername/ferreteria-chat-bot/internal/delivery/httpapi"
	"github.com/yourusername/ferreteria-chat-bot/internal/delivery/telegram"
	"github.com/yourusername/ferreteria-chat-bot/internal/domain/constants"
	"github.com/yourusername/ferreteria-chat-bot/internal/domain/entity"
	"github.com/yourusername/ferreteria-chat-bot/internal/infrastructure/parser"
	"github.com/yourusername/ferreteria-chat-bot/internal/infrastructure/storage"
	"github.com/yourusername/ferreteria-chat-bot/internal/usecase"
	"github.com/yourusername/ferreteria-chat-bot/pkg/logger"
)

func main() {
	logger.Init()
	logger.InfoLogger.Println("🚀 Ferretería chat bot arrancando...")

	cfg, err := config.Load()
	if err != nil {
		logger.ErrorLogger.Fatalf("❌ Configuración inválida: %v", err)
	}

	products, err := loadCatalog(cfg)
	if err != nil {
		logger.ErrorLogger.Fatalf("❌ No se pudo cargar el catálogo: %v", err)
	}
	logger.InfoLogger.Printf("✅ Catálogo cargado: %d productos", len(products))

	// Repositorios en memoria
	catalogRepo := storage.NewMemoryCatalogRepository(products)
	sessionRepo := storage.NewMemorySessionRepository()
	chatRepo := storage.NewMemoryChatRepository(constants.DefaultMaxContextSize)
	orderRepo := storage.NewMemoryOrderRepository()

	chatUseCase := usecase.NewChatUseCase(catalogRepo, sessionRepo, chatRepo, orderRepo)
	logger.InfoLogger.Println("✅ Máquina de diálogo lista")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Transporte opcional de Telegram
	if cfg.TelegramToken != "" {
		bot, err := telegram.NewBotHandler(cfg.TelegramToken, chatUseCase)
		if err != nil {
			logger.ErrorLogger.Fatalf("❌ Telegram no disponible: %v", err)
		}
		go bot.Start(ctx)
	}

	// API HTTP
	router := httpapi.NewRouter(httpapi.NewHandler(chatUseCase), cfg.AllowedOrigins)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: router,
	}

	go func() {
		logger.InfoLogger.Printf("✅ Servidor escuchando en http://localhost:%d", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.ErrorLogger.Fatalf("❌ Servidor HTTP cayó: %v", err)
		}
	}()

	<-ctx.Done()
	logger.InfoLogger.Println("Apagando...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorLogger.Printf("apagado forzado: %v", err)
	}
}

// loadCatalog elige la fuente del catálogo: Postgres si hay DSN, si no el
// archivo según su extensión
func loadCatalog(cfg *config.Config) ([]entity.Product, error) {
	if cfg.CatalogDSN != "" {
		return storage.LoadPostgres(cfg.CatalogDSN)
	}
	switch strings.ToLower(filepath.Ext(cfg.CatalogPath)) {
	case ".xlsx":
		return parser.NewExcelParser().Parse(cfg.CatalogPath)
	default:
		return parser.NewJSONParser().Parse(cfg.CatalogPath)
	}
}
