// Package telegram es un transporte alternativo: cada chat de Telegram es
// una sesión independiente sobre el mismo caso de uso.
package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourusername/ferreteria-chat-bot/internal/usecase"
	"github.com/yourusername/ferreteria-chat-bot/pkg/logger"
)

// BotHandler bot de Telegram de la ferretería
type BotHandler struct {
	bot         *tgbotapi.BotAPI
	chatUseCase usecase.ChatUseCase
}

// NewBotHandler crea el bot con el token dado
func NewBotHandler(token string, chatUseCase usecase.ChatUseCase) (*BotHandler, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("no se pudo crear el bot de Telegram: %w", err)
	}
	return &BotHandler{bot: bot, chatUseCase: chatUseCase}, nil
}

// Start consume actualizaciones hasta que el contexto se cancele
func (h *BotHandler) Start(ctx context.Context) {
	logger.InfoLogger.Printf("✅ Bot de Telegram conectado como @%s", h.bot.Self.UserName)

	updateCfg := tgbotapi.NewUpdate(0)
	updateCfg.Timeout = 30
	updates := h.bot.GetUpdatesChan(updateCfg)

	for {
		select {
		case <-ctx.Done():
			h.bot.StopReceivingUpdates()
			return
		case update := <-updates:
			if update.Message == nil || update.Message.Text == "" {
				continue
			}
			h.handleMessage(ctx, update.Message)
		}
	}
}

func (h *BotHandler) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	// Una sesión por chat: los carritos de dos clientes nunca se mezclan
	sessionID := fmt.Sprintf("tg-%d", msg.Chat.ID)

	reply, err := h.chatUseCase.ProcessMessage(ctx, sessionID, msg.Text)
	if err != nil {
		logger.ErrorLogger.Printf("turno fallido en %s: %v", sessionID, err)
		reply = "Hubo un error procesando tu mensaje. Inténtalo de nuevo."
	}

	out := tgbotapi.NewMessage(msg.Chat.ID, reply)
	if _, err := h.bot.Send(out); err != nil {
		logger.ErrorLogger.Printf("no se pudo enviar la respuesta a %s: %v", sessionID, err)
	}
}
