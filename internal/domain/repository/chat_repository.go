package repository

import (
	"context"

	"github.com/yourusername/ferreteria-chat-bot/internal/domain/entity"
)

// ChatRepository historial de mensajes por sesión
type ChatRepository interface {
	// SaveMessage guarda un turno de la conversación
	SaveMessage(ctx context.Context, message entity.Message) error

	// GetHistory últimos mensajes de la sesión (limit <= 0 devuelve todos)
	GetHistory(ctx context.Context, sessionID string, limit int) ([]entity.Message, error)

	// ClearHistory borra el historial de la sesión
	ClearHistory(ctx context.Context, sessionID string) error
}
