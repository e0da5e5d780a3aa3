package storage

import (
	"context"
	"sync"

	"github.com/yourusername/ferreteria-chat-bot/internal/domain/entity"
	"github.com/yourusername/ferreteria-chat-bot/internal/domain/repository"
)

type memoryChatRepository struct {
	mu       sync.RWMutex
	messages map[string][]entity.Message // por sesión
	maxSize  int
}

// NewMemoryChatRepository historial de conversación en memoria,
// acotado a maxSize mensajes por sesión
func NewMemoryChatRepository(maxSize int) repository.ChatRepository {
	return &memoryChatRepository{
		messages: make(map[string][]entity.Message),
		maxSize:  maxSize,
	}
}

// SaveMessage guarda un turno, descartando los más viejos al pasar el límite
func (m *memoryChatRepository) SaveMessage(ctx context.Context, message entity.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	msgs := append(m.messages[message.SessionID], message)
	if len(msgs) > m.maxSize {
		msgs = msgs[len(msgs)-m.maxSize:]
	}
	m.messages[message.SessionID] = msgs
	return nil
}

// GetHistory últimos mensajes de la sesión
func (m *memoryChatRepository) GetHistory(ctx context.Context, sessionID string, limit int) ([]entity.Message, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	msgs := m.messages[sessionID]
	if limit > 0 && len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}

	// Copia defensiva: el caller puede iterar sin el lock
	out := make([]entity.Message, len(msgs))
	copy(out, msgs)
	return out, nil
}

// ClearHistory borra el historial de la sesión
func (m *memoryChatRepository) ClearHistory(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.messages, sessionID)
	return nil
}
