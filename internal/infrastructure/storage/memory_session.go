package storage

import (
	"context"
	"sync"
	"time"

	"github.com/yourusername/ferreteria-chat-bot/internal/domain/entity"
	"github.com/yourusername/ferreteria-chat-bot/internal/domain/repository"
)

// sessionSlot una sesión con su propio lock, para que un turno largo de
// una sesión no bloquee a las demás
type sessionSlot struct {
	mu      sync.Mutex
	session *entity.Session
}

type memorySessionRepository struct {
	mu    sync.Mutex
	slots map[string]*sessionSlot
}

// NewMemorySessionRepository crea el almacén de sesiones en memoria.
// Las sesiones no sobreviven al reinicio del proceso.
func NewMemorySessionRepository() repository.SessionRepository {
	return &memorySessionRepository{
		slots: make(map[string]*sessionSlot),
	}
}

// WithSession acceso exclusivo a la sesión; la crea si no existe
func (m *memorySessionRepository) WithSession(ctx context.Context, id string, fn func(s *entity.Session)) error {
	m.mu.Lock()
	slot, ok := m.slots[id]
	if !ok {
		slot = &sessionSlot{session: entity.NewSession(id)}
		m.slots[id] = slot
	}
	m.mu.Unlock()

	slot.mu.Lock()
	defer slot.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	fn(slot.session)
	slot.session.UpdatedAt = time.Now()
	return nil
}
