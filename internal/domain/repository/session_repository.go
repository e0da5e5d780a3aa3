package repository

import (
	"context"

	"github.com/yourusername/ferreteria-chat-bot/internal/domain/entity"
)

// SessionRepository guarda el estado de las conversaciones, una sesión por
// identificador entregado por el transporte (header HTTP, chat de Telegram...).
type SessionRepository interface {
	// WithSession ejecuta fn con acceso exclusivo a la sesión, creándola con
	// valores iniciales si no existe. Dos turnos de la misma sesión nunca se
	// entrelazan; sesiones distintas no se bloquean entre sí.
	WithSession(ctx context.Context, id string, fn func(s *entity.Session)) error
}
