package repository

import (
	"context"

	"github.com/yourusername/ferreteria-chat-bot/internal/domain/entity"
)

// OrderRepository pedidos finalizados
type OrderRepository interface {
	// SaveOrder guarda un pedido confirmado
	SaveOrder(ctx context.Context, order entity.Order) error

	// ListOrders todos los pedidos en orden de creación
	ListOrders(ctx context.Context) ([]entity.Order, error)
}
