package storage

import (
	"context"
	"sync"

	"github.com/yourusername/ferreteria-chat-bot/internal/domain/entity"
	"github.com/yourusername/ferreteria-chat-bot/internal/domain/repository"
)

type memoryOrderRepository struct {
	mu     sync.RWMutex
	orders []entity.Order
}

// NewMemoryOrderRepository almacén de pedidos finalizados en memoria
func NewMemoryOrderRepository() repository.OrderRepository {
	return &memoryOrderRepository{}
}

// SaveOrder guarda un pedido confirmado
func (m *memoryOrderRepository) SaveOrder(ctx context.Context, order entity.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders = append(m.orders, order)
	return nil
}

// ListOrders pedidos en orden de creación, copia defensiva
func (m *memoryOrderRepository) ListOrders(ctx context.Context) ([]entity.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]entity.Order, len(m.orders))
	copy(out, m.orders)
	return out, nil
}
