package entity

import "time"

// DeliveryMode modo de entrega elegido por el cliente
type DeliveryMode int

const (
	DeliveryUnset DeliveryMode = iota
	DeliveryShip
	DeliveryPickup
)

// String nombre legible del modo de entrega
func (d DeliveryMode) String() string {
	switch d {
	case DeliveryShip:
		return "envío a domicilio"
	case DeliveryPickup:
		return "recoger en tienda"
	default:
		return "sin elegir"
	}
}

// Session estado mutable de una conversación en curso.
// El carrito se modela como una secuencia ordenada de productos, una
// entrada por unidad (no un mapa producto→cantidad); eso define la
// semántica de quitar "las primeras N que coincidan".
type Session struct {
	ID                     string
	Cart                   []Product
	DeliveryMode           DeliveryMode
	AwaitingDeliveryChoice bool
	AwaitingConfirmation   bool
	LastBrowsedCategory    string
	CategoryPage           int
	UpdatedAt              time.Time
}

// NewSession sesión con todos los campos en sus valores iniciales
func NewSession(id string) *Session {
	return &Session{ID: id, UpdatedAt: time.Now()}
}

// Reset vuelve la sesión a su estado inicial (se usa al finalizar un pedido)
func (s *Session) Reset() {
	s.Cart = nil
	s.DeliveryMode = DeliveryUnset
	s.AwaitingDeliveryChoice = false
	s.AwaitingConfirmation = false
	s.LastBrowsedCategory = ""
	s.CategoryPage = 0
	s.UpdatedAt = time.Now()
}

// Subtotal suma de los precios del carrito, sin recargo de envío
func (s *Session) Subtotal() int {
	total := 0
	for _, p := range s.Cart {
		total += p.Price
	}
	return total
}

// Total subtotal más el recargo de envío cuando el modo es envío a domicilio
func (s *Session) Total(shippingFee int) int {
	if s.DeliveryMode == DeliveryShip {
		return s.Subtotal() + shippingFee
	}
	return s.Subtotal()
}
