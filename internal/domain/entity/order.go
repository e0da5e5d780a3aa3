package entity

import "time"

// OrderLine una línea del pedido ya agrupada por producto
type OrderLine struct {
	Product  Product `json:"producto"`
	Quantity int     `json:"cantidad"`
}

// Order pedido finalizado. Se crea de forma atómica con el mensaje de
// confirmación, en el mismo turno que resetea la sesión.
type Order struct {
	ID           string       `json:"id"`
	SessionID    string       `json:"session_id"`
	Lines        []OrderLine  `json:"lineas"`
	DeliveryMode DeliveryMode `json:"modo_entrega"`
	Subtotal     int          `json:"subtotal"`
	ShippingFee  int          `json:"envio"`
	Total        int          `json:"total"`
	CreatedAt    time.Time    `json:"creado"`
}
