package constants

// Constantes del negocio
const (
	// ShippingFee costo fijo del envío a domicilio (COP)
	ShippingFee = 10000

	// CategoryPageSize productos mostrados por página al navegar una categoría
	CategoryPageSize = 5

	// MinFuzzyTokenLen longitud mínima de un token para el match difuso de nombres
	MinFuzzyTokenLen = 3

	// MaxPriceSuggestions sugerencias de venta cruzada al consultar un precio
	MaxPriceSuggestions = 2

	// MaxCartSuggestions sugerencias de venta cruzada al agregar al carrito
	MaxCartSuggestions = 3
)

// Constantes de chat y contexto
const (
	// DefaultMaxContextSize máximo de mensajes guardados por sesión
	DefaultMaxContextSize = 50

	// DefaultSessionID sesión usada cuando el transporte no manda X-Session-ID.
	// Reproduce el comportamiento original de una única sesión global.
	DefaultSessionID = "default"
)

// Datos fijos de la tienda
const (
	// StoreAddress dirección física de la ferretería
	StoreAddress = "Calle 45 #12-30, Medellín"

	// ShipETADays días estimados de entrega para envíos a domicilio
	ShipETADays = 2
)
