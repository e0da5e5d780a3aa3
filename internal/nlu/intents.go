package nlu

// Intent etiqueta de intención del cliente. Taxonomía cerrada.
type Intent string

const (
	IntentGreeting          Intent = "greeting"
	IntentFarewell          Intent = "farewell"
	IntentHelp              Intent = "help"
	IntentViewCart          Intent = "viewCart"
	IntentPriceQuery        Intent = "priceQuery"
	IntentAvailability      Intent = "availability"
	IntentAddToCart         Intent = "addToCart"
	IntentRemoveFromCart    Intent = "removeFromCart"
	IntentCategory          Intent = "category"
	IntentShippingCostQuery Intent = "shippingCostQuery"
	IntentDeliveryShip      Intent = "deliveryShip"
	IntentDeliveryPickup    Intent = "deliveryPickup"
	IntentAddressQuery      Intent = "addressQuery"
	IntentTotal             Intent = "total"
	IntentFinalize          Intent = "finalize"
)

// intentRule una intención con sus frases disparadoras, ya normalizadas
// sin tildes. Gana la primera regla cuyo disparador aparezca como
// substring del texto; no hay puntaje.
type intentRule struct {
	intent   Intent
	triggers []string
}

// primaryRules intenciones evaluadas antes de la detección de categoría.
// El orden de la tabla es el orden de prioridad.
var primaryRules = []intentRule{
	{IntentHelp, []string{"ayuda", "que puedes hacer", "que sabes hacer", "opciones", "menu"}},
	{IntentGreeting, []string{"hola", "buenas", "buenos dias", "saludos"}},
	{IntentFarewell, []string{"adios", "chao", "hasta luego", "nos vemos"}},
	{IntentViewCart, []string{"ver carrito", "ver el carrito", "mi carrito", "mostrar carrito", "que llevo", "que hay en el carrito"}},
	{IntentShippingCostQuery, []string{"cuanto cuesta el envio", "cuanto vale el envio", "costo de envio", "costo del envio", "valor del envio", "precio del envio"}},
}

// secondaryRules intenciones evaluadas después de la detección de categoría.
// "quita" cubre también "quitar", "elimina" cubre "eliminar", etc., porque
// el match es por substring.
var secondaryRules = []intentRule{
	{IntentDeliveryShip, []string{"envio", "envia", "domicilio", "a mi casa"}},
	{IntentDeliveryPickup, []string{"recoger", "recojo", "en tienda", "en la tienda", "retiro"}},
	{IntentAddressQuery, []string{"direccion", "donde estan", "donde queda", "ubicacion", "ubicados"}},
	{IntentPriceQuery, []string{"precio", "cuanto cuesta", "cuanto vale", "cuanto esta", "valor"}},
	{IntentAvailability, []string{"tienen", "tiene", "hay", "venden"}},
	{IntentRemoveFromCart, []string{"ya no quiero", "quita", "elimina", "saca", "remueve", "remover", "retira"}},
	{IntentAddToCart, []string{"compra", "quiero", "llevar", "llevo", "agrega", "anade", "anadir", "vendeme", "dame"}},
	{IntentTotal, []string{"total", "cuanto es todo", "cuanto debo", "la cuenta", "cuanto seria"}},
	{IntentFinalize, []string{"finaliza", "confirma", "confirmo", "pagar", "listo", "cerrar pedido", "hacer el pedido"}},
}

// affirmativeTokens palabras que cuentan como "sí, muéstrame más" durante
// la paginación de una categoría. Se comparan por token completo, no por
// substring, para que "si" no dispare dentro de otras palabras.
var affirmativeTokens = map[string]struct{}{
	"si":         {},
	"claro":      {},
	"dale":       {},
	"ok":         {},
	"mas":        {},
	"siguiente":  {},
	"siguientes": {},
	"continua":   {},
}
