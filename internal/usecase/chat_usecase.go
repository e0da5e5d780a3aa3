package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/ferreteria-chat-bot/internal/domain/constants"
	"github.com/yourusername/ferreteria-chat-bot/internal/domain/entity"
	"github.com/yourusername/ferreteria-chat-bot/internal/domain/repository"
	"github.com/yourusername/ferreteria-chat-bot/internal/nlu"
)

// ChatUseCase procesa los turnos de la conversación
type ChatUseCase interface {
	// ProcessMessage un turno completo: clasificar, mutar la sesión y responder
	ProcessMessage(ctx context.Context, sessionID, text string) (string, error)

	// GetHistory últimos turnos de la sesión
	GetHistory(ctx context.Context, sessionID string) ([]entity.Message, error)

	// ClearHistory borra el historial de la sesión
	ClearHistory(ctx context.Context, sessionID string) error
}

type chatUseCase struct {
	catalog    repository.CatalogRepository
	sessions   repository.SessionRepository
	chats      repository.ChatRepository
	orders     repository.OrderRepository
	classifier *nlu.Classifier
	extractor  *nlu.Extractor
	categories []string
}

// NewChatUseCase arma la máquina de diálogo sobre el catálogo y los almacenes
func NewChatUseCase(
	catalog repository.CatalogRepository,
	sessions repository.SessionRepository,
	chats repository.ChatRepository,
	orders repository.OrderRepository,
) ChatUseCase {
	categories := catalog.Categories(context.Background())
	return &chatUseCase{
		catalog:    catalog,
		sessions:   sessions,
		chats:      chats,
		orders:     orders,
		classifier: nlu.NewClassifier(categories),
		extractor:  nlu.NewExtractor(catalog),
		categories: categories,
	}
}

// ProcessMessage maneja el turno con acceso exclusivo a la sesión y guarda
// el intercambio en el historial
func (u *chatUseCase) ProcessMessage(ctx context.Context, sessionID, text string) (string, error) {
	var reply string
	var intent nlu.Intent
	err := u.sessions.WithSession(ctx, sessionID, func(s *entity.Session) {
		reply, intent = u.handleTurn(ctx, s, text)
	})
	if err != nil {
		return "", fmt.Errorf("no se pudo procesar el mensaje: %w", err)
	}

	msg := entity.Message{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Text:      text,
		Response:  reply,
		Intent:    string(intent),
		Timestamp: time.Now(),
	}
	if err := u.chats.SaveMessage(ctx, msg); err != nil {
		log.Printf("no se pudo guardar el mensaje: %v", err)
	}
	return reply, nil
}

// GetHistory últimos turnos de la sesión
func (u *chatUseCase) GetHistory(ctx context.Context, sessionID string) ([]entity.Message, error) {
	return u.chats.GetHistory(ctx, sessionID, constants.DefaultMaxContextSize)
}

// ClearHistory borra el historial de la sesión
func (u *chatUseCase) ClearHistory(ctx context.Context, sessionID string) error {
	return u.chats.ClearHistory(ctx, sessionID)
}

// handleTurn la transición de la máquina de estados: dado el estado actual
// y el texto, decide la acción, muta la sesión y arma la respuesta
func (u *chatUseCase) handleTurn(ctx context.Context, s *entity.Session, raw string) (string, nlu.Intent) {
	text := nlu.NormalizeStrict(raw)

	// Una elección de entrega pendiente manda sobre la prioridad normal:
	// "envío" aquí es la respuesta a la pregunta, no una consulta nueva
	if s.AwaitingDeliveryChoice {
		if u.classifier.MatchesIntent(text, nlu.IntentDeliveryShip) {
			return u.chooseDelivery(s, entity.DeliveryShip), nlu.IntentDeliveryShip
		}
		if u.classifier.MatchesIntent(text, nlu.IntentDeliveryPickup) {
			return u.chooseDelivery(s, entity.DeliveryPickup), nlu.IntentDeliveryPickup
		}
	}

	// "sí" / "más" mientras se navega una categoría pasa de página
	if s.LastBrowsedCategory != "" && u.classifier.IsAffirmative(text) {
		return u.nextCategoryPage(ctx, s), nlu.IntentCategory
	}

	// Con el pedido listo para confirmar, un "sí" lo cierra sin exigir
	// la palabra "finalizar"
	if s.AwaitingConfirmation && u.classifier.IsAffirmative(text) {
		return u.finalize(ctx, s), nlu.IntentFinalize
	}

	intent, category, ok := u.classifier.Classify(text)
	if !ok {
		return fallbackText(), ""
	}

	switch intent {
	case nlu.IntentGreeting:
		return greetingText(u.categories), intent
	case nlu.IntentFarewell:
		return "¡Hasta pronto! Vuelve cuando necesites algo para tu obra.", intent
	case nlu.IntentHelp:
		return helpText(u.categories), intent
	case nlu.IntentViewCart:
		return renderCart(s), intent
	case nlu.IntentCategory:
		return u.browseCategory(ctx, s, category), intent
	case nlu.IntentPriceQuery:
		return u.priceQuery(ctx, text), intent
	case nlu.IntentAvailability:
		return u.availability(ctx, text), intent
	case nlu.IntentAddToCart:
		return u.addToCart(ctx, s, text), intent
	case nlu.IntentRemoveFromCart:
		return u.removeFromCart(ctx, s, text), intent
	case nlu.IntentShippingCostQuery:
		return fmt.Sprintf("El envío a domicilio tiene un costo fijo de %s. Recoger en tienda es gratis.",
			formatCOP(constants.ShippingFee)), intent
	case nlu.IntentAddressQuery:
		return fmt.Sprintf("Estamos en %s. Te esperamos de lunes a sábado, de 8am a 6pm.",
			constants.StoreAddress), intent
	case nlu.IntentTotal:
		return u.total(s), intent
	case nlu.IntentFinalize:
		return u.finalize(ctx, s), intent
	default:
		// deliveryShip/deliveryPickup fuera del estado de espera no tienen
		// transición definida: degradan a la respuesta por defecto
		return fallbackText(), ""
	}
}

func (u *chatUseCase) browseCategory(ctx context.Context, s *entity.Session, category string) string {
	products := u.catalog.ByCategory(ctx, category)
	if len(products) == 0 {
		return fallbackText()
	}
	s.LastBrowsedCategory = category
	s.CategoryPage = 0
	return renderCategoryPage(category, products, 0)
}

func (u *chatUseCase) nextCategoryPage(ctx context.Context, s *entity.Session) string {
	products := u.catalog.ByCategory(ctx, s.LastBrowsedCategory)
	s.CategoryPage++
	if s.CategoryPage*constants.CategoryPageSize >= len(products) {
		category := s.LastBrowsedCategory
		s.LastBrowsedCategory = ""
		s.CategoryPage = 0
		return fmt.Sprintf("Ya viste todos los productos de %s. ¿Te muestro otra categoría?", category)
	}
	return renderCategoryPage(s.LastBrowsedCategory, products, s.CategoryPage)
}

func (u *chatUseCase) priceQuery(ctx context.Context, text string) string {
	p, _, ok := u.extractor.ExtractProduct(ctx, text)
	if !ok {
		return "¿De qué producto quieres saber el precio?"
	}
	reply := fmt.Sprintf("El precio del %s es %s. %s", p.Name, formatCOP(p.Price), p.Description)
	if sugs := renderSuggestions(u.catalog.SuggestionsFor(ctx, *p), constants.MaxPriceSuggestions); sugs != "" {
		reply += "\n" + sugs
	}
	return reply
}

func (u *chatUseCase) availability(ctx context.Context, text string) string {
	p, ok := u.catalog.FindByText(ctx, text)
	if !ok {
		return "No estoy seguro. ¿Puedes decirme el nombre exacto del producto?"
	}
	return fmt.Sprintf("Sí, tenemos %s disponible. Cuesta %s.", p.Name, formatCOP(p.Price))
}

func (u *chatUseCase) addToCart(ctx context.Context, s *entity.Session, text string) string {
	p, qty, ok := u.extractor.ExtractProduct(ctx, text)
	if !ok {
		return fmt.Sprintf("Perfecto, pero necesito saber qué producto deseas. Tenemos %s.",
			joinWithY(u.categories))
	}

	for i := 0; i < qty; i++ {
		s.Cart = append(s.Cart, *p)
	}
	if s.DeliveryMode == entity.DeliveryUnset {
		s.AwaitingDeliveryChoice = true
	}

	reply := fmt.Sprintf("Agregué %d %s por %s.", qty, p.Name, formatCOP(p.Price*qty))
	if sugs := renderSuggestions(u.catalog.SuggestionsFor(ctx, *p), constants.MaxCartSuggestions); sugs != "" {
		reply += "\n" + sugs
	}
	return reply + "\n\n" + renderCart(s)
}

// removeFromCart resuelve el producto con el match difuso, pero quita del
// carrito por igualdad exacta del nombre normalizado: las primeras N
// coincidencias, de adelante hacia atrás
func (u *chatUseCase) removeFromCart(ctx context.Context, s *entity.Session, text string) string {
	p, qty, ok := u.extractor.ExtractProduct(ctx, text)
	if !ok {
		return "¿Qué producto quieres quitar del carrito?"
	}

	target, found := u.catalog.FindExact(ctx, p.Name)
	if !found {
		return "¿Qué producto quieres quitar del carrito?"
	}
	targetName := nlu.NormalizeStrict(target.Name)

	removed := 0
	kept := s.Cart[:0]
	for _, item := range s.Cart {
		if removed < qty && nlu.NormalizeStrict(item.Name) == targetName {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	s.Cart = kept

	if removed == 0 {
		return fmt.Sprintf("%s no está en tu carrito.", target.Name)
	}
	return fmt.Sprintf("Listo, quité %d %s del carrito.\n\n%s", removed, target.Name, renderCart(s))
}

func (u *chatUseCase) chooseDelivery(s *entity.Session, mode entity.DeliveryMode) string {
	s.DeliveryMode = mode
	s.AwaitingDeliveryChoice = false
	s.AwaitingConfirmation = true

	var reply string
	if mode == entity.DeliveryShip {
		reply = fmt.Sprintf("Perfecto, envío a domicilio por %s.", formatCOP(constants.ShippingFee))
	} else {
		reply = fmt.Sprintf("Perfecto, recoges gratis en la tienda (%s).", constants.StoreAddress)
	}
	return reply + "\n\n" + renderCart(s) + "\n¿Deseas finalizar el pedido? Responde 'sí' o escribe 'finalizar'."
}

func (u *chatUseCase) total(s *entity.Session) string {
	if len(s.Cart) == 0 {
		return "🛒 Tu carrito está vacío. Agrega algo antes de pedir el total."
	}
	if s.DeliveryMode == entity.DeliveryUnset {
		s.AwaitingDeliveryChoice = true
		return fmt.Sprintf("El subtotal es %s. ¿Prefieres envío a domicilio (%s) o recoger gratis en tienda?",
			formatCOP(s.Subtotal()), formatCOP(constants.ShippingFee))
	}
	s.AwaitingConfirmation = true
	return renderCart(s) + "\n¿Deseas finalizar el pedido? Responde 'sí' o escribe 'finalizar'."
}

// finalize confirma el pedido y resetea la sesión en el mismo turno
func (u *chatUseCase) finalize(ctx context.Context, s *entity.Session) string {
	if len(s.Cart) == 0 {
		return "🛒 Tu carrito está vacío. Agrega algo antes de finalizar."
	}
	if s.DeliveryMode == entity.DeliveryUnset {
		return "Antes de finalizar dime cómo quieres recibir el pedido: ¿envío a domicilio o recoger en tienda?"
	}

	fee := 0
	if s.DeliveryMode == entity.DeliveryShip {
		fee = constants.ShippingFee
	}
	order := entity.Order{
		ID:           uuid.New().String(),
		SessionID:    s.ID,
		Lines:        groupCart(s.Cart),
		DeliveryMode: s.DeliveryMode,
		Subtotal:     s.Subtotal(),
		ShippingFee:  fee,
		Total:        s.Total(constants.ShippingFee),
		CreatedAt:    time.Now(),
	}
	if err := u.orders.SaveOrder(ctx, order); err != nil {
		log.Printf("no se pudo guardar el pedido %s: %v", order.ID, err)
	}

	var eta string
	if s.DeliveryMode == entity.DeliveryShip {
		eta = fmt.Sprintf("Tu pedido será despachado en %d días.", constants.ShipETADays)
	} else {
		eta = fmt.Sprintf("Puedes recogerlo hoy mismo en %s.", constants.StoreAddress)
	}

	reply := fmt.Sprintf("✅ ¡Gracias por tu compra! Pedido %s confirmado por %s. %s",
		shortOrderID(order.ID), formatCOP(order.Total), eta)
	s.Reset()
	return reply
}

func shortOrderID(id string) string {
	if len(id) > 8 {
		return "#" + id[:8]
	}
	return "#" + id
}

func joinWithY(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return fmt.Sprintf("%s y %s", joinComma(items[:len(items)-1]), items[len(items)-1])
	}
}

func joinComma(items []string) string {
	out := ""
	for i, it := range items {
		if i > 0 {
			out += ", "
		}
		out += it
	}
	return out
}
