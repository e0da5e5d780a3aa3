package usecase

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/yourusername/ferreteria-chat-bot/internal/domain/constants"
	"github.com/yourusername/ferreteria-chat-bot/internal/domain/entity"
)

// copPrinter formatea números con separador de miles en español: 30000 -> "30.000"
var copPrinter = message.NewPrinter(language.Spanish)

func formatCOP(amount int) string {
	return copPrinter.Sprintf("$%d COP", amount)
}

// groupCart agrupa el carrito (una entrada por unidad) en líneas por
// producto, conservando el orden de primera aparición
func groupCart(cart []entity.Product) []entity.OrderLine {
	index := make(map[string]int)
	var lines []entity.OrderLine
	for _, p := range cart {
		if i, ok := index[p.Name]; ok {
			lines[i].Quantity++
			continue
		}
		index[p.Name] = len(lines)
		lines = append(lines, entity.OrderLine{Product: p, Quantity: 1})
	}
	return lines
}

// renderCart resumen del carrito: líneas agrupadas, subtotal y, según el
// modo de entrega, recargo y total o la pregunta por el modo. Es pura:
// renderizar dos veces sin mutar la sesión da exactamente el mismo texto.
func renderCart(s *entity.Session) string {
	if len(s.Cart) == 0 {
		return "🛒 Tu carrito está vacío."
	}

	var b strings.Builder
	b.WriteString("🛒 Tu carrito:\n")
	for _, line := range groupCart(s.Cart) {
		fmt.Fprintf(&b, "- %s x%d = %s\n", line.Product.Name, line.Quantity, formatCOP(line.Product.Price*line.Quantity))
	}
	fmt.Fprintf(&b, "Subtotal: %s", formatCOP(s.Subtotal()))

	switch s.DeliveryMode {
	case entity.DeliveryShip:
		fmt.Fprintf(&b, "\nEnvío a domicilio: %s", formatCOP(constants.ShippingFee))
		fmt.Fprintf(&b, "\nTotal: %s", formatCOP(s.Total(constants.ShippingFee)))
	case entity.DeliveryPickup:
		fmt.Fprintf(&b, "\nTotal: %s (recoges en tienda, sin costo de envío)", formatCOP(s.Subtotal()))
	default:
		fmt.Fprintf(&b, "\n¿Prefieres envío a domicilio (%s) o recoger gratis en tienda?", formatCOP(constants.ShippingFee))
	}
	return b.String()
}

// renderCategoryPage página de hasta CategoryPageSize productos, con índice
// corrido entre páginas. El aviso final cambia cuando ya no quedan más.
func renderCategoryPage(category string, products []entity.Product, page int) string {
	start := page * constants.CategoryPageSize
	end := start + constants.CategoryPageSize
	if end > len(products) {
		end = len(products)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Productos de %s:\n", category)
	for i, p := range products[start:end] {
		fmt.Fprintf(&b, "%d. %s: %s. %s\n", start+i+1, p.Name, formatCOP(p.Price), p.Description)
	}
	if end < len(products) {
		fmt.Fprintf(&b, "¿Quieres ver más? Quedan %d productos, escribe 'sí' para verlos.", len(products)-end)
	} else {
		b.WriteString("Esos son todos los productos de esta categoría.")
	}
	return b.String()
}

// renderSuggestions "También te puede interesar..." con hasta max productos
func renderSuggestions(suggestions []entity.Product, max int) string {
	if len(suggestions) == 0 {
		return ""
	}
	if len(suggestions) > max {
		suggestions = suggestions[:max]
	}
	names := make([]string, len(suggestions))
	for i, p := range suggestions {
		names[i] = fmt.Sprintf("%s (%s)", p.Name, formatCOP(p.Price))
	}
	return "También te puede interesar: " + strings.Join(names, ", ") + "."
}

func greetingText(categories []string) string {
	if len(categories) == 0 {
		return "¡Hola! ¿Qué estás buscando hoy?"
	}
	return fmt.Sprintf("¡Hola! ¿Qué estás buscando hoy? Tenemos %s y más.", strings.Join(categories, ", "))
}

func helpText(categories []string) string {
	return strings.Join([]string{
		"Puedo ayudarte con tu compra en la ferretería. Prueba por ejemplo:",
		"- \"precio del martillo\" para consultar un precio",
		"- \"quiero 2 brochas\" para agregar al carrito",
		"- \"quita el martillo\" para sacar algo del carrito",
		"- \"ver carrito\", \"total\" y \"finalizar\" para cerrar tu pedido",
		fmt.Sprintf("- o escribe una categoría: %s", strings.Join(categories, ", ")),
	}, "\n")
}

func fallbackText() string {
	return "No entendí tu solicitud. ¿Podrías repetirlo? Prueba por ejemplo: \"precio del martillo\", \"quiero 2 brochas\" o \"ver carrito\"."
}
