package nlu

import "strings"

// Classifier clasificador de intenciones por frases clave. Las categorías
// vienen del catálogo, no de la tabla fija, por eso se inyectan al crearlo.
type Classifier struct {
	categories []string // normalizadas sin tildes, en orden del catálogo
}

// NewClassifier crea el clasificador con las categorías conocidas del catálogo
func NewClassifier(categories []string) *Classifier {
	normalized := make([]string, 0, len(categories))
	for _, c := range categories {
		c = NormalizeStrict(c)
		if c != "" {
			normalized = append(normalized, c)
		}
	}
	return &Classifier{categories: normalized}
}

// Classify determina la intención del texto ya normalizado sin tildes.
// Prioridad: reglas primarias (ayuda, saludo, despedida, carrito, costo de
// envío), luego categoría del catálogo, luego el resto de la tabla. Si la
// intención es IntentCategory, category trae la categoría detectada.
// ok=false significa que nada hizo match y aplica la respuesta por defecto.
func (c *Classifier) Classify(text string) (intent Intent, category string, ok bool) {
	if intent, ok := matchRules(primaryRules, text); ok {
		return intent, "", true
	}
	if cat, ok := c.DetectCategory(text); ok {
		return IntentCategory, cat, true
	}
	if intent, ok := matchRules(secondaryRules, text); ok {
		return intent, "", true
	}
	return "", "", false
}

// DetectCategory busca una categoría conocida mencionada en el texto
func (c *Classifier) DetectCategory(text string) (string, bool) {
	for _, cat := range c.categories {
		if strings.Contains(text, cat) {
			return cat, true
		}
	}
	return "", false
}

// MatchesIntent verifica una sola intención contra sus disparadores.
// Lo usa la máquina de diálogo cuando el estado espera una respuesta
// concreta (elegir modo de entrega) y debe ignorar la prioridad normal.
func (c *Classifier) MatchesIntent(text string, intent Intent) bool {
	for _, r := range primaryRules {
		if r.intent == intent {
			return matchTriggers(r.triggers, text)
		}
	}
	for _, r := range secondaryRules {
		if r.intent == intent {
			return matchTriggers(r.triggers, text)
		}
	}
	return false
}

// IsAffirmative decide si el texto es un "sí, muéstrame más" (paginación).
// Match por token completo.
func (c *Classifier) IsAffirmative(text string) bool {
	if strings.Contains(text, "ver mas") || strings.Contains(text, "muestrame mas") {
		return true
	}
	for _, tok := range strings.Fields(text) {
		tok = strings.Trim(tok, ".,;:!?¡¿")
		if _, ok := affirmativeTokens[tok]; ok {
			return true
		}
	}
	return false
}

func matchRules(rules []intentRule, text string) (Intent, bool) {
	for _, r := range rules {
		if matchTriggers(r.triggers, text) {
			return r.intent, true
		}
	}
	return "", false
}

func matchTriggers(triggers []string, text string) bool {
	for _, t := range triggers {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}
