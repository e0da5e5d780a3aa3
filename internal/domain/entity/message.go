package entity

import "time"

// Message un turno de la conversación: lo que escribió el cliente y lo que respondió el bot
type Message struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Text      string    `json:"texto"`
	Response  string    `json:"respuesta"`
	Intent    string    `json:"intencion,omitempty"` // etiqueta de intención clasificada, vacía si no hubo match
	Timestamp time.Time `json:"timestamp"`
}
