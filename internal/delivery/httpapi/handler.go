// Package httpapi expone la conversación por HTTP con el mismo contrato
// del servidor original: POST /api/chat con {"mensaje": ...} responde
// {"respuesta": ...}.
package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/ferreteria-chat-bot/internal/domain/constants"
	"github.com/yourusername/ferreteria-chat-bot/internal/usecase"
)

// Handler handlers HTTP del chat
type Handler struct {
	chatUseCase usecase.ChatUseCase
}

// NewHandler crea el handler sobre el caso de uso del chat
func NewHandler(chatUseCase usecase.ChatUseCase) *Handler {
	return &Handler{chatUseCase: chatUseCase}
}

// NewRouter arma el router gin con CORS y las rutas del API
func NewRouter(h *Handler, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(allowedOrigins) > 0 {
		corsCfg.AllowOrigins = allowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "X-Session-ID")
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	api := r.Group("/api")
	{
		api.POST("/chat", h.Chat)
		api.GET("/chat/history", h.History)
		api.DELETE("/chat/history", h.ClearHistory)
	}
	return r
}

type chatRequest struct {
	Mensaje string `json:"mensaje" binding:"required"`
}

type chatResponse struct {
	Respuesta string `json:"respuesta"`
}

// Chat procesa un mensaje del cliente
func (h *Handler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "falta el campo 'mensaje'"})
		return
	}

	reply, err := h.chatUseCase.ProcessMessage(c.Request.Context(), sessionID(c), req.Mensaje)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudo procesar el mensaje"})
		return
	}
	c.JSON(http.StatusOK, chatResponse{Respuesta: reply})
}

// History devuelve los últimos turnos de la sesión
func (h *Handler) History(c *gin.Context) {
	messages, err := h.chatUseCase.GetHistory(c.Request.Context(), sessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudo leer el historial"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensajes": messages})
}

// ClearHistory borra el historial de la sesión
func (h *Handler) ClearHistory(c *gin.Context) {
	if err := h.chatUseCase.ClearHistory(c.Request.Context(), sessionID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudo borrar el historial"})
		return
	}
	c.Status(http.StatusNoContent)
}

// sessionID identidad de la sesión desde el header; sin header, todos los
// clientes comparten la sesión por defecto, como el servidor original
func sessionID(c *gin.Context) string {
	if id := strings.TrimSpace(c.GetHeader("X-Session-ID")); id != "" {
		return id
	}
	return constants.DefaultSessionID
}
