package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/ferreteria-chat-bot/internal/domain/constants"
	"github.com/yourusername/ferreteria-chat-bot/internal/domain/entity"
	"github.com/yourusername/ferreteria-chat-bot/internal/infrastructure/storage"
	"github.com/yourusername/ferreteria-chat-bot/internal/usecase"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	catalogRepo := storage.NewMemoryCatalogRepository([]entity.Product{
		{Name: "Martillo", Category: "Herramientas", Price: 15000, Description: "Martillo de uña."},
		{Name: "Brocha", Category: "Pinturas", Price: 17000, Description: "Brocha de 3 pulgadas."},
	})
	uc := usecase.NewChatUseCase(
		catalogRepo,
		storage.NewMemorySessionRepository(),
		storage.NewMemoryChatRepository(constants.DefaultMaxContextSize),
		storage.NewMemoryOrderRepository(),
	)
	return NewRouter(NewHandler(uc), nil)
}

func postChat(t *testing.T, r *gin.Engine, session, mensaje string) *httptest.ResponseRecorder {
	t.Helper()
	body := strings.NewReader(`{"mensaje": ` + jsonString(mensaje) + `}`)
	req := httptest.NewRequest(http.MethodPost, "/api/chat", body)
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.Header.Set("X-Session-ID", session)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func decodeRespuesta(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var out struct {
		Respuesta string `json:"respuesta"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("respuesta no es JSON válido: %v (%s)", err, w.Body.String())
	}
	return out.Respuesta
}

func TestHealth(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "healthy") {
		t.Errorf("cuerpo: %s", w.Body.String())
	}
}

func TestChatEndpoint(t *testing.T) {
	r := newTestRouter()

	w := postChat(t, r, "", "hola")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, cuerpo: %s", w.Code, w.Body.String())
	}
	if reply := decodeRespuesta(t, w); !strings.Contains(reply, "Hola") {
		t.Errorf("respuesta: %q", reply)
	}
}

func TestChatRequiresMensaje(t *testing.T) {
	r := newTestRouter()

	for _, body := range []string{`{}`, `{"texto": "hola"}`, `no es json`} {
		req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("cuerpo %q: status = %d, se esperaba 400", body, w.Code)
		}
	}
}

// Cada X-Session-ID lleva su propio carrito
func TestSessionHeaderIsolatesCarts(t *testing.T) {
	r := newTestRouter()

	postChat(t, r, "cliente-a", "quiero 2 martillos")

	reply := decodeRespuesta(t, postChat(t, r, "cliente-a", "ver carrito"))
	if !strings.Contains(reply, "Martillo x2") {
		t.Errorf("la sesión a perdió su carrito: %q", reply)
	}

	reply = decodeRespuesta(t, postChat(t, r, "cliente-b", "ver carrito"))
	if !strings.Contains(reply, "vacío") {
		t.Errorf("la sesión b ve el carrito de a: %q", reply)
	}
}

func TestHistoryEndpoints(t *testing.T) {
	r := newTestRouter()

	postChat(t, r, "cliente-a", "hola")
	postChat(t, r, "cliente-a", "precio del martillo")

	req := httptest.NewRequest(http.MethodGet, "/api/chat/history", nil)
	req.Header.Set("X-Session-ID", "cliente-a")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var out struct {
		Mensajes []entity.Message `json:"mensajes"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("historial no es JSON válido: %v", err)
	}
	if len(out.Mensajes) != 2 {
		t.Fatalf("historial con %d mensajes, se esperaban 2", len(out.Mensajes))
	}
	if out.Mensajes[1].Intent != "priceQuery" {
		t.Errorf("intención del segundo turno: %s", out.Mensajes[1].Intent)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/chat/history", nil)
	req.Header.Set("X-Session-ID", "cliente-a")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("DELETE status = %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/chat/history", nil)
	req.Header.Set("X-Session-ID", "cliente-a")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	out.Mensajes = nil
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("historial no es JSON válido: %v", err)
	}
	if len(out.Mensajes) != 0 {
		t.Errorf("el historial debería quedar vacío: %v", out.Mensajes)
	}
}
