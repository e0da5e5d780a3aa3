package storage

import (
	"context"
	"fmt"
	"testing"

	"github.com/yourusername/ferreteria-chat-bot/internal/domain/entity"
)

func TestChatHistoryPerSession(t *testing.T) {
	repo := NewMemoryChatRepository(10)
	ctx := context.Background()

	_ = repo.SaveMessage(ctx, entity.Message{ID: "1", SessionID: "a", Text: "hola"})
	_ = repo.SaveMessage(ctx, entity.Message{ID: "2", SessionID: "b", Text: "buenas"})

	got, err := repo.GetHistory(ctx, "a", 0)
	if err != nil {
		t.Fatalf("GetHistory falló: %v", err)
	}
	if len(got) != 1 || got[0].Text != "hola" {
		t.Errorf("historial de 'a' = %v", got)
	}
}

func TestChatHistoryCap(t *testing.T) {
	repo := NewMemoryChatRepository(3)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_ = repo.SaveMessage(ctx, entity.Message{ID: fmt.Sprint(i), SessionID: "a"})
	}

	got, _ := repo.GetHistory(ctx, "a", 0)
	if len(got) != 3 {
		t.Fatalf("historial con %d mensajes, el tope es 3", len(got))
	}
	// quedan los más recientes
	if got[0].ID != "2" || got[2].ID != "4" {
		t.Errorf("se descartaron los mensajes equivocados: %v", got)
	}
}

func TestClearHistory(t *testing.T) {
	repo := NewMemoryChatRepository(10)
	ctx := context.Background()

	_ = repo.SaveMessage(ctx, entity.Message{ID: "1", SessionID: "a"})
	_ = repo.ClearHistory(ctx, "a")

	got, _ := repo.GetHistory(ctx, "a", 0)
	if len(got) != 0 {
		t.Errorf("el historial debería quedar vacío, llegó %v", got)
	}
}
