package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"sunsmart/models"

	"github.com/julienschmidt/httprouter"
)

type stubCompleter struct {
	reply  string
	err    error
	system string
	last   string
}

func (s *stubCompleter) Complete(_ context.Context, message string, _ []models.ChatMessage, system string) (string, error) {
	s.last = message
	s.system = system
	return s.reply, s.err
}

func relay(t *testing.T, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	router := httprouter.New()
	router.POST("/api/chat", Relay)

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest("POST", "/api/chat", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func replyText(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	return resp.Text
}

func TestRelayForwardsCompletion(t *testing.T) {
	stub := &stubCompleter{reply: "Our dish costs ₹850."}
	Provider = stub
	defer func() { Provider = nil }()

	rec := relay(t, map[string]string{"message": "dish price?"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := replyText(t, rec); got != "Our dish costs ₹850." {
		t.Errorf("unexpected text %q", got)
	}
	if stub.last != "dish price?" {
		t.Errorf("message not forwarded: %q", stub.last)
	}
	if stub.system != SystemInstruction {
		t.Error("default system instruction not applied")
	}
}

func TestRelayApologizesOnProviderError(t *testing.T) {
	Provider = &stubCompleter{err: errors.New("upstream 500")}
	defer func() { Provider = nil }()

	rec := relay(t, map[string]string{"message": "hello"})
	if rec.Code != http.StatusOK {
		t.Fatalf("provider failure must still be 200, got %d", rec.Code)
	}
	if got := replyText(t, rec); got != Apology {
		t.Errorf("expected apology, got %q", got)
	}
}

func TestRelayFallbackOnEmptyCompletion(t *testing.T) {
	Provider = &stubCompleter{reply: ""}
	defer func() { Provider = nil }()

	rec := relay(t, map[string]string{"message": "hello"})
	if got := replyText(t, rec); got != "I'm sorry, I couldn't process that request." {
		t.Errorf("expected fallback text, got %q", got)
	}
}

func TestRelayWithoutProvider(t *testing.T) {
	Provider = nil

	rec := relay(t, map[string]string{"message": "hello"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := replyText(t, rec); got != Apology {
		t.Errorf("expected apology, got %q", got)
	}
}

func TestRelayRequiresMessage(t *testing.T) {
	Provider = &stubCompleter{reply: "ignored"}
	defer func() { Provider = nil }()

	rec := relay(t, map[string]string{"message": ""})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty message, got %d", rec.Code)
	}
}

func TestRelayCustomSystemInstruction(t *testing.T) {
	stub := &stubCompleter{reply: "ok"}
	Provider = stub
	defer func() { Provider = nil }()

	relay(t, map[string]string{"message": "hi", "systemInstruction": "Be terse."})
	if stub.system != "Be terse." {
		t.Errorf("client system instruction not honored: %q", stub.system)
	}
}

func TestGeminiClientRequiresKey(t *testing.T) {
	client := NewGeminiClient("")
	_, err := client.Complete(context.Background(), "hi", nil, SystemInstruction)
	if err == nil {
		t.Fatal("expected error with empty API key")
	}
}
