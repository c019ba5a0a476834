package completion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mindconnect/internal/domain"
)

func newServer(t *testing.T, status int, body string) (*httptest.Server, *map[string]any) {
	t.Helper()
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &got
}

func TestOpenAIProviderComplete(t *testing.T) {
	srv, got := newServer(t, http.StatusOK, `{"id":"x","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"  You are not alone.  "},"finish_reason":"stop"}]}`)
	p := NewOpenAIProvider(Options{APIKey: "k", BaseURL: srv.URL, Temperature: 0.7, MaxTokens: 500})

	text, err := p.Complete(context.Background(), "be kind", "hello")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if text != "You are not alone." {
		t.Errorf("text = %q", text)
	}
	req := *got
	if req["model"] != "gpt-3.5-turbo" {
		t.Errorf("model = %v", req["model"])
	}
	if req["max_tokens"] != float64(500) {
		t.Errorf("max_tokens = %v", req["max_tokens"])
	}
	msgs, _ := req["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("messages = %v", req["messages"])
	}
}

func TestOpenAIProviderErrorsAreUpstream(t *testing.T) {
	srv, _ := newServer(t, http.StatusInternalServerError, `{"error":{"message":"boom","type":"server_error"}}`)
	p := NewOpenAIProvider(Options{APIKey: "k", BaseURL: srv.URL, MaxTokens: 10})
	_, err := p.Complete(context.Background(), "sys", "hi")
	if domain.KindOf(err) != domain.KindUpstream {
		t.Fatalf("kind = %v, err = %v", domain.KindOf(err), err)
	}

	empty, _ := newServer(t, http.StatusOK, `{"choices":[]}`)
	p = NewOpenAIProvider(Options{APIKey: "k", BaseURL: empty.URL, MaxTokens: 10})
	if _, err := p.Complete(context.Background(), "sys", "hi"); domain.KindOf(err) != domain.KindUpstream {
		t.Fatalf("empty choices: %v", err)
	}
}
