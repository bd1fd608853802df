package extract

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ppiankov/namescreen/internal/model"
)

func nerServer(t *testing.T, entities []map[string]interface{}) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req["text"] == "" {
			t.Error("expected non-empty text in request")
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"entities": entities})
	}))
}

func TestNERClient_NilOnEmptyEndpoint(t *testing.T) {
	if c := NewNERClient("", time.Second); c != nil {
		t.Error("expected nil client for empty endpoint")
	}
}

func TestNERClient_FiltersToPersons(t *testing.T) {
	server := nerServer(t, []map[string]interface{}{
		{"text": "John Smith", "label": "PERSON", "start": 0},
		{"text": "Acme Corp", "label": "ORG", "start": 25},
		{"text": "Maria Lopez", "label": "PER", "start": 40},
		{"text": "London", "label": "GPE", "start": 60},
	})
	defer server.Close()

	client := NewNERClient(server.URL, 5*time.Second)
	got, err := client.Recognize(context.Background(), "John Smith works at Acme Corp with Maria Lopez in London.")
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 person candidates, got %d", len(got))
	}
	if got[0].Text != "John Smith" || got[1].Text != "Maria Lopez" {
		t.Errorf("unexpected candidates: %+v", got)
	}
	if got[0].Method != model.MethodStructuredParser {
		t.Errorf("expected structured-parser method, got %s", got[0].Method)
	}
	if got[0].Position != 0 || got[1].Position != 40 {
		t.Errorf("positions not propagated: %+v", got)
	}
}

func TestNERClient_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewNERClient(server.URL, 5*time.Second)
	if _, err := client.Recognize(context.Background(), "some text"); err == nil {
		t.Error("expected error on 503 response")
	}
}

func TestNERStrategy_UnavailableWithoutClient(t *testing.T) {
	outcome := NewNERStrategy(nil).Extract(context.Background(), "John Smith was arrested.")
	if outcome.Status != StatusUnavailable {
		t.Errorf("expected unavailable status, got %v", outcome.Status)
	}
	if outcome.Err == nil {
		t.Error("expected an error describing the missing recognizer")
	}
}

func TestNERStrategy_UnavailableOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	server.Close() // connection refused

	client := NewNERClient(server.URL, time.Second)
	outcome := NewNERStrategy(client).Extract(context.Background(), "John Smith was arrested.")
	if outcome.Status != StatusUnavailable {
		t.Errorf("expected unavailable status, got %v", outcome.Status)
	}
}
