package extract

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestExtractSendsRequestAndDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if got := r.Header.Get("X-Extractor-Key"); got != "secret" {
			t.Errorf("X-Extractor-Key = %q, want %q", got, "secret")
		}

		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		if body["url"] != "https://example.com/story" {
			t.Errorf("url = %v", body["url"])
		}
		if body["include_candidates"] != true {
			t.Error("include_candidates should be true")
		}

		json.NewEncoder(w).Encode(Response{
			URL:     "https://example.com/story",
			Title:   "Story",
			Text:    "Extracted article text.",
			IsMulti: false,
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")
	resp, err := c.Extract(context.Background(), "https://example.com/story")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "Extracted article text." {
		t.Errorf("text = %q", resp.Text)
	}
}

func TestExtractNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	_, err := c.Extract(context.Background(), "https://example.com/story")
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestExtractOmitsKeyHeaderWhenUnset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Header["X-Extractor-Key"]; ok {
			t.Error("X-Extractor-Key should not be sent when empty")
		}
		json.NewEncoder(w).Encode(Response{})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	if _, err := c.Extract(context.Background(), "https://example.com/story"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
