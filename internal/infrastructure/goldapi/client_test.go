package goldapi

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetch24K_PerGramPrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-access-token") != "key-1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"metal":"XAU","currency":"INR","price_gram_24k":7150.5}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key-1")
	got, err := c.Fetch24K(context.Background())
	if err != nil {
		t.Fatalf("Fetch24K: %v", err)
	}
	if got != 7150.5 {
		t.Fatalf("want 7150.5, got %v", got)
	}
}

func TestFetch24K_ConvertsOuncePrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"metal":"XAU","currency":"INR","price":311035}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key-1")
	got, err := c.Fetch24K(context.Background())
	if err != nil {
		t.Fatalf("Fetch24K: %v", err)
	}
	if math.Abs(got-10000) > 1e-6 {
		t.Fatalf("want 10000 per gram, got %v", got)
	}
}

func TestFetch24K_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error":"quota exceeded"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key-1")
	if _, err := c.Fetch24K(context.Background()); err == nil {
		t.Fatal("expected error from API error payload")
	}
}

func TestFetch24K_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key-1")
	if _, err := c.Fetch24K(context.Background()); err == nil {
		t.Fatal("expected error on non-200 status")
	}
}
