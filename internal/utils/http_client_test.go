package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient()
	client2 := NewHTTPClient()

	if client1.Client == nil || client2.Client == nil {
		t.Fatal("expected embedded *resty.Client to be non-nil")
	}
	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}

func TestNewHTTPClient_SendsUserAgent(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	if _, err := NewHTTPClient().R().Get(srv.URL); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if got != UserAgent {
		t.Errorf("expected User-Agent %q, got %q", UserAgent, got)
	}
}
