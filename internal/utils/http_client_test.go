package utils

import (
	"testing"
	"time"
)

func TestNewHTTPClient_Configured(t *testing.T) {
	client := NewHTTPClient("http://localhost:8080", 5*time.Second)

	if client == nil || client.Client == nil {
		t.Fatal("expected non-nil *HTTPClient with an embedded resty client")
	}
	if client.BaseURL != "http://localhost:8080" {
		t.Errorf("unexpected base url %q", client.BaseURL)
	}
	if got := client.Header.Get("User-Agent"); got != UserAgent {
		t.Errorf("unexpected user agent %q", got)
	}
	if got := client.GetClient().Timeout; got != 5*time.Second {
		t.Errorf("unexpected timeout %v", got)
	}
}

func TestNewHTTPClient_NoTimeout(t *testing.T) {
	client := NewHTTPClient("http://localhost:8080", 0)

	if got := client.GetClient().Timeout; got != 0 {
		t.Errorf("expected no client timeout, got %v", got)
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	// два клиента не должны делить один resty.Client
	client1 := NewHTTPClient("http://a", 0)
	client2 := NewHTTPClient("http://b", 0)

	if client1.Client == client2.Client {
		t.Fatal("expected independent *resty.Client instances")
	}
}
