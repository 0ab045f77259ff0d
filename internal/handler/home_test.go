package handler_test

import (
	"net/http"
	"testing"
)

func TestHandleHome_Greeting(t *testing.T) {
	mux, _, _ := newTestMux(t)

	w := doRequest(t, mux, http.MethodGet, "/", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Body.String(); got != "Hello, World!" {
		t.Fatalf("expected greeting, got %q", got)
	}
}

func TestHandleHome_UnknownPathIsNotGreeted(t *testing.T) {
	mux, _, _ := newTestMux(t)

	// "GET /{$}" matches the root only; anything else is a 404.
	w := doRequest(t, mux, http.MethodGet, "/nope", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
