package testutils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

// FakeAnnouncerServer stands in for the hosted commentary/TTS provider. It
// returns a deterministic line built from the event so tests can assert on
// the round trip.
type FakeAnnouncerServer struct {
	s *httptest.Server
}

func NewFakeAnnouncerServer() *FakeAnnouncerServer {
	r := chi.NewRouter()
	r.Route("/v1", func(r chi.Router) {
		r.Post("/commentary", commentaryHandler)
		r.Post("/speech", speechHandler)
	})

	return &FakeAnnouncerServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeAnnouncerServer) Close() {
	f.s.Close()
}

func (f *FakeAnnouncerServer) URL() string {
	return f.s.URL
}

func commentaryHandler(w http.ResponseWriter, r *http.Request) {
	var ectx struct {
		Kind   string `json:"kind"`
		Player string `json:"player"`
		Team   string `json:"team"`
	}
	if err := json.NewDecoder(r.Body).Decode(&ectx); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"text": "%s by %s of the %s!", "voice": "rinkside"}`,
		ectx.Kind, ectx.Player, ectx.Team)
}

func speechHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"audioUrl": "https://cdn.example.com/clips/fake.mp3", "durationMs": 4200}`))
}
