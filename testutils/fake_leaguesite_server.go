package testutils

import (
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

// FakeLeagueSiteServer serves a fixed three-game schedule mirroring the
// games in InsertTestGames.
type FakeLeagueSiteServer struct {
	s *httptest.Server
}

func NewFakeLeagueSiteServer() *FakeLeagueSiteServer {
	r := chi.NewRouter()
	r.Get("/api/schedule", scheduleHandler)

	return &FakeLeagueSiteServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeLeagueSiteServer) Close() {
	f.s.Close()
}

func (f *FakeLeagueSiteServer) URL() string {
	return f.s.URL
}

func scheduleHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`[
		{
			"game_id": "2026-03-14-gold-1",
			"home": "Bachstreet Boys",
			"away": "Whiskey Dekes",
			"division": "Gold",
			"start_time": "2026-03-14T20:30:00Z"
		},
		{
			"game_id": "2026-03-14-silver-1",
			"home": "Puck Norris",
			"away": "Mighty Drunks",
			"division": "Silver",
			"start_time": "2026-03-14T21:45:00Z"
		},
		{
			"game_id": "2026-03-15-bronze-1",
			"home": "Rink Rats",
			"away": "Benchwarmers",
			"division": "Bronze",
			"start_time": "2026-03-15T18:00:00Z"
		}
	]`))
}
