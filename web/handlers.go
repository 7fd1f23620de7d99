package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"

	"github.com/chattanoogahockey/scorekeeper-sub003/controller"
	"github.com/chattanoogahockey/scorekeeper-sub003/db"
	"github.com/chattanoogahockey/scorekeeper-sub003/model"
)

type errorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// renderError maps controller and store errors onto status codes. A
// validation failure names the offending field; a store outage tells the
// client to retry.
func renderError(render *render.Render, w http.ResponseWriter, err error) {
	var vErr *controller.ValidationError
	switch {
	case errors.As(err, &vErr):
		render.JSON(w, http.StatusBadRequest, errorBody{Error: vErr.Error(), Field: vErr.Field})
	case errors.Is(err, db.ErrGameNotFound):
		render.JSON(w, http.StatusNotFound, errorBody{Error: "game not found"})
	case errors.Is(err, db.ErrStoreUnavailable):
		w.Header().Set("Retry-After", "5")
		render.JSON(w, http.StatusServiceUnavailable, errorBody{Error: "store unavailable, retry shortly"})
	default:
		render.JSON(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
	}
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &controller.ValidationError{Field: "body", Reason: fmt.Sprintf("malformed json: %v", err)}
	}
	return nil
}

func rootHandler(render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.Text(w, http.StatusOK, "rink scorekeeper is up")
	}
}

func listGamesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		games, err := ctrl.ListGames(r.Context(), r.URL.Query().Get("division"))
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, games)
	}
}

func addGameHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			ID          string    `json:"id"`
			HomeTeam    string    `json:"homeTeam"`
			AwayTeam    string    `json:"awayTeam"`
			Division    string    `json:"division"`
			ScheduledAt time.Time `json:"scheduledAt"`
		}
		if err := decodeBody(r, &in); err != nil {
			renderError(render, w, err)
			return
		}

		g, err := ctrl.AddGame(r.Context(), &model.Game{
			ID:          in.ID,
			HomeTeam:    in.HomeTeam,
			AwayTeam:    in.AwayTeam,
			Division:    in.Division,
			ScheduledAt: in.ScheduledAt,
		})
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, g)
	}
}

func gameSummaryHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := ctrl.GameSummary(r.Context(), chi.URLParam(r, "gameID"))
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, summary)
	}
}

func updateGameStatusHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Status string `json:"status"`
		}
		if err := decodeBody(r, &in); err != nil {
			renderError(render, w, err)
			return
		}

		g, err := ctrl.UpdateGameStatus(r.Context(), chi.URLParam(r, "gameID"), in.Status)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, g)
	}
}

func listGoalsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		goals, err := ctrl.ListGoals(r.Context(), chi.URLParam(r, "gameID"))
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, goals)
	}
}

func recordGoalHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in controller.GoalInput
		if err := decodeBody(r, &in); err != nil {
			renderError(render, w, err)
			return
		}
		in.GameID = chi.URLParam(r, "gameID")

		e, err := ctrl.RecordGoal(r.Context(), in)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, e)
	}
}

func listPenaltiesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		penalties, err := ctrl.ListPenalties(r.Context(), chi.URLParam(r, "gameID"))
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, penalties)
	}
}

func recordPenaltyHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in controller.PenaltyInput
		if err := decodeBody(r, &in); err != nil {
			renderError(render, w, err)
			return
		}
		in.GameID = chi.URLParam(r, "gameID")

		e, err := ctrl.RecordPenalty(r.Context(), in)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, e)
	}
}

func recordShotHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in controller.ShotInput
		if err := decodeBody(r, &in); err != nil {
			renderError(render, w, err)
			return
		}
		in.GameID = chi.URLParam(r, "gameID")

		e, err := ctrl.RecordShot(r.Context(), in)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, e)
	}
}

func recordAttendanceHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in controller.AttendanceInput
		if err := decodeBody(r, &in); err != nil {
			renderError(render, w, err)
			return
		}
		in.GameID = chi.URLParam(r, "gameID")

		a, err := ctrl.RecordAttendance(r.Context(), in)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, a)
	}
}

func playerGameStatsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		line, err := ctrl.PlayerGameLine(r.Context(), chi.URLParam(r, "gameID"), chi.URLParam(r, "player"))
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, line)
	}
}

func playerSeasonStatsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		line, err := ctrl.PlayerSeasonLine(r.Context(), chi.URLParam(r, "player"))
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, line)
	}
}

func syncScheduleHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := ctrl.SyncSchedule(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]int{"gamesSynced": count})
	}
}
