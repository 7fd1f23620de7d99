// Package leaguesite pulls the season schedule from the league office's
// site. Games are identified by the site's stable game id so re-imports
// update in place instead of duplicating.
package leaguesite

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/chattanoogahockey/scorekeeper-sub003/model"
)

const LeagueSiteURL = "https://chattanoogaroller.example.com"

type Client interface {
	LoadSchedule() ([]model.Game, error)
}

type client struct {
	url        string
	httpClient *http.Client
}

func New() (Client, error) {
	return NewForURL(LeagueSiteURL)
}

// NewForURL exists so tests can point the client at a fake server.
func NewForURL(url string) (Client, error) {
	c := &client{
		url: url,
		httpClient: &http.Client{
			Timeout: 1 * time.Minute,
		},
	}
	return c, nil
}

type siteGame struct {
	GameID   string `json:"game_id"`
	Home     string `json:"home"`
	Away     string `json:"away"`
	Division string `json:"division"`
	// e.g. "2026-03-14T20:30:00-04:00"
	StartTime string `json:"start_time"`
}

func (c *client) LoadSchedule() ([]model.Game, error) {
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/api/schedule", c.url), nil)
	if err != nil {
		return nil, fmt.Errorf("error creating http request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var parsed []siteGame
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("error parsing schedule from league site: %w", err)
	}

	// Convert into model.Games, skipping rows the site half-filled.
	result := make([]model.Game, 0, len(parsed))
	for _, sg := range parsed {
		if sg.GameID == "" || sg.Home == "" || sg.Away == "" {
			continue
		}
		start, err := time.Parse(time.RFC3339, sg.StartTime)
		if err != nil {
			return nil, fmt.Errorf("error parsing start time %q for game %s: %w", sg.StartTime, sg.GameID, err)
		}
		result = append(result, model.Game{
			ID:          sg.GameID,
			HomeTeam:    sg.Home,
			AwayTeam:    sg.Away,
			Division:    sg.Division,
			ScheduledAt: start,
			Status:      model.StatusScheduled,
		})
	}

	return result, nil
}
