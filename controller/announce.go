package controller

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/chattanoogahockey/scorekeeper-sub003/model"
	"github.com/chattanoogahockey/scorekeeper-sub003/platforms/announcer"
)

const announceTimeout = 15 * time.Second

// announceGoal hands the recorded goal to the announcer provider in the
// background. The recording is already committed; a failed announcement is
// logged and dropped, never surfaced to the scorekeeper.
func (c *controller) announceGoal(g *model.Game, e *model.GoalEvent) {
	if c.announcer == nil {
		return
	}

	homeScore, awayScore := e.TeamGoalsFor, e.TeamGoalsAgainst
	if !strings.EqualFold(e.Team, g.HomeTeam) {
		homeScore, awayScore = e.TeamGoalsAgainst, e.TeamGoalsFor
	}

	var assists []string
	if e.Assist != "" {
		assists = append(assists, e.Assist)
	}
	if e.SecondAssist != "" {
		assists = append(assists, e.SecondAssist)
	}

	ectx := announcer.EventContext{
		Kind:      announcer.KindGoal,
		GameID:    g.ID,
		Player:    e.Scorer,
		Team:      e.Team,
		Opponent:  g.Opponent(e.Team),
		Period:    model.PeriodLabel(e.Period),
		Clock:     e.Clock.String(),
		Assists:   assists,
		HomeTeam:  g.HomeTeam,
		AwayTeam:  g.AwayTeam,
		HomeScore: homeScore,
		AwayScore: awayScore,
		Breakaway: e.Breakaway,
	}

	go c.announce(ectx)
}

func (c *controller) announcePenalty(g *model.Game, e *model.PenaltyEvent) {
	if c.announcer == nil {
		return
	}

	ectx := announcer.EventContext{
		Kind:           announcer.KindPenalty,
		GameID:         g.ID,
		Player:         e.Player,
		Team:           e.Team,
		Opponent:       g.Opponent(e.Team),
		Period:         model.PeriodLabel(e.Period),
		Clock:          e.Clock.String(),
		HomeTeam:       g.HomeTeam,
		AwayTeam:       g.AwayTeam,
		HomeScore:      g.HomeScore,
		AwayScore:      g.AwayScore,
		PenaltyType:    e.PenaltyType,
		PenaltyMinutes: e.Minutes,
	}

	go c.announce(ectx)
}

func (c *controller) announce(ectx announcer.EventContext) {
	ctx, cancel := context.WithTimeout(context.Background(), announceTimeout)
	defer cancel()

	commentary, err := c.announcer.GenerateCommentary(ctx, ectx)
	if err != nil {
		log.Printf("error generating commentary for game %s: %v", ectx.GameID, err)
		return
	}

	clip, err := c.announcer.Synthesize(ctx, commentary.Text, commentary.Voice)
	if err != nil {
		log.Printf("error synthesizing commentary for game %s: %v", ectx.GameID, err)
		return
	}

	log.Printf("announced %s in game %s: %s", ectx.Kind, ectx.GameID, clip.URL)
}
