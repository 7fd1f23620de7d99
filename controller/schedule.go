package controller

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"
)

// SyncSchedule pulls the league-site schedule and upserts every game,
// returning the number of games written. Scores and statuses of existing
// games survive a re-import.
func (c *controller) SyncSchedule(ctx context.Context) (int, error) {
	start := time.Now()
	log.Printf("schedule sync starting at %v", start.Format(time.DateTime))

	games, err := c.site.LoadSchedule()
	if err != nil {
		return 0, fmt.Errorf("error loading schedule: %w", err)
	}

	count := 0
	for _, g := range games {
		if _, err := c.AddGame(ctx, &g); err != nil {
			return count, fmt.Errorf("error saving game (%s vs %s): %w", g.HomeTeam, g.AwayTeam, err)
		}
		count++
	}

	log.Printf("schedule sync finished, %d games, took %v", count, time.Since(start))
	return count, nil
}

func (c *controller) RunPeriodicScheduleSync(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	ticker := time.NewTicker(frequency)
	defer wg.Done()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if _, err := c.SyncSchedule(ctx); err != nil {
				log.Printf("%v", err)
			}
		}
	}
}
