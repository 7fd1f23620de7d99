package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"

	"github.com/chattanoogahockey/scorekeeper-sub003/controller"
	"github.com/chattanoogahockey/scorekeeper-sub003/db"
	"github.com/chattanoogahockey/scorekeeper-sub003/platforms/announcer"
	"github.com/chattanoogahockey/scorekeeper-sub003/platforms/leaguesite"
	"github.com/chattanoogahockey/scorekeeper-sub003/web"
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}
	connString := os.Getenv("POSTGRES_CONN_STR")

	portNum := 3000 // 3000 is the default
	port := os.Getenv("PORT")
	if port != "" {
		portNum, err = strconv.Atoi(port)
		if err != nil {
			log.Fatalf("error parsing port number: %v", err)
		}
	}

	clock := clock.New()
	db, err := db.New(context.Background(), connString, clock)
	if err != nil {
		log.Fatalf("cannot connect to DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		log.Fatalf("error migrating DB: %v", err)
	}

	// The announcer is optional; without an API key goals are recorded
	// silently.
	var announcerClient announcer.Client
	if key := os.Getenv("ANNOUNCER_API_KEY"); key != "" {
		announcerClient, err = announcer.New(key)
		if err != nil {
			log.Fatalf("error creating announcer client: %v", err)
		}
	} else {
		log.Printf("ANNOUNCER_API_KEY not set, goal announcements disabled")
	}

	siteURL := os.Getenv("LEAGUE_SITE_URL")
	if siteURL == "" {
		siteURL = leaguesite.LeagueSiteURL
	}
	siteClient, err := leaguesite.NewForURL(siteURL)
	if err != nil {
		log.Fatalf("error creating league site client: %v", err)
	}

	hub := web.NewHub()

	ctrl, err := controller.New(clock, db, announcerClient, siteClient, hub)
	if err != nil {
		log.Fatalf("error creating a new controller: %v", err)
	}

	server, err := web.NewServer(portNum, ctrl, hub)
	if err != nil {
		log.Fatalf("error creating new web server: %v", err)
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	intChannel := make(chan os.Signal, 2)
	signal.Notify(intChannel, os.Interrupt)
	go func() {
		<-intChannel
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			log.Printf("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	// Fan recorded events out to live viewers.
	wg.Add(1)
	go hub.Run(shutdown, wg)

	// Setup a job that re-imports the league schedule every 24-hours.
	wg.Add(1)
	go ctrl.RunPeriodicScheduleSync(24*time.Hour, shutdown, wg)

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	log.Printf("server shutdown")
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
