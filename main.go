package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"

	"Meeple/config"
	"Meeple/services/backup"
	"Meeple/services/categories"
	"Meeple/services/games"
	"Meeple/services/matches"
	"Meeple/services/players"
	"Meeple/services/randomizer"
	"Meeple/services/statistics"
	"Meeple/services/store"
	"Meeple/services/wishlist"
)

// Tracker bundles the wired services. Embedding applications build one of
// these and call into the services directly.
type Tracker struct {
	Store      store.Store
	Categories *categories.Registry
	Games      *games.Service
	Players    *players.Service
	Matches    *matches.Service
	Wishlist   *wishlist.Service
	Randomizer *randomizer.Randomizer
	Backup     *backup.Service
}

// NewTracker opens the configured backend and wires every service on top of
// it, running the startup migrations on the way.
func NewTracker() (*Tracker, error) {
	s, err := config.OpenStore()
	if err != nil {
		return nil, err
	}

	registry := categories.New(s)
	if err := registry.InitializeDefaults(); err != nil {
		s.Close()
		return nil, err
	}
	if err := registry.FixLegacyTypo(); err != nil {
		// Migration failure is not fatal, the typo fix retries next start.
		log.Printf("Warning: category migration failed: %v", err)
	}

	g := games.New(s, registry)
	t := &Tracker{
		Store:      s,
		Categories: registry,
		Games:      g,
		Players:    players.New(s),
		Matches:    matches.New(s, g),
		Wishlist:   wishlist.New(s),
		Randomizer: randomizer.New(g),
		Backup:     backup.New(s),
	}
	return t, nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: no .env file found, using system environment")
	}

	tracker, err := NewTracker()
	if err != nil {
		log.Fatalf("Error starting tracker: %v", err)
	}
	defer tracker.Store.Close()

	if kb, err := store.SizeKB(tracker.Store); err == nil {
		log.Printf("Store size: %.1f KB", kb)
	}

	gameList, err := tracker.Games.List()
	if err != nil {
		log.Fatalf("Error loading games: %v", err)
	}
	playerList, err := tracker.Players.List()
	if err != nil {
		log.Fatalf("Error loading players: %v", err)
	}
	matchList, err := tracker.Matches.List()
	if err != nil {
		log.Fatalf("Error loading matches: %v", err)
	}

	stats := statistics.GeneralStats(gameList, playerList, matchList, time.Now())
	log.Printf("Collection: %d games, %d players, %d matches (%d in the last month)",
		stats.TotalGames, stats.TotalPlayers, stats.TotalMatches, stats.MatchesLastMonth)
	if stats.LastMatchDate != "" {
		log.Printf("Last match played on %s", stats.LastMatchDate)
	}
}
