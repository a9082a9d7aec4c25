package statistics

import (
	"sort"
	"time"

	"Meeple/models"
	"Meeple/utils"
)

// All functions in this package are pure reads over the loaded collections;
// none of them mutate anything. Callers pass "now" explicitly so time-window
// aggregates stay deterministic.

// DefaultTopN is the ranking size used when the caller passes limit <= 0.
const DefaultTopN = 5

// DefaultMinRatedMatches is the qualification threshold for the rating top:
// games with fewer rated matches are excluded entirely, not scored as zero.
const DefaultMinRatedMatches = 3

// UncategorizedLabel buckets games without a category in the distribution.
const UncategorizedLabel = "Uncategorized"

// General is the dashboard headline block.
type General struct {
	TotalGames       int
	TotalPlayers     int
	TotalMatches     int
	TotalHours       int     // sum of match durations, rounded to hours
	TotalPrice       float64 // collection value
	AvgPrice         int     // rounded; 0 when the collection is empty
	LastMatchDate    string  // empty when no matches exist
	MatchesLastMonth int     // trailing 30 days from now, boundaries inclusive
}

// GeneralStats computes the headline aggregates.
func GeneralStats(games []models.Game, players []models.Player, matches []models.Match, now time.Time) General {
	stats := General{
		TotalGames:   len(games),
		TotalPlayers: len(players),
		TotalMatches: len(matches),
	}

	totalMinutes := 0
	for _, m := range matches {
		if m.Duration != nil {
			totalMinutes += *m.Duration
		}
	}
	stats.TotalHours = utils.RoundHalfUp(float64(totalMinutes) / 60)

	for _, g := range games {
		if g.Price != nil {
			stats.TotalPrice += *g.Price
		}
	}
	if len(games) > 0 {
		stats.AvgPrice = utils.RoundHalfUp(stats.TotalPrice / float64(len(games)))
	}

	var lastDate time.Time
	for _, m := range matches {
		d, err := utils.ParseISODate(m.Date)
		if err != nil {
			continue
		}
		if d.After(lastDate) {
			lastDate = d
			stats.LastMatchDate = m.Date
		}
	}

	monthAgo := now.Add(-30 * 24 * time.Hour)
	for _, m := range matches {
		d, err := utils.ParseISODate(m.Date)
		if err != nil {
			continue
		}
		if !d.Before(monthAgo) && !d.After(now) {
			stats.MatchesLastMonth++
		}
	}
	return stats
}

// GamePlayCount ranks a game by how many matches reference it.
type GamePlayCount struct {
	Game    models.Game
	Matches int
}

// TopGamesByMatches returns the most played games, zero-count games excluded.
func TopGamesByMatches(games []models.Game, matches []models.Match, limit int) []GamePlayCount {
	if limit <= 0 {
		limit = DefaultTopN
	}
	counts := make([]GamePlayCount, 0, len(games))
	for _, g := range games {
		n := 0
		for _, m := range matches {
			if m.GameID == g.ID {
				n++
			}
		}
		if n > 0 {
			counts = append(counts, GamePlayCount{Game: g, Matches: n})
		}
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Matches > counts[j].Matches
	})
	if len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
}

// GameRating ranks a game by the average rating of its rated matches.
type GameRating struct {
	Game         models.Game
	AvgRating    float64
	RatedMatches int
}

// TopGamesByRating averages match ratings per game. A game qualifies only with
// at least minMatches rated matches; below the threshold it is excluded even
// if its single rating is a 10.
func TopGamesByRating(games []models.Game, matches []models.Match, limit, minMatches int) []GameRating {
	if limit <= 0 {
		limit = DefaultTopN
	}
	if minMatches <= 0 {
		minMatches = DefaultMinRatedMatches
	}
	ratings := make([]GameRating, 0, len(games))
	for _, g := range games {
		total, n := 0, 0
		for _, m := range matches {
			if m.GameID == g.ID && m.Rating != nil {
				total += *m.Rating
				n++
			}
		}
		if n < minMatches {
			continue
		}
		ratings = append(ratings, GameRating{
			Game:         g,
			AvgRating:    float64(total) / float64(n),
			RatedMatches: n,
		})
	}
	sort.SliceStable(ratings, func(i, j int) bool {
		return ratings[i].AvgRating > ratings[j].AvgRating
	})
	if len(ratings) > limit {
		ratings = ratings[:limit]
	}
	return ratings
}

// CategoryCount is one bar of the category distribution.
type CategoryCount struct {
	Name       string
	Count      int
	Percentage int
}

// CategoryDistribution counts games per category, bucketing ungrouped games
// under UncategorizedLabel, sorted descending by count.
func CategoryDistribution(games []models.Game) []CategoryCount {
	total := len(games)
	if total == 0 {
		return nil
	}
	counts := make(map[string]int)
	var order []string
	for _, g := range games {
		name := g.Category
		if name == "" {
			name = UncategorizedLabel
		}
		if _, ok := counts[name]; !ok {
			order = append(order, name)
		}
		counts[name]++
	}
	out := make([]CategoryCount, 0, len(order))
	for _, name := range order {
		out = append(out, CategoryCount{
			Name:       name,
			Count:      counts[name],
			Percentage: utils.RoundHalfUp(float64(counts[name]) / float64(total) * 100),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// PriceExtremes returns the single most expensive and cheapest games among
// those with a positive price, ties broken by storage order. Both are nil
// when no game has a price.
func PriceExtremes(games []models.Game) (mostExpensive, cheapest *models.Game) {
	for i := range games {
		g := &games[i]
		if g.Price == nil || *g.Price <= 0 {
			continue
		}
		if mostExpensive == nil || *g.Price > *mostExpensive.Price {
			mostExpensive = g
		}
		if cheapest == nil || *g.Price < *cheapest.Price {
			cheapest = g
		}
	}
	return mostExpensive, cheapest
}

// PlayerWins ranks a player by explicit stored wins.
type PlayerWins struct {
	Player       models.Player
	Wins         int
	TotalMatches int
	Winrate      int // percent, rounded; 0 without participations
}

// TopPlayersByWins counts stored isWinner flags per player. Zero-win players
// are excluded from the ranking.
func TopPlayersByWins(players []models.Player, matches []models.Match, limit int) []PlayerWins {
	if limit <= 0 {
		limit = DefaultTopN
	}
	stats := make([]PlayerWins, 0, len(players))
	for _, p := range players {
		wins, played := 0, 0
		for _, m := range matches {
			r := m.ResultOf(p.ID)
			if r == nil {
				continue
			}
			played++
			if r.IsWinner {
				wins++
			}
		}
		if wins == 0 {
			continue
		}
		stats = append(stats, PlayerWins{
			Player:       p,
			Wins:         wins,
			TotalMatches: played,
			Winrate:      utils.RoundHalfUp(float64(wins) / float64(played) * 100),
		})
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Wins > stats[j].Wins
	})
	if len(stats) > limit {
		stats = stats[:limit]
	}
	return stats
}

// PlayerActivity pairs a player with their participation count.
type PlayerActivity struct {
	Player  models.Player
	Matches int
}

// MostActivePlayer returns the player with the most participations, or nil
// when nobody has played anything. Ties go to storage order.
func MostActivePlayer(players []models.Player, matches []models.Match) *PlayerActivity {
	var best *PlayerActivity
	for _, p := range players {
		n := 0
		for _, m := range matches {
			if m.HasParticipant(p.ID) {
				n++
			}
		}
		if best == nil || n > best.Matches {
			best = &PlayerActivity{Player: p, Matches: n}
		}
	}
	if best == nil || best.Matches == 0 {
		return nil
	}
	return best
}

// MonthCount is one bucket of the matches-by-month series.
type MonthCount struct {
	Month time.Month
	Count int
}

// MatchesByMonth buckets match counts into the 12 months of the current
// calendar year by local date. Empty months are present with count 0.
func MatchesByMonth(matches []models.Match, now time.Time) []MonthCount {
	year := now.Year()
	out := make([]MonthCount, 12)
	for i := range out {
		out[i].Month = time.Month(i + 1)
	}
	for _, m := range matches {
		d, err := utils.ParseISODate(m.Date)
		if err != nil {
			continue
		}
		if d.Year() == year {
			out[d.Month()-1].Count++
		}
	}
	return out
}

// AverageDuration is the rounded mean duration over matches with a defined
// positive duration, 0 when none qualify.
func AverageDuration(matches []models.Match) int {
	total, n := 0, 0
	for _, m := range matches {
		if m.Duration != nil && *m.Duration > 0 {
			total += *m.Duration
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return utils.RoundHalfUp(float64(total) / float64(n))
}
