package api

import (
	"time"

	"github.com/KirkDiggler/wordvibe/internal/hardmode"
	"github.com/KirkDiggler/wordvibe/internal/models"
	"github.com/KirkDiggler/wordvibe/internal/services/round"
	"github.com/samber/lo"
)

type startRoundRequest struct {
	PlayerID   string `json:"playerId" binding:"required"`
	PlayerName string `json:"playerName"`
	ChannelID  string `json:"channelId"`
	Locale     string `json:"locale"`
	Daily      bool   `json:"daily"`
	HardMode   bool   `json:"hardMode"`
	Replace    bool   `json:"replace"`
}

type submitGuessRequest struct {
	PlayerID string `json:"playerId" binding:"required"`
	Word     string `json:"word" binding:"required"`
}

type leaderboardQuery struct {
	Date   string `form:"date"`
	Locale string `form:"locale"`
	Limit  int    `form:"limit" binding:"min=0,max=100"`
}

type errorResponse struct {
	Error     string             `json:"error"`
	Message   string             `json:"message"`
	Violation *violationResponse `json:"violation,omitempty"`
}

type violationResponse struct {
	Kind     string `json:"kind"`
	Position int    `json:"position"`
	Letter   string `json:"letter"`
}

type vibeResponse struct {
	Score int    `json:"score"`
	Trend string `json:"trend"`
	Label string `json:"label"`
}

type guessResponse struct {
	Word    string   `json:"word"`
	Matches []string `json:"matches"`
	Correct bool     `json:"correct"`
}

// roundResponse never carries the solution while the round is in progress
type roundResponse struct {
	ID         string            `json:"id"`
	PlayerID   string            `json:"playerId"`
	Locale     string            `json:"locale"`
	Daily      bool              `json:"daily"`
	Date       string            `json:"date,omitempty"`
	HardMode   bool              `json:"hardMode"`
	Status     string            `json:"status"`
	CurrentRow int               `json:"currentRow"`
	Guesses    []guessResponse   `json:"guesses"`
	Keys       map[string]string `json:"keys"`
	Vibe       vibeResponse      `json:"vibe"`
	Solution   string            `json:"solution,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
}

type startRoundResponse struct {
	Round     roundResponse `json:"round"`
	Title     string        `json:"title"`
	Message   string        `json:"message"`
	Abandoned string        `json:"abandoned,omitempty"`
}

type submitGuessResponse struct {
	Round      roundResponse       `json:"round"`
	Row        int                 `json:"row"`
	Guess      guessResponse       `json:"guess"`
	Reveal     []vibeResponse      `json:"reveal"`
	IsWin      bool                `json:"isWin"`
	IsOver     bool                `json:"isOver"`
	Title      string              `json:"title,omitempty"`
	Message    string              `json:"message,omitempty"`
	Statistics *statisticsResponse `json:"statistics,omitempty"`
}

type abandonRoundResponse struct {
	Round      roundResponse       `json:"round"`
	Statistics *statisticsResponse `json:"statistics,omitempty"`
}

type statisticsResponse struct {
	GamesPlayed       int                    `json:"gamesPlayed"`
	GamesWon          int                    `json:"gamesWon"`
	WinPercentage     int                    `json:"winPercentage"`
	CurrentStreak     int                    `json:"currentStreak"`
	MaxStreak         int                    `json:"maxStreak"`
	GuessDistribution [models.MaxGuesses]int `json:"guessDistribution"`
	LastPlayedDate    string                 `json:"lastPlayedDate,omitempty"`
	LastCompletedDate string                 `json:"lastCompletedDate,omitempty"`
}

type leaderboardEntryResponse struct {
	Rank       int       `json:"rank"`
	PlayerID   string    `json:"playerId"`
	PlayerName string    `json:"playerName,omitempty"`
	GuessCount int       `json:"guessCount"`
	IsWin      bool      `json:"isWin"`
	FinishedAt time.Time `json:"finishedAt"`
}

type leaderboardResponse struct {
	Date    string                     `json:"date"`
	Locale  string                     `json:"locale"`
	Entries []leaderboardEntryResponse `json:"entries"`
}

func newVibeResponse(v models.VibeScore) vibeResponse {
	return vibeResponse{
		Score: v.Score,
		Trend: string(v.Trend),
		Label: v.Label,
	}
}

func newGuessResponse(g models.Guess) guessResponse {
	matches := lo.Map(g.Matches[:], func(s models.MatchStatus, _ int) string {
		return s.String()
	})
	return guessResponse{
		Word:    g.Word(),
		Matches: matches,
		Correct: g.IsCorrect,
	}
}

func newRoundResponse(r *models.Round, v models.VibeScore) roundResponse {
	out := roundResponse{
		ID:         r.ID,
		PlayerID:   r.PlayerID,
		Locale:     r.Solution.Locale,
		Daily:      r.Solution.IsDaily,
		Date:       r.Solution.Date,
		HardMode:   r.HardMode,
		Status:     string(r.Status),
		CurrentRow: r.CurrentRow,
		Guesses:    lo.Map(r.CompletedGuesses(), func(g models.Guess, _ int) guessResponse { return newGuessResponse(g) }),
		Keys:       make(map[string]string, len(r.KeyStatuses)),
		Vibe:       newVibeResponse(v),
		CreatedAt:  r.CreatedAt,
	}
	for letter, status := range r.KeyStatuses {
		out.Keys[letter] = status.String()
	}
	if r.Status.IsOver() {
		out.Solution = r.Solution.Word
	}
	return out
}

func newStatisticsResponse(s models.GameStatistics) *statisticsResponse {
	return &statisticsResponse{
		GamesPlayed:       s.GamesPlayed,
		GamesWon:          s.GamesWon,
		WinPercentage:     s.WinPercentage(),
		CurrentStreak:     s.CurrentStreak,
		MaxStreak:         s.MaxStreak,
		GuessDistribution: s.GuessDistribution,
		LastPlayedDate:    s.LastPlayedDate,
		LastCompletedDate: s.LastCompletedDate,
	}
}

func newSubmitGuessResponse(out *round.SubmitGuessOutput) submitGuessResponse {
	resp := submitGuessResponse{
		Round:  newRoundResponse(out.Round, out.Vibe),
		Row:    out.Row,
		Guess:  newGuessResponse(out.Guess),
		Reveal: lo.Map(out.Reveal, func(v models.VibeScore, _ int) vibeResponse { return newVibeResponse(v) }),
		IsWin:  out.IsWin,
		IsOver: out.IsOver,
	}
	if out.Statistics != nil {
		resp.Statistics = newStatisticsResponse(*out.Statistics)
	}
	return resp
}

func newViolationResponse(v *hardmode.Violation) *violationResponse {
	return &violationResponse{
		Kind:     string(v.Kind),
		Position: v.Position,
		Letter:   v.Letter,
	}
}

func newLeaderboardResponse(out *round.GetLeaderboardOutput) leaderboardResponse {
	entries := lo.Map(out.Entries, func(e *models.LeaderboardEntry, _ int) leaderboardEntryResponse {
		return leaderboardEntryResponse{
			Rank:       e.Rank,
			PlayerID:   e.PlayerID,
			PlayerName: e.PlayerName,
			GuessCount: e.GuessCount,
			IsWin:      e.IsWin,
			FinishedAt: e.FinishedAt,
		}
	})
	return leaderboardResponse{
		Date:    out.Date,
		Locale:  out.Locale,
		Entries: entries,
	}
}
