package discord

import (
	"fmt"
	"sort"
	"strings"

	"github.com/KirkDiggler/wordvibe/internal/models"
	"github.com/bwmarrin/discordgo"
	"github.com/samber/lo"
)

// Embed colors
const (
	colorInProgress = 0x5865f2
	colorWon        = 0x00ff00
	colorLost       = 0xff0000
	colorInfo       = 0xf1c40f
)

const (
	tileCorrect = "🟩"
	tilePresent = "🟨"
	tileAbsent  = "⬛"
	tileEmpty   = "⬜"

	// histogramWidth is the length of the longest distribution bar
	histogramWidth = 12

	// leaderboardSize is how many players the leaderboard embed lists
	leaderboardSize = 10
)

var medals = map[int]string{1: "🥇", 2: "🥈", 3: "🥉"}

func tile(s models.MatchStatus) string {
	switch s {
	case models.MatchStatusCorrect:
		return tileCorrect
	case models.MatchStatusPresent:
		return tilePresent
	case models.MatchStatusAbsent:
		return tileAbsent
	default:
		return tileEmpty
	}
}

func renderTiles(g models.Guess) string {
	var b strings.Builder
	for _, s := range g.Matches {
		b.WriteString(tile(s))
	}
	return b.String()
}

// renderBoard draws every row of the round, letters beside the tiles
func renderBoard(round *models.Round) string {
	var b strings.Builder
	for _, g := range round.Guesses {
		b.WriteString(renderTiles(g))
		if g.IsComplete {
			fmt.Fprintf(&b, "  `%s`", strings.Join(strings.Split(strings.ToUpper(g.Word()), ""), " "))
		}
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// renderShareGrid is the spoiler-free result posted to the channel
func renderShareGrid(round *models.Round) string {
	guesses := round.CompletedGuesses()

	score := "X"
	if round.Status == models.RoundStatusWon {
		score = fmt.Sprintf("%d", len(guesses))
	}

	name := "Wordvibe"
	if round.Solution.IsDaily {
		name += " " + round.Solution.Date
	}
	header := fmt.Sprintf("%s %s/%d", name, score, models.MaxGuesses)
	if round.HardMode {
		header += "*"
	}

	rows := lo.Map(guesses, func(g models.Guess, _ int) string { return renderTiles(g) })
	return header + "\n\n" + strings.Join(rows, "\n")
}

// renderKeys lists the letters played so far by status
func renderKeys(keys models.KeyStatusMap) string {
	groups := []struct {
		label  string
		status models.MatchStatus
	}{
		{label: tileCorrect, status: models.MatchStatusCorrect},
		{label: tilePresent, status: models.MatchStatusPresent},
		{label: tileAbsent, status: models.MatchStatusAbsent},
	}

	var lines []string
	for _, group := range groups {
		letters := lo.FilterMap(lo.Keys(keys), func(letter string, _ int) (string, bool) {
			return strings.ToUpper(letter), keys[letter] == group.status
		})
		if len(letters) == 0 {
			continue
		}
		sort.Strings(letters)
		lines = append(lines, group.label+" "+strings.Join(letters, " "))
	}
	return strings.Join(lines, "\n")
}

func trendArrow(t models.VibeTrend) string {
	switch t {
	case models.VibeTrendUp:
		return " ⬆️"
	case models.VibeTrendDown:
		return " ⬇️"
	default:
		return ""
	}
}

// renderVibe formats a score as "Good Vibes (48)" with a trend arrow
func renderVibe(v models.VibeScore) string {
	return fmt.Sprintf("%s (%d)%s", v.Label, v.Score, trendArrow(v.Trend))
}

// renderHistogram draws the guess distribution, bars scaled to the largest bucket
func renderHistogram(stats models.GameStatistics) string {
	most := lo.Max(stats.GuessDistribution[:])

	var b strings.Builder
	for i, count := range stats.GuessDistribution {
		width := 0
		if most > 0 {
			width = count * histogramWidth / most
		}
		if count > 0 && width == 0 {
			width = 1
		}
		fmt.Fprintf(&b, "`%d` %s %d\n", i+1, strings.Repeat("█", width), count)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func roundColor(round *models.Round) int {
	switch round.Status {
	case models.RoundStatusWon:
		return colorWon
	case models.RoundStatusLost:
		return colorLost
	default:
		return colorInProgress
	}
}

// renderRoundEmbed shows the board of a round to its player
func renderRoundEmbed(round *models.Round, vibe models.VibeScore, title, message string) *discordgo.MessageEmbed {
	description := renderBoard(round)
	if message != "" {
		description = message + "\n\n" + description
	}

	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Vibe",
			Value:  renderVibe(vibe),
			Inline: true,
		},
		{
			Name:   "Guesses",
			Value:  fmt.Sprintf("%d/%d", round.CurrentRow, models.MaxGuesses),
			Inline: true,
		},
	}
	if round.HardMode {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Mode",
			Value:  "Hard",
			Inline: true,
		})
	}
	if keys := renderKeys(round.KeyStatuses); keys != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Letters",
			Value: keys,
		})
	}
	if round.Status.IsOver() {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Word",
			Value: strings.ToUpper(round.Solution.Word),
		})
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       roundColor(round),
		Fields:      fields,
	}
}

// renderRoundComponents offers a new round once the current one is over
func renderRoundComponents(round *models.Round) []discordgo.MessageComponent {
	if !round.Status.IsOver() {
		return nil
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "New Round",
					Style:    discordgo.PrimaryButton,
					CustomID: ButtonNewRound,
					Emoji: &discordgo.ComponentEmoji{
						Name: "🔤",
					},
				},
				discordgo.Button{
					Label:    "Daily Puzzle",
					Style:    discordgo.SecondaryButton,
					CustomID: ButtonDailyRound,
					Emoji: &discordgo.ComponentEmoji{
						Name: "📅",
					},
				},
			},
		},
	}
}

// renderStatisticsEmbed shows a player's statistics
func renderStatisticsEmbed(name string, stats models.GameStatistics) *discordgo.MessageEmbed {
	title := "Statistics"
	if name != "" {
		title = fmt.Sprintf("%s's Statistics", name)
	}

	description := "No rounds played yet. Start one with `/wordle start`."
	if stats.GamesPlayed > 0 {
		description = "**Guess Distribution**\n" + renderHistogram(stats)
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       colorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Played", Value: fmt.Sprintf("%d", stats.GamesPlayed), Inline: true},
			{Name: "Win %", Value: fmt.Sprintf("%d", stats.WinPercentage()), Inline: true},
			{Name: "Current Streak", Value: fmt.Sprintf("%d", stats.CurrentStreak), Inline: true},
			{Name: "Max Streak", Value: fmt.Sprintf("%d", stats.MaxStreak), Inline: true},
		},
	}
}

// renderLeaderboardLine formats one ranked result, e.g. "🥇 Kirk 3/6"
func renderLeaderboardLine(e *models.LeaderboardEntry) string {
	rank, ok := medals[e.Rank]
	if !ok {
		rank = fmt.Sprintf("`%d.`", e.Rank)
	}

	name := e.PlayerName
	if name == "" {
		name = fmt.Sprintf("<@%s>", e.PlayerID)
	}

	result := fmt.Sprintf("%d/%d", e.GuessCount, models.MaxGuesses)
	if !e.IsWin {
		result = fmt.Sprintf("X/%d", models.MaxGuesses)
	}

	return fmt.Sprintf("%s %s %s", rank, name, result)
}

func renderLeaderboardEmbed(date, locale string, entries []*models.LeaderboardEntry) *discordgo.MessageEmbed {
	description := "Nobody has finished this puzzle yet. Try `/wordle start daily:True`."
	if len(entries) > 0 {
		description = strings.Join(lo.Map(entries, func(e *models.LeaderboardEntry, _ int) string {
			return renderLeaderboardLine(e)
		}), "\n")
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Daily Leaderboard · %s", date),
		Description: description,
		Color:       colorInfo,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Word list: %s", locale),
		},
	}
}
