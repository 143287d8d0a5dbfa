package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/wordvibe/internal/common/ratelimit"
	"github.com/KirkDiggler/wordvibe/internal/models"
	"github.com/KirkDiggler/wordvibe/internal/services/messaging"
	"github.com/KirkDiggler/wordvibe/internal/services/round"
	"github.com/KirkDiggler/wordvibe/internal/services/statistics"
	"github.com/KirkDiggler/wordvibe/internal/vibe"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// Button IDs
const (
	ButtonNewRound   = "wordle_new_round"
	ButtonDailyRound = "wordle_daily_round"
)

// WordleCommand handles the /wordle command
type WordleCommand struct {
	BaseCommand
	roundService     round.Service
	statsService     statistics.Service
	messagingService messaging.Service
	guessLimiter     *ratelimit.Limiter
}

// NewWordleCommand creates a new wordle command handler
func NewWordleCommand(roundService round.Service, statsService statistics.Service, messagingService messaging.Service, guessLimiter *ratelimit.Limiter) *WordleCommand {
	return &WordleCommand{
		BaseCommand: BaseCommand{
			Name:        "wordle",
			Description: "Guess the five letter word",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Start a new round",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "daily",
							Description: "Play today's puzzle instead of a random word",
						},
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "hard",
							Description: "Revealed hints must be used in later guesses",
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "locale",
							Description: "Word list language",
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "English", Value: "en"},
								{Name: "Español", Value: "es"},
							},
						},
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "replace",
							Description: "Give up the round in progress and start over",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "guess",
					Description: "Guess a word in your current round",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "word",
							Description: "Your five letter guess",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "board",
					Description: "Show your current round",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "abandon",
					Description: "Give up your current round",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "stats",
					Description: "Show your statistics",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "reset",
					Description: "Clear your statistics",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "leaderboard",
					Description: "Show the daily puzzle standings",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "date",
							Description: "Puzzle day as YYYY-MM-DD, today by default",
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "locale",
							Description: "Word list",
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "English", Value: "en"},
								{Name: "Español", Value: "es"},
							},
						},
					},
				},
			},
		},
		roundService:     roundService,
		statsService:     statsService,
		messagingService: messagingService,
		guessLimiter:     guessLimiter,
	}
}

// Handle processes a Discord interaction for the wordle command
func (c *WordleCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	ctx := context.Background()
	userID, username := interactionUser(i)
	sub := data.Options[0]
	opts := optionMap(sub.Options)

	switch sub.Name {
	case "start":
		return c.handleStart(ctx, s, i, userID, &round.StartRoundInput{
			PlayerID:   userID,
			PlayerName: username,
			ChannelID:  i.ChannelID,
			Locale:     stringOption(opts, "locale"),
			Daily:      boolOption(opts, "daily"),
			HardMode:   boolOption(opts, "hard"),
			Replace:    boolOption(opts, "replace"),
		})
	case "guess":
		return c.handleGuess(ctx, s, i, userID, username, stringOption(opts, "word"))
	case "board":
		return c.handleBoard(ctx, s, i, userID)
	case "abandon":
		return c.handleAbandon(ctx, s, i, userID)
	case "stats":
		return c.handleStats(ctx, s, i, userID, username)
	case "reset":
		return c.handleReset(ctx, s, i, userID)
	case "leaderboard":
		return c.handleLeaderboard(ctx, s, i, stringOption(opts, "date"), stringOption(opts, "locale"))
	default:
		return errors.New("unknown subcommand")
	}
}

// HandlesComponent reports whether customID is one of the wordle buttons
func (c *WordleCommand) HandlesComponent(customID string) bool {
	return customID == ButtonNewRound || customID == ButtonDailyRound
}

// HandleComponent starts a round from the buttons under a finished board
func (c *WordleCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	userID, username := interactionUser(i)
	return c.handleStart(context.Background(), s, i, userID, &round.StartRoundInput{
		PlayerID:   userID,
		PlayerName: username,
		ChannelID:  i.ChannelID,
		Daily:      i.MessageComponentData().CustomID == ButtonDailyRound,
	})
}

func (c *WordleCommand) handleStart(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string, input *round.StartRoundInput) error {
	out, err := c.roundService.StartRound(ctx, input)
	if err != nil {
		return c.respondWithError(ctx, s, i, err)
	}

	title, message := "New round", ""
	started, err := c.messagingService.GetRoundStartedMessage(ctx, &messaging.GetRoundStartedMessageInput{
		IsDaily:  out.Round.Solution.IsDaily,
		Date:     out.Round.Solution.Date,
		HardMode: out.Round.HardMode,
	})
	if err != nil {
		log.Warn().Err(err).Msg("failed to get round started message")
	} else {
		title, message = started.Title, started.Message
	}
	if out.Abandoned != nil {
		message = fmt.Sprintf("Your last round was abandoned. %s", message)
	}

	log.Info().
		Str("round_id", out.Round.ID).
		Str("player_id", userID).
		Bool("daily", out.Round.Solution.IsDaily).
		Msg("round started")

	return RespondWithEphemeralEmbed(s, i, renderRoundEmbed(out.Round, vibe.Empty(), title, message), nil)
}

func (c *WordleCommand) handleGuess(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID, username, word string) error {
	if !c.guessLimiter.Allow(userID) {
		return c.respondWithError(ctx, s, i, messaging.ErrSlowDown)
	}

	active, err := c.roundService.GetActiveRound(ctx, &round.GetActiveRoundInput{
		PlayerID: userID,
	})
	if err != nil {
		return c.respondWithError(ctx, s, i, err)
	}

	out, err := c.roundService.SubmitGuess(ctx, &round.SubmitGuessInput{
		RoundID:  active.Round.ID,
		PlayerID: userID,
		Word:     word,
	})
	if err != nil {
		return c.respondWithError(ctx, s, i, err)
	}

	if out.Violation != nil {
		desc, err := c.messagingService.DescribeViolation(ctx, &messaging.DescribeViolationInput{
			Violation: out.Violation,
		})
		if err != nil {
			return c.respondWithError(ctx, s, i, err)
		}
		return RespondWithEphemeralError(s, i, "Hard mode", desc.Message)
	}

	title := fmt.Sprintf("Guess %d/%d", out.Round.CurrentRow, models.MaxGuesses)
	message := ""
	if out.IsOver {
		result, err := c.messagingService.GetRoundResultMessage(ctx, &messaging.GetRoundResultMessageInput{
			IsWin:             out.IsWin,
			GuessCount:        out.Round.CurrentRow,
			Solution:          out.Round.Solution.Word,
			IsPersonalMessage: true,
		})
		if err != nil {
			log.Warn().Err(err).Msg("failed to get round result message")
		} else {
			title, message = result.Title, result.Message
		}
		c.announceResult(ctx, s, i.ChannelID, username, out)
	}

	return RespondWithEphemeralEmbed(s, i, renderRoundEmbed(out.Round, out.Vibe, title, message), renderRoundComponents(out.Round))
}

// announceResult posts the spoiler-free grid of a finished round to the channel
func (c *WordleCommand) announceResult(ctx context.Context, s *discordgo.Session, channelID, username string, out *round.SubmitGuessOutput) {
	if channelID == "" {
		return
	}

	title := fmt.Sprintf("%s is out of guesses", username)
	color := colorLost
	if out.IsWin {
		title = fmt.Sprintf("%s solved it", username)
		color = colorWon

		result, err := c.messagingService.GetRoundResultMessage(ctx, &messaging.GetRoundResultMessageInput{
			PlayerName: username,
			IsWin:      true,
			GuessCount: out.Round.CurrentRow,
			Solution:   out.Round.Solution.Word,
		})
		if err == nil {
			title = fmt.Sprintf("%s: %s", username, result.Title)
		}
	}

	_, err := s.ChannelMessageSendEmbed(channelID, &discordgo.MessageEmbed{
		Title:       title,
		Description: renderShareGrid(out.Round),
		Color:       color,
	})
	if err != nil {
		log.Error().Err(err).Str("channel_id", channelID).Msg("failed to announce round result")
	}
}

func (c *WordleCommand) handleBoard(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	out, err := c.roundService.GetActiveRound(ctx, &round.GetActiveRoundInput{
		PlayerID: userID,
	})
	if err != nil {
		return c.respondWithError(ctx, s, i, err)
	}

	title := "Your round"
	if out.Round.Solution.IsDaily {
		title = fmt.Sprintf("Daily puzzle %s", out.Round.Solution.Date)
	}
	return RespondWithEphemeralEmbed(s, i, renderRoundEmbed(out.Round, out.Vibe, title, ""), nil)
}

func (c *WordleCommand) handleAbandon(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	active, err := c.roundService.GetActiveRound(ctx, &round.GetActiveRoundInput{
		PlayerID: userID,
	})
	if err != nil {
		return c.respondWithError(ctx, s, i, err)
	}

	out, err := c.roundService.AbandonRound(ctx, &round.AbandonRoundInput{
		RoundID:  active.Round.ID,
		PlayerID: userID,
	})
	if err != nil {
		return c.respondWithError(ctx, s, i, err)
	}

	message := "Nothing was guessed, so this one doesn't count."
	if out.Statistics != nil {
		message = "Counted as a loss."
	}
	return RespondWithEphemeralEmbed(s, i, renderRoundEmbed(out.Round, active.Vibe, "Round abandoned", message), renderRoundComponents(out.Round))
}

func (c *WordleCommand) handleStats(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID, username string) error {
	out, err := c.statsService.GetStatistics(ctx, &statistics.GetStatisticsInput{
		PlayerID: userID,
	})
	if err != nil {
		return c.respondWithError(ctx, s, i, err)
	}

	return RespondWithEphemeralEmbed(s, i, renderStatisticsEmbed(username, out.Statistics), nil)
}

func (c *WordleCommand) handleReset(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	if _, err := c.statsService.ResetStatistics(ctx, &statistics.ResetStatisticsInput{
		PlayerID: userID,
	}); err != nil {
		return c.respondWithError(ctx, s, i, err)
	}

	return RespondWithEphemeralMessage(s, i, "Your statistics have been cleared.")
}

func (c *WordleCommand) handleLeaderboard(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, date, locale string) error {
	out, err := c.roundService.GetLeaderboard(ctx, &round.GetLeaderboardInput{
		Date:   date,
		Locale: locale,
		Limit:  leaderboardSize,
	})
	if err != nil {
		return c.respondWithError(ctx, s, i, err)
	}

	return RespondWithEmbed(s, i, renderLeaderboardEmbed(out.Date, out.Locale, out.Entries))
}

// respondWithError phrases a service error for the player; unexpected
// errors are also returned so the bot logs them
func (c *WordleCommand) respondWithError(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, err error) error {
	desc, derr := c.messagingService.DescribeError(ctx, &messaging.DescribeErrorInput{
		Err: err,
	})
	if derr != nil {
		return errors.Join(err, RespondWithEphemeralError(s, i, "Error", err.Error()))
	}

	respErr := RespondWithEphemeralError(s, i, desc.Title, desc.Message)
	if desc.IsUserError {
		return respErr
	}
	return errors.Join(err, respErr)
}

// optionMap indexes subcommand options by name
func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

func boolOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) bool {
	opt, ok := opts[name]
	if !ok || opt.Type != discordgo.ApplicationCommandOptionBoolean {
		return false
	}
	return opt.BoolValue()
}

func stringOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	opt, ok := opts[name]
	if !ok || opt.Type != discordgo.ApplicationCommandOptionString {
		return ""
	}
	return opt.StringValue()
}
