package discord

import (
	"errors"
	"fmt"

	"github.com/KirkDiggler/wordvibe/internal/common/ratelimit"
	"github.com/KirkDiggler/wordvibe/internal/services/messaging"
	"github.com/KirkDiggler/wordvibe/internal/services/round"
	"github.com/KirkDiggler/wordvibe/internal/services/statistics"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// Bot represents the Discord bot instance
type Bot struct {
	session  *discordgo.Session
	commands map[string]CommandHandler
	config   *Config

	// commandIDs maps command name to the ID Discord assigned it
	commandIDs map[string]string
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Services
	RoundService     round.Service
	StatsService     statistics.Service
	MessagingService messaging.Service

	// Optional per-player guess limit
	GuessLimiter *ratelimit.Limiter
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.RoundService == nil {
		return nil, errors.New("round service cannot be nil")
	}

	if cfg.StatsService == nil {
		return nil, errors.New("statistics service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:    session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		config:     cfg,
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	wordleCmd := NewWordleCommand(b.config.RoundService, b.config.StatsService, b.config.MessagingService, b.config.GuessLimiter)
	if err := b.RegisterCommand(wordleCmd); err != nil {
		return fmt.Errorf("failed to register wordle command: %w", err)
	}

	log.Info().Msg("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	// Remove all commands
	appID := b.appID()
	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.Error().Err(err).Str("command", cmdName).Str("command_id", cmdID).Msg("Failed to delete command")
		} else {
			log.Info().Str("command", cmdName).Str("command_id", cmdID).Msg("Deleted command")
		}
	}

	return b.session.Close()
}

// appID falls back to the session user ID if the application ID is not provided
func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	return b.session.State.User.ID
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	// If guild ID is provided, register command for that specific guild
	// Otherwise, register it globally
	logger := log.With().Str("command", cmd.GetName()).Logger()
	if b.config.GuildID != "" {
		logger = logger.With().Str("guild_id", b.config.GuildID).Logger()
	}

	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	logger.Info().Str("command_id", createdCmd.ID).Msg("Registered command")

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		// Handle slash commands
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				log.Error().Err(err).Str("command", name).Msg("Error handling command")
			}
		}
	case discordgo.InteractionMessageComponent:
		// Handle buttons and other components
		if err := b.handleComponentInteraction(s, i); err != nil {
			log.Error().Err(err).Str("custom_id", i.MessageComponentData().CustomID).Msg("Error handling component interaction")
		}
	}
}

// handleComponentInteraction routes a button click to the command that owns it
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID

	for _, cmd := range b.commands {
		if h, ok := cmd.(ComponentHandler); ok && h.HandlesComponent(customID) {
			return h.HandleComponent(s, i)
		}
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Unknown button: %s", customID))
}
