// Package api serves rounds and statistics as JSON over HTTP.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/KirkDiggler/wordvibe/internal/common/ratelimit"
	"github.com/KirkDiggler/wordvibe/internal/services/messaging"
	"github.com/KirkDiggler/wordvibe/internal/services/round"
	"github.com/KirkDiggler/wordvibe/internal/services/statistics"
	"github.com/KirkDiggler/wordvibe/internal/vibe"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Config holds the dependencies of the HTTP handler
type Config struct {
	RoundService     round.Service
	StatsService     statistics.Service
	MessagingService messaging.Service

	// GuessLimiter limits guesses per player, optional
	GuessLimiter *ratelimit.Limiter

	// Health reports whether backing stores are reachable, optional
	Health func(ctx context.Context) error
}

// Handler serves the JSON API
type Handler struct {
	rounds   round.Service
	stats    statistics.Service
	messages messaging.Service
	limiter  *ratelimit.Limiter
	health   func(ctx context.Context) error
}

// New creates a new HTTP handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.RoundService == nil {
		return nil, ErrNilRoundService
	}
	if cfg.StatsService == nil {
		return nil, ErrNilStatsService
	}
	if cfg.MessagingService == nil {
		return nil, ErrNilMessagingService
	}

	return &Handler{
		rounds:   cfg.RoundService,
		stats:    cfg.StatsService,
		messages: cfg.MessagingService,
		limiter:  cfg.GuessLimiter,
		health:   cfg.Health,
	}, nil
}

// Router returns a gin engine with every route registered
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())
	h.Register(r)
	return r
}

// Register adds the API routes to r
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/health", h.getHealth)

	r.POST("/rounds", h.startRound)
	r.GET("/rounds/:id", h.getRound)
	r.DELETE("/rounds/:id", h.abandonRound)
	r.POST("/rounds/:id/guesses", h.submitGuess)

	r.GET("/leaderboard", h.getLeaderboard)

	r.GET("/players/:id/round", h.getActiveRound)
	r.GET("/players/:id/stats", h.getStatistics)
	r.DELETE("/players/:id/stats", h.resetStatistics)
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

func (h *Handler) getHealth(c *gin.Context) {
	if h.health != nil {
		if err := h.health(c.Request.Context()); err != nil {
			log.Warn().Err(err).Msg("health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) startRound(c *gin.Context) {
	var req startRoundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	ctx := c.Request.Context()
	out, err := h.rounds.StartRound(ctx, &round.StartRoundInput{
		PlayerID:   req.PlayerID,
		PlayerName: req.PlayerName,
		ChannelID:  req.ChannelID,
		Locale:     req.Locale,
		Daily:      req.Daily,
		HardMode:   req.HardMode,
		Replace:    req.Replace,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := startRoundResponse{
		Round: newRoundResponse(out.Round, vibe.Empty()),
	}
	if out.Abandoned != nil {
		resp.Abandoned = out.Abandoned.ID
	}

	msg, err := h.messages.GetRoundStartedMessage(ctx, &messaging.GetRoundStartedMessageInput{
		IsDaily:  out.Round.Solution.IsDaily,
		Date:     out.Round.Solution.Date,
		HardMode: out.Round.HardMode,
	})
	if err == nil {
		resp.Title = msg.Title
		resp.Message = msg.Message
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) getRound(c *gin.Context) {
	out, err := h.rounds.GetRound(c.Request.Context(), &round.GetRoundInput{
		RoundID: c.Param("id"),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newRoundResponse(out.Round, out.Vibe))
}

func (h *Handler) getActiveRound(c *gin.Context) {
	out, err := h.rounds.GetActiveRound(c.Request.Context(), &round.GetActiveRoundInput{
		PlayerID: c.Param("id"),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newRoundResponse(out.Round, out.Vibe))
}

func (h *Handler) submitGuess(c *gin.Context) {
	var req submitGuessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	if !h.limiter.Allow(req.PlayerID) {
		h.writeError(c, messaging.ErrSlowDown)
		return
	}

	ctx := c.Request.Context()
	out, err := h.rounds.SubmitGuess(ctx, &round.SubmitGuessInput{
		RoundID:  c.Param("id"),
		PlayerID: req.PlayerID,
		Word:     req.Word,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	if out.Violation != nil {
		resp := errorResponse{
			Error:     errHardModeViolation.Error(),
			Violation: newViolationResponse(out.Violation),
		}
		if desc, err := h.messages.DescribeViolation(ctx, &messaging.DescribeViolationInput{
			Violation: out.Violation,
		}); err == nil {
			resp.Message = desc.Message
		}
		c.JSON(statusFor(errHardModeViolation), resp)
		return
	}

	resp := newSubmitGuessResponse(out)
	if out.IsOver {
		msg, err := h.messages.GetRoundResultMessage(ctx, &messaging.GetRoundResultMessageInput{
			IsWin:             out.IsWin,
			GuessCount:        out.Round.CurrentRow,
			Solution:          out.Round.Solution.Word,
			IsPersonalMessage: true,
		})
		if err == nil {
			resp.Title = msg.Title
			resp.Message = msg.Message
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) abandonRound(c *gin.Context) {
	playerID := c.Query("playerId")
	if playerID == "" {
		h.badRequest(c, errMissingPlayerID)
		return
	}

	out, err := h.rounds.AbandonRound(c.Request.Context(), &round.AbandonRoundInput{
		RoundID:  c.Param("id"),
		PlayerID: playerID,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	score, err := vibe.Score(out.Round.CompletedGuesses(), out.Round.Solution.Word)
	if err != nil {
		score = vibe.Empty()
	}

	resp := abandonRoundResponse{
		Round: newRoundResponse(out.Round, score),
	}
	if out.Statistics != nil {
		resp.Statistics = newStatisticsResponse(*out.Statistics)
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) getLeaderboard(c *gin.Context) {
	var query leaderboardQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.badRequest(c, err)
		return
	}

	out, err := h.rounds.GetLeaderboard(c.Request.Context(), &round.GetLeaderboardInput{
		Date:   query.Date,
		Locale: query.Locale,
		Limit:  query.Limit,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newLeaderboardResponse(out))
}

func (h *Handler) getStatistics(c *gin.Context) {
	out, err := h.stats.GetStatistics(c.Request.Context(), &statistics.GetStatisticsInput{
		PlayerID: c.Param("id"),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newStatisticsResponse(out.Statistics))
}

func (h *Handler) resetStatistics(c *gin.Context) {
	out, err := h.stats.ResetStatistics(c.Request.Context(), &statistics.ResetStatisticsInput{
		PlayerID: c.Param("id"),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newStatisticsResponse(out.Statistics))
}

func (h *Handler) badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{
		Error:   "invalid request",
		Message: err.Error(),
	})
}

// writeError responds with the status for err and a player-facing message
func (h *Handler) writeError(c *gin.Context, err error) {
	status := statusFor(err)

	resp := errorResponse{
		Error:   err.Error(),
		Message: err.Error(),
	}
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		resp.Error = "internal error"
	}

	desc, derr := h.messages.DescribeError(c.Request.Context(), &messaging.DescribeErrorInput{
		Err:           err,
		PreferredTone: messaging.ToneNeutral,
	})
	if derr == nil {
		resp.Message = desc.Message
	}

	c.AbortWithStatusJSON(status, resp)
}
