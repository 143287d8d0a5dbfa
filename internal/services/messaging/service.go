package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/wordvibe/internal/dictionary"
	"github.com/KirkDiggler/wordvibe/internal/hardmode"
	"github.com/KirkDiggler/wordvibe/internal/match"
	"github.com/KirkDiggler/wordvibe/internal/puzzle"
	roundService "github.com/KirkDiggler/wordvibe/internal/services/round"
)

// service implements the Service interface
type service struct {
	defaultTone MessageTone

	// Random number generator for selecting random messages
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (*service, error) {
	seed := time.Now().UnixNano()
	tone := ToneFunny
	if config != nil {
		if config.Seed != 0 {
			seed = config.Seed
		}
		if config.DefaultTone != "" {
			tone = config.DefaultTone
		}
	}

	return &service{
		defaultTone: tone,
		rand:        rand.New(rand.NewSource(seed)),
	}, nil
}

func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return messages[s.rand.Intn(len(messages))]
}

func (s *service) tone(preferred MessageTone) MessageTone {
	if preferred == "" {
		return s.defaultTone
	}
	return preferred
}

// Ordinal formats n as 1st, 2nd, 3rd, 4th, 11th, 21st and so on
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

// DescribeViolation phrases a hard mode violation for the player
func (s *service) DescribeViolation(ctx context.Context, input *DescribeViolationInput) (*DescribeViolationOutput, error) {
	if input == nil || input.Violation == nil {
		return nil, ErrNilInput
	}

	letter := strings.ToUpper(input.Violation.Letter)

	var message string
	switch input.Violation.Kind {
	case hardmode.ViolationMisplacedCorrect:
		message = fmt.Sprintf("%s letter must be %s", Ordinal(input.Violation.Position+1), letter)
	case hardmode.ViolationMissingPresent:
		message = fmt.Sprintf("Guess must contain %s", letter)
	default:
		message = "Guess must use the revealed hints"
	}

	return &DescribeViolationOutput{
		Message: message,
	}, nil
}

// DescribeError returns a user-friendly message for an error
func (s *service) DescribeError(ctx context.Context, input *DescribeErrorInput) (*DescribeErrorOutput, error) {
	if input == nil || input.Err == nil {
		return nil, ErrNilInput
	}

	tone := s.tone(input.PreferredTone)
	out := &DescribeErrorOutput{
		Title:       "Hold up!",
		Tone:        tone,
		IsUserError: true,
	}

	var messages []string
	err := input.Err
	switch {
	case errors.Is(err, roundService.ErrNotInWordList):
		out.Title = "Not in word list"
		messages = []string{
			"That's not a word I know. Try another one.",
			"Nice try, but that's not in the dictionary.",
			"I checked twice. Not a word.",
		}
	case errors.Is(err, match.ErrInvalidGuessShape):
		out.Title = "Five letters, please"
		messages = []string{
			"Guesses must be exactly 5 letters.",
			"Count again: five letters, no numbers or symbols.",
		}
	case errors.Is(err, roundService.ErrRoundNotFound):
		out.Title = "No round in progress"
		messages = []string{
			"Start a round first with /wordle start.",
			"There's nothing to guess yet. Try /wordle start.",
		}
	case errors.Is(err, roundService.ErrRoundOver):
		out.Title = "Round is over"
		messages = []string{
			"That round is finished. Start a new one!",
			"The tiles have spoken. Start another round to keep playing.",
		}
	case errors.Is(err, roundService.ErrRoundInProgress):
		out.Title = "Round in progress"
		messages = []string{
			"You already have a round going. Finish it or start over with replace.",
			"One puzzle at a time! Finish your current round first.",
		}
	case errors.Is(err, roundService.ErrNotRoundOwner):
		out.Title = "Not your round"
		messages = []string{
			"That board belongs to someone else. Start your own with /wordle start.",
			"Hands off! Get your own puzzle with /wordle start.",
		}
	case errors.Is(err, ErrSlowDown):
		out.Title = "Slow down"
		messages = []string{
			"You're guessing faster than the tiles can flip. Take a breath.",
			"Easy there! Wait a moment before guessing again.",
		}
	case errors.Is(err, dictionary.ErrUnknownLocale):
		out.Title = "Unknown language"
		messages = []string{
			"I don't have a word list for that language.",
		}
	case errors.Is(err, puzzle.ErrWordNotFound):
		out.Title = "No words"
		out.IsUserError = false
		messages = []string{
			"There are no words to pick from. Tell whoever runs this bot.",
		}
	default:
		out.Title = "Something went wrong"
		out.IsUserError = false
		switch tone {
		case ToneNeutral:
			messages = []string{"Something went wrong. Please try again."}
		default:
			messages = []string{
				"Something went wrong! Try again in a moment.",
				"Oops! The tiles got stuck. Try again.",
				"The dictionary fell off the shelf. Give it another go.",
			}
		}
	}

	out.Message = s.pick(messages)
	return out, nil
}

// GetRoundStartedMessage returns a message for a new round
func (s *service) GetRoundStartedMessage(ctx context.Context, input *GetRoundStartedMessageInput) (*GetRoundStartedMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	title := "New round"
	if input.IsDaily {
		title = fmt.Sprintf("Daily puzzle %s", input.Date)
	}
	if input.HardMode {
		title += " (hard mode)"
	}

	messages := []string{
		"Six guesses. Five letters. Good luck!",
		"The word is picked. Your move.",
		"Warm up those vibes and take your first guess.",
		"Fresh tiles, fresh chances. Guess away!",
	}

	return &GetRoundStartedMessageOutput{
		Title:   title,
		Message: s.pick(messages),
	}, nil
}

var winTitles = [...]string{"Genius", "Magnificent", "Impressive", "Splendid", "Great", "Phew"}

// GetRoundResultMessage returns a message for a finished round
func (s *service) GetRoundResultMessage(ctx context.Context, input *GetRoundResultMessageInput) (*GetRoundResultMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	tone := s.tone(input.PreferredTone)
	word := strings.ToUpper(input.Solution)
	who := input.PlayerName
	if input.IsPersonalMessage || who == "" {
		who = "You"
	}

	var title string
	var messages []string

	if input.IsWin {
		title = "Solved!"
		if input.GuessCount >= 1 && input.GuessCount <= len(winTitles) {
			title = winTitles[input.GuessCount-1]
		}

		switch tone {
		case ToneNeutral:
			messages = []string{
				fmt.Sprintf("%s solved %s in %d.", who, word, input.GuessCount),
			}
		case ToneEncouraging:
			messages = []string{
				fmt.Sprintf("%s got %s in %d. Keep that streak alive!", who, word, input.GuessCount),
				fmt.Sprintf("Great work! %s cracked %s in %d guesses.", who, word, input.GuessCount),
			}
		default:
			if input.GuessCount == 1 {
				messages = []string{
					fmt.Sprintf("%s got %s in ONE. Suspicious. Very suspicious.", who, word),
					fmt.Sprintf("First try?! %s either peeked or is a wizard. %s it is.", who, word),
				}
			} else {
				messages = []string{
					fmt.Sprintf("%s found %s in %d. The vibes were immaculate.", who, word, input.GuessCount),
					fmt.Sprintf("%s in %d! %s clearly has a way with words.", word, input.GuessCount, who),
					fmt.Sprintf("%s cracked it: %s in %d guesses.", who, word, input.GuessCount),
				}
			}
		}
	} else {
		title = "Out of guesses"
		switch tone {
		case ToneNeutral:
			messages = []string{
				fmt.Sprintf("The word was %s.", word),
			}
		case ToneEncouraging:
			messages = []string{
				fmt.Sprintf("The word was %s. Tomorrow's puzzle is yours!", word),
				fmt.Sprintf("So close. It was %s. Shake it off and try again.", word),
			}
		default:
			messages = []string{
				fmt.Sprintf("The word was %s. Cold vibes all around.", word),
				fmt.Sprintf("It was %s. The dictionary wins this round.", word),
				fmt.Sprintf("It was %s! Don't worry, nobody saw that. Except everyone.", word),
			}
		}
	}

	return &GetRoundResultMessageOutput{
		Title:   title,
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}
