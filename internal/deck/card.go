package deck

import (
	"errors"
	"fmt"
)

// Suit represents a card suit. Suits carry no ordering; they matter only for
// flush detection.
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Spades
	Clubs
)

// String returns the wire symbol for a suit
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "H"
	case Diamonds:
		return "D"
	case Spades:
		return "S"
	case Clubs:
		return "C"
	default:
		return "?"
	}
}

// Rank represents a card rank. Aces are high (14) except when completing the
// A-2-3 wheel straight.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the wire symbol for a rank
func (r Rank) String() string {
	switch r {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// String returns the two-character token for a card (e.g., "AH")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Parse errors, exposed as sentinels so callers can classify faults.
var (
	ErrBadToken = errors.New("card token must be two characters")
	ErrBadRank  = errors.New("unknown rank symbol")
	ErrBadSuit  = errors.New("unknown suit symbol")
)

// ParseCard parses a two-character token into a card.
// Ranks: 2-9, T, J, Q, K, A. Suits: H, D, S, C (lowercase accepted).
func ParseCard(token string) (Card, error) {
	if len(token) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrBadToken, token)
	}

	rank, err := parseRank(token[0])
	if err != nil {
		return Card{}, fmt.Errorf("card %q: %w", token, err)
	}

	suit, err := parseSuit(token[1])
	if err != nil {
		return Card{}, fmt.Errorf("card %q: %w", token, err)
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards parses a sequence of card tokens. Tokens may be separated by
// spaces ("AH KD") or packed ("AHKD").
func ParseCards(s string) ([]Card, error) {
	var cards []Card
	var token []byte
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' {
			continue
		}
		token = append(token, s[i])
		if len(token) == 2 {
			card, err := ParseCard(string(token))
			if err != nil {
				return nil, err
			}
			cards = append(cards, card)
			token = token[:0]
		}
	}
	if len(token) != 0 {
		return nil, fmt.Errorf("%w: trailing %q", ErrBadToken, string(token))
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards %q: %v", s, err))
	}
	return cards
}

func parseRank(c byte) (Rank, error) {
	switch c {
	case 'A', 'a':
		return Ace, nil
	case 'K', 'k':
		return King, nil
	case 'Q', 'q':
		return Queen, nil
	case 'J', 'j':
		return Jack, nil
	case 'T', 't':
		return Ten, nil
	case '9':
		return Nine, nil
	case '8':
		return Eight, nil
	case '7':
		return Seven, nil
	case '6':
		return Six, nil
	case '5':
		return Five, nil
	case '4':
		return Four, nil
	case '3':
		return Three, nil
	case '2':
		return Two, nil
	default:
		return 0, fmt.Errorf("%w: '%c'", ErrBadRank, c)
	}
}

func parseSuit(c byte) (Suit, error) {
	switch c {
	case 'H', 'h':
		return Hearts, nil
	case 'D', 'd':
		return Diamonds, nil
	case 'S', 's':
		return Spades, nil
	case 'C', 'c':
		return Clubs, nil
	default:
		return 0, fmt.Errorf("%w: '%c'", ErrBadSuit, c)
	}
}
