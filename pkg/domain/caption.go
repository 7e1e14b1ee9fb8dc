package domain

import (
	"strings"
	"time"
)

// Tone is the voice of a caption, selects prefixes and emojis
type Tone string

// known tones
const (
	ToneFriendly     Tone = "friendly"
	ToneProfessional Tone = "professional"
	ToneWitty        Tone = "witty"
	ToneBold         Tone = "bold"
	ToneLuxury       Tone = "luxury"
	ToneEducational  Tone = "educational"
	ToneCasual       Tone = "casual"
)

// DefaultTone is used for empty or unknown tone names
const DefaultTone = ToneFriendly

// Tones lists all known tones in display order
var Tones = []Tone{ToneFriendly, ToneProfessional, ToneWitty, ToneBold, ToneLuxury, ToneEducational, ToneCasual}

// ParseTone returns the tone for a case-insensitive name, DefaultTone for anything unknown
func ParseTone(s string) Tone {
	t := Tone(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Tones {
		if t == known {
			return t
		}
	}
	return DefaultTone
}

// Length is the caption body size
type Length string

// known lengths
const (
	LengthShort  Length = "short"
	LengthMedium Length = "medium"
	LengthLong   Length = "long"
)

// DefaultLength is used for empty or unknown length names
const DefaultLength = LengthMedium

// Lengths lists all known lengths
var Lengths = []Length{LengthShort, LengthMedium, LengthLong}

// ParseLength returns the length for a case-insensitive name, DefaultLength for anything unknown
func ParseLength(s string) Length {
	switch l := Length(strings.ToLower(strings.TrimSpace(s))); l {
	case LengthShort, LengthMedium, LengthLong:
		return l
	default:
		return DefaultLength
	}
}

// MaxHashtags returns the hashtag cap for the length
func (l Length) MaxHashtags() int {
	switch l {
	case LengthShort:
		return 4
	case LengthLong:
		return 10
	default:
		return 7
	}
}

// GenerationRequest is a single caption generation request.
// Tone, Platform and Length are free-form, unknown values fall back to defaults.
type GenerationRequest struct {
	Topic           string
	Tone            string
	Platform        string
	Length          string
	IncludeEmojis   bool
	IncludeHashtags bool
	Variants        int
}

// Generation is a persisted snapshot of one request and the captions produced for it
type Generation struct {
	ID              string
	Topic           string
	Tone            string
	Platform        string
	Length          string
	IncludeEmojis   bool
	IncludeHashtags bool
	Variants        []string
	Favorite        bool
	FavoriteIndex   *int
	GeneratedAt     time.Time
	UpdatedAt       *time.Time
}
