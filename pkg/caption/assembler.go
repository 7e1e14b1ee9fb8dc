package caption

import (
	"math/rand/v2"
	"strings"

	"github.com/umputun/captions/pkg/domain"
)

const maxRenderedEmojis = 2

// Chooser picks one of the options. Must be safe for concurrent use and return "" for empty options.
type Chooser func(options []string) string

// RandomChoice picks an option uniformly at random from the process-wide random source
func RandomChoice(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[rand.IntN(len(options))] //nolint:gosec // not security sensitive
}

// Options defines a single caption to build
type Options struct {
	Topic           string
	Tone            domain.Tone
	Platform        string
	Length          domain.Length
	IncludeEmojis   bool
	IncludeHashtags bool
}

// Assembler builds captions from tone profile, length template and hashtags
type Assembler struct {
	choose Chooser
}

// NewAssembler makes an assembler with the given chooser, RandomChoice if nil
func NewAssembler(choose Chooser) *Assembler {
	if choose == nil {
		choose = RandomChoice
	}
	return &Assembler{choose: choose}
}

// Build makes one caption. The prefix is drawn by the chooser, everything else is deterministic.
// The emoji and hashtag flags control generated parts only, the topic is inserted as is
// and may carry its own '#' or emoji.
func (a *Assembler) Build(opts Options) string {
	profile := ToneProfileFor(opts.Tone)
	prefix := a.choose(profile.Prefixes)

	var emojis []string
	if opts.IncludeEmojis {
		emojis = profile.Emojis
	}

	var sb strings.Builder
	sb.WriteString(prefix)
	sb.WriteString(" ")
	sb.WriteString(Body(opts.Topic, opts.Length))

	if len(emojis) > 0 {
		if len(emojis) > maxRenderedEmojis {
			emojis = emojis[:maxRenderedEmojis]
		}
		sb.WriteString(" ")
		sb.WriteString(strings.Join(emojis, " "))
	}

	if tags := SuggestHashtags(opts.Topic, opts.Platform, opts.IncludeHashtags, opts.Length); tags != "" {
		sb.WriteString("\n\n")
		sb.WriteString(tags)
	}

	return strings.TrimSpace(sb.String())
}

// Body renders the length template with the topic inserted as is
func Body(topic string, length domain.Length) string {
	switch length {
	case domain.LengthShort:
		return topic + " — let's go!"
	case domain.LengthLong:
		return topic + ". Here's why it matters and how you can make it work today. Save this for later!"
	default:
		return topic + " done right. Screenshot this if you needed the nudge."
	}
}
