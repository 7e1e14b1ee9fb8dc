package caption

import (
	"sort"
	"strings"

	"github.com/umputun/captions/pkg/domain"
)

// ToneProfile is the set of prefixes and emojis expressing a tone
type ToneProfile struct {
	Prefixes []string
	Emojis   []string
}

// tables below are initialized once and never mutated, safe for concurrent reads

var toneProfiles = map[domain.Tone]ToneProfile{
	domain.ToneFriendly: {
		Prefixes: []string{"Hey there!", "Fun fact:", "Guess what?", "PSA:"},
		Emojis:   []string{"😊", "✨", "🎉", "🚀", "🙌"},
	},
	domain.ToneProfessional: {
		Prefixes: []string{"Pro tip:", "Insight:", "Quick update:", "Heads up:"},
		Emojis:   []string{"💼", "📈", "🧠", "✅"},
	},
	domain.ToneWitty: {
		Prefixes: []string{"Plot twist:", "Hot take:", "Low-key obsessed with:", "Unpopular opinion:"},
		Emojis:   []string{"😏", "🔥", "🧩", "😉"},
	},
	domain.ToneBold: {
		Prefixes: []string{"Say it louder:", "No fluff:", "Real talk:", "Let's be honest:"},
		Emojis:   []string{"⚡", "🔥", "💥", "🏆"},
	},
	domain.ToneLuxury: {
		Prefixes: []string{"Elevate:", "Curated:", "Crafted:", "Exquisite:"},
		Emojis:   []string{"✨", "💫", "💎", "🖤"},
	},
	domain.ToneEducational: {
		Prefixes: []string{"Here's the breakdown:", "Step-by-step:", "3 things to know:", "Learn this:"},
		Emojis:   []string{"📚", "📝", "💡", "🔍"},
	},
	domain.ToneCasual: {
		Prefixes: []string{"Okay but listen:", "So...", "Not me doing:", "Mood:"},
		Emojis:   []string{"😌", "🤙", "👌", "✨"},
	},
}

var platformHashtags = map[string][]string{
	"instagram": {"#instadaily", "#trending", "#reels", "#explore", "#viral"},
	"tiktok":    {"#fyp", "#foryou", "#tiktok", "#viral", "#trend"},
	"twitter":   {"#NowPlaying", "#ICYMI", "#Thread", "#Vibes"},
	"linkedin":  {"#leadership", "#growth", "#careers", "#marketing", "#business"},
	"youtube":   {"#Shorts", "#Creator", "#HowTo", "#BehindTheScenes"},
}

var genericHashtags = []string{"#life", "#creative", "#goals", "#inspo", "#community", "#content"}

// ToneProfileFor returns the profile of the tone, profile of domain.DefaultTone if the tone is unknown.
// Returned slices are shared and must not be modified.
func ToneProfileFor(tone domain.Tone) ToneProfile {
	if p, ok := toneProfiles[tone]; ok {
		return p
	}
	return toneProfiles[domain.DefaultTone]
}

// PlatformTags returns a copy of the hashtags for the platform, empty for unknown platforms
func PlatformTags(platform string) []string {
	tags := platformHashtags[strings.ToLower(platform)]
	res := make([]string, len(tags))
	copy(res, tags)
	return res
}

// Platforms returns known platform names, sorted
func Platforms() []string {
	res := make([]string, 0, len(platformHashtags))
	for k := range platformHashtags {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}

// AllEmojis returns every emoji used by any tone, deduplicated
func AllEmojis() []string {
	seen := map[string]bool{}
	res := []string{}
	for _, t := range domain.Tones {
		for _, e := range toneProfiles[t].Emojis {
			if !seen[e] {
				seen[e] = true
				res = append(res, e)
			}
		}
	}
	return res
}
