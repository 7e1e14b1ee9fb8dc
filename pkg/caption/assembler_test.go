package caption

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/captions/pkg/domain"
)

func firstChoice(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[0]
}

func TestAssembler_Build(t *testing.T) {
	tbl := []struct {
		name string
		opts Options
		want string
	}{
		{
			name: "witty short with emojis and hashtags",
			opts: Options{Topic: "coffee shop launch", Tone: domain.ToneWitty, Platform: "instagram",
				Length: domain.LengthShort, IncludeEmojis: true, IncludeHashtags: true},
			want: "Plot twist: coffee shop launch — let's go! 😏 🔥\n\n#coffee #shop #launch #instadaily",
		},
		{
			name: "friendly medium plain",
			opts: Options{Topic: "Morning yoga", Tone: domain.ToneFriendly, Platform: "instagram",
				Length: domain.LengthMedium},
			want: "Hey there! Morning yoga done right. Screenshot this if you needed the nudge.",
		},
		{
			name: "professional long with hashtags only",
			opts: Options{Topic: "Quarterly results", Tone: domain.ToneProfessional, Platform: "linkedin",
				Length: domain.LengthLong, IncludeHashtags: true},
			want: "Pro tip: Quarterly results. Here's why it matters and how you can make it work today. Save this for later!" +
				"\n\n#quarterly #results #leadership #growth #careers #life #creative #goals #inspo #community",
		},
		{
			name: "luxury with emojis only",
			opts: Options{Topic: "new collection", Tone: domain.ToneLuxury, Length: domain.LengthShort, IncludeEmojis: true},
			want: "Elevate: new collection — let's go! ✨ 💫",
		},
	}

	a := NewAssembler(firstChoice)
	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Build(tt.opts))
		})
	}
}

func TestAssembler_BuildEmptyPrefixTrimmed(t *testing.T) {
	a := NewAssembler(func([]string) string { return "" })
	res := a.Build(Options{Topic: "topic", Tone: domain.ToneBold, Length: domain.LengthShort})
	assert.Equal(t, "topic — let's go!", res)
}

func TestAssembler_BuildUnknownToneUsesFriendly(t *testing.T) {
	var got [][]string
	a := NewAssembler(func(options []string) string {
		got = append(got, options)
		return options[len(options)-1]
	})
	res := a.Build(Options{Topic: "topic", Tone: domain.ParseTone("mystery"), IncludeEmojis: true})
	require.Len(t, got, 1)
	assert.Equal(t, toneProfiles[domain.ToneFriendly].Prefixes, got[0])
	assert.Equal(t, "PSA: topic done right. Screenshot this if you needed the nudge. 😊 ✨", res)
}

func TestAssembler_BuildRandomPrefix(t *testing.T) {
	a := NewAssembler(nil)
	for _, tone := range domain.Tones {
		for _, length := range domain.Lengths {
			profile := ToneProfileFor(tone)
			body := Body("summer sale", length)
			for range 20 {
				res := a.Build(Options{Topic: "summer sale", Tone: tone, Platform: "tiktok", Length: length})

				prefix, rest, ok := strings.Cut(res, " "+body)
				require.True(t, ok, "body %q not found in %q", body, res)
				assert.Contains(t, profile.Prefixes, prefix)
				assert.Empty(t, rest)
			}
		}
	}
}

func TestAssembler_BuildFlagsOff(t *testing.T) {
	a := NewAssembler(nil)
	emojis := AllEmojis()
	for _, tone := range domain.Tones {
		for _, platform := range Platforms() {
			res := a.Build(Options{Topic: "coffee shop launch", Tone: tone, Platform: platform, Length: domain.LengthLong})
			assert.NotContains(t, res, "#")
			assert.NotContains(t, res, "\n")
			for _, e := range emojis {
				assert.NotContains(t, res, e)
			}
		}
	}
}

func TestAssembler_BuildFlagsOffKeepsTopicAsIs(t *testing.T) {
	a := NewAssembler(firstChoice)
	res := a.Build(Options{Topic: "#tbt memories 😊", Tone: domain.ToneFriendly, Platform: "instagram",
		Length: domain.LengthMedium})
	assert.Equal(t, "Hey there! #tbt memories 😊 done right. Screenshot this if you needed the nudge.", res)
	assert.Equal(t, 1, strings.Count(res, "#"), "only the topic carries a hashtag")
	assert.Equal(t, 1, strings.Count(res, "😊"), "only the topic carries an emoji")
}

func TestAssembler_BuildEmojiCap(t *testing.T) {
	a := NewAssembler(nil)
	for _, tone := range domain.Tones {
		res := a.Build(Options{Topic: "topic", Tone: tone, Length: domain.LengthShort, IncludeEmojis: true})
		count := 0
		for _, e := range ToneProfileFor(tone).Emojis {
			count += strings.Count(res, e)
		}
		assert.Equal(t, 2, count, res)
	}
}

func TestAssembler_BuildConcurrent(t *testing.T) {
	a := NewAssembler(nil)
	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				res := a.Build(Options{Topic: "topic", Tone: domain.ToneCasual, Length: domain.LengthShort, IncludeHashtags: true})
				assert.True(t, strings.HasSuffix(res, "#topic #life #creative #goals"), res)
			}
		}()
	}
	wg.Wait()
}

func TestBody(t *testing.T) {
	assert.Equal(t, "x — let's go!", Body("x", domain.LengthShort))
	assert.Equal(t, "x done right. Screenshot this if you needed the nudge.", Body("x", domain.LengthMedium))
	assert.Equal(t, "x. Here's why it matters and how you can make it work today. Save this for later!",
		Body("x", domain.LengthLong))
	assert.Equal(t, Body("x", domain.LengthMedium), Body("x", domain.ParseLength("huge")))
}
