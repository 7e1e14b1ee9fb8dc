package caption

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/umputun/captions/pkg/domain"
)

func TestSuggestHashtags(t *testing.T) {
	tbl := []struct {
		name     string
		topic    string
		platform string
		enabled  bool
		length   domain.Length
		want     string
	}{
		{name: "disabled", topic: "coffee shop launch", platform: "instagram", enabled: false,
			length: domain.LengthShort, want: ""},
		{name: "short capped at 4", topic: "coffee shop launch", platform: "instagram", enabled: true,
			length: domain.LengthShort, want: "#coffee #shop #launch #instadaily"},
		{name: "medium capped at 7", topic: "coffee shop launch", platform: "instagram", enabled: true,
			length: domain.LengthMedium, want: "#coffee #shop #launch #instadaily #trending #reels #life"},
		{name: "long capped at 10", topic: "coffee shop launch", platform: "instagram", enabled: true,
			length: domain.LengthLong,
			want: "#coffee #shop #launch #instadaily #trending #reels #life #creative #goals #inspo"},
		{name: "duplicates removed", topic: "viral viral trend", platform: "tiktok", enabled: true,
			length: domain.LengthMedium, want: "#viral #trend #fyp #foryou #tiktok #life #creative"},
		{name: "topic tag overlaps generic", topic: "Life goals 2024", platform: "myspace", enabled: true,
			length: domain.LengthShort, want: "#life #goals #creative"},
		{name: "no alphabetic words", topic: "123 !!! 4.5", platform: "", enabled: true,
			length: domain.LengthShort, want: "#life #creative #goals"},
		{name: "only first three words used", topic: "one two three four five", platform: "", enabled: true,
			length: domain.LengthLong, want: "#one #two #three #life #creative #goals #inspo #community"},
		{name: "words with punctuation skipped", topic: "launch! new café today", platform: "linkedin", enabled: true,
			length: domain.LengthShort, want: "#new #café #today #leadership"},
		{name: "platform limited to first three", topic: "42", platform: "linkedin", enabled: true,
			length: domain.LengthMedium, want: "#leadership #growth #careers #life #creative #goals #inspo"},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SuggestHashtags(tt.topic, tt.platform, tt.enabled, tt.length))
		})
	}
}

func TestSuggestHashtags_Properties(t *testing.T) {
	topics := []string{"coffee shop launch", "life life life", "#already tagged", "Big SALE now on", "     "}
	for _, length := range domain.Lengths {
		for _, platform := range append(Platforms(), "unknown") {
			for _, topic := range topics {
				res := SuggestHashtags(topic, platform, true, length)
				assert.Equal(t, res, SuggestHashtags(topic, platform, true, length), "deterministic")

				tags := strings.Split(res, " ")
				assert.LessOrEqual(t, len(tags), length.MaxHashtags())
				seen := map[string]bool{}
				for _, tag := range tags {
					assert.True(t, strings.HasPrefix(tag, "#"), tag)
					assert.False(t, seen[tag], "duplicate %s in %q", tag, res)
					seen[tag] = true
				}
			}
		}
	}
}
