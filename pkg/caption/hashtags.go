package caption

import (
	"strings"
	"unicode"

	"github.com/umputun/captions/pkg/domain"
)

const maxTopicTags = 3
const maxPlatformTags = 3

// SuggestHashtags builds the hashtag line for a caption.
// Tags derived from the topic come first, then platform tags, then generic ones.
// The result has no duplicates and is capped by length.MaxHashtags. Returns empty string if disabled.
func SuggestHashtags(topic, platform string, enabled bool, length domain.Length) string {
	if !enabled {
		return ""
	}

	tags := make([]string, 0, 16)
	tags = append(tags, topicTags(topic)...)

	platformTags := PlatformTags(platform)
	if len(platformTags) > maxPlatformTags {
		platformTags = platformTags[:maxPlatformTags]
	}
	tags = append(tags, platformTags...)

	genericCount := 5
	if length == domain.LengthShort {
		genericCount = 3
	}
	tags = append(tags, genericHashtags[:genericCount]...)

	limit := length.MaxHashtags()
	seen := make(map[string]bool, len(tags))
	unique := make([]string, 0, limit)
	for _, t := range tags {
		if len(unique) >= limit {
			break
		}
		if seen[t] {
			continue
		}
		seen[t] = true
		unique = append(unique, t)
	}
	return strings.Join(unique, " ")
}

// topicTags makes up to maxTopicTags hashtags from letters-only words of the topic
func topicTags(topic string) []string {
	res := []string{}
	for _, w := range strings.Fields(topic) {
		if len(res) >= maxTopicTags {
			break
		}
		if !isAlpha(w) {
			continue
		}
		res = append(res, "#"+strings.ToLower(w))
	}
	return res
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
