package server

import (
	"time"

	"github.com/umputun/captions/pkg/domain"
)

// captionRecord is a stored generation as returned by the captions list
type captionRecord struct {
	ID              string     `json:"_id" jsonschema:"description=Record identifier"`
	Topic           string     `json:"topic" jsonschema:"description=Main topic or keywords for the caption"`
	Tone            string     `json:"tone" jsonschema:"default=friendly,description=Tone/style: friendly professional witty bold luxury casual educational"`
	Platform        string     `json:"platform" jsonschema:"default=instagram,description=Target platform: instagram tiktok twitter linkedin youtube"`
	Length          string     `json:"length" jsonschema:"default=medium,enum=short,enum=medium,enum=long,description=Caption length"`
	IncludeEmojis   bool       `json:"include_emojis" jsonschema:"default=true,description=Whether to include emojis"`
	IncludeHashtags bool       `json:"include_hashtags" jsonschema:"default=true,description=Whether to include hashtags"`
	Variants        []string   `json:"variants" jsonschema:"description=Generated caption options"`
	Favorite        bool       `json:"favorite" jsonschema:"default=false,description=User marked as favorite"`
	FavoriteIndex   *int       `json:"favorite_index,omitempty" jsonschema:"description=Index of the favorite variant"`
	GeneratedAt     time.Time  `json:"generated_at" jsonschema:"description=Generation time"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty" jsonschema:"description=Last update time"`
}

func toCaptionRecord(g domain.Generation) captionRecord {
	variants := g.Variants
	if variants == nil {
		variants = []string{}
	}
	return captionRecord{
		ID:              g.ID,
		Topic:           g.Topic,
		Tone:            g.Tone,
		Platform:        g.Platform,
		Length:          g.Length,
		IncludeEmojis:   g.IncludeEmojis,
		IncludeHashtags: g.IncludeHashtags,
		Variants:        variants,
		Favorite:        g.Favorite,
		FavoriteIndex:   g.FavoriteIndex,
		GeneratedAt:     g.GeneratedAt,
		UpdatedAt:       g.UpdatedAt,
	}
}
