package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTone(t *testing.T) {
	tbl := []struct {
		in   string
		want Tone
	}{
		{"friendly", ToneFriendly},
		{"WITTY", ToneWitty},
		{"  Luxury ", ToneLuxury},
		{"educational", ToneEducational},
		{"mystery", ToneFriendly},
		{"", ToneFriendly},
	}
	for _, tt := range tbl {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTone(tt.in))
		})
	}
}

func TestParseLength(t *testing.T) {
	assert.Equal(t, LengthShort, ParseLength("short"))
	assert.Equal(t, LengthLong, ParseLength("LONG"))
	assert.Equal(t, LengthMedium, ParseLength("medium"))
	assert.Equal(t, LengthMedium, ParseLength("huge"))
	assert.Equal(t, LengthMedium, ParseLength(""))
}

func TestLength_MaxHashtags(t *testing.T) {
	assert.Equal(t, 4, LengthShort.MaxHashtags())
	assert.Equal(t, 7, LengthMedium.MaxHashtags())
	assert.Equal(t, 10, LengthLong.MaxHashtags())
	assert.Equal(t, 7, Length("other").MaxHashtags())
}
