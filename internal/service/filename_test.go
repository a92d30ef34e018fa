package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOwnerToken(t *testing.T) {
	tests := []struct {
		filename string
		token    string
		ok       bool
	}{
		{"alice_1750000001.jpg", "alice", true},
		{"bob_1750000003_part2.mp4", "bob", true},
		{"under_score_1750000004.png", "under_score", true},
		{"no-marker.jpg", "", false},
		{"_1750000001.jpg", "", false},
		{"", "", false},
		{"alice.jpg", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			token, ok := ParseOwnerToken(tt.filename)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.token, token)
		})
	}
}

func TestMatchesClass(t *testing.T) {
	assert.True(t, matchesClass("a_175.jpg", TypeImages))
	assert.True(t, matchesClass("a_175.JPEG", TypeImages))
	assert.True(t, matchesClass("a_175.png", TypeImages))
	assert.False(t, matchesClass("a_175.gif", TypeImages))
	assert.False(t, matchesClass("a_175.mp4", TypeImages))

	assert.True(t, matchesClass("a_175.mp4", TypeVideos))
	assert.True(t, matchesClass("a_175.MOV", TypeVideos))
	assert.True(t, matchesClass("a_175.avi", TypeVideos))
	assert.True(t, matchesClass("a_175.mkv", TypeVideos))
	assert.False(t, matchesClass("a_175.jpg", TypeVideos))

	assert.False(t, matchesClass("a_175.jpg", "other"))
}
