package service

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var trackingIDPattern = regexp.MustCompile(`^CC-[0-9A-Z]+-[0-9A-Z]{6}$`)

func TestGenerateTrackingIDFormat(t *testing.T) {
	id := GenerateTrackingID()
	require.Regexp(t, trackingIDPattern, id)
	assert.True(t, strings.HasPrefix(id, "CC-"))
	assert.Equal(t, id, strings.ToUpper(id))
}

func TestGenerateTrackingIDUniqueness(t *testing.T) {
	seen := make(map[string]bool, 10000)
	for i := 0; i < 10000; i++ {
		id := GenerateTrackingID()
		require.False(t, seen[id], "duplicate tracking ID %s", id)
		seen[id] = true
	}
}
