package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfigDefaults tests DefaultConfig values
func TestConfigDefaults(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, "Move the box", config.Title)
	assert.Equal(t, 1000, config.DurationMs)
	assert.Equal(t, time.Second, config.Duration())
	assert.Equal(t, "ease-in-out", config.Easing)
	assert.Equal(t, "restart", config.Overlap)
	assert.Equal(t, float32(100), config.ElementWidth)
	assert.False(t, config.TerminalMode)
	assert.True(t, config.RememberWindow)
}

func TestConfigDurationFallback(t *testing.T) {
	var nilConfig *Config
	assert.Equal(t, DefaultDuration, nilConfig.Duration())
	assert.Equal(t, DefaultDuration, (&Config{DurationMs: -5}).Duration())
	assert.Equal(t, 250*time.Millisecond, (&Config{DurationMs: 250}).Duration())
}

func TestParseOverlapPolicy(t *testing.T) {
	testCases := []struct {
		input    string
		expected OverlapPolicy
		wantErr  bool
	}{
		{input: "restart", expected: OverlapRestart},
		{input: " IGNORE ", expected: OverlapIgnore},
		{input: "race", expected: OverlapRace},
		{input: "queue", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			policy, err := ParseOverlapPolicy(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidOverlapPolicy)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, policy)
		})
	}

	policy, err := (&Config{}).OverlapPolicy()
	require.NoError(t, err)
	assert.Equal(t, OverlapRestart, policy)
}

func TestGeometryTargets(t *testing.T) {
	g := NewGeometry(400, 100, 10, 10, 20)

	assert.Equal(t, float32(280), g.MaxTranslationX)
	assert.Equal(t, float32(280), g.TargetFor(AtLeft))
	assert.Equal(t, float32(10), g.TargetFor(AtRight))
}

func TestToggleStateFlip(t *testing.T) {
	state := AtLeft
	for i := 1; i <= 5; i++ {
		state = state.Flip()
		if i%2 == 0 {
			assert.Equal(t, AtLeft, state)
		} else {
			assert.Equal(t, AtRight, state)
		}
	}
	assert.Equal(t, "right", AtRight.String())
	assert.Equal(t, "left", AtLeft.String())
}

func TestFormatPx(t *testing.T) {
	assert.Equal(t, "42 px", FormatPx(42))
	assert.Equal(t, "43 px", FormatPx(42.5))
	assert.Equal(t, "0 px", FormatPx(0))
	assert.Equal(t, "-3 px", FormatPx(-3.2))
	assert.Equal(t, "1280 px", FormatPx(1280))
}

func TestClampAndLerp(t *testing.T) {
	assert.Equal(t, 5, Clamp(7, 0, 5))
	assert.Equal(t, 0, Clamp(-1, 0, 5))
	assert.Equal(t, float32(0.5), Clamp(float32(0.5), 0, 1))
	assert.Equal(t, float32(50), Lerp(float32(0), 100, 0.5))
	assert.Equal(t, 10.0, Lerp(10.0, 280.0, 0))
}
