package wezzle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlinkFixed(t *testing.T) {
	n := newTile()
	n.SetVisible(false)
	b, err := NewBlink(n, BlinkConfig{Kind: BlinkFixed, Duration: time.Second})
	require.NoError(t, err)
	require.NoError(t, b.Start())
	assert.True(t, n.Visible(), "blink starts shown")

	b.NextFrame(250 * time.Millisecond)
	assert.False(t, n.Visible())
	b.NextFrame(250 * time.Millisecond)
	assert.True(t, n.Visible())

	b.NextFrame(500 * time.Millisecond)
	assert.True(t, b.Finished())
	assert.Equal(t, 4, b.Toggles())

	b.Finish()
	assert.False(t, n.Visible(), "finish restores the original visibility")
	assert.Zero(t, n.Leased())
}

func TestBlinkAsymmetricPhases(t *testing.T) {
	n := newTile()
	b, _ := NewBlink(n, BlinkConfig{
		Kind:       BlinkContinuous,
		ShowPeriod: 100 * time.Millisecond,
		HidePeriod: 300 * time.Millisecond,
	})
	require.NoError(t, b.Start())

	b.NextFrame(100 * time.Millisecond)
	assert.False(t, n.Visible())
	b.NextFrame(250 * time.Millisecond)
	assert.False(t, n.Visible())
	b.NextFrame(50 * time.Millisecond)
	assert.True(t, n.Visible())
}

func TestBlinkContinuousNeverFinishes(t *testing.T) {
	b, _ := NewBlink(newTile(), BlinkConfig{Kind: BlinkContinuous})
	require.NoError(t, b.Start())
	b.NextFrame(10 * time.Second)
	assert.False(t, b.Finished())
	assert.Equal(t, 40, b.Toggles())
}

func TestBlinkCleanUpRestores(t *testing.T) {
	n := newTile()
	b, _ := NewBlink(n, BlinkConfig{Kind: BlinkContinuous})
	require.NoError(t, b.Start())
	b.NextFrame(250 * time.Millisecond)
	require.False(t, n.Visible())

	b.CleanUp()
	assert.True(t, n.Visible())
}

func TestBlinkInvalidConfig(t *testing.T) {
	_, err := NewBlink(newTile(), BlinkConfig{Kind: BlinkFixed})
	assert.ErrorIs(t, err, ErrInvalidConfig, "fixed blink needs a duration")
	_, err = NewBlink(newTile(), BlinkConfig{Kind: BlinkKind(5)})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestBlinkFixedTogglesIndependentOfSplit(t *testing.T) {
	cfg := BlinkConfig{Kind: BlinkFixed, Duration: 500 * time.Millisecond, ShowPeriod: 100 * time.Millisecond, HidePeriod: 100 * time.Millisecond}

	chunked, _ := NewBlink(newTile(), cfg)
	require.NoError(t, chunked.Start())
	for i := 0; i < 20; i++ {
		chunked.NextFrame(100 * time.Millisecond)
	}

	whole, _ := NewBlink(newTile(), cfg)
	require.NoError(t, whole.Start())
	whole.NextFrame(2 * time.Second)

	assert.Equal(t, 5, chunked.Toggles())
	assert.Equal(t, 5, whole.Toggles())
	assert.True(t, whole.Finished())
}

func TestBlinkContinuousScenario(t *testing.T) {
	n := newTile()
	b, _ := NewBlink(n, BlinkConfig{Kind: BlinkContinuous, ShowPeriod: 100 * time.Millisecond, HidePeriod: 100 * time.Millisecond})
	require.NoError(t, b.Start())

	for elapsed := time.Duration(0); elapsed < 1050*time.Millisecond; elapsed += 10 * time.Millisecond {
		b.NextFrame(10 * time.Millisecond)
	}
	assert.Equal(t, 10, b.Toggles())
	assert.False(t, b.Finished())
	assert.True(t, n.Visible(), "an even number of toggles leaves the entity shown")
}
