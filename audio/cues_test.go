package audio_test

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/plus3/shapeinvaders/audio"
	"github.com/plus3/shapeinvaders/invaders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for {
		n, ok := s.Stream(buf)
		for _, sample := range buf[:n] {
			peak = max(peak, sample[0], -sample[0], sample[1], -sample[1])
		}
		total += n
		if !ok {
			break
		}
		require.Less(t, total, int(audio.SampleRate)*10, "cue never ends")
	}
	require.NoError(t, s.Err())
	return total, peak
}

func TestCueLengths(t *testing.T) {
	for _, kind := range []invaders.EventKind{
		invaders.EventShot,
		invaders.EventKill,
		invaders.EventWave,
		invaders.EventGameOver,
	} {
		t.Run(kind.String(), func(t *testing.T) {
			s, err := audio.Cue(audio.SampleRate, kind)
			require.NoError(t, err)
			require.NotNil(t, s)

			n, peak := drain(t, s)
			want := audio.SampleRate.N(audio.Duration(kind))
			assert.InDelta(t, want, n, 3)
			assert.Greater(t, peak, 0.0)
			assert.LessOrEqual(t, peak, 1.0)
		})
	}
}

func TestSilentKinds(t *testing.T) {
	s, err := audio.Cue(audio.SampleRate, invaders.EventRestart)
	assert.NoError(t, err)
	assert.Nil(t, s)
	assert.Zero(t, audio.Duration(invaders.EventRestart))
}

func TestCueDurations(t *testing.T) {
	assert.Equal(t, 40*time.Millisecond, audio.Duration(invaders.EventShot))
	assert.Equal(t, 700*time.Millisecond, audio.Duration(invaders.EventGameOver))
	assert.Less(t, audio.Duration(invaders.EventShot), audio.Duration(invaders.EventKill))
}

func TestToneAboveNyquist(t *testing.T) {
	_, err := audio.Cue(beep.SampleRate(1000), invaders.EventShot)
	assert.ErrorContains(t, err, "shot cue")
}
