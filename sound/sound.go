package sound

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate is shared with the audio context the clips are played on.
const SampleRate = beep.SampleRate(44100)

// tone is a sine wave that fades out linearly over its length.
type tone struct {
	freq     float64
	phase    float64
	position int
	total    int
}

// Tone streams a single faded sine of the given length.
func Tone(freq float64, d time.Duration) beep.Streamer {
	return &tone{freq: freq, total: SampleRate.N(d)}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}
		fade := 1 - float64(t.position)/float64(t.total)
		val := math.Sin(2*math.Pi*t.phase) * fade

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(SampleRate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// Step is the short blip played for every accepted move.
func Step() beep.Streamer {
	return Tone(660, 50*time.Millisecond)
}

// Victory is a rising arpeggio played on reaching home.
func Victory() beep.Streamer {
	return beep.Seq(
		Tone(523.25, 120*time.Millisecond),
		Tone(659.25, 120*time.Millisecond),
		Tone(783.99, 120*time.Millisecond),
		Tone(1046.50, 300*time.Millisecond),
	)
}

// PCM renders s to 16 bit little endian stereo at volume in [0, 1].
func PCM(s beep.Streamer, volume float64) []byte {
	gained := &effects.Gain{Streamer: s, Gain: volume - 1}
	buf := make([][2]float64, 512)
	out := make([]byte, 0, len(buf)*4)
	for {
		n, ok := gained.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				v = math.Max(-1, math.Min(1, v))
				out = binary.LittleEndian.AppendUint16(out, uint16(int16(v*math.MaxInt16)))
			}
		}
		if !ok {
			return out
		}
	}
}
