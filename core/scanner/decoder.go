package scanner

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"
)

// KeyEnter is the key name of the terminator.
const KeyEnter = "Enter"

// Key is a single key press as reported by the input device.
type Key struct {
	// Value is either a single character or a key name such as "Enter" or "Shift".
	Value string    `json:"key"`
	At    time.Time `json:"at"`
}

// Event is a decoded scan.
type Event struct {
	Code       string    `json:"code"`
	ObservedAt time.Time `json:"observed_at"`
}

// Decoder turns keys into scan events. It is not safe for concurrent use.
type Decoder struct {
	gap       time.Duration
	minLength int
	buf       strings.Builder
	last      time.Time
}

// NewDecoder creates a decoder with the given timings.
func NewDecoder(cfg Config) *Decoder {
	minLength := cfg.MinLength
	if minLength <= 0 {
		minLength = 4
	}
	return &Decoder{gap: cfg.InterKeyGap(), minLength: minLength}
}

// Feed consumes one key. It returns an event when the key completes a read.
func (d *Decoder) Feed(k Key) (Event, bool) {
	if d.buf.Len() > 0 && k.At.Sub(d.last) >= d.gap {
		d.buf.Reset()
	}
	d.last = k.At

	if k.Value == KeyEnter || k.Value == "\n" || k.Value == "\r" {
		return d.flush(k.At, 1)
	}

	// Modifier and navigation keys carry names, not characters.
	if utf8.RuneCountInString(k.Value) != 1 {
		return Event{}, false
	}
	d.buf.WriteString(k.Value)
	return Event{}, false
}

// Expire is called when the flush timer fires. Buffers shorter than
// MinLength are dropped silently.
func (d *Decoder) Expire(at time.Time) (Event, bool) {
	return d.flush(at, d.minLength)
}

// Pending returns the number of buffered runes.
func (d *Decoder) Pending() int {
	return utf8.RuneCountInString(d.buf.String())
}

// Reset drops the in-flight buffer.
func (d *Decoder) Reset() {
	d.buf.Reset()
}

func (d *Decoder) flush(at time.Time, minRunes int) (Event, bool) {
	text := d.buf.String()
	d.buf.Reset()
	if text == "" || utf8.RuneCountInString(text) < minRunes {
		return Event{}, false
	}
	return Event{Code: strings.ToUpper(text), ObservedAt: at}, true
}

// Run decodes keys from in and sends events to out until ctx is done or in
// is closed. The flush timer is stopped on return.
func Run(ctx context.Context, cfg Config, in <-chan Key, out chan<- Event) error {
	d := NewDecoder(cfg)
	timeout := cfg.FlushTimeout()

	timer := time.NewTimer(timeout)
	timer.Stop()
	defer timer.Stop()

	emit := func(ev Event) error {
		select {
		case out <- ev:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case k, ok := <-in:
			if !ok {
				return nil
			}
			ev, done := d.Feed(k)
			if d.Pending() > 0 {
				timer.Reset(timeout)
			} else {
				timer.Stop()
			}
			if done {
				if err := emit(ev); err != nil {
					return err
				}
			}

		case now := <-timer.C:
			if ev, done := d.Expire(now); done {
				if err := emit(ev); err != nil {
					return err
				}
			}
		}
	}
}
