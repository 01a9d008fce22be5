package timestep

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalidRate = errors.New("invalid update rate")

type rateKind uint8

const (
	rateDefault rateKind = iota
	rateInterval
	ratePerSecond
	ratePerMinute
)

// UpdateRate describes how often a Scheduler performs an update. It is either
// a fixed interval or a number of updates per second or per minute.
// The zero value is equal to DefaultRate.
type UpdateRate struct {
	kind     rateKind
	interval time.Duration
	count    uint32
}

// DefaultRate performs 60 updates per second.
var DefaultRate = PerSecond(60)

func Interval(interval time.Duration) UpdateRate {
	return UpdateRate{kind: rateInterval, interval: interval}
}

func PerSecond(count uint32) UpdateRate {
	return UpdateRate{kind: ratePerSecond, count: count}
}

func PerMinute(count uint32) UpdateRate {
	return UpdateRate{kind: ratePerMinute, count: count}
}

// ToInterval converts the rate into the duration of a single update.
// A count of zero, a non positive interval, or a count so large that
// the interval would round down to zero yields ErrInvalidRate.
func (r UpdateRate) ToInterval() (time.Duration, error) {
	var interval time.Duration

	switch r.kind {
	case rateDefault:
		return DefaultRate.ToInterval()

	case rateInterval:
		interval = r.interval

	case ratePerSecond, ratePerMinute:
		if r.count == 0 {
			return 0, fmt.Errorf("%w: %s has a count of zero", ErrInvalidRate, r)
		}

		unit := time.Second
		if r.kind == ratePerMinute {
			unit = time.Minute
		}

		interval = unit / time.Duration(r.count)

	default:
		return 0, fmt.Errorf("%w: unknown kind %d", ErrInvalidRate, r.kind)
	}

	if interval <= 0 {
		return 0, fmt.Errorf("%w: interval of %s must be positive", ErrInvalidRate, r)
	}

	return interval, nil
}

func (r UpdateRate) String() string {
	switch r.kind {
	case rateDefault:
		return DefaultRate.String()
	case rateInterval:
		return r.interval.String()
	case ratePerSecond:
		return strconv.FormatUint(uint64(r.count), 10) + "/s"
	case ratePerMinute:
		return strconv.FormatUint(uint64(r.count), 10) + "/m"
	default:
		return "invalid"
	}
}

// ParseUpdateRate parses a rate like "60/s", "90/m" or a
// duration like "16ms". The parsed rate is validated.
func ParseUpdateRate(text string) (UpdateRate, error) {
	text = strings.TrimSpace(text)

	var rate UpdateRate

	if count, unit, ok := strings.Cut(text, "/"); ok {
		n, err := strconv.ParseUint(strings.TrimSpace(count), 10, 32)
		if err != nil {
			return UpdateRate{}, fmt.Errorf("parse count %q: %w", count, err)
		}

		switch strings.TrimSpace(unit) {
		case "s":
			rate = PerSecond(uint32(n))
		case "m":
			rate = PerMinute(uint32(n))
		default:
			return UpdateRate{}, fmt.Errorf("%w: unknown unit %q", ErrInvalidRate, unit)
		}
	} else {
		interval, err := time.ParseDuration(text)
		if err != nil {
			return UpdateRate{}, fmt.Errorf("parse interval: %w", err)
		}

		rate = Interval(interval)
	}

	if _, err := rate.ToInterval(); err != nil {
		return UpdateRate{}, err
	}

	return rate, nil
}

func (r UpdateRate) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *UpdateRate) UnmarshalText(text []byte) error {
	rate, err := ParseUpdateRate(string(text))
	if err != nil {
		return err
	}

	*r = rate
	return nil
}

// UnmarshalYAML accepts the text form, or a plain integer as updates per second.
func (r *UpdateRate) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: expected a scalar in line %d", ErrInvalidRate, value.Line)
	}

	if value.ShortTag() == "!!int" {
		var count uint32
		if err := value.Decode(&count); err != nil {
			return fmt.Errorf("decode update count: %w", err)
		}

		return r.UnmarshalText([]byte(strconv.FormatUint(uint64(count), 10) + "/s"))
	}

	return r.UnmarshalText([]byte(value.Value))
}
