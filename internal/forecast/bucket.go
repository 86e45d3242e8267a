package forecast

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// ErrUnknownPeriod is returned when a period mode is neither weekly nor monthly
var ErrUnknownPeriod = errors.New("unknown period")

// Period is the bucketing granularity
type Period string

const (
	Weekly  Period = "weekly"
	Monthly Period = "monthly"
)

// ParsePeriod validates a period name
func ParsePeriod(s string) (Period, error) {
	switch p := Period(s); p {
	case Weekly, Monthly:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPeriod, s)
}

// Horizon returns the number of days to extrapolate past the last bucket.
// A month is approximated as 30 days.
func (p Period) Horizon() int {
	if p == Weekly {
		return 7
	}
	return 30
}

// Start returns the first day of the bucket containing date
func (p Period) Start(date time.Time) time.Time {
	d := calendarDate(date)
	if p == Weekly {
		// Monday = 0
		offset := (int(d.Weekday()) + 6) % 7
		return d.AddDate(0, 0, -offset)
	}
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// Observation is a single dated amount
type Observation struct {
	Amount decimal.Decimal
	Date   time.Time
}

// Bucket is the aggregated amount of one calendar week or month
type Bucket struct {
	PeriodStart time.Time
	TotalAmount decimal.Decimal
}

// BucketObservations groups observations into period buckets sorted by start date.
// Periods without observations produce no bucket.
func BucketObservations(observations []Observation, period Period) []Bucket {
	totals := make(map[time.Time]decimal.Decimal)
	for _, o := range observations {
		key := period.Start(o.Date)
		totals[key] = totals[key].Add(o.Amount)
	}

	buckets := make([]Bucket, 0, len(totals))
	for start, total := range totals {
		buckets = append(buckets, Bucket{PeriodStart: start, TotalAmount: total})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].PeriodStart.Before(buckets[j].PeriodStart)
	})
	return buckets
}

// calendarDate drops the time of day, keeping the date as seen in its own location
func calendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
