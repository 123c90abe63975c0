package project

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ErrMalformedDate indicates an event date without a YYYY-MM-DD prefix.
var ErrMalformedDate = errors.New("malformed event date")

// DateOnly extracts the calendar day from an ISO-like date string and
// returns it as local midnight. The date portion is taken by string
// splitting, never by parsing the whole value as UTC and re-localizing,
// so a trailing time or offset cannot shift the day.
func DateOnly(s string) (time.Time, error) {
	datePart := s
	if i := strings.IndexAny(datePart, "T "); i >= 0 {
		datePart = datePart[:i]
	}

	parts := strings.Split(datePart, "-")
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}

	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	// time.Date normalizes out-of-range components (Feb 30 becomes Mar 2);
	// reject anything that did not round-trip.
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}

	return d, nil
}

// EndOfThisWeek returns the upcoming Sunday. When today is itself a
// Sunday the window rolls a full week forward, so the result is never
// today.
func EndOfThisWeek(today time.Time) time.Time {
	wd := int(today.Weekday()) // 0=Sunday .. 6=Saturday
	if wd == 0 {
		return today.AddDate(0, 0, 7)
	}
	return today.AddDate(0, 0, 7-wd)
}

// EndOfNextWeek returns the Sunday one week after thisWeekEnd.
func EndOfNextWeek(thisWeekEnd time.Time) time.Time {
	return thisWeekEnd.AddDate(0, 0, 7)
}

// WeekBuckets holds the this-week/next-week partition of projects.
type WeekBuckets struct {
	ThisWeek []Summary `json:"this_week"`
	NextWeek []Summary `json:"next_week"`
}

// PartitionByWeek splits projects into this-week and next-week buckets
// relative to today. thisWeek covers today <= d <= endOfThisWeek(today),
// nextWeek covers endOfThisWeek(today) < d <= endOfNextWeek. Both buckets
// are ordered ascending by event date. No status filtering happens here.
func PartitionByWeek(projects []Summary, today time.Time) (WeekBuckets, error) {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.Local)
	thisEnd := EndOfThisWeek(day)
	nextEnd := EndOfNextWeek(thisEnd)

	// Empty buckets stay non-nil so they serialize as [] rather than null.
	buckets := WeekBuckets{ThisWeek: []Summary{}, NextWeek: []Summary{}}
	for _, p := range projects {
		d, err := DateOnly(p.EventDate)
		if err != nil {
			return WeekBuckets{}, err
		}
		switch {
		case d.Before(day) || d.After(nextEnd):
			continue
		case !d.After(thisEnd):
			buckets.ThisWeek = append(buckets.ThisWeek, p)
		default:
			buckets.NextWeek = append(buckets.NextWeek, p)
		}
	}

	sortByEventDate(buckets.ThisWeek)
	sortByEventDate(buckets.NextWeek)

	return buckets, nil
}

// StatusBuckets holds the by-status display partition of projects.
type StatusBuckets struct {
	Working   []Summary `json:"working"`
	Planning  []Summary `json:"planning"`
	Completed []Summary `json:"completed"`
	Cancelled []Summary `json:"cancelled"`
}

// PartitionByStatus places each project in exactly one display bucket,
// preserving the order of the input within each bucket. Projects with an
// unrecognized status are dropped rather than misfiled.
func PartitionByStatus(projects []Summary) StatusBuckets {
	buckets := StatusBuckets{
		Working:   []Summary{},
		Planning:  []Summary{},
		Completed: []Summary{},
		Cancelled: []Summary{},
	}
	for _, p := range projects {
		switch p.Status.Bucket() {
		case BucketWorking:
			buckets.Working = append(buckets.Working, p)
		case BucketPlanning:
			buckets.Planning = append(buckets.Planning, p)
		case BucketCompleted:
			buckets.Completed = append(buckets.Completed, p)
		case BucketCancelled:
			buckets.Cancelled = append(buckets.Cancelled, p)
		}
	}
	return buckets
}

// sortByEventDate orders summaries ascending by event date. The date
// format is fixed-width, so string comparison is sufficient and stable.
func sortByEventDate(projects []Summary) {
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].EventDate < projects[j].EventDate
	})
}
