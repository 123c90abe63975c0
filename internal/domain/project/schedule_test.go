package project

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func localDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestDateOnly_StripsTimeAndOffset(t *testing.T) {
	cases := []string{
		"2026-02-05",
		"2026-02-05T00:00:00",
		"2026-02-05T03:00:00Z",
		"2026-02-05T23:59:59-03:00",
		"2026-02-05 14:30:00",
	}
	want := localDate(2026, time.February, 5)

	for _, in := range cases {
		got, err := DateOnly(in)
		require.NoError(t, err, "input %q", in)
		require.True(t, got.Equal(want), "input %q: got %v", in, got)
		h, m, s := got.Clock()
		require.Zero(t, h, "input %q", in)
		require.Zero(t, m, "input %q", in)
		require.Zero(t, s, "input %q", in)
	}
}

func TestDateOnly_RejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"not-a-date",
		"2026/02/05",
		"2026-2-5",
		"20260205",
		"2026-13-01",
		"2026-02-30",
		"T10:00:00",
		"abcd-ef-gh",
	}
	for _, in := range cases {
		_, err := DateOnly(in)
		require.ErrorIs(t, err, ErrMalformedDate, "input %q", in)
	}
}

func TestEndOfThisWeek_IsAlwaysUpcomingSunday(t *testing.T) {
	// Walk two full weeks of "today" values.
	start := localDate(2026, time.February, 2) // a Monday
	for i := 0; i < 14; i++ {
		today := start.AddDate(0, 0, i)
		end := EndOfThisWeek(today)
		require.Equal(t, time.Sunday, end.Weekday(), "today %v", today)
		require.True(t, end.After(today), "today %v: end %v not after today", today, end)
	}
}

func TestEndOfThisWeek_SundayRollsForward(t *testing.T) {
	sunday := localDate(2026, time.February, 8)
	require.Equal(t, time.Sunday, sunday.Weekday())

	end := EndOfThisWeek(sunday)
	require.True(t, end.Equal(sunday.AddDate(0, 0, 7)), "got %v", end)
}

func TestEndOfNextWeek(t *testing.T) {
	today := localDate(2026, time.February, 3) // Tuesday
	thisEnd := EndOfThisWeek(today)
	require.True(t, thisEnd.Equal(localDate(2026, time.February, 8)), "got %v", thisEnd)

	nextEnd := EndOfNextWeek(thisEnd)
	require.True(t, nextEnd.Equal(localDate(2026, time.February, 15)), "got %v", nextEnd)
}

func TestPartitionByWeek_Boundaries(t *testing.T) {
	today := localDate(2026, time.February, 3) // Tuesday

	projects := []Summary{
		{ID: "past", EventDate: "2026-02-02"},
		{ID: "today", EventDate: "2026-02-03"},
		{ID: "this-end", EventDate: "2026-02-08T00:00:00"},  // boundary Sunday, inclusive
		{ID: "next-start", EventDate: "2026-02-09T00:00:00"}, // Monday of next week
		{ID: "utc-suffix", EventDate: "2026-02-05T03:00:00Z"},
		{ID: "next-end", EventDate: "2026-02-15"},
		{ID: "beyond", EventDate: "2026-02-16"},
	}

	buckets, err := PartitionByWeek(projects, today)
	require.NoError(t, err)

	require.Equal(t, []string{"today", "utc-suffix", "this-end"}, ids(buckets.ThisWeek))
	require.Equal(t, []string{"next-start", "next-end"}, ids(buckets.NextWeek))
}

func TestPartitionByWeek_SortsAscending(t *testing.T) {
	today := localDate(2026, time.February, 3)

	projects := []Summary{
		{ID: "c", EventDate: "2026-02-07"},
		{ID: "a", EventDate: "2026-02-04"},
		{ID: "b", EventDate: "2026-02-05"},
	}

	buckets, err := PartitionByWeek(projects, today)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, ids(buckets.ThisWeek))
}

func TestPartitionByWeek_StableForEqualDates(t *testing.T) {
	today := localDate(2026, time.February, 3)

	projects := []Summary{
		{ID: "first", EventDate: "2026-02-05"},
		{ID: "second", EventDate: "2026-02-05"},
		{ID: "third", EventDate: "2026-02-05"},
	}

	buckets, err := PartitionByWeek(projects, today)
	require.NoError(t, err)
	require.Equal(t, []string{"first", "second", "third"}, ids(buckets.ThisWeek))
}

func TestPartitionByWeek_MalformedDateFailsFast(t *testing.T) {
	today := localDate(2026, time.February, 3)

	_, err := PartitionByWeek([]Summary{{ID: "bad", EventDate: "soon"}}, today)
	require.ErrorIs(t, err, ErrMalformedDate)
}

func TestPartitionByWeek_DoesNotFilterByStatus(t *testing.T) {
	today := localDate(2026, time.February, 3)

	projects := []Summary{
		{ID: "done", EventDate: "2026-02-04", Status: StatusCompleted},
		{ID: "dropped", EventDate: "2026-02-05", Status: StatusCancelled},
	}

	buckets, err := PartitionByWeek(projects, today)
	require.NoError(t, err)
	require.Equal(t, []string{"done", "dropped"}, ids(buckets.ThisWeek))
}

func TestPartitionByWeek_IgnoresTodayClock(t *testing.T) {
	// A late-evening "today" must classify the same as midnight.
	today := time.Date(2026, time.February, 3, 23, 45, 0, 0, time.Local)

	buckets, err := PartitionByWeek([]Summary{{ID: "p", EventDate: "2026-02-03"}}, today)
	require.NoError(t, err)
	require.Equal(t, []string{"p"}, ids(buckets.ThisWeek))
}

func TestPartitionByStatus_TotalAndNonOverlapping(t *testing.T) {
	projects := []Summary{
		{ID: "p1", Status: StatusProducing},
		{ID: "p2", Status: StatusPlanning},
		{ID: "p3", Status: StatusConfirmed},
		{ID: "p4", Status: StatusCompleted},
		{ID: "p5", Status: StatusCancelled},
		{ID: "p6", Status: StatusProducing},
	}

	buckets := PartitionByStatus(projects)

	require.Equal(t, []string{"p1", "p3", "p6"}, ids(buckets.Working))
	require.Equal(t, []string{"p2"}, ids(buckets.Planning))
	require.Equal(t, []string{"p4"}, ids(buckets.Completed))
	require.Equal(t, []string{"p5"}, ids(buckets.Cancelled))

	// Lossless: every input appears exactly once across the four buckets.
	seen := map[string]int{}
	for _, bucket := range [][]Summary{buckets.Working, buckets.Planning, buckets.Completed, buckets.Cancelled} {
		for _, p := range bucket {
			seen[p.ID]++
		}
	}
	require.Len(t, seen, len(projects))
	for id, n := range seen {
		require.Equal(t, 1, n, "project %s", id)
	}
}

func TestPartitionByStatus_DropsUnknownStatus(t *testing.T) {
	buckets := PartitionByStatus([]Summary{
		{ID: "p1", Status: StatusPlanning},
		{ID: "p2", Status: Status("BAKING")},
	})

	require.Equal(t, []string{"p1"}, ids(buckets.Planning))
	require.Empty(t, buckets.Working)
	require.Empty(t, buckets.Completed)
	require.Empty(t, buckets.Cancelled)
}

func TestPartitionEmptyBucketsAreNotNil(t *testing.T) {
	today := time.Date(2026, time.February, 3, 0, 0, 0, 0, time.Local)

	weeks, err := PartitionByWeek(nil, today)
	require.NoError(t, err)
	require.NotNil(t, weeks.ThisWeek)
	require.NotNil(t, weeks.NextWeek)

	statuses := PartitionByStatus(nil)
	require.NotNil(t, statuses.Working)
	require.NotNil(t, statuses.Planning)
	require.NotNil(t, statuses.Completed)
	require.NotNil(t, statuses.Cancelled)
}

func TestStatusBucketMapping(t *testing.T) {
	require.Equal(t, BucketWorking, StatusProducing.Bucket())
	require.Equal(t, BucketWorking, StatusConfirmed.Bucket())
	require.Equal(t, BucketPlanning, StatusPlanning.Bucket())
	require.Equal(t, BucketCompleted, StatusCompleted.Bucket())
	require.Equal(t, BucketCancelled, StatusCancelled.Bucket())
	require.Equal(t, Bucket(""), Status("BAKING").Bucket())
}

func ids(projects []Summary) []string {
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.ID)
	}
	return out
}
