package blog

import (
	"testing"
	"time"

	"github.com/daniilsolovey/blog-cms/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyReferer(t *testing.T) {
	tests := []struct {
		referer *string
		want    string
	}{
		{nil, SourceDirect},
		{strPtr(""), SourceDirect},
		{strPtr("not a url"), SourceDirect},
		{strPtr("https://www.google.com/search?q=go"), SourceSearch},
		{strPtr("https://news.google.co.uk/"), SourceSearch},
		{strPtr("https://duckduckgo.com/?q=blog"), SourceSearch},
		{strPtr("https://t.co/abc"), SourceSocial},
		{strPtr("https://m.facebook.com/story"), SourceSocial},
		{strPtr("https://old.reddit.com/r/golang"), SourceSocial},
		{strPtr("https://blog.example.org/post"), SourceReferral},
		{strPtr("https://notgoogle.example/"), SourceReferral},
	}

	for _, tt := range tests {
		name := "<nil>"
		if tt.referer != nil {
			name = *tt.referer
		}
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyReferer(tt.referer))
		})
	}
}

func TestTrafficSources(t *testing.T) {
	rows := []db.RefererCount{
		{Referer: nil, Visits: 4},
		{Referer: strPtr(""), Visits: 1},
		{Referer: strPtr("https://www.google.com/"), Visits: 3},
		{Referer: strPtr("https://t.co/x"), Visits: 1},
		{Referer: strPtr("https://blog.example.org/"), Visits: 1},
	}

	want := []TrafficSource{
		{Source: SourceDirect, Visits: 5, Percentage: 50},
		{Source: SourceSearch, Visits: 3, Percentage: 30},
		{Source: SourceReferral, Visits: 1, Percentage: 10},
		{Source: SourceSocial, Visits: 1, Percentage: 10},
	}
	assert.Equal(t, want, trafficSources(rows))
	assert.Empty(t, trafficSources(nil))
}

func TestEngagement(t *testing.T) {
	t0 := time.Date(2024, 1, 14, 12, 0, 0, 0, time.UTC)
	hits := []db.VisitorHit{
		{IPAddress: "10.0.0.1", ViewedAt: t0},
		{IPAddress: "10.0.0.1", ViewedAt: t0.Add(5 * time.Minute)},
		{IPAddress: "10.0.0.1", ViewedAt: t0.Add(10 * time.Minute)},
		{IPAddress: "10.0.0.1", ViewedAt: t0.Add(2 * time.Hour)},
		{IPAddress: "10.0.0.2", ViewedAt: t0},
	}

	e := engagement(hits, 30*time.Minute)

	assert.Equal(t, 5, e.PageViews)
	assert.Equal(t, 2, e.UniqueVisitors)
	// three sessions, two of them single-view
	assert.Equal(t, 66.67, e.BounceRate)
	assert.Equal(t, 200.0, e.AvgSessionDuration)

	empty := engagement(nil, 30*time.Minute)
	assert.Equal(t, Engagement{}, empty)
}

func TestAnalyticsWindow(t *testing.T) {
	now := time.Date(2024, 1, 14, 15, 30, 0, 0, time.UTC)
	m := &AnalyticsManager{base: &base{now: func() time.Time { return now }}}

	since, err := m.since(1)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC), since)

	since, err = m.since(7)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), since)

	_, err = m.since(0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = m.since(maxAnalyticsDays + 1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0.0, percentage(1, 0))
	assert.Equal(t, 66.67, percentage(2, 3))
	assert.Equal(t, 100.0, percentage(4, 4))
	assert.Equal(t, 1.23, roundTo(1.2345, 2))
}
