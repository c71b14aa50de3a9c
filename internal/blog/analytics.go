package blog

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/daniilsolovey/blog-cms/internal/db"
)

const (
	maxAnalyticsDays    = 365
	recentActivityLimit = 10

	SourceDirect   = "direct"
	SourceSearch   = "search"
	SourceSocial   = "social"
	SourceReferral = "referral"
)

var (
	searchEngines  = []string{"google.", "bing.com", "yahoo.", "duckduckgo.com", "yandex.", "baidu.com", "ecosia.org"}
	socialNetworks = []string{
		"facebook.com", "fb.me", "twitter.com", "t.co", "x.com", "instagram.com", "linkedin.com", "lnkd.in",
		"reddit.com", "pinterest.com", "youtube.com", "tiktok.com", "vk.com", "t.me", "news.ycombinator.com",
	}
)

type AnalyticsManager struct {
	*base
	views ViewCache
}

// PostAnalytics summarises views and comments of one post, or of the whole site when postID is nil.
func (m *AnalyticsManager) PostAnalytics(ctx context.Context, postID *int, days int) (*PostAnalytics, error) {
	since, err := m.since(days)
	if err != nil {
		return nil, err
	}

	if postID != nil {
		post, err := m.db.PostByID(ctx, *postID)
		if err != nil {
			return nil, fmt.Errorf("db get post by id: %w", err)
		} else if post == nil {
			return nil, ErrPostNotFound
		}
	}

	totals, err := m.db.PostViewTotals(ctx, postID, since)
	if err != nil {
		return nil, fmt.Errorf("db get view totals: %w", err)
	}

	comments, err := m.db.CommentsSince(ctx, postID, since)
	if err != nil {
		return nil, fmt.Errorf("db count comments: %w", err)
	}

	daily, err := m.db.DailyPostViews(ctx, postID, since, m.now())
	if err != nil {
		return nil, fmt.Errorf("db get daily views: %w", err)
	}

	return &PostAnalytics{
		Views:       totals.Views,
		UniqueViews: totals.UniqueViews,
		Comments:    comments,
		DailyStats:  daily,
	}, nil
}

func (m *AnalyticsManager) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	counts, err := m.db.EntityCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get entity counts: %w", err)
	}

	activity, err := m.db.RecentActivity(ctx, recentActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("db get recent activity: %w", err)
	}

	return &DashboardStats{EntityCounts: counts, RecentActivity: activity}, nil
}

func (m *AnalyticsManager) PopularPosts(ctx context.Context, limit, days int) ([]db.PopularPost, error) {
	since, err := m.since(days)
	if err != nil {
		return nil, err
	}

	posts, err := m.db.PopularPosts(ctx, limit, since)
	if err != nil {
		return nil, fmt.Errorf("db get popular posts: %w", err)
	}

	return posts, nil
}

// TrafficSources groups page views by referer kind, largest first.
func (m *AnalyticsManager) TrafficSources(ctx context.Context, days int) ([]TrafficSource, error) {
	since, err := m.since(days)
	if err != nil {
		return nil, err
	}

	rows, err := m.db.RefererCounts(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("db get referer counts: %w", err)
	}

	return trafficSources(rows), nil
}

func (m *AnalyticsManager) UserEngagement(ctx context.Context, days int) (*Engagement, error) {
	since, err := m.since(days)
	if err != nil {
		return nil, err
	}

	hits, err := m.db.VisitorHits(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("db get visitor hits: %w", err)
	}

	comments, err := m.db.CommentsSince(ctx, nil, since)
	if err != nil {
		return nil, fmt.Errorf("db count comments: %w", err)
	}

	counts, err := m.db.EntityCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get entity counts: %w", err)
	}

	e := engagement(hits, m.opts.SessionGap)
	if counts.PublishedPosts > 0 {
		e.CommentsPerPost = roundTo(float64(comments)/float64(counts.PublishedPosts), 2)
	}

	return &e, nil
}

func (m *AnalyticsManager) SearchKeywords(ctx context.Context, limit, days int) ([]Keyword, error) {
	since, err := m.since(days)
	if err != nil {
		return nil, err
	}

	rows, total, err := m.db.SearchKeywords(ctx, limit, since)
	if err != nil {
		return nil, fmt.Errorf("db get search keywords: %w", err)
	}

	keywords := make([]Keyword, 0, len(rows))
	for _, r := range rows {
		keywords = append(keywords, Keyword{Keyword: r.Keyword, Searches: r.Searches, Percentage: percentage(r.Searches, total)})
	}

	return keywords, nil
}

// RecordPageView stores a page view unless the visitor already viewed the path within the window.
func (m *AnalyticsManager) RecordPageView(ctx context.Context, in PageViewInput) (bool, error) {
	path := strings.TrimSpace(in.Path)
	if path == "" {
		return false, invalidInput("path is required")
	}

	return m.recordView(ctx, m.views, "view:page:"+path+":"+in.IPAddress, func() (bool, error) {
		recorded, err := m.db.RecordPageView(ctx, &db.PageView{
			Path:      path,
			IPAddress: in.IPAddress,
			UserAgent: clearable(in.UserAgent),
			Referer:   clearable(in.Referer),
			ViewedAt:  m.now(),
		}, m.opts.ViewWindow)
		if err != nil {
			return false, fmt.Errorf("db record page view: %w", err)
		}
		return recorded, nil
	})
}

// since returns the start of the UTC day that opens a window of the given number of days ending today.
func (m *AnalyticsManager) since(days int) (time.Time, error) {
	if days < 1 || days > maxAnalyticsDays {
		return time.Time{}, invalidInput("days must be between 1 and %d", maxAnalyticsDays)
	}

	today := m.now().UTC().Truncate(24 * time.Hour)
	return today.AddDate(0, 0, 1-days), nil
}

// ClassifyReferer maps a referer URL to direct, search, social or referral.
func ClassifyReferer(referer *string) string {
	if referer == nil || strings.TrimSpace(*referer) == "" {
		return SourceDirect
	}

	u, err := url.Parse(strings.TrimSpace(*referer))
	if err != nil || u.Hostname() == "" {
		return SourceDirect
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	switch {
	case matchesHost(host, searchEngines):
		return SourceSearch
	case matchesHost(host, socialNetworks):
		return SourceSocial
	default:
		return SourceReferral
	}
}

func matchesHost(host string, list []string) bool {
	for _, h := range list {
		if strings.HasSuffix(h, ".") {
			if strings.HasPrefix(host, h) || strings.Contains(host, "."+h) {
				return true
			}
		} else if host == h || strings.HasSuffix(host, "."+h) {
			return true
		}
	}
	return false
}

func trafficSources(rows []db.RefererCount) []TrafficSource {
	visits := make(map[string]int, 4)
	total := 0
	for _, r := range rows {
		visits[ClassifyReferer(r.Referer)] += r.Visits
		total += r.Visits
	}

	sources := make([]TrafficSource, 0, len(visits))
	for source, n := range visits {
		sources = append(sources, TrafficSource{Source: source, Visits: n, Percentage: percentage(n, total)})
	}

	slices.SortFunc(sources, func(a, b TrafficSource) int {
		if c := cmp.Compare(b.Visits, a.Visits); c != 0 {
			return c
		}
		return cmp.Compare(a.Source, b.Source)
	})

	return sources
}

// engagement splits hits, ordered by visitor then time, into sessions that end
// after gap of inactivity. A session with a single view is a bounce.
func engagement(hits []db.VisitorHit, gap time.Duration) Engagement {
	var (
		e                 = Engagement{PageViews: len(hits)}
		sessions, bounces int
		views             int
		duration          time.Duration
		start, last       time.Time
		visitor           string
	)

	closeSession := func() {
		if views == 0 {
			return
		}
		sessions++
		if views == 1 {
			bounces++
		}
		duration += last.Sub(start)
	}

	for i, h := range hits {
		switch {
		case i == 0 || h.IPAddress != visitor:
			closeSession()
			e.UniqueVisitors++
			visitor, start, views = h.IPAddress, h.ViewedAt, 0
		case h.ViewedAt.Sub(last) > gap:
			closeSession()
			start, views = h.ViewedAt, 0
		}
		last = h.ViewedAt
		views++
	}
	closeSession()

	if sessions > 0 {
		e.BounceRate = percentage(bounces, sessions)
		e.AvgSessionDuration = roundTo(duration.Seconds()/float64(sessions), 2)
	}

	return e
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
