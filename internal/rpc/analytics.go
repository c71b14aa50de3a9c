package rpc

import (
	"context"

	"github.com/daniilsolovey/blog-cms/internal/blog"
	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"
)

const (
	defaultDays          = 30
	defaultPopularLimit  = 10
	defaultKeywordsLimit = 20
)

// AnalyticsService reports traffic and engagement.
type AnalyticsService struct {
	zenrpc.Service
	analytics *blog.AnalyticsManager
}

func NewAnalyticsService(analytics *blog.AnalyticsManager) *AnalyticsService {
	return &AnalyticsService{analytics: analytics}
}

// GetPostAnalytics returns view, comment and daily statistics of one post or of all posts.
//
//zenrpc:postId optional post id
//zenrpc:days=30 window in days, 1 to 365
//zenrpc:404 post not found
func (s *AnalyticsService) GetPostAnalytics(ctx context.Context, postId, days *int) (*PostAnalytics, error) {
	stats, err := s.analytics.PostAnalytics(ctx, postId, intOr(days, defaultDays))
	if err != nil {
		return nil, newError(err)
	}

	result := NewPostAnalytics(*stats)
	return &result, nil
}

// GetDashboardStats returns entity totals and the latest activity.
func (s *AnalyticsService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats, err := s.analytics.DashboardStats(ctx)
	if err != nil {
		return nil, newError(err)
	}

	result := NewDashboardStats(*stats)
	return &result, nil
}

// GetPopularPosts ranks published posts by views inside the window.
//
//zenrpc:limit=10 number of posts
//zenrpc:days=30 window in days, 1 to 365
func (s *AnalyticsService) GetPopularPosts(ctx context.Context, limit, days *int) ([]PopularPost, error) {
	n, err := limitOrDefault(limit, defaultPopularLimit)
	if err != nil {
		return nil, err
	}

	list, err := s.analytics.PopularPosts(ctx, n, intOr(days, defaultDays))
	if err != nil {
		return nil, newError(err)
	}

	return NewPopularPosts(list), nil
}

// GetTrafficSources classifies page views by referer.
//
//zenrpc:days=30 window in days, 1 to 365
func (s *AnalyticsService) GetTrafficSources(ctx context.Context, days *int) ([]TrafficSource, error) {
	list, err := s.analytics.TrafficSources(ctx, intOr(days, defaultDays))
	if err != nil {
		return nil, newError(err)
	}

	return newList(list, NewTrafficSource), nil
}

// GetUserEngagement derives session metrics from page views.
//
//zenrpc:days=30 window in days, 1 to 365
func (s *AnalyticsService) GetUserEngagement(ctx context.Context, days *int) (*Engagement, error) {
	e, err := s.analytics.UserEngagement(ctx, intOr(days, defaultDays))
	if err != nil {
		return nil, newError(err)
	}

	result := NewEngagement(*e)
	return &result, nil
}

// GetSearchKeywords returns the most searched phrases.
//
//zenrpc:limit=20 number of keywords
//zenrpc:days=30 window in days, 1 to 365
func (s *AnalyticsService) GetSearchKeywords(ctx context.Context, limit, days *int) ([]Keyword, error) {
	n, err := limitOrDefault(limit, defaultKeywordsLimit)
	if err != nil {
		return nil, err
	}

	list, err := s.analytics.SearchKeywords(ctx, n, intOr(days, defaultDays))
	if err != nil {
		return nil, newError(err)
	}

	return newList(list, NewKeyword), nil
}

// RecordPageView stores a page view once per visitor and path within the view window.
//
//zenrpc:path page path
//zenrpc:ipAddress visitor address, the caller address when omitted
//zenrpc:userAgent visitor user agent
//zenrpc:referer referring page
func (s *AnalyticsService) RecordPageView(ctx context.Context, path string, ipAddress, userAgent, referer *string) (ViewResult, error) {
	ip := visitorIP(ctx, ipAddress)
	if err := checkVar("path", path, "required,max=500"); err != nil {
		return ViewResult{}, err
	}
	if err := checkVar("ipAddress", ip, "required,ip"); err != nil {
		return ViewResult{}, err
	}
	if userAgent == nil {
		if ua := middleware.UserAgentFromContext(ctx); ua != "" {
			userAgent = &ua
		}
	}

	recorded, err := s.analytics.RecordPageView(ctx, blog.PageViewInput{
		Path:      path,
		IPAddress: ip,
		UserAgent: userAgent,
		Referer:   referer,
	})

	return ViewResult{Counted: recorded}, newError(err)
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
