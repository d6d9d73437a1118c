package store

import (
	"sort"

	"github.com/adspace/adspace-cli/internal/core/domain"
)

// RecordEvent applies one tracking event to the per-ad daily counters.
// kind is "impression" or "click"; date is YYYY-MM-DD. Events for unknown
// ads are dropped silently — the tracker may outlive a deleted ad.
func (s *Store) RecordEvent(adID, kind, date string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.ads[adID]
	if !ok {
		return
	}
	day, ok := rec.daily[date]
	if !ok {
		day = &domain.DailyStat{Date: date}
		rec.daily[date] = day
	}
	switch kind {
	case "impression":
		day.Impressions++
	case "click":
		day.Clicks++
	}
}

func ctr(impressions, clicks int64) float64 {
	if impressions == 0 {
		return 0
	}
	return float64(clicks) / float64(impressions)
}

// inRange reports whether date falls in [start, end]; empty bounds are
// open. Dates are YYYY-MM-DD so string comparison orders correctly.
func inRange(date, start, end string) bool {
	if start != "" && date < start {
		return false
	}
	if end != "" && date > end {
		return false
	}
	return true
}

// AdStats builds the per-ad report over the optional date range.
func (s *Store) AdStats(owner, adID, start, end string) (domain.AdStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.ads[adID]
	if !ok {
		return domain.AdStats{}, domain.ErrAdNotFound
	}
	if rec.Owner != owner {
		return domain.AdStats{}, domain.ErrForbidden
	}

	stats := domain.AdStats{AdID: adID, Daily: []domain.DailyStat{}}
	for date, day := range rec.daily {
		if !inRange(date, start, end) {
			continue
		}
		stats.Daily = append(stats.Daily, *day)
		stats.TotalImpressions += day.Impressions
		stats.TotalClicks += day.Clicks
	}
	sort.Slice(stats.Daily, func(i, j int) bool { return stats.Daily[i].Date < stats.Daily[j].Date })
	stats.CTR = ctr(stats.TotalImpressions, stats.TotalClicks)
	return stats, nil
}

// AdvertiserSummary aggregates delivery across all of owner's ads.
func (s *Store) AdvertiserSummary(owner string) domain.AdvertiserSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	var summary domain.AdvertiserSummary
	for _, rec := range s.ads {
		if rec.Owner != owner {
			continue
		}
		for _, day := range rec.daily {
			summary.TotalImpressions += day.Impressions
			summary.TotalClicks += day.Clicks
		}
	}
	summary.CTR = ctr(summary.TotalImpressions, summary.TotalClicks)
	summary.TotalSpend = float64(summary.TotalClicks) * costPerClick
	return summary
}

// PublisherStats aggregates marketplace-wide delivery over the optional
// date range. The devserver does not attribute events to individual
// sites, so every publisher sees the network totals with their share.
func (s *Store) PublisherStats(start, end string) domain.PublisherStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stats domain.PublisherStats
	for _, rec := range s.ads {
		for date, day := range rec.daily {
			if !inRange(date, start, end) {
				continue
			}
			stats.TotalImpressions += day.Impressions
			stats.TotalClicks += day.Clicks
		}
	}
	stats.EstimatedRevenue = float64(stats.TotalClicks) * costPerClick * revenueShare
	return stats
}
