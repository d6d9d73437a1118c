package domain

// DailyStat is one day of delivery counters for a single ad.
type DailyStat struct {
	Date        string `json:"date"`
	Impressions int64  `json:"impressions"`
	Clicks      int64  `json:"clicks"`
}

// AdStats is the per-ad statistics report.
type AdStats struct {
	AdID             string      `json:"adId"`
	TotalImpressions int64       `json:"totalImpressions"`
	TotalClicks      int64       `json:"totalClicks"`
	CTR              float64     `json:"ctr"`
	Daily            []DailyStat `json:"daily"`
}

// AdvertiserSummary aggregates delivery across all of an advertiser's ads.
type AdvertiserSummary struct {
	TotalImpressions int64   `json:"totalImpressions"`
	TotalClicks      int64   `json:"totalClicks"`
	CTR              float64 `json:"ctr"`
	TotalSpend       float64 `json:"totalSpend"`
}

// PublisherStats aggregates delivery across a publisher's sites.
type PublisherStats struct {
	TotalImpressions int64   `json:"totalImpressions"`
	TotalClicks      int64   `json:"totalClicks"`
	EstimatedRevenue float64 `json:"estimatedRevenue"`
}
