package store

import (
	"sort"

	"github.com/adspace/adspace-cli/internal/core/domain"
)

const (
	costPerClick = 0.5  // flat devserver pricing
	revenueShare = 0.35 // publisher share of click revenue
)

// CreateAd stores a new creative for owner. New ads start pending review
// and inactive.
func (s *Store) CreateAd(owner string, meta domain.AdMeta) domain.Ad {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := now()
	rec := &adRecord{
		Ad: domain.Ad{
			AdID:         newID(),
			Title:        meta.Title,
			AdType:       meta.AdType,
			MediaURL:     meta.MediaURL,
			LandingPage:  meta.LandingPage,
			CategoryID:   meta.CategoryID,
			AdLayout:     meta.AdLayout,
			WeeklyBudget: meta.WeeklyBudget,
			ReviewStatus: domain.ReviewPending,
			IsActive:     0,
			CreateTime:   ts,
			EditTime:     ts,
		},
		Owner: owner,
		daily: make(map[string]*domain.DailyStat),
	}
	s.ads[rec.AdID] = rec
	return rec.Ad
}

// GetAd returns an ad, enforcing ownership when owner is non-empty.
func (s *Store) GetAd(owner, adID string) (domain.Ad, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.ads[adID]
	if !ok {
		return domain.Ad{}, domain.ErrAdNotFound
	}
	if owner != "" && rec.Owner != owner {
		return domain.Ad{}, domain.ErrForbidden
	}
	return rec.Ad, nil
}

// UpdateAd replaces the editable fields and resets review to pending:
// edited creatives go through moderation again.
func (s *Store) UpdateAd(owner, adID string, meta domain.AdMeta) (domain.Ad, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.ads[adID]
	if !ok {
		return domain.Ad{}, domain.ErrAdNotFound
	}
	if rec.Owner != owner {
		return domain.Ad{}, domain.ErrForbidden
	}
	rec.Title = meta.Title
	rec.AdType = meta.AdType
	rec.MediaURL = meta.MediaURL
	rec.LandingPage = meta.LandingPage
	rec.CategoryID = meta.CategoryID
	rec.AdLayout = meta.AdLayout
	rec.WeeklyBudget = meta.WeeklyBudget
	rec.ReviewStatus = domain.ReviewPending
	rec.EditTime = now()
	return rec.Ad, nil
}

// DeleteAd removes an ad owned by owner.
func (s *Store) DeleteAd(owner, adID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.ads[adID]
	if !ok {
		return domain.ErrAdNotFound
	}
	if rec.Owner != owner {
		return domain.ErrForbidden
	}
	delete(s.ads, adID)
	return nil
}

// ToggleAd flips the serving flag. Only approved ads can be activated.
func (s *Store) ToggleAd(owner, adID string, active bool) (domain.Ad, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.ads[adID]
	if !ok {
		return domain.Ad{}, domain.ErrAdNotFound
	}
	if rec.Owner != owner {
		return domain.Ad{}, domain.ErrForbidden
	}
	if active && rec.ReviewStatus != domain.ReviewApproved {
		return domain.Ad{}, domain.ErrForbidden
	}
	if active {
		rec.IsActive = 1
	} else {
		rec.IsActive = 0
	}
	rec.EditTime = now()
	return rec.Ad, nil
}

// ReviewAd records an admin verdict on a pending ad.
func (s *Store) ReviewAd(adID string, status int) (domain.Ad, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.ads[adID]
	if !ok {
		return domain.Ad{}, domain.ErrAdNotFound
	}
	rec.ReviewStatus = status
	if status == domain.ReviewRejected {
		rec.IsActive = 0
	}
	rec.EditTime = now()
	return rec.Ad, nil
}

// ListAllAds returns every ad, optionally filtered by review status, for
// the admin moderation queue. Sorted by creation time, newest first.
func (s *Store) ListAllAds(status *int) []domain.Ad {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Ad, 0, len(s.ads))
	for _, rec := range s.ads {
		if status != nil && rec.ReviewStatus != *status {
			continue
		}
		out = append(out, rec.Ad)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreateTime > out[j].CreateTime })
	return out
}

// AdsFilter narrows an advertiser's own listing.
type AdsFilter struct {
	IsActive     *bool
	ReviewStatus *int
	Page         int
	PageSize     int
}

// AdsPage is the paginated listing result.
type AdsPage struct {
	Records []domain.Ad
	Total   int64
	Size    int
	Current int
	Pages   int
}

// ListAds pages through owner's ads, newest first.
func (s *Store) ListAds(owner string, filter AdsFilter) AdsPage {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]domain.Ad, 0, len(s.ads))
	for _, rec := range s.ads {
		if rec.Owner != owner {
			continue
		}
		if filter.IsActive != nil && (rec.IsActive == 1) != *filter.IsActive {
			continue
		}
		if filter.ReviewStatus != nil && rec.ReviewStatus != *filter.ReviewStatus {
			continue
		}
		matched = append(matched, rec.Ad)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreateTime > matched[j].CreateTime })

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 {
		size = 10
	}

	total := len(matched)
	pages := (total + size - 1) / size
	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	return AdsPage{
		Records: matched[start:end],
		Total:   int64(total),
		Size:    size,
		Current: page,
		Pages:   pages,
	}
}
