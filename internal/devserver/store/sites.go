package store

import (
	"sort"

	"github.com/adspace/adspace-cli/internal/core/domain"
)

// CreateSite registers a publisher website. It starts unverified with a
// fresh verification token the publisher must serve from the domain.
func (s *Store) CreateSite(owner string, meta domain.WebsiteMeta) domain.Website {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := &siteRecord{
		Website: domain.Website{
			WebsiteID:         newID(),
			WebsiteName:       meta.WebsiteName,
			Domain:            meta.Domain,
			IsVerified:        domain.SiteUnverified,
			VerificationToken: newID(),
			CreateTime:        now(),
		},
		Owner: owner,
	}
	s.sites[rec.WebsiteID] = rec
	return rec.Website
}

// ListSites returns owner's sites, newest first.
func (s *Store) ListSites(owner string) []domain.Website {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Website, 0)
	for _, rec := range s.sites {
		if rec.Owner == owner {
			out = append(out, rec.Website)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreateTime > out[j].CreateTime })
	return out
}

// GetSite returns a site, enforcing ownership.
func (s *Store) GetSite(owner, websiteID string) (domain.Website, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.sites[websiteID]
	if !ok {
		return domain.Website{}, domain.ErrWebsiteNotFound
	}
	if rec.Owner != owner {
		return domain.Website{}, domain.ErrForbidden
	}
	return rec.Website, nil
}

// VerifySite marks a site verified. The devserver skips the actual token
// fetch a production backend would perform against the domain.
func (s *Store) VerifySite(owner, websiteID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.sites[websiteID]
	if !ok {
		return false, domain.ErrWebsiteNotFound
	}
	if rec.Owner != owner {
		return false, domain.ErrForbidden
	}
	if rec.IsVerified == domain.SiteVerified {
		return false, domain.ErrAlreadyVerified
	}
	rec.IsVerified = domain.SiteVerified
	rec.VerifyTime = now()
	return true, nil
}
