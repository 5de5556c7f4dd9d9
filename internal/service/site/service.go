package site

import (
	"context"

	"github.com/google/uuid"

	"github.com/sitepay/sitepay-backend-go/internal/domain/site"
	"github.com/sitepay/sitepay-backend-go/internal/pkg/jwt"
)

type SiteServiceImpl struct {
	siteRepo site.Repository
}

func NewSiteService(siteRepo site.Repository) site.Service {
	return &SiteServiceImpl{siteRepo: siteRepo}
}

// CreateSite implements site.Service.
func (s *SiteServiceImpl) CreateSite(ctx context.Context, req *site.CreateSiteRequest) (*site.SiteResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	st := &site.Site{
		ID:       uuid.New().String(),
		UserID:   userID,
		Name:     req.Name,
		Location: req.Location,
		Active:   true,
	}

	if err := s.siteRepo.Create(ctx, st); err != nil {
		return nil, err
	}

	resp := site.ToSiteResponse(st)
	return &resp, nil
}

// GetSite implements site.Service.
func (s *SiteServiceImpl) GetSite(ctx context.Context, id string) (*site.SiteResponse, error) {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	st, err := s.siteRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	resp := site.ToSiteResponse(st)
	return &resp, nil
}

// ListSites implements site.Service.
func (s *SiteServiceImpl) ListSites(ctx context.Context) ([]site.SiteResponse, error) {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	sites, err := s.siteRepo.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]site.SiteResponse, 0, len(sites))
	for i := range sites {
		responses = append(responses, site.ToSiteResponse(&sites[i]))
	}
	return responses, nil
}

// UpdateSite implements site.Service.
func (s *SiteServiceImpl) UpdateSite(ctx context.Context, id string, req *site.UpdateSiteRequest) (*site.SiteResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	st, err := s.siteRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		st.Name = *req.Name
	}
	if req.Location != nil {
		st.Location = req.Location
	}
	if req.Active != nil {
		st.Active = *req.Active
	}

	if err := s.siteRepo.Update(ctx, st); err != nil {
		return nil, err
	}

	resp := site.ToSiteResponse(st)
	return &resp, nil
}

// DeleteSite implements site.Service.
func (s *SiteServiceImpl) DeleteSite(ctx context.Context, id string) error {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return err
	}

	return s.siteRepo.Delete(ctx, id, userID)
}
