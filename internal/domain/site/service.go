package site

import "context"

// Service defines site business operations.
type Service interface {
	CreateSite(ctx context.Context, req *CreateSiteRequest) (*SiteResponse, error)
	GetSite(ctx context.Context, id string) (*SiteResponse, error)
	ListSites(ctx context.Context) ([]SiteResponse, error)
	UpdateSite(ctx context.Context, id string, req *UpdateSiteRequest) (*SiteResponse, error)
	DeleteSite(ctx context.Context, id string) error
}
