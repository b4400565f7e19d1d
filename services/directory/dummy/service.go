package dummydir

import (
	"context"

	"github.com/shulehq/shule/core/access"
)

// Service serves canned profiles keyed by principal id; for tests and local dev.
type Service struct {
	Profiles map[access.PrincipalID]*access.Profile
	Err      error
}

var _ access.DirectoryClient = (*Service)(nil)

func NewService() *Service {
	return &Service{Profiles: make(map[access.PrincipalID]*access.Profile)}
}

func (svc *Service) FetchProfile(_ context.Context, credential string) (*access.Profile, error) {
	if svc.Err != nil {
		return nil, svc.Err
	}
	principal, err := access.DecodePrincipal(credential)
	if err != nil {
		return nil, err
	}
	return svc.Profiles[principal], nil
}
