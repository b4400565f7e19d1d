package access

import (
	"context"

	"github.com/pkg/errors"

	"github.com/shulehq/shule/core"
)

var (
	// errors
	ErrSelectionNotHeld = errors.New("academy or role no longer held")
)

type (
	// DirectoryClient fetches a principal's profile from the external backend.
	// A failed fetch may be signaled by a nil profile, an error, or both;
	// the service degrades either to "no roles".
	DirectoryClient interface {
		FetchProfile(ctx context.Context, credential string) (*Profile, error)
	}

	// SelectionStore durably remembers the last (academy, role) pair chosen by
	// a principal. Dumb storage: last write wins, validity is the resolver's job.
	SelectionStore interface {
		SaveSelection(ctx context.Context, principal PrincipalID, sel Selection) error
		LoadSelection(ctx context.Context, principal PrincipalID) (*Selection, error)
		ClearSelection(ctx context.Context, principal PrincipalID) error
	}

	Service struct {
		directory  DirectoryClient
		selections SelectionStore
		log        core.Logger
	}

	// Access is the outcome of a resolution run for one principal.
	Access struct {
		Principal   PrincipalID
		Aggregation Aggregation
		Resolution  Resolution
	}
)

func NewService(directory DirectoryClient, selections SelectionStore, log core.Logger) *Service {
	return &Service{directory: directory, selections: selections, log: log}
}

// Resolve computes the principal's roles and landing destination, honoring any
// previously stored selection. Directory and store failures degrade to
// "no roles" / "no selection" rather than failing the whole run.
func (svc *Service) Resolve(ctx context.Context, credential string) (Access, error) {
	principal, err := DecodePrincipal(credential)
	if err != nil {
		return Access{}, err
	}

	profile, err := svc.directory.FetchProfile(ctx, credential)
	if err != nil {
		svc.log.Warn("fetching principal profile", err, principal)
		profile = nil
	}
	agg := Aggregate(profile)

	sel, err := svc.selections.LoadSelection(ctx, principal)
	if err != nil {
		svc.log.Warn("loading stored selection", err, principal)
		sel = nil
	}

	return Access{Principal: principal, Aggregation: agg, Resolution: Resolve(agg, sel)}, nil
}

// Choose validates an explicit (academy, role) choice against the principal's
// current roles, persists it and returns the resulting resolution.
func (svc *Service) Choose(ctx context.Context, credential string, sel Selection) (Access, error) {
	principal, err := DecodePrincipal(credential)
	if err != nil {
		return Access{}, err
	}

	profile, err := svc.directory.FetchProfile(ctx, credential)
	if err != nil {
		svc.log.Warn("fetching principal profile", err, principal)
		profile = nil
	}
	agg := Aggregate(profile)

	tr, ok := agg.Tenants[sel.TenantID]
	if !ok || !tr.Has(sel.Role) {
		return Access{}, core.NewValidationError(
			ErrSelectionNotHeld,
			core.FieldError{Field: "academy_id", Error: ErrSelectionNotHeld.Error()},
		)
	}

	if err := svc.selections.SaveSelection(ctx, principal, sel); err != nil {
		return Access{}, errors.Wrap(err, "saving selection")
	}

	return Access{Principal: principal, Aggregation: agg, Resolution: Resolve(agg, &sel)}, nil
}

// Forget drops the principal's stored selection; called on session end.
func (svc *Service) Forget(ctx context.Context, credential string) error {
	principal, err := DecodePrincipal(credential)
	if err != nil {
		return err
	}
	return errors.Wrap(svc.selections.ClearSelection(ctx, principal), "clearing selection")
}
