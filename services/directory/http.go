package directorysvc

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/shulehq/shule/core"
	"github.com/shulehq/shule/core/access"
)

// httpService fetches principal profiles from the platform's REST backend.
type httpService struct {
	baseURL string
	client  *http.Client
}

var _ access.DirectoryClient = (*httpService)(nil)

func NewHTTPService(conf *core.Config) access.DirectoryClient {
	return &httpService{
		baseURL: strings.TrimRight(conf.Directory.BaseURL, "/"),
		client:  &http.Client{Timeout: conf.Directory.Timeout},
	}
}

// wire payloads; ids may come as numbers or strings depending on the backend version
type (
	academyPayload struct {
		ID   json.Number `json:"id"`
		Name string      `json:"name"`
	}

	adminLinkPayload struct {
		Role    string          `json:"role"`
		Academy *academyPayload `json:"academy"`
	}

	coursePayload struct {
		Academy *academyPayload `json:"academy"`
	}

	membershipPayload struct {
		Role   string         `json:"role"`
		Course *coursePayload `json:"course"`
	}

	profilePayload struct {
		IsSuperAdmin bool                `json:"is_super_admin"`
		AdminLinks   []adminLinkPayload  `json:"academy_admins"`
		Memberships  []membershipPayload `json:"group_members"`
	}
)

func (p profilePayload) toProfile() *access.Profile {
	profile := &access.Profile{IsSuperAdmin: p.IsSuperAdmin}

	for _, link := range p.AdminLinks {
		al := access.TenantAdminLink{Role: link.Role}
		if link.Academy != nil {
			al.TenantID = link.Academy.ID.String()
			al.TenantName = link.Academy.Name
		}
		profile.AdminLinks = append(profile.AdminLinks, al)
	}

	for _, m := range p.Memberships {
		gm := access.GroupMembership{Role: m.Role}
		// keep the record but leave the chain open; the aggregator skips it
		if m.Course != nil && m.Course.Academy != nil {
			gm.Course = &access.CourseRef{
				Tenant: &access.Tenant{ID: m.Course.Academy.ID.String(), Name: m.Course.Academy.Name},
			}
		}
		profile.GroupMemberships = append(profile.GroupMemberships, gm)
	}
	return profile
}

func (svc *httpService) FetchProfile(ctx context.Context, credential string) (*access.Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, svc.baseURL+"/v1/principals/me", nil)
	if err != nil {
		return nil, errors.Wrap(err, "building profile request")
	}
	req.Header.Set("Authorization", "Bearer "+credential)
	req.Header.Set("Accept", "application/json")

	resp, err := svc.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetching principal profile")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("directory returned %s", resp.Status)
	}

	payload := new(profilePayload)
	if err = json.NewDecoder(resp.Body).Decode(payload); err != nil {
		return nil, errors.Wrap(err, "decoding principal profile")
	}
	return payload.toProfile(), nil
}
