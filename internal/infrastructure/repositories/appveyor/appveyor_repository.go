package appveyor

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/hashicorp/go-cleanhttp"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cisync/internal/domain/entities"
	"github.com/rios0rios0/cisync/internal/domain/repositories"
)

// project is the part of an AppVeyor project record cisync reads.
// See https://www.appveyor.com/docs/api/projects-builds/
type project struct {
	RepositoryName string `json:"repositoryName"` // "owner/repo"
}

// AppVeyorRepository implements repositories.AppVeyorRepository over the AppVeyor REST API.
type AppVeyorRepository struct {
	baseURL    string
	account    string
	token      entities.Secret
	httpClient *http.Client
}

// NewAppVeyorRepository creates a client for the account configured in settings.
func NewAppVeyorRepository(settings *entities.Settings) repositories.AppVeyorRepository {
	return &AppVeyorRepository{
		baseURL:    strings.TrimSuffix(settings.AppVeyor.Endpoint, "/"),
		account:    settings.AppVeyor.Account,
		token:      settings.AppVeyorSecret(),
		httpClient: cleanhttp.DefaultClient(),
	}
}

// ListRepositories returns every repository the account builds, as identifiers.
func (r *AppVeyorRepository) ListRepositories(ctx context.Context) (entities.RepositorySet, error) {
	if err := entities.RequireSecret(r.token, "AppVeyor bearer token"); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/api/account/%s/projects/", r.baseURL, r.account)
	body, err := r.doRequest(ctx, http.MethodGet, endpoint)
	if err != nil {
		return nil, err
	}

	var projects []project
	if unmarshalErr := json.Unmarshal(body, &projects); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse projects response: %w", unmarshalErr)
	}

	set := make(entities.RepositorySet, len(projects))
	for _, p := range projects {
		if p.RepositoryName == "" {
			logger.Debugf("Ignoring AppVeyor project without repository name")
			continue
		}
		set[entities.RepositoryIDFromFullName(p.RepositoryName)] = struct{}{}
	}
	return set, nil
}

func (r *AppVeyorRepository) doRequest(ctx context.Context, method, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+r.token.Value())
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("AppVeyor API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}
