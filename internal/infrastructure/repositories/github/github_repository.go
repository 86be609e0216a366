package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	gh "github.com/google/go-github/v66/github"
	"github.com/hashicorp/go-cleanhttp"
	"golang.org/x/oauth2"

	"github.com/rios0rios0/cisync/internal/domain/entities"
	"github.com/rios0rios0/cisync/internal/domain/repositories"
)

const (
	providerName = "github"

	// orgPageSize is requested instead of paginating; GitHub may cap it, in
	// which case large organizations come back incomplete.
	orgPageSize = 100000
)

// GitHubRepository implements repositories.GitHubRepository for one organization.
type GitHubRepository struct {
	organization string
	workflowURL  string
	token        entities.Secret
	httpClient   *http.Client
	public       *gh.Client
	authed       *gh.Client // nil without a token
}

// NewGitHubRepository creates a GitHub client from the given settings.
func NewGitHubRepository(settings *entities.Settings) (repositories.GitHubRepository, error) {
	baseURL, err := url.Parse(strings.TrimSuffix(settings.GitHub.APIEndpoint, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("invalid GitHub API endpoint %q: %w", settings.GitHub.APIEndpoint, err)
	}

	httpClient := cleanhttp.DefaultClient()
	public := gh.NewClient(httpClient)
	public.BaseURL = baseURL

	token := settings.GitHubSecret()
	var authed *gh.Client
	if token.Present() {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token.Value()})
		authed = gh.NewClient(oauth2.NewClient(ctx, ts))
		authed.BaseURL = baseURL
	}

	return &GitHubRepository{
		organization: settings.Organization,
		workflowURL:  settings.WorkflowURL(),
		token:        token,
		httpClient:   httpClient,
		public:       public,
		authed:       authed,
	}, nil
}

// ListOrgRepositories lists the organization's repositories in a single
// unauthenticated request.
func (r *GitHubRepository) ListOrgRepositories(ctx context.Context) (entities.RepositoryDirectory, error) {
	opts := &gh.RepositoryListByOrgOptions{
		ListOptions: gh.ListOptions{PerPage: orgPageSize},
	}

	repos, _, err := r.public.Repositories.ListByOrg(ctx, r.organization, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list repos for %q: %w", r.organization, err)
	}

	directory := make(entities.RepositoryDirectory, len(repos))
	for _, repo := range repos {
		defaultBranch := "master"
		if repo.DefaultBranch != nil {
			defaultBranch = *repo.DefaultBranch
		}
		directory[entities.RepositoryIDFromFullName(repo.GetFullName())] = entities.Repository{
			ID:            strconv.FormatInt(repo.GetID(), 10),
			Name:          repo.GetName(),
			Organization:  r.organization,
			DefaultBranch: "refs/heads/" + defaultBranch,
			RemoteURL:     repo.GetHTMLURL(),
			SSHURL:        repo.GetSSHURL(),
			ProviderName:  providerName,
		}
	}

	return directory, nil
}

// ListWebhooks lists the webhooks of a repository of the organization.
func (r *GitHubRepository) ListWebhooks(ctx context.Context, repo string) ([]entities.Webhook, error) {
	client, err := r.authenticated()
	if err != nil {
		return nil, err
	}

	hooks, _, err := client.Repositories.ListHooks(ctx, r.organization, repo, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list webhooks for %s/%s: %w", r.organization, repo, err)
	}

	webhooks := make([]entities.Webhook, 0, len(hooks))
	for _, hook := range hooks {
		webhooks = append(webhooks, convertHook(hook))
	}
	return webhooks, nil
}

// ToggleWebhook sets the active flag of one webhook. The echoed hook is
// returned as is.
func (r *GitHubRepository) ToggleWebhook(
	ctx context.Context,
	repo string,
	id int64,
	enabled bool,
) (*entities.Webhook, error) {
	client, err := r.authenticated()
	if err != nil {
		return nil, err
	}

	hook, _, err := client.Repositories.EditHook(ctx, r.organization, repo, id, &gh.Hook{
		Active: gh.Bool(enabled),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to edit webhook %d for %s/%s: %w", id, r.organization, repo, err)
	}

	webhook := convertHook(hook)
	return &webhook, nil
}

// FetchWorkflow downloads the canonical workflow from its raw-content URL.
func (r *GitHubRepository) FetchWorkflow(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.workflowURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read workflow: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("failed to download %s (status %d)", r.workflowURL, resp.StatusCode)
	}

	return string(body), nil
}

// authenticated guards every call that needs the personal access token.
func (r *GitHubRepository) authenticated() (*gh.Client, error) {
	if err := entities.RequireSecret(r.token, "GitHub personal access token"); err != nil {
		return nil, err
	}
	return r.authed, nil
}

func convertHook(hook *gh.Hook) entities.Webhook {
	return entities.Webhook{
		Kind:   hook.GetName(),
		ID:     hook.GetID(),
		Active: hook.GetActive(),
	}
}
