package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultOrganization      = "vostok"
	DefaultGitHubAPIEndpoint = "https://api.github.com/"
	DefaultGitHubRawEndpoint = "https://raw.githubusercontent.com"
	DefaultAppVeyorEndpoint  = "https://ci.appveyor.com"
	DefaultWorkflowSource    = "devtools"
	DefaultWorkflowBranch    = "master"
	DefaultWorkflowPath      = "library-ci/github_ci.yml"
	DefaultWorkflowTarget    = ".github/workflows/ci.yml"
	DefaultCommitMessage     = "Update ci"
	DefaultAuthorName        = "cisync"
	DefaultAuthorEmail       = "cisync@users.noreply.github.com"
)

// Settings is the configuration of one cisync run.
type Settings struct {
	Organization string           `yaml:"organization"`
	GitHub       GitHubSettings   `yaml:"github"`
	AppVeyor     AppVeyorSettings `yaml:"appveyor"`
	Workflow     WorkflowSettings `yaml:"workflow"`
	Commit       CommitSettings   `yaml:"commit"`
	Webhooks     WebhookSettings  `yaml:"webhooks"`
}

// GitHubSettings configures the GitHub client.
type GitHubSettings struct {
	Token       string `yaml:"token"`        // Inline, ${ENV_VAR}, or file path
	APIEndpoint string `yaml:"api_endpoint"` // REST API base URL
	RawEndpoint string `yaml:"raw_endpoint"` // raw content base URL
}

// AppVeyorSettings configures the AppVeyor client.
type AppVeyorSettings struct {
	Account  string `yaml:"account"`
	Token    string `yaml:"token"` // Inline, ${ENV_VAR}, or file path
	Endpoint string `yaml:"endpoint"`
}

// WorkflowSettings locates the canonical workflow and where it is written.
type WorkflowSettings struct {
	Owner      string `yaml:"owner"`
	Repository string `yaml:"repository"`
	Branch     string `yaml:"branch"`
	Path       string `yaml:"path"`
	Target     string `yaml:"target"` // path inside each repository
}

// CommitSettings holds the commit metadata used when propagating the workflow.
type CommitSettings struct {
	Message     string `yaml:"message"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// WebhookSettings selects which webhooks are toggled.
type WebhookSettings struct {
	Kind string `yaml:"kind"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewDefaultSettings returns the settings used when no config file exists.
func NewDefaultSettings() *Settings {
	settings := &Settings{}
	settings.applyDefaults()
	return settings
}

// NewSettings reads and parses a configuration file, fills in defaults,
// expands environment variables and resolves token file paths.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var settings Settings
	if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.GitHub.Token = resolveToken(settings.GitHub.Token)
	settings.AppVeyor.Token = resolveToken(settings.AppVeyor.Token)
	settings.applyDefaults()

	if validateErr := validate(&settings); validateErr != nil {
		return nil, validateErr
	}

	return &settings, nil
}

// LoadSettings loads the given config file, or the first one found in the
// default locations. Without any file the defaults are used.
func LoadSettings(path string) (*Settings, error) {
	if path == "" {
		found, err := FindConfigFile()
		if err != nil {
			logger.Debugf("No config file found, using defaults: %v", err)
			return NewDefaultSettings(), nil
		}
		path = found
	}

	logger.Infof("Using config file: %s", path)
	return NewSettings(path)
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".cisync.yaml",
		".cisync.yml",
		"cisync.yaml",
		"cisync.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// ApplyCredentials overrides the configured tokens with the given flag values
// and falls back to the environment for tokens that are still empty.
func (s *Settings) ApplyCredentials(githubToken, appveyorToken string) {
	if githubToken != "" {
		s.GitHub.Token = githubToken
	}
	if s.GitHub.Token == "" {
		s.GitHub.Token = firstEnv("GITHUB_TOKEN", "GH_TOKEN")
	}

	if appveyorToken != "" {
		s.AppVeyor.Token = appveyorToken
	}
	if s.AppVeyor.Token == "" {
		s.AppVeyor.Token = firstEnv("APPVEYOR_TOKEN", "APPVEYOR_API_TOKEN")
	}
}

// GitHubSecret returns the GitHub personal access token.
func (s *Settings) GitHubSecret() Secret { return NewSecret(s.GitHub.Token) }

// AppVeyorSecret returns the AppVeyor bearer token.
func (s *Settings) AppVeyorSecret() Secret { return NewSecret(s.AppVeyor.Token) }

// WorkflowURL returns the raw-content URL of the canonical workflow.
func (s *Settings) WorkflowURL() string {
	return strings.Join([]string{
		strings.TrimSuffix(s.GitHub.RawEndpoint, "/"),
		s.Workflow.Owner,
		s.Workflow.Repository,
		s.Workflow.Branch,
		strings.TrimPrefix(s.Workflow.Path, "/"),
	}, "/")
}

func (s *Settings) applyDefaults() {
	setDefault(&s.Organization, DefaultOrganization)
	setDefault(&s.GitHub.APIEndpoint, DefaultGitHubAPIEndpoint)
	setDefault(&s.GitHub.RawEndpoint, DefaultGitHubRawEndpoint)
	setDefault(&s.AppVeyor.Account, s.Organization)
	setDefault(&s.AppVeyor.Endpoint, DefaultAppVeyorEndpoint)
	setDefault(&s.Workflow.Owner, s.Organization)
	setDefault(&s.Workflow.Repository, DefaultWorkflowSource)
	setDefault(&s.Workflow.Branch, DefaultWorkflowBranch)
	setDefault(&s.Workflow.Path, DefaultWorkflowPath)
	setDefault(&s.Workflow.Target, DefaultWorkflowTarget)
	setDefault(&s.Commit.Message, DefaultCommitMessage)
	setDefault(&s.Commit.AuthorName, DefaultAuthorName)
	setDefault(&s.Commit.AuthorEmail, DefaultAuthorEmail)
	setDefault(&s.Webhooks.Kind, GenericWebhookKind)
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

func firstEnv(names ...string) string {
	for _, name := range names {
		if value := os.Getenv(name); value != "" {
			return value
		}
	}
	return ""
}

// resolveToken expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the token from the file.
func resolveToken(raw string) string {
	if raw == "" {
		return raw
	}

	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})

	if _, statErr := os.Stat(resolved); statErr == nil {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read token file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Infof("Read token from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}

// validate checks for values that would produce malformed API paths.
func validate(settings *Settings) error {
	if strings.ContainsAny(settings.Organization, "/ ") {
		return fmt.Errorf("organization %q must be a bare GitHub organization name", settings.Organization)
	}
	if filepath.IsAbs(settings.Workflow.Target) {
		return fmt.Errorf("workflow.target %q must be relative to the repository root", settings.Workflow.Target)
	}
	if strings.HasPrefix(filepath.Clean(settings.Workflow.Target), "..") {
		return fmt.Errorf("workflow.target %q must stay inside the repository", settings.Workflow.Target)
	}
	return nil
}
