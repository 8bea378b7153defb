// Package quantcloud provides a client for the Quant Cloud environment
// variables API. It is the only place that knows the wire shapes and
// endpoint layout; callers see vars.Map and the error taxonomy.
package quantcloud

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/quantcdn/quant-cloud-environment-var-action/internal/transport"
	"github.com/quantcdn/quant-cloud-environment-var-action/pkg/constants"
	"github.com/quantcdn/quant-cloud-environment-var-action/pkg/errors"
	"github.com/quantcdn/quant-cloud-environment-var-action/pkg/vars"
)

// Variable is the wire representation of one environment variable.
type Variable struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// variablesPayload is the bulk-set request body.
type variablesPayload struct {
	EnvironmentVariables []Variable `json:"environmentVariables"`
}

// Client talks to the Quant Cloud API.
type Client struct {
	baseURL string
	http    *transport.Client
}

// NewClient creates an API client. An empty baseURL selects the production
// endpoint.
func NewClient(apiKey, baseURL string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.ErrAPIKeyRequired
	}
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    transport.New(&transport.BearerAuth{}, apiKey),
	}, nil
}

// Environment returns a store scoped to one application environment. All
// four remote operations act on this scope.
func (c *Client) Environment(organization, application, environment string) *EnvironmentStore {
	return &EnvironmentStore{
		client:       c,
		organization: organization,
		application:  application,
		environment:  environment,
	}
}

// EnvironmentStore implements reconcile.RemoteStore for one environment.
type EnvironmentStore struct {
	client       *Client
	organization string
	application  string
	environment  string
}

// List returns the environment's current variables.
func (s *EnvironmentStore) List(ctx context.Context) (vars.Map, error) {
	var payload variablesPayload
	if err := s.client.http.DoJSON(ctx, http.MethodGet, s.variablesURL(), nil, &payload); err != nil {
		return nil, err
	}

	result := make(vars.Map, len(payload.EnvironmentVariables))
	for _, v := range payload.EnvironmentVariables {
		result[v.Name] = v.Value
	}
	return result, nil
}

// Replace atomically overwrites the environment's variables. Keys absent
// from desired are removed remotely; an empty map clears everything.
func (s *EnvironmentStore) Replace(ctx context.Context, desired vars.Map) error {
	entries := make([]Variable, 0, len(desired))
	for _, name := range desired.Names() {
		entries = append(entries, Variable{Name: name, Value: desired[name]})
	}

	body := variablesPayload{EnvironmentVariables: entries}
	return s.client.http.DoJSON(ctx, http.MethodPut, s.variablesURL(), body, nil)
}

// Update upserts one variable, leaving all others untouched.
func (s *EnvironmentStore) Update(ctx context.Context, key, value string) error {
	body := Variable{Name: key, Value: value}
	return s.client.http.DoJSON(ctx, http.MethodPatch, s.variableURL(key), body, nil)
}

// Delete removes one variable. A 404 surfaces as errors.ErrNotFound via
// the transport's APIError mapping.
func (s *EnvironmentStore) Delete(ctx context.Context, key string) error {
	return s.client.http.DoJSON(ctx, http.MethodDelete, s.variableURL(key), nil, nil)
}

// variablesURL builds the collection endpoint for this environment.
func (s *EnvironmentStore) variablesURL() string {
	return s.client.baseURL +
		"/organizations/" + url.PathEscape(s.organization) +
		"/applications/" + url.PathEscape(s.application) +
		"/environments/" + url.PathEscape(s.environment) +
		"/variables"
}

// variableURL builds the single-variable endpoint.
func (s *EnvironmentStore) variableURL(key string) string {
	return s.variablesURL() + "/" + url.PathEscape(key)
}
