package adapter

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-secret-keeper/internal/config"
	"github.com/MKhiriev/go-secret-keeper/internal/logger"
	"github.com/MKhiriev/go-secret-keeper/internal/utils"
	"github.com/MKhiriev/go-secret-keeper/models"
	"github.com/go-resty/resty/v2"
)

// HashHeader carries the HMAC-SHA256 of a request body when a hash key is
// configured.
const HashHeader = "HashSHA256"

// httpTransport is the state shared by the GraphQL and REST adapters: one
// resty client, the bearer token and the integrity hash key.
type httpTransport struct {
	client *utils.HTTPClient

	hashKey string

	mu    sync.RWMutex
	token string

	now    func() time.Time
	logger *logger.Logger
}

func newHTTPTransport(adapterCfg config.ClientAdapter, appCfg config.ClientApp, log *logger.Logger) (*httpTransport, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	if appCfg.HashKey != "" {
		utils.InitHasherPool(appCfg.HashKey)
	}
	if log == nil {
		log = logger.Nop()
	}

	t := &httpTransport{client: client, hashKey: appCfg.HashKey, now: time.Now, logger: log}
	t.SetToken(adapterCfg.Token)
	return t, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken stores token (whitespace-trimmed) for the Authorization header
// of all subsequent requests.
func (h *httpTransport) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token returns the bearer token currently held, or an empty string.
func (h *httpTransport) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// authedRequest prepares a request carrying the bearer token. A token that
// has already expired is not sent at all.
func (h *httpTransport) authedRequest(ctx context.Context) (*resty.Request, error) {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		if utils.TokenExpired(token, h.now()) {
			return nil, ErrTokenIsExpired
		}
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req, nil
}

func (h *httpTransport) requestLogger(ctx context.Context, op string) *logger.Logger {
	l := h.logger.With().Str("op", op)
	if sessionID, ok := utils.GetSessionIDFromContext(ctx); ok {
		l = l.Str("session_id", sessionID)
	}
	return &logger.Logger{Logger: l.Logger()}
}

func (h *httpTransport) computeTransportHash(v any) string {
	if h.hashKey == "" {
		return ""
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return ""
	}

	return hex.EncodeToString(utils.Hash(payload))
}

// graphQLSecretAPI is the [SecretAPI] implementation over GraphQL-on-HTTP.
type graphQLSecretAPI struct {
	*httpTransport
	path string
}

// NewGraphQLSecretAPI constructs a GraphQL implementation of [SecretAPI].
// It normalises and validates the base URL from adapterCfg.HTTPAddress,
// configures the underlying HTTP client with the resolved base URL and
// request timeout, and initialises the shared HMAC hasher pool used for the
// request integrity header when appCfg.HashKey is set.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewGraphQLSecretAPI(adapterCfg config.ClientAdapter, appCfg config.ClientApp, log *logger.Logger) (SecretAPI, error) {
	t, err := newHTTPTransport(adapterCfg, appCfg, log)
	if err != nil {
		return nil, err
	}

	path := adapterCfg.GraphQLPath
	if path == "" {
		path = config.DefaultGraphQLPath
	}
	return &graphQLSecretAPI{httpTransport: t, path: path}, nil
}

// execute posts one GraphQL operation and decodes its data into T. GraphQL
// level errors are joined and wrapped with ErrGraphQL.
func execute[T any](ctx context.Context, g *graphQLSecretAPI, op string, query string, variables map[string]any) (T, error) {
	var zero T
	log := g.requestLogger(ctx, op)

	req, err := g.authedRequest(ctx)
	if err != nil {
		return zero, err
	}

	body := graphQLRequest{OperationName: op, Query: query, Variables: variables}
	if hash := g.computeTransportHash(body); hash != "" {
		req.SetHeader(HashHeader, hash)
	}

	var out graphQLResponse[T]
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(body).
		SetResult(&out).
		Post(g.path)
	if err != nil {
		log.Warn().Err(err).Msg("graphql request failed")
		return zero, mapTransportError(op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Warn().Err(err).Int("status", resp.StatusCode()).Msg("graphql request rejected")
		return zero, err
	}

	if len(out.Errors) > 0 {
		errs := make([]error, len(out.Errors))
		for i, e := range out.Errors {
			errs[i] = errors.New(e.Message)
		}
		return zero, fmt.Errorf("%s: %w: %w", op, ErrGraphQL, errors.Join(errs...))
	}
	if out.Data == nil {
		return zero, fmt.Errorf("%s: %w", op, ErrEmptyResponse)
	}

	log.Debug().Msg("graphql request completed")
	return *out.Data, nil
}

// secretFrom unwraps a secret envelope.
func secretFrom(op string, resp *models.SecretResponse) (models.Secret, error) {
	if resp == nil {
		return models.Secret{}, fmt.Errorf("%s: %w", op, ErrEmptyResponse)
	}
	if !resp.Success {
		return models.Secret{}, rejected(resp.ErrorMsg)
	}
	if resp.Secret == nil {
		return models.Secret{}, fmt.Errorf("%s: %w: no secret", op, ErrEmptyResponse)
	}
	return *resp.Secret, nil
}

// FetchGeneralData implements [SecretAPI] with the ownedSecret query
// restricted to general fields.
func (g *graphQLSecretAPI) FetchGeneralData(ctx context.Context, secretID string) (models.Secret, error) {
	data, err := execute[ownedSecretData](ctx, g, "getGeneralSecretData", generalSecretDataQuery, map[string]any{"id": secretID})
	if err != nil {
		return models.Secret{}, err
	}
	return secretFrom("getGeneralSecretData", data.OwnedSecret)
}

// FetchVariantData implements [SecretAPI] with the ownedSecret query
// selecting the bundle of typeID and the key with its salt.
func (g *graphQLSecretAPI) FetchVariantData(ctx context.Context, typeID, secretID string) (models.Secret, error) {
	sel, err := variantSelection(typeID)
	if err != nil {
		return models.Secret{}, err
	}

	data, err := execute[ownedSecretData](ctx, g, "getVariantSecretData", fmt.Sprintf(variantSecretDataQuery, sel), map[string]any{"id": secretID})
	if err != nil {
		return models.Secret{}, err
	}
	return secretFrom("getVariantSecretData", data.OwnedSecret)
}

// UnlockVariant implements [SecretAPI] with the unlockSecret mutation.
func (g *graphQLSecretAPI) UnlockVariant(ctx context.Context, typeID string, unlock models.UnlockRequest) (models.Secret, error) {
	sel, err := variantSelection(typeID)
	if err != nil {
		return models.Secret{}, err
	}

	data, err := execute[unlockSecretData](ctx, g, "unlockSecret", fmt.Sprintf(unlockSecretMutation, sel), map[string]any{"unlockRequest": unlock})
	if err != nil {
		return models.Secret{}, err
	}
	return secretFrom("unlockSecret", data.UnlockSecret)
}

// SaveSecret implements [SecretAPI] with the saveSecret mutation. The
// response selects the bundle of input.TypeID so callers can reload it.
func (g *graphQLSecretAPI) SaveSecret(ctx context.Context, input models.SecretInput) (models.Secret, error) {
	sel, _ := variantSelection(input.TypeID)

	data, err := execute[saveSecretData](ctx, g, "saveSecret", fmt.Sprintf(saveSecretMutation, sel), map[string]any{"secretInput": input})
	if err != nil {
		return models.Secret{}, err
	}
	return secretFrom("saveSecret", data.SaveSecret)
}

// DeleteSecret implements [SecretAPI] with the deleteSecret mutation.
func (g *graphQLSecretAPI) DeleteSecret(ctx context.Context, secretID string) error {
	data, err := execute[deleteSecretData](ctx, g, "deleteSecret", deleteSecretMutation, map[string]any{"secretId": secretID})
	if err != nil {
		return err
	}
	if data.DeleteSecret == nil {
		return fmt.Errorf("deleteSecret: %w", ErrEmptyResponse)
	}
	if !data.DeleteSecret.Success {
		return rejected(data.DeleteSecret.ErrorMsg)
	}
	return nil
}
