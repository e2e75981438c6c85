package metaclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-autopilot-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-autopilot-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// errTokenRefreshed sinaliza que o token foi renovado e a requisição deve ser repetida
var errTokenRefreshed = errors.New("token expirado e renovado, por favor tente novamente")

// maxPages limita a paginação de uma única listagem
const maxPages = 50

type Client interface {
	GetCampaigns(ctx context.Context, accountID string) ([]metadomain.Campaign, error)
	GetAdSets(ctx context.Context, campaignID string) ([]metadomain.AdSet, error)
	GetAds(ctx context.Context, adSetID string) ([]metadomain.Ad, error)
	GetInsights(ctx context.Context, entityID string, level string, datePreset string) ([]metadomain.InsightRecord, error)
	UpdateStatus(ctx context.Context, entityID string, status string) error
	UpdateDailyBudget(ctx context.Context, adSetID string, amountMinorUnits int64) error
}

type MetaClient struct {
	apiURL     string
	pageLimit  int
	httpClient *http.Client
	tokens     TokenSource
}

func NewClient(cfg *config.Config, tokens TokenSource) *MetaClient {
	timeout := cfg.Meta.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	pageLimit := cfg.Meta.PageLimit
	if pageLimit <= 0 {
		pageLimit = 100
	}

	return &MetaClient{
		apiURL:     strings.TrimRight(cfg.Meta.URL, "/"),
		pageLimit:  pageLimit,
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
	}
}

// getJSON faz um GET na Graph API e decodifica a resposta em out.
// path relativo à versão da API ou URL absoluta (paging.next).
func (c *MetaClient) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	return c.withTokenRetry(ctx, func(token string) error {
		requestURL, err := c.buildURL(path, params, token)
		if err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return err
		}

		body, err := c.do(req)
		if err != nil {
			return err
		}

		if err := json.Unmarshal(body, out); err != nil {
			logrus.WithError(err).Error("meta: erro ao decodificar JSON")
			return fmt.Errorf("meta: decode %s: %w", path, err)
		}
		return nil
	})
}

// buildURL monta a URL da chamada. URLs absolutas (paging.next) já trazem os
// parâmetros e só recebem o token corrente.
func (c *MetaClient) buildURL(path string, params url.Values, token string) (string, error) {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		u, err := url.Parse(path)
		if err != nil {
			return "", fmt.Errorf("meta: invalid paging url: %w", err)
		}
		q := u.Query()
		q.Set("access_token", token)
		u.RawQuery = q.Encode()
		return u.String(), nil
	}

	q := url.Values{}
	for k, v := range params {
		q[k] = v
	}
	q.Set("access_token", token)
	return fmt.Sprintf("%s/%s?%s", c.apiURL, strings.TrimLeft(path, "/"), q.Encode()), nil
}

// postForm envia uma escrita (form-encoded) para um nó da Graph API
func (c *MetaClient) postForm(ctx context.Context, path string, form url.Values) error {
	return c.withTokenRetry(ctx, func(token string) error {
		values := url.Values{}
		for k, v := range form {
			values[k] = v
		}
		values.Set("access_token", token)

		requestURL := fmt.Sprintf("%s/%s", c.apiURL, strings.TrimLeft(path, "/"))
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, strings.NewReader(values.Encode()))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		body, err := c.do(req)
		if err != nil {
			return err
		}

		var resp metadomain.StatusUpdateResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return fmt.Errorf("meta: decode %s: %w", path, err)
		}
		if !resp.Success {
			return fmt.Errorf("meta: update %s not acknowledged", path)
		}
		return nil
	})
}

// withTokenRetry garante o token antes da chamada e repete uma única vez
// quando a API indica token expirado
func (c *MetaClient) withTokenRetry(ctx context.Context, call func(token string) error) error {
	if err := c.tokens.EnsureValidToken(ctx); err != nil {
		return fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	err := call(c.tokens.AccessToken())
	if !errors.Is(err, errTokenRefreshed) {
		return err
	}

	return call(c.tokens.AccessToken())
}

func (c *MetaClient) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("meta: erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	return nil, c.handleErrorResponse(req.Context(), resp.StatusCode, body)
}

func (c *MetaClient) handleErrorResponse(ctx context.Context, status int, body []byte) error {
	apiErr := &metadomain.APIError{StatusCode: status}

	var errorResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err == nil {
		apiErr.Details = errorResp.Error
	} else {
		apiErr.Details.Message = string(body)
	}

	if errorResp.IsTokenExpired() || containsTokenExpirationMessage(string(body)) {
		logrus.Warnf("Token expirado detectado pela API Meta. Código: %d, Subcódigo: %d",
			errorResp.Error.Code, errorResp.Error.ErrorSubcode)

		if refreshErr := c.tokens.RefreshToken(ctx); refreshErr != nil {
			return fmt.Errorf("erro ao renovar token expirado: %w", refreshErr)
		}
		return errTokenRefreshed
	}

	if errorResp.IsRateLimited() {
		logrus.WithField("code", errorResp.Error.Code).Warn("meta: limite de chamadas atingido")
	}

	return apiErr
}

// listAll percorre todas as páginas de uma listagem seguindo paging.next
func listAll[T any](ctx context.Context, c *MetaClient, path string, params url.Values) ([]T, error) {
	params.Set("limit", fmt.Sprintf("%d", c.pageLimit))

	items := make([]T, 0)
	next := path
	for page := 0; next != ""; page++ {
		if page >= maxPages {
			logrus.WithField("path", path).Warn("meta: limite de páginas atingido, resultado truncado")
			break
		}

		var resp metadomain.Page[T]
		if err := c.getJSON(ctx, next, params, &resp); err != nil {
			return nil, err
		}

		items = append(items, resp.Data...)
		next = resp.Paging.Next
	}

	return items, nil
}
