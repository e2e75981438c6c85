package metaclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/ads-autopilot-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-autopilot-api/internal/config"
)

type fakeTokens struct {
	token     string
	refreshes int32
}

func (f *fakeTokens) AccessToken() string                    { return f.token }
func (f *fakeTokens) EnsureValidToken(context.Context) error { return nil }
func (f *fakeTokens) RefreshToken(context.Context) error {
	atomic.AddInt32(&f.refreshes, 1)
	f.token = "refreshed-token"
	return nil
}

func newTestClient(t *testing.T, handler http.HandlerFunc, tokens TokenSource) *MetaClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Meta.URL = server.URL
	cfg.Meta.PageLimit = 2
	return NewClient(cfg, tokens)
}

func TestGetCampaigns_FollowsPagination(t *testing.T) {
	var serverURL string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "token", r.URL.Query().Get("access_token"))

		switch r.URL.Path {
		case "/act_1/campaigns":
			assert.Equal(t, "2", r.URL.Query().Get("limit"))
			assert.Equal(t, campaignFields, r.URL.Query().Get("fields"))
			fmt.Fprintf(w, `{"data":[{"id":"c1","status":"ACTIVE","daily_budget":"5000"},{"id":"c2","status":"PAUSED"}],
				"paging":{"next":"%s/page2?after=abc&access_token=old"}}`, serverURL)
		case "/page2":
			assert.Equal(t, "abc", r.URL.Query().Get("after"))
			fmt.Fprint(w, `{"data":[{"id":"c3","status":"ACTIVE"}],"paging":{}}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}, StaticToken("token"))
	serverURL = client.apiURL

	campaigns, err := client.GetCampaigns(context.Background(), "act_1")
	require.NoError(t, err)
	require.Len(t, campaigns, 3)
	assert.Equal(t, "c1", campaigns[0].ID)
	assert.Equal(t, "5000", campaigns[0].DailyBudget)
	assert.Equal(t, "c3", campaigns[2].ID)
}

func TestGetInsights_RetriesOnceAfterTokenRefresh(t *testing.T) {
	tokens := &fakeTokens{token: "expired-token"}
	var calls int32

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		if r.URL.Query().Get("access_token") == "expired-token" {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error":{"message":"Error validating access token","type":"OAuthException","code":190}}`)
			return
		}

		assert.Equal(t, "ad", r.URL.Query().Get("level"))
		assert.Equal(t, "last_7d", r.URL.Query().Get("date_preset"))
		fmt.Fprint(w, `{"data":[{"ad_id":"a1","impressions":"1000","ctr":"1.5"}]}`)
	}, tokens)

	records, err := client.GetInsights(context.Background(), "a1", "ad", "last_7d")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "1000", records[0].Impressions)
	assert.Equal(t, int32(1), atomic.LoadInt32(&tokens.refreshes))
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestGetAds_ReturnsAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"message":"Unsupported get request","type":"GraphMethodException","code":100}}`)
	}, StaticToken("token"))

	_, err := client.GetAds(context.Background(), "as1")
	require.Error(t, err)

	var apiErr *metadomain.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, 100, apiErr.Details.Code)
}

func TestUpdateStatus_PostsForm(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/a1", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "PAUSED", r.PostForm.Get("status"))
		assert.Equal(t, "token", r.PostForm.Get("access_token"))
		fmt.Fprint(w, `{"success":true}`)
	}, StaticToken("token"))

	require.NoError(t, client.UpdateStatus(context.Background(), "a1", "PAUSED"))
}

func TestUpdateDailyBudget_NotAcknowledged(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "12000", r.PostForm.Get("daily_budget"))
		fmt.Fprint(w, `{"success":false}`)
	}, StaticToken("token"))

	err := client.UpdateDailyBudget(context.Background(), "as1", 12000)
	assert.Error(t, err)
}
