package integration_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atelierdoces/backoffice/internal/domain/auth"
	"github.com/atelierdoces/backoffice/internal/guard"
	"github.com/atelierdoces/backoffice/internal/testserver"
)

// signIn authenticates over HTTP so the session cookies land in the jar,
// the way a browser session starts.
func signIn(t *testing.T, ts *testserver.TestServer, client *http.Client, email, password string) {
	t.Helper()
	_, err := ts.Auth.Register(context.Background(), auth.RegisterRequest{
		Email:    email,
		Name:     "Ana",
		Password: password,
	})
	require.NoError(t, err)

	body := []byte(`{"email":"` + email + `","password":"` + password + `"}`)
	resp, err := client.Post(ts.Server.URL+"/api/auth/sign-in", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSessionSurvivesAccessTokenExpiry(t *testing.T) {
	ts := testserver.New(t)
	base, err := url.Parse(ts.Server.URL)
	require.NoError(t, err)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	httpClient := &http.Client{Jar: jar}

	signIn(t, ts, httpClient, "ana@atelier.test", "confeitaria")

	store := guard.NewCookieStore(jar, base)
	pair, ok := store.Read()
	require.True(t, ok)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	// Navigation is a real page move: fetch the refresh endpoint with the
	// same jar, without following the final redirect.
	var navigations atomic.Int32
	navigate := func(target string) error {
		navigations.Add(1)
		req, err := http.NewRequest(http.MethodGet, target, nil)
		if err != nil {
			return err
		}
		resp, err := (&http.Client{
			Jar: jar,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		}).Do(req)
		if err != nil {
			return err
		}
		resp.Body.Close()
		return nil
	}

	client := guard.NewClient(httpClient, base, store, guard.NewBrowserContext(navigate), nil)

	// Healthy session works as-is.
	profile, err := client.CheckAuthentication(context.Background(), "/projects")
	require.NoError(t, err)
	require.Equal(t, "ana@atelier.test", profile.Email)

	// The access token dies out from under the page; the refresh token
	// stays good.
	jar.SetCookies(base, []*http.Cookie{{Name: "access_token", Value: "expired-garbage", Path: "/"}})

	_, err = client.Get(context.Background(), "/api/auth/me")
	require.ErrorIs(t, err, guard.ErrSessionExpired)
	require.Equal(t, int32(1), navigations.Load())

	// The navigation rotated the session. A fresh page load sees new
	// working cookies.
	rotated, ok := store.Read()
	require.True(t, ok)
	require.NotEmpty(t, rotated.AccessToken)
	require.NotEqual(t, pair.AccessToken, rotated.AccessToken)
	require.NotEqual(t, pair.RefreshToken, rotated.RefreshToken)

	reloaded := guard.NewClient(httpClient, base, store, guard.NewBrowserContext(navigate), nil)
	profile, err = reloaded.CheckAuthentication(context.Background(), "/projects")
	require.NoError(t, err)
	require.Equal(t, "ana@atelier.test", profile.Email)
	require.Equal(t, int32(1), navigations.Load(), "a healthy session must not navigate")
}

func TestDeadSessionLandsOnSignIn(t *testing.T) {
	ts := testserver.New(t)
	base, err := url.Parse(ts.Server.URL)
	require.NoError(t, err)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	httpClient := &http.Client{Jar: jar}

	signIn(t, ts, httpClient, "ana@atelier.test", "confeitaria")

	store := guard.NewCookieStore(jar, base)
	require.NoError(t, store.Clear())

	client := guard.NewClient(httpClient, base, store, guard.ServerContext{}, nil)
	_, err = client.CheckAuthentication(context.Background(), "/projects")
	redir, ok := guard.AsRedirect(err)
	require.True(t, ok)
	require.Equal(t, guard.SignInPath, redir.Location)
}

func TestRefreshWithRevokedTokenIsTerminal(t *testing.T) {
	ts := testserver.New(t)
	base, err := url.Parse(ts.Server.URL)
	require.NoError(t, err)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	httpClient := &http.Client{Jar: jar}

	signIn(t, ts, httpClient, "ana@atelier.test", "confeitaria")

	store := guard.NewCookieStore(jar, base)
	pair, _ := store.Read()

	// Sign out server-side; the cookies in the jar are now orphans.
	require.NoError(t, ts.Auth.SignOut(context.Background(), pair.RefreshToken))

	// The refresh endpoint answers with a redirect to sign-in rather
	// than a 401, so the client cannot loop.
	noRedirect := &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := noRedirect.Get(ts.Server.URL + "/api/auth/refresh?redirect_to=%2Fprojects")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/sign-in", resp.Header.Get("Location"))
}
