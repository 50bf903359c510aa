package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cutlery/internal/auth"
	"cutlery/internal/catalog"
	"cutlery/internal/config"
	apperrors "cutlery/internal/errors"
	"cutlery/internal/handler"
	"cutlery/internal/jsonstore"
	"cutlery/internal/model"
	"cutlery/internal/partner"
	"cutlery/internal/service"
)

func newTestServer(t *testing.T, partnerURL string) *echo.Echo {
	t.Helper()
	ctx := context.Background()

	store, err := jsonstore.Open(afero.NewMemMapFs(), "/data")
	require.NoError(t, err)
	require.NoError(t, store.Catalog().Replace(ctx, model.CategoryMetals, []model.CatalogEntry{{ID: 1, Name: "Silver"}, {ID: 2, Name: "Stainless Steel"}}))
	require.NoError(t, store.Catalog().Replace(ctx, model.CategoryHandles, []model.CatalogEntry{{ID: 1, Name: "Wood"}, {ID: 2, Name: "Plastic"}}))
	require.NoError(t, store.Catalog().Replace(ctx, model.CategoryCutleryTypes, []model.CatalogEntry{{ID: 1, Name: "Spoon"}, {ID: 2, Name: "Fork"}, {ID: 3, Name: "Knife"}}))

	cfg := &config.Config{
		JWTSecret:      "myjwtsecret",
		AdminUsername:  "jazmy",
		PartnerBaseURL: partnerURL,
		PartnerTimeout: 2 * time.Second,
		DesignCacheTTL: time.Minute,
	}
	cat, err := service.LoadCatalog(ctx, store.Catalog())
	require.NoError(t, err)

	var partnerClient partner.Client
	if cfg.PartnerEnabled() {
		partnerClient = partner.NewClient(cfg.PartnerBaseURL, cfg.PartnerTimeout)
	}
	log := zap.NewNop()
	authService := service.NewAuthService(store.Users(), auth.NewJWTService(cfg.JWTSecret), partnerClient, cfg.AdminUsername)

	e := echo.New()
	Register(e, cfg, log, authService, Handlers{
		Auth:        handler.NewAuthHandler(authService, log),
		Requirement: handler.NewRequirementHandler(service.NewRequirementService(store.Requirements(), cat), log),
		Choice:      handler.NewChoiceHandler(service.NewCatalogService(cat)),
		HomeDesign:  handler.NewHomeDesignHandler(service.NewHomeDesignService(partnerClient, nil, cfg.DesignCacheTTL), log),
	})
	return e
}

func do(e *echo.Echo, method, path, token, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func doJSON(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	return do(e, method, path, token, echo.MIMEApplicationJSON, body)
}

func register(t *testing.T, e *echo.Echo, username, password string) model.User {
	t.Helper()
	rec := doJSON(e, http.MethodPost, "/register", "", `{"username":"`+username+`","password":"`+password+`"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var user model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	return user
}

func login(t *testing.T, e *echo.Echo, username, password string) string {
	t.Helper()
	form := url.Values{"username": {username}, "password": {password}}
	rec := do(e, http.MethodPost, "/token", "", echo.MIMEApplicationForm, form.Encode())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp handler.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "bearer", resp.TokenType)
	return resp.AccessToken
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apperrors.ErrorResponse {
	t.Helper()
	var resp apperrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func decodeRequirements(t *testing.T, rec *httptest.ResponseRecorder) []model.Requirement {
	t.Helper()
	var reqs []model.Requirement
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reqs))
	return reqs
}

func TestHealthz(t *testing.T) {
	e := newTestServer(t, "")
	rec := do(e, http.MethodGet, "/healthz", "", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestAuthFlow(t *testing.T) {
	e := newTestServer(t, "")

	alice := register(t, e, "alice", "rightpw")
	assert.Equal(t, 1, alice.ID)
	assert.False(t, alice.IsAdmin)

	admin := register(t, e, "jazmy", "adminpw")
	assert.Equal(t, 2, admin.ID)
	assert.True(t, admin.IsAdmin)

	rec := doJSON(e, http.MethodPost, "/register", "", `{"username":"alice","password":"x"}`)
	assert.NotContains(t, rec.Body.String(), "password_hash")

	token := login(t, e, "alice", "rightpw")

	form := url.Values{"username": {"alice"}, "password": {"wrongpw"}}
	rec = do(e, http.MethodPost, "/token", "", echo.MIMEApplicationForm, form.Encode())
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decodeError(t, rec).Code)

	rec = do(e, http.MethodGet, "/users/me", token, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var me model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	assert.Equal(t, "alice", me.Username)

	rec = do(e, http.MethodGet, "/users/me", "", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(e, http.MethodGet, "/users/me", "not-a-token", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_TOKEN", decodeError(t, rec).Code)

	orphan, err := auth.NewJWTService("myjwtsecret").GenerateToken(&model.User{ID: 77, Username: "ghost"})
	require.NoError(t, err)
	rec = do(e, http.MethodGet, "/users/me", orphan, "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_USER", decodeError(t, rec).Code)

	rec = doJSON(e, http.MethodPost, "/register", "", `{"username":"bob"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestChoices(t *testing.T) {
	e := newTestServer(t, "")

	rec := do(e, http.MethodGet, "/choices/metals", "", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Silver"},{"id":2,"name":"Stainless Steel"}]`, rec.Body.String())

	rec = do(e, http.MethodGet, "/choices/types", "", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Spoon"},{"id":2,"name":"Fork"},{"id":3,"name":"Knife"}]`, rec.Body.String())
}

func TestRequirementLifecycle(t *testing.T) {
	e := newTestServer(t, "")
	register(t, e, "jazmy", "adminpw")
	register(t, e, "bob", "bobpw")
	register(t, e, "carol", "carolpw")
	adminToken := login(t, e, "jazmy", "adminpw")
	bobToken := login(t, e, "bob", "bobpw")
	carolToken := login(t, e, "carol", "carolpw")

	// admin creates for bob
	rec := doJSON(e, http.MethodPost, "/requirements/new", adminToken,
		`{"requirement_admin_data":{"username":"bob","metal":"Silver","handle":"Wood","cutlery_type":"Spoon","quantity":3}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var first model.Requirement
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &first))
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, "bob", first.Username)
	assert.Equal(t, catalog.ResolveImage("Silver", "Wood", "Spoon"), first.ImageURL)

	// bob creates his own, owner forced to bob
	rec = doJSON(e, http.MethodPost, "/requirements/new", bobToken,
		`{"requirement_user_data":{"metal":"Stainless Steel","handle":"Plastic","cutlery_type":"Fork","quantity":1}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// carol creates one
	rec = doJSON(e, http.MethodPost, "/requirements/new", carolToken,
		`{"requirement_user_data":{"metal":"Silver","handle":"Plastic","cutlery_type":"Knife","quantity":6}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// scoped listing
	rec = do(e, http.MethodGet, "/requirements/", bobToken, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	for _, req := range decodeRequirements(t, rec) {
		assert.Equal(t, "bob", req.Username)
	}
	rec = do(e, http.MethodGet, "/requirements", adminToken, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeRequirements(t, rec), 3)

	// existence hiding and forbidden edits
	rec = do(e, http.MethodGet, "/requirements/1", carolToken, "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = doJSON(e, http.MethodPut, "/requirements/edit/1", carolToken,
		`{"metal":"Silver","handle":"Wood","cutlery_type":"Knife","quantity":1}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = do(e, http.MethodDelete, "/requirements/delete/1", carolToken, "", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// owner edit re-resolves the picture
	rec = doJSON(e, http.MethodPut, "/requirements/edit/1", bobToken,
		`{"metal":"Silver","handle":"Wood","cutlery_type":"Knife","quantity":8}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var edited model.Requirement
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &edited))
	assert.Equal(t, 8, edited.Quantity)
	assert.Equal(t, "bob", edited.Username)
	assert.Equal(t, catalog.ResolveImage("Silver", "Wood", "Knife"), edited.ImageURL)

	// bob deletes id 1, ids shift down
	rec = do(e, http.MethodDelete, "/requirements/delete/1", bobToken, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Requirement deleted successfully"}`, rec.Body.String())

	rec = do(e, http.MethodGet, "/requirements", adminToken, "", "")
	reqs := decodeRequirements(t, rec)
	require.Len(t, reqs, 2)
	assert.Equal(t, 1, reqs[0].ID)
	assert.Equal(t, "Fork", reqs[0].CutleryType)
	assert.Equal(t, 2, reqs[1].ID)
	assert.Equal(t, "carol", reqs[1].Username)

	rec = do(e, http.MethodDelete, "/requirements/delete/9", adminToken, "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRequirementValidation(t *testing.T) {
	e := newTestServer(t, "")
	register(t, e, "jazmy", "adminpw")
	register(t, e, "bob", "bobpw")
	adminToken := login(t, e, "jazmy", "adminpw")
	bobToken := login(t, e, "bob", "bobpw")

	tests := []struct {
		name     string
		token    string
		method   string
		path     string
		body     string
		wantCode string
	}{
		{
			name: "unknown metal", token: bobToken, method: http.MethodPost, path: "/requirements/new",
			body:     `{"requirement_user_data":{"metal":"Copper","handle":"Wood","cutlery_type":"Spoon","quantity":1}}`,
			wantCode: "VALIDATION_FAILED",
		},
		{
			name: "admin must send admin payload", token: adminToken, method: http.MethodPost, path: "/requirements/new",
			body:     `{"requirement_user_data":{"metal":"Silver","handle":"Wood","cutlery_type":"Spoon","quantity":1}}`,
			wantCode: "MISSING_PAYLOAD",
		},
		{
			name: "non numeric id", token: bobToken, method: http.MethodGet, path: "/requirements/abc",
			wantCode: "INVALID_ID",
		},
		{
			name: "unknown handle on edit", token: bobToken, method: http.MethodPut, path: "/requirements/edit/1",
			body:     `{"metal":"Silver","handle":"Bone","cutlery_type":"Spoon","quantity":1}`,
			wantCode: "VALIDATION_FAILED",
		},
		{
			name: "missing fields", token: bobToken, method: http.MethodPut, path: "/requirements/edit/1",
			body:     `{"quantity":1}`,
			wantCode: "INVALID_REQUEST",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(e, tt.method, tt.path, tt.token, tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
		})
	}
}

func TestHomeDesign(t *testing.T) {
	var created url.Values
	partnerSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/users":
			w.WriteHeader(http.StatusOK)
		case r.Method == http.MethodPost && r.URL.Path == "/token":
			_ = r.ParseForm()
			_, _ = w.Write([]byte(`{"access_token":"partner-` + r.PostForm.Get("username") + `","token_type":"bearer"}`))
		case r.Method == http.MethodPost && r.URL.Path == "/alldata":
			if r.Header.Get("Authorization") != "Bearer partner-bob" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_ = r.ParseForm()
			created = r.PostForm
			_, _ = w.Write([]byte(`{"id":10,"desainname":"` + r.PostForm.Get("desainname") + `"}`))
		case r.Method == http.MethodGet && r.URL.Path == "/desain":
			_, _ = w.Write([]byte(`[{"id":10,"desainname":"bob_kitchen"},{"id":11,"desainname":"carol_patio"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(partnerSrv.Close)

	e := newTestServer(t, partnerSrv.URL)
	register(t, e, "bob", "bobpw")
	bobToken := login(t, e, "bob", "bobpw")

	form := url.Values{
		"desainname":   {"kitchen"},
		"deskripsi":    {"open plan"},
		"tanggalpesan": {"2024-05-01"},
		"status":       {"new"},
		"namadesainer": {"eve"},
		"nohp":         {"0812"},
	}
	rec := do(e, http.MethodPost, "/home-design/create", bobToken, echo.MIMEApplicationForm, form.Encode())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"id":10,"desainname":"bob_kitchen"}`, rec.Body.String())
	assert.Equal(t, "bob_kitchen", created.Get("desainname"))
	assert.Equal(t, "eve", created.Get("namadesainer"))

	rec = do(e, http.MethodGet, "/home-design/", bobToken, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":10,"desainname":"bob_kitchen"}]`, rec.Body.String())

	form.Del("nohp")
	rec = do(e, http.MethodPost, "/home-design/create", bobToken, echo.MIMEApplicationForm, form.Encode())
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHomeDesign_PartnerDisabled(t *testing.T) {
	e := newTestServer(t, "")
	register(t, e, "bob", "bobpw")
	bobToken := login(t, e, "bob", "bobpw")

	rec := do(e, http.MethodGet, "/home-design/", bobToken, "", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "PARTNER_DISABLED", decodeError(t, rec).Code)
}

func TestRegister_PartnerFailurePropagates(t *testing.T) {
	partnerSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	t.Cleanup(partnerSrv.Close)

	e := newTestServer(t, partnerSrv.URL)
	rec := doJSON(e, http.MethodPost, "/register", "", `{"username":"bob","password":"pw"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "UPSTREAM_ERROR", decodeError(t, rec).Code)

	form := url.Values{"username": {"bob"}, "password": {"pw"}}
	rec = do(e, http.MethodPost, "/token", "", echo.MIMEApplicationForm, form.Encode())
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegister_PartnerUnreachable(t *testing.T) {
	partnerSrv := httptest.NewServer(http.NotFoundHandler())
	partnerSrv.Close()

	e := newTestServer(t, partnerSrv.URL)
	rec := doJSON(e, http.MethodPost, "/register", "", `{"username":"bob","password":"s3cret-pw"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "UPSTREAM_ERROR", decodeError(t, rec).Code)
	assert.NotContains(t, rec.Body.String(), "s3cret-pw")
}
