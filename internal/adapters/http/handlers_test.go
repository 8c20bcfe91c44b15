package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wishmas/core/internal/adapters/repository"
	"github.com/wishmas/core/internal/application/services"
	"github.com/wishmas/core/internal/domain/entities"
	"github.com/wishmas/core/internal/infrastructure/config"
	"github.com/wishmas/core/internal/infrastructure/filestore"
	"github.com/wishmas/core/internal/infrastructure/logger"
)

type testValidator struct {
	validate *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

type testEnv struct {
	echo    *echo.Echo
	auth    *AuthHandler
	lists   *ListHandler
	stats   *StatsHandler
	cfg     *ConfigHandler
	account *AccountHandler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store, err := filestore.Open(config.StorageConfig{
		DataDir:    t.TempDir(),
		ConfigFile: "config.json",
	}, logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	e := echo.New()
	e.Validator = &testValidator{validate: validator.New()}

	nop := logger.NewNop()
	configRepo := repository.NewConfigRepository(store)
	accountRepo := repository.NewAccountRepository(store)
	userRepo := repository.NewUserRepository(store)
	listRepo := repository.NewListRepository(store)
	announcementRepo := repository.NewAnnouncementRepository(store)
	drafts := repository.NewDraftCache()

	listService := services.NewListService(listRepo, drafts, nop)
	statsService := services.NewStatsService(listRepo, userRepo, announcementRepo, accountRepo, nop)

	return &testEnv{
		echo:    e,
		auth:    NewAuthHandler(services.NewAuthService(configRepo, accountRepo, nop), nop),
		lists:   NewListHandler(listService, nop),
		stats:   NewStatsHandler(statsService, nop),
		cfg:     NewConfigHandler(services.NewConfigService(configRepo, nop), nop),
		account: NewAccountHandler(services.NewAccountService(accountRepo, nop), nop),
	}
}

func (env *testEnv) request(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return env.echo.NewContext(req, rec), rec
}

func httpErrorCode(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	return he.Code
}

func TestLoginEndpoint(t *testing.T) {
	env := newTestEnv(t)

	c, rec := env.request(http.MethodPost, "/api/login", `{"role":"user","username":"alice","password":"user123"}`)
	require.NoError(t, env.auth.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp services.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, entities.RoleUser, resp.Role)

	c, _ = env.request(http.MethodPost, "/api/login", `{"role":"user","username":"alice","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, httpErrorCode(t, env.auth.Login(c)))

	c, _ = env.request(http.MethodPost, "/api/login", `{"role":"santa","password":"user123"}`)
	assert.Equal(t, http.StatusBadRequest, httpErrorCode(t, env.auth.Login(c)))

	// Missing password fails validation before any lookup.
	c, _ = env.request(http.MethodPost, "/api/login", `{"role":"user","username":"alice"}`)
	assert.Equal(t, http.StatusBadRequest, httpErrorCode(t, env.auth.Login(c)))
}

func TestAddItemRequiresUsername(t *testing.T) {
	env := newTestEnv(t)

	c, _ := env.request(http.MethodPost, "/api/lists/current/items", `{"title":"Velo"}`)
	assert.Equal(t, http.StatusBadRequest, httpErrorCode(t, env.lists.AddItem(c)))
}

func TestDraftToSentListFlow(t *testing.T) {
	env := newTestEnv(t)

	// Sending an empty draft is rejected.
	c, _ := env.request(http.MethodPost, "/api/lists/send", `{"username":"alice"}`)
	assert.Equal(t, http.StatusBadRequest, httpErrorCode(t, env.lists.SendList(c)))

	c, rec := env.request(http.MethodPost, "/api/lists/current/items", `{"username":"alice","title":"Velo"}`)
	require.NoError(t, env.lists.AddItem(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var item entities.WishListItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	assert.Equal(t, 1, item.Quantity)

	c, rec = env.request(http.MethodGet, "/api/lists/current?username=alice", "")
	require.NoError(t, env.lists.CurrentList(c))
	var current entities.WishList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &current))
	require.Len(t, current.Items, 1)

	c, rec = env.request(http.MethodPost, "/api/lists/send", `{"username":"alice"}`)
	require.NoError(t, env.lists.SendList(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var sent entities.WishList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sent))
	assert.Equal(t, "alice", sent.Username)
	require.Len(t, sent.Items, 1)

	c, rec = env.request(http.MethodGet, "/api/lists", "")
	require.NoError(t, env.lists.ListLists(c))
	var lists []*entities.WishList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lists))
	require.Len(t, lists, 1)
	assert.Equal(t, sent.ID, lists[0].ID)
}

func TestCurrentListEmptyDraftSerializesItemsAsArray(t *testing.T) {
	env := newTestEnv(t)

	c, rec := env.request(http.MethodGet, "/api/lists/current?username=alice", "")
	require.NoError(t, env.lists.CurrentList(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"items":[]`)
}

func TestGetListByID(t *testing.T) {
	env := newTestEnv(t)

	c, _ := env.request(http.MethodPost, "/api/lists/current/items", `{"username":"alice","title":"Velo"}`)
	require.NoError(t, env.lists.AddItem(c))
	c, rec := env.request(http.MethodPost, "/api/lists/send", `{"username":"alice"}`)
	require.NoError(t, env.lists.SendList(c))

	var sent entities.WishList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sent))

	c, rec = env.request(http.MethodGet, "/api/lists/"+sent.ID, "")
	c.SetParamNames("id")
	c.SetParamValues(sent.ID)
	require.NoError(t, env.lists.GetList(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got entities.WishList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, sent.ID, got.ID)

	c, _ = env.request(http.MethodGet, "/api/lists/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	assert.Equal(t, http.StatusNotFound, httpErrorCode(t, env.lists.GetList(c)))
}

func TestCurrentListRequiresUsernameParam(t *testing.T) {
	env := newTestEnv(t)

	c, _ := env.request(http.MethodGet, "/api/lists/current", "")
	assert.Equal(t, http.StatusBadRequest, httpErrorCode(t, env.lists.CurrentList(c)))
}

func TestUpdateMissingItemReturnsNotFound(t *testing.T) {
	env := newTestEnv(t)

	c, _ := env.request(http.MethodPut, "/api/lists/current/items/missing", `{"username":"alice","title":"Velo"}`)
	c.SetParamNames("id")
	c.SetParamValues("missing")
	assert.Equal(t, http.StatusNotFound, httpErrorCode(t, env.lists.UpdateItem(c)))
}

func TestResetListsEndpoint(t *testing.T) {
	env := newTestEnv(t)

	c, _ := env.request(http.MethodPost, "/api/lists/current/items", `{"username":"alice","title":"Velo"}`)
	require.NoError(t, env.lists.AddItem(c))
	c, _ = env.request(http.MethodPost, "/api/lists/send", `{"username":"alice"}`)
	require.NoError(t, env.lists.SendList(c))

	c, rec := env.request(http.MethodPost, "/api/lists/reset", "")
	require.NoError(t, env.lists.ResetLists(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = env.request(http.MethodGet, "/api/lists", "")
	require.NoError(t, env.lists.ListLists(c))
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestStatsEndpoint(t *testing.T) {
	env := newTestEnv(t)

	c, _ := env.request(http.MethodPost, "/api/lists/current/items", `{"username":"alice","title":"Velo"}`)
	require.NoError(t, env.lists.AddItem(c))
	c, _ = env.request(http.MethodPost, "/api/lists/send", `{"username":"alice"}`)
	require.NoError(t, env.lists.SendList(c))

	c, rec := env.request(http.MethodGet, "/api/stats", "")
	require.NoError(t, env.stats.GetStats(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var stats entities.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.TotalLists)
	assert.Equal(t, 1, stats.TotalItems)
}

func TestConfigEndpoints(t *testing.T) {
	env := newTestEnv(t)

	c, rec := env.request(http.MethodGet, "/api/config", "")
	require.NoError(t, env.cfg.GetConfig(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var cfg entities.Config
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cfg))
	assert.Equal(t, "user123", cfg.UserPassword)

	c, rec = env.request(http.MethodPut, "/api/config", `{"userPassword":"newpass"}`)
	require.NoError(t, env.cfg.UpdateConfig(c))

	var updated entities.Config
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "newpass", updated.UserPassword)
	assert.Equal(t, "parent123", updated.ParentPassword)
}

func TestAccountEndpoints(t *testing.T) {
	env := newTestEnv(t)

	body := `{"username":"papa","password":"secret","displayName":"Papa","role":"parent"}`
	c, rec := env.request(http.MethodPost, "/api/accounts", body)
	require.NoError(t, env.account.CreateAccount(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created entities.Account
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Empty(t, created.Password)

	// Same username again conflicts.
	c, _ = env.request(http.MethodPost, "/api/accounts", body)
	assert.Equal(t, http.StatusConflict, httpErrorCode(t, env.account.CreateAccount(c)))

	c, rec = env.request(http.MethodGet, "/api/accounts", "")
	require.NoError(t, env.account.ListAccounts(c))
	var accounts []*entities.Account
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &accounts))
	require.Len(t, accounts, 1)

	c, _ = env.request(http.MethodDelete, "/api/accounts/"+created.ID, "")
	c.SetParamNames("id")
	c.SetParamValues(created.ID)
	require.NoError(t, env.account.DeleteAccount(c))

	c, _ = env.request(http.MethodDelete, "/api/accounts/"+created.ID, "")
	c.SetParamNames("id")
	c.SetParamValues(created.ID)
	assert.Equal(t, http.StatusNotFound, httpErrorCode(t, env.account.DeleteAccount(c)))
}
