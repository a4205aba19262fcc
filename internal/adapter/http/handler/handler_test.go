package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sovtoken-payments/internal/adapter/http/dto"
	"sovtoken-payments/internal/adapter/http/middleware"
	"sovtoken-payments/internal/bridge"
	"sovtoken-payments/internal/core/domain"
	"sovtoken-payments/internal/core/payload"
	"sovtoken-payments/internal/core/ports"
	"sovtoken-payments/internal/core/ports/mocks"
	"sovtoken-payments/internal/service"
	"sovtoken-payments/pkg/address"
	"sovtoken-payments/pkg/apperror"
	"sovtoken-payments/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testDID = "V4SGRU86Z58d6TV7PBUe6f"

func init() {
	gin.SetMode(gin.TestMode)
}

func testKey(b byte) address.VerKey {
	var k address.VerKey
	for i := range k {
		k[i] = b + byte(i)*3
	}
	return k
}

var (
	addrA = address.Create(testKey(1))
	addrB = address.Create(testKey(2))
)

type testEnv struct {
	router   *gin.Engine
	wallet   *mocks.MockWallet
	cache    *mocks.MockResultCache
	registry *prometheus.Registry
}

func setupRouter(t *testing.T) *testEnv {
	ctrl := gomock.NewController(t)
	env := &testEnv{
		wallet:   mocks.NewMockWallet(ctrl),
		cache:    mocks.NewMockResultCache(ctrl),
		registry: prometheus.NewRegistry(),
	}

	tokens := mocks.NewMockTokenService(ctrl)
	tokens.EXPECT().Validate("good").Return(&ports.TokenClaims{SubmitterDID: testDID}, nil).AnyTimes()
	tokens.EXPECT().Validate(gomock.Not("good")).Return(nil, errors.New("invalid")).AnyTimes()

	svc := service.NewPaymentMethodService(service.PaymentMethodOptions{
		Method:          "sov",
		ProtocolVersion: 2,
		Policy:          payload.DefaultPolicy(),
		FeePolicy:       domain.FeeUpdateReplace,
	}, env.wallet, metrics.NewPrometheusRecorder(env.registry), zerolog.Nop())

	methods := bridge.NewRegistry()
	require.NoError(t, methods.Register("sov", svc.Operations()))

	dispatcher := bridge.NewDispatcher(4, zerolog.Nop())
	t.Cleanup(dispatcher.Close)

	env.router = SetupRouter(RouterDeps{
		Methods:     NewMethodHandler(methods, dispatcher, env.cache, 10*time.Minute, zerolog.Nop()),
		TokenSvc:    tokens,
		Metrics:     env.registry,
		MetricsPath: "/metrics",
		Logger:      zerolog.Nop(),
	})
	return env
}

type apiCall struct {
	method string
	path   string
	body   string
	handle string
	token  string
}

func (e *testEnv) do(c apiCall) *httptest.ResponseRecorder {
	req := httptest.NewRequest(c.method, c.path, bytes.NewReader([]byte(c.body)))
	req.Header.Set("Content-Type", "application/json")
	token := c.token
	if token == "" {
		token = "good"
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if c.handle != "" {
		req.Header.Set(middleware.HeaderCommandHandle, c.handle)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Data      dto.CommandResult `json:"data"`
	ErrorCode string            `json:"error_code"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

// ==================== Requests ====================

func TestBuildPaymentRequest(t *testing.T) {
	env := setupRouter(t)
	body := fmt.Sprintf(`{"inputs":[{"address":%q,"sequence":1}],"outputs":[{"address":%q,"amount":10}]}`, addrA, addrB)

	w := env.do(apiCall{method: http.MethodPost, path: "/api/v1/methods/sov/requests/payment", body: body})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got := decode(t, w)
	want := fmt.Sprintf(`{"identifier":%q,"inputs":[{"address":%q,"sequence":1}],"operation":"PAY","outputs":[{"address":%q,"amount":10}],"protocolVersion":2}`,
		testDID, addrA, addrB)
	assert.JSONEq(t, want, string(got.Data.Result))
	assert.Equal(t, int32(0), got.Data.CommandHandle)
}

func TestBuildPaymentRequest_ValidationErrors(t *testing.T) {
	env := setupRouter(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"broken body", `{"inputs":`, http.StatusBadRequest, apperror.CodeMalformedConfig},
		{"missing inputs", fmt.Sprintf(`{"outputs":[{"address":%q,"amount":1}]}`, addrB), http.StatusBadRequest, apperror.CodeMalformedConfig},
		{"negative amount", fmt.Sprintf(`{"inputs":[{"address":%q,"sequence":1}],"outputs":[{"address":%q,"amount":-1}]}`, addrA, addrB),
			http.StatusUnprocessableEntity, apperror.CodeInvalidValue},
		{"bad checksum", fmt.Sprintf(`{"inputs":[{"address":%q,"sequence":1}],"outputs":[{"address":%q,"amount":1}]}`,
			addrA[:len(addrA)-4]+"1111", addrB), http.StatusUnprocessableEntity, apperror.CodeInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(apiCall{method: http.MethodPost, path: "/api/v1/methods/sov/requests/payment", body: tt.body})
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, decode(t, w).ErrorCode)
		})
	}
}

func TestBuildMintAndFeeRequests(t *testing.T) {
	env := setupRouter(t)

	w := env.do(apiCall{method: http.MethodPost, path: "/api/v1/methods/sov/requests/mint",
		body: fmt.Sprintf(`{"outputs":[{"address":%q,"amount":100}]}`, addrA)})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, string(decode(t, w).Data.Result), `"operation":"MINT"`)

	w = env.do(apiCall{method: http.MethodPost, path: "/api/v1/methods/sov/requests/set-fees", body: `{"fees":{"PAY":1}}`})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, string(decode(t, w).Data.Result), `"fees":{"PAY":1}`)

	w = env.do(apiCall{method: http.MethodPost, path: "/api/v1/methods/sov/requests/get-fees"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, string(decode(t, w).Data.Result), `"operation":"GET_FEES"`)

	w = env.do(apiCall{method: http.MethodPost, path: "/api/v1/methods/sov/requests/get-utxo",
		body: fmt.Sprintf(`{"payment_address":%q}`, addrA)})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, string(decode(t, w).Data.Result), `"operation":"GET_UTXO"`)
}

// ==================== Replay ====================

func TestCommandReplay(t *testing.T) {
	env := setupRouter(t)
	key := domain.BuildCommandKey("sov", domain.OperationGetFees, testDID, 7, nil)
	cached := []byte(`{"cached":true}`)

	env.cache.EXPECT().Get(gomock.Any(), key).Return(nil, nil)
	env.cache.EXPECT().Set(gomock.Any(), key, gomock.Any(), 10*time.Minute).Return(nil)

	w := env.do(apiCall{method: http.MethodPost, path: "/api/v1/methods/sov/requests/get-fees", handle: "7"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, int32(7), decode(t, w).Data.CommandHandle)

	env.cache.EXPECT().Get(gomock.Any(), key).Return(cached, nil)

	w = env.do(apiCall{method: http.MethodPost, path: "/api/v1/methods/sov/requests/get-fees", handle: "7"})
	require.Equal(t, http.StatusOK, w.Code)
	got := decode(t, w)
	assert.Equal(t, int32(7), got.Data.CommandHandle)
	assert.JSONEq(t, string(cached), string(got.Data.Result))
}

func TestCommandReplay_ReusedHandleWithNewBody(t *testing.T) {
	env := setupRouter(t)
	first := fmt.Sprintf(`{"outputs":[{"address":%q,"amount":100}]}`, addrA)
	second := fmt.Sprintf(`{"outputs":[{"address":%q,"amount":200}]}`, addrA)

	var keys []string
	env.cache.EXPECT().Get(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, key string) ([]byte, error) {
		keys = append(keys, key)
		return nil, nil
	}).Times(2)
	env.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), 10*time.Minute).Return(nil).Times(2)

	w := env.do(apiCall{method: http.MethodPost, path: "/api/v1/methods/sov/requests/mint", body: first, handle: "9"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, string(decode(t, w).Data.Result), `"amount":100`)

	w = env.do(apiCall{method: http.MethodPost, path: "/api/v1/methods/sov/requests/mint", body: second, handle: "9"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, string(decode(t, w).Data.Result), `"amount":200`)

	require.Len(t, keys, 2)
	assert.NotEqual(t, keys[0], keys[1])
}

func TestCommandReplay_CacheDown(t *testing.T) {
	env := setupRouter(t)
	env.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))
	env.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	w := env.do(apiCall{method: http.MethodPost, path: "/api/v1/methods/sov/requests/get-fees", handle: "1"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCommandReplay_ErrorsAreNotCached(t *testing.T) {
	env := setupRouter(t)
	env.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)

	w := env.do(apiCall{method: http.MethodPost, path: "/api/v1/methods/sov/requests/set-fees", body: `{"fees":{}}`, handle: "3"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

// ==================== Addresses ====================

func TestPaymentAddresses(t *testing.T) {
	env := setupRouter(t)

	env.wallet.EXPECT().CreateKey(gomock.Any(), domain.PaymentAddressConfig{}).Return(testKey(1), nil)
	w := env.do(apiCall{method: http.MethodPost, path: "/api/v1/methods/sov/addresses"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, fmt.Sprintf("%q", addrA), string(decode(t, w).Data.Result))

	env.wallet.EXPECT().ListKeys(gomock.Any()).Return([]address.VerKey{testKey(1), testKey(2)}, nil)
	w = env.do(apiCall{method: http.MethodGet, path: "/api/v1/methods/sov/addresses"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, fmt.Sprintf("[%q,%q]", addrA, addrB), string(decode(t, w).Data.Result))
}

func TestCreatePaymentAddress_ShortSeed(t *testing.T) {
	env := setupRouter(t)

	w := env.do(apiCall{method: http.MethodPost, path: "/api/v1/methods/sov/addresses", body: `{"config":{"seed":"abc"}}`})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, apperror.CodeInvalidValue, decode(t, w).ErrorCode)
}

// ==================== Responses ====================

func TestParseResponses(t *testing.T) {
	env := setupRouter(t)

	body := fmt.Sprintf(`{"response":{"op":"REPLY","result":{"outputs":[{"address":%q,"sequence":2,"amount":9}]}}}`, addrA)
	w := env.do(apiCall{method: http.MethodPost, path: "/api/v1/methods/sov/responses/get-utxo", body: body})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, fmt.Sprintf(`[{"address":%q,"amount":9,"sequence":2}]`, addrA), string(decode(t, w).Data.Result))

	w = env.do(apiCall{method: http.MethodPost, path: "/api/v1/methods/sov/responses/get-fees", body: `{"response":{"PAY":3}}`})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"PAY":3}`, string(decode(t, w).Data.Result))

	w = env.do(apiCall{method: http.MethodPost, path: "/api/v1/methods/sov/responses/payment", body: `{"response":{"op":"REJECT","reason":"no funds"}}`})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, apperror.CodeParseError, decode(t, w).ErrorCode)
}

// ==================== Routing ====================

func TestUnknownMethod(t *testing.T) {
	env := setupRouter(t)

	w := env.do(apiCall{method: http.MethodPost, path: "/api/v1/methods/btc/requests/get-fees"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, apperror.CodeUnknownMethod, decode(t, w).ErrorCode)

	w = env.do(apiCall{method: http.MethodPost, path: "/api/v1/methods/BTC!/requests/get-fees"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListMethods(t *testing.T) {
	env := setupRouter(t)

	w := env.do(apiCall{method: http.MethodGet, path: "/api/v1/methods"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["sov"]`, extractField(t, w, "methods"))
}

func TestUnauthenticated(t *testing.T) {
	env := setupRouter(t)

	w := env.do(apiCall{method: http.MethodPost, path: "/api/v1/methods/sov/requests/get-fees", token: "bad"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, apperror.CodeInvalidToken, decode(t, w).ErrorCode)
}

func TestMetricsRoute(t *testing.T) {
	env := setupRouter(t)
	env.do(apiCall{method: http.MethodPost, path: "/api/v1/methods/sov/requests/get-fees"})

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `sovtoken_operations_total{method="sov",operation="GET_FEES",outcome="ok"} 1`)
}

// ==================== Health ====================

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Ping(context.Context) error { return s.err }
func (s stubChecker) Name() string               { return s.name }

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name       string
		checkers   []ports.HealthChecker
		wantStatus int
		wantBody   string
	}{
		{"all healthy", []ports.HealthChecker{stubChecker{name: "postgresql"}, stubChecker{name: "redis"}}, http.StatusOK, "healthy"},
		{"redis down", []ports.HealthChecker{stubChecker{name: "postgresql"}, stubChecker{name: "redis", err: errors.New("refused")}},
			http.StatusServiceUnavailable, "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/health", HealthCheck(tt.checkers...))

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantBody, body["status"])
		})
	}
}

func extractField(t *testing.T, w *httptest.ResponseRecorder, field string) string {
	t.Helper()
	var body struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return string(body.Data[field])
}
