package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	deliverycontext "medreminder/internal/delivery/context"
	"medreminder/internal/delivery/http/response"
	"medreminder/internal/delivery/http/validator"
	"medreminder/internal/domain/entity"
	domainerrors "medreminder/internal/domain/errors"
	"medreminder/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSession = entity.Session{
	CustomerID: uuid.MustParse("5f8e3a52-6a0b-4c14-9c43-2ad3f1f0b001"),
	Username:   "ada",
	IssuedAt:   time.Date(2024, 5, 6, 8, 0, 0, 0, time.UTC),
	ExpiresAt:  time.Date(2024, 5, 7, 8, 0, 0, 0, time.UTC),
}

type testRequest struct {
	method  string
	target  string
	body    string
	params  map[string]string
	session *entity.Session
}

func newTestContext(tr testRequest) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var req *http.Request
	if tr.body != "" {
		req = httptest.NewRequest(tr.method, tr.target, strings.NewReader(tr.body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(tr.method, tr.target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetRequestID(c, "req-1")

	for name, value := range tr.params {
		c.SetParamNames(append(c.ParamNames(), name)...)
		c.SetParamValues(append(c.ParamValues(), value)...)
	}
	if tr.session != nil {
		deliverycontext.SetSession(c, *tr.session)
	}

	return c, rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, data any) {
	t.Helper()

	var envelope struct {
		Data json.RawMessage   `json:"data"`
		Meta response.MetaInfo `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "req-1", envelope.Meta.RequestID)
	require.NoError(t, json.Unmarshal(envelope.Data, data))
}

func TestHealthCheck(t *testing.T) {
	c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/health"})

	require.NoError(t, HealthCheck(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	decodeData(t, rec, &body)
	assert.Equal(t, "ok", body["status"])
}

func TestSessionFrom(t *testing.T) {
	c, _ := newTestContext(testRequest{method: http.MethodGet, target: "/"})

	_, err := sessionFrom(c)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))

	c, _ = newTestContext(testRequest{method: http.MethodGet, target: "/", session: &testSession})
	session, err := sessionFrom(c)
	require.NoError(t, err)
	assert.Equal(t, testSession, session)
}

func TestBindAndValidate(t *testing.T) {
	t.Run("malformed body", func(t *testing.T) {
		c, _ := newTestContext(testRequest{method: http.MethodPost, target: "/", body: `{"token":`})

		var req ActionRequest
		err := bindAndValidate(c, &req)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
	})

	t.Run("failed validation", func(t *testing.T) {
		c, _ := newTestContext(testRequest{method: http.MethodPost, target: "/", body: `{"token":""}`})

		var req ActionRequest
		err := bindAndValidate(c, &req)
		validationErr, ok := errors.AsType[*domainerrors.ValidationError](err)
		require.True(t, ok)
		assert.Equal(t, []string{"token is required."}, validationErr.Messages())
	})

	t.Run("valid", func(t *testing.T) {
		c, _ := newTestContext(testRequest{method: http.MethodPost, target: "/", body: `{"token":"taken"}`})

		var req ActionRequest
		require.NoError(t, bindAndValidate(c, &req))
		assert.Equal(t, "taken", req.Token)
	})
}
