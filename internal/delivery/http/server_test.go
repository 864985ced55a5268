package http

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"medreminder/config"
	deliverycontext "medreminder/internal/delivery/context"
	"medreminder/internal/delivery/http/middleware"
	"medreminder/internal/delivery/http/response"
	"medreminder/internal/delivery/http/router"
	"medreminder/internal/delivery/http/router/handler"
	"medreminder/internal/domain/entity"
	"medreminder/internal/infra/auth"
	mockUsecase "medreminder/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	echo           *echo.Echo
	token          string
	session        entity.Session
	prescriptionUC *mockUsecase.MockPrescriptionUsecase
	reminderUC     *mockUsecase.MockReminderUsecase
	logs           *bytes.Buffer
}

func newTestServer(t *testing.T) *testServer {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	cfg.ApplyDefaults()

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(logs, nil))

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	now := time.Now().UTC().Truncate(time.Second)
	session := entity.Session{
		CustomerID: uuid.New(),
		Username:   "ada",
		IssuedAt:   now,
		ExpiresAt:  now.Add(time.Hour),
	}
	token, err := tokenSvc.IssueToken(session)
	require.NoError(t, err)

	accountUC := mockUsecase.NewMockAccountUsecase(t)
	prescriptionUC := mockUsecase.NewMockPrescriptionUsecase(t)
	reminderUC := mockUsecase.NewMockReminderUsecase(t)

	e := NewEcho(cfg, logger, middleware.NewErrorMiddleware(logger))
	router.NewRouter(router.RouterParams{
		AccountHandler:      handler.NewAccountHandler(handler.AccountHandlerParams{AccountUC: accountUC, Logger: logger}),
		PrescriptionHandler: handler.NewPrescriptionHandler(handler.PrescriptionHandlerParams{PrescriptionUC: prescriptionUC, Logger: logger}),
		ReminderHandler:     handler.NewReminderHandler(handler.ReminderHandlerParams{ReminderUC: reminderUC, Logger: logger}),
		AuthMiddleware:      middleware.NewAuthMiddleware(tokenSvc),
	}).RegisterRoutes(e)

	return &testServer{
		echo:           e,
		token:          token,
		session:        session,
		prescriptionUC: prescriptionUC,
		reminderUC:     reminderUC,
		logs:           logs,
	}
}

func (s *testServer) do(method, target, body string, authenticated bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if authenticated {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+s.token)
	}
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-42")

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body
}

func TestServer_Health(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/health", "", false)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Contains(t, rec.Body.String(), `"request_id":"req-42"`)
}

func TestServer_RequiresToken(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/prescriptions", "", false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "MISSING_TOKEN", decodeError(t, rec).Error.Code)
	assert.Contains(t, s.logs.String(), `"status":401`)
}

func TestServer_ListsPrescriptionsForTokenOwner(t *testing.T) {
	s := newTestServer(t)
	s.prescriptionUC.EXPECT().
		List(mock.Anything, mock.MatchedBy(func(session entity.Session) bool {
			return session.CustomerID == s.session.CustomerID && session.Username == "ada"
		})).
		Return([]entity.Prescription{}, nil)

	rec := s.do(http.MethodGet, "/prescriptions", "", true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestServer_ValidationErrorEnvelope(t *testing.T) {
	s := newTestServer(t)
	notificationID := uuid.New()

	rec := s.do(http.MethodPost, "/reminders/"+notificationID.String()+"/action", `{"token":""}`, true)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Equal(t, []any{"token is required."}, body.Error.Details)
	assert.Equal(t, "req-42", body.Meta.RequestID)
}

func TestServer_MalformedBody(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/prescriptions", `{"drug_name":`, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decodeError(t, rec).Error.Code)
}

func TestServer_UnknownRoute(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/nowhere", "", false)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", decodeError(t, rec).Error.Code)
}

func TestServer_FinishViewRoute(t *testing.T) {
	s := newTestServer(t)
	prescriptionID := uuid.New()
	s.reminderUC.EXPECT().
		FinishView(mock.Anything, mock.MatchedBy(func(session entity.Session) bool {
			return session.CustomerID == s.session.CustomerID
		}), prescriptionID).
		Return(nil)

	rec := s.do(http.MethodPost, "/prescriptions/"+prescriptionID.String()+"/view/close", "", true)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
