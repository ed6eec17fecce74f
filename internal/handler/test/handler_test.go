package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"drezzle/internal/config"
	handlers "drezzle/internal/handler"
	"drezzle/internal/middleware"
	"drezzle/internal/models"
)

type testMocks struct {
	auth         *MockAuthService
	verification *MockVerificationService
	content      *MockContentService
	social       *MockSocialService
	admin        *MockAdminService
}

func createTestHandler() (*handlers.Handlers, *testMocks) {
	mocks := &testMocks{
		auth:         new(MockAuthService),
		verification: new(MockVerificationService),
		content:      new(MockContentService),
		social:       new(MockSocialService),
		admin:        new(MockAdminService),
	}

	cfg := &config.Config{
		JWTSecretKey: "test-secret-key",
		ServerPort:   8080,
	}

	handler := &handlers.Handlers{
		AuthService:         mocks.auth,
		VerificationService: mocks.verification,
		ContentService:      mocks.content,
		SocialService:       mocks.social,
		AdminService:        mocks.admin,
		Cfg:                 cfg,
		Validate:            validator.New(),
	}

	return handler, mocks
}

// jsonRequest собирает запрос с JSON-телом, пользователем в контексте и
// path-переменными, как после прохождения роутера и AuthMiddleware.
func jsonRequest(method, target string, body interface{}, user *models.User, vars map[string]string) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")

	if user != nil {
		req = req.WithContext(middleware.WithUser(req.Context(), user))
	}
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}

	return req
}

// assertJSONError проверяет JSON-ответ с ошибкой
func assertJSONError(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int) {
	t.Helper()

	assert.Equal(t, expectedStatus, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.NotEmpty(t, response["error"])
}

func decodeJSON(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var response map[string]interface{}
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	return response
}
