package test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"drezzle/internal/apperrors"
	"drezzle/internal/models"
)

func TestSubmitVerificationHandler(t *testing.T) {
	expert := &models.User{UserID: "expert-1", DeclaredRole: "expert", VerifiedRole: "listener"}

	t.Run("Успешная подача документов", func(t *testing.T) {
		handler, mocks := createTestHandler()

		mocks.verification.On("SubmitDocuments", mock.Anything, "expert-1", "base64docs", "кандидат наук").
			Return(&models.User{
				UserID:                "expert-1",
				DeclaredRole:          "expert",
				VerifiedRole:          "listener",
				BadgeStatus:           "pending",
				VerificationDocuments: "http://minio/verification/expert-1/docs",
			}, nil)

		req := jsonRequest(http.MethodPost, "/api/verification/submit", map[string]interface{}{
			"documents":   "base64docs",
			"description": "кандидат наук",
		}, expert, nil)
		rr := httptest.NewRecorder()

		handler.SubmitVerification(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		response := decodeJSON(t, rr)
		assert.Equal(t, "pending", response["badge_status"])
	})

	t.Run("Не-эксперту запрещено", func(t *testing.T) {
		handler, mocks := createTestHandler()

		listener := &models.User{UserID: "listener-1", DeclaredRole: "listener", VerifiedRole: "listener"}

		mocks.verification.On("SubmitDocuments", mock.Anything, "listener-1", "base64docs", "описание").
			Return(nil, apperrors.ErrForbidden)

		req := jsonRequest(http.MethodPost, "/api/verification/submit", map[string]interface{}{
			"documents":   "base64docs",
			"description": "описание",
		}, listener, nil)
		rr := httptest.NewRecorder()

		handler.SubmitVerification(rr, req)

		assertJSONError(t, rr, http.StatusForbidden)
	})

	t.Run("Пустые документы отклоняются", func(t *testing.T) {
		handler, mocks := createTestHandler()

		req := jsonRequest(http.MethodPost, "/api/verification/submit", map[string]interface{}{
			"documents":   "",
			"description": "описание",
		}, expert, nil)
		rr := httptest.NewRecorder()

		handler.SubmitVerification(rr, req)

		assertJSONError(t, rr, http.StatusBadRequest)
		mocks.verification.AssertNotCalled(t, "SubmitDocuments", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCreateBadgeRequestHandler(t *testing.T) {
	creator := &models.User{UserID: "creator-1", DeclaredRole: "creator", VerifiedRole: "creator"}

	t.Run("Успешная заявка", func(t *testing.T) {
		handler, mocks := createTestHandler()

		mocks.verification.On("CreateBadgeRequest", mock.Anything, creator, "1М прослушиваний").
			Return(&models.BadgeRequest{RequestID: "request-1", UserID: "creator-1", Status: "pending"}, nil)

		req := jsonRequest(http.MethodPost, "/api/badge-requests",
			map[string]interface{}{"reason": "1М прослушиваний"}, creator, nil)
		rr := httptest.NewRecorder()

		handler.CreateBadgeRequest(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		response := decodeJSON(t, rr)
		assert.Equal(t, "pending", response["status"])
	})

	t.Run("Повторная заявка дает конфликт", func(t *testing.T) {
		handler, mocks := createTestHandler()

		mocks.verification.On("CreateBadgeRequest", mock.Anything, creator, "еще раз").
			Return(nil, apperrors.ErrConflict)

		req := jsonRequest(http.MethodPost, "/api/badge-requests",
			map[string]interface{}{"reason": "еще раз"}, creator, nil)
		rr := httptest.NewRecorder()

		handler.CreateBadgeRequest(rr, req)

		assertJSONError(t, rr, http.StatusConflict)
	})
}

func TestCreateLabelRequestHandler(t *testing.T) {
	handler, mocks := createTestHandler()

	user := &models.User{UserID: "user-1", DeclaredRole: "listener", VerifiedRole: "listener"}

	mocks.verification.On("CreateLabelRequest", mock.Anything, user, "Night Records", "независимый лейбл").
		Return(&models.LabelRequest{
			RequestID: "request-1",
			UserID:    "user-1",
			LabelName: "Night Records",
			Status:    "pending",
		}, nil)

	req := jsonRequest(http.MethodPost, "/api/label-requests", map[string]interface{}{
		"label_name":  "Night Records",
		"description": "независимый лейбл",
	}, user, nil)
	rr := httptest.NewRecorder()

	handler.CreateLabelRequest(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	response := decodeJSON(t, rr)
	assert.Equal(t, "Night Records", response["label_name"])
}
