package template

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/qa-platform/internal/http/middlewarectx"
	"github.com/magabrotheeeer/qa-platform/internal/lib/apperr"
	"github.com/magabrotheeeer/qa-platform/internal/models"
	templateservice "github.com/magabrotheeeer/qa-platform/internal/services/template"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, in templateservice.Input) (*models.TemplatePdf, error) {
	args := m.Called(ctx, in)
	t, _ := args.Get(0).(*models.TemplatePdf)
	return t, args.Error(1)
}

func (m *MockService) List(ctx context.Context, userID int64) ([]models.TemplatePdf, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]models.TemplatePdf)
	return items, args.Error(1)
}

func (m *MockService) Update(ctx context.Context, id int64, in templateservice.Input) (*models.TemplatePdf, error) {
	args := m.Called(ctx, id, in)
	t, _ := args.Get(0).(*models.TemplatePdf)
	return t, args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func uploadRequest(t *testing.T, method string, fields map[string]string, file []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if file != nil {
		fw, err := mw.CreateFormFile(FileField, "guide.pdf")
		require.NoError(t, err)
		_, err = fw.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	req := httptest.NewRequest(method, "/api/template/upload-temp-pdf", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUpload(t *testing.T) {
	t.Run("file passed through", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Create", mock.Anything, mock.MatchedBy(func(in templateservice.Input) bool {
			return in.Name == "Guide" && in.Access == "" && in.File != nil && in.File.Filename == "guide.pdf"
		})).Return(&models.TemplatePdf{ID: 1, Name: "Guide", Access: models.AccessFree}, nil)

		w := httptest.NewRecorder()
		New(newNoopLogger(), svc).Upload(w, uploadRequest(t, http.MethodPost,
			map[string]string{"name": "Guide", "type": "guide"}, []byte("%PDF-1.4")))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"access":"free"`)
		svc.AssertExpectations(t)
	})

	t.Run("no file", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Create", mock.Anything, mock.Anything).Return(nil, apperr.ValidationErr("file is required"))

		w := httptest.NewRecorder()
		New(newNoopLogger(), svc).Upload(w, uploadRequest(t, http.MethodPost,
			map[string]string{"name": "Guide", "type": "guide"}, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "file is required")
	})
}

func TestList_UsesCaller(t *testing.T) {
	svc := new(MockService)
	svc.On("List", mock.Anything, int64(12)).
		Return([]models.TemplatePdf{{ID: 1, Access: models.AccessFree}, {ID: 2, Access: models.AccessPro}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/template/get-temp-pdf", nil)
	req = req.WithContext(middlewarectx.WithIdentity(req.Context(), models.Actor{UserID: 12, UserType: models.UserTypeVisitor}))
	w := httptest.NewRecorder()
	New(newNoopLogger(), svc).List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"access":"pro"`)
	svc.AssertExpectations(t)
}

func TestUpdate_ParsesID(t *testing.T) {
	svc := new(MockService)
	svc.On("Update", mock.Anything, int64(6), mock.Anything).Return(nil, apperr.NotFoundErr("template not found"))

	w := httptest.NewRecorder()
	New(newNoopLogger(), svc).Update(w, uploadRequest(t, http.MethodPut,
		map[string]string{"id": "6", "name": "G", "type": "t", "access": "pro"}, nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	svc.AssertExpectations(t)
}
