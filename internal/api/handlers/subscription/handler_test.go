package subscription

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	"github.com/aletkin/carminder/internal/api/dto"
	"github.com/aletkin/carminder/internal/config"
	"github.com/aletkin/carminder/internal/mocks/api/handlers/subscription"
	"github.com/aletkin/carminder/internal/model"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MocksubscriptionRegistry, *config.Config) {
	ctrl := gomock.NewController(t)
	mockRegistry := mocks.NewMocksubscriptionRegistry(ctrl)
	cfg := &config.Config{Retry: retry.Strategy{}}
	validate := validator.New()
	handler := NewHandler(mockRegistry, validate, cfg)
	return handler, mockRegistry, cfg
}

func TestHandler_Register_Success(t *testing.T) {
	handler, mockRegistry, cfg := setupHandler(t)

	reqBody := dto.SubscribeRequest{
		Endpoint: "https://push.example.com/ep-1",
		Keys: dto.SubscribeKeys{
			P256dh: "p256dh-key",
			Auth:   "auth-key",
		},
		UserID: "user-1",
	}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPut, "/subscriptions", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockRegistry.EXPECT().
		Register(
			gomock.Any(),
			cfg.Retry,
			gomock.AssignableToTypeOf(model.PushSubscription{}),
		).Return(nil)

	handler.Register(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
}

func TestHandler_Register_InvalidBody(t *testing.T) {
	handler, _, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodPut, "/subscriptions", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Register_ValidationError(t *testing.T) {
	handler, _, _ := setupHandler(t)

	// Endpoint is required, keys must not be empty.
	reqBody := dto.SubscribeRequest{UserID: "user-1"}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPut, "/subscriptions", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Register_RegistryFailure(t *testing.T) {
	handler, mockRegistry, cfg := setupHandler(t)

	reqBody := dto.SubscribeRequest{
		Endpoint: "https://push.example.com/ep-1",
		Keys: dto.SubscribeKeys{
			P256dh: "p256dh-key",
			Auth:   "auth-key",
		},
	}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPut, "/subscriptions", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockRegistry.EXPECT().
		Register(gomock.Any(), cfg.Retry, gomock.Any()).
		Return(errors.New("connection refused"))

	handler.Register(c)

	assert.Equal(t, http.StatusInternalServerError, w.Result().StatusCode)
}

func TestHandler_Unregister_Success(t *testing.T) {
	handler, mockRegistry, cfg := setupHandler(t)

	endpoint := "https://push.example.com/ep-1"
	req := httptest.NewRequest(
		http.MethodDelete,
		"/subscriptions?endpoint="+url.QueryEscape(endpoint),
		nil,
	)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockRegistry.EXPECT().
		Remove(gomock.Any(), cfg.Retry, endpoint).
		Return(nil)

	handler.Unregister(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Unregister_MissingEndpoint(t *testing.T) {
	handler, _, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodDelete, "/subscriptions", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Unregister(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}
