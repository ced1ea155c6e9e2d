package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/rate-service/internal/domain/dto"
	"github.com/guttosm/rate-service/internal/i18n"
	"github.com/guttosm/rate-service/internal/middleware"
)

func testContext(t *testing.T, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func TestBuildRequest(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{
			name:        "valid request",
			body:        `{"order": {"session_id": "s1"}, "option_ids": ["ups-ground"]}`,
			expectError: false,
		},
		{
			name:        "invalid JSON",
			body:        `{"order": invalid}`,
			expectError: true,
		},
		{
			name:        "empty body",
			body:        ``,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := testContext(t, tt.body)

			result, err := BuildRequest[dto.CalculateRateRequest](c)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, result)
				assert.Equal(t, "s1", result.Order.SessionID)
				assert.Equal(t, []string{"ups-ground"}, result.OptionIDs)
			}
		})
	}
}

func TestBuildRequestAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectedErr error
	}{
		{
			name: "valid request",
			body: `{"order": {"session_id": "s1"}, "option_ids": ["ups-ground"]}`,
		},
		{
			name:        "missing session id",
			body:        `{"order": {"currency_code": "USD"}, "option_ids": ["ups-ground"]}`,
			expectedErr: dto.ErrMissingSessionID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := testContext(t, tt.body)

			result, err := BuildRequestAndValidate[dto.CalculateRateRequest](c)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, result)
			}
		})
	}
}

func TestResponseBuilder_Success(t *testing.T) {
	c, w := testContext(t, "")
	middleware.RequestID()(c)

	NewResponseBuilder(c).SuccessOK(dto.CalculateRateResponse{SessionID: "s1"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.RequestID)
	assert.NotZero(t, resp.Timestamp)
	assert.NotNil(t, resp.Data)
}

func TestResponseBuilder_ErrorWithKey(t *testing.T) {
	c, w := testContext(t, "")
	middleware.RequestID()(c)

	NewResponseBuilder(c).Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var errorResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errorResp))
	assert.Equal(t, dto.ErrCodeInvalidRequest, errorResp.Error)
	assert.Equal(t, "Invalid request", errorResp.Message)
	assert.NotEmpty(t, errorResp.RequestID)
}

func TestResponseBuilder_ErrorTranslation(t *testing.T) {
	c, w := testContext(t, "")
	c.Request.Header.Set(i18n.AcceptLanguageHeader, "pt-BR,pt;q=0.9")

	NewResponseBuilder(c).Error(http.StatusNotFound, i18n.ErrKeyOptionNotFound, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var errorResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errorResp))
	assert.Equal(t, "Opção de envio não encontrada", errorResp.Message)
}

func TestResponseBuilder_ErrorWithCustomMessage(t *testing.T) {
	c, w := testContext(t, "")
	middleware.RequestID()(c)

	customMessage := "Custom error message"
	NewResponseBuilder(c).ErrorWithMessage(http.StatusBadRequest, customMessage, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var errorResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errorResp))
	assert.Equal(t, customMessage, errorResp.Message)
}
