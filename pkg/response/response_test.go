package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	pkgErrors "github.com/devkan/FirstAidVox/pkg/errors"
	"github.com/devkan/FirstAidVox/pkg/response"
)

func TestResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("OK", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.OK(c, map[string]string{"foo": "bar"})

		if w.Code != http.StatusOK {
			t.Errorf("expected %d but got %d", http.StatusOK, w.Code)
		}

		var resp response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		if resp.ErrorCode != 0 {
			t.Errorf("expected ErrorCode 0, got %d", resp.ErrorCode)
		}
		dMap, ok := resp.Data.(map[string]interface{})
		if !ok || dMap["foo"] != "bar" {
			t.Errorf("unexpected data payload: %v", resp.Data)
		}
	})

	t.Run("HTTPError envelope", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set(response.RequestIDKey, "req-1")

		err := pkgErrors.NewHTTPError(http.StatusBadRequest, "INVALID_LOCATION", "bad coords").
			WithDetails(map[string]any{"latitude": 95.0})
		response.Error(c, err)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected %d, got %d", http.StatusBadRequest, w.Code)
		}

		var resp response.ErrorResp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		if resp.Error.Code != "INVALID_LOCATION" {
			t.Errorf("expected code INVALID_LOCATION, got %s", resp.Error.Code)
		}
		if resp.Error.Details["latitude"] != 95.0 {
			t.Errorf("unexpected details: %v", resp.Error.Details)
		}
		if resp.RequestID != "req-1" {
			t.Errorf("expected request id req-1, got %q", resp.RequestID)
		}
	})

	t.Run("Unknown error is internal", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Error(c, errors.New("db crash"))

		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", w.Code)
		}

		var resp response.ErrorResp
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Error.Code != "INTERNAL_ERROR" {
			t.Errorf("expected INTERNAL_ERROR, got %s", resp.Error.Code)
		}
		if resp.Error.Message == "db crash" {
			t.Errorf("internal error message leaked to client")
		}
	})

	t.Run("Wrapped HTTPError keeps status", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Error(c, errors.Join(errors.New("ctx"), pkgErrors.ErrRateLimited))

		if w.Code != http.StatusTooManyRequests {
			t.Errorf("expected 429, got %d", w.Code)
		}
	})
}
