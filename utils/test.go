package utils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
)

// TestSetup puts gin in test mode and sends every log level to io.Discard
func TestSetup(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	UseLogWriter(io.Discard)
}

// TestRequest represents a test HTTP request
type TestRequest struct {
	Method  string
	Path    string
	Body    interface{}
	Headers map[string]string
	Cookies []*http.Cookie
}

// TestResponse represents a test HTTP response
type TestResponse struct {
	StatusCode int
	Body       map[string]interface{}
	Raw        []byte
	Header     http.Header
	Cookies    []*http.Cookie
}

// Data returns the "data" object of a standard response
func (r TestResponse) Data() map[string]interface{} {
	data, _ := r.Body["data"].(map[string]interface{})
	return data
}

// MakeTestRequest makes a test HTTP request
func MakeTestRequest(t *testing.T, router http.Handler, req TestRequest) TestResponse {
	t.Helper()

	// Readers (multipart forms) are sent as is; anything else as JSON
	var body io.Reader
	switch b := req.Body.(type) {
	case nil:
		body = http.NoBody
	case io.Reader:
		body = b
	default:
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequest(req.Method, req.Path, body)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}
	for _, cookie := range req.Cookies {
		httpReq.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httpReq)

	resp := TestResponse{
		StatusCode: w.Code,
		Raw:        w.Body.Bytes(),
		Header:     w.Header(),
		Cookies:    w.Result().Cookies(),
	}
	// Only JSON bodies are parsed; exports and streams stay in Raw
	if w.Body.Len() > 0 && bytes.HasPrefix(bytes.TrimSpace(resp.Raw), []byte("{")) {
		if err := json.Unmarshal(resp.Raw, &resp.Body); err != nil {
			t.Fatalf("Failed to unmarshal response body: %v", err)
		}
	}
	return resp
}

// AssertResponse asserts the test response
func AssertResponse(t *testing.T, response TestResponse, expectedStatusCode int, expectedBody map[string]interface{}) {
	t.Helper()
	assert.Equal(t, expectedStatusCode, response.StatusCode)
	if expectedBody != nil {
		assert.Equal(t, expectedBody, response.Body)
	}
}

// GetTestToken signs a token shaped like the remote auth service's, with
// role and expiry claims. The key is arbitrary since only claims are read.
func GetTestToken(t *testing.T, role string, ttl time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "test-user",
		"role": role,
		"exp":  time.Now().Add(ttl).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("Failed to sign test token: %v", err)
	}
	return signed
}
