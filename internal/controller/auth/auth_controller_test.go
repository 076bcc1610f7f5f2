package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"careerworld/internal/dto"
	"careerworld/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockMagicLinkService struct {
	issueErr   error
	issued     []string
	credential string
	redeemErr  error
}

func (m *mockMagicLinkService) Issue(ctx context.Context, email string) error {
	m.issued = append(m.issued, email)
	return m.issueErr
}

func (m *mockMagicLinkService) Redeem(ctx context.Context, plaintext string) (string, error) {
	if m.redeemErr != nil {
		return "", m.redeemErr
	}
	return m.credential, nil
}

func setupRouter(svc service.MagicLinkService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := NewAuthController(svc)
	r.POST("/auth/magic-link/request", ctrl.RequestMagicLink)
	r.POST("/auth/magic-link/login", ctrl.Login)
	return r
}

func TestRequestMagicLink_Accepted(t *testing.T) {
	svc := &mockMagicLinkService{}
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/magic-link/request",
		strings.NewReader(`{"email":"alice@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, []string{"alice@example.com"}, svc.issued)

	var resp dto.MessageResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "If an account with this email exists, a magic link has been sent.", resp.Message)
}

func TestRequestMagicLink_InvalidEmail(t *testing.T) {
	svc := &mockMagicLinkService{}
	router := setupRouter(svc)

	for _, body := range []string{`{"email":"not-an-email"}`, `{}`, `not json`} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/magic-link/request", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)
	}
	assert.Empty(t, svc.issued, "invalid requests must not reach the service")
}

func TestLogin_Success(t *testing.T) {
	router := setupRouter(&mockMagicLinkService{credential: "signed-credential"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/magic-link/login",
		strings.NewReader(`{"token":"the-plaintext-token"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.TokenResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "signed-credential", resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
}

// Malformed bodies and rejected tokens must be indistinguishable in the
// response.
func TestLogin_UniformRejection(t *testing.T) {
	rejecting := setupRouter(&mockMagicLinkService{redeemErr: service.ErrInvalidMagicLink})
	broken := setupRouter(&mockMagicLinkService{redeemErr: errors.New("db down")})

	cases := []struct {
		router *gin.Engine
		body   string
	}{
		{rejecting, `{"token":"already-used"}`},
		{broken, `{"token":"anything"}`},
		{rejecting, `{}`},
		{rejecting, `not json`},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/magic-link/login", strings.NewReader(tc.body))
		req.Header.Set("Content-Type", "application/json")
		tc.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", tc.body)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid or expired magic link.", resp.Message, "body %q", tc.body)
	}
}
