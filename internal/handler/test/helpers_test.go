package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"devconnect/internal/config"
	handlers "devconnect/internal/handler"
	"devconnect/internal/middleware"
)

type testServices struct {
	auth    *MockAuthService
	user    *MockUserService
	profile *MockProfileService
	post    *MockPostService

	userRepo    *MockUserRepository
	profileRepo *MockProfileRepository
	postRepo    *MockPostRepository
}

func createTestHandler(t *testing.T) (*handlers.Handlers, *testServices) {
	t.Helper()

	s := &testServices{
		auth:        new(MockAuthService),
		user:        new(MockUserService),
		profile:     new(MockProfileService),
		post:        new(MockPostService),
		userRepo:    new(MockUserRepository),
		profileRepo: new(MockProfileRepository),
		postRepo:    new(MockPostRepository),
	}

	h := &handlers.Handlers{
		AuthService:    s.auth,
		UserService:    s.user,
		ProfileService: s.profile,
		PostService:    s.post,
		UserRepo:       s.userRepo,
		ProfileRepo:    s.profileRepo,
		PostRepo:       s.postRepo,
		Cfg: &config.Config{
			JWTSecretKey:  "test-secret-key",
			TokenDuration: time.Hour,
			MaxUploadSize: 5 << 20,
		},
		Validate: validator.New(),
	}

	return h, s
}

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// authenticated injects an identity the way the auth middleware does.
func authenticated(req *http.Request, userID string) *http.Request {
	return req.WithContext(middleware.WithUserID(req.Context(), userID))
}

func decodeJSON(rr *httptest.ResponseRecorder, v interface{}) error {
	return json.Unmarshal(rr.Body.Bytes(), v)
}

func decodeErrorResponse(t *testing.T, rr *httptest.ResponseRecorder) handlers.ErrorResponse {
	t.Helper()

	var response handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	return response
}
