package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func setupRouter(t *testing.T) *ginext.Engine {
	r := ginext.New("test")
	r.Use(RequestID(), RequestLogger(newTestLogger(t)), Recovery(newTestLogger(t)))

	r.GET("/public", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"actor": ActorID(c), "request_id": RequestIDFrom(c)})
	})
	r.GET("/private", Actor(), func(c *ginext.Context) {
		c.String(http.StatusOK, ActorID(c))
	})
	r.GET("/panic", func(c *ginext.Context) {
		panic("boom")
	})

	return r
}

func TestRequestID_Generated(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/public", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
}

func TestRequestID_Propagated(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	req.Header.Set(HeaderRequestID, "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get(HeaderRequestID))
	assert.Contains(t, w.Body.String(), "req-42")
}

func TestActor(t *testing.T) {
	r := setupRouter(t)
	id := "11111111-1111-1111-1111-111111111111"

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set(HeaderUserID, id)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, w.Body.String())
}

func TestActor_Canonical(t *testing.T) {
	r := setupRouter(t)
	want := "abcdef01-2345-6789-abcd-ef0123456789"

	for _, header := range []string{
		"ABCDEF01-2345-6789-ABCD-EF0123456789",
		"{abcdef01-2345-6789-abcd-ef0123456789}",
		"urn:uuid:abcdef01-2345-6789-abcd-ef0123456789",
	} {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set(HeaderUserID, header)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, want, w.Body.String())
	}
}

func TestActor_MissingOrInvalid(t *testing.T) {
	r := setupRouter(t)

	for _, header := range []string{"", "not-a-uuid"} {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		if header != "" {
			req.Header.Set(HeaderUserID, header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}
}

func TestRecovery(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}
