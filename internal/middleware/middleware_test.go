package middlewares

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})

	t.Run("gera um novo ID", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := rec.Header().Get(RequestIDHeader)
		assert.NotEmpty(t, id)
		assert.Equal(t, id, rec.Body.String())
	})

	t.Run("propaga o ID recebido", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
		assert.Equal(t, "abc-123", rec.Body.String())
	})
}

func TestGetRequestID_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, "", GetRequestID(c))
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	router := gin.New()
	router.Use(RequestID(), RequestLogger(zap.New(core)))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	router.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for _, path := range []string{"/ok", "/bad", "/boom"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path+"?country=USA", nil))
	}

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)

	fields := entries[0].ContextMap()
	assert.Equal(t, "/ok", fields["path"])
	assert.Equal(t, "country=USA", fields["query"])
	assert.Equal(t, int64(200), fields["status"])
	assert.NotEmpty(t, fields["request_id"])
}

type recordedRequest struct {
	method string
	route  string
	status int
}

type fakeObserver struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (f *fakeObserver) ObserveRequest(method, route string, status int, duration time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, recordedRequest{method: method, route: route, status: status})
}

func TestRequestMetrics(t *testing.T) {
	obs := &fakeObserver{}

	router := gin.New()
	router.Use(RequestMetrics(obs))
	router.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/42", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	require.Len(t, obs.requests, 2)
	assert.Equal(t, recordedRequest{method: "GET", route: "/items/:id", status: http.StatusNoContent}, obs.requests[0])
	assert.Equal(t, "", obs.requests[1].route)
	assert.Equal(t, http.StatusNotFound, obs.requests[1].status)
}

func newSpanRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	prevProvider := otel.GetTracerProvider()
	prevPropagator := otel.GetTextMapPropagator()
	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() {
		otel.SetTracerProvider(prevProvider)
		otel.SetTextMapPropagator(prevPropagator)
	})
	return recorder
}

func endedSpan(t *testing.T, recorder *tracetest.SpanRecorder, name string) sdktrace.ReadOnlySpan {
	t.Helper()
	for _, span := range recorder.Ended() {
		if span.Name() == name {
			return span
		}
	}
	require.Failf(t, "span não encontrado", "%s", name)
	return nil
}

func TestRequestTracing(t *testing.T) {
	recorder := newSpanRecorder(t)

	router := gin.New()
	router.Use(RequestTracing())
	router.GET("/api/v1/records", func(c *gin.Context) {
		_, span := otel.Tracer("dashboard").Start(c.Request.Context(), "dashboard.view")
		span.End()
		c.Status(http.StatusOK)
	})
	router.GET("/boom", func(c *gin.Context) {
		c.Status(http.StatusInternalServerError)
	})

	t.Run("spans do painel ficam sob o span da requisição", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/records?country=USA", nil))
		assert.Equal(t, http.StatusOK, rec.Code)

		server := endedSpan(t, recorder, "GET /api/v1/records")
		view := endedSpan(t, recorder, "dashboard.view")

		assert.Equal(t, trace.SpanKindServer, server.SpanKind())
		assert.Equal(t, server.SpanContext().SpanID(), view.Parent().SpanID())
		assert.Equal(t, server.SpanContext().TraceID(), view.SpanContext().TraceID())
		assert.Contains(t, server.Attributes(), attribute.String("dashboard.query", "country=USA"))
		assert.Contains(t, server.Attributes(), attribute.Int("http.status_code", http.StatusOK))
	})

	t.Run("traceparent recebido é respeitado", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/records", nil)
		req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
		router.ServeHTTP(httptest.NewRecorder(), req)

		spans := recorder.Ended()
		server := spans[len(spans)-1]
		assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", server.SpanContext().TraceID().String())
		assert.Equal(t, "00f067aa0ba902b7", server.Parent().SpanID().String())
	})

	t.Run("erro 5xx marca o span", func(t *testing.T) {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))

		server := endedSpan(t, recorder, "GET /boom")
		assert.Equal(t, codes.Error, server.Status().Code)
	})
}
