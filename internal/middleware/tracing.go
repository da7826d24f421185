package middlewares

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "app-painel-insights/http"

// RequestTracing opens the server span of each request, named "<METHOD> <route>".
// Handlers pass c.Request.Context() to the dashboard engine, so dashboard.view,
// dashboard.load and datasource.* spans become children of this one.
// An incoming traceparent is honored.
func RequestTracing() gin.HandlerFunc {
	tracer := otel.Tracer(tracerName)

	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		parent := otel.GetTextMapPropagator().Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))
		ctx, span := tracer.Start(parent, c.Request.Method+" "+route, trace.WithSpanKind(trace.SpanKindServer))
		defer span.End()

		span.SetAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.route", route),
			attribute.String("http.target", c.Request.URL.Path),
			attribute.String("http.request_id", GetRequestID(c)),
		)
		// filtros do painel chegam como query string
		if raw := c.Request.URL.RawQuery; raw != "" {
			span.SetAttributes(attribute.String("dashboard.query", raw))
		}

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(
			attribute.Int("http.status_code", status),
			attribute.Int("http.response_size", c.Writer.Size()),
		)

		switch {
		case status >= 500:
			span.SetStatus(codes.Error, c.Errors.String())
		case len(c.Errors) > 0:
			span.AddEvent("request.error", trace.WithAttributes(attribute.String("error", c.Errors.String())))
		}
	}
}
