package generator

import (
	"context"
	"strconv"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const defaultLength = 16

var tracer = otel.Tracer("github.com/rousage/coffeeshop/internal/generator")

// ID returns a random URL-safe identifier of the given length.
func ID(ctx context.Context, length int) (string, error) {
	_, span := tracer.Start(ctx, "generator.ID")
	defer span.End()

	if length <= 0 {
		span.AddEvent("invalid length, using default", trace.WithAttributes(attribute.Int("length", length)), trace.WithAttributes(attribute.Int("default", defaultLength)))
		length = defaultLength
	}

	id, err := gonanoid.New(length)
	if err != nil {
		span.SetStatus(codes.Error, "nanoid generation failed")
		span.RecordError(err)
		return "", err
	}

	return id, nil
}

// RequestID generates an identifier for an incoming request.
// Falls back to a timestamp if the random source fails.
func RequestID() string {
	id, err := gonanoid.New(defaultLength)
	if err != nil {
		return strconv.FormatInt(time.Now().UnixNano(), 36)
	}

	return id
}
