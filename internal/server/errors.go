package server

import (
	"errors"
	"net/http"

	"github.com/abhisek/lessonforge/internal/export"
	"github.com/abhisek/lessonforge/internal/intake"
	"github.com/abhisek/lessonforge/internal/lessonplan"
	"github.com/abhisek/lessonforge/internal/plangen"
	"github.com/abhisek/lessonforge/internal/transcribe"
)

// statusFor maps the pipeline's typed errors onto HTTP status codes.
// Caller mistakes are 4xx, upstream failures are 502, and anything the
// pipeline classifies as its own bug is 500.
func statusFor(err error) int {
	var validation *intake.ValidationError
	if errors.As(err, &validation) {
		return http.StatusBadRequest
	}

	var unknownKind *transcribe.UnknownKindError
	if errors.As(err, &unknownKind) {
		return http.StatusBadRequest
	}

	var external *transcribe.ExternalServiceError
	if errors.As(err, &external) {
		return http.StatusBadGateway
	}

	var generation *plangen.GenerationError
	if errors.As(err, &generation) {
		if generation.Kind == plangen.KindSchemaInvalid {
			return http.StatusUnprocessableEntity
		}
		return http.StatusBadGateway
	}

	var empty *export.EmptyPlanError
	if errors.As(err, &empty) {
		return http.StatusConflict
	}

	var invariant *lessonplan.InternalInvariantError
	if errors.As(err, &invariant) {
		return http.StatusInternalServerError
	}

	return http.StatusInternalServerError
}
