package errors_test

import (
	"context"
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/campusmatch/campusmatch/internal/entity"
	apperrors "github.com/campusmatch/campusmatch/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"invalid slot", entity.ErrInvalidSlot, http.StatusBadRequest},
		{"self swipe", entity.ErrSelfSwipe, http.StatusBadRequest},
		{"unauthorized", entity.ErrUnauthorized, http.StatusUnauthorized},
		{"empty slot", entity.ErrEmptySlot, http.StatusNotFound},
		{"not found", entity.ErrNotFound, http.StatusNotFound},
		{"conflict", entity.ErrConflict, http.StatusConflict},
		{"like limit", entity.ErrLikeLimit, http.StatusTooManyRequests},
		{"storage", entity.ErrStorageFailure, http.StatusBadGateway},
		{"timeout", context.DeadlineExceeded, http.StatusGatewayTimeout},
		{"wrapped", stderrors.Join(entity.ErrStorageFailure, stderrors.New("s3 down")), http.StatusBadGateway},
		{"unknown", stderrors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, apperrors.Status(tc.err))
		})
	}
}
