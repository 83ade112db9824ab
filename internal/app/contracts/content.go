package contracts

import (
	"context"
	"errors"
	"valivio-service/internal/pkg/dto/responses"
)

// ErrObjectNotFound is returned by ContentStorage when the object does not exist.
var ErrObjectNotFound = errors.New("content object not found")

type ContentUsecase interface {
	GetFAQ(ctx context.Context) (*responses.FAQ, error)
	GetAudience(ctx context.Context) (*responses.Audience, error)
	GetAbout(ctx context.Context) (*responses.About, error)
}
