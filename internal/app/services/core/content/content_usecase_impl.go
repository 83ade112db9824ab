package content

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"valivio-service/internal/app/contracts"
	"valivio-service/internal/pkg/constvars"
	"valivio-service/internal/pkg/dto/responses"
	"valivio-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type contentUsecase struct {
	Storage contracts.ContentStorage
	Log     *zap.Logger
}

var (
	contentUsecaseInstance contracts.ContentUsecase
	onceContentUsecase     sync.Once
)

func NewContentUsecase(storage contracts.ContentStorage, logger *zap.Logger) contracts.ContentUsecase {
	onceContentUsecase.Do(func() {
		contentUsecaseInstance = &contentUsecase{
			Storage: storage,
			Log:     logger,
		}
	})
	return contentUsecaseInstance
}

// GetFAQ accepts faq.json as a bare array or wrapped in {"faq": [...]}.
func (uc *contentUsecase) GetFAQ(ctx context.Context) (*responses.FAQ, error) {
	raw, err := uc.read(ctx, constvars.ContentFileFAQ)
	if err != nil {
		return nil, err
	}
	response := &responses.FAQ{FAQ: []responses.FAQItem{}}
	if raw == nil {
		return response, nil
	}

	trimmed := bytes.TrimSpace(raw)
	switch {
	case bytes.HasPrefix(trimmed, []byte("[")):
		err = json.Unmarshal(trimmed, &response.FAQ)
	case bytes.HasPrefix(trimmed, []byte("{")):
		err = json.Unmarshal(trimmed, response)
	case bytes.Equal(trimmed, []byte("null")):
	default:
		err = errors.New("unexpected top-level JSON value")
	}
	if err != nil {
		return nil, uc.malformed(ctx, constvars.ContentFileFAQ, err)
	}
	if response.FAQ == nil {
		response.FAQ = []responses.FAQItem{}
	}
	return response, nil
}

func (uc *contentUsecase) GetAudience(ctx context.Context) (*responses.Audience, error) {
	raw, err := uc.read(ctx, constvars.ContentFileAudience)
	if err != nil {
		return nil, err
	}
	response := &responses.Audience{DlaKogo: []responses.AudienceItem{}}
	if raw == nil {
		return response, nil
	}

	if err := json.Unmarshal(raw, response); err != nil {
		return nil, uc.malformed(ctx, constvars.ContentFileAudience, err)
	}
	if response.DlaKogo == nil {
		response.DlaKogo = []responses.AudienceItem{}
	}
	return response, nil
}

func (uc *contentUsecase) GetAbout(ctx context.Context) (*responses.About, error) {
	html, err := uc.read(ctx, constvars.ContentFileAboutHTML)
	if err != nil {
		return nil, err
	}
	if html != nil {
		return &responses.About{Format: constvars.ContentFormatHTML, Body: string(html)}, nil
	}

	markdown, err := uc.read(ctx, constvars.ContentFileAboutMD)
	if err != nil {
		return nil, err
	}
	if markdown != nil {
		return &responses.About{Format: constvars.ContentFormatMarkdown, Body: string(markdown)}, nil
	}
	return nil, exceptions.ErrContentNotFound(contracts.ErrObjectNotFound, constvars.ContentFileAboutHTML+"|"+constvars.ContentFileAboutMD)
}

// read returns nil data without error when the object does not exist.
func (uc *contentUsecase) read(ctx context.Context, objectName string) ([]byte, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	data, err := uc.Storage.ReadObject(ctx, objectName)
	if errors.Is(err, contracts.ErrObjectNotFound) {
		uc.Log.Info("contentUsecase.read object missing",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectKey, objectName),
		)
		return nil, nil
	}
	if err != nil {
		uc.Log.Error("contentUsecase.read error from ContentStorage.ReadObject",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectKey, objectName),
			zap.Error(err),
		)
		return nil, err
	}
	if data == nil {
		data = []byte{}
	}
	return data, nil
}

func (uc *contentUsecase) malformed(ctx context.Context, objectName string, err error) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Error("contentUsecase malformed content object",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectKey, objectName),
		zap.Error(err),
	)
	return exceptions.ErrContentMalformed(err, objectName)
}
