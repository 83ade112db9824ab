package content

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"valivio-service/internal/app/services/shared/storage"
	"valivio-service/internal/pkg/constvars"
	"valivio-service/internal/pkg/dto/responses"
	"valivio-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newContentFixture(t *testing.T, files map[string]string) *contentUsecase {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return &contentUsecase{Storage: storage.NewLocalStorage(dir), Log: zap.NewNop()}
}

func TestGetFAQ(t *testing.T) {
	want := []responses.FAQItem{{Question: "Ile trwa sesja?", Answer: "50 minut."}}

	tests := []struct {
		name  string
		files map[string]string
		want  []responses.FAQItem
	}{
		{name: "bare array", files: map[string]string{"faq.json": `[{"q":"Ile trwa sesja?","a":"50 minut."}]`}, want: want},
		{name: "wrapped object", files: map[string]string{"faq.json": ` {"faq":[{"q":"Ile trwa sesja?","a":"50 minut."}]}`}, want: want},
		{name: "object without faq", files: map[string]string{"faq.json": `{}`}, want: []responses.FAQItem{}},
		{name: "missing file", files: nil, want: []responses.FAQItem{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newContentFixture(t, tt.files)

			faq, err := uc.GetFAQ(context.Background())

			require.NoError(t, err)
			assert.Equal(t, tt.want, faq.FAQ)
		})
	}

	t.Run("malformed", func(t *testing.T) {
		uc := newContentFixture(t, map[string]string{"faq.json": `[{"q":`})

		_, err := uc.GetFAQ(context.Background())

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusInternalServerError, customErr.StatusCode)
	})
}

func TestGetAudience(t *testing.T) {
	uc := newContentFixture(t, map[string]string{
		"data.json": `{"dlaKogo":[{"title":"Dorośli","text":"Wsparcie w kryzysie."}]}`,
	})

	audience, err := uc.GetAudience(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []responses.AudienceItem{{Title: "Dorośli", Text: "Wsparcie w kryzysie."}}, audience.DlaKogo)

	empty, err := newContentFixture(t, nil).GetAudience(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, empty.DlaKogo)
	assert.Empty(t, empty.DlaKogo)
}

func TestGetAbout(t *testing.T) {
	t.Run("html wins", func(t *testing.T) {
		uc := newContentFixture(t, map[string]string{"about.html": "<p>Cześć</p>", "about.md": "# Cześć"})

		about, err := uc.GetAbout(context.Background())

		require.NoError(t, err)
		assert.Equal(t, constvars.ContentFormatHTML, about.Format)
		assert.Equal(t, "<p>Cześć</p>", about.Body)
	})

	t.Run("markdown fallback", func(t *testing.T) {
		uc := newContentFixture(t, map[string]string{"about.md": "# Cześć"})

		about, err := uc.GetAbout(context.Background())

		require.NoError(t, err)
		assert.Equal(t, constvars.ContentFormatMarkdown, about.Format)
		assert.Equal(t, "# Cześć", about.Body)
	})

	t.Run("nothing to show", func(t *testing.T) {
		uc := newContentFixture(t, nil)

		_, err := uc.GetAbout(context.Background())

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusNotFound, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientContentNotFound, customErr.ClientMessage)
	})
}
