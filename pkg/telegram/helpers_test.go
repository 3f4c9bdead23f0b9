package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tgkit/pkg/errors"
)

func TestMessageBuilder_Defaults(t *testing.T) {
	rec := &WarningRecorder{}

	opts, err := NewMessage(123456, "hello").Build(WithWarnFunc(rec.Warn))

	require.NoError(t, err)
	assert.Equal(t, int64(123456), opts.ChatID)
	assert.Equal(t, "hello", opts.Text)
	assert.Equal(t, "Markdown", opts.ParseMode)
	assert.Nil(t, opts.LinkPreviewOptions)
	assert.Zero(t, rec.Count())
}

func TestMessageBuilder_NoPreviewWarnsAndConverts(t *testing.T) {
	rec := &WarningRecorder{}

	opts, err := NewMessage(123456, "hello").
		NoPreview().
		Build(WithWarnFunc(rec.Warn))

	require.NoError(t, err)
	require.NotNil(t, opts.LinkPreviewOptions)
	assert.True(t, opts.LinkPreviewOptions.IsDisabled)
	assert.Equal(t, 1, rec.Count())
}

func TestMessageBuilder_LinkPreviewOptionsPassThrough(t *testing.T) {
	rec := &WarningRecorder{}

	opts, err := NewMessage(123456, "hello").
		WithHTML().
		WithLinkPreviewOptions(LinkPreviewOptions{URL: "https://example.org", ShowAboveText: true}).
		Build(WithWarnFunc(rec.Warn))

	require.NoError(t, err)
	assert.Equal(t, "HTML", opts.ParseMode)
	require.NotNil(t, opts.LinkPreviewOptions)
	assert.Equal(t, "https://example.org", opts.LinkPreviewOptions.URL)
	assert.True(t, opts.LinkPreviewOptions.ShowAboveText)
	assert.Zero(t, rec.Count())
}

func TestMessageBuilder_ConflictingPreviewKnobs(t *testing.T) {
	_, err := NewMessage(123456, "hello").
		NoPreview().
		WithLinkPreviewOptions(LinkPreviewOptions{URL: "https://example.org"}).
		Build(WithWarnFunc((&WarningRecorder{}).Warn))

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConflictingArguments))
}

func TestMessageBuilder_SilentAndReplyTo(t *testing.T) {
	opts, err := NewMessage(123456, "hello").
		Silent().
		ReplyTo(42).
		Build()

	require.NoError(t, err)
	assert.True(t, opts.DisableNotification)
	assert.Equal(t, 42, opts.ReplyToMessageID)
}
