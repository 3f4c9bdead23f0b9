package telegram

// MessageOptions holds the resolved options for sending a message
type MessageOptions struct {
	ChatID              int64
	Text                string
	ParseMode           string
	LinkPreviewOptions  *LinkPreviewOptions
	DisableNotification bool
	ReplyToMessageID    int
}

// MessageBuilder provides fluent API for building messages
type MessageBuilder struct {
	chatID                int64
	text                  string
	parseMode             string
	disableWebPagePreview Opt[bool]
	linkPreviewOptions    *LinkPreviewOptions
	disableNotification   bool
	replyToMessageID      int
}

// NewMessage creates a new message builder
func NewMessage(chatID int64, text string) *MessageBuilder {
	return &MessageBuilder{
		chatID:    chatID,
		text:      text,
		parseMode: "Markdown", // Default to Markdown
	}
}

// WithMarkdown sets parse mode to Markdown
func (mb *MessageBuilder) WithMarkdown() *MessageBuilder {
	mb.parseMode = "Markdown"
	return mb
}

// WithHTML sets parse mode to HTML
func (mb *MessageBuilder) WithHTML() *MessageBuilder {
	mb.parseMode = "HTML"
	return mb
}

// WithLinkPreviewOptions controls link preview generation
func (mb *MessageBuilder) WithLinkPreviewOptions(opts LinkPreviewOptions) *MessageBuilder {
	mb.linkPreviewOptions = &opts
	return mb
}

// NoPreview disables link previews.
//
// Deprecated: Bot API 7.0 renamed the parameter 'disable_web_page_preview'
// to 'link_preview_options'. Use WithLinkPreviewOptions.
func (mb *MessageBuilder) NoPreview() *MessageBuilder {
	return mb.DisableWebPagePreview(true)
}

// DisableWebPagePreview sets the pre-7.0 preview flag.
//
// Deprecated: Bot API 7.0 renamed the parameter 'disable_web_page_preview'
// to 'link_preview_options'. Use WithLinkPreviewOptions.
func (mb *MessageBuilder) DisableWebPagePreview(disabled bool) *MessageBuilder {
	mb.disableWebPagePreview = Some(disabled)
	return mb
}

// Silent sends message silently (no notification)
func (mb *MessageBuilder) Silent() *MessageBuilder {
	mb.disableNotification = true
	return mb
}

// ReplyTo sets reply to message ID
func (mb *MessageBuilder) ReplyTo(messageID int) *MessageBuilder {
	mb.replyToMessageID = messageID
	return mb
}

// Build resolves the deprecated preview flag against link preview options and
// returns the final message options. Fails when both were set and conflict.
func (mb *MessageBuilder) Build(opts ...ResolveOption) (MessageOptions, error) {
	preview, err := ResolveLinkPreviewOptions(mb.disableWebPagePreview, mb.linkPreviewOptions, opts...)
	if err != nil {
		return MessageOptions{}, err
	}

	return MessageOptions{
		ChatID:              mb.chatID,
		Text:                mb.text,
		ParseMode:           mb.parseMode,
		LinkPreviewOptions:  preview,
		DisableNotification: mb.disableNotification,
		ReplyToMessageID:    mb.replyToMessageID,
	}, nil
}
