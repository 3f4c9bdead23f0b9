package telegram

// LinkPreviewOptions describes link preview generation for a message.
// Introduced in Bot API 7.0 as the replacement for disable_web_page_preview.
type LinkPreviewOptions struct {
	// IsDisabled disables link previews entirely
	IsDisabled bool `json:"is_disabled,omitempty"`

	// URL overrides which link of the message is previewed
	URL string `json:"url,omitempty"`

	// PreferSmallMedia shrinks the preview media
	PreferSmallMedia bool `json:"prefer_small_media,omitempty"`

	// PreferLargeMedia enlarges the preview media
	PreferLargeMedia bool `json:"prefer_large_media,omitempty"`

	// ShowAboveText puts the preview above the message text
	ShowAboveText bool `json:"show_above_text,omitempty"`
}

// Equal reports whether two option values request the same preview behavior
func (o *LinkPreviewOptions) Equal(other *LinkPreviewOptions) bool {
	if o == nil || other == nil {
		return o == other
	}
	return *o == *other
}
