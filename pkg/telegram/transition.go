package telegram

import (
	"fmt"

	"tgkit/pkg/errors"
)

// BotAPI70 is the Bot API revision that renamed disable_web_page_preview to
// link_preview_options and user_shared to users_shared.
const BotAPI70 = "7.0"

// ObjectType names the kind of renamed API surface in warning messages
type ObjectType string

const (
	ObjectTypeParameter ObjectType = "parameter"
	ObjectTypeAttribute ObjectType = "attribute"
)

// BuildDeprecationMessage builds the warning message for an API rename
func BuildDeprecationMessage(deprecatedName, newName string, objectType ObjectType, botAPIVersion string) string {
	return fmt.Sprintf(
		"The %s '%s' was renamed to '%s' in Bot API %s. We recommend using '%s' instead of '%s'.",
		objectType, deprecatedName, newName, botAPIVersion, newName, deprecatedName,
	)
}

type resolveConfig struct {
	warnFn     WarnFunc
	stackDepth int
}

// ResolveOption customizes how a resolve call emits warnings
type ResolveOption func(*resolveConfig)

// WithWarnFunc routes warnings to fn instead of the process-wide sink
func WithWarnFunc(fn WarnFunc) ResolveOption {
	return func(c *resolveConfig) {
		c.warnFn = fn
	}
}

// WithStackDepth sets the stack-depth hint passed to the warning sink.
// It should point at the caller whose code needs updating.
func WithStackDepth(depth int) ResolveOption {
	return func(c *resolveConfig) {
		c.stackDepth = depth
	}
}

func newResolveConfig(opts []ResolveOption) resolveConfig {
	cfg := resolveConfig{
		warnFn:     defaultWarn,
		stackDepth: 2,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// warn emits one deprecation warning, shifting the hint past this package's
// own frame.
func (c resolveConfig) warn(message string) {
	c.warnFn(message, CategoryDeprecation, c.stackDepth+1)
}

func conflictError(deprecatedName, newName, botAPIVersion string) *errors.ConflictingArgumentsError {
	base := BuildDeprecationMessage(deprecatedName, newName, ObjectTypeParameter, botAPIVersion)
	msg := fmt.Sprintf(
		"You passed different entities as '%s' and '%s'. %s",
		deprecatedName, newName, base,
	)
	return errors.NewConflictingArgumentsError(deprecatedName, newName, botAPIVersion, msg)
}

// ResolveRenamedArg reconciles a renamed argument pair. A value counts as
// passed when it differs from T's zero value.
//
// Returns a ConflictingArgumentsError when both values are passed and differ.
// Warns once and returns the deprecated value when only it was passed.
// Otherwise returns the replacement unchanged with no warning.
func ResolveRenamedArg[T comparable](deprecated, replacement T, deprecatedName, newName, botAPIVersion string, opts ...ResolveOption) (T, error) {
	cfg := newResolveConfig(opts)
	var zero T

	if deprecated != zero && replacement != zero && deprecated != replacement {
		return zero, conflictError(deprecatedName, newName, botAPIVersion)
	}

	if deprecated != zero {
		cfg.warn(fmt.Sprintf(
			"Bot API %s renamed the argument '%s' to '%s'.",
			botAPIVersion, deprecatedName, newName,
		))
		return deprecated, nil
	}

	return replacement, nil
}

// ResolveLinkPreviewOptions reconciles the pre-7.0 disable_web_page_preview
// flag with link_preview_options. When the flag was explicitly passed (even
// as false) it is converted into a LinkPreviewOptions value; otherwise
// linkPreviewOptions passes through unchanged.
func ResolveLinkPreviewOptions(disableWebPagePreview Opt[bool], linkPreviewOptions *LinkPreviewOptions, opts ...ResolveOption) (*LinkPreviewOptions, error) {
	cfg := newResolveConfig(opts)
	disabled, passed := disableWebPagePreview.Value()

	if passed && disabled && linkPreviewOptions != nil {
		return nil, conflictError("disable_web_page_preview", "link_preview_options", BotAPI70)
	}

	if passed && disabled {
		cfg.warn(fmt.Sprintf(
			"Bot API %s renamed the argument 'disable_web_page_preview' to 'link_preview_options'.",
			BotAPI70,
		))
	}

	if passed {
		return &LinkPreviewOptions{IsDisabled: disabled}, nil
	}

	return linkPreviewOptions, nil
}

// WarnRenamedAttribute emits one deprecation warning for a renamed attribute.
// Call from accessors that still expose the old name.
func WarnRenamedAttribute(deprecatedAttrName, newAttrName, botAPIVersion string, opts ...ResolveOption) {
	cfg := newResolveConfig(opts)
	cfg.warn(fmt.Sprintf(
		"Bot API %s renamed the attribute '%s' to '%s'.",
		botAPIVersion, deprecatedAttrName, newAttrName,
	))
}
