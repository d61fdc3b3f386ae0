// Package apperror defines the domain error taxonomy shared by use-cases and
// handlers. Every error carries a machine-readable kind, an i18n message key
// and the structured parameters needed to render that message.
package apperror

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

type Kind string

const (
	KindEntityNotFound    Kind = "ENTITY_NOT_FOUND"
	KindNoPriceForChannel Kind = "NO_PRICE_FOR_CHANNEL"
	KindNoTranslation     Kind = "ENTITY_HAS_NO_TRANSLATION"
	KindInvalidInput      Kind = "INVALID_INPUT"
	KindConflict          Kind = "CONFLICT"
	KindUnavailable       Kind = "UNAVAILABLE"
	KindUnauthenticated   Kind = "UNAUTHENTICATED"
)

const (
	KeyEntityNotFound    = "error.entity-with-id-not-found"
	KeyNoPriceForChannel = "error.no-price-found-for-channel"
	KeyNoTranslation     = "error.entity-has-no-translation-in-language"
)

type Error struct {
	Kind       Kind
	MessageKey string
	Params     map[string]any
}

func (e *Error) Error() string {
	if len(e.Params) == 0 {
		return e.MessageKey
	}
	keys := make([]string, 0, len(e.Params))
	for k := range e.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, e.Params[k])
	}
	return e.MessageKey + " (" + strings.Join(parts, ", ") + ")"
}

func NotFound(entityName, id string) *Error {
	return &Error{
		Kind:       KindEntityNotFound,
		MessageKey: KeyEntityNotFound,
		Params:     map[string]any{"entityName": entityName, "id": id},
	}
}

func NoPriceForChannel(channelID string) *Error {
	return &Error{
		Kind:       KindNoPriceForChannel,
		MessageKey: KeyNoPriceForChannel,
		Params:     map[string]any{"channelId": channelID},
	}
}

func NoTranslation(entityName, languageCode string) *Error {
	return &Error{
		Kind:       KindNoTranslation,
		MessageKey: KeyNoTranslation,
		Params:     map[string]any{"entityName": entityName, "languageCode": languageCode},
	}
}

func Invalid(key string, params map[string]any) *Error {
	return &Error{Kind: KindInvalidInput, MessageKey: key, Params: params}
}

func Conflict(key string, params map[string]any) *Error {
	return &Error{Kind: KindConflict, MessageKey: key, Params: params}
}

func Unavailable(key string) *Error {
	return &Error{Kind: KindUnavailable, MessageKey: key}
}

func Unauthenticated(key string) *Error {
	return &Error{Kind: KindUnauthenticated, MessageKey: key}
}

// As extracts the *Error from err's chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	appErr, ok := As(err)
	return ok && appErr.Kind == kind
}
