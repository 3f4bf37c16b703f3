package whatsappbridge

import "errors"

var (
	// ErrInternal is returned on client-side failures
	ErrInternal = errors.New("whatsappbridge client: internal error")

	// ErrBridgeUnavailable is returned when the bridge cannot accept
	// the message. Callers log it and move on.
	ErrBridgeUnavailable = errors.New("whatsappbridge client: bridge unavailable")
)
