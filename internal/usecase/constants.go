package usecase

import "time"

const (
	// DefaultGatewayTimeout bounds a single call into the withdrawal gateway.
	DefaultGatewayTimeout = 5 * time.Second

	// DefaultWatchInterval is how often outstanding withdrawals are polled.
	DefaultWatchInterval = 50 * time.Millisecond
)
