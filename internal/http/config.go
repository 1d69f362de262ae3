package http

import (
	"time"
)

// Config sizes the batch API server; timeouts bound both reading a payment
// batch and streaming the generated workbook back.
type Config struct {
	Address string        `envconfig:"HTTP_ADDRESS" default:"localhost:8080"`
	Timeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
}
