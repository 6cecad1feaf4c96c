package utils

import (
	"net/http"
	"time"
)

// HTTPClient is the shared client for outbound calls (spreadsheet export).
var HTTPClient = &http.Client{
	Timeout: 30 * time.Second,
}
