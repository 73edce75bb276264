package adapter

import (
	"context"
	"net"
	"net/url"
	"time"
)

type dialConnectivityChecker struct {
	address string
	timeout time.Duration
}

// NewConnectivityChecker returns a ConnectivityChecker that probes the remote
// content API host with a short TCP dial. A failed dial means the OFFLINE
// precondition: sync is not attempted at all.
func NewConnectivityChecker(apiBaseURL string) ConnectivityChecker {
	host := "api.github.com:443"

	if parsed, err := url.Parse(apiBaseURL); err == nil && parsed.Host != "" {
		host = parsed.Host
		if parsed.Port() == "" {
			if parsed.Scheme == "http" {
				host += ":80"
			} else {
				host += ":443"
			}
		}
	}

	return &dialConnectivityChecker{address: host, timeout: 3 * time.Second}
}

func (c *dialConnectivityChecker) Online(ctx context.Context) bool {
	dialer := net.Dialer{Timeout: c.timeout}

	conn, err := dialer.DialContext(ctx, "tcp", c.address)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}
