package machine

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	defaultSSHPort     = 22
	defaultDialTimeout = 5 * time.Second
)

// DialTransportFactory is the thin default factory used by the CLI: its
// transports probe availability with a plain TCP dial against the ssh or
// winrm port. Real command execution is supplied by the caller's own
// factory.
type DialTransportFactory struct {
	Timeout time.Duration
}

func (f DialTransportFactory) NewTransport(kind TransportKind, host string, opts TransportOptions) (Transport, error) {
	port := defaultSSHPort
	if kind == TransportWinRM {
		port = winRMPortPlain
	}
	if p, ok := opts["port"].(int); ok {
		port = p
	}

	timeout := f.Timeout
	if timeout <= 0 {
		timeout = defaultDialTimeout
	}

	return &dialTransport{
		addr:    net.JoinHostPort(host, strconv.Itoa(port)),
		timeout: timeout,
	}, nil
}

type dialTransport struct {
	addr    string
	timeout time.Duration
}

func (t *dialTransport) Available(ctx context.Context) bool {
	dialer := net.Dialer{Timeout: t.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", t.addr)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// FileKeyResolver resolves named keys from PEM files in a directory.
type FileKeyResolver struct {
	Dir string
}

func (r FileKeyResolver) ResolveKey(name string) (string, error) {
	raw, err := os.ReadFile(filepath.Join(r.Dir, name+".pem"))
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
