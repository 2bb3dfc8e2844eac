package server

import (
	"crypto/tls"
	"fmt"
	"net"
)

// TLSListener opens TLS listeners with a key pair loaded once at startup.
// HTTP/2 is advertised over ALPN, which gRPC clients require.
type TLSListener struct {
	config *tls.Config
}

// NewTLSListener loads the certificate and private key. A missing or broken
// key pair fails here, before any listener is opened.
func NewTLSListener(certFileName, privateKeyFileName string) (*TLSListener, error) {
	cert, err := tls.LoadX509KeyPair(certFileName, privateKeyFileName)
	if err != nil {
		return nil, fmt.Errorf("failed to load TLS certificate: %w", err)
	}

	return &TLSListener{
		config: &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
			NextProtos:   []string{"h2", "http/1.1"},
		},
	}, nil
}

// Listen creates a TLS listener on addr.
func (l *TLSListener) Listen(protocol, addr string) (net.Listener, error) {
	ln, err := tls.Listen(protocol, addr, l.config.Clone())
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return ln, nil
}

// PlainListener opens unencrypted listeners.
type PlainListener struct{}

func NewPlainListener() *PlainListener {
	return &PlainListener{}
}

// Listen creates a plain listener on addr.
func (l *PlainListener) Listen(protocol, addr string) (net.Listener, error) {
	ln, err := net.Listen(protocol, addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return ln, nil
}
