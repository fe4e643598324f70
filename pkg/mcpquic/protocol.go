// CLAUDE:SUMMARY MCP-over-QUIC wire protocol: ALPN, stream preamble, error codes, QUIC and TLS configuration.
package mcpquic

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net"
	"time"

	"github.com/quic-go/quic-go"
)

const (
	// ALPNProtocolMCP selects MCP JSON-RPC on a QUIC connection.
	ALPNProtocolMCP = "voicenorm-mcp-v1"
	// Preamble is written by the client as the first bytes of the MCP stream.
	Preamble = "VNM1"

	DefaultIdleTimeout = 5 * time.Minute
	DefaultKeepAlive   = 30 * time.Second
	InitializeTimeout  = 10 * time.Second
)

// Stream-level error codes.
const (
	StreamErrorNoError           quic.StreamErrorCode = 0x00
	StreamErrorProtocolConfusion quic.StreamErrorCode = 0x02
)

// Connection-level error codes.
const (
	ConnErrorNoError           quic.ApplicationErrorCode = 0x00
	ConnErrorUnsupportedALPN   quic.ApplicationErrorCode = 0x01
	ConnErrorProtocolViolation quic.ApplicationErrorCode = 0x03
	ConnErrorMCPDisabled       quic.ApplicationErrorCode = 0x10
)

var (
	ErrInvalidPreamble = errors.New("invalid stream preamble")
	ErrUnsupportedALPN = fmt.Errorf("ALPN negotiation failed: %s not selected", ALPNProtocolMCP)
	ErrNotConnected    = errors.New("client not connected")
)

// ReadPreamble consumes the stream preamble and fails on anything else, so a
// stream opened by another protocol never reaches the JSON-RPC loop.
func ReadPreamble(r io.Reader) error {
	got := make([]byte, len(Preamble))
	if _, err := io.ReadFull(r, got); err != nil {
		return fmt.Errorf("read preamble: %w", err)
	}
	if !bytes.Equal(got, []byte(Preamble)) {
		return fmt.Errorf("%w: got %q", ErrInvalidPreamble, got)
	}
	return nil
}

// WritePreamble must be called right after the client opens its stream.
func WritePreamble(w io.Writer) error {
	if _, err := io.WriteString(w, Preamble); err != nil {
		return fmt.Errorf("write preamble: %w", err)
	}
	return nil
}

// QUICConfig is shared by the server listener and the client dialer.
func QUICConfig() *quic.Config {
	return &quic.Config{
		MaxStreamReceiveWindow:     10 * 1024 * 1024,
		MaxConnectionReceiveWindow: 50 * 1024 * 1024,
		MaxIdleTimeout:             DefaultIdleTimeout,
		KeepAlivePeriod:            DefaultKeepAlive,
	}
}

// SelfSignedCertificate generates an ECDSA P-256 certificate for localhost.
// Development only.
func SelfSignedCertificate(org string) (tls.Certificate, error) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("generate private key: %w", err)
	}
	serial, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 128))
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("generate serial: %w", err)
	}

	now := time.Now()
	template := x509.Certificate{
		SerialNumber:          serial,
		Subject:               pkix.Name{Organization: []string{org}, CommonName: "localhost"},
		NotBefore:             now,
		NotAfter:              now.Add(365 * 24 * time.Hour),
		KeyUsage:              x509.KeyUsageDigitalSignature,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
		DNSNames:              []string{"localhost"},
		IPAddresses:           []net.IP{net.ParseIP("127.0.0.1"), net.ParseIP("::1")},
	}
	der, err := x509.CreateCertificate(rand.Reader, &template, &template, &key.PublicKey, key)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("create certificate: %w", err)
	}
	return tls.Certificate{Certificate: [][]byte{der}, PrivateKey: key}, nil
}

// ServerTLSConfig offers the MCP ALPN first, then any extra protocols.
func ServerTLSConfig(cert tls.Certificate, extraProtos ...string) *tls.Config {
	return &tls.Config{
		MinVersion:   tls.VersionTLS13,
		Certificates: []tls.Certificate{cert},
		NextProtos:   append([]string{ALPNProtocolMCP}, extraProtos...),
	}
}

// ClientTLSConfig requests the MCP ALPN. insecure skips certificate
// verification for self-signed development servers.
func ClientTLSConfig(insecure bool) *tls.Config {
	return &tls.Config{
		MinVersion:         tls.VersionTLS13,
		NextProtos:         []string{ALPNProtocolMCP},
		InsecureSkipVerify: insecure,
	}
}
