package chassis

import (
	"crypto/tls"
	"fmt"

	"github.com/hazyhaar/voicenorm/pkg/mcpquic"
)

// DevelopmentTLSConfig generates a self-signed certificate offering both
// ALPN protocols served on QUIC: MCP and "h3".
func DevelopmentTLSConfig() (*tls.Config, error) {
	cert, err := mcpquic.SelfSignedCertificate("voicenorm dev")
	if err != nil {
		return nil, err
	}
	return mcpquic.ServerTLSConfig(cert, "h3"), nil
}

// ProductionTLSConfig loads cert/key from files with the same ALPN list.
func ProductionTLSConfig(certFile, keyFile string) (*tls.Config, error) {
	cert, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return nil, fmt.Errorf("load key pair: %w", err)
	}
	return mcpquic.ServerTLSConfig(cert, "h3"), nil
}
