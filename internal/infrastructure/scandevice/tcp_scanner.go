// Package scandevice implementa el adaptador del lector de códigos de
// barras conectado por red. El lector entrega una línea de texto por
// cada lectura.
package scandevice

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/tu-usuario/logitrack/internal/application/transfer"
	"github.com/tu-usuario/logitrack/pkg/logger"
)

var _ transfer.Scanner = (*TCPScanner)(nil)

// TCPScanner lee códigos línea a línea sobre una conexión TCP al lector.
// La conexión se abre de forma perezosa en la primera lectura y se
// reutiliza entre lecturas; un error de lectura la descarta para que la
// siguiente llamada reconecte.
type TCPScanner struct {
	addr    string
	timeout time.Duration
	log     *logger.Logger

	mu     sync.Mutex
	conn   net.Conn
	reader *bufio.Reader
}

// NewTCPScanner construye el adaptador del lector.
func NewTCPScanner(addr string, timeout time.Duration, log *logger.Logger) *TCPScanner {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &TCPScanner{addr: addr, timeout: timeout, log: log.Component("scanner")}
}

// ScanOnce espera una lectura del dispositivo y devuelve el código leído
// sin el fin de línea. Respeta el deadline del contexto si es más corto
// que el timeout configurado.
func (s *TCPScanner) ScanOnce(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.connectLocked(ctx); err != nil {
		return "", err
	}

	deadline := time.Now().Add(s.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := s.conn.SetReadDeadline(deadline); err != nil {
		s.dropLocked()
		return "", fmt.Errorf("set deadline: %w", err)
	}

	line, err := s.reader.ReadString('\n')
	if err != nil {
		s.dropLocked()
		return "", fmt.Errorf("leer del dispositivo: %w", err)
	}
	code := strings.TrimSpace(line)
	if code == "" {
		return "", fmt.Errorf("lectura vacía del dispositivo")
	}
	return code, nil
}

// Close cierra la conexión con el lector si está abierta.
func (s *TCPScanner) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	s.reader = nil
	return err
}

func (s *TCPScanner) connectLocked(ctx context.Context) error {
	if s.conn != nil {
		return nil
	}
	dialer := &net.Dialer{Timeout: s.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", s.addr)
	if err != nil {
		return fmt.Errorf("conectar al lector %s: %w", s.addr, err)
	}
	s.log.Debug().Str("addr", s.addr).Msg("lector conectado")
	s.conn = conn
	s.reader = bufio.NewReader(conn)
	return nil
}

func (s *TCPScanner) dropLocked() {
	if s.conn != nil {
		_ = s.conn.Close()
	}
	s.conn = nil
	s.reader = nil
}
