package transfer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/logitrack/internal/application/transfer"
	"github.com/tu-usuario/logitrack/internal/domain"
)

func newCollector(scanner *fakeScanner, codes map[string]string) *transfer.ScanCollector {
	return transfer.NewScanCollector(scanner, &fakeCodeRepo{codes: codes}, testLogger())
}

// Todas las lecturas resuelven: la suma del lote es exactamente n.
func TestCollect_TodoResuelve(t *testing.T) {
	scanner := &fakeScanner{reads: []string{"QR-A", "QR-A", "QR-B"}}
	c := newCollector(scanner, map[string]string{"QR-A": "product_1", "QR-B": "product_2"})

	batch, err := c.Collect(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, int64(3), batch.Total())
	assert.Equal(t, int64(2), batch.Count("product_1"))
	assert.Equal(t, int64(1), batch.Count("product_2"))
	assert.Equal(t, 3, scanner.calls, "una llamada al dispositivo por lectura pedida")
}

// Un fallo del dispositivo descarta solo ese intento; el lote continúa.
func TestCollect_FalloDeDispositivoNoEsFatal(t *testing.T) {
	scanner := &fakeScanner{reads: []string{"QR-A", "", "QR-A"}}
	c := newCollector(scanner, map[string]string{"QR-A": "product_1"})

	batch, err := c.Collect(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, int64(2), batch.Total())
	assert.Equal(t, 3, scanner.calls)
}

// Un código desconocido se descarta sin aparecer en el lote.
func TestCollect_CodigoDesconocidoSeDescarta(t *testing.T) {
	scanner := &fakeScanner{reads: []string{"QR-A", "QR-ZZZ"}}
	c := newCollector(scanner, map[string]string{"QR-A": "product_1"})

	batch, err := c.Collect(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, int64(1), batch.Total())
	assert.Zero(t, batch.Count("QR-ZZZ"))
	assert.Equal(t, 1, batch.Len())
}

// La suma del lote nunca supera n.
func TestCollect_SumaAcotadaPorN(t *testing.T) {
	scanner := &fakeScanner{reads: []string{"QR-A", "QR-A", "QR-A", "QR-A", "QR-A"}}
	c := newCollector(scanner, map[string]string{"QR-A": "product_1"})

	batch, err := c.Collect(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, int64(4), batch.Total())
}

func TestCollect_NInvalido(t *testing.T) {
	c := newCollector(&fakeScanner{}, nil)

	_, err := c.Collect(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// La cancelación entre lecturas devuelve lo acumulado junto con ctx.Err().
func TestCollect_CancelacionEntreLecturas(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	scanner := &fakeScanner{reads: []string{"QR-A"}}
	c := newCollector(scanner, map[string]string{"QR-A": "product_1"})

	batch, err := c.Collect(ctx, 5)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotNil(t, batch)
	assert.Zero(t, scanner.calls, "no debe tocar el dispositivo tras la cancelación")
}
