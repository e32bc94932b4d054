package transfer

import (
	"context"
	"errors"

	"github.com/tu-usuario/logitrack/internal/domain"
	"github.com/tu-usuario/logitrack/internal/domain/entity"
	"github.com/tu-usuario/logitrack/internal/domain/repository"
	"github.com/tu-usuario/logitrack/pkg/logger"
)

// ScanCollector agrega n intentos de lectura del dispositivo en un
// multiconjunto de productos. Un intento fallido del dispositivo o un
// código que no resuelve se descartan sin abortar el lote; por eso la suma
// de ocurrencias del resultado es <= n, con igualdad solo si toda lectura
// resolvió.
type ScanCollector struct {
	scanner Scanner
	codes   repository.CodeRepository
	log     *logger.Logger
}

// NewScanCollector construye el agregador.
func NewScanCollector(scanner Scanner, codes repository.CodeRepository, log *logger.Logger) *ScanCollector {
	return &ScanCollector{scanner: scanner, codes: codes, log: log.Component("scan")}
}

// Collect realiza n lecturas secuenciales. El contexto se comprueba entre
// lecturas para que la operación pueda cancelarse sin esperar el lote
// completo; en ese caso devuelve lo acumulado junto con ctx.Err().
func (c *ScanCollector) Collect(ctx context.Context, n int) (*entity.ScanBatch, error) {
	if n <= 0 {
		return nil, domain.ErrInvalidInput
	}
	batch := entity.NewScanBatch()
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return batch, err
		}
		code, err := c.scanner.ScanOnce(ctx)
		if err != nil {
			// Un intento fallido no es fatal para el lote
			c.log.Warn().Err(err).Int("attempt", i+1).Msg("lectura descartada por error del dispositivo")
			continue
		}
		productID, err := c.codes.Lookup(code)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.log.Warn().Str("code", code).Msg("código no registrado, lectura descartada")
			} else {
				c.log.Error().Err(err).Str("code", code).Msg("resolución de código falló, lectura descartada")
			}
			continue
		}
		c.log.Debug().Str("code", code).Str("product_id", productID).Msg("lectura resuelta")
		batch.Add(productID)
	}
	return batch, nil
}
