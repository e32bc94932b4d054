package transfer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/logitrack/internal/application/transfer"
	"github.com/tu-usuario/logitrack/internal/domain"
	"github.com/tu-usuario/logitrack/internal/domain/entity"
)

func warehouseWith(t *testing.T, repo *fakeWarehouseRepo, id string, fields map[string]string) {
	t.Helper()
	require.NoError(t, repo.Create(&entity.WarehouseRecord{ID: id, Products: fields}))
}

func TestDebit_RestaYDevuelveMensaje(t *testing.T) {
	repo := newFakeWarehouseRepo()
	warehouseWith(t, repo, "W1", map[string]string{"product_1": "20"})
	ledger := transfer.NewWarehouseLedger(repo, testLogger())

	msgs, err := ledger.Debit("W1", "product_1", 5)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "20 -> 15")

	rec, _ := repo.Get("W1")
	v, _ := rec.Quantity("product_1")
	assert.Equal(t, "15", v)
}

// Sin guardia de negatividad al debitar: la única guardia del sistema está
// en la confirmación de recepción del transporte.
func TestDebit_PermiteSaldoNegativo(t *testing.T) {
	repo := newFakeWarehouseRepo()
	warehouseWith(t, repo, "W1", map[string]string{"product_1": "3"})
	ledger := transfer.NewWarehouseLedger(repo, testLogger())

	_, err := ledger.Debit("W1", "product_1", 5)
	require.NoError(t, err)

	rec, _ := repo.Get("W1")
	v, _ := rec.Quantity("product_1")
	assert.Equal(t, "-2", v)
}

func TestCredit_Suma(t *testing.T) {
	repo := newFakeWarehouseRepo()
	warehouseWith(t, repo, "W1", map[string]string{"product_1": "7"})
	ledger := transfer.NewWarehouseLedger(repo, testLogger())

	_, err := ledger.Credit("W1", "product_1", 5)
	require.NoError(t, err)

	rec, _ := repo.Get("W1")
	v, _ := rec.Quantity("product_1")
	assert.Equal(t, "12", v)
}

func TestLedgerBodega_BodegaInexistente(t *testing.T) {
	ledger := transfer.NewWarehouseLedger(newFakeWarehouseRepo(), testLogger())

	_, err := ledger.Credit("W9", "product_1", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// La ausencia del campo es violación de contrato, no cero implícito.
func TestLedgerBodega_CampoAusenteEsRechazo(t *testing.T) {
	repo := newFakeWarehouseRepo()
	warehouseWith(t, repo, "W1", map[string]string{"product_2": "4"})
	ledger := transfer.NewWarehouseLedger(repo, testLogger())

	_, err := ledger.Debit("W1", "product_1", 1)
	assert.ErrorIs(t, err, domain.ErrProductNotOnRecord)

	rec, _ := repo.Get("W1")
	v, _ := rec.Quantity("product_2")
	assert.Equal(t, "4", v, "el documento no debe mutar en un rechazo")
}
