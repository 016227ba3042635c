//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/boutique-api/internal/application/dto"
	appinventory "github.com/jhoicas/boutique-api/internal/application/inventory"
	"github.com/jhoicas/boutique-api/internal/application/purchasing"
	"github.com/jhoicas/boutique-api/internal/domain"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
	"github.com/jhoicas/boutique-api/internal/domain/inventory"
	"github.com/jhoicas/boutique-api/internal/infrastructure/postgres"
)

// newTestPool levanta PostgreSQL en un contenedor, aplica las migraciones y devuelve el pool.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("boutique_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "no se pudo iniciar PostgreSQL")
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(dsn))

	pool, err := postgres.NewPoolFromDSN(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func seedProduct(t *testing.T, pool *pgxpool.Pool, slug string) *entity.Product {
	t.Helper()
	p := &entity.Product{Nombre: "Blusa " + slug, Slug: slug, Precio: decimal.NewFromInt(59), Activo: true}
	require.NoError(t, postgres.NewProductRepository(pool).Create(context.Background(), p))
	return p
}

func TestLedger_Postgres(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	movRepo := postgres.NewInventoryMovementRepository(pool)
	uc := appinventory.NewMovementUseCase(postgres.NewTxRunner(pool), movRepo, nil, nil, "Boutique", 200)
	products := postgres.NewProductRepository(pool)

	t.Run("ingreso y egreso actualizan el contador y el kardex", func(t *testing.T) {
		p := seedProduct(t, pool, "lino")
		out, err := uc.RecordMovement(ctx, appinventory.MovementInput{
			Target: inventory.ProductTarget{ProductID: p.ID}, Tipo: entity.MovementIngreso, Cantidad: 10,
		})
		require.NoError(t, err)
		assert.Equal(t, 0, out.StockAnterior)
		assert.Equal(t, 10, out.StockNuevo)
		assert.Equal(t, p.Nombre, out.Producto)

		_, err = uc.RecordMovement(ctx, appinventory.MovementInput{
			Target: inventory.ProductTarget{ProductID: p.ID}, Tipo: entity.MovementEgreso, Cantidad: 11,
		})
		assert.ErrorIs(t, err, domain.ErrInsufficientStock)

		got, err := products.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, 10, got.Stock)
	})

	t.Run("variante de otro producto no existe", func(t *testing.T) {
		p := seedProduct(t, pool, "seda")
		otro := seedProduct(t, pool, "algodon")
		v := &entity.ProductVariant{ProductID: otro.ID}
		require.NoError(t, postgres.NewVariantRepository(pool).Create(ctx, v))

		_, err := uc.RecordMovement(ctx, appinventory.MovementInput{
			Target: inventory.VariantTarget{ProductID: p.ID, VariantID: v.ID}, Tipo: entity.MovementIngreso, Cantidad: 1,
		})
		assert.ErrorIs(t, err, domain.ErrVariantNotFound)
	})

	t.Run("egresos concurrentes nunca dejan stock negativo", func(t *testing.T) {
		p := seedProduct(t, pool, "denim")
		_, err := uc.RecordMovement(ctx, appinventory.MovementInput{
			Target: inventory.ProductTarget{ProductID: p.ID}, Tipo: entity.MovementIngreso, Cantidad: 5,
		})
		require.NoError(t, err)

		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			ok, fail int
		)
		for i := 0; i < 12; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := uc.RecordMovement(ctx, appinventory.MovementInput{
					Target: inventory.ProductTarget{ProductID: p.ID}, Tipo: entity.MovementEgreso, Cantidad: 1,
				})
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					ok++
				case errors.Is(err, domain.ErrInsufficientStock):
					fail++
				default:
					t.Errorf("error inesperado: %v", err)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 5, ok)
		assert.Equal(t, 7, fail)
		got, err := products.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, got.Stock)
	})

	t.Run("compra con producto inexistente no deja rastro", func(t *testing.T) {
		p := seedProduct(t, pool, "gasa")
		suppliers := postgres.NewSupplierRepository(pool)
		sup := &entity.Supplier{Nombre: "Textiles Lima", Activo: true}
		require.NoError(t, suppliers.Create(ctx, sup))
		purchaseRepo := postgres.NewPurchaseRepository(pool)
		buying := purchasing.NewPurchaseUseCase(postgres.NewTxRunner(pool), uc, suppliers,
			purchaseRepo, postgres.NewReturnRepository(pool), nil)

		_, err := buying.CreatePurchase(ctx, dto.CreatePurchaseRequest{
			IDProveedor: sup.ID,
			Fecha:       "2025-03-10",
			Detalles: []dto.PurchaseLineRequest{
				{IDProducto: p.ID, Cantidad: 3, CostoUnitario: decimal.NewFromInt(20)},
				{IDProducto: 987654, Cantidad: 1, CostoUnitario: decimal.NewFromInt(20)},
			},
		}, nil)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)

		got, err := products.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, got.Stock)

		ghost := int64(987654)
		_, err = buying.CreateReturn(ctx, dto.CreateReturnRequest{
			IDProveedor: sup.ID,
			Detalles:    []dto.ReturnLineRequest{{IDProducto: p.ID, IDVariante: &ghost, Cantidad: 1}},
		}, nil)
		assert.ErrorIs(t, err, domain.ErrVariantNotFound)

		// Sin el bloqueo previo del caso de uso, la FK del detalle también sale como error de dominio.
		err = purchaseRepo.Create(ctx, &entity.Purchase{
			SupplierID: sup.ID,
			Fecha:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			Estado:     entity.PurchaseRegistrada,
			Total:      decimal.Zero,
			Pagado:     decimal.Zero,
			Detalles:   []entity.PurchaseDetail{{ProductID: 987654, Cantidad: 1, CostoUnitario: decimal.Zero}},
		})
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("el listado no pasa de 200 filas", func(t *testing.T) {
		p := seedProduct(t, pool, "tweed")
		for i := 0; i < 201; i++ {
			_, err := uc.RecordMovement(ctx, appinventory.MovementInput{
				Target: inventory.ProductTarget{ProductID: p.ID}, Tipo: entity.MovementIngreso, Cantidad: 1,
			})
			require.NoError(t, err)
		}
		wide := appinventory.NewMovementUseCase(postgres.NewTxRunner(pool), movRepo, nil, nil, "Boutique", 1000)
		got, err := wide.ListMovements(ctx, dto.MovementListQuery{Producto: strconv.FormatInt(p.ID, 10)})
		require.NoError(t, err)
		assert.Len(t, got, 200)
	})

	t.Run("borrar un movimiento compensa el contador", func(t *testing.T) {
		p := seedProduct(t, pool, "punto")
		out, err := uc.RecordMovement(ctx, appinventory.MovementInput{
			Target: inventory.ProductTarget{ProductID: p.ID}, Tipo: entity.MovementIngreso, Cantidad: 4,
		})
		require.NoError(t, err)

		require.NoError(t, uc.DeleteMovement(ctx, out.ID))
		got, err := products.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, got.Stock)

		d, err := movRepo.GetDetail(ctx, out.ID)
		require.NoError(t, err)
		assert.Nil(t, d)
	})
}
