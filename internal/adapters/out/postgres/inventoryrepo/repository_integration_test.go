package inventoryrepo_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"ordering/internal/adapters/out/postgres/inventoryrepo"
	"ordering/internal/adapters/out/postgres/pgtest"
	"ordering/internal/core/domain/model/events"
	"ordering/internal/core/domain/model/inventory"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(events.Source) {}

type InventoryRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *inventoryrepo.GormInventoryRepository
}

func TestInventoryRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(InventoryRepositoryIntegrationTestSuite))
}

func (s *InventoryRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	s.Require().NoError(err)
	s.pg = pg
}

func (s *InventoryRepositoryIntegrationTestSuite) SetupTest() {
	s.Require().NoError(s.pg.Truncate())
	s.repository = inventoryrepo.NewGormInventoryRepository(s.pg.DB, noopTracker{})
}

func (s *InventoryRepositoryIntegrationTestSuite) TearDownSuite() {
	s.Require().NoError(s.pg.Terminate(context.Background()))
}

func (s *InventoryRepositoryIntegrationTestSuite) stock(productID string, total int) {
	record, err := inventory.NewRecord(productID, total, 2, time.Now())
	s.Require().NoError(err)
	s.Require().NoError(s.repository.Save(context.Background(), record))
}

func (s *InventoryRepositoryIntegrationTestSuite) line(productID string, qty int, reservationID string) inventory.Line {
	l, err := inventory.NewLine(productID, qty, reservationID)
	s.Require().NoError(err)
	return l
}

func (s *InventoryRepositoryIntegrationTestSuite) available(productID string) int {
	record, err := s.repository.Get(context.Background(), productID)
	s.Require().NoError(err)
	return record.Available()
}

func (s *InventoryRepositoryIntegrationTestSuite) TestReserve_DecrementsAvailable() {
	s.stock("x", 10)

	record, applied, err := s.repository.Reserve(context.Background(), s.line("x", 4, "r1"))

	s.Require().NoError(err)
	s.True(applied)
	s.Equal(4, record.ReservedQuantity())
	s.Equal(6, s.available("x"))
}

func (s *InventoryRepositoryIntegrationTestSuite) TestReserve_Insufficient() {
	s.stock("x", 3)

	_, _, err := s.repository.Reserve(context.Background(), s.line("x", 4, "r1"))

	var insufficient *errs.InsufficientInventoryError
	s.Require().ErrorAs(err, &insufficient)
	s.Equal("x", insufficient.ProductID)
	s.Equal(4, insufficient.Requested)
	s.Equal(3, insufficient.Available)
}

func (s *InventoryRepositoryIntegrationTestSuite) TestReserve_UnknownProduct() {
	_, _, err := s.repository.Reserve(context.Background(), s.line("ghost", 1, "r1"))

	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *InventoryRepositoryIntegrationTestSuite) TestReserve_ReplayDoesNotDoubleReserve() {
	s.stock("x", 10)
	ctx := context.Background()

	_, applied, err := s.repository.Reserve(ctx, s.line("x", 4, "r1"))
	s.Require().NoError(err)
	s.True(applied)

	record, applied, err := s.repository.Reserve(ctx, s.line("x", 4, "r1"))
	s.Require().NoError(err)
	s.False(applied)
	s.Equal(4, record.ReservedQuantity())
	s.Equal(6, s.available("x"))
}

func (s *InventoryRepositoryIntegrationTestSuite) TestReserve_ReplayWithOtherQuantityIsRejected() {
	s.stock("x", 10)
	ctx := context.Background()

	_, _, err := s.repository.Reserve(ctx, s.line("x", 2, "r1"))
	s.Require().NoError(err)

	_, applied, err := s.repository.Reserve(ctx, s.line("x", 5, "r1"))

	s.Require().ErrorIs(err, errs.ErrValueIsInvalid)
	s.False(applied)
	s.Equal(8, s.available("x"))
}

func (s *InventoryRepositoryIntegrationTestSuite) TestReserve_ReplayAfterReleaseIsRejected() {
	s.stock("x", 10)
	ctx := context.Background()

	_, _, err := s.repository.Reserve(ctx, s.line("x", 2, "r1"))
	s.Require().NoError(err)
	_, _, err = s.repository.Release(ctx, s.line("x", 2, "r1"))
	s.Require().NoError(err)

	_, applied, err := s.repository.Reserve(ctx, s.line("x", 2, "r1"))

	s.Require().ErrorIs(err, errs.ErrOperationNotAllowed)
	s.False(applied)
	s.Equal(10, s.available("x"))
}

func (s *InventoryRepositoryIntegrationTestSuite) TestReserve_ReplayAfterPartialReleaseIsRejected() {
	s.stock("x", 10)
	ctx := context.Background()

	_, _, err := s.repository.Reserve(ctx, s.line("x", 4, "r1"))
	s.Require().NoError(err)
	_, _, err = s.repository.Release(ctx, s.line("x", 1, "r1"))
	s.Require().NoError(err)

	_, _, err = s.repository.Reserve(ctx, s.line("x", 4, "r1"))

	s.Require().ErrorIs(err, errs.ErrOperationNotAllowed)
	s.Equal(7, s.available("x"))
}

func (s *InventoryRepositoryIntegrationTestSuite) TestRelease() {
	s.stock("x", 10)
	ctx := context.Background()
	_, _, err := s.repository.Reserve(ctx, s.line("x", 4, "r1"))
	s.Require().NoError(err)

	_, released, err := s.repository.Release(ctx, s.line("x", 1, "r1"))
	s.Require().NoError(err)
	s.Equal(1, released)
	s.Equal(7, s.available("x"))

	_, released, err = s.repository.Release(ctx, s.line("x", 10, "r1"))
	s.Require().NoError(err)
	s.Equal(3, released, "release is clamped to the remaining reservation")
	s.Equal(10, s.available("x"))

	_, released, err = s.repository.Release(ctx, s.line("x", 4, "r1"))
	s.Require().NoError(err)
	s.Zero(released, "released reservations are a no-op")
	s.Equal(10, s.available("x"))

	_, _, err = s.repository.Release(ctx, s.line("x", 1, "unknown"))
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *InventoryRepositoryIntegrationTestSuite) TestSave_KeepsReservedQuantity() {
	s.stock("x", 10)
	ctx := context.Background()
	_, _, err := s.repository.Reserve(ctx, s.line("x", 6, "r1"))
	s.Require().NoError(err)

	restocked, err := inventory.RestoreRecord("x", 50, 0, 5, false, time.Now())
	s.Require().NoError(err)
	s.Require().NoError(s.repository.Save(ctx, restocked))

	record, err := s.repository.Get(ctx, "x")
	s.Require().NoError(err)
	s.Equal(50, record.TotalQuantity())
	s.Equal(6, record.ReservedQuantity())
	s.Equal(5, record.LowStockThreshold())

	tooLow, err := inventory.RestoreRecord("x", 3, 0, 5, false, time.Now())
	s.Require().NoError(err)
	err = s.repository.Save(ctx, tooLow)
	s.Require().ErrorIs(err, errs.ErrOperationNotAllowed)
}

func (s *InventoryRepositoryIntegrationTestSuite) TestReserve_ConcurrentLastUnit() {
	s.stock("x", 1)
	const workers = 10

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		rejected  int
	)
	lines := make([]inventory.Line, workers)
	for i := range lines {
		lines[i] = s.line("x", 1, fmt.Sprintf("r%d", i))
	}

	for i := range workers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := s.pg.DB.Transaction(func(tx *gorm.DB) error {
				repo := inventoryrepo.NewGormInventoryRepository(tx, noopTracker{})
				_, _, err := repo.Reserve(context.Background(), lines[i])
				return err
			})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errs.KindOf(err) == errs.KindInsufficientInventory:
				rejected++
			}
		}(i)
	}
	wg.Wait()

	s.Equal(1, successes)
	s.Equal(workers-1, rejected)
	s.Equal(0, s.available("x"))
}
