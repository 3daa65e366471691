package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderStatusHistoryQueryHandler reads the ledger and replays it.
type GetOrderStatusHistoryQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderStatusHistoryQueryHandler(db *gorm.DB) GetOrderStatusHistoryQueryHandler {
	return GetOrderStatusHistoryQueryHandler{db: db}
}

// Handle returns ObjectNotFoundError for an unknown order. A ledger that can
// not be replayed is reported through Consistent, not as an error.
func (h GetOrderStatusHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusHistoryQuery,
) (StatusHistoryView, error) {
	if err := query.Validate(); err != nil {
		return StatusHistoryView{}, err
	}

	db := h.db.WithContext(ctx)
	orderID := query.OrderID()
	view := StatusHistoryView{OrderID: orderID, Entries: make([]StatusHistoryEntryView, 0)}

	err := db.Raw(`SELECT status FROM orders WHERE id = ?`, orderID.Bytes()).Row().Scan(&view.CurrentStatus)
	if errors.Is(err, sql.ErrNoRows) {
		return StatusHistoryView{}, errs.NewObjectNotFoundError("order", orderID)
	}
	if err != nil {
		return StatusHistoryView{}, err
	}

	rows, err := db.Raw(`
		SELECT
			id,
			previous_status,
			new_status,
			changed_by,
			reason,
			created_at
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY created_at, seq
	`, orderID.Bytes()).Rows()
	if err != nil {
		return StatusHistoryView{}, err
	}
	defer rows.Close()

	ledger := make([]order.StatusChange, 0)
	for rows.Next() {
		var (
			entry    StatusHistoryEntryView
			id       uuid.UUID
			previous sql.NullString
			at       time.Time
		)

		if err = rows.Scan(&id, &previous, &entry.NewStatus, &entry.ChangedBy, &entry.Reason, &at); err != nil {
			return StatusHistoryView{}, err
		}

		entry.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return StatusHistoryView{}, err
		}
		if previous.Valid {
			s := order.Status(previous.String)
			entry.PreviousStatus = &s
		}
		entry.CreatedAt = at.UTC()

		change, restoreErr := order.RestoreStatusChange(
			entry.ID, orderID, entry.PreviousStatus, entry.NewStatus, entry.ChangedBy, entry.Reason, entry.CreatedAt,
		)
		if restoreErr != nil {
			return StatusHistoryView{}, restoreErr
		}

		ledger = append(ledger, change)
		view.Entries = append(view.Entries, entry)
	}

	if err = rows.Err(); err != nil {
		return StatusHistoryView{}, err
	}

	replayed, replayErr := order.ReplayStatus(ledger)
	view.ReplayedStatus = replayed
	view.Consistent = replayErr == nil && replayed == view.CurrentStatus

	return view, nil
}
