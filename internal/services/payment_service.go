package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "nestegg/internal/errors"
	"nestegg/internal/events"
	"nestegg/internal/logger"
	"nestegg/internal/metrics"
	"nestegg/internal/models"
	"nestegg/internal/pagination"
	"nestegg/internal/uuid"
)

// paymentService is the payment record store. Its writes never touch
// budget snapshots; reconciliation propagates them.
type paymentService struct {
	db        *gorm.DB
	publisher events.Publisher
	now       func() time.Time
}

// NewPaymentService creates a new PaymentServicer.
func NewPaymentService(db *gorm.DB, publisher events.Publisher) PaymentServicer {
	return &paymentService{db: db, publisher: publisher, now: time.Now}
}

// validatePaymentInput checks the fields of a new payment and fills defaults.
func validatePaymentInput(input *PaymentInput) error {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "payment name is required")
	}
	if input.Amount <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidAmount, "amount must be greater than zero")
	}
	if input.CategoryID == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if input.DueDate.IsZero() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "due date is required")
	}
	if input.Frequency == "" {
		input.Frequency = models.FrequencyOnce
	}
	if !input.Frequency.Valid() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid frequency")
	}
	if input.Status == "" {
		input.Status = models.PaymentStatusPending
	}
	if !input.Status.Valid() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid status")
	}
	if input.RecurrenceEnd != nil && models.DateOnly(*input.RecurrenceEnd).Before(models.DateOnly(input.DueDate)) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "recurrence end must not be before the due date")
	}
	return nil
}

// newPaymentRecord builds a record from validated input. A payment created
// as paid gets a paid date and defaults its payer to the acting user.
func newPaymentRecord(userID string, input PaymentInput, now time.Time) *models.PaymentRecord {
	record := &models.PaymentRecord{
		UserID:     userID,
		Name:       input.Name,
		Amount:     input.Amount,
		CategoryID: input.CategoryID,
		DueDate:    models.DateOnly(input.DueDate),
		Frequency:  input.Frequency,
		Status:     input.Status,
		Notes:      input.Notes,
	}
	if input.RecurrenceEnd != nil {
		end := models.DateOnly(*input.RecurrenceEnd)
		record.RecurrenceEnd = &end
	}
	if input.Frequency.Recurring() {
		series := uuid.New()
		record.SeriesID = &series
	}
	if input.Status == models.PaymentStatusPaid {
		paidDate := models.DateOnly(now)
		record.PaidDate = &paidDate
		payer := userID
		if input.PaidByID != nil && *input.PaidByID != "" {
			payer = *input.PaidByID
		}
		record.PaidByID = &payer
	}
	return record
}

// applyPaymentPatch validates and applies a patch to record in memory.
func applyPaymentPatch(db *gorm.DB, record *models.PaymentRecord, patch PaymentPatch) error {
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "payment name cannot be empty")
		}
		record.Name = name
	}
	if patch.Amount != nil {
		if *patch.Amount <= 0 {
			return apperrors.WithMessage(apperrors.ErrInvalidAmount, "amount must be greater than zero")
		}
		record.Amount = *patch.Amount
	}
	if patch.CategoryID != nil && *patch.CategoryID != record.CategoryID {
		if err := requireCategory(db, *patch.CategoryID, record.UserID); err != nil {
			return err
		}
		record.CategoryID = *patch.CategoryID
	}
	if patch.DueDate != nil {
		if patch.DueDate.IsZero() {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "due date cannot be empty")
		}
		record.DueDate = models.DateOnly(*patch.DueDate)
	}
	if patch.Frequency != nil {
		if !patch.Frequency.Valid() {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid frequency")
		}
		record.Frequency = *patch.Frequency
		if record.Frequency.Recurring() && record.SeriesID == nil {
			series := uuid.New()
			record.SeriesID = &series
		}
	}
	if patch.RecurrenceEnd != nil {
		end := models.DateOnly(*patch.RecurrenceEnd)
		record.RecurrenceEnd = &end
	}
	if record.RecurrenceEnd != nil && record.RecurrenceEnd.Before(models.DateOnly(record.DueDate)) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "recurrence end must not be before the due date")
	}
	if patch.Notes != nil {
		record.Notes = *patch.Notes
	}
	return nil
}

// requireCategory checks that a category exists and belongs to userID.
func requireCategory(db *gorm.DB, categoryID, userID string) error {
	var count int64
	if err := db.Model(&models.Category{}).
		Where("id = ? AND user_id = ?", categoryID, userID).
		Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return apperrors.ErrCategoryNotFound
	}
	return nil
}

// CreatePayment creates a standalone payment record.
func (s *paymentService) CreatePayment(ctx context.Context, userID string, input PaymentInput) (*models.PaymentRecord, error) {
	if err := validatePaymentInput(&input); err != nil {
		return nil, err
	}
	db := s.db.WithContext(ctx)
	if err := requireCategory(db, input.CategoryID, userID); err != nil {
		return nil, err
	}

	record := newPaymentRecord(userID, input, s.now())
	if err := db.Create(record).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return record, nil
}

// GetPayment retrieves a payment the user may see.
func (s *paymentService) GetPayment(ctx context.Context, userID, paymentID string) (*models.PaymentRecord, error) {
	return loadAccessiblePayment(s.db.WithContext(ctx), userID, paymentID)
}

// ListPayments retrieves the user's payments ordered by due date.
func (s *paymentService) ListPayments(ctx context.Context, userID string, filter PaymentFilter, page pagination.PageRequest) (*pagination.PageResponse[models.PaymentRecord], error) {
	base := s.db.WithContext(ctx).Model(&models.PaymentRecord{}).Where("user_id = ?", userID)
	if filter.From != nil {
		base = base.Where("due_date >= ?", models.DateOnly(*filter.From))
	}
	if filter.To != nil {
		base = base.Where("due_date < ?", models.DateOnly(*filter.To).AddDate(0, 0, 1))
	}
	if filter.Status != nil {
		base = base.Where("status = ?", *filter.Status)
	}
	if filter.CategoryID != nil {
		base = base.Where("category_id = ?", *filter.CategoryID)
	}

	result, err := pagination.Find[models.PaymentRecord](base, page, "due_date ASC, created_at ASC")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

// UpdatePayment patches a payment record. Snapshots are left as they are
// until the next reconciliation pass.
func (s *paymentService) UpdatePayment(ctx context.Context, userID, paymentID string, patch PaymentPatch) (*models.PaymentRecord, error) {
	var record *models.PaymentRecord
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		record, err = loadAccessiblePayment(tx, userID, paymentID)
		if err != nil {
			return err
		}
		if err := applyPaymentPatch(tx, record, patch); err != nil {
			return err
		}
		if err := tx.Save(record).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// SetStatus moves a payment through its state machine. Moving to paid sets
// the paid date and payer (the acting user unless paidBy is given); moving
// away from paid clears both. Paying a recurring payment schedules the next
// occurrence.
func (s *paymentService) SetStatus(ctx context.Context, userID, paymentID string, status models.PaymentStatus, paidBy *string) (*StatusChange, error) {
	if !status.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid status")
	}

	change := &StatusChange{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		record, err := loadAccessiblePayment(tx, userID, paymentID)
		if err != nil {
			return err
		}
		change.Payment = record
		change.PreviousStatus = record.Status

		if !record.Status.CanTransitionTo(status) {
			return apperrors.WithMessage(apperrors.ErrInvalidStatusTransition,
				fmt.Sprintf("cannot move payment from %s to %s", record.Status, status))
		}
		if record.Status == status && (status != models.PaymentStatusPaid || paidBy == nil) {
			return nil
		}

		wasPaid := record.Status == models.PaymentStatusPaid
		record.Status = status
		if status == models.PaymentStatusPaid {
			payer := userID
			if paidBy != nil && *paidBy != "" {
				payer = *paidBy
			}
			record.PaidByID = &payer
			if record.PaidDate == nil || !wasPaid {
				paidDate := models.DateOnly(s.now())
				record.PaidDate = &paidDate
			}
		} else {
			record.PaidDate = nil
			record.PaidByID = nil
		}

		if err := tx.Save(record).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		change.Changed = true

		if status == models.PaymentStatusPaid && !wasPaid && record.Frequency.Recurring() {
			next, err := spawnNextOccurrence(tx, record)
			if err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			change.NextOccurrence = next
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if change.Changed {
		data := map[string]interface{}{
			"from": change.PreviousStatus,
			"to":   change.Payment.Status,
		}
		if change.Payment.PaidByID != nil {
			data["paid_by"] = *change.Payment.PaidByID
		}
		if change.NextOccurrence != nil {
			data["next_occurrence_id"] = change.NextOccurrence.ID
		}
		events.Emit(ctx, s.publisher, events.New(events.TypePaymentStatusChanged, userID, change.Payment.ID, data))
	}
	return change, nil
}

// spawnNextOccurrence creates the next pending occurrence of a recurring
// payment. It returns nil when the series has ended or the occurrence
// already exists, including one the user deleted.
func spawnNextOccurrence(tx *gorm.DB, record *models.PaymentRecord) (*models.PaymentRecord, error) {
	nextDue, ok := record.Frequency.Next(models.DateOnly(record.DueDate))
	if !ok {
		return nil, nil
	}
	if record.RecurrenceEnd != nil && nextDue.After(models.DateOnly(*record.RecurrenceEnd)) {
		return nil, nil
	}

	seriesID := record.ID
	if record.SeriesID != nil {
		seriesID = *record.SeriesID
	}

	var count int64
	if err := tx.Unscoped().Model(&models.PaymentRecord{}).
		Where("(series_id = ? OR id = ?) AND due_date >= ? AND due_date < ?",
			seriesID, seriesID, nextDue, nextDue.AddDate(0, 0, 1)).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, nil
	}

	next := &models.PaymentRecord{
		UserID:        record.UserID,
		Name:          record.Name,
		Amount:        record.Amount,
		CategoryID:    record.CategoryID,
		DueDate:       nextDue,
		Frequency:     record.Frequency,
		Status:        models.PaymentStatusPending,
		SeriesID:      &seriesID,
		RecurrenceEnd: record.RecurrenceEnd,
		Notes:         record.Notes,
	}
	if err := tx.Create(next).Error; err != nil {
		return nil, err
	}
	return next, nil
}

// DeletePayment deletes a payment record. A record referenced by budget
// snapshots can only be deleted with force, which removes the snapshots too.
func (s *paymentService) DeletePayment(ctx context.Context, userID, paymentID string, force bool) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		record, err := loadAccessiblePayment(tx, userID, paymentID)
		if err != nil {
			return err
		}

		var refs int64
		if err := tx.Model(&models.PaymentSnapshot{}).
			Where("payment_record_id = ?", record.ID).
			Count(&refs).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if refs > 0 {
			if !force {
				return apperrors.ErrPaymentReferenced
			}
			if err := tx.Unscoped().Where("payment_record_id = ?", record.ID).Delete(&models.PaymentSnapshot{}).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}

		if err := tx.Delete(record).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// MarkOverdue moves pending payments whose due date is before today to
// overdue. It is triggered by the overdue job.
func (s *paymentService) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	result := s.db.WithContext(ctx).Model(&models.PaymentRecord{}).
		Where("status = ? AND due_date < ?", models.PaymentStatusPending, models.DateOnly(now)).
		Update("status", models.PaymentStatusOverdue)
	if result.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}

	metrics.ObserveOverdue(result.RowsAffected)
	if result.RowsAffected > 0 {
		logger.Get().Infow("marked payments overdue", "count", result.RowsAffected)
		events.Emit(ctx, s.publisher, events.New(events.TypePaymentsMarkedOverdue, "", "",
			map[string]interface{}{"count": result.RowsAffected}))
	}
	return result.RowsAffected, nil
}

// isNotFound reports whether err is gorm's record-not-found error.
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
