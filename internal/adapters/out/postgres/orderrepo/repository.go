package orderrepo

import (
	"context"
	"errors"

	"salesdelivery/internal/adapters/out/postgres/outboxrepo"
	"salesdelivery/internal/core/domain/model/kernel"
	"salesdelivery/internal/core/domain/model/order"
	"salesdelivery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM. Each
// write runs in a (nested) transaction that also appends the order's
// pending domain events to the outbox.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&dto).Error; err != nil {
			return err
		}
		return outboxrepo.NewGormOutboxRepository(tx).Append(ctx, aggregate.DomainEvents())
	})
	if err != nil {
		return err
	}

	aggregate.ClearDomainEvents()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// A map so that cleared shipment fields are written as NULL.
		result := tx.Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
			"reference":                 dto.Reference,
			"status":                    dto.Status,
			"carrier_id":                dto.CarrierID,
			"easypost_oca_rate_id":      dto.EasypostOcaRateID,
			"easypost_oca_shipment_id":  dto.EasypostOcaShipmentID,
			"easypost_oca_carrier_name": dto.EasypostOcaCarrierName,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}

		if err := tx.Where("order_id = ?", dto.ID).Delete(&OrderLineDTO{}).Error; err != nil {
			return err
		}
		if len(dto.Lines) > 0 {
			if err := tx.Create(&dto.Lines).Error; err != nil {
				return err
			}
		}

		return outboxrepo.NewGormOutboxRepository(tx).Append(ctx, aggregate.DomainEvents())
	})
	if err != nil {
		return err
	}

	aggregate.ClearDomainEvents()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get loads the order with its lines. Inside a unit of work the order row
// is locked until commit so concurrent delivery-line updates serialize.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("sequence")
		}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
