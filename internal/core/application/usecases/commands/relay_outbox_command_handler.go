package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salesdelivery/internal/core/domain/model/kernel"
	"salesdelivery/internal/core/ports"
)

// RelayOutboxCommandHandler moves outbox messages to the broker.
//
// Messages are locked for the duration of the transaction. Publishing stops
// at the first failure; messages published before it are still marked so
// they are not sent again, the rest are retried on the next run. Delivery
// is at least once: a crash between publish and commit re-sends.
type RelayOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
	now        func() time.Time
}

func NewRelayOutboxCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.EventPublisher,
) RelayOutboxCommandHandler {
	return RelayOutboxCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        time.Now,
	}
}

// Handle returns the number of messages published. The count is returned
// with the error when marking or committing fails after publishing.
func (h *RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outboxRepo := uow.OutboxRepository()
	messages, err := outboxRepo.GetUnpublished(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	if len(messages) == 0 {
		return 0, nil
	}

	published := make([]kernel.UUID, 0, len(messages))
	var publishErr error
	for _, msg := range messages {
		if err = h.publisher.Publish(ctx, msg); err != nil {
			publishErr = fmt.Errorf("publish outbox message %s: %w", msg.ID, err)
			break
		}
		published = append(published, msg.ID)
	}

	if len(published) > 0 {
		if err = outboxRepo.MarkPublished(ctx, published, h.now()); err != nil {
			return len(published), errors.Join(fmt.Errorf("mark outbox messages published: %w", err), publishErr)
		}

		if err = uow.Commit(ctx); err != nil {
			return len(published), errors.Join(fmt.Errorf("commit outbox relay: %w", err), publishErr)
		}
	}

	return len(published), publishErr
}
