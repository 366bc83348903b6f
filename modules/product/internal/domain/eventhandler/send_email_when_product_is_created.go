package eventhandler

import (
	"context"

	"go-oms/modules/product/internal/domain/event"
	"go-oms/shared/common/domain"
	"go-oms/shared/common/logger"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// sendEmailWhenProductIsCreatedHandler ยังไม่มีระบบส่งอีเมลจริง จึงเขียน log แทน
type sendEmailWhenProductIsCreatedHandler struct {
	name string
}

func NewSendEmailWhenProductIsCreatedHandler() domain.EventHandler {
	return &sendEmailWhenProductIsCreatedHandler{name: "SendEmail"}
}

func (h *sendEmailWhenProductIsCreatedHandler) Handle(ctx context.Context, evt domain.Event) error {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("domain_event")
	ctx, span := tracer.Start(ctx, "DomainEvent:ProductCreated:"+h.name)
	defer span.End()

	e, ok := evt.(*event.ProductCreatedEvent)
	if !ok {
		return domain.ErrInvalidEvent
	}

	logger.FromContext(ctx).Info("Sending email to .....",
		zap.String("product_id", e.Data.ProductID),
		zap.String("product_name", e.Data.Name),
		zap.Float64("price", e.Data.Price),
	)
	return nil
}
