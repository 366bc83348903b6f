package eventhandler

import (
	"context"
	"fmt"

	"go-oms/modules/customer/internal/domain/event"
	"go-oms/shared/common/domain"
	"go-oms/shared/common/logger"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// sendConsoleLogHandler เขียน log เมื่อ customer เปลี่ยนที่อยู่
type sendConsoleLogHandler struct {
	name string
}

func NewSendConsoleLogHandler() domain.EventHandler {
	return &sendConsoleLogHandler{name: "SendConsoleLog"}
}

func (h *sendConsoleLogHandler) Handle(ctx context.Context, evt domain.Event) error {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("domain_event")
	ctx, span := tracer.Start(ctx, "DomainEvent:CustomerAddressChanged:"+h.name)
	defer span.End()

	e, ok := evt.(*event.CustomerAddressChangedEvent)
	if !ok {
		return domain.ErrInvalidEvent
	}

	logger.FromContext(ctx).Info(
		fmt.Sprintf("Customer address changed: %s, %s changed to: %s", e.Data.CustomerID, e.Data.CustomerName, e.Data.Address),
		zap.String("event", string(e.EventName())),
	)
	return nil
}
