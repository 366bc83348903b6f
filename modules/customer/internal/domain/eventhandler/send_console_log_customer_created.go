package eventhandler

import (
	"context"

	"go-oms/modules/customer/internal/domain/event"
	"go-oms/shared/common/domain"
	"go-oms/shared/common/logger"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// ทั้งสอง handler ฟัง CustomerCreatedEvent ต่างกันแค่ข้อความที่เขียน log
const (
	consoleLog1Message = "This is the first console.log of the event: CustomerCreated"
	consoleLog2Message = "This is the second console.log of the event: CustomerCreated"
)

type sendConsoleLogCustomerCreatedHandler struct {
	name    string
	message string
}

func NewSendConsoleLog1Handler() domain.EventHandler {
	return &sendConsoleLogCustomerCreatedHandler{name: "SendConsoleLog1", message: consoleLog1Message}
}

func NewSendConsoleLog2Handler() domain.EventHandler {
	return &sendConsoleLogCustomerCreatedHandler{name: "SendConsoleLog2", message: consoleLog2Message}
}

func (h *sendConsoleLogCustomerCreatedHandler) Handle(ctx context.Context, evt domain.Event) error {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("domain_event")
	ctx, span := tracer.Start(ctx, "DomainEvent:CustomerCreated:"+h.name)
	defer span.End()

	e, ok := evt.(*event.CustomerCreatedEvent)
	if !ok {
		return domain.ErrInvalidEvent
	}

	logger.FromContext(ctx).Info(h.message,
		zap.String("customer_id", e.Data.CustomerID),
		zap.String("customer_name", e.Data.Name),
	)
	return nil
}
