package domain

import (
	"context"
	"fmt"
	"sync"

	"go-oms/shared/common/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var (
	ErrInvalidEvent = fmt.Errorf("invalid domain event")
)

// EventHandler คือ interface ที่ทุก handler ของ event ต้อง implement
type EventHandler interface {
	Handle(ctx context.Context, event Event) error
}

// EventDispatcher ทำหน้าที่กระจาย event ไปยัง handler ที่ลงทะเบียนไว้ตามชื่อ event
//
// Unregister เทียบ handler ด้วย identity จึงควรลงทะเบียนเป็น pointer ของ struct ที่มี field
// handler ตัวเดียวกันที่ลงทะเบียนสองครั้งจะถูกเรียกสองครั้ง
type EventDispatcher interface {
	Register(eventName EventName, handler EventHandler)
	Unregister(eventName EventName, handler EventHandler)
	UnregisterAll()
	Handlers(eventName EventName) []EventHandler
	Notify(ctx context.Context, event Event) error
}

type simpleEventDispatcher struct {
	handlers map[EventName][]EventHandler
	mu       sync.RWMutex

	tracer   trace.Tracer
	notified metric.Int64Counter
}

func NewEventDispatcher() EventDispatcher {
	meter := otel.GetMeterProvider().Meter("domain_event")
	notified, err := meter.Int64Counter("domain_events_notified_total")
	if err != nil {
		// meter ยังคืน instrument ที่ใช้งานได้ (no-op) มาให้ แค่ log ไว้แล้วทำงานต่อ
		logger.Log().Warn("cannot create domain event counter", zap.Error(err))
	}

	return &simpleEventDispatcher{
		handlers: make(map[EventName][]EventHandler),
		tracer:   otel.GetTracerProvider().Tracer("domain_event"),
		notified: notified,
	}
}

func (d *simpleEventDispatcher) Register(eventName EventName, handler EventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.handlers[eventName] = append(d.handlers[eventName], handler)
}

// Unregister ลบ handler ตัวแรกที่ตรงกัน ถ้าไม่พบก็ไม่ทำอะไร
func (d *simpleEventDispatcher) Unregister(eventName EventName, handler EventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()

	handlers := d.handlers[eventName]
	for i, h := range handlers {
		if h == handler {
			// สร้าง slice ใหม่ เพื่อไม่ให้กระทบ snapshot ที่ Notify ถืออยู่
			next := make([]EventHandler, 0, len(handlers)-1)
			next = append(next, handlers[:i]...)
			next = append(next, handlers[i+1:]...)

			if len(next) == 0 {
				delete(d.handlers, eventName)
			} else {
				d.handlers[eventName] = next
			}
			return
		}
	}
}

func (d *simpleEventDispatcher) UnregisterAll() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.handlers = make(map[EventName][]EventHandler)
}

func (d *simpleEventDispatcher) Handlers(eventName EventName) []EventHandler {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return append([]EventHandler(nil), d.handlers[eventName]...)
}

// Notify เรียก handler ทุกตัวของ event นี้ตามลำดับการลงทะเบียน บน goroutine ของผู้เรียก
// ถ้า handler ตัวใดคืน error จะหยุดทันที และไม่เรียก handler ที่เหลือ
func (d *simpleEventDispatcher) Notify(ctx context.Context, event Event) error {
	// อ่าน handler ของ event นี้ (copy slice เพื่อป้องกัน concurrent modification)
	handlers := d.Handlers(event.EventName())
	if len(handlers) == 0 {
		return nil
	}

	ctx, span := d.tracer.Start(ctx, "DomainEvent:"+string(event.EventName()),
		trace.WithAttributes(attribute.Int("event.handlers", len(handlers))),
	)
	defer span.End()

	d.notified.Add(ctx, 1, metric.WithAttributes(attribute.String("event.name", string(event.EventName()))))

	for _, h := range handlers {
		if err := h.Handle(ctx, event); err != nil {
			span.SetStatus(codes.Error, err.Error())
			return fmt.Errorf("error handling event %s: %w", event.EventName(), err)
		}
	}

	return nil
}
