package domain

import "time"

// EventName คือ alias ของ string เพื่อใช้แทนชื่อ event เช่น "CustomerCreatedEvent"
type EventName string

// Event เป็น interface สำหรับ event ที่เกิดขึ้นใน domain
// แต่ละชนิดของ event เป็น struct ของตัวเอง และมี payload แบบ strongly-typed
type Event interface {
	EventName() EventName  // คืนชื่อ event
	OccurredAt() time.Time // คืนเวลาที่ event ถูกสร้าง
}

// BaseEvent เป็น struct พื้นฐานที่ implement Event
// ใช้ฝังใน struct ของ event แต่ละชนิดเพื่อ reuse method
type BaseEvent struct {
	Name EventName
	At   time.Time
}

func NewBaseEvent(name EventName) BaseEvent {
	return BaseEvent{Name: name, At: time.Now()}
}

func (e BaseEvent) EventName() EventName {
	return e.Name
}

func (e BaseEvent) OccurredAt() time.Time {
	return e.At
}
