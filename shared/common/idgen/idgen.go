package idgen

import "github.com/google/uuid"

// NewID คืนค่า UUID v4 ในรูปแบบ string
func NewID() string {
	return uuid.NewString()
}
