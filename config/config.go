package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/go-playground/mold/v4/modifiers"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var (
	ErrInvalidDBDriver  = errors.New("DB_DRIVER must be one of postgres, sqlite")
	ErrDSNRequired      = errors.New("DB_DSN is required")
	ErrInvalidNestedTx  = errors.New("DB_NESTED_TX must be one of none, savepoints")
	ErrServiceNameEmpty = errors.New("SERVICE_NAME must not be empty")
)

const (
	NestedTxNone       = "none"
	NestedTxSavepoints = "savepoints"
)

// รวมการโหลดค่าคอนฟิกทั้งหมดไว้ในจุดเดียว
type Config struct {
	DBDriver      string `envconfig:"DB_DRIVER" default:"postgres" mod:"trim,lcase" validate:"oneof=postgres sqlite"`
	DSN           string `envconfig:"DB_DSN" mod:"trim" validate:"required"`
	NestedTx      string `envconfig:"DB_NESTED_TX" default:"savepoints" mod:"trim,lcase" validate:"oneof=none savepoints"`
	ServiceName   string `envconfig:"SERVICE_NAME" default:"go-oms" mod:"trim" validate:"required"`
	OtelCollector string `envconfig:"OTEL_COLLECTOR_ADDR" mod:"trim"`
}

// error ของแต่ละ field เมื่อไม่ผ่าน validate
var fieldErrors = map[string]error{
	"DBDriver":    ErrInvalidDBDriver,
	"DSN":         ErrDSNRequired,
	"NestedTx":    ErrInvalidNestedTx,
	"ServiceName": ErrServiceNameEmpty,
}

var (
	conform  = modifiers.New()
	validate = validator.New(validator.WithRequiredStructEnabled())
)

// Load อ่านไฟล์ .env ถ้ามี แล้วอ่านค่าจาก environment
// ค่าใน environment มาก่อนค่าในไฟล์เสมอ
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := conform.Struct(context.Background(), &config); err != nil {
		return nil, fmt.Errorf("failed to normalize config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate คืน error ของ field แรกที่ไม่ผ่าน
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	for _, fe := range verrs {
		if ferr, ok := fieldErrors[fe.StructField()]; ok {
			return ferr
		}
	}
	return err
}
