package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CouponStatus string

const (
	CouponActive  CouponStatus = "ACTIVO"
	CouponDeleted CouponStatus = "ELIMINADO"
)

var couponTransitions = transitionTable[CouponStatus]{
	CouponActive: {CouponDeleted},
}

func (s CouponStatus) CanTransitionTo(next CouponStatus) bool {
	return couponTransitions.allows(s, next)
}

// Coupon é um cupom de desconto. AccountID vazio significa cupom geral.
type Coupon struct {
	ID                 ID              `json:"id"`
	Code               string          `json:"codigo"`
	Name               string          `json:"nombre"`
	DiscountPercentage decimal.Decimal `json:"porcentajeDescuento"`
	ExpirationDate     time.Time       `json:"fechaVencimiento"`
	Status             CouponStatus    `json:"estadoCupon"`
	AccountID          ID              `json:"usuarioId,omitempty"`
}

// CouponRequest é usado na criação e edição. ExpirationDate usa DateLayout.
type CouponRequest struct {
	Code               string          `json:"codigo"`
	Name               string          `json:"nombre"`
	DiscountPercentage decimal.Decimal `json:"porcentajeDescuento"`
	ExpirationDate     string          `json:"fechaVencimiento"`
	AccountID          string          `json:"usuarioId,omitempty"`
}
