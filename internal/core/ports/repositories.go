package ports

import (
	"context"

	"sovtoken-payments/internal/core/domain"
)

// PaymentAddressRepository persists wallet keys registered as payment addresses.
type PaymentAddressRepository interface {
	// Create stores rec. It reports false when the address already exists.
	Create(ctx context.Context, rec *domain.PaymentAddress) (bool, error)
	// GetByAddress returns nil, nil when the address is unknown.
	GetByAddress(ctx context.Context, addr string) (*domain.PaymentAddress, error)
	List(ctx context.Context) ([]domain.PaymentAddress, error)
}
