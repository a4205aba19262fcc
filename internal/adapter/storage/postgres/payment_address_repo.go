package postgres

import (
	"context"
	"errors"
	"fmt"

	"sovtoken-payments/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// PaymentAddressRepo implements ports.PaymentAddressRepository.
type PaymentAddressRepo struct {
	pool Pool
}

// NewPaymentAddressRepo creates a new PaymentAddressRepo.
func NewPaymentAddressRepo(pool Pool) *PaymentAddressRepo {
	return &PaymentAddressRepo{pool: pool}
}

// Create inserts rec unless the address is already registered.
func (r *PaymentAddressRepo) Create(ctx context.Context, rec *domain.PaymentAddress) (bool, error) {
	query := `INSERT INTO payment_addresses (address, verkey, sealed_seed, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (address) DO NOTHING`

	tag, err := r.pool.Exec(ctx, query, rec.Address, rec.VerKey, rec.SealedSeed, rec.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("insert payment address: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// GetByAddress fetches one registered address.
func (r *PaymentAddressRepo) GetByAddress(ctx context.Context, addr string) (*domain.PaymentAddress, error) {
	query := `SELECT address, verkey, sealed_seed, created_at
		FROM payment_addresses WHERE address = $1`

	rec := &domain.PaymentAddress{}
	err := r.pool.QueryRow(ctx, query, addr).Scan(&rec.Address, &rec.VerKey, &rec.SealedSeed, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment address: %w", err)
	}
	return rec, nil
}

// List returns every registered address, oldest first.
func (r *PaymentAddressRepo) List(ctx context.Context) ([]domain.PaymentAddress, error) {
	query := `SELECT address, verkey, sealed_seed, created_at
		FROM payment_addresses ORDER BY created_at, address`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list payment addresses: %w", err)
	}
	defer rows.Close()

	var out []domain.PaymentAddress
	for rows.Next() {
		var rec domain.PaymentAddress
		if err := rows.Scan(&rec.Address, &rec.VerKey, &rec.SealedSeed, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payment address: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payment addresses: %w", err)
	}
	return out, nil
}
