// Package wallet keeps the key pairs behind payment addresses. Seeds are
// sealed with the configured EncryptionService before they are stored.
package wallet

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"sovtoken-payments/internal/core/domain"
	"sovtoken-payments/internal/core/ports"
	"sovtoken-payments/pkg/address"
	"sovtoken-payments/pkg/apperror"

	"github.com/rs/zerolog"
)

// KeyStore implements ports.Wallet on top of a PaymentAddressRepository.
type KeyStore struct {
	repo   ports.PaymentAddressRepository
	crypto ports.EncryptionService
	log    zerolog.Logger
	rand   io.Reader
	now    func() time.Time
}

// NewKeyStore creates a KeyStore.
func NewKeyStore(repo ports.PaymentAddressRepository, crypto ports.EncryptionService, log zerolog.Logger) *KeyStore {
	return &KeyStore{
		repo:   repo,
		crypto: crypto,
		log:    log,
		rand:   rand.Reader,
		now:    time.Now,
	}
}

// CreateKey derives an ed25519 key pair from cfg.Seed, or from a random
// seed when none is given, and registers it. Creating a key that already
// exists returns the existing key.
func (k *KeyStore) CreateKey(ctx context.Context, cfg domain.PaymentAddressConfig) (address.VerKey, error) {
	var zero address.VerKey

	seed := make([]byte, ed25519.SeedSize)
	if cfg.HasSeed() {
		if len(cfg.Seed) != ed25519.SeedSize {
			return zero, apperror.InvalidValuef("seed must be exactly %d bytes", ed25519.SeedSize)
		}
		copy(seed, cfg.Seed)
	} else if _, err := io.ReadFull(k.rand, seed); err != nil {
		return zero, apperror.InternalError(fmt.Errorf("generating seed: %w", err))
	}

	pub := ed25519.NewKeyFromSeed(seed).Public().(ed25519.PublicKey)
	verkey, err := address.VerKeyFromBytes(pub)
	if err != nil {
		return zero, apperror.InternalError(err)
	}

	sealed, err := k.crypto.Encrypt(hex.EncodeToString(seed))
	if err != nil {
		return zero, apperror.ErrEncryptionFailure(err)
	}

	rec := &domain.PaymentAddress{
		Address:    address.Create(verkey),
		VerKey:     verkey.Base58(),
		SealedSeed: sealed,
		CreatedAt:  k.now().UTC(),
	}
	created, err := k.repo.Create(ctx, rec)
	if err != nil {
		return zero, apperror.ErrDatabaseError(err)
	}
	if !created {
		return k.existing(ctx, rec.Address)
	}

	k.log.Debug().Str("address", rec.Address).Msg("wallet key registered")
	return verkey, nil
}

func (k *KeyStore) existing(ctx context.Context, addr string) (address.VerKey, error) {
	rec, err := k.repo.GetByAddress(ctx, addr)
	if err != nil {
		return address.VerKey{}, apperror.ErrDatabaseError(err)
	}
	if rec == nil {
		return address.VerKey{}, apperror.ErrDatabaseError(fmt.Errorf("address %s vanished after conflict", addr))
	}
	vk, err := address.VerKeyFromBase58(rec.VerKey)
	if err != nil {
		return address.VerKey{}, apperror.ErrDatabaseError(fmt.Errorf("stored key for %s: %w", addr, err))
	}
	return vk, nil
}

// ListKeys returns every stored verification key, oldest first.
func (k *KeyStore) ListKeys(ctx context.Context) ([]address.VerKey, error) {
	recs, err := k.repo.List(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	keys := make([]address.VerKey, 0, len(recs))
	for _, rec := range recs {
		vk, err := address.VerKeyFromBase58(rec.VerKey)
		if err != nil {
			return nil, apperror.ErrDatabaseError(fmt.Errorf("stored key for %s: %w", rec.Address, err))
		}
		keys = append(keys, vk)
	}
	return keys, nil
}
