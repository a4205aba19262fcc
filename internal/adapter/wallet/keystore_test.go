package wallet

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"sovtoken-payments/internal/core/domain"
	"sovtoken-payments/internal/core/ports/mocks"
	"sovtoken-payments/pkg/address"
	"sovtoken-payments/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testSeed = []byte("000000000000000000000000Trustee1")

func expectedKey(t *testing.T, seed []byte) address.VerKey {
	t.Helper()
	vk, err := address.VerKeyFromBytes(ed25519.NewKeyFromSeed(seed).Public().(ed25519.PublicKey))
	require.NoError(t, err)
	return vk
}

func newTestKeyStore(t *testing.T) (*KeyStore, *mocks.MockPaymentAddressRepository, *mocks.MockEncryptionService) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPaymentAddressRepository(ctrl)
	enc := mocks.NewMockEncryptionService(ctrl)
	ks := NewKeyStore(repo, enc, zerolog.Nop())
	ks.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return ks, repo, enc
}

func TestKeyStore_CreateKey_FromSeed(t *testing.T) {
	ks, repo, enc := newTestKeyStore(t)
	want := expectedKey(t, testSeed)

	enc.EXPECT().Encrypt(hex.EncodeToString(testSeed)).Return("sealed", nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *domain.PaymentAddress) (bool, error) {
			assert.Equal(t, address.Create(want), rec.Address)
			assert.Equal(t, want.Base58(), rec.VerKey)
			assert.Equal(t, "sealed", rec.SealedSeed)
			assert.Equal(t, 2026, rec.CreatedAt.Year())
			return true, nil
		})

	got, err := ks.CreateKey(context.Background(), domain.PaymentAddressConfig{Seed: testSeed})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestKeyStore_CreateKey_Random(t *testing.T) {
	ks, repo, enc := newTestKeyStore(t)
	seed := bytes.Repeat([]byte{7}, ed25519.SeedSize)
	ks.rand = bytes.NewReader(seed)

	enc.EXPECT().Encrypt(hex.EncodeToString(seed)).Return("sealed", nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(true, nil)

	got, err := ks.CreateKey(context.Background(), domain.PaymentAddressConfig{})
	require.NoError(t, err)
	assert.Equal(t, expectedKey(t, seed), got)
}

func TestKeyStore_CreateKey_Existing(t *testing.T) {
	ks, repo, enc := newTestKeyStore(t)
	want := expectedKey(t, testSeed)
	addr := address.Create(want)

	enc.EXPECT().Encrypt(gomock.Any()).Return("sealed", nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(false, nil)
	repo.EXPECT().GetByAddress(gomock.Any(), addr).
		Return(&domain.PaymentAddress{Address: addr, VerKey: want.Base58(), SealedSeed: "older"}, nil)

	got, err := ks.CreateKey(context.Background(), domain.PaymentAddressConfig{Seed: testSeed})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestKeyStore_CreateKey_Errors(t *testing.T) {
	t.Run("short seed", func(t *testing.T) {
		ks, _, _ := newTestKeyStore(t)
		_, err := ks.CreateKey(context.Background(), domain.PaymentAddressConfig{Seed: []byte("abc")})
		assert.True(t, apperror.HasCode(err, apperror.CodeInvalidValue))
	})

	t.Run("entropy failure", func(t *testing.T) {
		ks, _, _ := newTestKeyStore(t)
		ks.rand = bytes.NewReader(nil)
		_, err := ks.CreateKey(context.Background(), domain.PaymentAddressConfig{})
		assert.True(t, apperror.HasCode(err, apperror.CodeInternal))
	})

	t.Run("encryption failure", func(t *testing.T) {
		ks, _, enc := newTestKeyStore(t)
		enc.EXPECT().Encrypt(gomock.Any()).Return("", errors.New("bad key"))
		_, err := ks.CreateKey(context.Background(), domain.PaymentAddressConfig{Seed: testSeed})
		assert.True(t, apperror.HasCode(err, apperror.CodeEncryption))
	})

	t.Run("database failure", func(t *testing.T) {
		ks, repo, enc := newTestKeyStore(t)
		enc.EXPECT().Encrypt(gomock.Any()).Return("sealed", nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(false, errors.New("conn refused"))
		_, err := ks.CreateKey(context.Background(), domain.PaymentAddressConfig{Seed: testSeed})
		assert.True(t, apperror.HasCode(err, apperror.CodeInternal))
	})
}

func TestKeyStore_ListKeys(t *testing.T) {
	ks, repo, _ := newTestKeyStore(t)
	a := expectedKey(t, testSeed)
	b := expectedKey(t, bytes.Repeat([]byte{9}, ed25519.SeedSize))

	repo.EXPECT().List(gomock.Any()).Return([]domain.PaymentAddress{
		{Address: address.Create(a), VerKey: a.Base58()},
		{Address: address.Create(b), VerKey: b.Base58()},
	}, nil)

	keys, err := ks.ListKeys(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []address.VerKey{a, b}, keys)
}

func TestKeyStore_ListKeys_Empty(t *testing.T) {
	ks, repo, _ := newTestKeyStore(t)
	repo.EXPECT().List(gomock.Any()).Return(nil, nil)

	keys, err := ks.ListKeys(context.Background())
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestKeyStore_ListKeys_CorruptRow(t *testing.T) {
	ks, repo, _ := newTestKeyStore(t)
	repo.EXPECT().List(gomock.Any()).Return([]domain.PaymentAddress{{Address: "pay:sov:x", VerKey: "not-base58-0OIl"}}, nil)

	_, err := ks.ListKeys(context.Background())
	assert.True(t, apperror.HasCode(err, apperror.CodeInternal))
}
