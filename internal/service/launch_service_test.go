package service

import (
	"context"
	"errors"
	"testing"

	"coin-launch-gateway/internal/core/domain"
	"coin-launch-gateway/internal/core/ports"
	"coin-launch-gateway/internal/core/ports/mocks"
	"coin-launch-gateway/pkg/apperror"
	"coin-launch-gateway/pkg/metrics"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type launchTestDeps struct {
	svc      *LaunchServiceImpl
	metadata *mocks.MockMetadataBuilder
	coins    *mocks.MockCoinCreator
	audit    *mocks.MockAuditService
	wallet   *domain.WalletIdentity
	ctrl     *gomock.Controller
}

func defaultLaunchOptions() LaunchOptions {
	return LaunchOptions{ChainID: 8453, Currency: domain.CurrencyZORA, GasMultiplier: 120}
}

func setupLaunchService(t *testing.T, opts LaunchOptions, withWallet bool) *launchTestDeps {
	ctrl := gomock.NewController(t)
	d := &launchTestDeps{
		metadata: mocks.NewMockMetadataBuilder(ctrl),
		coins:    mocks.NewMockCoinCreator(ctrl),
		audit:    mocks.NewMockAuditService(ctrl),
		ctrl:     ctrl,
	}
	if withWallet {
		d.wallet = &domain.WalletIdentity{Address: common.HexToAddress(testCreator)}
	}
	d.svc = NewLaunchService(d.wallet, d.metadata, d.coins, d.audit, metrics.New(), opts, newTestLogger())
	return d
}

func validLaunchRequest() domain.LaunchRequest {
	return domain.LaunchRequest{
		Name:        "Test Coin",
		Symbol:      "TEST",
		Description: "A coin for tests",
		Supply:      "1000000",
		Recipient:   testRecipient,
		Logo:        testLogo(),
		ClientIP:    "203.0.113.7",
	}
}

func remoteMetadata() *domain.MetadataRecord {
	return &domain.MetadataRecord{Name: "Test Coin", Symbol: "TEST", Description: "A coin for tests", Image: "ipfs://bafyimage", URI: "ipfs://bafymeta"}
}

func appErrCode(t *testing.T, err error) (string, int) {
	t.Helper()
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected *apperror.AppError, got %T", err)
	return appErr.Code, appErr.HTTPStatus
}

// ==================== Validation ====================

func TestLaunchService_Launch_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *domain.LaunchRequest)
		code   string
	}{
		{"missing name", func(r *domain.LaunchRequest) { r.Name = "" }, "VAL_001"},
		{"missing symbol", func(r *domain.LaunchRequest) { r.Symbol = "" }, "VAL_001"},
		{"missing recipient", func(r *domain.LaunchRequest) { r.Recipient = "" }, "VAL_001"},
		{"bad recipient", func(r *domain.LaunchRequest) { r.Recipient = "alice.eth" }, "VAL_002"},
		{"missing logo", func(r *domain.LaunchRequest) { r.Logo = nil }, "VAL_003"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupLaunchService(t, defaultLaunchOptions(), true)
			defer d.ctrl.Finish()

			// No downstream collaborator may be reached.
			d.metadata.EXPECT().Build(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			d.coins.EXPECT().CreateCoin(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			d.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Times(0)

			req := validLaunchRequest()
			tt.mutate(&req)

			out, err := d.svc.Launch(context.Background(), req)
			assert.Nil(t, out)
			code, status := appErrCode(t, err)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, 400, status)
		})
	}
}

func TestLaunchService_Launch_ValidationBeforeWalletCheck(t *testing.T) {
	d := setupLaunchService(t, defaultLaunchOptions(), false)
	defer d.ctrl.Finish()

	req := validLaunchRequest()
	req.Name = ""

	_, err := d.svc.Launch(context.Background(), req)
	code, status := appErrCode(t, err)
	assert.Equal(t, "VAL_001", code)
	assert.Equal(t, 400, status)
}

// ==================== Wallet ====================

func TestLaunchService_Launch_WalletNotConfigured(t *testing.T) {
	for _, skip := range []bool{false, true} {
		opts := defaultLaunchOptions()
		opts.SkipChain = skip

		d := setupLaunchService(t, opts, false)

		d.metadata.EXPECT().Build(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		d.coins.EXPECT().CreateCoin(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		out, err := d.svc.Launch(context.Background(), validLaunchRequest())
		assert.Nil(t, out)
		code, status := appErrCode(t, err)
		assert.Equal(t, "CFG_001", code)
		assert.Equal(t, 500, status)
		assert.Contains(t, err.Error(), "DEPLOYER_PRIVATE_KEY")

		d.ctrl.Finish()
	}
}

// ==================== Skip chain ====================

func TestLaunchService_Launch_SkipChain(t *testing.T) {
	opts := defaultLaunchOptions()
	opts.SkipChain = true
	d := setupLaunchService(t, opts, true)
	defer d.ctrl.Finish()

	d.metadata.EXPECT().
		Build(gomock.Any(), "Test Coin", "TEST", "A coin for tests", gomock.Any(), testCreator).
		Return(remoteMetadata(), nil)
	d.coins.EXPECT().CreateCoin(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	d.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Do(func(_ context.Context, rec *domain.LaunchRecord) {
		assert.Equal(t, domain.LaunchOutcomeSkipped, rec.Outcome)
		assert.Equal(t, "ipfs://bafymeta", rec.MetadataURI)
		assert.Nil(t, rec.CoinAddress)
	})

	out, err := d.svc.Launch(context.Background(), validLaunchRequest())
	require.NoError(t, err)
	assert.True(t, out.Skipped)
	assert.Nil(t, out.Result)
	assert.Equal(t, "ipfs://bafymeta", out.MetadataURI)
}

// ==================== Coin creation ====================

func TestLaunchService_Launch_Success(t *testing.T) {
	d := setupLaunchService(t, defaultLaunchOptions(), true)
	defer d.ctrl.Finish()

	result := &domain.LaunchResult{Address: "0x00000000000000000000000000000000000C0111", Hash: "0xabc"}

	d.metadata.EXPECT().Build(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(remoteMetadata(), nil)
	d.coins.EXPECT().CreateCoin(gomock.Any(), gomock.Any(), ports.CreateCoinOptions{GasMultiplier: 120}).DoAndReturn(
		func(_ context.Context, p domain.CoinParams, _ ports.CreateCoinOptions) (*domain.LaunchResult, error) {
			assert.Equal(t, "Test Coin", p.Name)
			assert.Equal(t, "TEST", p.Symbol)
			assert.Equal(t, "ipfs://bafymeta", p.URI)
			assert.Equal(t, common.HexToAddress(testRecipient), p.PayoutRecipient)
			assert.Equal(t, d.wallet.Address, p.PlatformReferrer)
			assert.Equal(t, int64(8453), p.ChainID)
			assert.Equal(t, domain.CurrencyZORA, p.Currency)
			return result, nil
		},
	)
	d.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Do(func(_ context.Context, rec *domain.LaunchRecord) {
		assert.Equal(t, domain.LaunchOutcomeLaunched, rec.Outcome)
		require.NotNil(t, rec.CoinAddress)
		assert.Equal(t, result.Address, *rec.CoinAddress)
		assert.Equal(t, "203.0.113.7", rec.ClientIP)
	})

	out, err := d.svc.Launch(context.Background(), validLaunchRequest())
	require.NoError(t, err)
	assert.False(t, out.Skipped)
	assert.Equal(t, result, out.Result)
}

func TestLaunchService_Launch_CoinCreationFails(t *testing.T) {
	d := setupLaunchService(t, defaultLaunchOptions(), true)
	defer d.ctrl.Finish()

	d.metadata.EXPECT().Build(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(remoteMetadata(), nil)
	d.coins.EXPECT().CreateCoin(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("insufficient funds for gas * price + value"))
	d.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Do(func(_ context.Context, rec *domain.LaunchRecord) {
		assert.Equal(t, domain.LaunchOutcomeFailed, rec.Outcome)
		require.NotNil(t, rec.Error)
		assert.Contains(t, *rec.Error, "insufficient funds")
	})

	out, err := d.svc.Launch(context.Background(), validLaunchRequest())
	assert.Nil(t, out)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "LAUNCH_001", appErr.Code)
	assert.Equal(t, "Token launch failed.", appErr.Message)
	assert.True(t, appErr.Expose)
	assert.Equal(t, "insufficient funds for gas * price + value", appErr.Detail())
}

func TestLaunchService_Launch_MetadataErrorStopsPipeline(t *testing.T) {
	d := setupLaunchService(t, defaultLaunchOptions(), true)
	defer d.ctrl.Finish()

	d.metadata.EXPECT().Build(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrImageAttach(errors.New("image is empty")))
	d.coins.EXPECT().CreateCoin(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := d.svc.Launch(context.Background(), validLaunchRequest())
	code, status := appErrCode(t, err)
	assert.Equal(t, "META_001", code)
	assert.Equal(t, 400, status)
}

func TestLaunchService_Launch_IdenticalRequestsAreNotDeduplicated(t *testing.T) {
	d := setupLaunchService(t, defaultLaunchOptions(), true)
	defer d.ctrl.Finish()

	d.metadata.EXPECT().Build(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(remoteMetadata(), nil).Times(2)
	gomock.InOrder(
		d.coins.EXPECT().CreateCoin(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&domain.LaunchResult{Address: "0x0000000000000000000000000000000000000A01", Hash: "0x01"}, nil),
		d.coins.EXPECT().CreateCoin(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&domain.LaunchResult{Address: "0x0000000000000000000000000000000000000A02", Hash: "0x02"}, nil),
	)
	d.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Times(2)

	first, err := d.svc.Launch(context.Background(), validLaunchRequest())
	require.NoError(t, err)
	second, err := d.svc.Launch(context.Background(), validLaunchRequest())
	require.NoError(t, err)

	assert.NotEqual(t, first.Result.Address, second.Result.Address)
	assert.NotEqual(t, first.Result.Hash, second.Result.Hash)
}

func TestLaunchService_Launch_NoCoinCreator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallet := &domain.WalletIdentity{Address: common.HexToAddress(testCreator)}
	svc := NewLaunchService(wallet, mocks.NewMockMetadataBuilder(ctrl), nil, nil, nil, defaultLaunchOptions(), newTestLogger())

	_, err := svc.Launch(context.Background(), validLaunchRequest())
	code, _ := appErrCode(t, err)
	assert.Equal(t, "CFG_001", code)
}
