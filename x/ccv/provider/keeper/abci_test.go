package keeper_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/cosmos/interchain-security-model/testutil/keeper"
	"github.com/cosmos/interchain-security-model/x/ccv/types"
)

// TestEndBlockVSU tests when a VSC packet is sent and that the vscID always
// advances.
func TestEndBlockVSU(t *testing.T) {
	testCases := []struct {
		name          string
		updates       map[types.Validator]int64
		waitingOp     bool
		acks          bool
		expectSent    bool
		expectedEvent []types.Event
	}{
		{
			name:          "no updates, nothing waiting",
			updates:       map[types.Validator]int64{},
			expectedEvent: nil,
		},
		{
			name:          "updates",
			updates:       map[types.Validator]int64{1: 0, 2: 3000},
			expectSent:    true,
			expectedEvent: []types.Event{types.EventSendVscWithoutDowntimeAck},
		},
		{
			name:       "unbonding op waiting",
			updates:    map[types.Validator]int64{},
			waitingOp:  true,
			expectSent: true,
			expectedEvent: []types.Event{
				types.EventSendVscNotBecauseChange,
				types.EventSendVscWithoutDowntimeAck,
			},
		},
		{
			name:       "updates with acks",
			updates:    map[types.Validator]int64{0: 100},
			acks:       true,
			expectSent: true,
			expectedEvent: []types.Event{
				types.EventReceiveDowntimeSlashRequest,
				types.EventSendVscWithDowntimeAck,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			params := testkeeper.NewInMemKeeperParams(t)
			providerKeeper, ctx, ctrl, mocks := testkeeper.GetProviderKeeperAndCtx(t, params)
			defer ctrl.Finish()

			expectedAcks := []types.Validator{}
			if tc.waitingOp {
				providerKeeper.AfterUnbondingInitiated(ctx, 0)
			}
			if tc.acks {
				gomock.InOrder(testkeeper.GetMocksForOnReceiveSlash(ctx, mocks, params.Params, 3, []int64{1, 1, 1, 1})...)
				providerKeeper.OnReceiveSlash(ctx, types.NewSlashPacketData(3, 0, true))
				expectedAcks = []types.Validator{3}
			}

			mocks.MockStakingKeeper.EXPECT().ValUpdates().Return(tc.updates).Times(1)
			if tc.expectSent {
				mocks.MockPacketSender.EXPECT().Add(gomock.Any(),
					types.NewValidatorSetChangePacketData(tc.updates, 0, expectedAcks)).Times(1)
			}

			providerKeeper.EndBlockVSU(ctx)

			require.Equal(t, tc.expectedEvent, params.Events.Events())
			require.Equal(t, uint64(1), providerKeeper.GetValidatorSetUpdateID())
			require.Empty(t, providerKeeper.GetSlashAcks())
		})
	}
}

// TestEndBlock tests that matured unbonding ops are completed and the vscID
// is mapped to the next block height.
func TestEndBlock(t *testing.T) {
	params := testkeeper.NewInMemKeeperParams(t)
	providerKeeper, ctx, ctrl, mocks := testkeeper.GetProviderKeeperAndCtx(t, params)
	defer ctrl.Finish()

	providerKeeper.AfterUnbondingInitiated(ctx, 0)
	providerKeeper.AfterUnbondingInitiated(ctx, 1)
	// queue behind a slash so maturity is handled in EndBlock
	providerKeeper.OnReceive(ctx, types.NewSlashPacketData(2, 0, true))
	providerKeeper.OnReceive(ctx, types.NewVSCMaturedPacketData(0))

	calls := testkeeper.GetMocksForOnReceiveSlash(ctx, mocks, params.Params, 2, []int64{1, 1, 1, 1})
	calls = append(calls,
		mocks.MockStakingKeeper.EXPECT().UnbondingCanComplete(gomock.Any(), uint64(0)).Times(1),
		mocks.MockStakingKeeper.EXPECT().UnbondingCanComplete(gomock.Any(), uint64(1)).Times(1),
		mocks.MockStakingKeeper.EXPECT().ValUpdates().Return(map[types.Validator]int64{}).Times(1),
	)
	gomock.InOrder(calls...)
	// acks alone do not trigger a VSC
	providerKeeper.EndBlock(ctx)

	h, found := providerKeeper.GetValsetUpdateBlockHeight(0)
	require.True(t, found)
	require.Equal(t, ctx.BlockHeight()+1, h)
	require.Empty(t, providerKeeper.GetMatureUnbondingOps())
	require.Empty(t, providerKeeper.GetPendingPackets())
	require.Equal(t, []types.Validator{2}, providerKeeper.GetSlashAcks())
	require.Equal(t, uint64(1), providerKeeper.GetValidatorSetUpdateID())
}
