package keeper

import (
	"testing"

	"github.com/golang/mock/gomock"

	consumerkeeper "github.com/cosmos/interchain-security-model/x/ccv/consumer/keeper"
	providerkeeper "github.com/cosmos/interchain-security-model/x/ccv/provider/keeper"
	"github.com/cosmos/interchain-security-model/x/ccv/types"
)

// MockedKeepers is a struct containing all the mocked keepers a CCV keeper
// needs in unit tests.
type MockedKeepers struct {
	*MockStakingKeeper
	*MockPacketSender
}

// NewMockedKeepers instantiates a struct with pointers to properly instantiated mocked keepers.
func NewMockedKeepers(ctrl *gomock.Controller) MockedKeepers {
	return MockedKeepers{
		MockStakingKeeper: NewMockStakingKeeper(ctrl),
		MockPacketSender:  NewMockPacketSender(ctrl),
	}
}

// InMemKeeperParams holds what a keeper under test is built from.
type InMemKeeperParams struct {
	Params types.Params
	State  types.InitState
	Events *types.EventLog
}

// NewInMemKeeperParams returns the default model params and initial state.
func NewInMemKeeperParams(t testing.TB) InMemKeeperParams {
	t.Helper()
	params := types.DefaultParams()
	return InMemKeeperParams{
		Params: params,
		State:  types.DefaultInitState(params),
		Events: types.NewEventLog(),
	}
}

// Ctx returns a context for chain at the given height and time.
func (p InMemKeeperParams) Ctx(chain types.Chain, height, time int64) types.Context {
	return types.NewContext(chain, height, time, nil, p.Events)
}

// GetProviderKeeperAndCtx returns a provider keeper backed by mocked staking
// and outbox collaborators, plus a provider context at height 1.
func GetProviderKeeperAndCtx(t *testing.T, params InMemKeeperParams) (
	*providerkeeper.Keeper, types.Context, *gomock.Controller, MockedKeepers,
) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mocks := NewMockedKeepers(ctrl)
	k := providerkeeper.NewKeeper(params.Params, mocks.MockStakingKeeper, mocks.MockPacketSender, params.State.Provider)
	return k, params.Ctx(types.P, 1, params.Params.BlockSeconds), ctrl, mocks
}

// GetConsumerKeeperAndCtx returns a consumer keeper backed by a mocked outbox,
// plus a consumer context at height 1.
func GetConsumerKeeperAndCtx(t *testing.T, params InMemKeeperParams) (
	*consumerkeeper.Keeper, types.Context, *gomock.Controller, MockedKeepers,
) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mocks := NewMockedKeepers(ctrl)
	k := consumerkeeper.NewKeeper(params.Params, mocks.MockPacketSender, params.State.Consumer)
	return k, params.Ctx(types.C, 1, params.Params.BlockSeconds), ctrl, mocks
}
