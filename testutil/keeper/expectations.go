package keeper

import (
	"github.com/golang/mock/gomock"

	"github.com/cosmos/interchain-security-model/x/ccv/types"
)

//
// A file containing groups of commonly used mock expectations.
// Note: Each group of mock expectations is associated with a single method
// that may be called during unit tests.
//

// GetMocksForSoftOptOut returns the expectations for computing the smallest
// non opt out power. Nothing is read when soft opt-out is disabled.
func GetMocksForSoftOptOut(mocks MockedKeepers, threshold string, tokens []int64) []*gomock.Call {
	if threshold == "0" {
		return []*gomock.Call{}
	}
	return []*gomock.Call{
		mocks.MockStakingKeeper.EXPECT().GetAllTokens().Return(append([]int64(nil), tokens...)).Times(1),
	}
}

// GetMocksForOnReceiveSlash returns the expectations for a downtime slash
// request that ends with val being jailed.
func GetMocksForOnReceiveSlash(ctx types.Context, mocks MockedKeepers, params types.Params,
	val types.Validator, tokens []int64,
) []*gomock.Call {
	calls := []*gomock.Call{
		mocks.MockStakingKeeper.EXPECT().GetStatus(val).Return(types.Bonded).Times(1),
	}
	calls = append(calls, GetMocksForSoftOptOut(mocks, params.SoftOptOutThreshold, tokens)...)
	return append(calls,
		mocks.MockStakingKeeper.EXPECT().GetTokens(val).Return(tokens[val]).Times(1),
		mocks.MockStakingKeeper.EXPECT().JailUntil(gomock.Any(), val, ctx.BlockTime()+params.JailSeconds).Times(1),
	)
}
