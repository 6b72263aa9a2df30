package keeper

import (
	"github.com/cosmos/interchain-security-model/x/ccv/types"
)

// EndBlock runs the staking end blocker: validator set updates, then
// maturation of unbonding operations.
func (k *Keeper) EndBlock(ctx types.Context) {
	k.EndBlockComputeValUpdates(ctx)
	k.EndBlockMaturation(ctx)
}
