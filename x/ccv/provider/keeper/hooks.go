package keeper

import (
	"github.com/cosmos/interchain-security-model/x/ccv/types"
)

// Wrapper struct
type Hooks struct {
	k *Keeper
}

var _ types.StakingHooks = Hooks{}

// Returns new provider hooks
func (k *Keeper) Hooks() Hooks {
	return Hooks{k}
}

// AfterUnbondingInitiated records that the unbonding operation opID waits on
// the maturity of the current VSC.
func (h Hooks) AfterUnbondingInitiated(ctx types.Context, opID uint64) {
	h.k.AfterUnbondingInitiated(ctx, opID)
}

func (k *Keeper) AfterUnbondingInitiated(ctx types.Context, opID uint64) {
	k.vscIDtoOpIDs[k.vscID] = append(k.vscIDtoOpIDs[k.vscID], opID)
	k.Logger(ctx).Debug("unbonding op waits on vsc", "opID", opID, "vscID", k.vscID)
}
