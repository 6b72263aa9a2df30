package keeper

import (
	"github.com/cosmos/interchain-security-model/x/ccv/types"
)

// Slash records a slash of the undelegations from val that were created at
// or after infractionHeight and are still unbonding. Balances are left
// untouched: slash fractions are zero in the difference tests, only the
// events are compared.
func (k *Keeper) Slash(ctx types.Context, val types.Validator, infractionHeight int64) {
	k.mustValidator(val)
	n := 0
	for _, e := range k.undelegationQ {
		if e.Val == val &&
			infractionHeight <= e.CreationHeight &&
			(ctx.BlockTime() < e.CompletionTime || e.OnHold) {
			n++
		}
	}
	if infractionHeight < ctx.BlockHeight() {
		for i := 0; i < n; i++ {
			ctx.EmitEvent(types.EventSlashUndel)
		}
	}
}

// JailUntil jails val until timestamp.
func (k *Keeper) JailUntil(ctx types.Context, val types.Validator, timestamp int64) {
	k.mustValidator(val)
	ts := timestamp
	k.jailed[val] = &ts
	ctx.EmitEvent(types.EventJail)
	k.Logger(ctx).Info("validator jailed", "val", val, "until", timestamp)
}
