package keeper

import (
	"github.com/cosmos/interchain-security-model/x/ccv/types"
)

// Delegate moves amt tokens from the delegator account to val.
func (k *Keeper) Delegate(ctx types.Context, val types.Validator, amt int64) {
	k.mustValidator(val)
	k.delegatorTokens -= amt
	k.tokens[val] += amt
	k.delegation[val] += amt
	k.Logger(ctx).Debug("delegated", "val", val, "amt", amt)
}

// Undelegate starts unbonding amt tokens delegated to val. The undelegation
// is put on hold until the consumer has matured the current VSC.
func (k *Keeper) Undelegate(ctx types.Context, val types.Validator, amt int64) {
	k.mustValidator(val)
	if k.delegation[val] < amt {
		ctx.EmitEvent(types.EventInsufficientShares)
		return
	}
	k.tokens[val] -= amt
	k.delegation[val] -= amt
	und := types.Undelegation{
		Val:                            val,
		CreationHeight:                 ctx.BlockHeight(),
		CompletionTime:                 ctx.BlockTime() + k.params.UnbondingSecondsP,
		Balance:                        amt,
		InitialBalance:                 amt,
		OnHold:                         true,
		OpID:                           k.opID,
		WillBeProcessedByStakingModule: true,
	}
	k.undelegationQ = append(k.undelegationQ, und)
	k.nextOpID(ctx)
	k.Logger(ctx).Debug("undelegated", "val", val, "amt", amt, "opID", und.OpID)
}

// EndBlockMaturation completes the unbonding validators and undelegations
// that have matured and are not on hold.
func (k *Keeper) EndBlockMaturation(ctx types.Context) {
	now, height := ctx.BlockTime(), ctx.BlockHeight()

	// Process any unbonding validators that might have matured
	unvals := make([]types.Unval, 0, len(k.validatorQ))
	for _, e := range k.validatorQ {
		if e.UnbondingTime <= now && e.UnbondingHeight <= height && !e.OnHold {
			k.status[e.Val] = types.Unbonded
			ctx.EmitEvent(types.EventCompleteUnvalInEndBlock)
			continue
		}
		unvals = append(unvals, e)
	}
	k.validatorQ = unvals

	// Process any undelegations that might have matured
	processed, completed := 0, 0
	refund := int64(0)
	undels := make([]types.Undelegation, 0, len(k.undelegationQ))
	for _, e := range k.undelegationQ {
		if e.CompletionTime <= now && e.WillBeProcessedByStakingModule {
			e.WillBeProcessedByStakingModule = false
			processed++
			if !e.OnHold {
				completed++
				refund += e.Balance
				continue
			}
		}
		undels = append(undels, e)
	}
	k.undelegationQ = undels

	if completed < processed {
		ctx.EmitEvent(types.EventSomeUndelsExpiredButNotComplete)
	}
	if 0 < completed {
		ctx.EmitEvent(types.EventCompleteUndelInEndBlock)
	}
	// Refund completed undelegations
	k.delegatorTokens += refund
}

// UnbondingCanComplete releases the hold on the unbonding operation opID. An
// undelegation whose completion time has already passed completes at once.
func (k *Keeper) UnbondingCanComplete(ctx types.Context, opID uint64) {
	// Allow maturity of relevant validator
	for i := range k.validatorQ {
		if k.validatorQ[i].OpID == opID {
			k.validatorQ[i].OnHold = false
			ctx.EmitEvent(types.EventSetUnvalHoldFalse)
			return
		}
	}
	// Allow maturity of relevant unbonding delegation
	for i := range k.undelegationQ {
		e := k.undelegationQ[i]
		if e.OpID != opID {
			continue
		}
		if e.CompletionTime <= ctx.BlockTime() {
			k.delegatorTokens += e.Balance
			k.undelegationQ = append(k.undelegationQ[:i:i], k.undelegationQ[i+1:]...)
			ctx.EmitEvent(types.EventCompleteUndelImmediate)
		} else {
			k.undelegationQ[i].OnHold = false
			ctx.EmitEvent(types.EventSetUndelHoldFalse)
		}
		return
	}
}
