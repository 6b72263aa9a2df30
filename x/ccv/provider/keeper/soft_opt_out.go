package keeper

import (
	"sort"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"

	"github.com/cosmos/interchain-security-model/x/ccv/types"
)

// SmallestNonOptOutPower returns the smallest validator power that cannot
// soft opt out. This is the smallest validator power such that the sum of the
// power of all validators with a lower power is less than SoftOptOutThreshold
// of the total power of all validators. Tokens are 1:1 to power.
func (k *Keeper) SmallestNonOptOutPower(ctx types.Context) int64 {
	optOutThreshold := k.params.SoftOptOutThresholdDec()
	if optOutThreshold.IsZero() {
		// soft opt-out is disabled
		return 0
	}

	tokens := k.stakingKeeper.GetAllTokens()
	sort.SliceStable(tokens, func(i, j int) bool {
		return tokens[i] < tokens[j]
	})

	totalPower := math.LegacyZeroDec()
	for _, t := range tokens {
		totalPower = totalPower.Add(math.LegacyNewDec(t))
	}
	if totalPower.IsZero() {
		panic(errorsmod.Wrap(types.ErrUnreachableSoftOptOut, "total power is zero"))
	}

	powerSum := math.LegacyZeroDec()
	for _, t := range tokens {
		powerSum = powerSum.Add(math.LegacyNewDec(t))
		// if powerSum / totalPower > SoftOptOutThreshold
		if powerSum.Quo(totalPower).GT(optOutThreshold) {
			k.Logger(ctx).Debug("smallest non opt out power", "power", t)
			return t
		}
	}
	panic(errorsmod.Wrap(types.ErrUnreachableSoftOptOut, "control flow should not reach here"))
}
