package keeper

import (
	"github.com/cosmos/interchain-security-model/x/ccv/types"
)

// BeginBlock carries the latest vscID over to the next height.
func (k *Keeper) BeginBlock(ctx types.Context) {
	k.hToVscID[ctx.BlockHeight()+1] = k.hToVscID[ctx.BlockHeight()]
}

func (k *Keeper) EndBlock(ctx types.Context) {
	k.EndBlockVSU(ctx)
}

// EndBlockVSU sends a maturity packet for every matured VSC and applies the
// aggregated validator power changes.
func (k *Keeper) EndBlockVSU(ctx types.Context) {
	// Gather all matured VSCs
	maturing := make([]types.MaturingVSC, 0, len(k.maturingVscs))
	for _, m := range k.maturingVscs {
		if m.MaturityTime <= ctx.BlockTime() {
			ctx.EmitEvent(types.EventConsumerSendMaturation)
			k.outbox.Add(ctx, types.NewVSCMaturedPacketData(m.VscID))
			k.Logger(ctx).Debug("vsc matured", "vscID", m.VscID)
			continue
		}
		maturing = append(maturing, m)
	}
	k.maturingVscs = maturing

	// Aggregate and apply validator voting power changes
	order, changes := k.aggregateChanges()
	for _, val := range order {
		power := changes[val]
		if 0 < power {
			if k.consumerPower[val] == nil {
				ctx.EmitEvent(types.EventConsumerAddVal)
			} else {
				ctx.EmitEvent(types.EventConsumerUpdateVal)
			}
			k.consumerPower[val] = &power
		} else {
			k.consumerPower[val] = nil
			ctx.EmitEvent(types.EventConsumerDelVal)
		}
	}
}
