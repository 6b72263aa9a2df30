package keeper

import (
	"github.com/cosmos/interchain-security-model/x/ccv/types"
)

// EndBlock runs the consumer initiated slashing logic, then sends the
// validator set change.
func (k *Keeper) EndBlock(ctx types.Context) {
	k.EndBlockCIS(ctx)
	k.EndBlockVSU(ctx)
}

// EndBlockCIS contains the EndBlock logic needed for
// the Consumer Initiated Slashing sub-protocol
func (k *Keeper) EndBlockCIS(ctx types.Context) {
	// the current vscID is sent in the block after this one
	k.vscIDtoH[k.vscID] = ctx.BlockHeight() + 1
	k.ProcessPackets(ctx)
}

// EndBlockVSU contains the EndBlock logic needed for
// the Validator Set Update sub-protocol
func (k *Keeper) EndBlockVSU(ctx types.Context) {
	// notify the staking module to complete all matured unbonding ops
	for _, opID := range k.matureUnbondingOps {
		k.stakingKeeper.UnbondingCanComplete(ctx, opID)
	}
	k.matureUnbondingOps = []uint64{}

	valUpdates := k.stakingKeeper.ValUpdates()
	if _, waiting := k.vscIDtoOpIDs[k.vscID]; 0 < len(valUpdates) || waiting {
		if len(valUpdates) == 0 {
			ctx.EmitEvent(types.EventSendVscNotBecauseChange)
		}
		if 0 < len(k.downtimeSlashAcks) {
			ctx.EmitEvent(types.EventSendVscWithDowntimeAck)
		} else {
			ctx.EmitEvent(types.EventSendVscWithoutDowntimeAck)
		}
		data := types.NewValidatorSetChangePacketData(valUpdates, k.vscID, k.downtimeSlashAcks)
		k.downtimeSlashAcks = []types.Validator{}
		k.outbox.Add(ctx, data)
		k.Logger(ctx).Info("VSCPacket enqueued", "vscID", data.ValsetUpdateID, "len updates", len(valUpdates))
	}
	k.vscID++
}
