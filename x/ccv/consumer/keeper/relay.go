package keeper

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/cosmos/interchain-security-model/x/ccv/types"
)

// OnReceive handles a packet delivered from the provider. The consumer only
// receives validator set changes.
func (k *Keeper) OnReceive(ctx types.Context, data types.PacketData) {
	vsc, ok := data.(types.ValidatorSetChangePacketData)
	if !ok {
		panic(errorsmod.Wrapf(types.ErrUnknownPacketData, "consumer cannot receive %T", data))
	}
	k.OnReceiveVSC(ctx, vsc)
}

// OnReceiveVSC records the validator set change for aggregation in EndBlock,
// schedules its maturity and clears the outstanding downtime flag of every
// acked validator.
func (k *Keeper) OnReceiveVSC(ctx types.Context, data types.ValidatorSetChangePacketData) {
	// the vscID applies from the next block on
	k.hToVscID[ctx.BlockHeight()+1] = data.ValsetUpdateID
	k.pendingChanges = append(k.pendingChanges, copyUpdates(data.ValidatorUpdates))
	k.setMaturityTime(data.ValsetUpdateID, ctx.BlockTime()+k.params.UnbondingSecondsC)

	for _, val := range data.DowntimeSlashAcks {
		ctx.EmitEvent(types.EventReceiveDowntimeSlashAck)
		k.outstandingDowntime[val] = false
	}
	k.Logger(ctx).Debug("received vsc", "vscID", data.ValsetUpdateID, "len updates", len(data.ValidatorUpdates))
}

// setMaturityTime schedules vscID, keeping the position of an already
// scheduled id.
func (k *Keeper) setMaturityTime(vscID uint64, maturityTime int64) {
	for i := range k.maturingVscs {
		if k.maturingVscs[i].VscID == vscID {
			k.maturingVscs[i].MaturityTime = maturityTime
			return
		}
	}
	k.maturingVscs = append(k.maturingVscs, types.MaturingVSC{VscID: vscID, MaturityTime: maturityTime})
}

// SendSlashRequest sends a slash request for an infraction of val at
// infractionHeight. At most one downtime request per validator can be
// outstanding.
func (k *Keeper) SendSlashRequest(ctx types.Context, val types.Validator, infractionHeight int64, isDowntime bool) {
	if isDowntime && k.outstandingDowntime[val] {
		ctx.EmitEvent(types.EventDowntimeSlashRequestOutstanding)
		return
	}
	data := types.NewSlashPacketData(val, k.hToVscID[infractionHeight], isDowntime)
	k.outbox.Add(ctx, data)
	if isDowntime {
		ctx.EmitEvent(types.EventSendDowntimeSlashRequest)
		k.outstandingDowntime[val] = true
	} else {
		ctx.EmitEvent(types.EventSendDoubleSignSlashRequest)
	}
	k.Logger(ctx).Info("slash request sent", "val", val, "vscID", data.ValsetUpdateID, "downtime", isDowntime)
}
