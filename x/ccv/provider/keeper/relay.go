package keeper

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"

	"github.com/cosmos/interchain-security-model/x/ccv/types"
)

// OnReceive handles a packet delivered from the consumer. Double-sign slash
// requests are dropped. A maturity packet arriving while the queue is empty
// is handled at once; everything else waits for EndBlock.
func (k *Keeper) OnReceive(ctx types.Context, data types.PacketData) {
	switch d := data.(type) {
	case types.SlashPacketData:
		if !d.IsDowntime {
			ctx.EmitEvent(types.EventReceiveDoubleSignSlashRequest)
			k.Logger(ctx).Debug("dropped double-sign slash request", "val", d.Validator)
			return
		}
		k.queue = append(k.queue, d)
	case types.VSCMaturedPacketData:
		if len(k.queue) == 0 {
			k.OnReceiveVSCMatured(ctx, d)
			return
		}
		k.queue = append(k.queue, d)
	default:
		panic(errorsmod.Wrapf(types.ErrUnknownPacketData, "provider cannot receive %T", data))
	}
}

// ProcessPackets handles the queued packets in FIFO order and clears the
// queue.
func (k *Keeper) ProcessPackets(ctx types.Context) {
	for _, data := range k.queue {
		switch d := data.(type) {
		case types.SlashPacketData:
			k.OnReceiveSlash(ctx, d)
		case types.VSCMaturedPacketData:
			k.OnReceiveVSCMatured(ctx, d)
		default:
			panic(errorsmod.Wrapf(types.ErrUnknownPacketData, "unexpected queued packet %T", data))
		}
	}
	k.queue = []types.PacketData{}
}

// OnReceiveVSCMatured marks the unbonding operations that waited on the
// matured VSC as ready to complete.
func (k *Keeper) OnReceiveVSCMatured(ctx types.Context, data types.VSCMaturedPacketData) {
	opIDs, found := k.vscIDtoOpIDs[data.ValsetUpdateID]
	if !found {
		return
	}
	k.matureUnbondingOps = append(k.matureUnbondingOps, opIDs...)
	delete(k.vscIDtoOpIDs, data.ValsetUpdateID)
	k.Logger(ctx).Debug("vsc matured", "vscID", data.ValsetUpdateID, "opIDs", fmt.Sprint(opIDs))
}

// OnReceiveSlash handles a downtime slash request. The validator is jailed
// unless it is unbonded, below the soft opt-out power or tombstoned.
func (k *Keeper) OnReceiveSlash(ctx types.Context, data types.SlashPacketData) {
	if k.stakingKeeper.GetStatus(data.Validator) == types.Unbonded {
		ctx.EmitEvent(types.EventReceiveSlashRequestUnbonded)
		return
	}

	// soft opt out if validator power is smaller than smallest power which needs to be up
	smallestNonOptOutPower := k.SmallestNonOptOutPower(ctx)
	if k.stakingKeeper.GetTokens(data.Validator) < smallestNonOptOutPower {
		return
	}

	ctx.EmitEvent(types.EventReceiveDowntimeSlashRequest)

	if k.IsTombstoned(data.Validator) {
		return
	}

	k.stakingKeeper.JailUntil(ctx, data.Validator, ctx.BlockTime()+k.params.JailSeconds)
	k.downtimeSlashAcks = append(k.downtimeSlashAcks, data.Validator)
}
