package history

import (
	"github.com/cosmos/interchain-security-model/x/ccv/types"
)

// PartialOrder records the causal order between blocks of the two chains
// that is created by packet delivery.
type PartialOrder struct {
	// greatestPred[receiver][recvHeight] is the greatest sender height of a
	// packet delivered at recvHeight
	greatestPred map[types.Chain]map[int64]int64
	// leastSucc[sender][sendHeight] is the least receiver height at which a
	// packet sent at sendHeight was delivered
	leastSucc map[types.Chain]map[int64]int64
}

func NewPartialOrder() *PartialOrder {
	return &PartialOrder{
		greatestPred: map[types.Chain]map[int64]int64{types.P: {}, types.C: {}},
		leastSucc:    map[types.Chain]map[int64]int64{types.P: {}, types.C: {}},
	}
}

// Deliver records that a packet sent by the counterparty of receiver at
// sendHeight was delivered to receiver at recvHeight.
func (po *PartialOrder) Deliver(receiver types.Chain, sendHeight, recvHeight int64) {
	if h, found := po.greatestPred[receiver][recvHeight]; !found || h < sendHeight {
		po.greatestPred[receiver][recvHeight] = sendHeight
	}
	sender := receiver.Other()
	if h, found := po.leastSucc[sender][sendHeight]; !found || recvHeight < h {
		po.leastSucc[sender][sendHeight] = recvHeight
	}
}

// GreatestPred returns the greatest height of the counterparty of chain that
// happened before height on chain.
func (po *PartialOrder) GreatestPred(chain types.Chain, height int64) (int64, bool) {
	ret, found := int64(0), false
	for recv, send := range po.greatestPred[chain] {
		if recv <= height && (!found || ret < send) {
			ret, found = send, true
		}
	}
	return ret, found
}

// LeastSucc returns the least height of the counterparty of chain that
// happened after height on chain.
func (po *PartialOrder) LeastSucc(chain types.Chain, height int64) (int64, bool) {
	ret, found := int64(0), false
	for send, recv := range po.leastSucc[chain] {
		if height <= send && (!found || recv < ret) {
			ret, found = recv, true
		}
	}
	return ret, found
}
