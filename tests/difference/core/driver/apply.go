package core

import (
	"fmt"

	"github.com/cosmos/interchain-security-model/x/ccv/model"
	"github.com/cosmos/interchain-security-model/x/ccv/types"
)

// Apply applies a to m. Panics raised by the model are returned as errors.
func Apply(m *model.Model, a Action) (err error) {
	if err := a.Validate(m.Params()); err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("%v", r)
		}
	}()

	chain := types.Chain(a.Chain)
	switch a.Kind {
	case KindDelegate:
		m.Delegate(a.Val, a.Amt)
	case KindUndelegate:
		m.Undelegate(a.Val, a.Amt)
	case KindConsumerSlash:
		m.ConsumerInitiatedSlash(a.Val, a.InfractionHeight, a.IsDowntime)
	case KindProviderSlash:
		m.ProviderSlash(a.Val, a.InfractionHeight)
	case KindUpdateClient:
		m.UpdateClient(chain)
	case KindDeliver:
		m.Deliver(chain, a.NumPackets)
	case KindEndAndBeginBlock:
		return m.EndAndBeginBlock(chain)
	}
	return nil
}
