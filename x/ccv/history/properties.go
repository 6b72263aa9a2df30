package history

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/cosmos/interchain-security-model/x/ccv/types"
)

// StakingWithoutSlashing checks that no tokens are created or destroyed on
// the provider: delegator tokens, validator tokens and undelegation balances
// always add up to the same amount.
func (bh *BlockHistory) StakingWithoutSlashing() error {
	blocks, err := bh.Blocks(types.P)
	if err != nil {
		return err
	}
	if len(blocks) == 0 {
		return nil
	}
	expected := totalTokens(blocks[0].State)
	for _, b := range blocks[1:] {
		if got := totalTokens(b.State); got != expected {
			return errorsmod.Wrapf(types.ErrPropertyViolated,
				"staking without slashing: provider height %d holds %d tokens, expected %d", b.H, got, expected)
		}
	}
	return nil
}

func totalTokens(s types.SystemState) int64 {
	sum := s.DelegatorTokens
	for _, t := range s.Tokens {
		sum += t
	}
	for _, und := range s.UndelegationQ {
		sum += und.Balance
	}
	return sum
}

// ValidatorSetReplication checks that the validator set of every committed
// consumer block is the bonded validator set of the latest provider block it
// has heard of.
func (bh *BlockHistory) ValidatorSetReplication() error {
	blocks, err := bh.Blocks(types.C)
	if err != nil {
		return err
	}
	for _, b := range blocks {
		hp, found := bh.partialOrder.GreatestPred(types.C, b.H)
		if !found {
			continue
		}
		pb, err := bh.Block(types.P, hp)
		if err != nil {
			return err
		}
		for val, power := range b.State.ConsumerPower {
			expected := int64(0)
			if pb.State.Status[val] == types.Bonded {
				expected = pb.State.Tokens[val]
			}
			got := int64(0)
			if power != nil {
				got = *power
			}
			if got != expected {
				return errorsmod.Wrapf(types.ErrPropertyViolated,
					"validator set replication: consumer height %d has power %d for validator %d, provider height %d has %d",
					b.H, got, val, hp, expected)
			}
		}
	}
	return nil
}

// CheckProperties checks every property over the history.
func (bh *BlockHistory) CheckProperties() error {
	if err := bh.StakingWithoutSlashing(); err != nil {
		return err
	}
	return bh.ValidatorSetReplication()
}
