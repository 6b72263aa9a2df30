package types

// Undelegation is an entry of the provider undelegation queue. Only the sole
// delegator account of the model undelegates.
type Undelegation struct {
	Val            Validator `json:"val"`
	CreationHeight int64     `json:"creationHeight"`
	CompletionTime int64     `json:"completionTime"`
	Balance        int64     `json:"balance"`
	InitialBalance int64     `json:"initialBalance"`
	// OnHold is true until the consumer has matured the VSC carrying OpID.
	OnHold bool   `json:"onHold"`
	OpID   uint64 `json:"opID"`
	// WillBeProcessedByStakingModule is cleared the first time the entry is
	// seen expired in EndBlock.
	WillBeProcessedByStakingModule bool `json:"willBeProcessedByStakingModule"`
}

// Unval is an entry of the provider unbonding validator queue.
type Unval struct {
	Val             Validator `json:"val"`
	UnbondingHeight int64     `json:"unbondingHeight"`
	UnbondingTime   int64     `json:"unbondingTime"`
	OnHold          bool      `json:"onHold"`
	OpID            uint64    `json:"opID"`
}
