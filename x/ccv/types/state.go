package types

// SystemState is the slice of model state recorded at every block commit and
// used to check properties over the block history.
type SystemState struct {
	H               map[Chain]int64  `json:"h"`
	T               map[Chain]int64  `json:"t"`
	Tokens          []int64          `json:"tokens"`
	Status          []Status         `json:"status"`
	UndelegationQ   []Undelegation   `json:"undelegationQ"`
	DelegatorTokens int64            `json:"delegatorTokens"`
	ConsumerPower   []*int64         `json:"consumerPower"`
	VscIDtoH        map[uint64]int64 `json:"vscIDtoH"`
	HToVscID        map[int64]uint64 `json:"hToVscID"`
}

// Clone returns a deep copy of s.
func (s SystemState) Clone() SystemState {
	ret := SystemState{
		H:               make(map[Chain]int64, len(s.H)),
		T:               make(map[Chain]int64, len(s.T)),
		Tokens:          copySlice(s.Tokens),
		Status:          copySlice(s.Status),
		UndelegationQ:   copySlice(s.UndelegationQ),
		DelegatorTokens: s.DelegatorTokens,
		ConsumerPower:   CopyPowers(s.ConsumerPower),
		VscIDtoH:        make(map[uint64]int64, len(s.VscIDtoH)),
		HToVscID:        make(map[int64]uint64, len(s.HToVscID)),
	}
	for k, v := range s.H {
		ret.H[k] = v
	}
	for k, v := range s.T {
		ret.T[k] = v
	}
	for k, v := range s.VscIDtoH {
		ret.VscIDtoH[k] = v
	}
	for k, v := range s.HToVscID {
		ret.HToVscID[k] = v
	}
	return ret
}

// copySlice copies src. A nil src stays nil and an empty one stays empty.
func copySlice[T any](src []T) []T {
	if src == nil {
		return nil
	}
	ret := make([]T, len(src))
	copy(ret, src)
	return ret
}

// CopyPowers copies a slice of optional powers, including the pointees.
func CopyPowers(powers []*int64) []*int64 {
	if powers == nil {
		return nil
	}
	ret := make([]*int64, len(powers))
	for i, p := range powers {
		if p != nil {
			v := *p
			ret[i] = &v
		}
	}
	return ret
}
