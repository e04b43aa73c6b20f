package models

import (
	"sort"
	"time"
)

// Settings holds administrative configuration persisted with the ledger.
type Settings struct {
	AdminEmail string `json:"adminEmail,omitempty"`
}

// State is the full persisted ledger: four keyed collections plus settings.
// Stores hand out a private copy to every operation and persist it as a whole.
type State struct {
	Users            map[string]*User            `json:"users"`
	Transactions     map[string]*Transaction     `json:"transactions"`
	Investments      map[string]*Investment      `json:"investments"`
	WithdrawRequests map[string]*WithdrawRequest `json:"withdrawRequests"`
	Settings         Settings                    `json:"settings"`
}

// NewState returns an empty ledger.
func NewState() *State {
	s := &State{}
	s.ensureCollections()
	return s
}

func (s *State) ensureCollections() {
	if s.Users == nil {
		s.Users = map[string]*User{}
	}
	if s.Transactions == nil {
		s.Transactions = map[string]*Transaction{}
	}
	if s.Investments == nil {
		s.Investments = map[string]*Investment{}
	}
	if s.WithdrawRequests == nil {
		s.WithdrawRequests = map[string]*WithdrawRequest{}
	}
}

// Normalize fills collections missing from a decoded document.
func (s *State) Normalize() {
	s.ensureCollections()
}

// GetOrCreateUser returns the user with the given id, creating it with zero
// balances and empty lists when absent. The second result reports creation.
func (s *State) GetOrCreateUser(id string, now time.Time) (*User, bool) {
	if u, ok := s.Users[id]; ok {
		return u, false
	}
	u := &User{
		ID:           id,
		Name:         id,
		Transactions: []string{},
		Investments:  []string{},
		CreatedAt:    now,
	}
	s.Users[id] = u
	return u, true
}

// PutTransaction inserts or replaces a transaction by id.
func (s *State) PutTransaction(tx *Transaction) {
	s.Transactions[tx.ID] = tx
}

// PutInvestment inserts or replaces an investment by id.
func (s *State) PutInvestment(inv *Investment) {
	s.Investments[inv.ID] = inv
}

// PutWithdrawRequest inserts or replaces a withdraw request by id.
func (s *State) PutWithdrawRequest(wr *WithdrawRequest) {
	s.WithdrawRequests[wr.ID] = wr
}

// ListWithdrawRequests returns all withdraw requests, newest first.
// Requests created at the same instant are ordered by id.
func (s *State) ListWithdrawRequests() []*WithdrawRequest {
	out := make([]*WithdrawRequest, 0, len(s.WithdrawRequests))
	for _, wr := range s.WithdrawRequests {
		out = append(out, wr)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// UserTransactions resolves the user's transaction ids in insertion order.
func (s *State) UserTransactions(u *User) []*Transaction {
	out := make([]*Transaction, 0, len(u.Transactions))
	for _, id := range u.Transactions {
		if tx, ok := s.Transactions[id]; ok {
			out = append(out, tx)
		}
	}
	return out
}

// UserInvestments resolves the user's investment ids in insertion order.
func (s *State) UserInvestments(u *User) []*Investment {
	out := make([]*Investment, 0, len(u.Investments))
	for _, id := range u.Investments {
		if inv, ok := s.Investments[id]; ok {
			out = append(out, inv)
		}
	}
	return out
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	c := &State{
		Users:            make(map[string]*User, len(s.Users)),
		Transactions:     make(map[string]*Transaction, len(s.Transactions)),
		Investments:      make(map[string]*Investment, len(s.Investments)),
		WithdrawRequests: make(map[string]*WithdrawRequest, len(s.WithdrawRequests)),
		Settings:         s.Settings,
	}
	for id, u := range s.Users {
		cu := *u
		cu.Transactions = append([]string{}, u.Transactions...)
		cu.Investments = append([]string{}, u.Investments...)
		c.Users[id] = &cu
	}
	for id, tx := range s.Transactions {
		ctn := *tx
		ctn.ConfirmedAt = copyTime(tx.ConfirmedAt)
		c.Transactions[id] = &ctn
	}
	for id, inv := range s.Investments {
		cinv := *inv
		c.Investments[id] = &cinv
	}
	for id, wr := range s.WithdrawRequests {
		cwr := *wr
		cwr.ApprovedAt = copyTime(wr.ApprovedAt)
		cwr.RejectedAt = copyTime(wr.RejectedAt)
		c.WithdrawRequests[id] = &cwr
	}
	return c
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
