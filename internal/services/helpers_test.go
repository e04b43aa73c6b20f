package services

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-invest-ledger/internal/models"
	"github.com/sbilibin2017/gw-invest-ledger/internal/repositories"
)

// seqIDs hands out prefix-1, prefix-2, ...
type seqIDs struct {
	mu     sync.Mutex
	prefix string
	n      int
}

func (g *seqIDs) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s-%d", g.prefix, g.n)
}

// fixedIDs always returns the same id.
type fixedIDs string

func (f fixedIDs) NewID() string { return string(f) }

// stepClock advances by one second on every call.
type stepClock struct {
	mu  sync.Mutex
	cur time.Time
}

func newStepClock() *stepClock {
	return &stepClock{cur: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cur = c.cur.Add(time.Second)
	return c.cur
}

func newTestStore(t *testing.T) *repositories.FileStateRepository {
	t.Helper()
	store, err := repositories.NewFileStateRepository(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)
	return store
}

func snapshot(t *testing.T, store *repositories.FileStateRepository) *models.State {
	t.Helper()
	var out *models.State
	require.NoError(t, store.View(context.Background(), func(st *models.State) error {
		out = st
		return nil
	}))
	return out
}

func dump(t *testing.T, store *repositories.FileStateRepository) string {
	t.Helper()
	data, err := store.Dump(context.Background())
	if err != nil {
		return ""
	}
	return string(data)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

type testLedger struct {
	store       *repositories.FileStateRepository
	clock       *stepClock
	txs         *TransactionService
	investments *InvestmentService
	withdraws   *WithdrawService
	users       *UserService
}

func newTestLedger(t *testing.T, notifier Notifier) *testLedger {
	t.Helper()
	store := newTestStore(t)
	clock := newStepClock()
	payments := NewPaymentService(nil, nil, nil, time.Second, "")

	l := &testLedger{
		store:       store,
		clock:       clock,
		txs:         NewTransactionService(store, &seqIDs{prefix: "tx"}, payments, nil),
		investments: NewInvestmentService(store, &seqIDs{prefix: "inv"}, nil),
		withdraws:   NewWithdrawService(store, &seqIDs{prefix: "wr"}, notifier, nil, "admin@example.com", time.Second),
		users:       NewUserService(store),
	}
	l.txs.now = clock.Now
	l.investments.now = clock.Now
	l.withdraws.now = clock.Now
	return l
}

// fund deposits and confirms amount for userID and returns the transaction id.
func (l *testLedger) fund(t *testing.T, userID, amount string) string {
	t.Helper()
	ctx := context.Background()
	tx, _, err := l.txs.CreateDeposit(ctx, userID, decimal.RequireFromString(amount), "BANK")
	require.NoError(t, err)
	_, err = l.txs.ConfirmDeposit(ctx, tx.ID, false)
	require.NoError(t, err)
	return tx.ID
}

// invest funds and invests amount once per plan.
func (l *testLedger) invest(t *testing.T, userID, amount string, plans ...string) {
	t.Helper()
	for _, plan := range plans {
		txID := l.fund(t, userID, amount)
		_, err := l.investments.CreateInvestment(context.Background(), userID, txID, plan)
		require.NoError(t, err)
	}
}
