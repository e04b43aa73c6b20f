package facades

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-invest-ledger/internal/models"
)

// Notifier delivers a single notification.
type Notifier interface {
	Notify(ctx context.Context, n models.Notification) error
}

// MultiNotifier fans a notification out to every configured channel.
type MultiNotifier struct {
	notifiers []Notifier
}

// NewMultiNotifier creates a MultiNotifier, skipping nil entries.
func NewMultiNotifier(notifiers ...Notifier) *MultiNotifier {
	m := &MultiNotifier{}
	for _, n := range notifiers {
		if n != nil {
			m.notifiers = append(m.notifiers, n)
		}
	}
	return m
}

// Len reports the number of channels.
func (m *MultiNotifier) Len() int {
	return len(m.notifiers)
}

// Notify tries every channel and joins their errors.
func (m *MultiNotifier) Notify(ctx context.Context, n models.Notification) error {
	var errs []error
	for _, notifier := range m.notifiers {
		if err := notifier.Notify(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
