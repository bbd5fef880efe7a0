package core

import (
	"sync"
	"time"
)

// IndicatorDelay is how long an operation must run before a busy indicator
// is shown. Shorter operations never flash it.
const IndicatorDelay = 250 * time.Millisecond

// DelayedIndicator shows a busy indicator only once an operation outlives
// its delay. Arm when the operation starts, Disarm when it ends, Stop on
// teardown. Callbacks run one at a time and must not call back into the
// indicator.
type DelayedIndicator struct {
	cbMu    sync.Mutex // held while a callback runs
	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	gen     uint64
	shown   bool
	stopped bool
	onShow  func()
	onHide  func()
}

// NewDelayedIndicator creates an indicator. Either callback may be nil.
func NewDelayedIndicator(delay time.Duration, onShow, onHide func()) *DelayedIndicator {
	return &DelayedIndicator{delay: delay, onShow: onShow, onHide: onHide}
}

// Arm starts the delay for a new operation.
func (d *DelayedIndicator) Arm() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.stopTimerLocked()
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

func (d *DelayedIndicator) fire(gen uint64) {
	d.cbMu.Lock()
	defer d.cbMu.Unlock()
	d.mu.Lock()
	if d.stopped || gen != d.gen || d.shown {
		d.mu.Unlock()
		return
	}
	d.shown = true
	d.timer = nil
	onShow := d.onShow
	d.mu.Unlock()

	if onShow != nil {
		onShow()
	}
}

// Disarm ends the operation, cancelling a pending delay and hiding the
// indicator if it was shown.
func (d *DelayedIndicator) Disarm() {
	d.cbMu.Lock()
	defer d.cbMu.Unlock()
	d.mu.Lock()
	d.stopTimerLocked()
	d.gen++
	wasShown := d.shown
	d.shown = false
	onHide := d.onHide
	d.mu.Unlock()

	if wasShown && onHide != nil {
		onHide()
	}
}

// Stop cancels any pending delay for good. Callbacks never run after Stop
// returns.
func (d *DelayedIndicator) Stop() {
	d.cbMu.Lock()
	defer d.cbMu.Unlock()
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopTimerLocked()
	d.stopped = true
	d.gen++
}

func (d *DelayedIndicator) stopTimerLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
