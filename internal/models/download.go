package models

// DownloadTrigger tracks the export button. Each attempt gets a number so that
// late results and indicator ticks from an earlier attempt can be told apart.
type DownloadTrigger struct {
	InProgress    bool
	ShowIndicator bool
	ErrorMessage  string
	attempt       uint64
}

// Start begins a new attempt. It returns false while another attempt is still
// in flight, which is how the disabled button is enforced.
func (d *DownloadTrigger) Start() (uint64, bool) {
	if d.InProgress {
		return 0, false
	}
	d.attempt++
	d.InProgress = true
	d.ShowIndicator = false
	d.ErrorMessage = ""
	return d.attempt, true
}

// Attempt returns the number of the current or last attempt.
func (d *DownloadTrigger) Attempt() uint64 {
	return d.attempt
}

// IndicatorDue is called when the indicator delay for an attempt elapses. The
// indicator is only shown if that attempt is still running.
func (d *DownloadTrigger) IndicatorDue(attempt uint64) bool {
	if attempt != d.attempt || !d.InProgress {
		return false
	}
	d.ShowIndicator = true
	return true
}

// Finish ends an attempt. An empty errorMessage means success. Results for a
// stale attempt are dropped and Finish returns false.
func (d *DownloadTrigger) Finish(attempt uint64, errorMessage string) bool {
	if attempt != d.attempt || !d.InProgress {
		return false
	}
	d.InProgress = false
	d.ShowIndicator = false
	d.ErrorMessage = errorMessage
	return true
}
