package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/manifoldco/promptui"

	"github.com/Rorical/DictPanel/internal/core"
	"github.com/Rorical/DictPanel/internal/models"
	"github.com/Rorical/DictPanel/ui/components"
	"github.com/Rorical/DictPanel/ui/styles"
)

// clearLine returns the cursor to column 0 and erases the line.
const clearLine = "\r\033[K"

// toastPrinter shows notifications as single lines when running without the
// panel. It owns the busy line and erases it before printing, so a toast never
// lands next to the spinner.
type toastPrinter struct {
	w         io.Writer
	indicator *core.DelayedIndicator
}

func newToastPrinter(w io.Writer) *toastPrinter {
	return &toastPrinter{w: w}
}

func (p *toastPrinter) Notify(t models.Toast) {
	if p.indicator != nil {
		p.indicator.Disarm()
	}
	glyph := styles.IconStyle(string(t.Icon)).Render(components.Glyph(t.Icon))
	fmt.Fprintln(p.w, glyph+" "+t.Message)
}

// busyLine creates the indicator drawn while a request runs. Only one is
// live per printer.
func (p *toastPrinter) busyLine(text string, delay time.Duration) *core.DelayedIndicator {
	p.indicator = core.NewDelayedIndicator(delay,
		func() { fmt.Fprint(p.w, components.SpinnerFrame(0)+" "+text) },
		func() { fmt.Fprint(p.w, clearLine) },
	)
	return p.indicator
}

// promptConfirmator asks on the terminal. Anything but "y" declines.
type promptConfirmator struct{}

func (promptConfirmator) RequestConfirmation(req models.ConfirmationRequest) bool {
	fmt.Println(styles.TitleStyle().Render(req.Title))
	fmt.Println(req.Message)
	prompt := promptui.Prompt{
		Label:     req.ConfirmButton,
		IsConfirm: true,
	}
	_, err := prompt.Run()
	return err == nil
}

// assumeYes approves without asking, for --yes.
type assumeYes struct{}

func (assumeYes) RequestConfirmation(models.ConfirmationRequest) bool { return true }

// confirmingIndicator arms the busy line only after the user said yes, so
// it never draws over the prompt.
type confirmingIndicator struct {
	core.Confirmator
	indicator *core.DelayedIndicator
}

func (c confirmingIndicator) RequestConfirmation(req models.ConfirmationRequest) bool {
	ok := c.Confirmator.RequestConfirmation(req)
	if ok {
		c.indicator.Arm()
	}
	return ok
}

func confirmatorFor(yes bool) core.Confirmator {
	if yes {
		return assumeYes{}
	}
	return promptConfirmator{}
}

var _ core.Notifier = (*toastPrinter)(nil)

// stderr is where CLI progress and toasts go
var stderr io.Writer = os.Stderr
