package core

import (
	"log"

	"github.com/google/uuid"

	"github.com/Rorical/DictPanel/internal/eventbus"
	"github.com/Rorical/DictPanel/internal/models"
)

// Notifier shows transient notifications
type Notifier interface {
	Notify(toast models.Toast)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(models.Toast)

func (f NotifierFunc) Notify(t models.Toast) { f(t) }

// NewToast creates a toast with a fresh id.
func NewToast(message string, icon models.ToastIcon) models.Toast {
	return models.Toast{ID: uuid.NewString(), Message: message, Icon: icon}
}

// busNotifier forwards toasts to the panel through the event bus
type busNotifier struct {
	eventBus *eventbus.EventBus
}

func (n busNotifier) Notify(t models.Toast) {
	if err := n.eventBus.SendToUI(eventbus.ToastEvent{Toast: t}); err != nil {
		log.Printf("send toast: %v", err)
	}
}
