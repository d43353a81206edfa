package profiles

import "sync"

// Level is the severity of a user-facing notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification is a transient, user-facing message such as a toast.
type Notification struct {
	Level   Level
	Message string
}

// Notifier reports user-facing messages. It is the only side channel the
// list view has towards the UI.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

// User-facing messages for each outcome.
const (
	MsgLoadFailed   = "Could not load profiles."
	MsgNameRequired = "Please enter a name for the profile."
	MsgInvalidIcon  = "Please pick one of the available icons."
	MsgCreated      = "Profile created successfully."
	MsgCreateFailed = "Could not create the profile."
	MsgUpdated      = "Profile updated successfully."
	MsgUpdateFailed = "Could not update the profile."
	MsgDeleted      = "Profile deleted successfully."
	MsgDeleteFailed = "Could not delete the profile."
)

// Inbox is a Notifier that queues notifications until they are drained,
// typically right before a response is written.
type Inbox struct {
	mu    sync.Mutex
	queue []Notification
}

// Notify implements Notifier.
func (b *Inbox) Notify(n Notification) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.queue = append(b.queue, n)
}

// Drain returns the queued notifications in arrival order and empties the queue.
func (b *Inbox) Drain() []Notification {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.queue
	b.queue = nil
	return out
}
