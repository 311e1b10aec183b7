package ports

import "github.com/google/uuid"

// LiveNotifier is the application's view of the presence hub: fire-and-forget
// delivery to whatever connections a user currently holds. Zero connections is
// not an error; the event is simply dropped.
type LiveNotifier interface {
	NotifyUser(userID uuid.UUID, event string, payload any)
}
