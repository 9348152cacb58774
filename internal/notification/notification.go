// Package notification matches stored notification events to their audience
// and maintains per-notification read state.
package notification

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"scadhub-backend/internal/events"
	"scadhub-backend/internal/model"
	"scadhub-backend/internal/session"
	"scadhub-backend/internal/store"
	"scadhub-backend/internal/utilities"
)

// Visible returns the subset of notifications the user may see, most recent
// first. A personal notification matches only its exact recipient email. A
// broadcast matches the targeted role, and a broadcast aimed at students also
// reaches pro students.
func Visible(all []model.Notification, user session.Session) []model.Notification {
	out := make([]model.Notification, 0, len(all))
	for _, n := range all {
		if matches(n, user) {
			out = append(out, n)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return parsedDate(out[i].Date).After(parsedDate(out[j].Date))
	})
	return out
}

func matches(n model.Notification, user session.Session) bool {
	if n.Email != "" && n.Email == user.Email {
		return true
	}
	if !n.Global {
		return false
	}
	if n.UserRole == user.Role {
		return true
	}
	return n.UserRole == model.RoleStudent && user.Role == model.RoleProStudent
}

func parsedDate(s string) time.Time {
	t, _ := utilities.ParseDate(s)
	return t
}

// Publish stores a new notification, assigning an id and timestamp when the
// caller left them empty, and announces the change on the bus.
func Publish(s *store.Store, bus *events.Bus, n model.Notification) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.Date == "" {
		n.Date = time.Now().UTC().Format(time.RFC3339)
	}

	if err := s.Upsert(store.Notifications, n); err != nil {
		return err
	}
	bus.Publish(events.TopicNotificationAdded)
	return nil
}

// MarkRead flips the read flag of one notification. The document is the unit
// of atomicity, so unlike the aggregate collections this read-modify-write
// cannot clobber a sibling record. Marking an absent id is a no-op.
func MarkRead(s *store.Store, id string) error {
	n, err := store.GetOneAs[model.Notification](s, store.Notifications, id)
	if err != nil || n == nil {
		return err
	}

	n.Read = true
	return s.Upsert(store.Notifications, n)
}

// MarkAllRead marks every notification of the visible set read, one upsert at
// a time. The batch is not atomic; a crash partway leaves some marked and
// some not, which is fine because re-running is idempotent.
func MarkAllRead(s *store.Store, visible []model.Notification) error {
	for _, n := range visible {
		if err := MarkRead(s, n.ID); err != nil {
			return err
		}
	}
	return nil
}
