// Package workshop manages the registrant list embedded in each workshop
// document.
package workshop

import (
	"fmt"

	"scadhub-backend/internal/model"
	"scadhub-backend/internal/store"
)

// Register adds a registrant to the workshop, replacing any earlier
// registration with the same email.
func Register(s *store.Store, workshopID string, r model.WorkshopRegistrant) error {
	w, err := store.GetOneAs[model.Workshop](s, store.Workshops, workshopID)
	if err != nil {
		return err
	}
	if w == nil {
		return fmt.Errorf("workshop %s does not exist", workshopID)
	}

	replaced := false
	for i := range w.Registrants {
		if w.Registrants[i].Email == r.Email {
			w.Registrants[i] = r
			replaced = true
			break
		}
	}
	if !replaced {
		w.Registrants = append(w.Registrants, r)
	}

	return s.Upsert(store.Workshops, w)
}

// Unregister removes a registrant by email. Unregistering someone who never
// registered is a no-op.
func Unregister(s *store.Store, workshopID, email string) error {
	w, err := store.GetOneAs[model.Workshop](s, store.Workshops, workshopID)
	if err != nil || w == nil {
		return err
	}

	kept := w.Registrants[:0]
	for _, r := range w.Registrants {
		if r.Email != email {
			kept = append(kept, r)
		}
	}
	w.Registrants = kept

	return s.Upsert(store.Workshops, w)
}

// MarkAttended flags a registrant as having attended, which unlocks their
// certificate download.
func MarkAttended(s *store.Store, workshopID, email string) error {
	w, err := store.GetOneAs[model.Workshop](s, store.Workshops, workshopID)
	if err != nil {
		return err
	}
	if w == nil {
		return fmt.Errorf("workshop %s does not exist", workshopID)
	}

	for i := range w.Registrants {
		if w.Registrants[i].Email == email {
			w.Registrants[i].Attended = true
			return s.Upsert(store.Workshops, w)
		}
	}
	return fmt.Errorf("%s is not registered for workshop %s", email, workshopID)
}
