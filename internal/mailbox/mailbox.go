// Package mailbox implements the simulated in-app mailbox. Messages never
// leave the store; sending just persists a document and nudges listeners.
package mailbox

import (
	"sort"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"scadhub-backend/internal/events"
	"scadhub-backend/internal/model"
	"scadhub-backend/internal/store"
	"scadhub-backend/internal/utilities"
)

var (
	idSize     = 21
	idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Send stores the message, assigning an id and timestamp when the caller left
// them empty, and announces it on the bus so open mailbox views re-fetch.
func Send(s *store.Store, bus *events.Bus, email model.Email) error {
	if email.ID == "" {
		email.ID = gonanoid.MustGenerate(idAlphabet, idSize)
	}
	if email.Date == "" {
		email.Date = time.Now().UTC().Format(time.RFC3339)
	}

	if err := s.Upsert(store.Emails, email); err != nil {
		return err
	}
	bus.Publish(events.TopicEmailSent)
	return nil
}

// Inbox returns the recipient's messages, newest first, via the recipient
// secondary index.
func Inbox(s *store.Store, recipient string) ([]model.Email, error) {
	emails, err := store.FindByFieldAs[model.Email](s, store.Emails, "recipient", recipient)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(emails, func(i, j int) bool {
		di, _ := utilities.ParseDate(emails[i].Date)
		dj, _ := utilities.ParseDate(emails[j].Date)
		return di.After(dj)
	})
	return emails, nil
}

// MarkRead flips the read flag of one message. Marking an absent id is a
// no-op.
func MarkRead(s *store.Store, id string) error {
	email, err := store.GetOneAs[model.Email](s, store.Emails, id)
	if err != nil || email == nil {
		return err
	}

	email.Read = true
	return s.Upsert(store.Emails, email)
}

// Delete removes a message from the mailbox.
func Delete(s *store.Store, id string) error {
	return s.DeleteOne(store.Emails, id)
}
