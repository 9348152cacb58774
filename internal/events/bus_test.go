package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublishReachesSubscribers(t *testing.T) {
	bus := New()

	var got []string
	bus.Subscribe(TopicEmailSent, func(topic string) { got = append(got, "a:"+topic) })
	bus.Subscribe(TopicEmailSent, func(topic string) { got = append(got, "b:"+topic) })
	bus.Subscribe(TopicNotificationAdded, func(topic string) { got = append(got, "c:"+topic) })

	bus.Publish(TopicEmailSent)

	assert.Equal(t, []string{"a:" + TopicEmailSent, "b:" + TopicEmailSent}, got)
}

func TestPublishWithoutSubscribers(t *testing.T) {
	bus := New()
	assert.NotPanics(t, func() { bus.Publish("unobserved") })
}

func TestNilBusDropsPublishes(t *testing.T) {
	var bus *Bus
	assert.NotPanics(t, func() { bus.Publish(TopicEmailSent) })
}
