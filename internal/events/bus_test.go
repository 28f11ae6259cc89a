package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublishReachesSubscribers(t *testing.T) {
	t.Cleanup(Reset)

	var first, second int
	Subscribe("ping", func() { first++ })
	Subscribe("ping", func() { second++ })

	Publish("ping")
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}

func TestPublishUnknownEventIsNoop(t *testing.T) {
	t.Cleanup(Reset)
	Publish("nobody-listens")
}

func TestUnsubscribe(t *testing.T) {
	t.Cleanup(Reset)

	var fired int
	unsubscribe := Subscribe("ping", func() { fired++ })

	Publish("ping")
	unsubscribe()
	Publish("ping")

	assert.Equal(t, 1, fired)
}

func TestUnsubscribeTwiceIsSafe(t *testing.T) {
	t.Cleanup(Reset)

	var kept int
	unsubscribe := Subscribe("ping", func() {})
	Subscribe("ping", func() { kept++ })

	// Повторная отписка не должна снять чужого подписчика.
	unsubscribe()
	unsubscribe()

	Publish("ping")
	assert.Equal(t, 1, kept)
}

func TestSubscriberIsolationPerEvent(t *testing.T) {
	t.Cleanup(Reset)

	var fired int
	Subscribe("ping", func() { fired++ })

	Publish("pong")
	assert.Zero(t, fired)
}
