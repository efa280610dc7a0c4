package eventbus

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type refreshDone struct {
	Table string
	Rows  int
}

func TestPublish_CallsMatchingSubscriber(t *testing.T) {
	bus := NewEventPublisher(logrus.New())

	var got refreshDone
	bus.Subscribe(func(ev refreshDone) { got = ev })

	bus.Publish(refreshDone{Table: "network_status", Rows: 42})
	require.Equal(t, "network_status", got.Table)
	require.Equal(t, 42, got.Rows)
}

func TestPublish_SkipsNonMatchingSignatures(t *testing.T) {
	bus := NewEventPublisher(logrus.New())

	called := false
	bus.Subscribe(func(s string) { called = true })

	bus.Publish(refreshDone{Table: "organization_summary"})
	require.False(t, called)
}

func TestPublish_RecoversFromHandlerPanic(t *testing.T) {
	bus := NewEventPublisher(logrus.New())

	secondCalled := false
	bus.Subscribe(func(ev refreshDone) { panic("boom") })
	bus.Subscribe(func(ev refreshDone) { secondCalled = true })

	require.NotPanics(t, func() {
		bus.Publish(refreshDone{Table: "network_status"})
	})
	require.True(t, secondCalled)
}

func TestUnsubscribeAndClear(t *testing.T) {
	bus := NewEventPublisher(logrus.New())

	handler := func(ev refreshDone) {}
	bus.Subscribe(handler)
	require.Equal(t, 1, bus.SubscribersCount())

	bus.Unsubscribe(handler)
	require.Equal(t, 0, bus.SubscribersCount())

	bus.Subscribe(handler)
	bus.Clear()
	require.Equal(t, 0, bus.SubscribersCount())
}

func TestMatchSignature(t *testing.T) {
	require.True(t, MatchSignature(func(ev refreshDone) {}, []interface{}{refreshDone{}}))
	require.False(t, MatchSignature(func(ev refreshDone) {}, []interface{}{"not an event"}))
	require.False(t, MatchSignature("not a func", []interface{}{refreshDone{}}))
	require.False(t, MatchSignature(func(a, b refreshDone) {}, []interface{}{refreshDone{}}))
}
