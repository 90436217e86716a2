package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch <-chan Change) Change {
	t.Helper()
	select {
	case c := <-ch:
		return c
	case <-time.After(time.Second):
		t.Fatal("no change received")
		return Change{}
	}
}

func TestBroker_PublishToCollectionAndAll(t *testing.T) {
	b := NewBroker()

	skills, unsubSkills := b.Subscribe("skills")
	defer unsubSkills()
	all, unsubAll := b.Subscribe("")
	defer unsubAll()

	b.Publish(Change{Collection: "skills", Op: OpCreate, ID: "1"})
	b.Publish(Change{Collection: "projects", Op: OpClear})

	assert.Equal(t, Change{Collection: "skills", Op: OpCreate, ID: "1"}, receive(t, skills))
	assert.Equal(t, "skills", receive(t, all).Collection)
	assert.Equal(t, "projects", receive(t, all).Collection)

	select {
	case c := <-skills:
		t.Fatalf("unexpected change %+v", c)
	default:
	}
}

func TestBroker_Unsubscribe(t *testing.T) {
	b := NewBroker()
	ch, unsubscribe := b.Subscribe("skills")

	unsubscribe()
	unsubscribe() // повторный вызов безопасен

	_, ok := <-ch
	assert.False(t, ok, "channel is closed after unsubscribe")

	// Публикация без подписчиков не паникует
	b.Publish(Change{Collection: "skills", Op: OpDelete, ID: "1"})
}

func TestBroker_SlowSubscriberDoesNotBlock(t *testing.T) {
	b := NewBroker()
	ch, unsubscribe := b.Subscribe("skills")
	defer unsubscribe()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			b.Publish(Change{Collection: "skills", Op: OpUpdate})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
	require.Len(t, ch, cap(ch))
}
