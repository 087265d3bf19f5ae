package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherDeliversToAllHandlers(t *testing.T) {
	d := NewInMemoryDispatcher()
	var got []string
	d.Subscribe(EventArtisanCreated, func(_ context.Context, e Event) error {
		got = append(got, "first:"+string(e.Type))
		return errors.New("first failed")
	})
	d.Subscribe(EventArtisanCreated, func(_ context.Context, e Event) error {
		got = append(got, "second:"+string(e.Type))
		return nil
	})
	d.Subscribe(EventArtisanDeleted, func(context.Context, Event) error {
		t.Fatal("unexpected delivery")
		return nil
	})

	err := d.Publish(context.Background(), New(EventArtisanCreated, 3, nil))
	require.Error(t, err)
	assert.Equal(t, []string{"first:artisan_created", "second:artisan_created"}, got)
}

func TestNewStampsEvent(t *testing.T) {
	e := New(EventReviewAdded, 9, ReviewAddedPayload{ReviewID: 1, Rating: 5})
	assert.NotEmpty(t, e.ID)
	assert.False(t, e.Timestamp.IsZero())
	assert.Equal(t, 9, e.ArtisanID)
	assert.NoError(t, Nop{}.Publish(context.Background(), e))
}
