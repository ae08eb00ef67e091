package domain

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xh-polaris/virtual-classroom/biz/domain/curriculum"
	"github.com/xh-polaris/virtual-classroom/biz/domain/lesson"
	"github.com/xh-polaris/virtual-classroom/biz/infrastructure/config"
	"github.com/zeromicro/go-zero/core/stores/redis/redistest"
)

func TestSessionStore(t *testing.T) {
	ctx := context.Background()
	store := &SessionStore{rs: redistest.CreateRedis(t), ttl: 60}

	topic, ok := curriculum.DefaultCatalog().Topic("science", "7", "s1")
	require.True(t, ok)
	sess := lesson.NewSession("sess-1", "stu-1", "Ada", "science", "7", time.Unix(1714557600, 0))
	sess.Topic = &topic
	sess.Phase = lesson.Teaching
	sess.Section = 1
	sess.Board = "SCIENCE • Year 7"
	sess.Epoch = 3
	sess.Awaiting = lesson.ExampleDue
	sess.Pending = []string{"why?"}
	sess.Transcript = []lesson.Message{{Id: "m1", Role: lesson.Tutor, Text: "hello", Timestamp: time.Unix(1714557601, 0)}}

	require.NoError(t, store.Save(ctx, sess))

	got, ok, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, sess.Topic, got.Topic)
	assert.Equal(t, lesson.Teaching, got.Phase)
	assert.Equal(t, lesson.ExampleDue, got.Awaiting)
	assert.Equal(t, int64(3), got.Epoch)
	assert.Equal(t, []string{"why?"}, got.Pending)
	require.Len(t, got.Transcript, 1)
	assert.True(t, sess.Transcript[0].Timestamp.Equal(got.Transcript[0].Timestamp))

	_, ok, err = store.Load(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Remove(ctx, "sess-1"))
	_, ok, err = store.Load(ctx, "sess-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewSessionStoreWithoutRedis(t *testing.T) {
	assert.Nil(t, NewSessionStore(&config.Config{}))
}
