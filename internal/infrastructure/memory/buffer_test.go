package memory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicheck/medicheck/internal/domain/entities"
)

func entry(i int) entities.ConversationEntry {
	return entities.ConversationEntry{Role: entities.RoleUser, Message: fmt.Sprintf("message %d", i)}
}

func TestBuffer_EvictsOldestFirst(t *testing.T) {
	b := NewBuffer(15)
	for i := 1; i <= 20; i++ {
		b.Append(entry(i))
	}

	got := b.Snapshot()
	require.Len(t, got, 15)
	for i, e := range got {
		assert.Equal(t, fmt.Sprintf("message %d", i+6), e.Message)
	}
}

func TestBuffer_UnderCapacity(t *testing.T) {
	b := NewBuffer(15)
	b.Append(entry(1))
	b.Append(entry(2))

	assert.Len(t, b.Snapshot(), 2)
	assert.Equal(t, "message 1", b.Snapshot()[0].Message)
}

func TestBuffer_DefaultCapacity(t *testing.T) {
	assert.Equal(t, DefaultMaxEntries, NewBuffer(0).capacity)
	assert.Equal(t, DefaultMaxEntries, NewBuffer(-3).capacity)
}

func TestBuffer_SnapshotIsCopy(t *testing.T) {
	b := NewBuffer(3)
	b.Append(entry(1))

	snap := b.Snapshot()
	snap[0].Message = "changed"

	assert.Equal(t, "message 1", b.Snapshot()[0].Message)
}

func TestBuffer_ContextString(t *testing.T) {
	b := NewBuffer(5)
	assert.Equal(t, "", b.ContextString())

	b.Append(entities.ConversationEntry{Role: entities.RoleUser, Message: "Are masks effective?"})
	b.Append(entities.ConversationEntry{Role: entities.RoleBot, Message: "Yes, they reduce transmission."})

	assert.Equal(t, "user: Are masks effective?\nbot: Yes, they reduce transmission.", b.ContextString())
}

func TestBuffer_RejectsUnknownRole(t *testing.T) {
	b := NewBuffer(5)

	err := b.Append(entities.ConversationEntry{Role: "assistant", Message: "hi"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownRole)
	assert.Empty(t, b.Snapshot())
}

func TestBuffer_ConcurrentAppend(t *testing.T) {
	b := NewBuffer(15)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			b.Append(entry(i))
		}(i)
	}
	wg.Wait()

	assert.Len(t, b.Snapshot(), 15)
}
