package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskPoolCreateAssignsStableNonZeroID(t *testing.T) {
	p := NewTaskPool()
	tk, status := p.Create()
	require.Equal(t, StatusTaskCreatedOK, status)
	assert.NotZero(t, tk.ID)

	found, ok := p.Lookup(tk.ID)
	require.True(t, ok)
	assert.Same(t, tk, found)
}

func TestTaskPoolFullReturnsUnableToCreate(t *testing.T) {
	p := NewTaskPool()
	for i := 0; i < MaxTasks; i++ {
		_, status := p.Create()
		require.Equal(t, StatusTaskCreatedOK, status)
	}
	_, status := p.Create()
	assert.Equal(t, StatusUnableToCreateTask, status)
}

func TestTaskPoolDestroyReleasesSlot(t *testing.T) {
	p := NewTaskPool()
	tk, _ := p.Create()
	p.Destroy(tk.ID)

	_, ok := p.Lookup(tk.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, p.Count())

	_, status := p.Create()
	assert.Equal(t, StatusTaskCreatedOK, status)
}

func TestTaskPoolIDsAreMonotonicAndSkipZero(t *testing.T) {
	p := NewTaskPool()
	t1, _ := p.Create()
	id1 := t1.ID
	p.Destroy(id1)
	t2, _ := p.Create()
	assert.Greater(t, t2.ID, id1)
	assert.NotZero(t, t2.ID)
}

func TestTaskPoolForEachVisitsInPoolOrder(t *testing.T) {
	p := NewTaskPool()
	var ids []TaskID
	for i := 0; i < 3; i++ {
		tk, _ := p.Create()
		ids = append(ids, tk.ID)
	}

	var visited []TaskID
	p.ForEach(func(tk *Task) bool {
		visited = append(visited, tk.ID)
		return false
	})
	assert.Equal(t, ids, visited)
}

func TestTaskPoolForEachDestroyHappensAfterWalk(t *testing.T) {
	p := NewTaskPool()
	a, _ := p.Create()
	b, _ := p.Create()

	p.ForEach(func(tk *Task) bool {
		return tk.ID == a.ID
	})

	_, aStillThere := p.Lookup(a.ID)
	_, bStillThere := p.Lookup(b.ID)
	assert.False(t, aStillThere)
	assert.True(t, bStillThere)
}
