package engine

// MaxTasks is the compile-time-bounded number of concurrent tasks
// (spec.md §2, §5 default of 15 slots). A fixed array gives predictable
// memory on a microcontroller and makes an O(n) walk over the pool
// cheap; see DESIGN.md for why this was chosen over a linked list.
const MaxTasks = 15

// TaskPool is a bounded collection of tasks with O(n) lookup by id.
type TaskPool struct {
	slots  [MaxTasks]Task
	inUse  [MaxTasks]bool
	nextID uint16
}

// NewTaskPool returns an empty pool.
func NewTaskPool() *TaskPool {
	return &TaskPool{nextID: 1}
}

func (p *TaskPool) allocateID() TaskID {
	id := p.nextID
	p.nextID++
	if p.nextID == 0 { // wrap, skipping the reserved zero value
		p.nextID = 1
	}
	return TaskID(id)
}

// Create finds a free slot and returns a freshly-initialized task with
// a stable, non-zero id. It reports StatusUnableToCreateTask when the
// pool is full.
func (p *TaskPool) Create() (*Task, Status) {
	for i := range p.slots {
		if !p.inUse[i] {
			p.slots[i].reset()
			p.slots[i].ID = p.allocateID()
			p.inUse[i] = true
			return &p.slots[i], StatusTaskCreatedOK
		}
	}
	return nil, StatusUnableToCreateTask
}

// Lookup finds a task by id in pool order.
func (p *TaskPool) Lookup(id TaskID) (*Task, bool) {
	for i := range p.slots {
		if p.inUse[i] && p.slots[i].ID == id {
			return &p.slots[i], true
		}
	}
	return nil, false
}

// Destroy releases a task's slot back to the pool.
func (p *TaskPool) Destroy(id TaskID) {
	for i := range p.slots {
		if p.inUse[i] && p.slots[i].ID == id {
			p.inUse[i] = false
			p.slots[i].reset()
			return
		}
	}
}

// ForEach visits every live task in pool order. fn may request the
// task be destroyed by returning destroy=true; destruction happens
// after the walk completes so indices stay stable during iteration.
// Tasks created by fn during the walk are not visited until the next
// walk.
func (p *TaskPool) ForEach(fn func(t *Task) (destroy bool)) {
	var toDestroy []TaskID
	live := p.inUse
	for i := range p.slots {
		if !live[i] {
			continue
		}
		if fn(&p.slots[i]) {
			toDestroy = append(toDestroy, p.slots[i].ID)
		}
	}
	for _, id := range toDestroy {
		p.Destroy(id)
	}
}

// Count returns the number of live tasks.
func (p *TaskPool) Count() int {
	n := 0
	for i := range p.inUse {
		if p.inUse[i] {
			n++
		}
	}
	return n
}
