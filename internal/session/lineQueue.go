package session

import (
	"sync"
)

// lineQueue is the bounded outbound queue of encoded lines: multiple
// producer goroutines, one writer goroutine. Array-backed ring with
// condition variables; Put blocks while full, Get while empty. Close
// wakes everyone and drains to false.
type lineQueue struct {
	lock     *sync.Mutex
	notEmpty *sync.Cond
	notFull  *sync.Cond

	store      []string
	count      int
	readIndex  int
	writeIndex int
	closed     bool
}

func newLineQueue(capacity int) *lineQueue {
	if capacity < 1 {
		capacity = 1
	}
	lock := new(sync.Mutex)
	return &lineQueue{
		lock:     lock,
		notEmpty: sync.NewCond(lock),
		notFull:  sync.NewCond(lock),
		store:    make([]string, capacity),
	}
}

func (q *lineQueue) inc(idx int) int {
	if idx+1 == len(q.store) {
		return 0
	}
	return idx + 1
}

// Put appends a line, blocking while the queue is full. Returns false if
// the queue was closed.
func (q *lineQueue) Put(line string) bool {
	q.lock.Lock()
	defer q.lock.Unlock()
	for q.count == len(q.store) && !q.closed {
		q.notFull.Wait()
	}
	if q.closed {
		return false
	}
	q.store[q.writeIndex] = line
	q.writeIndex = q.inc(q.writeIndex)
	q.count++
	q.notEmpty.Signal()
	return true
}

// Get removes the head line, blocking while the queue is empty. Returns
// false once the queue is closed and drained.
func (q *lineQueue) Get() (string, bool) {
	q.lock.Lock()
	defer q.lock.Unlock()
	for q.count == 0 && !q.closed {
		q.notEmpty.Wait()
	}
	if q.count == 0 {
		return "", false
	}
	line := q.store[q.readIndex]
	q.store[q.readIndex] = ""
	q.readIndex = q.inc(q.readIndex)
	q.count--
	q.notFull.Signal()
	return line, true
}

func (q *lineQueue) Size() int {
	q.lock.Lock()
	defer q.lock.Unlock()
	return q.count
}

func (q *lineQueue) Close() {
	q.lock.Lock()
	q.closed = true
	q.notEmpty.Broadcast()
	q.notFull.Broadcast()
	q.lock.Unlock()
}
