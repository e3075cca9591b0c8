package spfa

// deque is a ring-buffer double-ended queue of node indices. The FIFO
// variant only ever pushes to the back; SLF additionally pushes to the
// front. Slice-backed so the hot loop stays allocation-free once the
// buffer has grown to its working size.
type deque struct {
	buf  []int
	head int // index of the front element when size > 0
	size int
}

// minDequeCap keeps the modulo arithmetic away from degenerate buffers.
const minDequeCap = 4

// newDeque returns an empty deque with the given capacity hint.
func newDeque(capacity int) *deque {
	if capacity < minDequeCap {
		capacity = minDequeCap
	}

	return &deque{buf: make([]int, capacity)}
}

// len returns the number of queued nodes.
func (d *deque) len() int { return d.size }

// front returns the node at the front. Caller must ensure size > 0.
func (d *deque) front() int { return d.buf[d.head] }

// pushBack appends v at the back.
func (d *deque) pushBack(v int) {
	if d.size == len(d.buf) {
		d.grow()
	}
	d.buf[(d.head+d.size)%len(d.buf)] = v
	d.size++
}

// pushFront prepends v at the front.
func (d *deque) pushFront(v int) {
	if d.size == len(d.buf) {
		d.grow()
	}
	d.head = (d.head - 1 + len(d.buf)) % len(d.buf)
	d.buf[d.head] = v
	d.size++
}

// popFront removes and returns the front node. Caller must ensure
// size > 0.
func (d *deque) popFront() int {
	v := d.buf[d.head]
	d.head = (d.head + 1) % len(d.buf)
	d.size--

	return v
}

// grow doubles the buffer, unwrapping the ring into the new prefix.
func (d *deque) grow() {
	next := make([]int, len(d.buf)*2)
	for i := 0; i < d.size; i++ {
		next[i] = d.buf[(d.head+i)%len(d.buf)]
	}
	d.buf = next
	d.head = 0
}
