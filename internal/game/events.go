package game

import "sync"

// observers is an ordered set of zero-argument change callbacks. Delivery is
// synchronous and in subscription order; callbacks run without any engine
// lock held, so they may read snapshots or unsubscribe.
type observers struct {
	mu   sync.Mutex
	next uint64
	list []observer
}

type observer struct {
	id uint64
	fn func()
}

func (o *observers) subscribe(fn func()) func() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.next++
	id := o.next
	o.list = append(o.list, observer{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { o.unsubscribe(id) })
	}
}

func (o *observers) unsubscribe(id uint64) {
	o.mu.Lock()
	defer o.mu.Unlock()

	for i, sub := range o.list {
		if sub.id == id {
			o.list = append(o.list[:i:i], o.list[i+1:]...)
			return
		}
	}
}

func (o *observers) notify() {
	o.mu.Lock()
	list := make([]observer, len(o.list))
	copy(list, o.list)
	o.mu.Unlock()

	for _, sub := range list {
		sub.fn()
	}
}

func (o *observers) len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.list)
}
