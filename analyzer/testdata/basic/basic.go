package basic

import (
	"errors"
	"log"
	"sync"
)

var errFail = errors.New("fail")

type counter struct {
	mu sync.Mutex
	n  int
}

func (c *counter) inc() {
	c.mu.Lock()
	c.n++
	c.mu.Unlock()
}

func (c *counter) deferred() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.n++
}

func (c *counter) deferredClosure() {
	c.mu.Lock()
	defer func() {
		c.mu.Unlock()
	}()

	c.n++
}

func (c *counter) leak(fail bool) error {
	c.mu.Lock()
	if fail {
		return errFail // want `c\.mu\.Lock\(\) from line \d+ is not closed before return`
	}
	c.mu.Unlock()

	return nil
}

func (c *counter) unclosed() {
	c.mu.Lock() // want `c\.mu\.Lock\(\) is not closed before function exit at line \d+`
	c.n++
}

func (c *counter) unpaired() {
	c.mu.Unlock() // want `c\.mu\.Unlock\(\) called while no opener is open`
}

func (c *counter) branches(ok bool) {
	c.mu.Lock()
	if ok {
		c.n++
		c.mu.Unlock()
	} else {
		c.mu.Unlock()
	}
}

func (c *counter) optional(ok bool) {
	c.mu.Lock()
	if ok {
		c.mu.Unlock()
	}
}

func (c *counter) kinds(k int) {
	c.mu.Lock() // want `c\.mu\.Lock\(\) is not closed on all execution paths of switch at line \d+`
	switch k {
	case 0:
		c.mu.Unlock()
	default:
		c.n++
	}
}

func (c *counter) loop(items []int) {
	for _, i := range items {
		c.mu.Lock()
		if i < 0 {
			break // want `c\.mu\.Lock\(\) from line \d+ is not closed before break`
		}
		c.n += i
		c.mu.Unlock()
	}
}

func (c *counter) first(items []int) int {
	c.mu.Lock()
	for _, i := range items {
		c.mu.Unlock()
		return i
	}
	c.mu.Unlock()

	return 0
}

func (c *counter) lateDefer() {
	defer func() {
		c.mu.Unlock()
	}()
	c.mu.Lock()

	c.n++
}

func (c *counter) panics(fail bool) {
	c.mu.Lock()
	if fail {
		panic("fail") // want `c\.mu\.Lock\(\) from line \d+ is not closed before panic`
	}
	c.mu.Unlock()
}

func (c *counter) fatal(fail bool) {
	c.mu.Lock()
	if fail {
		log.Fatal("fail") // want `not closed before log\.Fatal`
	}
	c.mu.Unlock()
}

func (c *counter) async() {
	go func() {
		c.mu.Lock() // want `c\.mu\.Lock\(\) is not closed before goroutine exit`
	}()
}

func order(mu *sync.Mutex, rw *sync.RWMutex) {
	mu.Lock()
	rw.RLock()
	mu.Unlock() // want `mu\.Unlock\(\) closes mu\.Lock\(\) while rw\.RLock\(\) is still open`
	rw.RUnlock()
}

func unexpected(rw *sync.RWMutex) {
	rw.RLock()
	rw.Unlock() // want `rw\.Unlock\(\) does not close rw\.RLock\(\), expected RUnlock\(\)`
	rw.RUnlock()
}

func (c *counter) ignored() {
	c.mu.Lock() //nolint:callpair
}

//nolint:callpair
func (c *counter) ignoredFunc() {
	c.mu.Lock()
}

var global = func(mu *sync.Mutex) {
	mu.Lock() // want `mu\.Lock\(\) is not closed before function exit`
}
