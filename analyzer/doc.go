// Package analyzer implements the callpair static analysis pass.
//
// # Overview
//
// callpair checks that calls which open an obligation, like [sync.Mutex.Lock],
// are matched by one of their closers on every execution path of the enclosing
// function. Open obligations form a stack: closers must release the innermost
// open call first.
//
// # Example
//
//	func (c *counter) add(n int) error {
//	    c.mu.Lock()
//	    if n < 0 {
//	        return errNegative // c.mu.Lock() from line 2 is not closed before return
//	    }
//	    c.n += n
//	    c.mu.Unlock()
//
//	    return nil
//	}
//
// # Diagnostics
//
//   - unpaired-opener: an opener is not closed on some path, or closed on only some branches
//   - unpaired-closer: a closer is called with nothing open
//   - unexpected-closer: a closer does not match the innermost opener
//   - wrong-order: a closer releases an outer obligation first
//   - multiple-openers: the same opener is called twice in a row
//   - max-nesting-exceeded: too many obligations are open at once
//   - async-violation: a pair requiring synchronous execution spans a suspension point
//   - yield-violation: a call implicitly closes open obligations
//
// Pairs are configured with [WithPairs] or a YAML file passed to [WithConfigFile].
// Without configuration Lock/Unlock and RLock/RUnlock are checked.
package analyzer
