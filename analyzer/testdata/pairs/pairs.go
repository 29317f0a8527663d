package pairs

type Tx struct{}

func (*Tx) Begin()    {}
func (*Tx) Commit()   {}
func (*Tx) Rollback() {}

type Mutex struct{}

func (*Mutex) Lock()   {}
func (*Mutex) Unlock() {}

func Yield() {}

func commit(tx *Tx, ok bool) {
	tx.Begin()
	if ok {
		tx.Commit()

		return
	}
	tx.Rollback()
}

func receive(tx *Tx, ch chan int) {
	tx.Begin()
	<-ch // want `Channel receive while tx\.Begin\(\) is open, Begin/Commit\|Rollback requires synchronous execution`
	tx.Commit()
}

func send(tx *Tx, ch chan int) {
	tx.Begin()
	defer tx.Rollback()

	ch <- 1 // want `Channel send while tx\.Begin\(\) is open`
}

func wait(tx *Tx, ch chan int) {
	tx.Begin()
	select { // want `Blocking select while tx\.Begin\(\) is open`
	case <-ch:
	}
	tx.Rollback()
}

func poll(tx *Tx, ch chan int) {
	tx.Begin()
	select {
	case <-ch:
	default:
	}
	tx.Rollback()
}

func autoClose(tx *Tx) {
	tx.Begin()
	Yield() // want `Yield\(\) implicitly closes tx\.Begin\(\)`
	tx.Commit()
}

func otherPlatform(mu *Mutex) {
	mu.Lock()
}
