package config

type Pool struct{}

func (*Pool) Acquire() {}
func (*Pool) Release() {}

func conditional(p *Pool, ok bool) {
	p.Acquire()
	if ok {
		p.Release()
	} else {
		println("skipped")
	}
}

func leak(p *Pool) {
	p.Acquire() // want `p\.Acquire\(\) is not closed before function exit`
}
