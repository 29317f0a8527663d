package nesting

type Tx struct{}

func (*Tx) Begin()  {}
func (*Tx) Commit() {}

func nested(a, b *Tx) {
	a.Begin()
	b.Begin() // want `b\.Begin\(\) exceeds the maximum nesting depth of 1` `b\.Begin\(\) called again while already open`
	b.Commit()
	a.Commit()
}
