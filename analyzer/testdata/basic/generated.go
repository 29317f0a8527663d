// Code generated by hand. DO NOT EDIT.

package basic

func (c *counter) generatedLeak() {
	c.mu.Lock()
}
