package planner

// Context is the immutable issue or pull-request context a plan is generated
// for. It is built once per invocation from the triggering comment event and
// never mutated afterwards.
type Context struct {
	Number  int
	Title   string
	Body    string
	Comment string
	IsPR    bool
	Author  string
}

// EntityType names the thing being planned for, as it appears in the prompt.
func (c Context) EntityType() string {
	if c.IsPR {
		return "Pull Request"
	}
	return "Issue"
}
