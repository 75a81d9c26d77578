package router

// Stack is the push-navigation path, root first.
type Stack struct {
	entries []Route
}

// NewStack creates a new empty navigation stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]Route, 0),
	}
}

// Push appends a route to the top of the stack.
func (s *Stack) Push(route Route) {
	s.entries = append(s.entries, route)
}

// Pop removes and returns the top route.
// Returns nil if the stack is empty.
func (s *Stack) Pop() Route {
	if len(s.entries) == 0 {
		return nil
	}
	route := s.entries[len(s.entries)-1]
	s.entries[len(s.entries)-1] = nil
	s.entries = s.entries[:len(s.entries)-1]
	return route
}

// Peek returns the top route without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Peek() Route {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1]
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all entries from the stack.
func (s *Stack) Clear() {
	clear(s.entries)
	s.entries = s.entries[:0]
}

// Index returns the position of the first entry equal to route, or -1.
func (s *Stack) Index(route Route) int {
	for i, r := range s.entries {
		if r == route {
			return i
		}
	}
	return -1
}

// TruncateAfter drops every entry above position i, keeping i on top.
// Out-of-range positions leave the stack unchanged.
func (s *Stack) TruncateAfter(i int) {
	if i < 0 || i >= len(s.entries) {
		return
	}
	clear(s.entries[i+1:])
	s.entries = s.entries[:i+1]
}

// Routes returns a copy of the entries, root first.
func (s *Stack) Routes() []Route {
	out := make([]Route, len(s.entries))
	copy(out, s.entries)
	return out
}
