package wmtest

import "github.com/go-joist/joist/pkg/signal"

// Session signal names.
const (
	SignalClientManage   = "client::manage"
	SignalClientUnmanage = "client::unmanage"
	SignalClientFocus    = "client::focus"
	SignalClientUnfocus  = "client::unfocus"
	SignalClientUrgent   = "client::urgent"
	SignalTagSelected    = "tag::selected"
)

// Tag is a workspace label clients can be tagged with.
type Tag struct {
	Name     string
	selected bool
}

// Selected reports whether the tag is part of the current view.
func (t *Tag) Selected() bool {
	return t.selected
}

// Client is a simulated window-manager client.
type Client struct {
	Name     string
	Class    string
	Instance string

	tags     []*Tag
	urgent   bool
	floating bool
}

// Tags returns the tags the client is currently on.
func (c *Client) Tags() []*Tag {
	return c.tags
}

// Urgent reports whether the client demands attention.
func (c *Client) Urgent() bool {
	return c.urgent
}

// Floating reports whether the client is detached from tiled layout.
func (c *Client) Floating() bool {
	return c.floating
}

// Session simulates a window-manager session: a fixed tag set, managed
// clients, one focused client, and the urgency rules the live harness
// asserts against. Observers subscribe to the session's signals; every
// client payload is passed as the first signal argument.
type Session struct {
	signal.Emitter

	tags    []*Tag
	clients []*Client
	focused *Client
	rules   []Rule
}

// NewSession creates a session with the given tags; the first tag starts
// selected.
func NewSession(tagNames ...string) *Session {
	s := &Session{}
	for i, name := range tagNames {
		s.tags = append(s.tags, &Tag{Name: name, selected: i == 0})
	}
	s.AddSignal(SignalClientManage)
	s.AddSignal(SignalClientUnmanage)
	s.AddSignal(SignalClientFocus)
	s.AddSignal(SignalClientUnfocus)
	s.AddSignal(SignalClientUrgent)
	s.AddSignal(SignalTagSelected)
	return s
}

// SetRules replaces the client rules applied by Manage.
func (s *Session) SetRules(rules []Rule) {
	s.rules = rules
}

// Tag returns the tag with the given name, or nil.
func (s *Session) Tag(name string) *Tag {
	for _, t := range s.tags {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// Tags returns the session's tag list.
func (s *Session) Tags() []*Tag {
	return s.tags
}

// Clients returns the managed clients.
func (s *Session) Clients() []*Client {
	return s.clients
}

// Focused returns the focused client, or nil.
func (s *Session) Focused() *Client {
	return s.focused
}

// Manage admits a client into the session. Matching rules are applied in
// order (tags, urgency, floating); a client that ends up with no tags is
// placed on the currently selected ones. A client managed onto only
// unselected tags becomes urgent, since the user cannot see it appear.
func (s *Session) Manage(c *Client) {
	for _, rule := range s.rules {
		if !rule.Matches(c) {
			continue
		}
		for _, tagName := range rule.Tags {
			if t := s.Tag(tagName); t != nil {
				c.tags = append(c.tags, t)
			}
		}
		if rule.Urgent {
			c.urgent = true
		}
		if rule.Floating {
			c.floating = true
		}
	}
	if len(c.tags) == 0 {
		for _, t := range s.tags {
			if t.selected {
				c.tags = append(c.tags, t)
			}
		}
	}
	s.clients = append(s.clients, c)
	s.EmitSignal(SignalClientManage, c)

	if !s.anyTagSelected(c) && !c.urgent {
		c.urgent = true
	}
	if c.urgent {
		s.EmitSignal(SignalClientUrgent, c)
	}
}

// Unmanage removes a client, dropping focus if it was focused.
func (s *Session) Unmanage(c *Client) {
	for i, existing := range s.clients {
		if existing == c {
			s.clients = append(s.clients[:i:i], s.clients[i+1:]...)
			break
		}
	}
	if s.focused == c {
		s.focused = nil
		s.EmitSignal(SignalClientUnfocus, c)
	}
	s.EmitSignal(SignalClientUnmanage, c)
}

// Focus moves focus to c, unfocusing the previous client and clearing
// c's urgency: attention has been paid.
func (s *Session) Focus(c *Client) {
	if s.focused == c {
		return
	}
	if s.focused != nil {
		s.EmitSignal(SignalClientUnfocus, s.focused)
	}
	s.focused = c
	if c != nil {
		if c.urgent {
			c.urgent = false
			s.EmitSignal(SignalClientUrgent, c)
		}
		s.EmitSignal(SignalClientFocus, c)
	}
}

// SetUrgent flips a client's urgency flag, emitting client::urgent on a
// change. Setting urgency on the focused client is ignored.
func (s *Session) SetUrgent(c *Client, urgent bool) {
	if urgent && s.focused == c {
		return
	}
	if c.urgent == urgent {
		return
	}
	c.urgent = urgent
	s.EmitSignal(SignalClientUrgent, c)
}

// SelectTag makes the named tag the only selected one.
func (s *Session) SelectTag(name string) {
	target := s.Tag(name)
	if target == nil || (target.selected && s.selectedCount() == 1) {
		return
	}
	for _, t := range s.tags {
		t.selected = t == target
	}
	s.EmitSignal(SignalTagSelected, target)
}

func (s *Session) selectedCount() int {
	n := 0
	for _, t := range s.tags {
		if t.selected {
			n++
		}
	}
	return n
}

func (s *Session) anyTagSelected(c *Client) bool {
	for _, t := range c.tags {
		if t.selected {
			return true
		}
	}
	return false
}
