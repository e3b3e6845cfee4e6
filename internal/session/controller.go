package session

// Controller owns the mutable session state and keeps the deep link string
// derived from it. All mutation goes through the setters; each one
// re-encodes the link immediately (replace semantics, the session is a
// single logical page and never accumulates history).
type Controller struct {
	state State
	link  string
}

// NewController decodes the given raw link exactly once and derives the
// initial canonical link from the result. Pass "" for a fresh session.
func NewController(rawLink string) *Controller {
	c := &Controller{state: Decode(rawLink)}
	c.link = EncodeAll(c.state)
	return c
}

// State returns a copy of the current session state.
func (c *Controller) State() State {
	return c.state
}

// Link returns the current deep link query string.
func (c *Controller) Link() string {
	return c.link
}

// SetQuery updates the query text. Clearing the text also resets the page
// to 1 and drops both search and page from the link.
func (c *Controller) SetQuery(query string) {
	c.state.Query = query
	if query == "" {
		c.state.Page = 1
	}
	c.link = Encode(c.state, FieldQuery)
}

// SetPage moves to the given result page. Pages below 1 clamp to 1.
func (c *Controller) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	c.state.Page = page
	c.link = Encode(c.state, FieldPage)
}

// SetDateRange applies a recency filter.
func (c *Controller) SetDateRange(dr DateRange) {
	c.state.DateRange = dr
	c.link = Encode(c.state, FieldDateRange)
}

// SetRegion applies a region filter.
func (c *Controller) SetRegion(r Region) {
	c.state.Region = r
	c.link = Encode(c.state, FieldRegion)
}

// SetLanguage applies a language filter.
func (c *Controller) SetLanguage(l Language) {
	c.state.Language = l
	c.link = Encode(c.state, FieldLanguage)
}
