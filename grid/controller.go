package grid

import (
	"context"
	"io"
	"log/slog"
	"slices"

	"golang.org/x/text/language"
)

type State int

const (
	StateLoading State = iota
	StateReady
)

func (s State) String() string {
	if s == StateReady {
		return "ready"
	}
	return "loading"
}

// Controller owns the roster state: the records, the filter criteria, the
// sort directive, the selection and the loading flag. It rebuilds the
// derived view after every change to records, criteria or directive.
//
// Controller is not safe for concurrent use. Every call is expected to come
// from one event loop; an embedding that calls it from several goroutines
// must serialise access itself.
type Controller struct {
	state     State
	records   []Record
	position  map[string]int // record id -> index in records
	criteria  Criteria
	directive Directive
	selection *Selection

	view      []Record
	viewIndex map[string]int // record id -> index in view

	sorter *Sorter
	logger *slog.Logger
}

type Option func(*Controller)

// WithLogger sets the logger that receives the submit and mark-viewed
// diagnostics. The default discards them.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithCollation sets the language used to order string columns.
func WithCollation(tag language.Tag) Option {
	return func(c *Controller) { c.sorter = NewSorter(tag) }
}

// NewController returns a controller in the loading state with an empty
// view.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		state:     StateLoading,
		position:  map[string]int{},
		selection: NewSelection(),
		view:      []Record{},
		viewIndex: map[string]int{},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.sorter == nil {
		c.sorter = NewSorter(language.English)
	}
	return c
}

// Resolve completes the load with records and moves the controller to
// ready. Only the first call has an effect.
func (c *Controller) Resolve(records []Record) bool {
	if c.state == StateReady {
		c.logger.Warn("roster already loaded, ignoring reload", "records", len(records))
		return false
	}
	c.records = slices.Clone(records)
	if c.records == nil {
		c.records = []Record{}
	}
	c.position = make(map[string]int, len(c.records))
	for i, r := range c.records {
		c.position[r.ID] = i
	}
	c.state = StateReady
	c.recompute()
	c.logger.Info("roster loaded", "records", len(c.records))
	return true
}

// Load asks source for count records and resolves with them. A source
// error is logged and resolves the controller with an empty roster.
func (c *Controller) Load(ctx context.Context, source Source, count int) error {
	records, err := source.Load(ctx, count)
	if err != nil {
		c.logger.Error("roster load failed", "error", err)
		c.Resolve(nil)
		return err
	}
	c.Resolve(records)
	return nil
}

// SetFilters replaces the criteria with a copy that has opts applied and
// clears the selection.
func (c *Controller) SetFilters(opts ...FilterOption) bool {
	if !c.ready() {
		return false
	}
	c.criteria = c.criteria.With(opts...)
	c.selection.Clear()
	c.recompute()
	return true
}

// SetSort sorts on field, flipping the direction when field is already
// the ascending sort column.
func (c *Controller) SetSort(field Field) bool {
	if !c.ready() {
		return false
	}
	c.directive = c.directive.Toggle(field)
	c.recompute()
	return true
}

// ToggleSelect flips the selection of id. Ids outside the derived view are
// ignored.
func (c *Controller) ToggleSelect(id string) bool {
	if !c.ready() {
		return false
	}
	if _, ok := c.viewIndex[id]; !ok {
		return false
	}
	c.selection.Toggle(id)
	return true
}

// ToggleSelectAll selects every row of the derived view, or clears the
// selection when all of them are already selected.
func (c *Controller) ToggleSelectAll() bool {
	if !c.ready() {
		return false
	}
	c.selection.ToggleAll(IDs(c.view))
	return true
}

// MarkViewed sets Viewed on every selected record, clears the selection and
// returns the affected ids in selection order.
func (c *Controller) MarkViewed(viewed bool) []string {
	if !c.ready() {
		return nil
	}
	ids := c.selection.IDs()
	msg := "marking viewed"
	if !viewed {
		msg = "marking unviewed"
	}
	c.logger.Info(msg, "ids", ids)

	for _, id := range ids {
		if i, ok := c.position[id]; ok {
			c.records[i].Viewed = viewed
		}
	}
	c.selection.Clear()
	c.recompute()
	return ids
}

// Submit reports the selected ids without changing any state.
func (c *Controller) Submit() []string {
	if !c.ready() {
		return nil
	}
	ids := c.selection.IDs()
	c.logger.Info("selected ids", "ids", ids)
	return ids
}

func (c *Controller) ready() bool {
	if c.state != StateReady {
		c.logger.Debug("discarding call while loading")
		return false
	}
	return true
}

func (c *Controller) recompute() {
	c.view = c.sorter.Sort(Filter(c.records, c.criteria), c.directive)
	c.viewIndex = make(map[string]int, len(c.view))
	for i, r := range c.view {
		c.viewIndex[r.ID] = i
	}
}

func (c *Controller) State() State { return c.state }

func (c *Controller) Loading() bool { return c.state == StateLoading }

// Len is the length of the derived view; Total is the full record count.
func (c *Controller) Len() int { return len(c.view) }

func (c *Controller) Total() int { return len(c.records) }

func (c *Controller) Criteria() Criteria { return c.criteria.With() }

func (c *Controller) Directive() Directive { return c.directive }

// View returns a copy of the derived view.
func (c *Controller) View() []Record { return slices.Clone(c.view) }

// At returns the row at index i of the derived view.
func (c *Controller) At(i int) (Record, bool) {
	if i < 0 || i >= len(c.view) {
		return Record{}, false
	}
	return c.view[i], true
}

// IndexOf returns the position of id in the derived view.
func (c *Controller) IndexOf(id string) (int, bool) {
	i, ok := c.viewIndex[id]
	return i, ok
}

// Record looks up a record in the full set by id.
func (c *Controller) Record(id string) (Record, bool) {
	i, ok := c.position[id]
	if !ok {
		return Record{}, false
	}
	return c.records[i], true
}

func (c *Controller) IsSelected(id string) bool { return c.selection.IsSelected(id) }

func (c *Controller) SelectedCount() int { return c.selection.Len() }

// SelectedIDs returns the selection in the order rows were selected.
func (c *Controller) SelectedIDs() []string { return c.selection.IDs() }

// AllSelected reports whether the view is non-empty and fully selected.
func (c *Controller) AllSelected() bool {
	return c.selection.AllOf(IDs(c.view))
}

// PartiallySelected is the indeterminate state of a select-all checkbox.
func (c *Controller) PartiallySelected() bool {
	return c.selection.Len() > 0 && !c.AllSelected()
}

// ViewedCount counts viewed records in the full set.
func (c *Controller) ViewedCount() int {
	n := 0
	for _, r := range c.records {
		if r.Viewed {
			n++
		}
	}
	return n
}

// Snapshot is the read-only state handed to a renderer.
type Snapshot struct {
	View      []Record
	Window    Window
	Selected  []string
	Criteria  Criteria
	Directive Directive
	Loading   bool
	Total     int
}

// Snapshot captures the current state with the window for vp.
func (c *Controller) Snapshot(vp Viewport) Snapshot {
	return Snapshot{
		View:      c.View(),
		Window:    vp.Window(len(c.view)),
		Selected:  c.selection.IDs(),
		Criteria:  c.Criteria(),
		Directive: c.directive,
		Loading:   c.Loading(),
		Total:     len(c.records),
	}
}
