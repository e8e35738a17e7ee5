package ui

// TaskSource is the read side of the task store.
type TaskSource interface {
	Count() int
	ItemAt(index int) (string, error)
}

// ListPresenter maps a TaskSource to rows. It keeps no state of its own:
// every call reads the source again.
type ListPresenter struct {
	source TaskSource
}

// NewListPresenter creates a presenter over source.
func NewListPresenter(source TaskSource) *ListPresenter {
	return &ListPresenter{source: source}
}

// RowCount returns the number of task rows.
func (p *ListPresenter) RowCount() int {
	return p.source.Count()
}

// RowContent returns the label of row index. It fails with
// tasks.ErrOutOfRange outside [0, RowCount).
func (p *ListPresenter) RowContent(index int) (string, error) {
	return p.source.ItemAt(index)
}

// RowHeight returns the fixed height of every row, in layout units.
func (p *ListPresenter) RowHeight() float64 {
	return RowHeightUnits
}

// HeaderHeight returns the fixed height of the header, in layout units.
func (p *ListPresenter) HeaderHeight() float64 {
	return HeaderHeightUnits
}
