package ui

// clipboardCopiedMsg reports the outcome of copying a product link.
type clipboardCopiedMsg struct {
	URL string
	Err error
}
