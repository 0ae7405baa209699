package components

// NavigateMsg asks the application to open a page.
type NavigateMsg struct {
	BlockID string
}

// OpenSearchMsg asks the application to open the search dialog.
type OpenSearchMsg struct{}
