package ui

import (
	"docview/internal/model"
)

// Messages for bubbletea.
type (
	// recordMapLoadedMsg is sent when the source has been read.
	recordMapLoadedMsg struct {
		rm  *model.RecordMap
		err error
	}

	// linkCopiedMsg is sent after copying a page link.
	linkCopiedMsg struct {
		url string
		err error
	}
)
