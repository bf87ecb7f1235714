// Package quote defines the quote domain entity.
package quote

// Quote is a stored quotation. The JSON tags define the on-disk format
// and must not change: the data file is shared with older installs.
type Quote struct {
	Author string `json:"author"`
	Text   string `json:"quote"`
}
