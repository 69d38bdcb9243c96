package port

import "billdesk/internal/document"

// DocumentRenderer draws a preview as a printable file.
type DocumentRenderer interface {
	Render(p *document.Preview) ([]byte, error)
}
