package catalog

import (
	"errors"
	"fmt"
)

// ErrHTMLResponse indicates the server returned an HTML document where JSON
// was expected. This happens when a reverse proxy or tunnel gateway
// intercepts the request, so it is surfaced as a transport failure rather
// than a parse error.
var ErrHTMLResponse = errors.New("received HTML instead of JSON (proxy or gateway interference)")

// APIError represents a non-success response from the catalog or auth API.
type APIError struct {
	Status  int
	Message string
}

func (e APIError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.Status, e.Message)
}

// NotFoundError indicates the requested resource does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// IsNotFound reports whether err represents a missing resource.
func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}
