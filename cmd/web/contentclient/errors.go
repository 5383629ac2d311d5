package contentclient

import "fmt"

// ErrorKind classifies why a fetch produced no data.
type ErrorKind string

const (
	KindNetwork         ErrorKind = "network"
	KindStatus          ErrorKind = "status"
	KindDecode          ErrorKind = "decode"
	KindInvalidResource ErrorKind = "invalid_resource"
)

// FetchError describes a failed read. Err is the underlying cause, if any.
type FetchError struct {
	Kind       ErrorKind
	Resource   Resource
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindInvalidResource:
		return fmt.Sprintf("contentclient: unknown resource %q", string(e.Resource))
	case KindStatus:
		if e.Err != nil {
			return fmt.Sprintf("contentclient: fetch %s: status=%d %v", e.Resource, e.StatusCode, e.Err)
		}
		return fmt.Sprintf("contentclient: fetch %s: status=%d", e.Resource, e.StatusCode)
	}
	return fmt.Sprintf("contentclient: fetch %s: %s: %v", e.Resource, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
