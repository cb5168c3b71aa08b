package lawyer

import "fmt"

// SelectorError reports a selector value that is not among its options.
type SelectorError struct {
	Selector string
	Value    string
	Allowed  []string
}

func (e *SelectorError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Selector, e.Value)
}
