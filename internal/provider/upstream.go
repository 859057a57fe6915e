package provider

// Upstream is a verbatim upstream HTTP response, carried through the proxy
// boundary untouched: the handler forwards status and body exactly as
// received. Only transport-level failures surface as errors.
type Upstream struct {
	Status      int
	Body        []byte
	ContentType string
}
