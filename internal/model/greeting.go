package model

// Greeting is the response of the greeting endpoint.  Name is echoed
// verbatim from the request path; no normalization is applied.
type Greeting struct {
    Message string `json:"message"`
    Name    string `json:"name"`
}
