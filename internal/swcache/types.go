package swcache

import (
	"context"
	"net/http"
	"net/url"
)

// Request destinations, mirroring the fetch destinations the manager cares
// about.
const (
	DestImage = "image"
	DestVideo = "video"
)

type Request struct {
	Method      string
	URL         *url.URL
	Destination string
}

type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// Clone deep-copies the response so cached entries never alias a body the
// caller may hold on to.
func (r *Response) Clone() *Response {
	if r == nil {
		return nil
	}

	body := make([]byte, len(r.Body))
	copy(body, r.Body)

	return &Response{
		Status: r.Status,
		Header: r.Header.Clone(),
		Body:   body,
	}
}

// Cache is one named response cache. Match returns (nil, nil) on a miss.
type Cache interface {
	Match(ctx context.Context, req *Request) (*Response, error)
	Put(ctx context.Context, req *Request, resp *Response) error
}

// Storage is the named-cache runtime primitive.
type Storage interface {
	Open(ctx context.Context, name string) (Cache, error)
	Keys(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, name string) (bool, error)
}

// Fetcher performs the actual network request.
type Fetcher interface {
	Fetch(ctx context.Context, req *Request) (*Response, error)
}
