package httpkit

import (
	"net/http"

	phttp "econlens/internal/platform/net/http"
)

// Get registers a no-body handler under GET
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
}

// Post registers a no-body handler under POST
func Post(r Router, path string, h func(*http.Request) (any, error)) {
	r.Post(path, Call(h))
}

// PostJSON mounts a bound and validated JSON handler under POST
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, JSON(h))
}

// PostFile mounts a JSON-in, file-out handler under POST
func PostFile[T any](r Router, path string, h func(*http.Request, T) (File, error)) {
	phttp.PostFile(r, path, h)
}
