package response

import (
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Link is a typed web link attached to a response.
type Link struct {
	URI *url.URL
	Rel string
}

// Response is an immutable HTTP response value: a status, an optional
// entity, and header metadata. Build one through a Builder.
type Response struct {
	status  StatusType
	entity  any
	headers http.Header
	links   []Link
}

// StatusCode returns the numeric status code.
func (r *Response) StatusCode() int { return r.status.Code() }

// StatusInfo returns the full status contract.
func (r *Response) StatusInfo() StatusType { return r.status }

// Entity returns the response entity, or nil.
func (r *Response) Entity() any { return r.entity }

// HasEntity reports whether an entity is present.
func (r *Response) HasEntity() bool { return r.entity != nil }

// Headers returns a copy of the response headers.
func (r *Response) Headers() http.Header {
	return r.headers.Clone()
}

// HeaderString returns the values of a header joined with ",", or "" when
// the header is absent.
func (r *Response) HeaderString(name string) string {
	values := r.headers.Values(name)
	return strings.Join(values, ",")
}

// AllowedMethods returns the methods declared by the Allow header.
func (r *Response) AllowedMethods() []string {
	methods := []string{}
	for _, v := range r.headers.Values("Allow") {
		for _, m := range strings.Split(v, ",") {
			if m = strings.TrimSpace(m); m != "" {
				methods = append(methods, strings.ToUpper(m))
			}
		}
	}
	return methods
}

// Location returns the parsed Location header, or nil when absent or
// unparsable.
func (r *Response) Location() *url.URL {
	loc := r.headers.Get("Location")
	if loc == "" {
		return nil
	}
	u, err := url.Parse(loc)
	if err != nil {
		return nil
	}
	return u
}

// MediaType returns the Content-Type header, or "".
func (r *Response) MediaType() string {
	return r.headers.Get("Content-Type")
}

// Language returns the Content-Language header, or "".
func (r *Response) Language() string {
	return r.headers.Get("Content-Language")
}

// EntityTag returns the ETag header, or "".
func (r *Response) EntityTag() string {
	return r.headers.Get("ETag")
}

// Date returns the parsed Date header.
func (r *Response) Date() (time.Time, bool) {
	return r.timeHeader("Date")
}

// LastModified returns the parsed Last-Modified header.
func (r *Response) LastModified() (time.Time, bool) {
	return r.timeHeader("Last-Modified")
}

// Expires returns the parsed Expires header.
func (r *Response) Expires() (time.Time, bool) {
	return r.timeHeader("Expires")
}

func (r *Response) timeHeader(name string) (time.Time, bool) {
	v := r.headers.Get(name)
	if v == "" {
		return time.Time{}, false
	}
	t, err := http.ParseTime(v)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Links returns the typed links attached to the response.
func (r *Response) Links() []Link {
	return append([]Link{}, r.links...)
}

// Link returns the link with the given relation.
func (r *Response) Link(rel string) (Link, bool) {
	for _, l := range r.links {
		if l.Rel == rel {
			return l, true
		}
	}
	return Link{}, false
}

// HasLink reports whether a link with the given relation is present.
func (r *Response) HasLink(rel string) bool {
	_, ok := r.Link(rel)
	return ok
}
