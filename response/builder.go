package response

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kbukum/servicekit/errors"
)

// Builder assembles an immutable Response. Methods chain; the first invalid
// argument is recorded and surfaced from Build. The zero Builder is not
// usable, start with NewBuilder or a convenience constructor.
type Builder struct {
	status  StatusType
	entity  any
	headers http.Header
	links   []Link
	err     error
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{headers: make(http.Header)}
}

// FromResponse opens a builder seeded with an existing response's status,
// entity, headers, and links.
func FromResponse(r *Response) *Builder {
	b := NewBuilder()
	b.status = r.status
	b.entity = r.entity
	b.headers = r.headers.Clone()
	b.links = append(b.links, r.links...)
	return b
}

// Status sets the status from a numeric code. Codes outside 100-599 are an
// invalid-argument failure.
func (b *Builder) Status(code int) *Builder {
	if code < 100 || code > 599 {
		return b.fail(errors.InvalidInput("status", fmt.Sprintf("status code %d outside 100-599", code)))
	}
	if s, ok := FromCode(code); ok {
		b.status = s
	} else {
		b.status = NewStatusType(code, "")
	}
	return b
}

// StatusInfo sets the status from a StatusType. A nil status is an
// invalid-argument failure.
func (b *Builder) StatusInfo(status StatusType) *Builder {
	if status == nil {
		return b.fail(errors.InvalidInput("status", "status must not be nil"))
	}
	if code := status.Code(); code < 100 || code > 599 {
		return b.fail(errors.InvalidInput("status", fmt.Sprintf("status code %d outside 100-599", code)))
	}
	b.status = status
	return b
}

// Entity sets the response entity.
func (b *Builder) Entity(entity any) *Builder {
	b.entity = entity
	return b
}

// Header adds a header value. An empty value removes the header.
func (b *Builder) Header(name string, value string) *Builder {
	if value == "" {
		b.headers.Del(name)
		return b
	}
	b.headers.Add(name, value)
	return b
}

// ContentType sets the Content-Type header.
func (b *Builder) ContentType(mediaType string) *Builder {
	b.headers.Set("Content-Type", mediaType)
	return b
}

// Language sets the Content-Language header.
func (b *Builder) Language(language string) *Builder {
	b.headers.Set("Content-Language", language)
	return b
}

// Encoding sets the Content-Encoding header.
func (b *Builder) Encoding(encoding string) *Builder {
	b.headers.Set("Content-Encoding", encoding)
	return b
}

// Allow sets the Allow header from the given methods.
func (b *Builder) Allow(methods ...string) *Builder {
	if len(methods) == 0 {
		b.headers.Del("Allow")
		return b
	}
	upper := make([]string, len(methods))
	for i, m := range methods {
		upper[i] = strings.ToUpper(m)
	}
	b.headers.Set("Allow", strings.Join(upper, ", "))
	return b
}

// Location sets the Location header. An unparsable URI is an
// invalid-argument failure.
func (b *Builder) Location(uri string) *Builder {
	if _, err := url.Parse(uri); err != nil {
		return b.fail(errors.InvalidInput("location", fmt.Sprintf("invalid location %q", uri)))
	}
	b.headers.Set("Location", uri)
	return b
}

// ContentLocation sets the Content-Location header.
func (b *Builder) ContentLocation(uri string) *Builder {
	if _, err := url.Parse(uri); err != nil {
		return b.fail(errors.InvalidInput("content_location", fmt.Sprintf("invalid content location %q", uri)))
	}
	b.headers.Set("Content-Location", uri)
	return b
}

// Tag sets the ETag header.
func (b *Builder) Tag(tag string) *Builder {
	if tag == "" {
		b.headers.Del("ETag")
		return b
	}
	if !strings.HasPrefix(tag, `"`) && !strings.HasPrefix(tag, `W/`) {
		tag = `"` + tag + `"`
	}
	b.headers.Set("ETag", tag)
	return b
}

// Expires sets the Expires header.
func (b *Builder) Expires(t time.Time) *Builder {
	b.headers.Set("Expires", t.UTC().Format(http.TimeFormat))
	return b
}

// LastModified sets the Last-Modified header.
func (b *Builder) LastModified(t time.Time) *Builder {
	b.headers.Set("Last-Modified", t.UTC().Format(http.TimeFormat))
	return b
}

// Link attaches a typed link and its Link header. An unparsable URI is an
// invalid-argument failure.
func (b *Builder) Link(uri, rel string) *Builder {
	u, err := url.Parse(uri)
	if err != nil {
		return b.fail(errors.InvalidInput("link", fmt.Sprintf("invalid link %q", uri)))
	}
	b.links = append(b.links, Link{URI: u, Rel: rel})
	b.headers.Add("Link", fmt.Sprintf(`<%s>; rel=%q`, uri, rel))
	return b
}

// Build produces the immutable Response. A builder with no status, or one
// that has recorded an invalid argument, fails.
func (b *Builder) Build() (*Response, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.status == nil {
		return nil, errors.MissingField("status")
	}
	return &Response{
		status:  b.status,
		entity:  b.entity,
		headers: b.headers.Clone(),
		links:   append([]Link{}, b.links...),
	}, nil
}

func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// --- Convenience constructors ---

// OK starts a 200 builder, optionally with an entity.
func OK(entity ...any) *Builder {
	b := NewBuilder().Status(int(StatusOK))
	if len(entity) > 0 {
		b.Entity(entity[0])
	}
	return b
}

// Created starts a 201 builder with a Location header.
func Created(location string) *Builder {
	return NewBuilder().Status(int(StatusCreated)).Location(location)
}

// Accepted starts a 202 builder, optionally with an entity.
func Accepted(entity ...any) *Builder {
	b := NewBuilder().Status(int(StatusAccepted))
	if len(entity) > 0 {
		b.Entity(entity[0])
	}
	return b
}

// NoContent starts a 204 builder.
func NoContent() *Builder {
	return NewBuilder().Status(int(StatusNoContent))
}

// NotModified starts a 304 builder, optionally with an entity tag.
func NotModified(tag ...string) *Builder {
	b := NewBuilder().Status(int(StatusNotModified))
	if len(tag) > 0 {
		b.Tag(tag[0])
	}
	return b
}

// SeeOther starts a 303 builder with a Location header.
func SeeOther(location string) *Builder {
	return NewBuilder().Status(int(StatusSeeOther)).Location(location)
}

// TemporaryRedirect starts a 307 builder with a Location header.
func TemporaryRedirect(location string) *Builder {
	return NewBuilder().Status(int(StatusTemporaryRedirect)).Location(location)
}

// NotAcceptable starts a 406 builder.
func NotAcceptable() *Builder {
	return NewBuilder().Status(int(StatusNotAcceptable))
}

// InternalServerError starts a 500 builder.
func InternalServerError() *Builder {
	return NewBuilder().Status(int(StatusInternalServerError))
}
