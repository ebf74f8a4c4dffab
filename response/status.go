package response

import "fmt"

// Family is the status-code bucket an HTTP status belongs to.
type Family int

const (
	// Other covers codes outside the 1xx-5xx range.
	Other Family = iota
	// Informational is the 1xx family.
	Informational
	// Successful is the 2xx family.
	Successful
	// Redirection is the 3xx family.
	Redirection
	// ClientError is the 4xx family.
	ClientError
	// ServerError is the 5xx family.
	ServerError
)

// FamilyOf buckets a numeric status code by integer division by 100.
func FamilyOf(code int) Family {
	switch code / 100 {
	case 1:
		return Informational
	case 2:
		return Successful
	case 3:
		return Redirection
	case 4:
		return ClientError
	case 5:
		return ServerError
	default:
		return Other
	}
}

// String returns the family name.
func (f Family) String() string {
	switch f {
	case Informational:
		return "Informational"
	case Successful:
		return "Successful"
	case Redirection:
		return "Redirection"
	case ClientError:
		return "Client Error"
	case ServerError:
		return "Server Error"
	default:
		return "Other"
	}
}

// StatusType is the contract for a response status: a numeric code, its
// family, and a reason phrase. Status covers the common codes; custom
// statuses implement this via NewStatusType.
type StatusType interface {
	Code() int
	Family() Family
	Reason() string
}

// Status is the fixed enumeration of common HTTP status codes.
type Status int

const (
	StatusOK                           Status = 200
	StatusCreated                      Status = 201
	StatusAccepted                     Status = 202
	StatusNoContent                    Status = 204
	StatusResetContent                 Status = 205
	StatusPartialContent               Status = 206
	StatusMovedPermanently             Status = 301
	StatusFound                        Status = 302
	StatusSeeOther                     Status = 303
	StatusNotModified                  Status = 304
	StatusUseProxy                     Status = 305
	StatusTemporaryRedirect            Status = 307
	StatusBadRequest                   Status = 400
	StatusUnauthorized                 Status = 401
	StatusPaymentRequired              Status = 402
	StatusForbidden                    Status = 403
	StatusNotFound                     Status = 404
	StatusMethodNotAllowed             Status = 405
	StatusNotAcceptable                Status = 406
	StatusProxyAuthenticationRequired  Status = 407
	StatusRequestTimeout               Status = 408
	StatusConflict                     Status = 409
	StatusGone                         Status = 410
	StatusLengthRequired               Status = 411
	StatusPreconditionFailed           Status = 412
	StatusRequestEntityTooLarge        Status = 413
	StatusRequestURITooLong            Status = 414
	StatusUnsupportedMediaType         Status = 415
	StatusRequestedRangeNotSatisfiable Status = 416
	StatusExpectationFailed            Status = 417
	StatusInternalServerError          Status = 500
	StatusNotImplemented               Status = 501
	StatusBadGateway                   Status = 502
	StatusServiceUnavailable           Status = 503
	StatusGatewayTimeout               Status = 504
	StatusHTTPVersionNotSupported      Status = 505
)

var statusReasons = map[Status]string{
	StatusOK:                           "OK",
	StatusCreated:                      "Created",
	StatusAccepted:                     "Accepted",
	StatusNoContent:                    "No Content",
	StatusResetContent:                 "Reset Content",
	StatusPartialContent:               "Partial Content",
	StatusMovedPermanently:             "Moved Permanently",
	StatusFound:                        "Found",
	StatusSeeOther:                     "See Other",
	StatusNotModified:                  "Not Modified",
	StatusUseProxy:                     "Use Proxy",
	StatusTemporaryRedirect:            "Temporary Redirect",
	StatusBadRequest:                   "Bad Request",
	StatusUnauthorized:                 "Unauthorized",
	StatusPaymentRequired:              "Payment Required",
	StatusForbidden:                    "Forbidden",
	StatusNotFound:                     "Not Found",
	StatusMethodNotAllowed:             "Method Not Allowed",
	StatusNotAcceptable:                "Not Acceptable",
	StatusProxyAuthenticationRequired:  "Proxy Authentication Required",
	StatusRequestTimeout:               "Request Timeout",
	StatusConflict:                     "Conflict",
	StatusGone:                         "Gone",
	StatusLengthRequired:               "Length Required",
	StatusPreconditionFailed:           "Precondition Failed",
	StatusRequestEntityTooLarge:        "Request Entity Too Large",
	StatusRequestURITooLong:            "Request-URI Too Long",
	StatusUnsupportedMediaType:         "Unsupported Media Type",
	StatusRequestedRangeNotSatisfiable: "Requested Range Not Satisfiable",
	StatusExpectationFailed:            "Expectation Failed",
	StatusInternalServerError:          "Internal Server Error",
	StatusNotImplemented:               "Not Implemented",
	StatusBadGateway:                   "Bad Gateway",
	StatusServiceUnavailable:           "Service Unavailable",
	StatusGatewayTimeout:               "Gateway Timeout",
	StatusHTTPVersionNotSupported:      "HTTP Version Not Supported",
}

// FromCode returns the enumerated Status for a numeric code, or false when
// the code is not part of the enumeration.
func FromCode(code int) (Status, bool) {
	s := Status(code)
	_, ok := statusReasons[s]
	return s, ok
}

// Code returns the numeric status code.
func (s Status) Code() int { return int(s) }

// Family returns the status family derived from the code.
func (s Status) Family() Family { return FamilyOf(int(s)) }

// Reason returns the reason phrase.
func (s Status) Reason() string { return statusReasons[s] }

// String returns the reason phrase.
func (s Status) String() string { return s.Reason() }

var _ StatusType = StatusOK

// customStatus is a StatusType outside the fixed enumeration.
type customStatus struct {
	code   int
	reason string
}

// NewStatusType creates a StatusType for an arbitrary code. A reason of ""
// falls back to the enumerated phrase when the code has one.
func NewStatusType(code int, reason string) StatusType {
	if reason == "" {
		if s, ok := FromCode(code); ok {
			reason = s.Reason()
		}
	}
	return customStatus{code: code, reason: reason}
}

func (c customStatus) Code() int      { return c.code }
func (c customStatus) Family() Family { return FamilyOf(c.code) }
func (c customStatus) Reason() string { return c.reason }
func (c customStatus) String() string {
	return fmt.Sprintf("%d %s", c.code, c.reason)
}
