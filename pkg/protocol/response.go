package protocol

// Status codes used by the server core.
const (
	StatusOK                  = 200
	StatusBadRequest          = 400
	StatusNotFound            = 404
	StatusInternalServerError = 500
	StatusNotImplemented      = 501
)

// reasonPhrases maps status codes to their reason phrase on the status
// line. Unknown codes serialize with a generic phrase.
var reasonPhrases = map[int]string{
	StatusOK:                  "OK",
	201:                       "Created",
	204:                       "No Content",
	301:                       "Moved Permanently",
	302:                       "Found",
	StatusBadRequest:          "Bad Request",
	401:                       "Unauthorized",
	403:                       "Forbidden",
	StatusNotFound:            "Not Found",
	405:                       "Method Not Allowed",
	StatusInternalServerError: "Internal Server Error",
	StatusNotImplemented:      "Not Implemented",
}

// ReasonPhrase returns the reason phrase for a status code.
func ReasonPhrase(code int) string {
	if phrase, ok := reasonPhrases[code]; ok {
		return phrase
	}
	return "Status"
}

// Response is a handler's output: status, headers, body. A Response is
// built by a handler or by the dispatch layer on error, serialized
// once, and discarded.
type Response struct {
	StatusCode int
	Headers    Header
	Body       []byte
}

// NewResponse builds a Response from explicit parts.
func NewResponse(status int, headers Header, body []byte) Response {
	if headers == nil {
		headers = Header{}
	}
	return Response{StatusCode: status, Headers: headers, Body: body}
}

// Status returns an empty Response with the given status code.
func Status(code int) Response {
	return Response{StatusCode: code, Headers: Header{}}
}

// Text returns a 200 response carrying body as text/plain. The
// conversion is total: any string yields a valid response, so handlers
// can return bare text without error handling.
func Text(body string) Response {
	r := Response{StatusCode: StatusOK, Headers: Header{}, Body: []byte(body)}
	r.Headers.Set("Content-Type", "text/plain")
	return r
}

// HTML returns a 200 response carrying body as text/html.
func HTML(body string) Response {
	r := Response{StatusCode: StatusOK, Headers: Header{}, Body: []byte(body)}
	r.Headers.Set("Content-Type", "text/html")
	return r
}

// JSON returns a 200 response carrying body as application/json. The
// body is taken as already-encoded JSON text.
func JSON(body string) Response {
	r := Response{StatusCode: StatusOK, Headers: Header{}, Body: []byte(body)}
	r.Headers.Set("Content-Type", "application/json")
	return r
}

// TextOrNotFound converts an optional string into a Response: the value
// as Text when ok is true, otherwise a 404 with an empty body. Pairs
// directly with Params.Get:
//
//	func greet(req *protocol.Request) protocol.Response {
//		name, ok := req.Params().Get("name")
//		return protocol.TextOrNotFound("Hello "+name+"!", ok)
//	}
func TextOrNotFound(value string, ok bool) Response {
	if !ok {
		return Status(StatusNotFound)
	}
	return Text(value)
}

// NotFound returns a 404 response with an empty body.
func NotFound() Response {
	return Status(StatusNotFound)
}
