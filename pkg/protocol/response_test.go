package protocol

import "testing"

func TestText(t *testing.T) {
	resp := Text("Hello Ada!")
	if resp.StatusCode != StatusOK {
		t.Errorf("StatusCode = %d, want 200", resp.StatusCode)
	}
	if got := resp.Headers.Get("content-type"); got != "text/plain" {
		t.Errorf("Content-Type = %q, want text/plain", got)
	}
	if string(resp.Body) != "Hello Ada!" {
		t.Errorf("Body = %q, want Hello Ada!", resp.Body)
	}
}

func TestHTMLAndJSON(t *testing.T) {
	if got := HTML("<p>hi</p>").Headers.Get("Content-Type"); got != "text/html" {
		t.Errorf("HTML Content-Type = %q, want text/html", got)
	}
	if got := JSON(`{"msg":"hello world"}`).Headers.Get("Content-Type"); got != "application/json" {
		t.Errorf("JSON Content-Type = %q, want application/json", got)
	}
}

func TestTextOrNotFound(t *testing.T) {
	resp := TextOrNotFound("Hello Ada!", true)
	if resp.StatusCode != StatusOK || string(resp.Body) != "Hello Ada!" {
		t.Errorf("present value: got (%d, %q), want (200, Hello Ada!)", resp.StatusCode, resp.Body)
	}

	resp = TextOrNotFound("ignored", false)
	if resp.StatusCode != StatusNotFound {
		t.Errorf("absent value: StatusCode = %d, want 404", resp.StatusCode)
	}
	if len(resp.Body) != 0 {
		t.Errorf("absent value: Body = %q, want empty", resp.Body)
	}
}

func TestReasonPhrase(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{200, "OK"},
		{400, "Bad Request"},
		{404, "Not Found"},
		{500, "Internal Server Error"},
		{501, "Not Implemented"},
		{299, "Status"},
	}
	for _, tt := range tests {
		if got := ReasonPhrase(tt.code); got != tt.want {
			t.Errorf("ReasonPhrase(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestHeaderCaseInsensitive(t *testing.T) {
	h := Header{}
	h.Set("content-type", "text/plain")

	if got := h.Get("Content-Type"); got != "text/plain" {
		t.Errorf("Get(Content-Type) = %q, want text/plain", got)
	}
	if got := h.Get("CONTENT-TYPE"); got != "text/plain" {
		t.Errorf("Get(CONTENT-TYPE) = %q, want text/plain", got)
	}
	if !h.Has("Content-type") {
		t.Error("Has(Content-type) = false, want true")
	}

	h.Set("Content-Type", "text/html")
	if len(h) != 1 {
		t.Errorf("len(header) = %d, want 1 after same-name Set", len(h))
	}

	h.Del("CONTENT-TYPE")
	if h.Has("Content-Type") {
		t.Error("Has() = true after Del")
	}
}

func TestParams(t *testing.T) {
	var p Params
	p.Add("name", "Ada")
	p.Add("tone", "warm")

	if v, ok := p.Get("name"); !ok || v != "Ada" {
		t.Errorf("Get(name) = (%q, %v), want (Ada, true)", v, ok)
	}
	if _, ok := p.Get("missing"); ok {
		t.Error("Get(missing) = true, want false")
	}
	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}

	names := p.Names()
	if len(names) != 2 || names[0] != "name" || names[1] != "tone" {
		t.Errorf("Names() = %v, want [name tone] in pattern order", names)
	}

	p.Reset()
	if p.Len() != 0 {
		t.Errorf("Len() = %d after Reset, want 0", p.Len())
	}
}
