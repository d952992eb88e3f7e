package bind

import (
	"net/http/httptest"
	"strings"
	"testing"

	perr "github.com/kentzhang-geek/zoekt.nvim/internal/platform/errors"
	kit "github.com/kentzhang-geek/zoekt.nvim/internal/platform/testkit"
)

type payload struct {
	Q    string `json:"Q" validate:"required"`
	Max  int    `json:"Max" validate:"min=0"`
	Addr string `json:"Addr,omitempty" validate:"omitempty,url"`
}

func TestParseJSONHappyPath(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/search", strings.NewReader(`{"Q":"func main","Max":50}`))
	got, err := ParseJSON[payload](r)
	kit.MustNoErr(t, err)
	if got.Q != "func main" || got.Max != 50 {
		t.Fatalf("parsed = %+v", got)
	}
}

func TestParseJSONEmptyBody(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/search", strings.NewReader(""))
	_, err := ParseJSON[payload](r)
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("empty body err = %v", err)
	}
}

func TestParseJSONBadJSON(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/search", strings.NewReader(`{"Q":`))
	_, err := ParseJSON[payload](r)
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("bad json err = %v", err)
	}
}

func TestParseJSONUnknownField(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/search", strings.NewReader(`{"Q":"x","Nope":1}`))
	_, err := ParseJSON[payload](r)
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("unknown field err = %v", err)
	}
}

func TestParseJSONTrailingData(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/search", strings.NewReader(`{"Q":"x"}{"Q":"y"}`))
	_, err := ParseJSON[payload](r)
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("trailing data err = %v", err)
	}
}

func TestParseJSONValidation(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/search", strings.NewReader(`{"Q":""}`))
	_, err := ParseJSON[payload](r)
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("validation err = %v", err)
	}
	if e, ok := perr.As(err); !ok || e.Field() != "Q" {
		t.Fatalf("field not attached: %v", err)
	}
}

func TestStructValidatesURL(t *testing.T) {
	err := Struct(payload{Q: "x", Addr: "not a url"})
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("url validation err = %v", err)
	}
	kit.MustNoErr(t, Struct(payload{Q: "x", Addr: "http://localhost:6070"}))
}
