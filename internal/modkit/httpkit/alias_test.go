package httpkit

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
)

// mkReq builds an *http.Request with an optional body
func mkReq(t *testing.T, method string, body io.Reader) *http.Request {
	t.Helper()
	req, err := http.NewRequest(method, "http://x.test/y", body)
	if err != nil {
		t.Fatalf("mkReq: %v", err)
	}
	return req
}

// run executes a Handler and returns status code and body
func run(h Handler, r *http.Request) (int, string) {
	rec := httptest.NewRecorder()
	h(rec, r)
	res := rec.Result()
	defer func() { _ = res.Body.Close() }() // explicitly ignore close error

	b, _ := io.ReadAll(res.Body)
	return rec.Code, string(b)
}

func TestAliases_SimpleConstructors(t *testing.T) {
	// just ensure they return a non-zero Response so the line is executed
	if v := reflect.ValueOf(OK("x")); v.IsZero() {
		t.Fatal("OK returned zero value")
	}
	if v := reflect.ValueOf(NoContent()); v.IsZero() {
		t.Fatal("NoContent returned zero value")
	}
	if v := reflect.ValueOf(Data("alias")); v.IsZero() {
		t.Fatal("Data returned zero value")
	}
	if v := reflect.ValueOf(Error(errors.New("boom"))); v.IsZero() {
		t.Fatal("Error returned zero value")
	}
	if v := reflect.ValueOf(List([]int{1, 2, 3}, 3, 1, 50, "c")); v.IsZero() {
		t.Fatal("List returned zero value")
	}
}

func TestHandle_PassThrough(t *testing.T) {
	// Handle should pass through the Response we return verbatim
	h := Handle(func(_ *http.Request) Response {
		return Response{Status: http.StatusAccepted, Body: "made"}
	})
	code, body := run(h, mkReq(t, http.MethodGet, nil))
	if code != http.StatusAccepted {
		t.Fatalf("expected status %d, got %d", http.StatusAccepted, code)
	}
	if !strings.Contains(body, "made") {
		t.Fatalf("expected body to contain %q, got %q", "made", body)
	}
}

func TestCall_PlainValue_OKWrap(t *testing.T) {
	h := Call(func(_ *http.Request) (any, error) {
		return map[string]string{"a": "1"}, nil
	})
	code, body := run(h, mkReq(t, http.MethodGet, nil))
	if code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", code)
	}
	if !strings.Contains(body, `"a":"1"`) {
		t.Fatalf("expected body to contain a=1, got %q", body)
	}
}

func TestCall_ResponsePassthrough(t *testing.T) {
	want := Response{Status: http.StatusAccepted, Body: "z"}
	h := Call(func(_ *http.Request) (any, error) {
		return want, nil
	})
	code, body := run(h, mkReq(t, http.MethodGet, nil))
	if code != http.StatusAccepted {
		t.Fatalf("expected 202 Accepted, got %d", code)
	}
	if !strings.Contains(body, "z") {
		t.Fatalf("expected body to contain %q, got %q", "z", body)
	}
}

func TestCall_ErrorPath(t *testing.T) {
	h := Call(func(_ *http.Request) (any, error) {
		return nil, errors.New("nah")
	})
	code, body := run(h, mkReq(t, http.MethodGet, nil))
	if code < 400 {
		t.Fatalf("expected error status >=400, got %d", code)
	}
	if len(body) == 0 {
		t.Fatal("expected error body, got empty")
	}
}

