package api

import (
	"errors"
	"net/http"
	"testing"
)

func respWithStatus(status int) *http.Response {
	return &http.Response{StatusCode: status}
}

func TestClassifyStatusTable(t *testing.T) {
	cases := []struct {
		status int
		want   Kind
	}{
		{200, KindSuccess},
		{201, KindSuccess},
		{204, KindSuccess},
		{400, KindValidationError},
		{401, KindSessionExpired},
		{403, KindForbidden},
		{404, KindNotFound},
		{422, KindValidationError},
		{429, KindRateLimited},
		{500, KindServerError},
		{502, KindServerError},
		{503, KindServerError},
		{504, KindServerError},
		{418, KindUnknown},
	}
	for _, tc := range cases {
		out := Classify(respWithStatus(tc.status), nil, nil)
		if out.Kind != tc.want {
			t.Fatalf("status %d classified as %s, want %s", tc.status, out.Kind, tc.want)
		}
	}
}

func TestClassifyOnlyUnauthorizedMeansExpiry(t *testing.T) {
	for status := 200; status < 600; status++ {
		out := Classify(respWithStatus(status), nil, nil)
		if (out.Kind == KindSessionExpired) != (status == 401) {
			t.Fatalf("status %d classified as %s", status, out.Kind)
		}
	}
}

func TestClassifyValidationFields(t *testing.T) {
	body := []byte(`{"errors":{"nome":"campo obrigatório","tipo":"campo obrigatório"}}`)
	out := Classify(respWithStatus(400), body, nil)
	if out.Kind != KindValidationError {
		t.Fatalf("kind = %s", out.Kind)
	}
	if out.Fields["nome"] != "campo obrigatório" {
		t.Fatalf("fields = %v", out.Fields)
	}

	// 422 stays generic: no field map even when a body is present.
	out = Classify(respWithStatus(422), body, nil)
	if out.Fields != nil {
		t.Fatalf("422 carried fields %v, want none", out.Fields)
	}
}

func TestClassifyTransportErrorIsNetwork(t *testing.T) {
	out := Classify(nil, nil, errors.New("dial tcp: connection refused"))
	if out.Kind != KindNetworkError {
		t.Fatalf("kind = %s, want network_error", out.Kind)
	}
}

func TestClassifyCarriesBackendMessage(t *testing.T) {
	out := Classify(respWithStatus(418), []byte(`{"message":"sou um bule"}`), nil)
	if out.Message != "sou um bule" {
		t.Fatalf("message = %q", out.Message)
	}
}
