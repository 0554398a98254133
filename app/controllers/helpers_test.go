package controllers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
)

func jsonRequest(method, path, payload string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return req
}

func formBody(values string) io.Reader {
	return strings.NewReader(values)
}
