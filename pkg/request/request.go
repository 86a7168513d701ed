package request

import (
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
)

// GeneralClient general purpose HTTP client
var GeneralClient Client = HTTPClient{}

// Response a request's response or error
type Response struct {
	Err      error
	Response *http.Response
}

// Client request client
type Client interface {
	Request(method, target string, body io.Reader, opts ...Option) *Response
}

// HTTPClient implements Client with net/http
type HTTPClient struct {
}

// Request sends an HTTP request
func (c HTTPClient) Request(method, target string, body io.Reader, opts ...Option) *Response {
	// apply extra options
	options := newDefaultOption()
	for _, o := range opts {
		o.apply(options)
	}

	client := &http.Client{Timeout: options.timeout}

	// nil out body when content length is explicitly zero
	if options.contentLength == 0 {
		body = nil
	}

	var (
		req *http.Request
		err error
	)
	if options.ctx != nil {
		req, err = http.NewRequestWithContext(options.ctx, method, target, body)
	} else {
		req, err = http.NewRequest(method, target, body)
	}
	if err != nil {
		return &Response{Err: err}
	}

	req.Header = options.header
	if options.contentLength != -1 {
		req.ContentLength = options.contentLength
	}

	resp, err := client.Do(req)
	if err != nil {
		return &Response{Err: err}
	}

	return &Response{Err: nil, Response: resp}
}

// GetResponse checks the response and reads the body
func (resp *Response) GetResponse() (string, error) {
	if resp.Err != nil {
		return "", resp.Err
	}
	respBody, err := ioutil.ReadAll(resp.Response.Body)
	_ = resp.Response.Body.Close()

	return string(respBody), err
}

// CheckHTTPResponse checks the response HTTP status code
func (resp *Response) CheckHTTPResponse(status int) *Response {
	if resp.Err != nil {
		return resp
	}

	if resp.Response.StatusCode != status {
		resp.Err = fmt.Errorf("remote returned unexpected HTTP status %d", resp.Response.StatusCode)
	}
	return resp
}

// GetBody checks the response and hands out the body stream
func (resp *Response) GetBody() (io.ReadCloser, error) {
	if resp.Err != nil {
		return nil, resp.Err
	}
	return resp.Response.Body, nil
}
