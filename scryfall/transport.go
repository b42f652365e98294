package scryfall

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
)

const defaultUserAgent = "scryfall2mtga/1.0"

// CardJSON is a decoded JSON object as returned by the API.
type CardJSON = map[string]interface{}

// Getter performs a GET request and returns the status code together with
// the decoded JSON object.
type Getter interface {
	Get(link string) (int, CardJSON, error)
}

// HTTPGetter is the default Getter, performing exactly one request per call.
type HTTPGetter struct {
	UserAgent string

	client *retryablehttp.Client
}

type printfLogger LogCallbackFunc

func (l printfLogger) Printf(format string, a ...interface{}) {
	l(format, a...)
}

func noRetryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	return false, ctx.Err()
}

func NewHTTPGetter(logCallback LogCallbackFunc) *HTTPGetter {
	hg := HTTPGetter{}
	hg.UserAgent = defaultUserAgent

	client := retryablehttp.NewClient()
	client.HTTPClient = cleanhttp.DefaultClient()
	client.RetryMax = 0
	client.CheckRetry = noRetryPolicy
	// Keep the response around so that the status code can be inspected
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	client.Logger = nil
	if logCallback != nil {
		client.Logger = printfLogger(logCallback)
	}
	hg.client = client
	return &hg
}

func (hg *HTTPGetter) Get(link string) (int, CardJSON, error) {
	req, err := retryablehttp.NewRequest(http.MethodGet, link, nil)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("User-Agent", hg.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := hg.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}

	var body CardJSON
	err = decodeObject(data, &body)
	if err != nil {
		// Error responses are not guaranteed to carry a json object
		if resp.StatusCode != http.StatusOK {
			return resp.StatusCode, nil, nil
		}
		return resp.StatusCode, nil, fmt.Errorf("unmarshal error for %s, got: %s", link, string(data))
	}

	return resp.StatusCode, body, nil
}

func decodeObject(data []byte, body *CardJSON) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	err := dec.Decode(body)
	if err != nil {
		return err
	}
	if *body == nil {
		return fmt.Errorf("not a json object")
	}
	return nil
}
