package appwrite

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/sangkips/laundrypro-api/pkg/apperror"
)

// query is an Appwrite JSON query, sent as a queries[] parameter
type query struct {
	Method    string        `json:"method"`
	Attribute string        `json:"attribute,omitempty"`
	Values    []interface{} `json:"values,omitempty"`
}

func orderDesc(attribute string) query {
	return query{Method: "orderDesc", Attribute: attribute}
}

func limit(n int) query {
	return query{Method: "limit", Values: []interface{}{n}}
}

type documentList[T any] struct {
	Total     int `json:"total"`
	Documents []T `json:"documents"`
}

type createRequest struct {
	DocumentID string      `json:"documentId"`
	Data       interface{} `json:"data"`
}

type updateRequest struct {
	Data map[string]interface{} `json:"data"`
}

// errorBody is the error payload returned by the Appwrite API
type errorBody struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
	Type    string `json:"type"`
}

type client struct {
	endpoint string
	project  string
	apiKey   string
	database string
	http     *http.Client
}

func (c *client) documentsURL(collection, id string, queries []query) (string, error) {
	u := fmt.Sprintf("%s/databases/%s/collections/%s/documents",
		strings.TrimRight(c.endpoint, "/"), url.PathEscape(c.database), url.PathEscape(collection))
	if id != "" {
		u += "/" + url.PathEscape(id)
	}
	if len(queries) == 0 {
		return u, nil
	}

	values := url.Values{}
	for _, q := range queries {
		encoded, err := json.Marshal(q)
		if err != nil {
			return "", err
		}
		values.Add("queries[]", string(encoded))
	}
	return u + "?" + values.Encode(), nil
}

// do sends one request and decodes the response into out when out is non-nil
func (c *client) do(ctx context.Context, op, method, collection, id string, queries []query, body, out interface{}) error {
	target, err := c.documentsURL(collection, id, queries)
	if err != nil {
		return c.fail(op, apperror.KindRejected, err)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return c.fail(op, apperror.KindRejected, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return c.fail(op, apperror.KindRejected, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Appwrite-Project", c.project)
	if c.apiKey != "" {
		req.Header.Set("X-Appwrite-Key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return c.fail(op, apperror.KindUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.fail(op, apperror.KindUnavailable, err)
	}

	if resp.StatusCode >= 300 {
		return c.fail(op, statusKind(resp.StatusCode), apiError(resp.StatusCode, data))
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return c.fail(op, apperror.KindCorrupt, err)
	}
	return nil
}

func (c *client) fail(op string, kind apperror.Kind, err error) error {
	log.Printf("[appwrite] %s failed (%s): %v", op, kind, err)
	return apperror.NewStoreError(BackendName, op, kind, err)
}

func statusKind(status int) apperror.Kind {
	switch {
	case status == http.StatusNotFound:
		return apperror.KindNotFound
	case status == http.StatusTooManyRequests, status == http.StatusRequestTimeout, status >= 500:
		return apperror.KindUnavailable
	default:
		return apperror.KindRejected
	}
}

func apiError(status int, data []byte) error {
	var body errorBody
	if err := json.Unmarshal(data, &body); err == nil && body.Message != "" {
		return fmt.Errorf("status %d %s: %s", status, body.Type, body.Message)
	}
	return errors.New(http.StatusText(status))
}
