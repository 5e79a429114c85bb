package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
)

const maxRequestBody = 100 * 1024

// idValue accepts an identifier sent as a JSON string, number or boolean.
// 0, false and null read as absent; true reads as "true".
type idValue string

func (v *idValue) UnmarshalJSON(b []byte) error {
	var raw interface{}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	switch x := raw.(type) {
	case nil:
		*v = ""
	case string:
		*v = idValue(x)
	case bool:
		*v = ""
		if x {
			*v = "true"
		}
	case json.Number:
		*v = idValue(x.String())
		if f, err := x.Float64(); err == nil && f == 0 {
			*v = ""
		}
	default:
		return fmt.Errorf("expected string or number, got %s", b)
	}
	return nil
}

// kindValue is a content type hint. Anything but a JSON string reads as "".
type kindValue string

func (k *kindValue) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		s = ""
	}
	*k = kindValue(s)
	return nil
}

type cacheRequest struct {
	Kinopoisk idValue   `json:"kinopoisk"`
	Type      kindValue `json:"type"`
}

func (c *cacheRequest) fromForm(get func(string) string) {
	c.Kinopoisk = idValue(get("kinopoisk"))
	c.Type = kindValue(get("type"))
}

type shikiRequest struct {
	Shikimori idValue   `json:"shikimori"`
	Type      kindValue `json:"type"`
}

func (c *shikiRequest) fromForm(get func(string) string) {
	c.Shikimori = idValue(get("shikimori"))
	c.Type = kindValue(get("type"))
}

type formDecoder interface {
	fromForm(get func(string) string)
}

// decodeRequest fills req from a urlencoded form or a JSON body.
// An empty body leaves req zero-valued.
func decodeRequest(r *http.Request, req formDecoder) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("parsing form: %w", err)
		}
		req.fromForm(r.PostForm.Get)
		return nil
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		return fmt.Errorf("reading request body: %w", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, req); err != nil {
		return fmt.Errorf("decoding request body: %w", err)
	}
	return nil
}
