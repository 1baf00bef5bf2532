package pokeapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const (
	DefaultBaseURL = "https://pokeapi.co/api/v2"
	USER_AGENT     = "kantodex (+https://github.com/kantodex/kantodex)"

	defaultTimeout = 10 * time.Second
)

var (
	// ErrNotFound means the catalog answered and the entry does not exist.
	ErrNotFound = errors.New("catalog entry not found")
	// ErrNetwork means no usable response came back at all.
	ErrNetwork = errors.New("catalog unreachable")
	// ErrBadStatus covers unexpected non-200/non-404 answers.
	ErrBadStatus = errors.New("catalog bad status")
)

// Stat is a single named stat value in catalog order.
type Stat struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Record is the raw entity payload as the catalog returns it, before any
// invariant checking. Construction of a usable entity happens in pkg/dex.
type Record struct {
	ID        int
	Name      string
	SpriteURL string
	Types     []string
	Stats     []Stat
}

// Client talks to the read-only catalog API. All endpoints are GETs and the
// client never retries: a failed call is reported and left to the caller.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// Lookup fetches a single entity record by numeric id or name.
func (c *Client) Lookup(ctx context.Context, key string) (Record, error) {
	body, err := c.get(ctx, c.baseURL+"/pokemon/"+url.PathEscape(key))
	if err != nil {
		return Record{}, err
	}

	rec := Record{
		ID:        int(gjson.Get(body, "id").Int()),
		Name:      gjson.Get(body, "name").Str,
		SpriteURL: gjson.Get(body, "sprites.front_default").Str,
	}

	for _, t := range gjson.Get(body, "types.#.type.name").Array() {
		rec.Types = append(rec.Types, t.Str)
	}
	stats := gjson.Get(body, "stats").Array()
	for i := 0; i < len(stats); i++ {
		rec.Stats = append(rec.Stats, Stat{
			Name:  gjson.Get(stats[i].Raw, "stat.name").Str,
			Value: int(gjson.Get(stats[i].Raw, "base_stat").Int()),
		})
	}
	return rec, nil
}

// ListNames returns the paged name listing, in listing order.
func (c *Client) ListNames(ctx context.Context, limit, offset int) ([]string, error) {
	u := c.baseURL + "/pokemon?limit=" + strconv.Itoa(limit) + "&offset=" + strconv.Itoa(offset)
	body, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, n := range gjson.Get(body, "results.#.name").Array() {
		names = append(names, n.Str)
	}
	return names, nil
}

// TypeMembers returns the full ordered member name list for a category label.
// Truncation to the display window is the caller's concern.
func (c *Client) TypeMembers(ctx context.Context, label string) ([]string, error) {
	body, err := c.get(ctx, c.baseURL+"/type/"+url.PathEscape(label))
	if err != nil {
		return nil, err
	}

	var names []string
	for _, n := range gjson.Get(body, "pokemon.#.pokemon.name").Array() {
		names = append(names, n.Str)
	}
	return names, nil
}

func (c *Client) get(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", USER_AGENT)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", ErrNotFound
	default:
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("%w: status=%d", ErrBadStatus, resp.StatusCode)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading body: %v", ErrNetwork, err)
	}
	return string(bodyBytes), nil
}
