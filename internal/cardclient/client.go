package cardclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/alovak/helpcard/cardview"
	"github.com/alovak/helpcard/helpcard/models"
)

// Client calls a running helpcard server.
type Client struct {
	Base string
	HTTP *http.Client
}

func New(base string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{Base: strings.TrimRight(base, "/"), HTTP: hc}
}

// Render returns the rendered HTML page, or only the card fragment.
func (c *Client) Render(ctx context.Context, card models.Card, fragment bool) ([]byte, error) {
	u, err := url.Parse(c.Base + "/cards/render")
	if err != nil {
		return nil, fmt.Errorf("parse base: %w", err)
	}
	if fragment {
		q := u.Query()
		q.Set("fragment", "true")
		u.RawQuery = q.Encode()
	}

	resp, err := c.post(ctx, u.String(), card)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read render body: %w", err)
	}
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("render status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}

func (c *Client) View(ctx context.Context, card models.Card) (cardview.CardView, error) {
	var view cardview.CardView

	resp, err := c.post(ctx, c.Base+"/cards/view", card)
	if err != nil {
		return view, fmt.Errorf("view: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		b, _ := io.ReadAll(resp.Body)
		return view, fmt.Errorf("view status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	if err := json.NewDecoder(resp.Body).Decode(&view); err != nil {
		return view, fmt.Errorf("decode view: %w", err)
	}
	return view, nil
}

func (c *Client) post(ctx context.Context, target string, card models.Card) (*http.Response, error) {
	b, err := json.Marshal(card)
	if err != nil {
		return nil, fmt.Errorf("encode card: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.HTTP.Do(req)
}
