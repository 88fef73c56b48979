package translator

import "context"

// Language describes one language the service accepts as a source or
// produces as a target.
type Language struct {
	Code              string `json:"language"`
	Name              string `json:"name"`
	SupportsFormality bool   `json:"supports_formality"`
}

// SourceLanguages lists the languages accepted as translation sources.
func (c *Client) SourceLanguages(ctx context.Context) ([]Language, error) {
	return c.languages(ctx, "source")
}

// TargetLanguages lists the languages available as translation targets.
func (c *Client) TargetLanguages(ctx context.Context) ([]Language, error) {
	return c.languages(ctx, "target")
}

func (c *Client) languages(ctx context.Context, kind string) ([]Language, error) {
	var out []Language
	if err := c.rest.GetJSON(ctx, "/v2/languages", []Param{{"type", kind}}, &out); err != nil {
		return nil, err
	}
	return out, nil
}
