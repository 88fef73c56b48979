package translator

import "context"

// Usage reports account consumption against plan limits.
type Usage struct {
	CharacterCount int64 `json:"character_count"`
	CharacterLimit int64 `json:"character_limit"`
	DocumentCount  int64 `json:"document_count"`
	DocumentLimit  int64 `json:"document_limit"`
}

// AnyLimitReached reports whether a tracked quota is exhausted.
func (u Usage) AnyLimitReached() bool {
	characterLimitReached := u.CharacterLimit > 0 && u.CharacterCount >= u.CharacterLimit
	documentLimitReached := u.DocumentLimit > 0 && u.DocumentCount >= u.DocumentLimit
	return characterLimitReached || documentLimitReached
}

// GetUsage fetches current account usage.
func (c *Client) GetUsage(ctx context.Context) (Usage, error) {
	var usage Usage
	if err := c.rest.GetJSON(ctx, "/v2/usage", nil, &usage); err != nil {
		return Usage{}, err
	}
	return usage, nil
}
