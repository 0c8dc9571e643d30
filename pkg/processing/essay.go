package processing

import (
	"context"
	"fmt"
)

// GenerateEssay sends the combined evidence context to the generation API and
// returns the structured essay.
func (c *Client) GenerateEssay(ctx context.Context, req EssayGenerationRequest) (*EssayStructure, error) {
	var resp EssayStructure
	if err := c.doJSON(ctx, "POST", "/essay-generation/generate", req, &resp); err != nil {
		return nil, err
	}
	if len(resp.EssayStructure.BodyParagraphs) == 0 && resp.EssayStructure.Introduction.Content == "" {
		return nil, fmt.Errorf("essay generation failed: empty structure received")
	}
	return &resp, nil
}
