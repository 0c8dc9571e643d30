package processing

import (
	"context"
	"fmt"
)

// ExtractEvidence runs the analysis stage for a parsed file against a topic.
func (c *Client) ExtractEvidence(ctx context.Context, fileName, essayTopic string) (*ExtractResult, error) {
	req := extractRequest{
		FileName:   fileName,
		EssayTopic: essayTopic,
	}

	var resp extractResponse
	if err := c.doJSON(ctx, "POST", "/raw-extract", req, &resp); err != nil {
		return nil, err
	}
	if resp.Result == nil || resp.Result.Analysis == nil {
		return nil, fmt.Errorf("analysis failed: invalid response data")
	}
	return resp.Result, nil
}

// ListEvidence fetches all stored evidence records.
func (c *Client) ListEvidence(ctx context.Context) ([]EvidenceRecord, error) {
	var records []EvidenceRecord
	if err := c.doJSON(ctx, "GET", "/list-evidence", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}
