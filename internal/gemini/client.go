// Package gemini turns raw document bytes into structured medical claim
// fields by calling the Gemini model with a constrained JSON output schema.
package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"github.com/kylejryan/medical-claims-portal/internal/apperr"

	"golang.org/x/sync/errgroup"
	"google.golang.org/genai"
)

const (
	modelName = "gemini-2.0-flash"

	systemPrompt = `You are an AI assistant specialized in extracting medical information from documents.
Analyze the provided medical document and extract the following information in a structured JSON format.
If any information is not found in the document, use null for that field.
Be precise and accurate in your extraction.
Please extract the information from the provided document.`
)

// generator is the slice of the genai client the extractor needs; tests
// substitute a fake.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client is the document extraction capability.
type Client struct {
	gen generator
}

// New constructs a Client talking to the Gemini API with the given key.
func New(ctx context.Context, apiKey string) (*Client, error) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &Client{gen: c.Models}, nil
}

// Process extracts structured claim fields from a base64-encoded document.
// The MIME type is sniffed from the payload's leading bytes first; an
// unrecognized signature fails before any remote call. A malformed or empty
// model response degrades to an empty record rather than failing; only a
// failed remote call surfaces an extraction error.
func (c *Client) Process(ctx context.Context, encoded string) (map[string]any, error) {
	mimeType, err := DetectMIME(encoded)
	if err != nil {
		return nil, err
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, apperr.Validationf("invalid base64 string")
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(systemPrompt),
			genai.NewPartFromBytes(data, mimeType),
		}, genai.RoleUser),
	}
	resp, err := c.gen.GenerateContent(ctx, modelName, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   medicalClaimSchema,
	})
	if err != nil {
		return nil, apperr.Extraction(err)
	}

	extracted := map[string]any{}
	if text := resp.Text(); text != "" {
		// Best effort: a response the schema should have prevented is
		// stored as an empty record, not treated as a failure.
		if err := json.Unmarshal([]byte(text), &extracted); err != nil {
			return map[string]any{}, nil
		}
	}
	return extracted, nil
}

// ProcessAll extracts several documents concurrently, failing the whole
// batch if any single extraction fails. Results keep input order.
func (c *Client) ProcessAll(ctx context.Context, encodedDocs []string) ([]map[string]any, error) {
	results := make([]map[string]any, len(encodedDocs))
	g, ctx := errgroup.WithContext(ctx)
	for i, doc := range encodedDocs {
		g.Go(func() error {
			out, err := c.Process(ctx, doc)
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
