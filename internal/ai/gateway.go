package ai

import (
	"context"
	"fmt"

	"github.com/S3b4sten/ShellOs-Sellers-2/internal/inventory"
)

// Fallback replies for Converse. Converse never surfaces an error to the
// caller: a garbled chat reply is harmless, unlike a garbled listing draft.
const (
	ErrorReply = "Sorry, I encountered an error processing your request."
	EmptyReply = "I couldn't generate a response."
)

// ListingDraft is the structured result of analyzing a product image. It is
// transient: it lives inside the listing workflow until published or reset.
type ListingDraft struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Condition   string                `json:"condition"`
	Price       float64               `json:"price"`
	Category    string                `json:"category"`
	Attributes  []inventory.Attribute `json:"attributes"`
}

// Validate checks that every field the extraction schema marks required is
// actually present. Price presence is checked at decode time, where an
// absent field is still distinguishable from zero. A draft failing
// validation must be treated as an extraction failure, never reviewed or
// published.
func (d *ListingDraft) Validate() error {
	switch {
	case d.Title == "":
		return fmt.Errorf("listing draft missing title")
	case d.Description == "":
		return fmt.Errorf("listing draft missing description")
	case d.Condition == "":
		return fmt.Errorf("listing draft missing condition")
	case d.Category == "":
		return fmt.Errorf("listing draft missing category")
	case d.Price < 0:
		return fmt.Errorf("listing draft has negative price %v", d.Price)
	case d.Attributes == nil:
		return fmt.Errorf("listing draft missing attributes")
	}
	return nil
}

// Converser answers free-text prompts. Implementations must not return
// errors; failures degrade to a fixed fallback string.
type Converser interface {
	Converse(ctx context.Context, prompt string) string
}

// Extractor turns a product image into a structured listing draft. Failures
// propagate: the caller decides how to abandon the scan.
type Extractor interface {
	ExtractListing(ctx context.Context, image []byte, mimeType string) (*ListingDraft, error)
}

// Gateway is the full AI provider surface used by the dashboard.
type Gateway interface {
	Converser
	Extractor
}
