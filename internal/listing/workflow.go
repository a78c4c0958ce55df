// Package listing implements the instant-listing ingestion workflow:
// scan a product image, review the extracted draft, publish it into the
// inventory. The workflow is an explicit state machine so illegal flag
// combinations (scanning while publishing, editing while scanning) are
// unrepresentable.
package listing

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/S3b4sten/ShellOs-Sellers-2/internal/ai"
	"github.com/S3b4sten/ShellOs-Sellers-2/internal/inventory"
)

// State is the workflow's current phase.
type State int

const (
	// StateEmpty: no image selected.
	StateEmpty State = iota
	// StateScanning: extraction call in flight; read-only except reset.
	StateScanning
	// StateReview: draft held and editable field by field.
	StateReview
	// StatePublishing: handoff to the inventory store in progress.
	StatePublishing
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateScanning:
		return "scanning"
	case StateReview:
		return "review"
	case StatePublishing:
		return "publishing"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// ErrBusy is returned when an operation is attempted in a state that does
// not allow it.
var ErrBusy = errors.New("listing: operation not allowed in current state")

// Publisher commits a finished item into the inventory. The commit is
// atomic from the workflow's point of view: if it fails, the workflow stays
// in the publishing state and surfaces the error instead of resetting.
type Publisher interface {
	PublishItem(item inventory.Item) error
}

// Workflow owns the transient state of one instant-listing session. At most
// one extraction is in flight per workflow.
type Workflow struct {
	extractor ai.Extractor
	publisher Publisher

	mu       sync.Mutex
	state    State
	image    []byte
	imageRef string
	draft    ai.ListingDraft
}

// NewWorkflow creates an empty workflow.
func NewWorkflow(extractor ai.Extractor, publisher Publisher) *Workflow {
	return &Workflow{extractor: extractor, publisher: publisher}
}

// State returns the current workflow state.
func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Draft returns a snapshot of the current draft. Meaningful only in review
// or publishing.
func (w *Workflow) Draft() ai.ListingDraft {
	w.mu.Lock()
	defer w.mu.Unlock()
	d := w.draft
	d.Attributes = append([]inventory.Attribute(nil), w.draft.Attributes...)
	return d
}

// Reset returns the workflow to empty from any state, discarding the image
// and draft.
func (w *Workflow) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state = StateEmpty
	w.image = nil
	w.imageRef = ""
	w.draft = ai.ListingDraft{}
}

// Scan selects an image and runs extraction. Legal only from empty. On
// success the workflow enters review holding the extracted draft. On failure
// it returns to empty with the image discarded, and the error is returned to
// the caller for display.
func (w *Workflow) Scan(ctx context.Context, image []byte, mimeType, imageRef string) error {
	w.mu.Lock()
	if w.state != StateEmpty {
		w.mu.Unlock()
		return fmt.Errorf("%w: cannot scan while %s", ErrBusy, w.state)
	}
	w.state = StateScanning
	w.image = image
	w.imageRef = imageRef
	w.mu.Unlock()

	draft, err := w.extractor.ExtractListing(ctx, image, mimeType)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StateScanning {
		// Reset while the call was in flight; drop the result.
		return nil
	}
	if err != nil {
		log.Error().Err(err).Msg("listing extraction failed")
		w.state = StateEmpty
		w.image = nil
		w.imageRef = ""
		return fmt.Errorf("extraction failed: %w", err)
	}

	w.state = StateReview
	w.draft = *draft
	log.Info().Str("title", draft.Title).Str("category", draft.Category).Msg("listing draft extracted")
	return nil
}

// edit runs fn against the draft if the workflow is in review.
func (w *Workflow) edit(fn func(d *ai.ListingDraft)) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StateReview {
		return fmt.Errorf("%w: cannot edit while %s", ErrBusy, w.state)
	}
	fn(&w.draft)
	return nil
}

// SetTitle updates the draft title.
func (w *Workflow) SetTitle(title string) error {
	return w.edit(func(d *ai.ListingDraft) { d.Title = title })
}

// SetDescription updates the draft description.
func (w *Workflow) SetDescription(description string) error {
	return w.edit(func(d *ai.ListingDraft) { d.Description = description })
}

// SetCondition updates the draft condition.
func (w *Workflow) SetCondition(condition string) error {
	return w.edit(func(d *ai.ListingDraft) { d.Condition = condition })
}

// SetCategory updates the draft category.
func (w *Workflow) SetCategory(category string) error {
	return w.edit(func(d *ai.ListingDraft) { d.Category = category })
}

// SetPrice updates the draft price. Prices are never negative.
func (w *Workflow) SetPrice(price float64) error {
	if price < 0 {
		return fmt.Errorf("price must not be negative, got %v", price)
	}
	return w.edit(func(d *ai.ListingDraft) { d.Price = price })
}

// AddAttribute appends an empty or given key-value pair to the draft.
func (w *Workflow) AddAttribute(key, value string) error {
	return w.edit(func(d *ai.ListingDraft) {
		d.Attributes = append(d.Attributes, inventory.Attribute{Key: key, Value: value})
	})
}

// UpdateAttribute replaces the key-value pair at index i.
func (w *Workflow) UpdateAttribute(i int, key, value string) error {
	var outOfRange bool
	err := w.edit(func(d *ai.ListingDraft) {
		if i < 0 || i >= len(d.Attributes) {
			outOfRange = true
			return
		}
		d.Attributes[i] = inventory.Attribute{Key: key, Value: value}
	})
	if err != nil {
		return err
	}
	if outOfRange {
		return fmt.Errorf("attribute index %d out of range", i)
	}
	return nil
}

// RemoveAttribute removes the pair at index i. Remaining attributes
// re-index positionally; attributes carry no identity of their own.
func (w *Workflow) RemoveAttribute(i int) error {
	var outOfRange bool
	err := w.edit(func(d *ai.ListingDraft) {
		if i < 0 || i >= len(d.Attributes) {
			outOfRange = true
			return
		}
		d.Attributes = append(d.Attributes[:i], d.Attributes[i+1:]...)
	})
	if err != nil {
		return err
	}
	if outOfRange {
		return fmt.Errorf("attribute index %d out of range", i)
	}
	return nil
}

// Publish converts the reviewed draft into an inventory item (fresh
// identifier, status forced to FOR_SALE, "Just now" label) and hands it to
// the publisher. On success the workflow resets to empty and the published
// item is returned. If the handoff fails the workflow remains in publishing
// so the user can retry or reset.
func (w *Workflow) Publish(ctx context.Context) (inventory.Item, error) {
	w.mu.Lock()
	if w.state != StateReview && w.state != StatePublishing {
		w.mu.Unlock()
		return inventory.Item{}, fmt.Errorf("%w: cannot publish while %s", ErrBusy, w.state)
	}
	w.state = StatePublishing
	item := inventory.Item{
		ID:         inventory.NewID(),
		Title:      w.draft.Title,
		Category:   w.draft.Category,
		Condition:  w.draft.Condition,
		Price:      w.draft.Price,
		Status:     inventory.StatusForSale,
		DateAdded:  "Just now",
		ImageURL:   w.imageRef,
		Attributes: append([]inventory.Attribute(nil), w.draft.Attributes...),
	}
	w.mu.Unlock()

	if err := w.publisher.PublishItem(item); err != nil {
		log.Error().Err(err).Str("title", item.Title).Msg("publish handoff failed")
		return inventory.Item{}, fmt.Errorf("publish failed: %w", err)
	}

	log.Info().Str("id", item.ID).Str("title", item.Title).Msg("listing published")
	w.Reset()
	return item, nil
}
