package listing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/S3b4sten/ShellOs-Sellers-2/internal/ai"
	"github.com/S3b4sten/ShellOs-Sellers-2/internal/inventory"
)

type stubExtractor struct {
	draft *ai.ListingDraft
	err   error
}

func (s *stubExtractor) ExtractListing(ctx context.Context, image []byte, mimeType string) (*ai.ListingDraft, error) {
	if s.err != nil {
		return nil, s.err
	}
	d := *s.draft
	d.Attributes = append([]inventory.Attribute(nil), s.draft.Attributes...)
	return &d, nil
}

type capturingPublisher struct {
	items []inventory.Item
	err   error
}

func (p *capturingPublisher) PublishItem(item inventory.Item) error {
	if p.err != nil {
		return p.err
	}
	p.items = append(p.items, item)
	return nil
}

func testDraft() *ai.ListingDraft {
	return &ai.ListingDraft{
		Title:       "Mechanical Keyboard",
		Description: "Compact board.",
		Condition:   "Used - Good",
		Price:       42,
		Category:    "Electronics",
		Attributes: []inventory.Attribute{
			{Key: "k1", Value: "v1"},
			{Key: "k2", Value: "v2"},
		},
	}
}

func newReviewWorkflow(t *testing.T) (*Workflow, *capturingPublisher) {
	t.Helper()
	pub := &capturingPublisher{}
	w := NewWorkflow(&stubExtractor{draft: testDraft()}, pub)
	require.NoError(t, w.Scan(context.Background(), []byte("img"), "image/jpeg", "photo.jpg"))
	require.Equal(t, StateReview, w.State())
	return w, pub
}

func TestWorkflow_ScanSuccessEntersReview(t *testing.T) {
	w, _ := newReviewWorkflow(t)
	draft := w.Draft()
	assert.Equal(t, "Mechanical Keyboard", draft.Title)
	assert.Len(t, draft.Attributes, 2)
}

func TestWorkflow_ScanFailureReturnsToEmpty(t *testing.T) {
	w := NewWorkflow(&stubExtractor{err: errors.New("vision error")}, &capturingPublisher{})

	err := w.Scan(context.Background(), []byte("img"), "image/jpeg", "photo.jpg")
	assert.Error(t, err)
	assert.Equal(t, StateEmpty, w.State(), "failed scan abandons the image and returns to empty")

	// A fresh scan is allowed afterwards
	w2 := NewWorkflow(&stubExtractor{draft: testDraft()}, &capturingPublisher{})
	require.NoError(t, w2.Scan(context.Background(), []byte("img"), "image/jpeg", "photo.jpg"))
}

func TestWorkflow_ScanRejectedOutsideEmpty(t *testing.T) {
	w, _ := newReviewWorkflow(t)
	err := w.Scan(context.Background(), []byte("other"), "image/jpeg", "other.jpg")
	assert.ErrorIs(t, err, ErrBusy)
}

func TestWorkflow_EditRejectedOutsideReview(t *testing.T) {
	w := NewWorkflow(&stubExtractor{draft: testDraft()}, &capturingPublisher{})
	assert.ErrorIs(t, w.SetTitle("x"), ErrBusy)
	assert.ErrorIs(t, w.AddAttribute("k", "v"), ErrBusy)
}

func TestWorkflow_DraftFieldEdits(t *testing.T) {
	w, _ := newReviewWorkflow(t)

	require.NoError(t, w.SetTitle("New Title"))
	require.NoError(t, w.SetDescription("New description"))
	require.NoError(t, w.SetCondition("Like New"))
	require.NoError(t, w.SetCategory("Keyboards"))
	require.NoError(t, w.SetPrice(99.5))

	d := w.Draft()
	assert.Equal(t, "New Title", d.Title)
	assert.Equal(t, "New description", d.Description)
	assert.Equal(t, "Like New", d.Condition)
	assert.Equal(t, "Keyboards", d.Category)
	assert.Equal(t, 99.5, d.Price)
}

func TestWorkflow_SetPriceRejectsNegative(t *testing.T) {
	w, _ := newReviewWorkflow(t)
	assert.Error(t, w.SetPrice(-1))
	assert.Equal(t, 42.0, w.Draft().Price)
}

func TestWorkflow_AttributeAddUpdateRemove(t *testing.T) {
	w, _ := newReviewWorkflow(t)

	require.NoError(t, w.AddAttribute("k3", "v3"))
	assert.Len(t, w.Draft().Attributes, 3)

	require.NoError(t, w.UpdateAttribute(1, "k2", "updated"))
	assert.Equal(t, "updated", w.Draft().Attributes[1].Value)

	// Removing re-indexes positionally
	require.NoError(t, w.RemoveAttribute(0))
	attrs := w.Draft().Attributes
	require.Len(t, attrs, 2)
	assert.Equal(t, "k2", attrs[0].Key)
	assert.Equal(t, "k3", attrs[1].Key)

	assert.Error(t, w.RemoveAttribute(5))
	assert.Error(t, w.UpdateAttribute(-1, "k", "v"))
}

func TestWorkflow_PublishBuildsItemAndResets(t *testing.T) {
	w, pub := newReviewWorkflow(t)

	item, err := w.Publish(context.Background())
	require.NoError(t, err)

	require.Len(t, pub.items, 1)
	published := pub.items[0]
	assert.Equal(t, item.ID, published.ID)
	assert.NotEmpty(t, published.ID)
	assert.Equal(t, inventory.StatusForSale, published.Status, "status is forced to FOR_SALE")
	assert.Equal(t, 42.0, published.Price)
	assert.Equal(t, "Just now", published.DateAdded)
	assert.Equal(t, "photo.jpg", published.ImageURL)
	assert.Equal(t, []inventory.Attribute{{Key: "k1", Value: "v1"}, {Key: "k2", Value: "v2"}}, published.Attributes)

	assert.Equal(t, StateEmpty, w.State(), "successful publish resets the workflow")
}

func TestWorkflow_PublishFailureStaysPublishing(t *testing.T) {
	pub := &capturingPublisher{err: errors.New("store rejected item")}
	w := NewWorkflow(&stubExtractor{draft: testDraft()}, pub)
	require.NoError(t, w.Scan(context.Background(), []byte("img"), "image/jpeg", ""))

	_, err := w.Publish(context.Background())
	assert.Error(t, err)
	assert.Equal(t, StatePublishing, w.State(), "failed handoff must not reset the workflow")

	// Retry succeeds once the store accepts
	pub.err = nil
	_, err = w.Publish(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateEmpty, w.State())
}

func TestWorkflow_PublishRejectedOutsideReview(t *testing.T) {
	w := NewWorkflow(&stubExtractor{draft: testDraft()}, &capturingPublisher{})
	_, err := w.Publish(context.Background())
	assert.ErrorIs(t, err, ErrBusy)
}

func TestWorkflow_ResetFromAnyState(t *testing.T) {
	w, _ := newReviewWorkflow(t)
	w.Reset()
	assert.Equal(t, StateEmpty, w.State())
	assert.Empty(t, w.Draft().Title)

	// Reset on an already-empty workflow is fine
	w.Reset()
	assert.Equal(t, StateEmpty, w.State())
}
