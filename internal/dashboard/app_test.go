package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/S3b4sten/ShellOs-Sellers-2/internal/ai"
	"github.com/S3b4sten/ShellOs-Sellers-2/internal/inventory"
	"github.com/S3b4sten/ShellOs-Sellers-2/internal/listing"
)

// fakeGateway satisfies ai.Gateway without network access.
type fakeGateway struct {
	reply      string
	draft      *ai.ListingDraft
	extractErr error
}

func (f *fakeGateway) Converse(ctx context.Context, prompt string) string {
	if f.reply == "" {
		return ai.ErrorReply
	}
	return f.reply
}

func (f *fakeGateway) ExtractListing(ctx context.Context, image []byte, mimeType string) (*ai.ListingDraft, error) {
	if f.extractErr != nil {
		return nil, f.extractErr
	}
	d := *f.draft
	d.Attributes = append([]inventory.Attribute(nil), f.draft.Attributes...)
	return &d, nil
}

func newTestApp(gw *fakeGateway) *App {
	if gw == nil {
		gw = &fakeGateway{reply: "ok"}
	}
	return NewApp(gw)
}

func TestApp_SeedInstallsDemoState(t *testing.T) {
	app := newTestApp(nil)
	app.Seed()

	assert.Equal(t, 5, app.Store.Len())
	items := app.Store.Items()
	assert.Equal(t, "Vintage Leica Camera", items[0].Title, "seed preserves original display order")
	assert.Equal(t, 2, app.Notifications.Len())
	assert.True(t, app.Notifications.HasUnread())
	assert.Equal(t, "Alex Rivera", app.Profile().Name)
	assert.Equal(t, "USD", app.Settings().Currency)
	assert.False(t, app.Settings().AutoPublish)
	assert.Equal(t, ViewOverview, app.ActiveView())
}

func TestApp_ScanAndPublishFlow(t *testing.T) {
	gw := &fakeGateway{draft: &ai.ListingDraft{
		Title: "Ceramic Vase", Description: "Hand-thrown vase.", Condition: "New",
		Price: 42, Category: "Home Decor",
		Attributes: []inventory.Attribute{{Key: "k1", Value: "v1"}, {Key: "k2", Value: "v2"}},
	}}
	app := newTestApp(gw)
	app.SetView(ViewNewListing)

	require.NoError(t, app.Workflow.Scan(context.Background(), []byte("img"), "image/jpeg", "vase.jpg"))
	item, err := app.Workflow.Publish(context.Background())
	require.NoError(t, err)

	// Exactly one new item, FOR_SALE, with the draft's price and attributes
	require.Equal(t, 1, app.Store.Len())
	stored, ok := app.Store.Get(item.ID)
	require.True(t, ok)
	assert.Equal(t, inventory.StatusForSale, stored.Status)
	assert.Equal(t, 42.0, stored.Price)
	assert.Equal(t, []inventory.Attribute{{Key: "k1", Value: "v1"}, {Key: "k2", Value: "v2"}}, stored.Attributes)

	// Exactly one notification, and navigation returned to the overview
	entries := app.Notifications.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "New Listing", entries[0].Title)
	assert.Equal(t, "Ceramic Vase added to inventory.", entries[0].Message)
	assert.Equal(t, ViewOverview, app.ActiveView())
	assert.Equal(t, listing.StateEmpty, app.Workflow.State())
}

func TestApp_ScanFailureLeavesInventoryUntouched(t *testing.T) {
	gw := &fakeGateway{extractErr: errors.New("no structured payload")}
	app := newTestApp(gw)

	err := app.Workflow.Scan(context.Background(), []byte("img"), "image/jpeg", "x.jpg")
	assert.Error(t, err)
	assert.Equal(t, listing.StateEmpty, app.Workflow.State())
	assert.Zero(t, app.Store.Len())
	assert.Zero(t, app.Notifications.Len())
}

func TestApp_DeleteRequiresConfirmation(t *testing.T) {
	app := newTestApp(nil)
	app.Seed()
	app.Notifications.ClearAll()

	// Declined: silent abort
	assert.False(t, app.DeleteItem("1", func() bool { return false }))
	assert.Equal(t, 5, app.Store.Len())
	assert.Zero(t, app.Notifications.Len())

	// Confirmed: removed and recorded
	assert.True(t, app.DeleteItem("1", func() bool { return true }))
	assert.Equal(t, 4, app.Store.Len())
	entries := app.Notifications.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Item Deleted", entries[0].Title)
	assert.Equal(t, "Vintage Leica Camera removed from database.", entries[0].Message)
}

func TestApp_DeleteNonexistentAppendsNothing(t *testing.T) {
	app := newTestApp(nil)
	app.Seed()
	app.Notifications.ClearAll()

	confirmCalled := false
	assert.False(t, app.DeleteItem("nope", func() bool { confirmCalled = true; return true }))
	assert.False(t, confirmCalled, "no confirmation prompt for an unknown id")
	assert.Equal(t, 5, app.Store.Len())
	assert.Zero(t, app.Notifications.Len())
}

func TestApp_ToggleItemStatusRecordsChange(t *testing.T) {
	app := newTestApp(nil)
	app.Seed()
	app.Notifications.ClearAll()

	item, ok := app.ToggleItemStatus("2")
	require.True(t, ok)
	assert.Equal(t, inventory.StatusSold, item.Status)

	entries := app.Notifications.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Status Updated", entries[0].Title)
	assert.Equal(t, "Eames Lounge Chair is now SOLD.", entries[0].Message)

	_, ok = app.ToggleItemStatus("nope")
	assert.False(t, ok)
	assert.Len(t, app.Notifications.All(), 1, "no-op toggle appends nothing")
}

func TestApp_SearchFiltersOverview(t *testing.T) {
	app := newTestApp(nil)
	app.Seed()

	app.SetSearch("electronics")
	filtered := app.FilteredInventory()
	assert.Len(t, filtered, 2)

	app.SetSearch("")
	assert.Len(t, app.FilteredInventory(), 5)
}

func TestApp_SaveProfileReplacesWholesale(t *testing.T) {
	app := newTestApp(nil)
	app.Seed()
	app.Notifications.ClearAll()
	app.SetView(ViewProfile)

	app.SaveProfile(UserProfile{Name: "Sam Chen", Email: "sam@shellos.ai"})

	p := app.Profile()
	assert.Equal(t, "Sam Chen", p.Name)
	assert.Empty(t, p.Role, "save replaces the record wholesale")

	entries := app.Notifications.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Profile Updated", entries[0].Title)
	assert.Equal(t, ViewOverview, app.ActiveView())
}

func TestApp_SaveSettingsReplacesWholesale(t *testing.T) {
	app := newTestApp(nil)
	app.Seed()
	app.Notifications.ClearAll()

	app.SaveSettings(Settings{DarkMode: true, Currency: "EUR"})

	s := app.Settings()
	assert.True(t, s.DarkMode)
	assert.Equal(t, "EUR", s.Currency)
	assert.False(t, s.EmailNotifications, "save replaces the record wholesale")

	entries := app.Notifications.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Configuration Saved", entries[0].Title)
}

func TestApp_ChatUsesGatewayReply(t *testing.T) {
	app := newTestApp(&fakeGateway{reply: "All systems nominal."})

	msg, err := app.Chat.Send(context.Background(), "status?")
	require.NoError(t, err)
	assert.Equal(t, "All systems nominal.", msg.Text)
}
