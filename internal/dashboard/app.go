// Package dashboard ties the inventory store, listing workflow, chat
// session and notification log together behind one explicit application
// state object. All state is in memory; restart loses it.
package dashboard

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/S3b4sten/ShellOs-Sellers-2/internal/ai"
	"github.com/S3b4sten/ShellOs-Sellers-2/internal/chat"
	"github.com/S3b4sten/ShellOs-Sellers-2/internal/inventory"
	"github.com/S3b4sten/ShellOs-Sellers-2/internal/listing"
	"github.com/S3b4sten/ShellOs-Sellers-2/internal/notify"
)

// View identifies the active dashboard screen.
type View string

const (
	ViewOverview   View = "OVERVIEW"
	ViewNewListing View = "NEW_LISTING"
	ViewAnalytics  View = "ANALYTICS"
	ViewAssistant  View = "ASSISTANT"
	ViewSettings   View = "SETTINGS"
	ViewProfile    View = "PROFILE"
)

// UserProfile is the singleton operator record, replaced wholesale on save.
type UserProfile struct {
	Name      string
	Email     string
	Role      string
	Bio       string
	AvatarURL string
}

// Settings is the singleton preferences record, replaced wholesale on save.
// AutoPublish is a stored flag the listing workflow intentionally does not
// consult yet.
type Settings struct {
	EmailNotifications bool
	AutoPublish        bool
	DarkMode           bool
	CompactMode        bool
	Currency           string
}

// App is the dashboard's application state and the target of every
// user-initiated action.
type App struct {
	Store         *inventory.Store
	Workflow      *listing.Workflow
	Chat          *chat.Session
	Notifications *notify.Log

	mu       sync.Mutex
	profile  UserProfile
	settings Settings
	view     View
	search   string
}

// NewApp wires an application state around the given AI gateway.
func NewApp(gateway ai.Gateway) *App {
	app := &App{
		Store:         inventory.NewStore(),
		Chat:          chat.NewSession(gateway),
		Notifications: notify.NewLog(),
		view:          ViewOverview,
	}
	app.Workflow = listing.NewWorkflow(ai.NewCachedExtractor(gateway), app)
	return app
}

// --- Navigation and search ---

// ActiveView returns the current screen.
func (a *App) ActiveView() View {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.view
}

// SetView switches the active screen.
func (a *App) SetView(v View) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.view = v
}

// SetSearch updates the overview search text.
func (a *App) SetSearch(q string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.search = q
}

// SearchQuery returns the current search text.
func (a *App) SearchQuery() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.search
}

// FilteredInventory returns the overview table's view of the store under
// the current search text.
func (a *App) FilteredInventory() []inventory.Item {
	return a.Store.Search(a.SearchQuery())
}

// --- Inventory actions ---

// PublishItem commits a freshly built item into the store and records the
// event. It is the listing workflow's atomic commit point: an error here
// leaves the workflow in its publishing state. On success navigation
// returns to the overview screen.
func (a *App) PublishItem(item inventory.Item) error {
	if err := a.Store.Add(item); err != nil {
		return fmt.Errorf("inventory insert failed: %w", err)
	}
	a.Notifications.Append("New Listing", fmt.Sprintf("%s added to inventory.", item.Title))
	a.SetView(ViewOverview)
	return nil
}

// DeleteItem removes an item after explicit confirmation. Declining aborts
// silently; an unknown id leaves the store unchanged and appends nothing.
func (a *App) DeleteItem(id string, confirm func() bool) bool {
	item, ok := a.Store.Get(id)
	if !ok {
		return false
	}
	if confirm != nil && !confirm() {
		return false
	}
	if !a.Store.Remove(id) {
		return false
	}
	a.Notifications.Append("Item Deleted", fmt.Sprintf("%s removed from database.", item.Title))
	log.Info().Str("id", id).Str("title", item.Title).Msg("inventory item deleted")
	return true
}

// ToggleItemStatus flips an item between FOR_SALE and SOLD and records the
// change. An unknown id is a no-op.
func (a *App) ToggleItemStatus(id string) (inventory.Item, bool) {
	item, ok := a.Store.ToggleStatus(id)
	if !ok {
		return inventory.Item{}, false
	}
	a.Notifications.Append("Status Updated", fmt.Sprintf("%s is now %s.", item.Title, item.Status))
	return item, true
}

// --- Profile and settings ---

// Profile returns the current operator profile.
func (a *App) Profile() UserProfile {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.profile
}

// SaveProfile replaces the profile wholesale, records the save and returns
// to the overview screen.
func (a *App) SaveProfile(p UserProfile) {
	a.mu.Lock()
	a.profile = p
	a.mu.Unlock()
	a.Notifications.Append("Profile Updated", "User details saved successfully.")
	a.SetView(ViewOverview)
}

// Settings returns the current preferences.
func (a *App) Settings() Settings {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.settings
}

// SaveSettings replaces the preferences wholesale and records the save.
func (a *App) SaveSettings(s Settings) {
	a.mu.Lock()
	a.settings = s
	a.mu.Unlock()
	a.Notifications.Append("Configuration Saved", "System preferences updated.")
}
