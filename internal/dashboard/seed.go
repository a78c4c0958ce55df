package dashboard

import (
	"github.com/S3b4sten/ShellOs-Sellers-2/internal/inventory"
	"github.com/S3b4sten/ShellOs-Sellers-2/internal/notify"
)

// Seed installs the demo inventory, starter notifications and default
// profile and settings the dashboard opens with.
func (a *App) Seed() {
	items := []inventory.Item{
		{
			ID: "1", Title: "Vintage Leica Camera", Category: "Photography",
			Condition: "Vintage - Good", Price: 1250, Status: inventory.StatusSold,
			DateAdded: "2 hrs ago",
			ImageURL:  "https://images.unsplash.com/photo-1516035069371-29a1b244cc32?auto=format&fit=crop&w=100&q=80",
			Attributes: []inventory.Attribute{
				{Key: "Lens", Value: "Summicron 50mm"}, {Key: "Year", Value: "1954"},
			},
		},
		{
			ID: "2", Title: "Eames Lounge Chair", Category: "Furniture",
			Condition: "Like New", Price: 4500, Status: inventory.StatusForSale,
			DateAdded: "5 hrs ago",
			ImageURL:  "https://images.unsplash.com/photo-1567538096630-e0c55bd6374c?auto=format&fit=crop&w=100&q=80",
			Attributes: []inventory.Attribute{
				{Key: "Material", Value: "Rosewood/Leather"}, {Key: "Style", Value: "Mid-Century"},
			},
		},
		{
			ID: "3", Title: "MacBook Pro M2", Category: "Electronics",
			Condition: "Used - Excellent", Price: 1800, Status: inventory.StatusForSale,
			DateAdded: "1 day ago",
			ImageURL:  "https://images.unsplash.com/photo-1517336714731-489689fd1ca4?auto=format&fit=crop&w=100&q=80",
			Attributes: []inventory.Attribute{
				{Key: "Processor", Value: "M2 Pro"}, {Key: "RAM", Value: "16GB"}, {Key: "Battery Cycle", Value: "45"},
			},
		},
		{
			ID: "4", Title: "Mechanical Keyboard", Category: "Electronics",
			Condition: "Used - Good", Price: 250, Status: inventory.StatusSold,
			DateAdded: "2 days ago",
			ImageURL:  "https://images.unsplash.com/photo-1595225476474-87563907a212?auto=format&fit=crop&w=100&q=80",
			Attributes: []inventory.Attribute{
				{Key: "Switch Type", Value: "Cherry MX Brown"}, {Key: "Keycaps", Value: "PBT Double-shot"},
			},
		},
		{
			ID: "5", Title: "Ceramic Vase Set", Category: "Home Decor",
			Condition: "New", Price: 120, Status: inventory.StatusForSale,
			DateAdded: "2 days ago",
			ImageURL:  "https://images.unsplash.com/photo-1612196808214-b7e239e5f6b7?auto=format&fit=crop&w=100&q=80",
			Attributes: []inventory.Attribute{
				{Key: "Material", Value: "Stoneware"}, {Key: "Set Count", Value: "3 pcs"},
			},
		},
	}
	// Seed newest-first display order: insert oldest first.
	for i := len(items) - 1; i >= 0; i-- {
		_ = a.Store.Add(items[i])
	}

	a.Notifications.Seed(notify.Notification{
		ID: "1", Title: "System Update", Message: "Core v2.4 installed successfully.",
		Time: "10m ago", Read: false,
	})
	a.Notifications.Seed(notify.Notification{
		ID: "2", Title: "Sale Confirmed", Message: "Vintage Leica Camera marked as SOLD.",
		Time: "2h ago", Read: true,
	})

	a.mu.Lock()
	a.profile = UserProfile{
		Name:      "Alex Rivera",
		Email:     "alex.rivera@shellos.ai",
		Role:      "System Architect",
		Bio:       "System maintenance and deployment lead.",
		AvatarURL: "https://picsum.photos/200",
	}
	a.settings = Settings{
		EmailNotifications: true,
		AutoPublish:        false,
		DarkMode:           false,
		CompactMode:        false,
		Currency:           "USD",
	}
	a.mu.Unlock()
}
