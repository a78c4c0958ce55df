package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/lithammer/dedent"

	"github.com/S3b4sten/ShellOs-Sellers-2/internal/chat"
	"github.com/S3b4sten/ShellOs-Sellers-2/internal/dashboard"
	"github.com/S3b4sten/ShellOs-Sellers-2/internal/fetch"
	"github.com/S3b4sten/ShellOs-Sellers-2/internal/listing"
)

var errQuit = errors.New("quit")

var helpText = strings.TrimSpace(dedent.Dedent(`
	ls                          show inventory (respects current search)
	search [text]               set or clear the inventory search filter
	stats                       analytics summary
	scan <file|url>             analyze a product image into a listing draft
	draft                       show the current draft
	set <field> <value>         edit draft field (title|desc|condition|category|price)
	attr add <key>=<value>      append a draft attribute
	attr set <n> <key>=<value>  replace draft attribute n
	attr rm <n>                 remove draft attribute n
	publish                     publish the reviewed draft into inventory
	reset                       discard the current draft
	toggle <id>                 flip FOR_SALE/SOLD
	rm <id>                     delete an item (asks for confirmation)
	chat <message>              ask the assistant
	notif                       show notifications
	clear                       clear all notifications
	profile [field value]       show or edit operator profile
	settings [key on|off|val]   show or edit preferences
	quit                        exit (state is not persisted)
`))

type shell struct {
	app     *dashboard.App
	fetcher *fetch.ImageFetcher
	in      io.Reader
	out     io.Writer

	// lines carries stdin input; confirmation prompts read from it too,
	// so exactly one goroutine ever touches the underlying reader.
	lines chan string
}

func newShell(app *dashboard.App, fetcher *fetch.ImageFetcher, in io.Reader, out io.Writer) *shell {
	return &shell{app: app, fetcher: fetcher, in: in, out: out, lines: make(chan string)}
}

func (s *shell) run(ctx context.Context) error {
	scanErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			s.lines <- scanner.Text()
		}
		scanErr <- scanner.Err()
		close(s.lines)
	}()

	fmt.Fprintln(s.out, "ShellOS Sellers — type 'help' for commands")
	for {
		fmt.Fprint(s.out, "> ")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-s.lines:
			if !ok {
				return <-scanErr
			}
			if err := s.dispatch(ctx, line); err != nil {
				if errors.Is(err, errQuit) {
					return err
				}
				fmt.Fprintf(s.out, "error: %v\n", err)
			}
		}
	}
}

func (s *shell) dispatch(ctx context.Context, line string) error {
	cmd, rest := splitCommand(line)
	switch cmd {
	case "":
		return nil
	case "help":
		fmt.Fprintln(s.out, helpText)
	case "quit", "exit":
		return errQuit
	case "ls":
		s.app.SetView(dashboard.ViewOverview)
		s.printInventory()
	case "search":
		s.app.SetSearch(rest)
		s.printInventory()
	case "stats":
		s.app.SetView(dashboard.ViewAnalytics)
		s.printStats()
	case "scan":
		return s.cmdScan(ctx, rest)
	case "draft":
		s.printDraft()
	case "set":
		return s.cmdSet(rest)
	case "attr":
		return s.cmdAttr(rest)
	case "publish":
		return s.cmdPublish(ctx)
	case "reset":
		s.app.Workflow.Reset()
		fmt.Fprintln(s.out, "draft discarded")
	case "toggle":
		if item, ok := s.app.ToggleItemStatus(rest); ok {
			fmt.Fprintf(s.out, "%s is now %s\n", item.Title, item.Status)
		} else {
			fmt.Fprintln(s.out, "no such item")
		}
	case "rm":
		if s.app.DeleteItem(rest, s.confirmDelete) {
			fmt.Fprintln(s.out, "deleted")
		}
	case "chat":
		return s.cmdChat(ctx, rest)
	case "notif":
		s.printNotifications()
	case "clear":
		s.app.Notifications.ClearAll()
		fmt.Fprintln(s.out, "notifications cleared")
	case "profile":
		return s.cmdProfile(rest)
	case "settings":
		return s.cmdSettings(rest)
	default:
		fmt.Fprintf(s.out, "unknown command %q (try 'help')\n", cmd)
	}
	return nil
}

func (s *shell) cmdScan(ctx context.Context, ref string) error {
	if ref == "" {
		return fmt.Errorf("usage: scan <file|url>")
	}
	s.app.SetView(dashboard.ViewNewListing)

	var (
		data     []byte
		mimeType string
		err      error
	)
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		data, mimeType, err = s.fetcher.Fetch(ctx, ref)
	} else {
		data, err = os.ReadFile(ref)
		mimeType = mimeTypeForPath(ref)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, "analyzing image...")
	if err := s.app.Workflow.Scan(ctx, data, mimeType, ref); err != nil {
		return err
	}
	s.printDraft()
	return nil
}

func (s *shell) cmdSet(rest string) error {
	field, value := splitCommand(rest)
	if value == "" {
		return fmt.Errorf("usage: set <field> <value>")
	}
	switch field {
	case "title":
		return s.app.Workflow.SetTitle(value)
	case "desc", "description":
		return s.app.Workflow.SetDescription(value)
	case "condition":
		return s.app.Workflow.SetCondition(value)
	case "category":
		return s.app.Workflow.SetCategory(value)
	case "price":
		price, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid price %q", value)
		}
		return s.app.Workflow.SetPrice(price)
	default:
		return fmt.Errorf("unknown field %q", field)
	}
}

func (s *shell) cmdAttr(rest string) error {
	op, args := splitCommand(rest)
	switch op {
	case "add":
		key, value := splitPair(args)
		return s.app.Workflow.AddAttribute(key, value)
	case "set":
		idxStr, kv := splitCommand(args)
		i, err := strconv.Atoi(idxStr)
		if err != nil {
			return fmt.Errorf("invalid index %q", idxStr)
		}
		key, value := splitPair(kv)
		return s.app.Workflow.UpdateAttribute(i, key, value)
	case "rm":
		i, err := strconv.Atoi(args)
		if err != nil {
			return fmt.Errorf("invalid index %q", args)
		}
		return s.app.Workflow.RemoveAttribute(i)
	default:
		return fmt.Errorf("usage: attr add|set|rm")
	}
}

func (s *shell) cmdPublish(ctx context.Context) error {
	item, err := s.app.Workflow.Publish(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "published %q (%s)\n", item.Title, item.ID)
	return nil
}

func (s *shell) cmdChat(ctx context.Context, text string) error {
	s.app.SetView(dashboard.ViewAssistant)
	reply, err := s.app.Chat.Send(ctx, text)
	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) {
			return fmt.Errorf("usage: chat <message>")
		}
		return err
	}
	fmt.Fprintf(s.out, "assistant: %s\n", reply.Text)
	return nil
}

func (s *shell) cmdProfile(rest string) error {
	s.app.SetView(dashboard.ViewProfile)
	if rest == "" {
		p := s.app.Profile()
		fmt.Fprintf(s.out, "name:  %s\nemail: %s\nrole:  %s\nbio:   %s\n", p.Name, p.Email, p.Role, p.Bio)
		return nil
	}
	field, value := splitCommand(rest)
	p := s.app.Profile()
	switch field {
	case "name":
		p.Name = value
	case "email":
		p.Email = value
	case "role":
		p.Role = value
	case "bio":
		p.Bio = value
	default:
		return fmt.Errorf("unknown profile field %q", field)
	}
	s.app.SaveProfile(p)
	fmt.Fprintln(s.out, "profile saved")
	return nil
}

func (s *shell) cmdSettings(rest string) error {
	s.app.SetView(dashboard.ViewSettings)
	cfg := s.app.Settings()
	if rest == "" {
		fmt.Fprintf(s.out, "emailNotifications: %v\nautoPublish: %v\ndarkMode: %v\ncompactMode: %v\ncurrency: %s\n",
			cfg.EmailNotifications, cfg.AutoPublish, cfg.DarkMode, cfg.CompactMode, cfg.Currency)
		return nil
	}
	key, value := splitCommand(rest)
	on := value == "on" || value == "true"
	switch key {
	case "emailNotifications":
		cfg.EmailNotifications = on
	case "autoPublish":
		cfg.AutoPublish = on
	case "darkMode":
		cfg.DarkMode = on
	case "compactMode":
		cfg.CompactMode = on
	case "currency":
		cfg.Currency = strings.ToUpper(value)
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	s.app.SaveSettings(cfg)
	fmt.Fprintln(s.out, "settings saved")
	return nil
}

// --- Rendering ---

func (s *shell) printInventory() {
	items := s.app.FilteredInventory()
	if len(items) == 0 {
		fmt.Fprintln(s.out, "no items")
		return
	}
	fmt.Fprintf(s.out, "%-38s %-24s %-12s %10s  %-8s %s\n", "ID", "TITLE", "CATEGORY", "PRICE", "STATUS", "ADDED")
	for _, it := range items {
		fmt.Fprintf(s.out, "%-38s %-24s %-12s %10.2f  %-8s %s\n",
			it.ID, truncate(it.Title, 24), truncate(it.Category, 12), it.Price, it.Status, it.DateAdded)
	}
}

func (s *shell) printStats() {
	st := s.app.Store.Stats()
	fmt.Fprintf(s.out, "items: %d (for sale %d, sold %d)\n", st.TotalCount, st.ForSaleCount, st.SoldCount)
	fmt.Fprintf(s.out, "valuation: %.2f (for sale %.2f, sold %.2f), avg %.2f\n",
		st.TotalValue, st.ForSaleValue, st.SoldValue, st.AveragePrice)

	dist := s.app.Store.CategoryDistribution()
	categories := make([]string, 0, len(dist))
	for c := range dist {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	for _, c := range categories {
		fmt.Fprintf(s.out, "  %-16s %d\n", c, dist[c])
	}
}

func (s *shell) printDraft() {
	if s.app.Workflow.State() != listing.StateReview {
		fmt.Fprintf(s.out, "no draft (workflow is %s)\n", s.app.Workflow.State())
		return
	}
	d := s.app.Workflow.Draft()
	fmt.Fprintf(s.out, "title:     %s\ncategory:  %s\ncondition: %s\nprice:     %.2f\ndesc:      %s\n",
		d.Title, d.Category, d.Condition, d.Price, d.Description)
	for i, attr := range d.Attributes {
		fmt.Fprintf(s.out, "attr[%d]:   %s = %s\n", i, attr.Key, attr.Value)
	}
}

func (s *shell) printNotifications() {
	entries := s.app.Notifications.All()
	if len(entries) == 0 {
		fmt.Fprintln(s.out, "no notifications")
		return
	}
	for _, n := range entries {
		marker := " "
		if !n.Read {
			marker = "*"
		}
		fmt.Fprintf(s.out, "%s %-20s %-45s %s\n", marker, n.Title, n.Message, n.Time)
	}
}

func (s *shell) confirmDelete() bool {
	fmt.Fprint(s.out, "Are you sure you want to delete this record? [y/N] ")
	line, ok := <-s.lines
	if !ok {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// --- Helpers ---

func splitCommand(s string) (string, string) {
	parts := strings.SplitN(strings.TrimSpace(s), " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.TrimSpace(parts[1])
}

func splitPair(s string) (string, string) {
	parts := strings.SplitN(s, "=", 2)
	if len(parts) == 1 {
		return strings.TrimSpace(parts[0]), ""
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
}

func truncate(s string, n int) string {
	// Slice on runes so multi-byte titles are never cut mid-character.
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func mimeTypeForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	default:
		return "image/jpeg"
	}
}
