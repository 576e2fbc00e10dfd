package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gongmyung/app-showcase/internal/service"
	"github.com/gongmyung/app-showcase/models"
)

// storeTabs orders the list filter tabs. The zero tab shows everything.
var storeTabs = []struct {
	label string
	store models.AppStore
}{
	{label: "All", store: ""},
	{label: "Google Play", store: models.GooglePlay},
	{label: "App Store", store: models.AppleStore},
}

type appsLoadedMsg struct {
	apps     []models.AppRecord
	featured map[string]bool
	events   map[string]bool
	err      error
}

type refreshDoneMsg struct {
	apps []models.AppRecord
	err  error
}

type deleteDoneMsg struct {
	err error
}

type toggleDoneMsg struct {
	flag models.GalleryFlag
	id   string
	on   bool
	err  error
}

type galleryModel struct {
	ctx      context.Context
	services *service.ClientServices

	apps     []models.AppRecord
	featured map[string]bool
	events   map[string]bool

	tab     int
	idx     int
	loading bool
	syncing bool
	status  string
	errMsg  string

	detail     bool
	confirming bool

	logout bool
}

func newGalleryModel(ctx context.Context, services *service.ClientServices) galleryModel {
	return galleryModel{
		ctx:      ctx,
		services: services,
		featured: map[string]bool{},
		events:   map[string]bool{},
		loading:  true,
	}
}

func (m galleryModel) Init() tea.Cmd {
	return m.cmdLoadApps()
}

func (m galleryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case appsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.apps = msg.apps
		m.featured = msg.featured
		m.events = msg.events
		m.clampCursor()
		return m, nil

	case refreshDoneMsg:
		m.syncing = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Sync failed: %v", msg.err)
			return m, nil
		}
		m.apps = msg.apps
		m.status = fmt.Sprintf("Synced, %d apps", len(msg.apps))
		m.errMsg = ""
		m.clampCursor()
		return m, nil

	case deleteDoneMsg:
		m.confirming = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Delete failed: %v", msg.err)
			m.loading = true
			return m, m.cmdLoadApps()
		}
		m.status = "App deleted"
		m.errMsg = ""
		m.detail = false
		m.loading = true
		return m, m.cmdLoadApps()

	case toggleDoneMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Toggle failed: %v", msg.err)
			return m, nil
		}
		switch msg.flag {
		case models.FlagFeatured:
			m.featured[msg.id] = msg.on
		case models.FlagEvent:
			m.events[msg.id] = msg.on
		}
		m.errMsg = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m galleryModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirming {
		switch {
		case key.Matches(msg, keys.yes):
			if app, ok := m.selected(); ok {
				return m, m.cmdDelete(app.ID)
			}
			m.confirming = false
			return m, nil
		case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
			m.confirming = false
			return m, nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit

	case key.Matches(msg, keys.logout):
		m.logout = true
		return m, tea.Quit

	case key.Matches(msg, keys.esc):
		if m.detail {
			m.detail = false
		}
		return m, nil

	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
		return m, nil

	case key.Matches(msg, keys.down):
		if m.idx < len(m.visible())-1 {
			m.idx++
		}
		return m, nil

	case key.Matches(msg, keys.tab):
		m.tab = (m.tab + 1) % len(storeTabs)
		m.idx = 0
		m.detail = false
		return m, nil

	case key.Matches(msg, keys.enter):
		if _, ok := m.selected(); ok {
			m.detail = true
		}
		return m, nil

	case key.Matches(msg, keys.sync):
		if m.syncing {
			return m, nil
		}
		m.syncing = true
		m.status = "Syncing..."
		return m, m.cmdRefresh()

	case key.Matches(msg, keys.delete):
		if _, ok := m.selected(); ok {
			m.confirming = true
		}
		return m, nil

	case key.Matches(msg, keys.featured):
		if app, ok := m.selected(); ok {
			return m, m.cmdToggle(models.FlagFeatured, app.ID)
		}
		return m, nil

	case key.Matches(msg, keys.event):
		if app, ok := m.selected(); ok {
			return m, m.cmdToggle(models.FlagEvent, app.ID)
		}
		return m, nil

	case key.Matches(msg, keys.copy):
		if app, ok := m.selected(); ok {
			if app.StoreURL == "" {
				m.errMsg = "Selected app has no store URL"
				return m, nil
			}
			if err := clipboard.WriteAll(app.StoreURL); err != nil {
				m.errMsg = fmt.Sprintf("Clipboard: %v", err)
				return m, nil
			}
			m.status = "Store URL copied"
			m.errMsg = ""
		}
		return m, nil
	}

	return m, nil
}

// visible filters the cached list by the active store tab.
func (m galleryModel) visible() []models.AppRecord {
	active := storeTabs[m.tab].store
	if active == "" {
		return m.apps
	}

	filtered := make([]models.AppRecord, 0, len(m.apps))
	for _, app := range m.apps {
		if app.Store == active {
			filtered = append(filtered, app)
		}
	}
	return filtered
}

func (m galleryModel) selected() (models.AppRecord, bool) {
	visible := m.visible()
	if m.idx < 0 || m.idx >= len(visible) {
		return models.AppRecord{}, false
	}
	return visible[m.idx], true
}

func (m *galleryModel) clampCursor() {
	if m.idx >= len(m.visible()) {
		m.idx = len(m.visible()) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m galleryModel) View() string {
	if m.loading {
		return renderPage("GALLERY", "Loading apps...", "q: quit")
	}

	if m.confirming {
		return m.viewConfirm()
	}
	if m.detail {
		return m.viewDetail()
	}

	var b strings.Builder
	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")

	visible := m.visible()
	if len(visible) == 0 {
		b.WriteString("No apps in this tab.\n")
	}
	for i, app := range visible {
		line := fmt.Sprintf("%s %-24s %-12s %s", m.markers(app.ID), truncate(app.Name, 24), app.Status, app.UploadDate)
		if i == m.idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.viewStatusLine())

	help := "tab: store │ enter: detail │ f/e: flags │ c: copy url │ d: delete │ s: sync │ L: logout │ q: quit"
	return renderPage("GALLERY", strings.TrimRight(b.String(), "\n"), help)
}

func (m galleryModel) viewTabs() string {
	parts := make([]string, 0, len(storeTabs))
	for i, t := range storeTabs {
		if i == m.tab {
			parts = append(parts, activeTabStyle.Render(t.label))
		} else {
			parts = append(parts, tabStyle.Render(t.label))
		}
	}
	return strings.Join(parts, "  ")
}

func (m galleryModel) viewDetail() string {
	app, ok := m.selected()
	if !ok {
		return renderPage("GALLERY", "Nothing selected.", "esc: back")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Name        %s\n", app.Name)
	fmt.Fprintf(&b, "Developer   %s\n", app.Developer)
	fmt.Fprintf(&b, "Store       %s\n", app.Store)
	fmt.Fprintf(&b, "Status      %s\n", app.Status)
	fmt.Fprintf(&b, "Rating      %.1f  (%s downloads)\n", app.Rating, app.Downloads)
	fmt.Fprintf(&b, "Uploaded    %s\n", app.UploadDate)
	if app.Version != "" {
		fmt.Fprintf(&b, "Version     %s\n", app.Version)
	}
	if app.StoreURL != "" {
		fmt.Fprintf(&b, "Store URL   %s\n", app.StoreURL)
	}
	fmt.Fprintf(&b, "Icon        %s\n", app.IconURL)
	fmt.Fprintf(&b, "Screenshots %d\n", len(app.ScreenshotURLs))
	if len(app.Tags) > 0 {
		fmt.Fprintf(&b, "Tags        %s\n", strings.Join(app.Tags, ", "))
	}
	fmt.Fprintf(&b, "Flags       %s\n", m.markers(app.ID))
	if app.Description != "" {
		b.WriteString("\n")
		b.WriteString(app.Description)
		b.WriteString("\n")
	}

	return renderPage("APP DETAIL", strings.TrimRight(b.String(), "\n"), "esc: back │ f/e: flags │ c: copy url │ d: delete")
}

func (m galleryModel) viewConfirm() string {
	app, _ := m.selected()
	box := overlayBoxStyle.Render(fmt.Sprintf("Delete %q and its media files?\n\n[y] yes   [n] no", app.Name))
	return appStyle.Render(box)
}

func (m galleryModel) viewStatusLine() string {
	switch {
	case m.errMsg != "":
		return errorStyle.Render(m.errMsg)
	case m.syncing:
		return statusStyle.Render("Syncing...")
	case m.status != "":
		return statusStyle.Render(m.status)
	default:
		return statusStyle.Render(fmt.Sprintf("%d apps cached", len(m.apps)))
	}
}

// markers renders the local-only flag column: "*" featured, "e" event.
func (m galleryModel) markers(id string) string {
	marks := []byte("  ")
	if m.featured[id] {
		marks[0] = '*'
	}
	if m.events[id] {
		marks[1] = 'e'
	}
	return string(marks)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

func (m galleryModel) cmdLoadApps() tea.Cmd {
	ctx := m.ctx
	gallery := m.services.Gallery

	return func() tea.Msg {
		apps, err := gallery.Apps(ctx)
		if err != nil {
			return appsLoadedMsg{err: err}
		}

		featured, events, err := gallery.Marks(ctx)
		if err != nil {
			return appsLoadedMsg{err: err}
		}

		return appsLoadedMsg{apps: apps, featured: featured, events: events}
	}
}

func (m galleryModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	gallery := m.services.Gallery

	return func() tea.Msg {
		apps, err := gallery.Refresh(ctx)
		return refreshDoneMsg{apps: apps, err: err}
	}
}

func (m galleryModel) cmdDelete(id string) tea.Cmd {
	ctx := m.ctx
	gallery := m.services.Gallery

	return func() tea.Msg {
		return deleteDoneMsg{err: gallery.DeleteApp(ctx, id)}
	}
}

func (m galleryModel) cmdToggle(flag models.GalleryFlag, id string) tea.Cmd {
	ctx := m.ctx
	gallery := m.services.Gallery

	return func() tea.Msg {
		var on bool
		var err error
		switch flag {
		case models.FlagFeatured:
			on, err = gallery.ToggleFeatured(ctx, id)
		case models.FlagEvent:
			on, err = gallery.ToggleEvent(ctx, id)
		}
		return toggleDoneMsg{flag: flag, id: id, on: on, err: err}
	}
}
