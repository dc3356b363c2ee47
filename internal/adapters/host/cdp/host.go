package cdp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/bnema/tabzen/internal/domain"
	"github.com/bnema/tabzen/internal/ports"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

const (
	DefaultControlURL = "127.0.0.1:9222"
	DefaultBridgePath = "bridge.html"
	DefaultTimeout    = 10 * time.Second
)

type Config struct {
	// ControlURL is a DevTools host:port or a ws:// debugger URL.
	ControlURL  string
	ExtensionID string
	BridgePath  string
	Timeout     time.Duration
}

// Host drives chrome.tabs and chrome.tabGroups by evaluating calls inside the
// companion extension's bridge page over the DevTools protocol. Plain CDP has
// no notion of pinning or tab groups, so the extension context is required.
type Host struct {
	cfg    Config
	logger *slog.Logger

	mu      sync.Mutex
	browser *rod.Browser
	page    *rod.Page
	created bool
}

var (
	_ ports.TabHost        = (*Host)(nil)
	_ ports.TabEventSource = (*Host)(nil)
)

func New(cfg Config, logger *slog.Logger) *Host {
	if cfg.ControlURL == "" {
		cfg.ControlURL = DefaultControlURL
	}
	if cfg.BridgePath == "" {
		cfg.BridgePath = DefaultBridgePath
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Host{cfg: cfg, logger: logger}
}

func (h *Host) BridgeURL() string {
	return fmt.Sprintf("chrome-extension://%s/%s", h.cfg.ExtensionID, strings.TrimPrefix(h.cfg.BridgePath, "/"))
}

type chromeTab struct {
	ID       int    `json:"id"`
	WindowID int    `json:"windowId"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Pinned   bool   `json:"pinned"`
	Active   bool   `json:"active"`
	GroupID  int    `json:"groupId"`
}

type chromeGroup struct {
	ID       int    `json:"id"`
	WindowID int    `json:"windowId"`
	Title    string `json:"title"`
	Color    string `json:"color"`
}

func (h *Host) ListTabs(ctx context.Context) ([]domain.Tab, error) {
	var raw []chromeTab
	if err := h.eval(ctx, &raw, `() => chrome.tabs.query({})`); err != nil {
		return nil, fmt.Errorf("query tabs: %w", err)
	}

	tabs := make([]domain.Tab, 0, len(raw))
	for _, t := range raw {
		tabs = append(tabs, domain.Tab{
			ID:       domain.TabID(t.ID),
			WindowID: t.WindowID,
			Title:    t.Title,
			URL:      t.URL,
			Pinned:   t.Pinned,
			Active:   t.Active,
			GroupID:  toGroupID(t.GroupID),
		})
	}

	return tabs, nil
}

func (h *Host) SetPinned(ctx context.Context, id domain.TabID, pinned bool) error {
	return h.eval(ctx, nil, `(id, pinned) => chrome.tabs.update(id, {pinned}).then(() => true)`, int(id), pinned)
}

func (h *Host) RemoveTabs(ctx context.Context, ids []domain.TabID) error {
	return h.eval(ctx, nil, `(ids) => chrome.tabs.remove(ids).then(() => true)`, toInts(ids))
}

func (h *Host) ActivateTab(ctx context.Context, id domain.TabID) error {
	return h.eval(ctx, nil, `(id) => chrome.tabs.update(id, {active: true})
		.then((tab) => chrome.windows.update(tab.windowId, {focused: true}))
		.then(() => true)`, int(id))
}

func (h *Host) FindGroup(ctx context.Context, title string) (domain.TabGroup, error) {
	var raw []chromeGroup
	if err := h.eval(ctx, &raw, `(title) => chrome.tabGroups.query({title})`, title); err != nil {
		return domain.TabGroup{}, fmt.Errorf("query tab groups: %w", err)
	}

	// tabGroups.query matches titles as patterns, keep exact matches only.
	for _, g := range raw {
		if g.Title == title {
			return domain.TabGroup{
				ID:       domain.GroupID(g.ID),
				WindowID: g.WindowID,
				Title:    g.Title,
				Color:    domain.GroupColor(g.Color),
			}, nil
		}
	}

	return domain.TabGroup{}, domain.ErrGroupNotFound
}

func (h *Host) GroupTabs(ctx context.Context, groupID domain.GroupID, ids []domain.TabID) (domain.GroupID, error) {
	var id int
	err := h.eval(ctx, &id, `(groupId, tabIds) => groupId > 0
		? chrome.tabs.group({groupId, tabIds})
		: chrome.tabs.group({tabIds})`, int(groupID), toInts(ids))
	if err != nil {
		return domain.NoGroup, err
	}

	return domain.GroupID(id), nil
}

func (h *Host) UpdateGroup(ctx context.Context, id domain.GroupID, title string, color domain.GroupColor) error {
	return h.eval(ctx, nil, `(id, title, color) => chrome.tabGroups.update(id, {title, color}).then(() => true)`,
		int(id), title, string(color))
}

// Close closes the bridge page when this host opened it. The browser itself is left running.
func (h *Host) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.page == nil || !h.created {
		return nil
	}

	err := h.page.Close()
	h.page = nil
	return err
}

func (h *Host) eval(ctx context.Context, out any, js string, args ...any) error {
	page, err := h.bridge(ctx)
	if err != nil {
		return err
	}

	callCtx, cancel := context.WithTimeout(ctx, h.cfg.Timeout)
	defer cancel()

	res, err := page.Context(callCtx).Evaluate(rod.Eval(js, args...).ByPromise())
	if err != nil {
		return classify(err)
	}
	if out == nil {
		return nil
	}

	if err := json.Unmarshal([]byte(res.Value.JSON("", "")), out); err != nil {
		return fmt.Errorf("decode bridge result: %w", err)
	}

	return nil
}

func (h *Host) bridge(ctx context.Context) (*rod.Page, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.page != nil {
		return h.page, nil
	}
	if h.cfg.ExtensionID == "" {
		return nil, fmt.Errorf("%w: extension id is not configured", domain.ErrHostUnavailable)
	}

	if h.browser == nil {
		wsURL, err := launcher.ResolveURL(h.cfg.ControlURL)
		if err != nil {
			return nil, fmt.Errorf("%w: resolve devtools url %s: %v", domain.ErrHostUnavailable, h.cfg.ControlURL, err)
		}

		browser := rod.New().ControlURL(wsURL)
		if err := browser.Connect(); err != nil {
			return nil, fmt.Errorf("%w: connect to chrome: %v", domain.ErrHostUnavailable, err)
		}
		h.browser = browser
		h.logger.Info("connected to chrome", "control_url", h.cfg.ControlURL)
	}

	bridgeURL := h.BridgeURL()
	pages, err := h.browser.Context(ctx).Pages()
	if err != nil {
		return nil, fmt.Errorf("%w: list pages: %v", domain.ErrHostUnavailable, err)
	}
	for _, p := range pages {
		info, err := p.Info()
		if err == nil && strings.HasPrefix(info.URL, bridgeURL) {
			h.page = p.Context(context.Background())
			return h.page, nil
		}
	}

	page, err := h.browser.Context(ctx).Page(proto.TargetCreateTarget{URL: bridgeURL})
	if err != nil {
		return nil, fmt.Errorf("%w: open bridge page %s: %v", domain.ErrHostUnavailable, bridgeURL, err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: load bridge page: %v", domain.ErrHostUnavailable, err)
	}

	h.page = page.Context(context.Background())
	h.created = true
	h.logger.Info("opened bridge page", "url", bridgeURL)

	return h.page, nil
}

func classify(err error) error {
	var evalErr *rod.EvalError
	if errors.As(err, &evalErr) && strings.Contains(evalErr.Error(), "No tab with id") {
		return fmt.Errorf("%w: %v", domain.ErrTabNotFound, err)
	}

	return err
}

func toGroupID(raw int) domain.GroupID {
	// chrome.tabGroups.TAB_GROUP_ID_NONE is -1.
	if raw <= 0 {
		return domain.NoGroup
	}

	return domain.GroupID(raw)
}

func toInts(ids []domain.TabID) []int {
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		out = append(out, int(id))
	}

	return out
}
