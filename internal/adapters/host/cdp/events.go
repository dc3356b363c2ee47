package cdp

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/tabzen/internal/domain"
	"github.com/ysmood/gson"
)

const eventBinding = "tabzenEmit"

// listenJS registers the chrome listeners once per binding name and forwards
// each event to the exposed Go function.
const listenJS = `(name) => {
	const flag = "__listening_" + name;
	if (window[flag]) return true;
	window[flag] = true;
	const emit = (kind, tabId, windowId) => window[name]({kind, tabId, windowId});
	chrome.tabs.onActivated.addListener((info) => emit("activated", info.tabId, info.windowId));
	chrome.tabs.onUpdated.addListener((tabId, change, tab) => {
		if (change.status === "complete") emit("loaded", tabId, tab.windowId);
	});
	chrome.tabs.onRemoved.addListener((tabId, info) => emit("removed", tabId, info.windowId));
	chrome.windows.onFocusChanged.addListener(async (windowId) => {
		if (windowId === chrome.windows.WINDOW_ID_NONE) return;
		const [tab] = await chrome.tabs.query({active: true, windowId});
		if (tab) emit("window_focused", tab.id, windowId);
	});
	return true;
}`

func (h *Host) Events(ctx context.Context) (<-chan domain.TabEvent, error) {
	page, err := h.bridge(ctx)
	if err != nil {
		return nil, err
	}

	events := make(chan domain.TabEvent, 64)
	var mu sync.Mutex
	closed := false

	stop, err := page.Expose(eventBinding, func(payload gson.JSON) (interface{}, error) {
		event, ok := decodeEvent(payload)
		if !ok {
			h.logger.Debug("ignoring unknown tab event", "payload", payload.JSON("", ""))
			return nil, nil
		}

		mu.Lock()
		defer mu.Unlock()
		if closed {
			return nil, nil
		}
		select {
		case events <- event:
		default:
			h.logger.Warn("tab event buffer full, dropping event", "tab_id", event.TabID, "event", event.Kind)
		}
		return nil, nil
	})
	if err != nil {
		return nil, fmt.Errorf("expose event binding: %w", err)
	}

	if err := h.eval(ctx, nil, listenJS, eventBinding); err != nil {
		_ = stop()
		return nil, fmt.Errorf("register tab listeners: %w", err)
	}

	go func() {
		<-ctx.Done()
		if err := stop(); err != nil {
			h.logger.Debug("unbind event binding", "error", err)
		}
		mu.Lock()
		closed = true
		close(events)
		mu.Unlock()
	}()

	return events, nil
}

func decodeEvent(payload gson.JSON) (domain.TabEvent, bool) {
	event := domain.TabEvent{
		Kind:     domain.TabEventKind(payload.Get("kind").Str()),
		TabID:    domain.TabID(payload.Get("tabId").Int()),
		WindowID: payload.Get("windowId").Int(),
	}

	switch event.Kind {
	case domain.TabEventActivated, domain.TabEventLoaded, domain.TabEventWindowFocused, domain.TabEventRemoved:
		return event, event.TabID > 0
	default:
		return domain.TabEvent{}, false
	}
}
