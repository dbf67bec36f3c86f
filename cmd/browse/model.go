package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"stockswipe/internal/client"
	"stockswipe/internal/deck"
	apperrors "stockswipe/internal/errors"
	"stockswipe/internal/models"
	"stockswipe/internal/realtime"
)

// Messages.
type snapshotMsg struct {
	ticker string
	snap   models.MarketSnapshot
}

type insightMsg struct {
	ticker string
	err    error
}

type picksMsg struct {
	picks []models.DailyPick
	err   error
}

type generatedMsg struct {
	count int
	err   error
}

// model is the swipe deck: one card at a time, with prefetch scheduled as
// the position moves.
type model struct {
	ctx       context.Context
	api       *client.APIClient
	deck      *deck.Generator
	size      int
	cache     *realtime.Cache
	scheduler *realtime.Scheduler
	insights  *realtime.InsightStore
	withAI    bool
	provider  string

	cards       []models.StockCard
	pos         int
	snaps       map[string]models.MarketSnapshot
	insightErrs map[string]error
	pending     map[string]bool // insight requests in flight

	// Picks view.
	showPicks bool
	picks     []models.DailyPick
	picksErr  error
	status    string

	viewport      viewport.Model
	ready         bool
	width, height int
}

func initialModel(ctx context.Context, api *client.APIClient, gen *deck.Generator, size int, withAI bool, provider string) model {
	cache := realtime.NewCache(api)
	m := model{
		ctx:         ctx,
		api:         api,
		deck:        gen,
		size:        size,
		cache:       cache,
		scheduler:   realtime.NewScheduler(cache),
		insights:    realtime.NewInsightStore(api),
		withAI:      withAI,
		provider:    provider,
		snaps:       make(map[string]models.MarketSnapshot),
		insightErrs: make(map[string]error),
		pending:     make(map[string]bool),
	}
	m.topUp()
	return m
}

func (m model) Init() tea.Cmd {
	return m.show()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "enter", "n", "right", " ":
			if m.showPicks {
				return m, nil
			}
			m.pos++
			m.topUp()
			m.refreshContent()
			m.viewport.GotoTop()
			return m, m.show()
		case "i":
			if m.showPicks {
				return m, nil
			}
			cmd = m.loadInsight()
			m.refreshContent()
			return m, cmd
		case "r":
			if m.showPicks {
				return m, m.loadPicks()
			}
			card := m.current()
			delete(m.snaps, card.Ticker)
			m.refreshContent()
			return m, m.refresh(card.Ticker)
		case "p":
			m.showPicks = !m.showPicks
			m.status = ""
			m.refreshContent()
			m.viewport.GotoTop()
			if m.showPicks {
				return m, m.loadPicks()
			}
			return m, nil
		case "g":
			if !m.showPicks {
				return m, nil
			}
			m.status = "generating picks..."
			m.refreshContent()
			return m, m.generatePicks()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := m.height - 2
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.ready = true
			m.viewport.SetContent(m.renderContent())
			return m, nil
		}
		m.viewport.Width = m.width
		m.viewport.Height = vpHeight
		return m, nil

	case snapshotMsg:
		m.snaps[msg.ticker] = msg.snap
		m.refreshContent()
		return m, nil

	case insightMsg:
		delete(m.pending, msg.ticker)
		if msg.err != nil {
			m.insightErrs[msg.ticker] = msg.err
		} else {
			delete(m.insightErrs, msg.ticker)
		}
		m.refreshContent()
		return m, nil

	case picksMsg:
		m.picks, m.picksErr = msg.picks, msg.err
		m.refreshContent()
		return m, nil

	case generatedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("generation failed: %v", msg.err)
			m.refreshContent()
			return m, nil
		}
		m.status = fmt.Sprintf("generated %d picks", msg.count)
		m.refreshContent()
		return m, m.loadPicks()
	}

	if m.ready {
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

func (m model) View() string {
	if !m.ready {
		return "Loading..."
	}

	title := fmt.Sprintf(" Stock Swipe    card %d    cached %d ", m.pos+1, m.cache.Len())
	footer := " q quit  enter next  r refresh  p picks"
	if m.withAI {
		footer += "  i insight"
	}
	if m.showPicks {
		title = " Stock Swipe    weekly picks "
		footer = " q quit  p cards  r reload  g generate"
	}
	return headerStyle.Render(padOrTrunc(title, m.width)) + "\n" +
		m.viewport.View() + "\n" +
		footerStyle.Render(padOrTrunc(footer, m.width))
}

func (m *model) refreshContent() {
	if m.ready {
		m.viewport.SetContent(m.renderContent())
	}
}

func (m model) renderContent() string {
	if m.showPicks {
		return m.renderPicksView()
	}

	card := m.current()
	snap, loaded := m.snaps[card.Ticker]
	var b strings.Builder
	b.WriteString(renderCard(m.pos+1, card, snap, loaded))

	if !m.withAI {
		return b.String()
	}
	b.WriteString("\n")
	switch in, ok := m.insights.Get(card.Ticker); {
	case ok:
		b.WriteString(renderInsight(in))
	case m.pending[card.Ticker]:
		b.WriteString(dimStyle.Render("  asking the model...") + "\n")
	case m.insightErrs[card.Ticker] != nil:
		b.WriteString(lossStyle.Render("  insight unavailable, press i to retry") + "\n")
	}
	return b.String()
}

func (m model) renderPicksView() string {
	var b strings.Builder
	if m.status != "" {
		b.WriteString(dimStyle.Render("  "+m.status) + "\n\n")
	}
	switch {
	case errors.Is(m.picksErr, apperrors.ErrPicksUnavailable):
		b.WriteString("  weekly picks are missing or outdated, press g to generate\n")
	case m.picksErr != nil:
		b.WriteString(lossStyle.Render(fmt.Sprintf("  picks unavailable: %v", m.picksErr)) + "\n")
	case m.picks == nil:
		b.WriteString(dimStyle.Render("  loading picks...") + "\n")
	default:
		b.WriteString(renderPicks(m.picks))
	}
	return b.String()
}

func (m model) current() models.StockCard {
	return m.cards[m.pos]
}

// topUp extends the deck before the prefetch windows run past its end.
func (m *model) topUp() {
	for m.pos+realtime.HighPriorityWindow+realtime.LowPriorityWindow >= len(m.cards) {
		batch := m.deck.GenerateBatch(m.size)
		if len(batch) == 0 {
			return
		}
		m.cards = append(m.cards, batch...)
	}
}

// show schedules prefetch around the current position and loads its card.
func (m model) show() tea.Cmd {
	m.scheduler.Schedule(m.ctx, m.cards, m.pos)
	ctx, cache, ticker := m.ctx, m.cache, m.current().Ticker
	return func() tea.Msg {
		return snapshotMsg{ticker: ticker, snap: cache.GetOrRefresh(ctx, ticker)}
	}
}

func (m model) refresh(ticker string) tea.Cmd {
	ctx, cache := m.ctx, m.cache
	return func() tea.Msg {
		return snapshotMsg{ticker: ticker, snap: cache.Refresh(ctx, ticker)}
	}
}

// loadInsight asks for the current card's insight unless one is stored or
// already requested.
func (m *model) loadInsight() tea.Cmd {
	if !m.withAI {
		return nil
	}
	card := m.current()
	if _, ok := m.insights.Get(card.Ticker); ok || m.pending[card.Ticker] {
		return nil
	}
	m.pending[card.Ticker] = true

	snap := m.snaps[card.Ticker]
	req := models.RationaleRequest{
		Symbol:    card.Ticker,
		Name:      card.Name,
		Price:     snap.Price,
		ChangePct: snap.ChangePct,
	}
	ctx, store := m.ctx, m.insights
	return func() tea.Msg {
		_, err := store.Fetch(ctx, req)
		return insightMsg{ticker: card.Ticker, err: err}
	}
}

func (m model) loadPicks() tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		picks, err := api.DailyPicks(ctx)
		if err == nil && picks == nil {
			picks = []models.DailyPick{}
		}
		return picksMsg{picks: picks, err: err}
	}
}

func (m model) generatePicks() tea.Cmd {
	ctx, api, provider := m.ctx, m.api, m.provider
	return func() tea.Msg {
		n, err := api.GeneratePicks(ctx, provider)
		return generatedMsg{count: n, err: err}
	}
}
