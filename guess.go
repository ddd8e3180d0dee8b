/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

// Characterdle guessing game
//
// A hidden character is drawn from the appearances the players tick. Each
// guess is compared field by field against it, and every connected browser
// sees the same board, so a game link can be shared and played together.
//
// Features:
// - WebSockets per game ID: /guess/:gameid and /guess/:gameid/ws
// - Players identified by cookie (playerID)
// - Autocomplete from the remaining pool, with fuzzy fallbacks
// - Hints and per-column value lists on request
// - Reconnecting clients get the board replayed
// - Games auto-reaped after configurable idle timeout
// - Random 8-char game IDs via crypto/rand, with server-side collision check
// - In-browser QR button to share the current session, backed by go-qrcode

package main

import (
	"crypto/rand"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Seednode/characterdle/character"
	"github.com/Seednode/characterdle/game"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
	"golang.org/x/time/rate"
)

// Messages coming from clients
type ClientMessage struct {
	Type    string          `json:"type"`              // "start", "suggest", "select", "guess", "give_up", "hint", "column_info", "reset", "ping"
	Filters map[string]bool `json:"filters,omitempty"` // start
	Query   string          `json:"query,omitempty"`   // suggest / select
	Index   int             `json:"index,omitempty"`   // select
	Name    string          `json:"name,omitempty"`    // guess
	Column  string          `json:"column,omitempty"`  // column_info
}

// ColumnHeader names a verdict column for display.
type ColumnHeader struct {
	Field character.Field `json:"field"`
	Label string          `json:"label"`
}

// SessionInfoMessage is sent on connect and whenever the game is started or
// reset, so every client can redraw from scratch.
type SessionInfoMessage struct {
	Type       string                `json:"type"` // "session_info"
	GameID     string                `json:"game_id"`
	Phase      string                `json:"phase"`
	Outcome    string                `json:"outcome,omitempty"`
	Filters    map[string]bool       `json:"filters"`
	Checked    map[string]bool       `json:"checked"`
	Categories *character.Categories `json:"categories"`
	Columns    []ColumnHeader        `json:"columns"`
	Candidates int                   `json:"candidates"`
	GuessCount int                   `json:"guess_count"`
}

// BoardMessage replays a game in progress to a client that just joined.
type BoardMessage struct {
	Type     string               `json:"type"` // "board"
	Rows     []GuessResultMessage `json:"rows"`
	GameOver *GameOverMessage     `json:"game_over,omitempty"`
}

type SuggestionsMessage struct {
	Type         string   `json:"type"` // "suggestions"
	Query        string   `json:"query"`
	Names        []string `json:"names"`
	Alternatives []string `json:"alternatives,omitempty"`
}

type GuessResultMessage struct {
	Type       string            `json:"type"` // "guess_result"
	Name       string            `json:"name"`
	Image      string            `json:"image,omitempty"`
	Verdict    game.Verdict      `json:"verdict"`
	Values     map[string]string `json:"values"`
	Order      []character.Field `json:"order"`
	GuessCount int               `json:"guess_count"`
	Solved     bool              `json:"solved"`
}

type GameOverMessage struct {
	Type       string            `json:"type"` // "game_over"
	Outcome    string            `json:"outcome"`
	Target     string            `json:"target"`
	Image      string            `json:"image,omitempty"`
	Verdict    game.Verdict      `json:"verdict"`
	Values     map[string]string `json:"values"`
	GuessCount int               `json:"guess_count"`
}

type HintMessage struct {
	Type      string `json:"type"` // "hint"
	Hint      string `json:"hint"`
	Remaining int    `json:"remaining"`
}

type ColumnInfoMessage struct {
	Type   string   `json:"type"` // "column_info"
	Column string   `json:"column"`
	Values []string `json:"values"`
}

// ErrorMessage goes only to the client whose request failed.
type ErrorMessage struct {
	Type    string `json:"type"` // "error"
	Code    string `json:"code"`
	Message string `json:"message"`
}

var columnLabels = map[character.Field]string{
	character.FieldName:          "Name",
	character.FieldGender:        "Gender",
	character.FieldSpecies:       "Species",
	character.FieldPlaceOfOrigin: "Origin",
	character.FieldBendingType:   "Bending",
	character.FieldSpecialSkills: "Sub-Skills",
	character.FieldAffiliation:   "Affiliation",
	character.FieldAppearances:   "Appearances",
}

func columnHeaders() []ColumnHeader {
	out := make([]ColumnHeader, 0, len(character.Columns))
	for _, f := range character.Columns {
		out = append(out, ColumnHeader{Field: f, Label: columnLabels[f]})
	}
	return out
}

// columnByLabel accepts either a field name or its display label.
func columnByLabel(label string) (character.Field, bool) {
	label = strings.TrimSpace(label)
	for _, f := range character.Columns {
		if strings.EqualFold(label, string(f)) || strings.EqualFold(label, columnLabels[f]) {
			return f, true
		}
	}
	return "", false
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, game.ErrEmptyPool):
		return "empty_pool"
	case errors.Is(err, game.ErrNotActive):
		return "not_active"
	case errors.Is(err, game.ErrNoHints):
		return "no_hints"
	case errors.Is(err, game.ErrUnknownCharacter):
		return "unknown_character"
	case errors.Is(err, character.ErrMalformedRecord):
		return "malformed_record"
	}
	return "internal"
}

type Client struct {
	conn     *websocket.Conn
	send     chan any
	playerID string
	limiter  *rate.Limiter
}

type event struct {
	client *Client
	msg    ClientMessage
}

type Hub struct {
	id      string
	cfg     *Config
	clients map[*Client]bool

	store *character.Store
	cats  *character.Categories
	pick  game.Picker

	session   *game.Session
	selection game.Selection

	register chan *Client
	unreg    chan *Client
	events   chan event
	done     chan struct{}
	once     sync.Once

	mu sync.RWMutex

	lastActive time.Time
}

func newHub(cfg *Config, gameID string, store *character.Store, cats *character.Categories) *Hub {
	selection := make(game.Selection)
	if cats != nil {
		for _, cat := range cats.Categories {
			selection[cat.Tag] = true
		}
	}

	return &Hub{
		id:         gameID,
		cfg:        cfg,
		clients:    make(map[*Client]bool),
		store:      store,
		cats:       cats,
		pick:       game.UniformPicker,
		session:    game.NewSession(),
		selection:  selection,
		register:   make(chan *Client),
		unreg:      make(chan *Client),
		events:     make(chan event),
		done:       make(chan struct{}),
		lastActive: time.Now(),
	}
}

func (h *Hub) run() {
	for {
		select {
		case <-h.done:
			return

		case c := <-h.register:
			h.join(c)

		case c := <-h.unreg:
			h.mu.Lock()
			h.lastActive = time.Now()

			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()

		case ev := <-h.events:
			h.handle(ev.client, ev.msg)
		}
	}
}

// join adds c and replays the board to it.
func (h *Hub) join(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.lastActive = time.Now()
	h.clients[c] = true

	h.sendLocked(c, h.sessionInfoLocked())

	history := h.session.History()
	board := BoardMessage{
		Type: "board",
		Rows: make([]GuessResultMessage, 0, len(history)),
	}
	for i, g := range history {
		board.Rows = append(board.Rows, h.guessResult(g.Record, g.Verdict, i+1))
	}

	if h.session.Phase() == game.Complete {
		if over, err := h.gameOver(); err == nil {
			board.GameOver = &over
		}
	}

	h.sendLocked(c, board)
}

func (h *Hub) handle(c *Client, msg ClientMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.lastActive = time.Now()

	switch msg.Type {
	case "start":
		h.startLocked(c, msg.Filters)

	case "suggest":
		h.suggestLocked(c, msg.Query)

	case "select":
		if h.session.Phase() != game.Active {
			h.failLocked(c, game.ErrNotActive)
			return
		}
		rec, ok := game.Select(msg.Query, h.remainingLocked(), h.cfg.suggestions, msg.Index)
		if !ok {
			h.failLocked(c, game.ErrUnknownCharacter)
			return
		}
		h.guessLocked(c, rec)

	case "guess":
		if h.session.Phase() != game.Active {
			h.failLocked(c, game.ErrNotActive)
			return
		}
		rec := findByName(h.remainingLocked(), msg.Name)
		if rec == nil {
			if known := h.store.Dataset().Find(msg.Name); known != nil {
				h.failLocked(c, fmt.Errorf("%s is not in play: %w", known.Name, game.ErrUnknownCharacter))
				return
			}
			h.failLocked(c, game.ErrUnknownCharacter)
			return
		}
		h.guessLocked(c, rec)

	case "give_up":
		if _, err := h.session.GiveUp(); err != nil {
			h.failLocked(c, err)
			return
		}

		gamesFinished.WithLabelValues(h.session.Outcome().String()).Inc()
		logf(h.cfg, "GAMES: Gave up on %q after %d guesses in %s", h.session.Target().Name, h.session.Guesses(), h.id)

		over, err := h.gameOver()
		if err != nil {
			h.failLocked(c, err)
			return
		}
		h.broadcastLocked(over)

	case "hint":
		hint, remaining, err := h.session.Hint()
		if err != nil {
			h.failLocked(c, err)
			return
		}
		h.broadcastLocked(HintMessage{Type: "hint", Hint: hint, Remaining: remaining})

	case "column_info":
		f, ok := columnByLabel(msg.Column)
		if !ok {
			h.sendLocked(c, ErrorMessage{Type: "error", Code: "unknown_column", Message: "No such column: " + msg.Column})
			return
		}

		pool := h.session.Pool()
		if pool == nil {
			pool = game.FilterPool(h.store.Dataset().Records, h.selection, h.cats)
		}

		h.sendLocked(c, ColumnInfoMessage{
			Type:   "column_info",
			Column: columnLabels[f],
			Values: game.ColumnValues(pool, f),
		})

	case "reset":
		h.session.Reset()
		logf(h.cfg, "GAMES: Reset %s", h.id)
		h.broadcastLocked(h.sessionInfoLocked())

	default:
		// "ping" and unknown types only keep the game alive
	}
}

func (h *Hub) startLocked(c *Client, filters map[string]bool) {
	sel := h.selection
	if filters != nil {
		sel = make(game.Selection, len(filters))
		for tag, on := range filters {
			sel[tag] = on
		}
	}

	pool := game.FilterPool(h.store.Dataset().Records, sel, h.cats)

	if err := h.session.Start(pool, h.pick); err != nil {
		h.failLocked(c, err)
		return
	}
	h.selection = sel

	gamesStarted.Inc()
	logf(h.cfg, "GAMES: Started %s with %d candidates", h.id, len(pool))

	h.broadcastLocked(h.sessionInfoLocked())
}

func (h *Hub) suggestLocked(c *Client, query string) {
	msg := SuggestionsMessage{
		Type:  "suggestions",
		Query: query,
		Names: []string{},
	}

	if h.session.Phase() == game.Active {
		remaining := h.remainingLocked()

		for _, rec := range game.Rank(query, remaining, h.cfg.suggestions) {
			msg.Names = append(msg.Names, rec.Name)
		}

		if len(msg.Names) == 0 {
			for _, rec := range game.DidYouMean(query, remaining, h.cfg.suggestions) {
				msg.Alternatives = append(msg.Alternatives, rec.Name)
			}
		}
	}

	h.sendLocked(c, msg)
}

func (h *Hub) guessLocked(c *Client, rec *character.Record) {
	v, err := h.session.Play(rec, h)
	if err != nil {
		h.failLocked(c, err)
		return
	}

	guessesMade.Inc()
	logf(h.cfg, "GAMES: Guessed %q in %s (%d)", rec.Name, h.id, h.session.Guesses())

	if v.Solved() {
		gamesFinished.WithLabelValues(h.session.Outcome().String()).Inc()
		logf(h.cfg, "GAMES: Solved %s in %d guesses", h.id, h.session.Guesses())

		over, err := h.gameOver()
		if err != nil {
			h.failLocked(c, err)
			return
		}
		h.broadcastLocked(over)
	}
}

// RenderGuess broadcasts a fresh verdict row. h.mu is held by the caller.
func (h *Hub) RenderGuess(guess *character.Record, v game.Verdict, order []character.Field) {
	msg := h.guessResult(guess, v, h.session.Guesses())
	msg.Order = order
	h.broadcastLocked(msg)
}

func (h *Hub) guessResult(rec *character.Record, v game.Verdict, count int) GuessResultMessage {
	return GuessResultMessage{
		Type:       "guess_result",
		Name:       rec.Name,
		Image:      h.imageFor(rec),
		Verdict:    v,
		Values:     displayValues(rec),
		Order:      character.Columns,
		GuessCount: count,
		Solved:     v.Solved(),
	}
}

func (h *Hub) gameOver() (GameOverMessage, error) {
	target := h.session.Target()
	if target == nil {
		return GameOverMessage{}, game.ErrNotActive
	}

	v, err := game.Compare(target, target)
	if err != nil {
		return GameOverMessage{}, err
	}

	return GameOverMessage{
		Type:       "game_over",
		Outcome:    h.session.Outcome().String(),
		Target:     target.Name,
		Image:      h.imageFor(target),
		Verdict:    v,
		Values:     displayValues(target),
		GuessCount: h.session.Guesses(),
	}, nil
}

func (h *Hub) sessionInfoLocked() SessionInfoMessage {
	msg := SessionInfoMessage{
		Type:       "session_info",
		GameID:     h.id,
		Phase:      h.session.Phase().String(),
		Filters:    h.selection,
		Checked:    h.checkedLocked(),
		Categories: h.cats,
		Columns:    columnHeaders(),
		Candidates: len(h.session.Pool()),
		GuessCount: h.session.Guesses(),
	}

	if h.session.Phase() == game.Complete {
		msg.Outcome = h.session.Outcome().String()
	}

	return msg
}

// checkedLocked is the checkbox state of every catalog tag: leaves that the
// selection activates, and groups with at least one child ticked.
func (h *Hub) checkedLocked() map[string]bool {
	checked := make(map[string]bool)
	if h.cats == nil {
		return checked
	}

	active := h.cats.Expand(h.selection)
	for _, tag := range h.cats.Tags() {
		_, on := active[tag]
		checked[tag] = on
	}

	for _, cat := range h.cats.Categories {
		if len(cat.Children) > 0 {
			checked[cat.Tag] = h.cats.ParentChecked(h.selection, cat.Tag)
		}
	}

	return checked
}

// remainingLocked is the session pool minus characters already guessed.
func (h *Hub) remainingLocked() []*character.Record {
	guessed := make(map[*character.Record]bool)
	for _, g := range h.session.History() {
		guessed[g.Record] = true
	}

	pool := h.session.Pool()
	out := make([]*character.Record, 0, len(pool))
	for _, rec := range pool {
		if !guessed[rec] {
			out = append(out, rec)
		}
	}

	return out
}

func (h *Hub) imageFor(rec *character.Record) string {
	if h.cfg.images == "" {
		return ""
	}
	return character.ImagePath(rec.Image, h.cfg.prefix+"/images")
}

func findByName(pool []*character.Record, name string) *character.Record {
	want := game.Normalize(name)
	if want == "" {
		return nil
	}

	for _, rec := range pool {
		if game.Normalize(rec.Name) == want {
			return rec
		}
	}

	return nil
}

func displayValues(rec *character.Record) map[string]string {
	out := make(map[string]string, len(character.Columns))
	for _, f := range character.Columns {
		if s, ok := rec.Scalar(f); ok {
			out[string(f)] = s
			continue
		}
		if vals, ok := rec.Multi(f); ok {
			out[string(f)] = strings.Join(vals.Set(), ", ")
		}
	}
	return out
}

func (h *Hub) failLocked(c *Client, err error) {
	h.sendLocked(c, ErrorMessage{
		Type:    "error",
		Code:    errorCode(err),
		Message: err.Error(),
	})
}

// sendLocked drops the client if its buffer is full.
func (h *Hub) sendLocked(c *Client, msg any) {
	if _, ok := h.clients[c]; !ok {
		return
	}

	select {
	case c.send <- msg:
	default:
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) broadcastLocked(msg any) {
	for client := range h.clients {
		h.sendLocked(client, msg)
	}
}

// closeAll disconnects all clients of this hub and stops it (used by reaper).
func (h *Hub) closeAll() {
	h.once.Do(func() { close(h.done) })

	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		close(c.send)
		if c.conn != nil {
			_ = c.conn.Close()
		}
		delete(h.clients, c)
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const playerCookieName = "characterdle_id"

func getOrSetPlayerID(cfg *Config, w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(playerCookieName); err == nil && c.Value != "" {
		if _, err := uuid.Parse(c.Value); err == nil {
			return c.Value
		}
	}

	id := uuid.NewString()

	path := cfg.prefix
	if path == "" {
		path = "/"
	}

	http.SetCookie(w, &http.Cookie{
		Name:     playerCookieName,
		Value:    id,
		Path:     path,
		HttpOnly: true,
		Secure:   cfg.scheme() == "https",
		SameSite: http.SameSiteLaxMode,
	})

	return id
}

// GameManager holds a set of hubs keyed by game ID, so each $path/$gameid
// is its own isolated session.
type GameManager struct {
	mu          sync.Mutex
	hubs        map[string]*Hub
	idleTimeout time.Duration

	cfg   *Config
	store *character.Store
	cats  *character.Categories
}

func newGameManager(cfg *Config, store *character.Store, cats *character.Categories) *GameManager {
	gm := &GameManager{
		hubs:        make(map[string]*Hub),
		idleTimeout: cfg.sessionTimeout,
		cfg:         cfg,
		store:       store,
		cats:        cats,
	}
	if gm.idleTimeout > 0 {
		go gm.reaperLoop()
	}
	return gm
}

func (gm *GameManager) getHub(gameID string) *Hub {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if hub, ok := gm.hubs[gameID]; ok {
		return hub
	}

	hub := newHub(gm.cfg, gameID, gm.store, gm.cats)
	gm.hubs[gameID] = hub
	gamesOpen.Inc()
	go hub.run()
	return hub
}

func (gm *GameManager) count() int {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	return len(gm.hubs)
}

// newGameID generates a crypto-random game ID and ensures it doesn't
// collide with existing games.
func (gm *GameManager) newGameID() string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	for {
		buf := make([]byte, 8)
		if _, err := rand.Read(buf); err != nil {
			panic("crypto/rand failure: " + err.Error())
		}
		out := make([]byte, 8)
		for i := range out {
			out[i] = letters[int(buf[i])%len(letters)]
		}
		id := string(out)

		gm.mu.Lock()
		_, exists := gm.hubs[id]
		gm.mu.Unlock()

		if !exists {
			return id
		}
	}
}

// reap removes hubs that have been idle since before cutoff.
func (gm *GameManager) reap(cutoff time.Time) int {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	reaped := 0
	for id, hub := range gm.hubs {
		hub.mu.RLock()
		last := hub.lastActive
		hub.mu.RUnlock()

		if last.Before(cutoff) {
			delete(gm.hubs, id)
			gamesOpen.Dec()
			go hub.closeAll()
			reaped++

			logf(gm.cfg, "GAMES: Reaped idle game %s", id)
		}
	}

	return reaped
}

// reaperLoop periodically removes hubs that have been idle longer than idleTimeout.
func (gm *GameManager) reaperLoop() {
	ticker := time.NewTicker(gm.idleTimeout / 2)
	for range ticker.C {
		gm.reap(time.Now().Add(-gm.idleTimeout))
	}
}

// WebSocket handler that picks the hub based on :gameid
func serveWSForManager(cfg *Config, gm *GameManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		gameID := ps.ByName("gameid")
		if gameID == "" {
			http.Error(w, "missing game id", http.StatusBadRequest)
			return
		}

		playerID := getOrSetPlayerID(cfg, w, r)

		hub := gm.getHub(gameID)

		// The upgrade writes its own response, so carry over any new cookie.
		conn, err := upgrader.Upgrade(w, r, w.Header())
		if err != nil {
			errorf("SERVE: Websocket upgrade for %s failed: %v", realIP(r), err)
			return
		}

		client := &Client{
			conn:     conn,
			send:     make(chan any, 64),
			playerID: playerID,
			limiter:  rate.NewLimiter(rate.Limit(cfg.rateLimit), cfg.rateBurst),
		}

		select {
		case hub.register <- client:
		case <-hub.done:
			_ = conn.Close()
			return
		}

		logf(cfg, "GAMES: Player %s connected to %s from %s (%d games open)", playerID, gameID, realIP(r), gm.count())

		go client.writePump()
		client.readPump(cfg, hub)
	}
}

func (c *Client) readPump(cfg *Config, h *Hub) {
	defer func() {
		select {
		case h.unreg <- c:
		case <-h.done:
		}
		_ = c.conn.Close()
	}()

	for {
		if cfg.playerTimeout > 0 {
			_ = c.conn.SetReadDeadline(time.Now().Add(cfg.playerTimeout))
		}

		var msg ClientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}

		if !c.limiter.Allow() {
			logf(cfg, "GAMES: Dropped %q from %s in %s (rate limited)", msg.Type, c.playerID, h.id)
			continue
		}

		select {
		case h.events <- event{client: c, msg: msg}:
		case <-h.done:
			return
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(timeout))
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

// QR handler: generates a PNG QR code for the current game URL using go-qrcode.
func qrHandler(cfg *Config) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		gameID := ps.ByName("gameid")
		if gameID == "" {
			http.Error(w, "missing game id", http.StatusBadRequest)
			return
		}

		// Derive scheme (respecting TLS and X-Forwarded-Proto if present).
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
			scheme = proto
		}

		path := strings.TrimSuffix(r.URL.Path, "/qr")

		url := scheme + "://" + r.Host + path

		const qrSize = 320
		png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
		if err != nil {
			http.Error(w, "qr generation failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		securityHeaders(cfg, w)
		_, _ = w.Write(png)
	}
}

func getIndexHandler(cfg *Config, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		data, err := assets.ReadFile("assets/guess/index.html")
		if err != nil {
			errs <- err
			http.Error(w, "client unavailable", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache")
		securityHeaders(cfg, w)

		_ = getOrSetPlayerID(cfg, w, r)

		_, err = w.Write(data)
		if err != nil {
			errs <- err
		}
	}
}

// redirectNewGame handles GET /path by generating a new random game ID
// (with server-side collision detection) and redirecting to /path/:gameid.
func redirectNewGame(cfg *Config, path string, gm *GameManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gameID := gm.newGameID()
		logf(cfg, "GAMES: Created game %s%s/%s", cfg.prefix, path, gameID)
		http.Redirect(w, r, cfg.prefix+path+"/"+gameID, http.StatusTemporaryRedirect)
	}
}

// registerGuessGame sets up routes so that:
//   - $path                  → redirects to new random game (8-char ID)
//   - $path/:gameid          → HTML client
//   - $path/:gameid/ws       → WebSocket for that game
//   - $path/:gameid/qr       → PNG QR code for that game URL
func registerGuessGame(cfg *Config, path string, mux *httprouter.Router, errs chan<- error, store *character.Store, cats *character.Categories) *GameManager {
	gm := newGameManager(cfg, store, cats)

	mux.GET(cfg.prefix+path, redirectNewGame(cfg, path, gm))

	mux.GET(cfg.prefix+path+"/:gameid", getIndexHandler(cfg, errs))

	mux.GET(cfg.prefix+path+"/:gameid/ws", serveWSForManager(cfg, gm))

	mux.GET(cfg.prefix+path+"/:gameid/qr", qrHandler(cfg))

	return gm
}
