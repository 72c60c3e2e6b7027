package main

import (
	"errors"
	"log"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/puyokura/nuiadmin/bridge"
	"github.com/puyokura/nuiadmin/dashboard"
	"github.com/puyokura/nuiadmin/i18n"
	"github.com/puyokura/nuiadmin/modals"
	"github.com/puyokura/nuiadmin/model"
	"github.com/puyokura/nuiadmin/overlay"
)

type section int

const (
	secCommand section = iota
	secPlayers
	secOperations
	secMissions
	secTickets
)

var sections = []section{secCommand, secPlayers, secOperations, secMissions, secTickets}

func (s section) key() string {
	switch s {
	case secPlayers:
		return "sidebar.players"
	case secOperations:
		return "sidebar.operations"
	case secMissions:
		return "sidebar.missions"
	case secTickets:
		return "sidebar.tickets"
	}
	return "sidebar.centerCommand"
}

// Options configure the shell.
type Options struct {
	Host     string
	Operator string
	Password string
	Offline  bool
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

type app struct {
	opts    Options
	env     *dashboard.Env
	network *Network
	prefs   *i18n.Preferences
	lang    i18n.Lang

	players  *dashboard.Players
	actions  *dashboard.Actions
	jobs     *dashboard.Orgs
	gangs    *dashboard.Orgs
	tickets  *dashboard.Tickets
	missions *dashboard.Missions
	chat     *dashboard.Chat
	router   *dashboard.Router

	inventory *dashboard.Inventory
	wizard    *dashboard.Wizard

	section   section
	collapsed bool
	width     int
	height    int
	ready     bool
	started   time.Time
	now       time.Time

	cursor    map[section]int
	orgKind   model.OrgKind
	search    textinput.Model
	searching bool
	chatInput textinput.Model
	ledger    viewport.Model

	windows  []*window
	doc      overlay.Document
	icon     *overlay.FloatingIcon
	iconMenu bool
	menuItem int

	invCursor int
	invPicked int
}

func newApp(opts Options, net *Network, prefs *i18n.Preferences) *app {
	dialogs := &dashboard.Dialogs{}
	gateway := bridge.NewGateway(net.bridge, bridge.NewNullHostBridge(dialogs))
	env := dashboard.NewEnv(gateway, dialogs)
	env.Modals.OnChange(func(k modals.Kind, s modals.State) {
		log.Printf("modal %s open=%v subject=%s", k, s.IsOpen, s.SubjectID)
	})

	lang := prefs.Lang()
	a := &app{
		opts:     opts,
		env:      env,
		network:  net,
		prefs:    prefs,
		lang:     lang,
		players:  dashboard.NewPlayers(env, lang.Tag()),
		actions:  dashboard.NewActions(env),
		jobs:     dashboard.NewJobs(env),
		gangs:    dashboard.NewGangs(env),
		tickets:  dashboard.NewTickets(env),
		missions: dashboard.NewMissions(env),
		chat:     dashboard.NewChat(env.Now),
		cursor:   map[section]int{},
		orgKind:  model.OrgJob,
		started:  env.Now(),
		now:      env.Now(),
	}
	a.router = &dashboard.Router{Actions: a.actions, Tickets: a.tickets, Logger: log.Default()}

	a.search = textinput.New()
	a.search.Prompt = "/ "
	a.search.Placeholder = "search"
	a.chatInput = textinput.New()
	a.chatInput.Prompt = "> "
	a.chatInput.CharLimit = 256
	a.invPicked = -1
	return a
}

func (a *app) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, tick()}
	if !a.opts.Offline && a.opts.Host != "" {
		cmds = append(cmds, a.network.Connect(a.opts.Host, a.opts.Operator, a.opts.Password))
	}
	return tea.Batch(cmds...)
}

func (a *app) t(key string) string { return i18n.T(a.lang, key) }

// do surfaces unexpected errors from a view. Validation errors have
// already been alerted and a parked confirmation is not an error.
func (a *app) do(err error) {
	if err == nil || errors.Is(err, dashboard.ErrAwaitingConfirmation) || dashboard.IsValidation(err) {
		return
	}
	log.Printf("dashboard: %v", err)
	a.env.Dialogs.Alert(err.Error())
}

func (a *app) Update(msg tea.Msg) (m tea.Model, cmd tea.Cmd) {
	m = a
	// Panic recovery to catch crashes
	defer func() {
		if r := recover(); r != nil {
			log.Printf("PANIC in Update: %v", r)
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			log.Printf("Stack trace:\n%s", buf[:n])
			m, cmd = a, nil
		}
	}()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil

	case tickMsg:
		a.now = time.Time(msg)
		return a, tick()

	case connectedMsg:
		a.actions.Refresh()
		a.tickets.Refresh()
		return a, a.network.WaitForEvent

	case disconnectedMsg:
		log.Printf("host connection lost: %v", msg.err)
		a.env.Dialogs.Alert("Conexión con el host perdida; modo desarrollo activo")
		return a, nil

	case model.Event:
		if err := a.router.Handle(msg); err != nil {
			log.Printf("inbound %s: %v", msg.Name, err)
		}
		return a, a.network.WaitForEvent

	case errMsg:
		log.Printf("network: %v", msg)
		if errors.Is(msg, bridge.ErrAuthRejected) {
			a.env.Dialogs.Alert("El host rechazó las credenciales; modo desarrollo activo")
		}
		if a.network.bridge.Available() {
			return a, a.network.WaitForEvent
		}
		return a, nil

	case tea.MouseMsg:
		a.mouse(msg)
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		cmd = a.key(msg)
		a.syncWindows()
		if a.env.Modals.DashboardClosed() {
			return a, tea.Quit
		}
		return a, cmd
	}
	return a, nil
}

func (a *app) resize(w, h int) {
	a.width, a.height = w, h
	vp := overlay.Size{Width: w, Height: h}
	if a.icon == nil {
		a.icon = overlay.NewFloatingIcon(overlay.Point{X: w - iconCells - 2, Y: h - iconCells - 1}, iconCells, vp)
	} else {
		a.icon.Resize(vp)
	}
	if !a.ready {
		a.ledger = viewport.New(w, 10)
		a.ready = true
	}
}

// key routes a key press to whatever is on top: dialogs, then the
// floating icon, then the focused window, then the section.
func (a *app) key(msg tea.KeyMsg) tea.Cmd {
	d := a.env.Dialogs
	if _, ok := d.CurrentAlert(); ok {
		if msg.Type == tea.KeyEnter || msg.Type == tea.KeyEsc || msg.Type == tea.KeySpace {
			d.DismissAlert()
		}
		return nil
	}
	if _, ok := d.Pending(); ok {
		switch msg.String() {
		case "enter", "y", "s":
			d.Confirm()
		case "esc", "n":
			d.Cancel()
		}
		return nil
	}

	if !a.env.Modals.DashboardVisible() {
		return a.iconKey(msg)
	}
	if w := a.focused(); w != nil {
		return a.windowKey(w, msg)
	}
	if a.searching {
		return a.searchKey(msg)
	}

	switch msg.String() {
	case "tab":
		a.section = sections[(int(a.section)+1)%len(sections)]
		a.focusSection()
		return nil
	case "shift+tab":
		a.section = sections[(int(a.section)-1+len(sections))%len(sections)]
		a.focusSection()
		return nil
	case "ctrl+b":
		a.collapsed = !a.collapsed
		return nil
	case "ctrl+l":
		a.toggleLanguage()
		return nil
	case "ctrl+n":
		a.env.Modals.Minimize()
		a.iconMenu = false
		return nil
	case "ctrl+r":
		a.actions.Refresh()
		a.tickets.Refresh()
		return nil
	}
	return a.sectionKey(msg)
}

func (a *app) focusSection() {
	if a.section == secCommand {
		a.chatInput.Focus()
	} else {
		a.chatInput.Blur()
	}
}

func (a *app) toggleLanguage() {
	next, err := a.prefs.ToggleLang()
	if err != nil {
		log.Printf("save preferences: %v", err)
	}
	a.lang = next
	a.players.SetLanguage(next.Tag())
}

func (a *app) iconKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+n":
		a.env.Modals.Restore()
	case "enter", " ":
		if !a.iconMenu {
			a.iconMenu = true
			a.menuItem = 0
			return nil
		}
		a.chooseMenu(a.menuItem)
	case "up", "down":
		if a.iconMenu {
			a.menuItem = 1 - a.menuItem
		}
	case "esc":
		a.iconMenu = false
	}
	return nil
}

func (a *app) chooseMenu(item int) {
	a.iconMenu = false
	if item == 0 {
		a.env.Modals.Restore()
		return
	}
	a.env.Modals.CloseDashboard()
}

func (a *app) searchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		a.searching = false
		a.search.Blur()
		return nil
	}
	var cmd tea.Cmd
	a.search, cmd = a.search.Update(msg)
	a.applySearch(a.search.Value())
	return cmd
}

func (a *app) applySearch(q string) {
	a.cursor[a.section] = 0
	switch a.section {
	case secPlayers:
		a.players.Search = q
	case secOperations:
		a.orgs().Search = q
	case secMissions:
		a.missions.Search = q
	case secTickets:
		a.tickets.Search = q
	}
}

func (a *app) orgs() *dashboard.Orgs {
	if a.orgKind == model.OrgGang {
		return a.gangs
	}
	return a.jobs
}

func (a *app) move(delta, n int) {
	c := a.cursor[a.section] + delta
	if c >= n {
		c = n - 1
	}
	if c < 0 {
		c = 0
	}
	a.cursor[a.section] = c
}

func (a *app) sectionKey(msg tea.KeyMsg) tea.Cmd {
	if a.section == secCommand {
		return a.commandKey(msg)
	}
	switch msg.String() {
	case "/":
		a.searching = true
		a.search.SetValue("")
		return a.search.Focus()
	case "B":
		a.players.OpenBroadcast()
		return nil
	}

	switch a.section {
	case secPlayers:
		a.playersKey(msg)
	case secOperations:
		a.operationsKey(msg)
	case secMissions:
		a.missionsKey(msg)
	case secTickets:
		a.ticketsKey(msg)
	}
	return nil
}

func (a *app) commandKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		if a.chat.Send(a.opts.Operator, a.chatInput.Value()) {
			a.chatInput.SetValue("")
		}
		return nil
	case "pgup", "pgdown":
		var cmd tea.Cmd
		a.ledger, cmd = a.ledger.Update(msg)
		return cmd
	}
	if !a.chatInput.Focused() {
		a.chatInput.Focus()
	}
	var cmd tea.Cmd
	a.chatInput, cmd = a.chatInput.Update(msg)
	return cmd
}

func (a *app) playersKey(msg tea.KeyMsg) {
	list := a.players.Visible()
	switch msg.String() {
	case "up", "k":
		a.move(-1, len(list))
		return
	case "down", "j":
		a.move(1, len(list))
		return
	case "f":
		a.players.OpenFilter()
		return
	case "F":
		a.players.ResetFilters()
		return
	}
	if len(list) == 0 {
		return
	}
	p := list[a.cursor[secPlayers]]
	a.players.Select(p.ID)
	switch msg.String() {
	case "b":
		a.do(a.players.OpenBan(p.ID))
	case "s":
		a.do(a.players.OpenSuspend(p.ID))
	case "m":
		a.do(a.players.OpenMessage(p.ID))
	case "a":
		a.do(a.players.OpenActions(p.ID))
	case "i":
		a.do(a.players.ViewInventory(p.ID))
	case "v":
		a.do(a.players.Spectate(p.ID))
	}
}

func (a *app) operationsKey(msg tea.KeyMsg) {
	o := a.orgs()
	list := o.Visible()
	switch msg.String() {
	case "left", "right", "g":
		if a.orgKind == model.OrgJob {
			a.orgKind = model.OrgGang
		} else {
			a.orgKind = model.OrgJob
		}
		a.cursor[secOperations] = 0
		a.orgs().Search = a.search.Value()
		return
	case "up", "k":
		a.move(-1, len(list))
		return
	case "down", "j":
		a.move(1, len(list))
		return
	case "n":
		a.openOrgForm(nil)
		return
	}
	if len(list) == 0 {
		return
	}
	org := list[a.cursor[secOperations]]
	switch msg.String() {
	case "e":
		a.openOrgForm(&org)
	case "t":
		a.do(o.ToggleStatus(org.ID))
	case "d":
		a.do(o.Delete(org.ID))
	case "+":
		a.openMemberForm(org, "add")
	case "-":
		a.openMemberForm(org, "remove")
	}
}

func (a *app) missionsKey(msg tea.KeyMsg) {
	list := a.missions.Visible()
	switch msg.String() {
	case "up", "k":
		a.move(-1, len(list))
		return
	case "down", "j":
		a.move(1, len(list))
		return
	case "n":
		a.openWizard(a.missions.NewWizard())
		return
	}
	if len(list) == 0 {
		return
	}
	ms := list[a.cursor[secMissions]]
	switch msg.String() {
	case "e":
		if w, ok := a.missions.EditWizard(ms.ID); ok {
			a.openWizard(w)
		}
	case "d":
		a.do(a.missions.Delete(ms.ID))
	case "A":
		a.do(a.missions.SetStatus(ms.ID, model.MissionActive))
	case "C":
		a.do(a.missions.SetStatus(ms.ID, model.MissionCompleted))
	case "R":
		a.do(a.missions.SetStatus(ms.ID, model.MissionArchived))
	}
}

func (a *app) ticketsKey(msg tea.KeyMsg) {
	list := a.tickets.Visible()
	switch msg.String() {
	case "up", "k":
		a.move(-1, len(list))
		return
	case "down", "j":
		a.move(1, len(list))
		return
	case "r":
		a.tickets.Refresh()
		return
	}
	if len(list) == 0 {
		return
	}
	if msg.String() == "enter" {
		a.openTicket(list[a.cursor[secTickets]].ID)
	}
}

// mouse feeds presses, motion and releases to the floating icon and the
// windows through the pointer capture.
func (a *app) mouse(msg tea.MouseMsg) {
	p := overlay.Point{X: msg.X, Y: msg.Y}
	switch msg.Action {
	case tea.MouseActionMotion:
		a.doc.Move(p)
		return
	case tea.MouseActionRelease:
		wasIcon := !a.env.Modals.DashboardVisible() && a.doc.Captured()
		a.doc.Up()
		if wasIcon && a.icon.Clicked() {
			a.iconMenu = !a.iconMenu
			a.menuItem = 0
		}
		return
	}
	if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionPress {
		return
	}
	if a.env.Dialogs.Blocking() {
		return
	}

	if !a.env.Modals.DashboardVisible() {
		if a.iconMenu {
			if item, ok := a.menuHit(p); ok {
				a.chooseMenu(item)
				return
			}
		}
		if a.icon.Press(p) {
			a.doc.Capture(a.icon)
		}
		return
	}

	for i := len(a.windows) - 1; i >= 0; i-- {
		w := a.windows[i]
		el := hitTest(w, p)
		if el == nil {
			continue
		}
		a.raise(i)
		if el == elClose {
			a.closeWindow(w)
			a.syncWindows()
			return
		}
		a.doc.Down(p, w.ov, el)
		return
	}
}

// menuHit reports which icon menu row p landed on.
func (a *app) menuHit(p overlay.Point) (int, bool) {
	origin := a.menuOrigin()
	if p.X < origin.X || p.X >= origin.X+menuWidth {
		return 0, false
	}
	switch p.Y - origin.Y {
	case 1:
		return 0, true
	case 2:
		return 1, true
	}
	return 0, false
}
