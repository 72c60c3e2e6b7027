package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/puyokura/nuiadmin/dashboard"
	"github.com/puyokura/nuiadmin/modals"
	"github.com/puyokura/nuiadmin/model"
	"github.com/puyokura/nuiadmin/overlay"
)

const (
	iconCells    = overlay.IconSize / 14
	menuWidth    = 20
	sidebarWidth = 22
)

func (a *app) View() string {
	if !a.ready {
		return "\n  Initializing..."
	}
	if !a.env.Modals.DashboardVisible() {
		return a.dialogs(a.minimized())
	}

	header := a.header()
	footer := helpStyle.Render(fit(a.t("help.global")+" · "+a.sectionHelp(), a.width))
	bodyH := a.height - lipgloss.Height(header) - 1
	if bodyH < 5 {
		bodyH = 5
	}

	var body string
	contentW := a.width
	if !a.collapsed {
		contentW -= sidebarWidth + 1
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			sidebarStyle.Width(sidebarWidth).Height(bodyH).Render(a.sidebar()),
			a.content(contentW, bodyH))
	} else {
		body = a.content(contentW, bodyH)
	}

	screen := strings.Join([]string{header, clip(body, bodyH), footer}, "\n")
	for i, w := range a.windows {
		screen = place(screen, frame(w, a.windowBody(w), i == len(a.windows)-1), w.ov.Position.X, w.ov.Position.Y)
	}
	return a.dialogs(screen)
}

// clip keeps at most n lines of s.
func clip(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}

func (a *app) header() string {
	status := okStyle.Render("● " + a.t("status.systemOnline"))
	if !a.env.Bridge.Live() {
		status = warnStyle.Render("● " + a.t("status.devMode"))
	}
	up := a.now.Sub(a.started).Truncate(time.Second)
	left := titleStyle.Render(a.t("app.title")) + " " + helpStyle.Render(a.t("app.version"))
	right := fmt.Sprintf("%s  %s %s  %s %s  [%s]",
		status,
		helpStyle.Render(a.t("status.uptime")), up,
		helpStyle.Render(a.t("header.lastUpdate")), a.now.Format("15:04:05"),
		strings.ToUpper(string(a.lang)))
	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	line := left + strings.Repeat(" ", gap) + right
	return line + "\n" + borderStyle.Render(strings.Repeat("─", a.width))
}

func (a *app) sidebar() string {
	var b strings.Builder
	b.WriteString(helpStyle.Render(a.t("header.tacticalCommand")) + "\n\n")
	for _, s := range sections {
		label := a.t(s.key())
		if s == a.section {
			b.WriteString(focusStyle.Render("▸ "+label) + "\n")
		} else {
			b.WriteString("  " + label + "\n")
		}
	}
	c := a.players.Counts()
	b.WriteString(fmt.Sprintf("\n%s\n%d/%d\n", helpStyle.Render(a.t("commandCenter.playersActive")), c.Online, c.Total))
	return b.String()
}

func (a *app) sectionHelp() string {
	switch a.section {
	case secCommand:
		return "enter chat · pgup/pgdn log"
	case secPlayers:
		return "/ search · f filter · b ban · s suspend · m msg · a actions · i inv · v spectate · B broadcast"
	case secOperations:
		return "g jobs/gangs · n new · e edit · t toggle · d delete · +/- member"
	case secMissions:
		return "n new · e edit · d delete · A/C/R status"
	case secTickets:
		return "enter open · r refresh"
	}
	return ""
}

func (a *app) content(w, h int) string {
	switch a.section {
	case secPlayers:
		return a.playersView(w, h)
	case secOperations:
		return a.operationsView(w, h)
	case secMissions:
		return a.missionsView(w, h)
	case secTickets:
		return a.ticketsView(w, h)
	}
	return a.commandView(w, h)
}

func (a *app) searchLine() string {
	if a.searching || a.search.Value() != "" {
		return a.search.View()
	}
	return helpStyle.Render("/ search")
}

// scroll returns the n lines of lines that keep cursor in view.
func scroll(lines []string, cursor, n int) []string {
	if n <= 0 || len(lines) <= n {
		return lines
	}
	off := cursor - n + 1
	if off < 0 {
		off = 0
	}
	if off+n > len(lines) {
		off = len(lines) - n
	}
	return lines[off : off+n]
}

func row(selected bool, s string, w int) string {
	s = fit(s, w)
	if selected {
		return selectStyle.Render(s)
	}
	return s
}

func (a *app) commandView(w, h int) string {
	c := a.players.Counts()
	stat := func(label string, n int, st lipgloss.Style) string {
		return lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderColor).Padding(0, 1).
			Render(helpStyle.Render(label) + "\n" + st.Render(fmt.Sprintf("%d", n)))
	}
	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		stat(a.t("commandCenter.playersActive"), c.Total, titleStyle),
		stat(a.t("commandCenter.inAction"), c.Online, okStyle),
		stat(a.t("commandCenter.disconnected"), c.Offline, helpStyle),
		stat(a.t("commandCenter.banned"), c.Banned, dangerStyle),
	)

	chatH := 6
	logH := h - lipgloss.Height(stats) - chatH - 3
	if logH < 3 {
		logH = 3
	}

	entries := a.env.Ledger.Entries()
	var lines []string
	for _, e := range entries {
		lines = append(lines, formatEntry(e, w))
	}
	if len(lines) == 0 {
		lines = []string{helpStyle.Render(a.t("commandCenter.empty"))}
	}
	a.ledger.Width, a.ledger.Height = w, logH
	a.ledger.SetContent(strings.Join(lines, "\n"))

	msgs := a.chat.Messages()
	var chat []string
	for _, m := range msgs {
		chat = append(chat, fmt.Sprintf("%s %s %s", helpStyle.Render(m.Timestamp), focusStyle.Render(m.Author), m.Text))
	}
	chat = scroll(chat, len(chat)-1, chatH-1)
	for len(chat) < chatH-1 {
		chat = append(chat, "")
	}
	a.chatInput.Width = w - 4

	return strings.Join([]string{
		stats,
		titleStyle.Render(a.t("commandCenter.activityLog")),
		a.ledger.View(),
		titleStyle.Render(a.t("commandCenter.adminChat")),
		strings.Join(chat, "\n"),
		a.chatInput.View(),
	}, "\n")
}

func statusStyle(s model.AccountStatus) lipgloss.Style {
	switch s {
	case model.StatusBanned:
		return dangerStyle
	case model.StatusSuspended:
		return warnStyle
	}
	return okStyle
}

func (a *app) playersView(w, h int) string {
	list := a.players.Visible()
	cur := a.cursor[secPlayers]
	f := a.players.Filters
	filters := helpStyle.Render(fmt.Sprintf("presence=%s status=%s level=%d-%d sort=%s",
		f.Presence, f.AccountStatus, f.MinLevel, f.MaxLevel, f.SortBy))

	head := helpStyle.Render(fit(fmt.Sprintf("%-7s %-10s %-18s %4s %12s %6s %5s %-8s %s",
		"ID", "NAME", "BAND", "LVL", "MONEY", "K/D", "REP", "PRESENCE", "STATUS"), w))
	var lines []string
	for i, p := range list {
		presence := okStyle.Render(fmt.Sprintf("%-8s", p.Presence))
		if p.Presence != model.Online {
			presence = helpStyle.Render(fmt.Sprintf("%-8s", p.Presence))
		}
		s := fmt.Sprintf("%-7s %-10s %-18s %4d %12s %6.2f %5d %s %s",
			p.ID, p.Name, p.Band, p.Level, money(p.Money), p.KD(), p.Reputation,
			presence, statusStyle(p.AccountStatus).Render(string(p.AccountStatus)))
		lines = append(lines, row(i == cur, s, w))
	}
	lines = scroll(lines, cur, h-5)

	detail := ""
	if cur < len(list) {
		p := list[cur]
		detail = helpStyle.Render(fmt.Sprintf("%s · %s · XP %d · %s · %dh",
			p.Name, p.Location, p.Experience, money(p.Money), p.PlaytimeHours))
	}
	return strings.Join(append([]string{a.searchLine() + "  " + filters, head}, append(lines, "", detail)...), "\n")
}

func (a *app) operationsView(w, h int) string {
	o := a.orgs()
	tabs := "[" + focusStyle.Render("JOBS") + "]  GANGS"
	if a.orgKind == model.OrgGang {
		tabs = "JOBS  [" + focusStyle.Render("GANGS") + "]"
	}
	list := o.Visible()
	cur := a.cursor[secOperations]

	var lines []string
	for i, org := range list {
		var extra string
		if org.Kind == model.OrgGang {
			extra = fmt.Sprintf("%-22s rep %5d", org.Leader, org.Reputation)
			extra = tierStyle(dashboard.ReputationTier(org.Reputation)).Render(extra)
		} else {
			extra = fmt.Sprintf("lvl %3d  %12s", org.Level, money(org.Treasury))
			extra = tierStyle(dashboard.TreasuryTier(org.Treasury)).Render(extra)
		}
		s := fmt.Sprintf("%s %-22s %-18s %3d miembros  %s  %s",
			colored(orgColor(org.Color), "■"), org.Label, org.Territory, org.Members, extra, org.Status)
		lines = append(lines, row(i == cur, s, w))
	}
	lines = scroll(lines, cur, h-8)

	var members []string
	if cur < len(list) {
		for _, m := range o.Members(list[cur].ID) {
			members = append(members, fmt.Sprintf("  %s %s %s %s", m.PlayerID, m.PlayerName, m.Rank, money(m.Salary)))
		}
	}
	head := fmt.Sprintf("%s   %s   %s", tabs, a.searchLine(), helpStyle.Render(fmt.Sprintf("%d activas", o.ActiveCount())))
	return strings.Join(append(append([]string{head, ""}, lines...), append([]string{"", helpStyle.Render("Miembros")}, members...)...), "\n")
}

func tierStyle(t dashboard.Tier) lipgloss.Style {
	switch t {
	case dashboard.TierTop:
		return dangerStyle
	case dashboard.TierHigh:
		return titleStyle
	case dashboard.TierMid:
		return warnStyle
	}
	return helpStyle
}

func orgColor(name string) string {
	switch name {
	case "red":
		return "#ef4444"
	case "blue":
		return "#3b82f6"
	case "green":
		return "#22c55e"
	case "yellow":
		return "#eab308"
	case "purple":
		return "#a855f7"
	case "pink":
		return "#ec4899"
	case "orange":
		return "#f97316"
	case "cyan":
		return "#06b6d4"
	}
	return ""
}

func (a *app) missionsView(w, h int) string {
	list := a.missions.Visible()
	cur := a.cursor[secMissions]
	var lines []string
	for i, ms := range list {
		icon := ""
		if e, ok := model.FindCatalog(model.MissionTypes, string(ms.Type)); ok {
			icon = e.Icon
		}
		s := fmt.Sprintf("%s %-12s %-26s %-10s %-10s %3d%%  XP %6d  %s",
			icon, ms.ID, ms.Label, ms.Difficulty, ms.Status, ms.CompletionRate, ms.Rewards.XP, money(ms.Rewards.Money))
		lines = append(lines, row(i == cur, s, w))
	}
	lines = scroll(lines, cur, h-3)
	head := fmt.Sprintf("%s  %s", a.searchLine(), helpStyle.Render(fmt.Sprintf("%d misiones", len(list))))
	return strings.Join(append([]string{head, ""}, lines...), "\n")
}

func priorityStyle(p model.TicketPriority) lipgloss.Style {
	switch p {
	case model.PriorityCritical:
		return dangerStyle
	case model.PriorityHigh:
		return titleStyle
	case model.PriorityMedium:
		return warnStyle
	}
	return helpStyle
}

func (a *app) ticketsView(w, h int) string {
	list := a.tickets.Visible()
	cur := a.cursor[secTickets]
	counts := a.tickets.CountByStatus()
	var summary []string
	for _, s := range model.TicketStatuses {
		summary = append(summary, fmt.Sprintf("%s %d", s, counts[s]))
	}

	var lines []string
	for i, tk := range list {
		s := fmt.Sprintf("%-7s %s %-12s %-20s %s",
			tk.ID, priorityStyle(tk.Priority).Render(fmt.Sprintf("%-8s", tk.Priority)), tk.Status, tk.PlayerName, tk.Title)
		lines = append(lines, row(i == cur, s, w))
	}
	lines = scroll(lines, cur, h-3)
	head := a.searchLine() + "  " + helpStyle.Render(strings.Join(summary, " · "))
	return strings.Join(append([]string{head, ""}, lines...), "\n")
}

// windowBody renders the inside of w.
func (a *app) windowBody(w *window) string {
	inner := w.ov.Size.Width - 2
	switch w.kind {
	case winModal:
		switch w.modal {
		case modals.Actions:
			return a.actionsBody()
		case modals.Inventory:
			return a.inventoryBody(inner)
		}
	case winTicket:
		return a.ticketBody(w, inner)
	case winWizard:
		return a.wizardBody(w, inner)
	}
	if w.form == nil {
		return ""
	}
	return w.form.View(inner) + "\n\n" + helpStyle.Render("enter enviar · esc cerrar")
}

func (a *app) actionsBody() string {
	var b strings.Builder
	c := a.cursor[-1]
	for i, act := range a.actions.Catalog() {
		label := fmt.Sprintf(" %s %s", act.Emoji, parseColorTags(act.Label))
		if dashboard.IsDangerous(act.ID) {
			label += dangerStyle.Render(" !")
		}
		if i == c {
			label = selectStyle.Render(label)
		}
		b.WriteString(label + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("enter ejecutar · esc cerrar"))
	return b.String()
}

func (a *app) inventoryBody(inner int) string {
	inv := a.inventory
	if inv == nil {
		return ""
	}
	var b strings.Builder
	grid := inv.Grid()
	for r := 0; r < model.InventorySlots/gridCols; r++ {
		var top, bottom []string
		for c := 0; c < gridCols; c++ {
			i := r*gridCols + c
			cell := grid[i]
			name, count := fmt.Sprintf("%-5d", cell.Slot), "     "
			if cell.Item != nil {
				name = fit(cell.Item.Label, 5)
				count = fmt.Sprintf("x%-4d", cell.Item.Count)
			}
			st := lipgloss.NewStyle()
			switch {
			case cell.Slot == a.invPicked:
				st = warnStyle
			case i == a.invCursor:
				st = selectStyle
			case cell.Item == nil:
				st = helpStyle
			}
			top = append(top, st.Render(name))
			bottom = append(bottom, st.Render(count))
		}
		b.WriteString(strings.Join(top, " ") + "\n" + strings.Join(bottom, " ") + "\n")
	}

	ratio := inv.WeightRatio()
	barW := inner - 24
	if barW < 10 {
		barW = 10
	}
	filled := int(ratio * float64(barW))
	if filled > barW {
		filled = barW
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barW-filled)
	st := okStyle
	switch inv.WeightLevel() {
	case dashboard.WeightWarning:
		st = warnStyle
	case dashboard.WeightCritical:
		st = dangerStyle
	}
	b.WriteString(fmt.Sprintf("\n%s %d/%d\n", st.Render(bar), inv.TotalWeight(), model.MaxInventoryWeight))

	if it := grid[a.invCursor].Item; it != nil {
		b.WriteString(fmt.Sprintf("\n%s (%s) x%d · %dg\n", it.Label, it.Name, it.Count, it.TotalWeight))
	} else {
		b.WriteString("\n\n")
	}
	b.WriteString("\n" + helpStyle.Render("enter mover · g dar · d soltar · x eliminar · c borrar · J importar"))
	return b.String()
}

func (a *app) ticketBody(w *window, inner int) string {
	tk, ok := a.tickets.Get(w.ref)
	if !ok {
		return "ticket no encontrado"
	}
	head := []string{
		titleStyle.Render(tk.Title),
		fmt.Sprintf("%s · %s · %s (%s)", priorityStyle(tk.Priority).Render(string(tk.Priority)), tk.Status, tk.PlayerName, tk.PlayerID),
		helpStyle.Render(tk.Description),
		"",
	}
	var msgs []string
	for _, m := range tk.Messages {
		author := m.Author
		if m.Role == model.RoleAdmin {
			author = focusStyle.Render(author)
		}
		line := fmt.Sprintf("%s %s: %s", helpStyle.Render(m.Timestamp), author, m.Message)
		if m.Image != "" {
			line += helpStyle.Render(" [img " + m.Image + "]")
		}
		msgs = append(msgs, fit(line, inner))
	}
	room := w.ov.Size.Height - 2 - len(head) - len(w.form.fields) - 3
	msgs = scroll(msgs, len(msgs)-1, room)
	for len(msgs) < room {
		msgs = append(msgs, "")
	}
	return strings.Join(append(append(head, msgs...), "", w.form.View(inner), helpStyle.Render("enter enviar · ctrl+s estado · esc cerrar")), "\n")
}

func (a *app) wizardBody(w *window, inner int) string {
	wz := a.wizard
	if wz == nil {
		return ""
	}
	var steps []string
	for s := dashboard.StepBasic; s <= dashboard.StepReview; s++ {
		if s == wz.Step() {
			steps = append(steps, focusStyle.Render(s.String()))
		} else {
			steps = append(steps, helpStyle.Render(s.String()))
		}
	}
	d := wz.Draft
	summary := fmt.Sprintf("%s · NPCs %d · props %d · vehículos %d · objetivos %d · minijuegos %d · seguridad %d",
		fit(d.Label, 16), len(d.NPCs), len(d.Props), len(d.Vehicles), len(d.Objectives), len(d.Minigames), len(d.SecuritySystems))

	body := []string{strings.Join(steps, " › "), helpStyle.Render(summary), ""}
	if wz.Step() == dashboard.StepReview {
		body = append(body, fmt.Sprintf("%s (%s) · %s · %s", d.Label, d.Name, d.Type, d.Difficulty))
		if items := wz.RequiredItems(); len(items) > 0 {
			body = append(body, "Requiere: "+strings.Join(items, ", "))
		}
		body = append(body, "", helpStyle.Render("enter guardar · pgup atrás · esc cerrar"))
		return strings.Join(body, "\n")
	}
	body = append(body, w.form.View(inner), "", helpStyle.Render("enter añadir/guardar · pgup/pgdn paso · esc cerrar"))
	return strings.Join(body, "\n")
}

func (a *app) minimized() string {
	lines := make([]string, a.height)
	for i := range lines {
		lines[i] = strings.Repeat(" ", a.width)
	}
	screen := strings.Join(lines, "\n")
	icon := strings.Join([]string{
		focusStyle.Render("╭" + strings.Repeat("─", iconCells-2) + "╮"),
		focusStyle.Render("│") + fit("NU", iconCells-2) + focusStyle.Render("│"),
		focusStyle.Render("│") + fit("I", iconCells-2) + focusStyle.Render("│"),
		focusStyle.Render("╰" + strings.Repeat("─", iconCells-2) + "╯"),
	}[:iconCells], "\n")
	screen = place(screen, icon, a.icon.Position.X, a.icon.Position.Y)
	if a.iconMenu {
		items := []string{a.t("icon.open"), a.t("icon.close")}
		var rows []string
		rows = append(rows, borderStyle.Render("╭"+strings.Repeat("─", menuWidth-2)+"╮"))
		for i, it := range items {
			s := fit(" "+it, menuWidth-2)
			if i == a.menuItem {
				s = selectStyle.Render(s)
			}
			rows = append(rows, borderStyle.Render("│")+s+borderStyle.Render("│"))
		}
		rows = append(rows, borderStyle.Render("╰"+strings.Repeat("─", menuWidth-2)+"╯"))
		o := a.menuOrigin()
		screen = place(screen, strings.Join(rows, "\n"), o.X, o.Y)
	}
	return screen
}

// menuOrigin puts the icon menu beside the icon, flipping left near the
// right edge.
func (a *app) menuOrigin() overlay.Point {
	p := overlay.Point{X: a.icon.Position.X + iconCells + 1, Y: a.icon.Position.Y}
	if p.X+menuWidth > a.width {
		p.X = a.icon.Position.X - menuWidth - 1
	}
	if p.X < 0 {
		p.X = 0
	}
	return p
}

// dialogs draws the pending alert or confirmation over screen.
func (a *app) dialogs(screen string) string {
	d := a.env.Dialogs
	var title, text, keys string
	danger := false
	if msg, ok := d.CurrentAlert(); ok {
		title, text, keys = "Aviso", msg, "enter OK"
	} else if c, ok := d.Pending(); ok {
		title, text, danger = c.Title, c.Description, c.Dangerous
		keys = fmt.Sprintf("enter %s · esc %s", a.t("confirm.confirm"), a.t("confirm.cancel"))
	} else {
		return screen
	}

	width := 50
	edge := borderColor
	ts := titleStyle
	if danger {
		edge = lipgloss.Color("#ef4444")
		ts = dangerStyle
	}
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(edge).Padding(0, 1).Width(width).
		Render(ts.Render(title) + "\n\n" + text + "\n\n" + helpStyle.Render(keys))
	p := center(a.width, a.height, lipgloss.Width(box), lipgloss.Height(box))
	return place(screen, box, p.X, p.Y)
}
