package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/puyokura/nuiadmin/dashboard"
	"github.com/puyokura/nuiadmin/modals"
	"github.com/puyokura/nuiadmin/model"
	"github.com/puyokura/nuiadmin/overlay"
)

var (
	dialogMin  = overlay.Size{Width: 36, Height: 8}
	ticketMin  = cells(overlay.TicketDetailMin)
	invDefault = cells(overlay.InventoryMin)
)

func (a *app) focused() *window {
	if len(a.windows) == 0 {
		return nil
	}
	return a.windows[len(a.windows)-1]
}

func (a *app) raise(i int) {
	w := a.windows[i]
	a.windows = append(a.windows[:i], a.windows[i+1:]...)
	a.windows = append(a.windows, w)
}

func (a *app) push(w *window) {
	// Cascade so stacked windows stay grabbable.
	off := len(a.windows) * 2
	w.ov.Position.X += off
	w.ov.Position.Y += off / 2
	a.windows = append(a.windows, w)
}

func (a *app) find(kind windowKind, modal modals.Kind) *window {
	for _, w := range a.windows {
		if w.kind == kind && (kind != winModal || w.modal == modal) {
			return w
		}
	}
	return nil
}

func (a *app) remove(w *window) {
	for i, x := range a.windows {
		if x == w {
			a.windows = append(a.windows[:i], a.windows[i+1:]...)
			return
		}
	}
}

// closeWindow closes w; modal windows close through the registry.
func (a *app) closeWindow(w *window) {
	if w.kind == winModal {
		a.env.Modals.Close(w.modal)
		return
	}
	if w.kind == winWizard {
		a.wizard = nil
	}
	a.remove(w)
}

// syncWindows mirrors the modal registry: open kinds get a window, closed
// kinds lose theirs.
func (a *app) syncWindows() {
	for _, w := range append([]*window(nil), a.windows...) {
		if w.kind == winModal && !a.env.Modals.IsOpen(w.modal) {
			a.remove(w)
			if w.modal == modals.Inventory {
				a.inventory = nil
				a.dropInventoryForms()
			}
		}
	}
	for _, k := range a.env.Modals.OpenKinds() {
		if a.find(winModal, k) == nil {
			a.openModalWindow(k)
		}
	}
}

func (a *app) dropInventoryForms() {
	for _, w := range append([]*window(nil), a.windows...) {
		if w.kind == winItem || w.kind == winImport {
			a.remove(w)
		}
	}
}

func (a *app) centered(size overlay.Size) overlay.Point {
	return center(a.width, a.height, size.Width, size.Height)
}

func (a *app) openModalWindow(k modals.Kind) {
	s := a.env.Modals.State(k)
	size := overlay.Size{Width: 50, Height: 12}
	var f *form
	title := ""

	switch k {
	case modals.Ban:
		title = "Ban · " + s.SubjectName
		f = newForm(
			choiceField("Tipo", string(dashboard.BanPermanent), string(dashboard.BanTemporary)),
			textField("Días", "7"),
			textField("Razón", "Sin especificar"),
		)
	case modals.Suspend:
		title = "Suspender · " + s.SubjectName
		f = newForm(textField("Días", "3"), textField("Razón", "Sin especificar"))
	case modals.Message:
		title = "Mensaje · " + s.SubjectName
		f = newForm(
			choiceField("Tipo", string(dashboard.MessageChat), string(dashboard.MessageNotification)),
			textField("Título", "Sistema"),
			textField("Mensaje", ""),
		)
	case modals.Broadcast:
		title = "Broadcast"
		sev := make([]string, len(dashboard.Severities))
		for i, v := range dashboard.Severities {
			sev[i] = string(v)
		}
		f = newForm(textField("Mensaje", ""), choiceField("Tipo", sev...).withValue(string(dashboard.SeverityInfo)))
	case modals.Filter:
		title = "Filtros"
		sorts := make([]string, len(dashboard.SortKeys))
		for i, v := range dashboard.SortKeys {
			sorts[i] = string(v)
		}
		cur := a.players.Filters
		f = newForm(
			choiceField("Estado", dashboard.FilterAll, string(model.Online), string(model.Offline)).withValue(cur.Presence),
			choiceField("Cuenta", dashboard.FilterAll, string(model.StatusActive), string(model.StatusBanned), string(model.StatusSuspended)).withValue(cur.AccountStatus),
			textField("Nivel mín", "1").withValue(strconv.Itoa(cur.MinLevel)),
			textField("Nivel máx", "99").withValue(strconv.Itoa(cur.MaxLevel)),
			choiceField("Orden", sorts...).withValue(string(cur.SortBy)),
		)
	case modals.Actions:
		title = "Acciones · " + s.SubjectName
		size.Height = len(a.actions.Catalog()) + 5
	case modals.Inventory:
		title = "Inventario · " + s.SubjectName
		size = invDefault
		inv, err := dashboard.OpenInventory(a.env, a.players.StoreInventory)
		if err != nil {
			log.Printf("open inventory: %v", err)
			return
		}
		a.inventory = inv
		a.invCursor, a.invPicked = 0, -1
	}

	min := dialogMin
	if k == modals.Inventory {
		min = invDefault
	}
	w := newWindow(winModal, title, a.centered(size), size, min)
	w.modal, w.form = k, f
	a.push(w)
}

func (a *app) openTicket(id string) {
	a.tickets.Select(id)
	if w := a.find(winTicket, 0); w != nil {
		a.remove(w)
	}
	size := overlay.Size{Width: ticketMin.Width + 20, Height: ticketMin.Height + 8}
	w := newWindow(winTicket, "Ticket "+id, a.centered(size), size, ticketMin)
	w.ref = id
	w.form = newForm(
		textField("Respuesta", ""),
		textField("Imagen", "https://…"),
		textField("Invitar", "ID o nombre"),
	)
	a.push(w)
}

func (a *app) openOrgForm(org *model.Organization) {
	kind := a.orgKind
	title := "Nuevo"
	if kind == model.OrgGang {
		title += " · banda"
	} else {
		title += " · trabajo"
	}
	last := textField("Tasa de pago", "0")
	if kind == model.OrgGang {
		last = textField("Líder", "")
	}
	f := newForm(
		textField("Nombre", ""),
		textField("Etiqueta", ""),
		textField("Territorio", ""),
		choiceField("Color", model.OrgColors...),
		choiceField("Estado", string(model.OrgActive), string(model.Organization{Kind: kind}.InactiveStatus())),
		textField("Descripción", ""),
		last,
	)
	size := overlay.Size{Width: 56, Height: 13}
	w := newWindow(winOrg, title, a.centered(size), size, dialogMin)
	w.mode = string(kind)
	if org != nil {
		w.title = "Editar · " + org.Label
		w.ref = org.ID
		vals := []string{org.Name, org.Label, org.Territory, org.Color, string(org.Status), org.Description}
		if kind == model.OrgGang {
			vals = append(vals, org.Leader)
		} else {
			vals = append(vals, strconv.FormatFloat(org.PaymentRate, 'f', -1, 64))
		}
		for i, v := range vals {
			f.fields[i] = f.fields[i].withValue(v)
		}
	}
	w.form = f
	a.push(w)
}

func (a *app) openMemberForm(org model.Organization, mode string) {
	fields := []field{textField("ID jugador", "P-0001")}
	title := "Quitar miembro · " + org.Label
	if mode == "add" {
		title = "Añadir miembro · " + org.Label
		fields = append(fields, textField("Nombre", ""), textField("Rango", ""))
		if org.Kind == model.OrgJob {
			fields = append(fields, textField("Salario", "0"))
		}
	}
	size := overlay.Size{Width: 50, Height: len(fields) + 5}
	w := newWindow(winMember, title, a.centered(size), size, dialogMin)
	w.mode, w.ref, w.form = mode, org.ID, newForm(fields...)
	a.push(w)
}

func (a *app) openWizard(wz *dashboard.Wizard) {
	if w := a.find(winWizard, 0); w != nil {
		a.remove(w)
	}
	a.wizard = wz
	size := overlay.Size{Width: 64, Height: 18}
	w := newWindow(winWizard, "Misión", a.centered(size), size, dialogMin)
	w.form = a.stepForm()
	a.push(w)
}

func catalogValues(entries []model.CatalogEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Value
	}
	return out
}

// stepForm builds the input rows of the wizard's current step.
func (a *app) stepForm() *form {
	d := a.wizard.Draft
	switch a.wizard.Step() {
	case dashboard.StepBasic:
		return newForm(
			textField("Nombre", "bank_job").withValue(d.Name),
			textField("Etiqueta", "Fleeca Heist").withValue(d.Label),
			textField("Descripción", "").withValue(d.Description),
			choiceField("Tipo", catalogValues(model.MissionTypes)...).withValue(string(d.Type)),
			choiceField("Dificultad", catalogValues(model.MissionDifficulties)...).withValue(string(d.Difficulty)),
			textField("Miniatura", "ruta de imagen"),
		)
	case dashboard.StepNPCs:
		return newForm(
			textField("Nombre", ""),
			choiceField("Tipo", catalogValues(model.NPCTypes)...),
			textField("Modelo", "s_m_m_security_01"),
			choiceField("Comportamiento", catalogValues(model.NPCBehaviors)...),
			textField("Diálogo", "texto | opción | opción"),
		)
	case dashboard.StepProps:
		return newForm(
			textField("Nombre", ""),
			choiceField("Tipo", catalogValues(model.PropTypes)...),
			textField("Modelo", "prop_box_wood02a"),
			choiceField("Interacción", catalogValues(model.InteractionTypes)...),
			choiceField("Vehículo", append([]string{noVehicle}, catalogValues(model.VehicleModels)...)...),
			choiceField("Cerrado", "no", "sí"),
		)
	case dashboard.StepObjectives:
		return newForm(
			textField("Título", ""),
			choiceField("Tipo", catalogValues(model.ObjectiveTypes)...),
			textField("Descripción", ""),
		)
	case dashboard.StepMinigames:
		return newForm(
			choiceField("Tipo", catalogValues(model.MinigameTypes)...),
			textField("Dificultad", "1-5"),
		)
	case dashboard.StepSecurity:
		return newForm(
			choiceField("Tipo", catalogValues(model.SecuritySystems)...),
			textField("Código", ""),
		)
	}
	return newForm()
}

// windowKey gives the focused window every key.
func (a *app) windowKey(w *window, msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyEsc {
		a.closeWindow(w)
		return nil
	}
	switch w.kind {
	case winModal:
		switch w.modal {
		case modals.Actions:
			return a.actionsKey(msg)
		case modals.Inventory:
			return a.inventoryKey(msg)
		}
	case winTicket:
		if msg.String() == "ctrl+s" {
			a.cycleStatus(w.ref)
			return nil
		}
	case winWizard:
		switch msg.String() {
		case "pgdown":
			if !a.captureBasic(w) {
				return nil
			}
			if a.wizard.Next() {
				w.form = a.stepForm()
			}
			return nil
		case "pgup":
			if !a.captureBasic(w) {
				return nil
			}
			if a.wizard.Back() {
				w.form = a.stepForm()
			}
			return nil
		}
	}

	if msg.Type == tea.KeyEnter {
		a.submit(w)
		return nil
	}
	if w.form != nil {
		return w.form.Update(msg)
	}
	return nil
}

// submit hands the window's form to its view. Windows close on success or
// once a confirmation is parked; they stay open on validation errors.
func (a *app) submit(w *window) {
	var err error
	done := true
	f := w.form

	switch w.kind {
	case winModal:
		switch w.modal {
		case modals.Ban:
			err = a.players.Ban(dashboard.BanForm{Type: dashboard.BanType(f.value(0)), Days: f.value(1), Reason: f.value(2)})
		case modals.Suspend:
			err = a.players.Suspend(dashboard.SuspendForm{Days: f.value(0), Reason: f.value(1)})
		case modals.Message:
			err = a.players.SendMessage(dashboard.MessageForm{Type: dashboard.MessageType(f.value(0)), Title: f.value(1), Body: f.value(2)})
		case modals.Broadcast:
			err = a.players.Broadcast(dashboard.BroadcastForm{Message: f.value(0), Severity: dashboard.Severity(f.value(1))})
		case modals.Filter:
			minLvl, e1 := strconv.Atoi(strings.TrimSpace(f.value(2)))
			maxLvl, e2 := strconv.Atoi(strings.TrimSpace(f.value(3)))
			if e1 != nil || e2 != nil {
				a.env.Dialogs.Alert("El nivel debe ser un número")
				return
			}
			err = a.players.ApplyFilters(dashboard.PlayerFilters{
				Presence: f.value(0), AccountStatus: f.value(1),
				MinLevel: minLvl, MaxLevel: maxLvl,
				SortBy: dashboard.SortKey(f.value(4)),
			})
		}
		// Modal windows leave through the registry.
		done = false

	case winTicket:
		done = false
		if q := strings.TrimSpace(f.value(2)); q != "" {
			tk, ok := a.tickets.Get(w.ref)
			cands := dashboard.InviteCandidates(a.players.All(), tk, q)
			if !ok || len(cands) == 0 {
				a.env.Dialogs.Alert("No se encontró ningún jugador: " + q)
				return
			}
			err = a.tickets.InvitePlayer(w.ref, cands[0].ID, cands[0].Name)
		} else {
			err = a.tickets.AddMessage(w.ref, f.value(0), strings.TrimSpace(f.value(1)))
		}
		if err == nil || err == dashboard.ErrAwaitingConfirmation {
			f.reset()
		}

	case winOrg:
		o := a.jobs
		if w.mode == string(model.OrgGang) {
			o = a.gangs
		}
		form := dashboard.OrgForm{
			Name: f.value(0), Label: f.value(1), Territory: f.value(2),
			Color: f.value(3), Status: f.value(4), Description: f.value(5),
		}
		if w.mode == string(model.OrgGang) {
			form.Leader = f.value(6)
		} else {
			form.PaymentRate = f.value(6)
		}
		if w.ref == "" {
			_, err = o.Create(form)
		} else {
			err = o.Update(w.ref, form)
		}

	case winMember:
		o := a.jobs
		if org, ok := a.gangs.Get(w.ref); ok && org.Kind == model.OrgGang {
			o = a.gangs
		}
		if w.mode == "add" {
			err = o.AddMember(w.ref, dashboard.MemberForm{PlayerID: f.value(0), PlayerName: f.value(1), Rank: f.value(2), Salary: f.value(3)})
		} else {
			err = o.RemoveMember(w.ref, strings.TrimSpace(f.value(0)))
		}

	case winWizard:
		done = a.wizardEnter(w)
		if !done {
			return
		}

	case winItem:
		if a.inventory == nil {
			break
		}
		item := dashboard.ItemForm{Name: f.value(0), Quantity: f.value(1)}
		switch w.mode {
		case "give":
			err = a.inventory.Give(item)
		case "drop":
			err = a.inventory.Drop(item)
		case "delete":
			err = a.inventory.Delete(item)
		}

	case winImport:
		if a.inventory != nil {
			err = a.inventory.ImportJSON([]byte(f.value(0)))
		}
	}

	a.do(err)
	if done && (err == nil || err == dashboard.ErrAwaitingConfirmation) {
		a.closeWindow(w)
	}
}

const noVehicle = "ninguno"

// captureBasic copies the basic step into the draft. A thumbnail path is
// read and checked here; it reports false when the image is rejected.
func (a *app) captureBasic(w *window) bool {
	if a.wizard.Step() != dashboard.StepBasic || w.form == nil {
		return true
	}
	d := &a.wizard.Draft
	d.Name = w.form.value(0)
	d.Label = w.form.value(1)
	d.Description = w.form.value(2)
	d.Type = model.MissionType(w.form.value(3))
	d.Difficulty = model.MissionDifficulty(w.form.value(4))

	path := strings.TrimSpace(w.form.value(5))
	if path == "" {
		return true
	}
	data, err := os.ReadFile(path)
	if err == nil {
		err = a.wizard.SetThumbnail(data)
	}
	if err != nil {
		a.env.Dialogs.Alert(err.Error())
		return false
	}
	return true
}

// wizardEnter adds the current step's item, or saves on the first and last
// steps. It reports whether the wizard is finished.
func (a *app) wizardEnter(w *window) bool {
	wz, f := a.wizard, w.form
	switch wz.Step() {
	case dashboard.StepBasic, dashboard.StepReview:
		if !a.captureBasic(w) {
			return false
		}
		err := a.missions.Save(wz)
		a.do(err)
		return err == nil
	case dashboard.StepNPCs:
		if strings.TrimSpace(f.value(0)) == "" {
			return false
		}
		id := wz.AddNPC(f.value(0), f.value(1), f.value(2), f.value(3), model.Coords{})
		if line := strings.TrimSpace(f.value(4)); line != "" {
			parts := strings.Split(line, "|")
			for n := range parts {
				parts[n] = strings.TrimSpace(parts[n])
			}
			wz.AddDialogue(id, parts[0], parts[1:]...)
		}
	case dashboard.StepProps:
		// A row adds a prop, a vehicle, or both.
		prop, vehicle := strings.TrimSpace(f.value(0)), f.value(4)
		if prop == "" && vehicle == noVehicle {
			return false
		}
		if prop != "" {
			wz.AddProp(prop, f.value(1), f.value(2), model.Coords{}, model.PropInteraction{Type: f.value(3), Label: f.value(3)})
		}
		if vehicle != noVehicle {
			wz.AddVehicle(vehicle, model.Coords{}, f.value(5) == "sí")
		}
	case dashboard.StepObjectives:
		if strings.TrimSpace(f.value(0)) == "" {
			return false
		}
		wz.AddObjective(f.value(0), f.value(1), f.value(2))
	case dashboard.StepMinigames:
		lvl, err := strconv.Atoi(strings.TrimSpace(f.value(1)))
		if err != nil || lvl < 1 || lvl > 5 {
			a.env.Dialogs.Alert("La dificultad debe estar entre 1 y 5")
			return false
		}
		wz.AddMinigame(f.value(0), lvl, model.Reward{})
	case dashboard.StepSecurity:
		wz.AddSecurity(f.value(0), model.Coords{}, f.value(1))
	}
	f.reset()
	return false
}

func (a *app) cycleStatus(id string) {
	tk, ok := a.tickets.Get(id)
	if !ok {
		return
	}
	next := model.TicketStatuses[0]
	for i, s := range model.TicketStatuses {
		if s == tk.Status {
			next = model.TicketStatuses[(i+1)%len(model.TicketStatuses)]
		}
	}
	a.do(a.tickets.UpdateStatus(id, next))
}

func (a *app) actionsKey(msg tea.KeyMsg) tea.Cmd {
	catalog := a.actions.Catalog()
	c := a.cursor[-1]
	switch msg.String() {
	case "up", "k":
		c--
	case "down", "j":
		c++
	case "enter":
		if c >= 0 && c < len(catalog) {
			a.do(a.actions.Trigger(catalog[c].ID))
		}
	}
	if c < 0 {
		c = 0
	}
	if c >= len(catalog) {
		c = len(catalog) - 1
	}
	a.cursor[-1] = c
	return nil
}

const gridCols = 10

func (a *app) inventoryKey(msg tea.KeyMsg) tea.Cmd {
	inv := a.inventory
	if inv == nil {
		return nil
	}
	switch msg.String() {
	case "left", "h":
		a.invCursor--
	case "right", "l":
		a.invCursor++
	case "up", "k":
		a.invCursor -= gridCols
	case "down", "j":
		a.invCursor += gridCols
	case "enter", " ":
		slot := a.invCursor + 1
		if a.invPicked < 0 {
			if inv.Grid()[a.invCursor].Item != nil {
				a.invPicked = slot
			}
			break
		}
		a.do(inv.Move(a.invPicked, slot))
		a.invPicked = -1
	case "g":
		a.openItemForm("give")
	case "d":
		a.openItemForm("drop")
	case "x":
		a.openItemForm("delete")
	case "c":
		a.do(inv.Clear())
	case "J":
		size := overlay.Size{Width: 60, Height: 6}
		w := newWindow(winImport, "Importar JSON", a.centered(size), size, dialogMin)
		w.form = newForm(textField("JSON", `[{"name":"water","count":1,"slot":1}]`))
		w.form.fields[0].input.CharLimit = 0
		a.push(w)
	}
	if a.invCursor < 0 {
		a.invCursor = 0
	}
	if a.invCursor >= model.InventorySlots {
		a.invCursor = model.InventorySlots - 1
	}
	return nil
}

func (a *app) openItemForm(mode string) {
	titles := map[string]string{"give": "Dar item", "drop": "Soltar item", "delete": "Eliminar item"}
	name := ""
	if it := a.inventory.Grid()[a.invCursor].Item; it != nil && mode != "give" {
		name = it.Name
	}
	size := overlay.Size{Width: 44, Height: 7}
	w := newWindow(winItem, fmt.Sprintf("%s · %s", titles[mode], a.inventory.PlayerName()), a.centered(size), size, dialogMin)
	w.mode = mode
	w.form = newForm(textField("Item", "water").withValue(name), textField("Cantidad", "1"))
	a.push(w)
}
