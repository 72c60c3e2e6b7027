package model

// Outbound event names understood by the host.
const (
	EvPlayerBan     = "player:ban"
	EvPlayerSuspend = "player:suspend"
	EvPlayerMessage = "player:message"
	EvSpectate      = "spectate:player"
	EvBroadcast     = "broadcast:send"

	EvActionExecute = "action:execute"
	EvActionsGet    = "actions:getAvailable"

	EvInventoryGive   = "inventory:giveItem"
	EvInventoryDrop   = "inventory:dropItem"
	EvInventoryDelete = "inventory:deleteItem"
	EvInventoryMove   = "inventory:moveItem"
	EvInventoryClear  = "inventory:clearInventory"

	EvTicketMessage = "ticket:addMessage"
	EvTicketInvite  = "ticket:invitePlayer"
	EvTicketStatus  = "ticket:updateStatus"
	EvTicketsGet    = "tickets:getAll"

	EvMissionCreate = "mission:create"
	EvMissionUpdate = "mission:update"
	EvMissionDelete = "mission:delete"
)

// Inbound push names.
const (
	PushActions = "actions:update"
	PushTickets = "tickets:update"
	PushJobs    = "jobs:update"
	PushGangs   = "gangs:update"
)

// OrgEvent returns the event name for an organization operation, e.g.
// OrgEvent(OrgJob, "create") == "job:create".
func OrgEvent(kind OrgKind, op string) string {
	return string(kind) + ":" + op
}
