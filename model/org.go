package model

// OrgKind distinguishes jobs from gangs. The value doubles as the event
// prefix and the id prefix.
type OrgKind string

const (
	OrgJob  OrgKind = "job"
	OrgGang OrgKind = "gang"
)

// OrgStatus of a job (active/inactive) or gang (active/defeated).
type OrgStatus string

const (
	OrgActive   OrgStatus = "active"
	OrgInactive OrgStatus = "inactive"
	OrgDefeated OrgStatus = "defeated"
)

// OrgColors are the colours offered by the create/edit form.
var OrgColors = []string{"red", "blue", "green", "yellow", "purple", "pink", "orange", "cyan"}

// Organization is a job or a gang. Treasury, Level and PaymentRate only
// apply to jobs; Leader and Reputation only to gangs.
type Organization struct {
	ID          string    `json:"id"`
	Kind        OrgKind   `json:"type"`
	Name        string    `json:"name"`
	Label       string    `json:"label"`
	Territory   string    `json:"territory"`
	Color       string    `json:"color"`
	Status      OrgStatus `json:"status"`
	Description string    `json:"description,omitempty"`
	Members     int       `json:"members"`

	Treasury    int64   `json:"treasury,omitempty"`
	Level       int     `json:"level,omitempty"`
	PaymentRate float64 `json:"paymentRate,omitempty"`

	Leader     string `json:"leader,omitempty"`
	Reputation int    `json:"reputation,omitempty"`
}

// InactiveStatus is the non-active status for the organization's kind.
func (o Organization) InactiveStatus() OrgStatus {
	if o.Kind == OrgGang {
		return OrgDefeated
	}
	return OrgInactive
}

// Member belongs to an organization roster.
type Member struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	Rank       string `json:"rank,omitempty"`
	Salary     int64  `json:"salary,omitempty"`
}

// MockJobs returns the seeded jobs.
func MockJobs() []Organization {
	return []Organization{
		{ID: "job_1", Kind: OrgJob, Name: "Lost MC", Label: "Lost MC", Members: 12, Level: 45, Treasury: 450000, Territory: "Downtown", Color: "red", Status: OrgActive},
		{ID: "job_2", Kind: OrgJob, Name: "Families", Label: "Grove Street Families", Members: 18, Level: 52, Treasury: 650000, Territory: "South Side", Color: "green", Status: OrgActive},
		{ID: "job_3", Kind: OrgJob, Name: "Ballas", Label: "Los Santos Vagos", Members: 15, Level: 48, Treasury: 520000, Territory: "East Side", Color: "purple", Status: OrgActive},
	}
}

// MockGangs returns the seeded gangs.
func MockGangs() []Organization {
	return []Organization{
		{ID: "gang_1", Kind: OrgGang, Name: "Vagos", Label: "Los Santos Vagos", Leader: "Big Smoke", Members: 25, Reputation: 8500, Territory: "Grove Street", Color: "purple", Status: OrgActive},
		{ID: "gang_2", Kind: OrgGang, Name: "Ballas", Label: "Los Santos Ballas", Leader: "Lance 'Ryder' Wilson", Members: 30, Reputation: 9200, Territory: "East Los Santos", Color: "purple", Status: OrgActive},
		{ID: "gang_3", Kind: OrgGang, Name: "Mafia", Label: "Italian Mafia", Leader: "Salvatore Leone", Members: 20, Reputation: 7800, Territory: "Chinatown", Color: "red", Status: OrgDefeated},
	}
}
