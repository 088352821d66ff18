package journal

import "time"

const (
	ActionCreate  = "create"
	ActionUpdate  = "update"
	ActionDelete  = "delete"
	ActionImport  = "import"
	ActionRestore = "restore"
	ActionReset   = "reset"
)

// Entry is one row of the mutation journal: what changed the dataset and
// when. The journal is advisory; it is written after a successful save and a
// failed write never fails the user's action.
type Entry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Action    string    `json:"action" gorm:"index"` // create|update|delete|import|restore|reset
	Entity    string    `json:"entity" gorm:"index"` // fazenda|producao|dataset
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}
