package domain

import "time"

// AuditLog records a mutation on the storefront (catalog changes,
// order placement) for after-the-fact inspection.
type AuditLog struct {
	ID      int64     `json:"id,string"`
	Actor   string    `json:"actor"`
	Action  string    `json:"action"`
	Target  string    `json:"target"`
	Detail  string    `json:"detail"`
	OptTime time.Time `json:"opt_time"`
}

// TableName Specify table name
func (AuditLog) TableName() string {
	return "audit_log"
}
