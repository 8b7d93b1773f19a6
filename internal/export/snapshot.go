// Package export turns a conversation into a downloadable CSV document.
package export

import (
	"sort"
	"time"

	"compliance-ai/backend/internal/model"
)

// Row is one exported message with its 1-based position.
type Row struct {
	Seq       int
	Role      model.Role
	Text      string
	Timestamp time.Time
}

// Snapshot is a read-only, time-ordered copy of a conversation taken at
// export time.
type Snapshot struct {
	Rows       []Row
	StartedAt  time.Time
	EndedAt    time.Time
	ExportedAt time.Time
}

// BuildSnapshot keeps settled messages only, orders them by timestamp (ties
// keep their original order) and numbers them from 1. Without messages the
// conversation start and end are the export time.
func BuildSnapshot(messages []model.ChatMessage, exportedAt time.Time) Snapshot {
	settled := make([]model.ChatMessage, 0, len(messages))
	for _, m := range messages {
		if !m.Pending {
			settled = append(settled, m)
		}
	}
	sort.SliceStable(settled, func(i, j int) bool {
		return settled[i].Timestamp < settled[j].Timestamp
	})

	snap := Snapshot{
		Rows:       make([]Row, len(settled)),
		StartedAt:  exportedAt,
		EndedAt:    exportedAt,
		ExportedAt: exportedAt,
	}
	for i, m := range settled {
		snap.Rows[i] = Row{
			Seq:       i + 1,
			Role:      m.Role,
			Text:      m.Text,
			Timestamp: time.UnixMilli(m.Timestamp),
		}
	}
	if len(snap.Rows) > 0 {
		snap.StartedAt = snap.Rows[0].Timestamp
		snap.EndedAt = snap.Rows[len(snap.Rows)-1].Timestamp
	}
	return snap
}
