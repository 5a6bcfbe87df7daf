package audit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/trainer-marketplace/internal/db/dbtest"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

func TestLogger_Log(t *testing.T) {
	db := dbtest.New(t)
	uid, eid := uint(3), uint(9)

	require.NoError(t, New(db).Log(&uid, "contract_updated", "contract", &eid, map[string]any{"status": "accepted"}))

	var entry models.AuditLog
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, "contract_updated", entry.Action)
	assert.JSONEq(t, `{"status":"accepted"}`, entry.Metadata)
}

func TestDispatcher_Dispatch(t *testing.T) {
	db := dbtest.New(t)
	d := NewDispatcher(New(db))
	defer d.Close()

	d.Dispatch(Event{Action: "service_created", Entity: "service"})

	assert.Eventually(t, func() bool {
		var n int64
		db.Model(&models.AuditLog{}).Count(&n)
		return n == 1
	}, time.Second, 10*time.Millisecond)
}

func TestDispatcher_NilIsNoop(t *testing.T) {
	var d *Dispatcher
	assert.NotPanics(t, func() {
		d.Dispatch(Event{Action: "x"})
		d.Close()
	})
}
