package state

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderdomain "github.com/tair/dineboard/internal/order/domain"
	staffdomain "github.com/tair/dineboard/internal/staff/domain"
	tabledomain "github.com/tair/dineboard/internal/table/domain"
)

func TestSnapshotRoundTrip(t *testing.T) {
	c := NewContainer()
	require.NoError(t, c.Seed())

	snap := c.Snapshot()
	payload, err := json.Marshal(snap)
	require.NoError(t, err)

	var decoded Snapshot
	require.NoError(t, json.Unmarshal(payload, &decoded))

	restored := NewContainer()
	restored.Restore(&decoded)

	// Compare serialized forms; the wall-clock round trip drops the
	// monotonic reading from timestamps
	replayed, err := json.Marshal(restored.Snapshot())
	require.NoError(t, err)
	assert.JSONEq(t, string(payload), string(replayed))
}

func TestSnapshotPreservesPasswordHash(t *testing.T) {
	c := NewContainer()
	require.NoError(t, c.Update(func(d *Data) error {
		d.Staff["stf-1"] = staffdomain.Member{
			ID: "stf-1", Username: "dana", Password: "$2a$10$fakehashforthetest",
			Role: staffdomain.RoleManager,
		}
		return nil
	}))

	payload, err := json.Marshal(c.Snapshot())
	require.NoError(t, err)
	// Member.Password is json:"-"; the wrapper must carry the hash instead
	assert.Contains(t, string(payload), "password_hash")

	var decoded Snapshot
	require.NoError(t, json.Unmarshal(payload, &decoded))

	restored := NewContainer()
	restored.Restore(&decoded)

	require.NoError(t, restored.View(func(d *Data) error {
		assert.Equal(t, "$2a$10$fakehashforthetest", d.Staff["stf-1"].Password)
		return nil
	}))
}

func TestSnapshotExcludesMenu(t *testing.T) {
	c := NewContainer()
	c.SeedMenu()

	payload, err := json.Marshal(c.Snapshot())
	require.NoError(t, err)
	assert.NotContains(t, string(payload), `"menu"`)
}

func TestSnapshotIsDeterministic(t *testing.T) {
	c := NewContainer()
	require.NoError(t, c.Seed())

	first, err := json.Marshal(c.Snapshot())
	require.NoError(t, err)
	second, err := json.Marshal(c.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestUpdateSignalsDirty(t *testing.T) {
	c := NewContainer()

	require.NoError(t, c.Update(func(d *Data) error {
		d.Orders["ord-1"] = orderdomain.Order{ID: "ord-1"}
		return nil
	}))

	select {
	case <-c.Dirty():
	default:
		t.Fatal("expected a dirty signal after an update")
	}
}

func TestFailedUpdateDoesNotCommit(t *testing.T) {
	c := NewContainer()
	require.NoError(t, c.Update(func(d *Data) error {
		d.Tables["tbl-1"] = tabledomain.Table{ID: "tbl-1", Status: tabledomain.StatusAvailable}
		return nil
	}))
	before := c.Snapshot().LastUpdated

	err := c.Update(func(d *Data) error {
		return assert.AnError
	})
	assert.Error(t, err)
	// A failed update must not stamp lastUpdated
	assert.Equal(t, before, c.Snapshot().LastUpdated)
}
