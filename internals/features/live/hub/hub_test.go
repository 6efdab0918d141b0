// internals/features/live/hub/hub_test.go
package hub

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(c *Conn) []Event {
	out := []Event{}
	for {
		select {
		case ev := <-c.Events():
			out = append(out, ev)
		default:
			return out
		}
	}
}

func TestRegisterAndCount(t *testing.T) {
	h := NewSchoolHub()
	school := uuid.New()

	assert.Equal(t, 0, h.Count(school))

	conn := NewConn("c1", school)
	h.Register(conn)
	assert.Equal(t, 1, h.Count(school))

	h.Remove(conn)
	assert.Equal(t, 0, h.Count(school))
}

func TestBroadcast_SchoolIsolation(t *testing.T) {
	h := NewSchoolHub()
	schoolA := uuid.New()
	schoolB := uuid.New()

	connA := NewConn("a", schoolA)
	connB := NewConn("b", schoolB)
	h.Register(connA)
	h.Register(connB)

	h.Broadcast(schoolA, Event{Name: "satisfaction-update", Data: "x"})

	evsA := drain(connA)
	require.Len(t, evsA, 1)
	assert.Equal(t, "satisfaction-update", evsA[0].Name)

	assert.Empty(t, drain(connB))
}

func TestBroadcast_EmptySchoolNoop(t *testing.T) {
	h := NewSchoolHub()
	// tidak boleh panic atau mendaftar apapun
	h.Broadcast(uuid.New(), Event{Name: "heartbeat"})
	assert.Equal(t, 0, h.Count(uuid.New()))
}

func TestBroadcast_FailedConnRemoved(t *testing.T) {
	h := NewSchoolHub()
	school := uuid.New()

	dead := NewConn("dead", school)
	alive := NewConn("alive", school)
	h.Register(dead)
	h.Register(alive)

	dead.Close()
	h.Broadcast(school, Event{Name: "leftover-update"})

	assert.Equal(t, 1, h.Count(school))
	require.Len(t, drain(alive), 1)

	// koneksi mati tidak menerima event berikutnya
	h.Broadcast(school, Event{Name: "leftover-update"})
	assert.Empty(t, drain(dead))
}

func TestBroadcast_SlowConnRemoved(t *testing.T) {
	h := NewSchoolHub()
	school := uuid.New()

	slow := NewConn("slow", school)
	h.Register(slow)

	// penuhi buffer tanpa membaca; push berikutnya gagal → dilepas
	for i := 0; i < cap(slow.events)+1; i++ {
		h.Broadcast(school, Event{Name: fmt.Sprintf("ev-%d", i)})
	}

	assert.Equal(t, 0, h.Count(school))
}

func TestRemove_Idempotent(t *testing.T) {
	h := NewSchoolHub()
	school := uuid.New()

	conn := NewConn("c1", school)
	h.Register(conn)

	h.Remove(conn)
	h.Remove(conn)
	assert.Equal(t, 0, h.Count(school))

	// Remove untuk koneksi yang tidak pernah terdaftar juga aman
	h.Remove(NewConn("ghost", uuid.New()))
}

func TestPush_AfterClose(t *testing.T) {
	conn := NewConn("c1", uuid.New())
	assert.True(t, conn.Push(Event{Name: "connect"}))

	conn.Close()
	conn.Close() // idempoten
	assert.False(t, conn.Push(Event{Name: "connect"}))
}

func TestClose_StopsExpiryTimer(t *testing.T) {
	conn := NewConn("c1", uuid.New())
	timer := time.AfterFunc(time.Hour, func() {})
	conn.SetExpiry(timer)

	conn.Close()

	// Stop kedua harus false: timer sudah dihentikan saat Close
	assert.False(t, timer.Stop())
}

func TestSetExpiry_AfterClose(t *testing.T) {
	conn := NewConn("c1", uuid.New())
	conn.Close()

	timer := time.AfterFunc(time.Hour, func() {})
	conn.SetExpiry(timer)
	assert.False(t, timer.Stop())
}

func TestConcurrentUse(t *testing.T) {
	h := NewSchoolHub()
	schoolA := uuid.New()
	schoolB := uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			school := schoolA
			if i%2 == 0 {
				school = schoolB
			}
			conn := NewConn(fmt.Sprintf("c-%d", i), school)
			h.Register(conn)
			h.Broadcast(school, Event{Name: "satisfaction-update"})
			drain(conn)
			h.Remove(conn)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 0, h.Count(schoolA))
	assert.Equal(t, 0, h.Count(schoolB))
}
