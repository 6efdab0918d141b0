// internals/features/live/hub/hub.go
package hub

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event adalah satu pesan SSE bernama yang dikirim ke klien.
type Event struct {
	Name string
	Data interface{}
}

// Conn adalah satu koneksi SSE yang terdaftar di hub.
// Events dibaca oleh writer loop controller; Done tertutup saat koneksi
// berakhir (timeout, gagal kirim, atau klien putus).
type Conn struct {
	ID       string
	SchoolID uuid.UUID

	events chan Event
	done   chan struct{}
	once   sync.Once

	timerMu sync.Mutex
	timer   *time.Timer
}

// NewConn membuat koneksi dengan buffer event kecil. Buffer penuh berarti
// klien terlalu lambat dan koneksi akan ditutup oleh Push.
func NewConn(id string, schoolID uuid.UUID) *Conn {
	return &Conn{
		ID:       id,
		SchoolID: schoolID,
		events:   make(chan Event, 16),
		done:     make(chan struct{}),
	}
}

// Events mengembalikan channel event untuk writer loop.
func (c *Conn) Events() <-chan Event { return c.events }

// Done tertutup saat koneksi sudah tidak valid.
func (c *Conn) Done() <-chan struct{} { return c.done }

// Push mengirim event tanpa pernah memblokir broadcaster.
// Return false bila koneksi sudah mati atau buffer penuh.
func (c *Conn) Push(ev Event) bool {
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case c.events <- ev:
		return true
	case <-c.done:
		return false
	default:
		return false
	}
}

// SetExpiry menitipkan timer umur koneksi ke conn; kalau koneksi ditutup
// lebih dulu, timernya ikut dihentikan dan tidak menggantung sampai habis.
func (c *Conn) SetExpiry(t *time.Timer) {
	c.timerMu.Lock()
	c.timer = t
	c.timerMu.Unlock()

	select {
	case <-c.done:
		t.Stop()
	default:
	}
}

// Close menutup koneksi. Aman dipanggil berkali-kali dari goroutine manapun.
func (c *Conn) Close() {
	c.once.Do(func() {
		close(c.done)
		c.timerMu.Lock()
		if c.timer != nil {
			c.timer.Stop()
		}
		c.timerMu.Unlock()
	})
}

// Registry adalah kontrak hub koneksi SSE per sekolah.
type Registry interface {
	Register(conn *Conn)
	Remove(conn *Conn)
	Broadcast(schoolID uuid.UUID, ev Event)
	Count(schoolID uuid.UUID) int
}

// connSet adalah kumpulan koneksi satu sekolah dengan lock sendiri,
// supaya broadcast sekolah A tidak menahan sekolah B.
type connSet struct {
	mu    sync.Mutex
	conns map[string]*Conn
}

func (s *connSet) add(c *Conn) {
	s.mu.Lock()
	s.conns[c.ID] = c
	s.mu.Unlock()
}

func (s *connSet) remove(id string) int {
	s.mu.Lock()
	delete(s.conns, id)
	n := len(s.conns)
	s.mu.Unlock()
	return n
}

// snapshot menyalin daftar koneksi supaya pengiriman event berjalan
// di luar lock.
func (s *connSet) snapshot() []*Conn {
	s.mu.Lock()
	out := make([]*Conn, 0, len(s.conns))
	for _, c := range s.conns {
		out = append(out, c)
	}
	s.mu.Unlock()
	return out
}

// SchoolHub adalah Registry berbasis map sekolah → connSet.
type SchoolHub struct {
	mu      sync.RWMutex
	schools map[uuid.UUID]*connSet
}

func NewSchoolHub() *SchoolHub {
	return &SchoolHub{schools: make(map[uuid.UUID]*connSet)}
}

// Register mendaftarkan koneksi di bucket sekolahnya. Penambahan terjadi
// di dalam lock luar supaya tidak balapan dengan prune bucket kosong.
func (h *SchoolHub) Register(conn *Conn) {
	h.mu.Lock()
	set, ok := h.schools[conn.SchoolID]
	if !ok {
		set = &connSet{conns: make(map[string]*Conn)}
		h.schools[conn.SchoolID] = set
	}
	set.add(conn)
	h.mu.Unlock()

	log.Printf("[INFO] SSE terdaftar: conn=%s school=%s", conn.ID, conn.SchoolID)
}

// Remove melepas koneksi dari hub dan menutupnya. Idempoten: pemanggilan
// kedua untuk koneksi yang sama tidak berefek. Bucket sekolah yang kosong
// ikut dibuang.
func (h *SchoolHub) Remove(conn *Conn) {
	h.mu.RLock()
	set, ok := h.schools[conn.SchoolID]
	h.mu.RUnlock()

	conn.Close()
	if !ok {
		return
	}

	if set.remove(conn.ID) == 0 {
		h.mu.Lock()
		if cur, ok := h.schools[conn.SchoolID]; ok {
			cur.mu.Lock()
			if len(cur.conns) == 0 {
				delete(h.schools, conn.SchoolID)
			}
			cur.mu.Unlock()
		}
		h.mu.Unlock()
	}
	log.Printf("[INFO] SSE dilepas: conn=%s school=%s", conn.ID, conn.SchoolID)
}

// Broadcast mengirim event ke semua koneksi satu sekolah. Koneksi yang
// gagal menerima (buffer penuh / sudah mati) langsung dilepas dan tidak
// akan menerima event berikutnya. Sekolah tanpa koneksi adalah no-op.
func (h *SchoolHub) Broadcast(schoolID uuid.UUID, ev Event) {
	h.mu.RLock()
	set, ok := h.schools[schoolID]
	h.mu.RUnlock()
	if !ok {
		return
	}

	for _, c := range set.snapshot() {
		if !c.Push(ev) {
			log.Printf("[ERROR] SSE gagal kirim event %s ke conn=%s, koneksi dilepas", ev.Name, c.ID)
			h.Remove(c)
		}
	}
}

// Count mengembalikan jumlah koneksi aktif satu sekolah.
func (h *SchoolHub) Count(schoolID uuid.UUID) int {
	h.mu.RLock()
	set, ok := h.schools[schoolID]
	h.mu.RUnlock()
	if !ok {
		return 0
	}
	set.mu.Lock()
	n := len(set.conns)
	set.mu.Unlock()
	return n
}

// schoolIDs menyalin daftar sekolah aktif untuk iterasi heartbeat.
func (h *SchoolHub) schoolIDs() []uuid.UUID {
	h.mu.RLock()
	ids := make([]uuid.UUID, 0, len(h.schools))
	for id := range h.schools {
		ids = append(ids, id)
	}
	h.mu.RUnlock()
	return ids
}

// HeartbeatInterval adalah jarak antar event heartbeat ke semua koneksi.
const HeartbeatInterval = 10 * time.Second

// StartHeartbeat menjalankan ticker heartbeat sampai stop ditutup.
// Heartbeat sekaligus menyapu koneksi mati lewat jalur gagal-kirim Broadcast.
func (h *SchoolHub) StartHeartbeat(stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(HeartbeatInterval)
		defer ticker.Stop()
		log.Println("💓 Heartbeat SSE aktif (interval 10s)")
		for {
			select {
			case <-ticker.C:
				ts := time.Now().Format(time.RFC3339)
				for _, id := range h.schoolIDs() {
					h.Broadcast(id, Event{Name: "heartbeat", Data: ts})
				}
			case <-stop:
				return
			}
		}
	}()
}
