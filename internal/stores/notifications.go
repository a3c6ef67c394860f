package stores

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"luxeshop/internal/domain"
	applog "luxeshop/internal/log"
	"luxeshop/internal/repos"
)

const notificationsStorageKey = "notifications-storage"

// NotificationStore maintains the admin activity feed. Entries always
// start unread regardless of caller input, read only moves false to
// true, and there is no delete operation.
type NotificationStore struct {
	mu            sync.Mutex
	notifications []domain.Notification
	state         *repos.StateDB
}

type notificationsSnapshot struct {
	Notifications []domain.Notification `json:"notifications"`
}

func NewNotificationStore(state *repos.StateDB) *NotificationStore {
	s := &NotificationStore{state: state}
	var snap notificationsSnapshot
	if found, err := state.Load(notificationsStorageKey, &snap); err != nil {
		applog.Error(nil, "notifications.hydrate.fail", err, nil)
	} else if found {
		s.notifications = snap.Notifications
	}
	return s
}

func (s *NotificationStore) persist() {
	if err := s.state.Save(notificationsStorageKey, notificationsSnapshot{Notifications: s.notifications}); err != nil {
		applog.Error(nil, "notifications.persist.fail", err, nil)
	}
}

// Add forces read=false on creation even when the caller says
// otherwise.
func (s *NotificationStore) Add(n domain.Notification) domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	n.Read = false
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	s.notifications = append(s.notifications, n)
	s.persist()
	return n
}

// MarkRead is idempotent; marking an already-read entry is a no-op.
func (s *NotificationStore) MarkRead(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			if !s.notifications[i].Read {
				s.notifications[i].Read = true
				s.persist()
			}
			return true
		}
	}
	return false
}

func (s *NotificationStore) MarkAllRead() {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := false
	for i := range s.notifications {
		if !s.notifications[i].Read {
			s.notifications[i].Read = true
			changed = true
		}
	}
	if changed {
		s.persist()
	}
}

func (s *NotificationStore) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, x := range s.notifications {
		if !x.Read {
			n++
		}
	}
	return n
}

// Notifications returns a newest-first copy.
func (s *NotificationStore) Notifications() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Notification, len(s.notifications))
	copy(out, s.notifications)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}
