package network

import (
	"sync"

	"github.com/jerryeechan/poachers/pkg/api"
)

// Broadcaster раздает снимки забега наблюдателям (консоль, запись прогона).
// Медленный наблюдатель пропускает снимки, сессию он не тормозит.
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: имя наблюдателя -> личный канал
	subscribers map[string]chan api.StateView
	buffer      int
}

func NewBroadcaster(buffer int) *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.StateView),
		buffer:      buffer,
	}
}

// Register создает личный канал наблюдателя. Старый канал с тем же именем закрывается.
func (b *Broadcaster) Register(name string) <-chan api.StateView {
	b.mu.Lock()
	defer b.mu.Unlock()

	if old, ok := b.subscribers[name]; ok {
		close(old)
	}

	ch := make(chan api.StateView, b.buffer)
	b.subscribers[name] = ch
	return ch
}

// Unregister удаляет наблюдателя и закрывает его канал
func (b *Broadcaster) Unregister(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[name]; ok {
		close(ch)
		delete(b.subscribers, name)
	}
}

// SendTo отправляет снимок конкретному наблюдателю (Unicast)
func (b *Broadcaster) SendTo(name string, view api.StateView) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	ch, ok := b.subscribers[name]
	if !ok {
		return false
	}
	select {
	case ch <- view:
		return true
	default:
		return false
	}
}

// Broadcast отправляет всем. Возвращает, скольким снимок не влез.
func (b *Broadcaster) Broadcast(view api.StateView) (dropped int) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- view:
		default:
			dropped++
		}
	}
	return dropped
}

func (b *Broadcaster) HasSubscriber(name string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.subscribers[name]
	return ok
}

// SubscriberCount возвращает количество активных наблюдателей.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
