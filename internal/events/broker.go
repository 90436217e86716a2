package events

import (
	"sync"

	"github.com/google/uuid"
)

// Операции, о которых сообщает лента изменений.
const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
	OpClear  = "clear"
	OpSeed   = "seed"
)

// Change - событие изменения коллекции. ID пуст для clear и seed.
type Change struct {
	Collection string `json:"collection"`
	Op         string `json:"op"`
	ID         string `json:"id,omitempty"`
}

// Broker хранит каналы подписчиков на изменения коллекций.
type Broker struct {
	mu sync.RWMutex
	//          map[collection] map[subscriberID] channel; "" - все коллекции
	subs map[string]map[string]chan Change
}

// NewBroker - конструктор брокера.
func NewBroker() *Broker {
	return &Broker{
		subs: make(map[string]map[string]chan Change),
	}
}

// Subscribe подписывает на коллекцию (пустая строка - на все).
// Возвращённую функцию нужно вызвать, чтобы отписаться; она закрывает канал.
func (b *Broker) Subscribe(collection string) (<-chan Change, func()) {
	ch := make(chan Change, 16)
	subID := uuid.NewString()

	b.mu.Lock()
	if b.subs[collection] == nil {
		b.subs[collection] = make(map[string]chan Change)
	}
	b.subs[collection][subID] = ch
	b.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			if subs, ok := b.subs[collection]; ok {
				delete(subs, subID)
				if len(subs) == 0 {
					delete(b.subs, collection)
				}
			}
			b.mu.Unlock()
			close(ch)
		})
	}
}

// Publish рассылает событие, не блокируясь на медленных подписчиках.
func (b *Broker) Publish(c Change) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, key := range []string{c.Collection, ""} {
		for _, ch := range b.subs[key] {
			select {
			case ch <- c:
			default:
				// Клиент не успевает читать, событие пропускаем
			}
		}
	}
}
