package cache

import (
	"context"
	"sync"
	"time"
)

// Item é um valor guardado com o instante de expiração (UnixNano; 0 = sem expiração)
type Item struct {
	Value      []byte
	Expiration int64
}

func (i Item) expired(now int64) bool {
	return i.Expiration > 0 && now > i.Expiration
}

// Cache é o armazenamento chave/valor em memória do processo.
// Guarda rascunhos do questionário e sessões de admin quando não há Redis.
type Cache struct {
	items map[string]Item
	mu    sync.RWMutex
	stop  chan struct{}
	once  sync.Once
}

// New cria um novo cache e inicia a limpeza periódica de itens expirados
func New() *Cache {
	return NewWithJanitor(time.Minute)
}

// NewWithJanitor cria um cache com o intervalo de limpeza informado
func NewWithJanitor(interval time.Duration) *Cache {
	cache := &Cache{
		items: make(map[string]Item),
		stop:  make(chan struct{}),
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				cache.DeleteExpired()
			case <-cache.stop:
				return
			}
		}
	}()

	return cache
}

// Set grava um valor com TTL; ttl <= 0 mantém o valor até ser removido
func (c *Cache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var expiration int64
	if ttl > 0 {
		expiration = time.Now().Add(ttl).UnixNano()
	}
	c.items[key] = Item{
		Value:      append([]byte(nil), value...),
		Expiration: expiration,
	}
	return nil
}

// Get busca um valor; itens expirados são tratados como ausentes
func (c *Cache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, found := c.items[key]
	if !found || item.expired(time.Now().UnixNano()) {
		return nil, false, nil
	}

	return append([]byte(nil), item.Value...), true, nil
}

// Delete remove uma chave
func (c *Cache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
	return nil
}

// DeleteExpired remove todos os itens expirados
func (c *Cache) DeleteExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UnixNano()
	for k, v := range c.items {
		if v.expired(now) {
			delete(c.items, k)
		}
	}
}

// Len retorna o número de itens guardados, incluindo os ainda não limpos
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Close encerra a limpeza periódica
func (c *Cache) Close() error {
	c.once.Do(func() { close(c.stop) })
	return nil
}
