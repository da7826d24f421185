package dashboard

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"
	"time"

	"github.com/prefeitura-rio/app-painel-insights/internal/models"
)

// ViewCache armazena visões já calculadas em memória.
// A chave inclui o ID do dataset, então um novo carregamento invalida as entradas antigas.
type ViewCache struct {
	data    map[string]*cachedView
	mu      sync.RWMutex
	ttl     time.Duration
	maxSize int
}

type cachedView struct {
	view      *View
	timestamp time.Time
}

// NewViewCache cria um novo cache de visões
func NewViewCache(ttl time.Duration, maxSize int) *ViewCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if maxSize <= 0 {
		maxSize = 500
	}
	return &ViewCache{
		data:    make(map[string]*cachedView),
		ttl:     ttl,
		maxSize: maxSize,
	}
}

// Get busca uma visão no cache
func (c *ViewCache) Get(key string) *View {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if cached, ok := c.data[key]; ok {
		if time.Since(cached.timestamp) < c.ttl {
			return cached.view
		}
	}
	return nil
}

// Set armazena uma visão no cache
func (c *ViewCache) Set(key string, view *View) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.data) >= c.maxSize {
		c.cleanup()
	}

	c.data[key] = &cachedView{
		view:      view,
		timestamp: time.Now(),
	}
}

// Key gera a chave do par (dataset, seleção)
func (c *ViewCache) Key(datasetID string, sel models.Selection) string {
	var b strings.Builder
	b.WriteString(datasetID)
	for _, v := range sel {
		b.WriteByte(0)
		b.WriteString(v)
	}

	hash := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(hash[:16])
}

// cleanup remove entradas expiradas e, se ainda cheio, a mais antiga
func (c *ViewCache) cleanup() {
	now := time.Now()
	for key, cached := range c.data {
		if now.Sub(cached.timestamp) > c.ttl {
			delete(c.data, key)
		}
	}

	if len(c.data) >= c.maxSize {
		oldest := now
		oldestKey := ""
		for key, cached := range c.data {
			if cached.timestamp.Before(oldest) {
				oldest = cached.timestamp
				oldestKey = key
			}
		}
		if oldestKey != "" {
			delete(c.data, oldestKey)
		}
	}
}

// Clear limpa todo o cache
func (c *ViewCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string]*cachedView)
}

// Len retorna o número de entradas
func (c *ViewCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
