package discord

import "sync"

// guildIndex maps guild ids to names for rendering mutual guilds
type guildIndex struct {
	mu    sync.RWMutex
	names map[uint64]string
}

func newGuildIndex() *guildIndex {
	return &guildIndex{
		names: make(map[uint64]string),
	}
}

// Add records the name of a guild, replacing any previous one
func (ix *guildIndex) Add(id uint64, name string) {
	if id == 0 {
		return
	}
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.names[id] = name
}

// Name returns the name recorded for a guild
func (ix *guildIndex) Name(id uint64) (string, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	name, ok := ix.names[id]
	return name, ok
}

// Size returns the number of guilds in the index
func (ix *guildIndex) Size() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.names)
}
