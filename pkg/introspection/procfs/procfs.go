package procfs

import (
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/procfs"

	"github.com/guestcov/guestcov/pkg/introspection"
)

const (
	nameCacheSize = 1024
	nameCacheTTL  = 30 * time.Second
)

var _ introspection.NameResolver = (*NameResolver)(nil)

// NameResolver resolves pid to process name from the local proc filesystem,
// for traces that carry pids but no names. Names are cached with a short TTL
// since pids get recycled. A pid that already exited resolves to not-found,
// never to an error.
type NameResolver struct {
	fs    procfs.FS
	cache *expirable.LRU[uint64, string]
}

func NewNameResolver(procfsPath string) (*NameResolver, error) {
	fs, err := procfs.NewFS(procfsPath)
	if err != nil {
		return nil, fmt.Errorf("initializing procfs at %s: %w", procfsPath, err)
	}
	return &NameResolver{
		fs:    fs,
		cache: expirable.NewLRU[uint64, string](nameCacheSize, nil, nameCacheTTL),
	}, nil
}

func (r *NameResolver) ProcessName(pid uint64) (string, bool) {
	if name, ok := r.cache.Get(pid); ok {
		return name, true
	}
	proc, err := r.fs.Proc(int(pid))
	if err != nil {
		return "", false
	}
	name, err := proc.Comm()
	if err != nil {
		// The process can vanish between the pid lookup and reading comm.
		return "", false
	}
	r.cache.Add(pid, name)
	return name, true
}
