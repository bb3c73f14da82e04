package cache

import (
	"fmt"
	"strings"
)

// Open returns the cache backend described by url:
//   - "" or "file": a [FileCache] in dir
//   - "file:///path": a [FileCache] in /path
//   - "redis://..." or "rediss://...": a [RedisCache]
//   - "none": a [NullCache]
func Open(url, dir string) (Cache, error) {
	switch {
	case url == "" || url == "file":
		return NewFileCache(dir)
	case url == "none":
		return NewNullCache(), nil
	case strings.HasPrefix(url, "file://"):
		return NewFileCache(strings.TrimPrefix(url, "file://"))
	case strings.HasPrefix(url, "redis://"), strings.HasPrefix(url, "rediss://"):
		return NewRedisCache(url)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedURL, url)
	}
}
