package timeutil

import (
	"fmt"
	"sync"
	"time"
)

var locationCache sync.Map

// GetLocation loads the named zone once and serves it from cache afterwards.
// "Local" resolves to time.Local and "UTC" to time.UTC.
func GetLocation(name string) (*time.Location, error) {
	if loc, ok := locationCache.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	locationCache.Store(name, loc)
	return loc, nil
}
