package memory

import (
	"testing"

	"github.com/aevon-lab/traffic-dashboard/internal/core/storage"
	"github.com/aevon-lab/traffic-dashboard/internal/core/storage/storagetest"
)

func TestStore_Contract(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.TrafficStore {
		return New()
	})
}
