package archive

import (
	"time"

	"github.com/google/uuid"
)

// Session describes one file upload.
type Session struct {
	ID        string
	LocalPath string
	Key       string
	Size      int64
	Started   time.Time
}

func newSession(localPath, key string, size int64) Session {
	return Session{
		ID:        uuid.NewString(),
		LocalPath: localPath,
		Key:       key,
		Size:      size,
		Started:   time.Now(),
	}
}
