package domain

import "time"

// Client is one registered identity. EncryptedPassword is the opaque hasher
// digest and never leaves the service layer.
type Client struct {
	ID                int64
	Name              string
	EncryptedPassword string
	CreatedAt         time.Time
}
