package sqlite

import (
	"context"

	"github.com/aussiebroadwan/marquee/internal/marquee/domain"
)

type clientsRepo struct {
	q dbtx
}

func (r *clientsRepo) CreateClient(ctx context.Context, name, encryptedPassword string) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO client (client_name, encrypted_password) VALUES (?, ?)`,
		name, encryptedPassword,
	)
	return mapConstraint(err)
}

func (r *clientsRepo) GetEncryptedPassword(ctx context.Context, name string) (string, error) {
	var digest string
	err := r.q.QueryRowContext(ctx,
		`SELECT encrypted_password FROM client WHERE client_name = ?`, name,
	).Scan(&digest)
	if err != nil {
		return "", mapNotFound(err)
	}
	return digest, nil
}

func (r *clientsRepo) GetClient(ctx context.Context, name string) (domain.Client, error) {
	var c domain.Client
	err := r.q.QueryRowContext(ctx,
		`SELECT client_id, client_name, encrypted_password, created_at FROM client WHERE client_name = ?`, name,
	).Scan(&c.ID, &c.Name, &c.EncryptedPassword, &c.CreatedAt)
	if err != nil {
		return domain.Client{}, mapNotFound(err)
	}
	return c, nil
}
