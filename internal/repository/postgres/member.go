package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"library-backend/internal/domain"
	"library-backend/internal/repository"
)

type memberRepository struct {
	db *sql.DB
}

func NewMemberRepository(db *sql.DB) repository.MemberRepository {
	return &memberRepository{db: db}
}

const memberColumns = `id, name, COALESCE(email, ''), phone, nic, COALESCE(address, ''), COALESCE(occupation, ''), COALESCE(status, ''), COALESCE(photo_url, ''), COALESCE(photo_key, ''), created_on, updated_on`

func (r *memberRepository) Create(ctx context.Context, m *domain.Member) error {
	query := `INSERT INTO members (name, email, phone, nic, address, occupation, status, photo_url, photo_key, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	return r.db.QueryRowContext(ctx, query, m.Name, m.Email, m.Phone, m.NIC, m.Address, m.Occupation, m.Status, m.PhotoURL, m.PhotoKey, time.Now(), time.Now()).Scan(&m.ID)
}

func (r *memberRepository) GetByID(ctx context.Context, id int32) (*domain.Member, error) {
	m := &domain.Member{}
	query := `SELECT ` + memberColumns + ` FROM members WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.NIC, &m.Address, &m.Occupation, &m.Status, &m.PhotoURL, &m.PhotoKey, &m.CreatedOn, &m.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrMemberNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *memberRepository) List(ctx context.Context) ([]domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		var m domain.Member
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.NIC, &m.Address, &m.Occupation, &m.Status, &m.PhotoURL, &m.PhotoKey, &m.CreatedOn, &m.UpdatedOn); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *memberRepository) Update(ctx context.Context, m *domain.Member) error {
	query := `UPDATE members SET name=$1, email=$2, phone=$3, nic=$4, address=$5, occupation=$6, status=$7, photo_url=$8, photo_key=$9, updated_on=$10 WHERE id=$11`
	res, err := r.db.ExecContext(ctx, query, m.Name, m.Email, m.Phone, m.NIC, m.Address, m.Occupation, m.Status, m.PhotoURL, m.PhotoKey, time.Now(), m.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrMemberNotFound
	}
	return nil
}

func (r *memberRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM members WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrMemberNotFound
	}
	return nil
}
